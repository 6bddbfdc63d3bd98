package entity

import (
	"strings"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/tasktracker/internal/error_values"
)

// User is the root of the aggregate: it is loaded and stored as a whole
// together with every task, work entry and work detail it owns.
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	GoogleID     *string   `json:"google_id,omitempty"`
	Tasks        TaskLists `json:"tasks"`
	NotePad      string    `json:"note_pad"`
	// Version of the stored document the aggregate was loaded from.
	Version int64 `json:"-"`
}

// TaskLists keeps tasks in insertion order, which is also the display order.
type TaskLists struct {
	OnGoing   []*Task `json:"on_going"`
	Completed []*Task `json:"completed"`
}

// Validate checks the invariants a user must hold before it is stored.
func (u *User) Validate() error {
	if u.Email == "" {
		return errorvalues.ErrInvalidUser
	}
	if u.PasswordHash == "" && (u.GoogleID == nil || *u.GoogleID == "") {
		return errorvalues.ErrInvalidUser
	}
	return nil
}

// FindTaskByName searches ongoing tasks, then completed ones. First match wins.
func (u *User) FindTaskByName(name string) (*Task, error) {
	for _, list := range [][]*Task{u.Tasks.OnGoing, u.Tasks.Completed} {
		for _, t := range list {
			if t.Name == name {
				return t, nil
			}
		}
	}
	return nil, errorvalues.ErrTaskNotFound
}

// FindTaskByID searches ongoing tasks, then completed ones.
func (u *User) FindTaskByID(id uuid.UUID) (*Task, error) {
	if t := u.FindOnGoingTask(id); t != nil {
		return t, nil
	}
	for _, t := range u.Tasks.Completed {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, errorvalues.ErrTaskNotFound
}

// FindOnGoingTask returns nil if no ongoing task has the id.
func (u *User) FindOnGoingTask(id uuid.UUID) *Task {
	for _, t := range u.Tasks.OnGoing {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// AddTask appends t to the ongoing list. Task names are unique per user,
// so that lookups by name stay unambiguous.
func (u *User) AddTask(t *Task) error {
	if _, err := u.FindTaskByName(t.Name); err == nil {
		return errorvalues.ErrTaskExists
	}
	u.Tasks.OnGoing = append(u.Tasks.OnGoing, t)
	return nil
}

// RemoveOnGoingTask drops the ongoing task with the id together with its work.
// Reports whether something was removed.
func (u *User) RemoveOnGoingTask(id uuid.UUID) bool {
	for i, t := range u.Tasks.OnGoing {
		if t.ID == id {
			u.Tasks.OnGoing = append(u.Tasks.OnGoing[:i], u.Tasks.OnGoing[i+1:]...)
			return true
		}
	}
	return false
}

func (u *User) SetNotePad(text string) {
	u.NotePad = strings.TrimSpace(text)
}

// TaskSummary is the short form of a task used in listings.
type TaskSummary struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	StartDate string    `json:"start_date"`
	EndDate   string    `json:"end_date"`
}

func Summaries(tasks []*Task) []TaskSummary {
	res := make([]TaskSummary, 0, len(tasks))
	for _, t := range tasks {
		res = append(res, TaskSummary{
			ID:        t.ID,
			Name:      t.Name,
			StartDate: t.StartDate,
			EndDate:   t.EndDate,
		})
	}
	return res
}
