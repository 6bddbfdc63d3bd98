package entity

import (
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/tasktracker/internal/error_values"
)

const DefaultMonthHeading = "Task Overview"

type Task struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	StartDate    string    `json:"start_date"`
	EndDate      string    `json:"end_date"`
	MonthHeading string    `json:"month_heading"`
	// Work is keyed by DayKey, one entry per calendar day.
	Work      map[string]*WorkEntry `json:"work"`
	CreatedAt time.Time             `json:"created_at"`
}

type WorkEntry struct {
	Date    time.Time    `json:"date"`
	Details []WorkDetail `json:"details"`
}

type WorkDetail struct {
	Text       string `json:"text"`
	IsComplete bool   `json:"is_complete"`
}

// NewTask creates a task with a fresh id and no work. Dates are kept as given.
func NewTask(name, startDate, endDate string, createdAt time.Time) *Task {
	return &Task{
		ID:           uuid.New(),
		Name:         name,
		StartDate:    startDate,
		EndDate:      endDate,
		MonthHeading: DefaultMonthHeading,
		Work:         make(map[string]*WorkEntry),
		CreatedAt:    createdAt.UTC(),
	}
}

func (t *Task) FindWorkEntry(day time.Time) (*WorkEntry, error) {
	entry, ok := t.Work[DayKey(day)]
	if !ok {
		return nil, errorvalues.ErrWorkEntryNotFound
	}
	return entry, nil
}

// AddWorkDetail appends a detail to the entry of the day, creating the entry
// on first use.
func (t *Task) AddWorkDetail(day time.Time, text string, complete bool) error {
	if t.Work == nil {
		t.Work = make(map[string]*WorkEntry)
	}
	key := DayKey(day)
	entry, ok := t.Work[key]
	if !ok {
		entry = &WorkEntry{Date: TruncateDay(day)}
		t.Work[key] = entry
	}
	if entry.indexOf(text) >= 0 {
		return errorvalues.ErrWorkDetailExists
	}
	entry.Details = append(entry.Details, WorkDetail{Text: text, IsComplete: complete})
	return nil
}

func (t *Task) UpdateWorkDetailText(day time.Time, oldText, newText string) error {
	entry, err := t.FindWorkEntry(day)
	if err != nil {
		return err
	}
	i := entry.indexOf(oldText)
	if i < 0 {
		return errorvalues.ErrWorkDetailNotFound
	}
	if oldText != newText && entry.indexOf(newText) >= 0 {
		return errorvalues.ErrWorkDetailExists
	}
	entry.Details[i].Text = newText
	return nil
}

// DeleteWorkDetail removes the detail with the text. An entry left without
// details is removed from the task. A missing text is not an error.
func (t *Task) DeleteWorkDetail(day time.Time, text string) error {
	entry, err := t.FindWorkEntry(day)
	if err != nil {
		return err
	}
	if i := entry.indexOf(text); i >= 0 {
		entry.Details = append(entry.Details[:i], entry.Details[i+1:]...)
	}
	if len(entry.Details) == 0 {
		delete(t.Work, DayKey(day))
	}
	return nil
}

func (t *Task) SetWorkDetailCompletion(day time.Time, text string, complete bool) error {
	entry, err := t.FindWorkEntry(day)
	if err != nil {
		return err
	}
	i := entry.indexOf(text)
	if i < 0 {
		return errorvalues.ErrWorkDetailNotFound
	}
	entry.Details[i].IsComplete = complete
	return nil
}

// WorkFor returns a copy of the details logged on the day, empty if none.
func (t *Task) WorkFor(day time.Time) []WorkDetail {
	entry, err := t.FindWorkEntry(day)
	if err != nil {
		return []WorkDetail{}
	}
	res := make([]WorkDetail, len(entry.Details))
	copy(res, entry.Details)
	return res
}

func (e *WorkEntry) indexOf(text string) int {
	for i, d := range e.Details {
		if d.Text == text {
			return i
		}
	}
	return -1
}
