package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/tasktracker/internal/error_values"
	"github.com/limbo/tasktracker/internal/repository"
	"github.com/limbo/tasktracker/pkg/entity"
)

// TasksService applies one change at a time to a user aggregate: it loads the
// whole user, mutates it in memory and writes the whole document back.
// Writes are version checked, a concurrent change makes the write fail with
// ErrVersionConflict. Nothing is retried here.
type TasksService struct {
	repo repository.UsersRepositoryI
	now  func() time.Time
}

type TasksServiceOption func(*TasksService)

// WithClock replaces time.Now, used for task creation time and completion windows.
func WithClock(now func() time.Time) TasksServiceOption {
	return func(ts *TasksService) {
		ts.now = now
	}
}

func NewTasksService(usersRepo repository.UsersRepositoryI, opts ...TasksServiceOption) *TasksService {
	if usersRepo == nil {
		log.Fatal("provided nil usersRepo")
	}
	ts := &TasksService{
		repo: usersRepo,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(ts)
	}
	return ts
}

func (ts *TasksService) CreateTask(ctx context.Context, uid uuid.UUID, req *CreateTaskRequest) (*entity.Task, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	task := entity.NewTask(strings.TrimSpace(req.Name), req.StartDate, req.EndDate, ts.now())
	_, err := ts.mutate(ctx, uid, func(user *entity.User) error {
		return user.AddTask(task)
	})
	if err != nil {
		return nil, err
	}
	return task, nil
}

func (ts *TasksService) DeleteTask(ctx context.Context, uid, taskID uuid.UUID) error {
	user, err := ts.load(ctx, uid)
	if err != nil {
		return err
	}
	if !user.RemoveOnGoingTask(taskID) {
		return nil
	}
	return ts.save(ctx, user)
}

func (ts *TasksService) ListOnGoing(ctx context.Context, uid uuid.UUID) ([]entity.TaskSummary, error) {
	user, err := ts.load(ctx, uid)
	if err != nil {
		return nil, err
	}
	return entity.Summaries(user.Tasks.OnGoing), nil
}

func (ts *TasksService) ListCompleted(ctx context.Context, uid uuid.UUID) ([]*entity.Task, error) {
	user, err := ts.load(ctx, uid)
	if err != nil {
		return nil, err
	}
	if user.Tasks.Completed == nil {
		return []*entity.Task{}, nil
	}
	return user.Tasks.Completed, nil
}

func (ts *TasksService) GetTaskDetail(ctx context.Context, taskID uuid.UUID) (*entity.Task, error) {
	user, err := ts.findOwner(ctx, taskID, repository.TaskScopeAny)
	if err != nil {
		return nil, err
	}
	return user.FindTaskByID(taskID)
}

func (ts *TasksService) SetMonthHeading(ctx context.Context, taskID uuid.UUID, heading string) error {
	user, err := ts.findOwner(ctx, taskID, repository.TaskScopeOnGoing)
	if err != nil {
		return err
	}
	task := user.FindOnGoingTask(taskID)
	if task == nil {
		return errorvalues.ErrTaskNotFound
	}
	task.MonthHeading = heading
	return ts.save(ctx, user)
}

func (ts *TasksService) AddWorkItem(ctx context.Context, uid uuid.UUID, req *AddWorkRequest) (*entity.Task, error) {
	day, err := entity.NormalizeDate(req.Date.Day, req.Date.Month, req.Date.Year)
	if err != nil {
		return nil, err
	}
	var task *entity.Task
	_, err = ts.mutate(ctx, uid, func(user *entity.User) error {
		found, err := resolveTask(user, req.Task)
		if err != nil {
			return err
		}
		task = found
		return found.AddWorkDetail(day, req.Text, req.Completed)
	})
	if err != nil {
		return nil, err
	}
	return task, nil
}

func (ts *TasksService) UpdateWorkItemText(ctx context.Context, uid uuid.UUID, req *UpdateWorkRequest) error {
	return ts.mutateTask(ctx, uid, req.TaskID, req.Date, func(task *entity.Task, day time.Time) error {
		return task.UpdateWorkDetailText(day, req.OldText, req.NewText)
	})
}

func (ts *TasksService) DeleteWorkItem(ctx context.Context, uid uuid.UUID, req *WorkItemRequest) error {
	return ts.mutateTask(ctx, uid, req.TaskID, req.Date, func(task *entity.Task, day time.Time) error {
		return task.DeleteWorkDetail(day, req.Text)
	})
}

func (ts *TasksService) ToggleCompletion(ctx context.Context, uid uuid.UUID, req *ToggleWorkRequest) error {
	return ts.mutateTask(ctx, uid, req.TaskID, req.Date, func(task *entity.Task, day time.Time) error {
		return task.SetWorkDetailCompletion(day, req.Text, req.Completed)
	})
}

// GetWorkForDate returns the details of the referenced task for the day.
// With a zero ref the details of every task logged on that day are returned.
func (ts *TasksService) GetWorkForDate(ctx context.Context, uid uuid.UUID, ref TaskRef, date WorkDate) ([]entity.WorkDetail, error) {
	day, err := entity.NormalizeDate(date.Day, date.Month, date.Year)
	if err != nil {
		return nil, err
	}
	user, err := ts.load(ctx, uid)
	if err != nil {
		return nil, err
	}
	if ref.ID != uuid.Nil || ref.Name != "" {
		task, err := resolveTask(user, ref)
		if err != nil {
			return nil, err
		}
		return task.WorkFor(day), nil
	}
	work := make([]entity.WorkDetail, 0)
	for _, list := range [][]*entity.Task{user.Tasks.OnGoing, user.Tasks.Completed} {
		for _, task := range list {
			work = append(work, task.WorkFor(day)...)
		}
	}
	return work, nil
}

func (ts *TasksService) GetCompletionStats(ctx context.Context, uid uuid.UUID, taskName string) (*entity.CompletionStats, error) {
	user, err := ts.load(ctx, uid)
	if err != nil {
		return nil, err
	}
	task, err := user.FindTaskByName(taskName)
	if err != nil {
		return nil, err
	}
	stats := task.Stats(ts.now())
	return &stats, nil
}

func (ts *TasksService) GetNotePad(ctx context.Context, uid uuid.UUID) (string, error) {
	user, err := ts.load(ctx, uid)
	if err != nil {
		return "", err
	}
	return user.NotePad, nil
}

func (ts *TasksService) SetNotePad(ctx context.Context, uid uuid.UUID, text string) (string, error) {
	user, err := ts.mutate(ctx, uid, func(user *entity.User) error {
		user.SetNotePad(text)
		return nil
	})
	if err != nil {
		return "", err
	}
	return user.NotePad, nil
}

func (ts *TasksService) mutate(ctx context.Context, uid uuid.UUID, apply func(user *entity.User) error) (*entity.User, error) {
	user, err := ts.load(ctx, uid)
	if err != nil {
		return nil, err
	}
	if err = apply(user); err != nil {
		return nil, err
	}
	if err = ts.save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (ts *TasksService) mutateTask(ctx context.Context, uid, taskID uuid.UUID, date WorkDate, apply func(task *entity.Task, day time.Time) error) error {
	day, err := entity.NormalizeDate(date.Day, date.Month, date.Year)
	if err != nil {
		return err
	}
	_, err = ts.mutate(ctx, uid, func(user *entity.User) error {
		task, err := user.FindTaskByID(taskID)
		if err != nil {
			return err
		}
		return apply(task, day)
	})
	return err
}

func (ts *TasksService) load(ctx context.Context, uid uuid.UUID) (*entity.User, error) {
	user, err := ts.repo.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("users repository error: %w", err)
	}
	return user, nil
}

func (ts *TasksService) findOwner(ctx context.Context, taskID uuid.UUID, scope repository.TaskScope) (*entity.User, error) {
	user, err := ts.repo.FindByTaskID(ctx, taskID, scope)
	if err != nil {
		if errors.Is(err, errorvalues.ErrTaskNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("users repository error: %w", err)
	}
	return user, nil
}

func (ts *TasksService) save(ctx context.Context, user *entity.User) error {
	err := ts.repo.Update(ctx, user)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrUserNotFound), errors.Is(err, errorvalues.ErrVersionConflict):
			return err
		}
		return fmt.Errorf("users repository error: %w", err)
	}
	return nil
}

func resolveTask(user *entity.User, ref TaskRef) (*entity.Task, error) {
	if ref.ID != uuid.Nil {
		return user.FindTaskByID(ref.ID)
	}
	return user.FindTaskByName(ref.Name)
}
