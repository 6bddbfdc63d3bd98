package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/limbo/tasktracker/pkg/entity"
)

type RegisterRequest struct {
	Name     string `validate:"required,not_blank,max=100"`
	Email    string `validate:"required,email,max=254"`
	Password string `validate:"required,min=8,max=72"`
}

type CreateTaskRequest struct {
	Name      string `validate:"required,not_blank,max=200"`
	StartDate string `validate:"max=64"`
	EndDate   string `validate:"max=64"`
}

// WorkDate is a calendar day as it comes from clients: day number, English month name, year.
type WorkDate struct {
	Day   string
	Month string
	Year  string
}

// TaskRef points to a task by id or, when ID is zero, by name.
// A zero ref means "any task" where an operation allows it.
type TaskRef struct {
	ID   uuid.UUID
	Name string
}

type AddWorkRequest struct {
	Task      TaskRef
	Date      WorkDate
	Text      string
	Completed bool
}

type UpdateWorkRequest struct {
	TaskID  uuid.UUID
	Date    WorkDate
	OldText string
	NewText string
}

type WorkItemRequest struct {
	TaskID uuid.UUID
	Date   WorkDate
	Text   string
}

type ToggleWorkRequest struct {
	TaskID    uuid.UUID
	Date      WorkDate
	Text      string
	Completed bool
}

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

type UserServiceI interface {
	// Validates signup data, hashes password and stores new user
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, gives back user's data
	Login(ctx context.Context, email, password string) (*entity.User, error)
	// Finds user by federated id, creating one on first login
	LoginWithGoogle(ctx context.Context, googleID, name, email string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
}

type TasksServiceI interface {
	CreateTask(ctx context.Context, uid uuid.UUID, req *CreateTaskRequest) (*entity.Task, error)
	// Deleting absent task is not an error
	DeleteTask(ctx context.Context, uid, taskID uuid.UUID) error
	ListOnGoing(ctx context.Context, uid uuid.UUID) ([]entity.TaskSummary, error)
	ListCompleted(ctx context.Context, uid uuid.UUID) ([]*entity.Task, error)
	// Looks the task up across all users
	GetTaskDetail(ctx context.Context, taskID uuid.UUID) (*entity.Task, error)
	// Looks the ongoing task up across all users
	SetMonthHeading(ctx context.Context, taskID uuid.UUID, heading string) error
	AddWorkItem(ctx context.Context, uid uuid.UUID, req *AddWorkRequest) (*entity.Task, error)
	UpdateWorkItemText(ctx context.Context, uid uuid.UUID, req *UpdateWorkRequest) error
	DeleteWorkItem(ctx context.Context, uid uuid.UUID, req *WorkItemRequest) error
	ToggleCompletion(ctx context.Context, uid uuid.UUID, req *ToggleWorkRequest) error
	GetWorkForDate(ctx context.Context, uid uuid.UUID, ref TaskRef, date WorkDate) ([]entity.WorkDetail, error)
	GetCompletionStats(ctx context.Context, uid uuid.UUID, taskName string) (*entity.CompletionStats, error)
	GetNotePad(ctx context.Context, uid uuid.UUID) (string, error)
	SetNotePad(ctx context.Context, uid uuid.UUID, text string) (string, error)
}
