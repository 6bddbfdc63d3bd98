package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/tasktracker/pkg/entity"
)

// TaskScope restricts which task list a nested task id is searched in.
type TaskScope int

const (
	TaskScopeAny TaskScope = iota
	TaskScopeOnGoing
)

type UsersRepositoryI interface {
	// Creates new user document
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by uid
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Looks up user by email. Can be used for login
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	// Looks up user by federated identity
	FindByGoogleID(ctx context.Context, googleID string) (*entity.User, error)
	// Looks up the owner of a task across all users
	FindByTaskID(ctx context.Context, taskID uuid.UUID, scope TaskScope) (*entity.User, error)
	// Writes whole user document if it wasn't changed since it was loaded
	Update(ctx context.Context, user *entity.User) error
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
