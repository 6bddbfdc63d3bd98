package repository

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/limbo/tasktracker/internal/error_values"
	"github.com/limbo/tasktracker/pkg/cleanup"
	"github.com/limbo/tasktracker/pkg/entity"
)

const userColumns = `id, name, email, password_hash, google_id, tasks, note_pad, version`

const (
	createUserQuery         = `INSERT INTO users (id, name, email, password_hash, google_id, tasks, note_pad) VALUES ($1, $2, $3, $4, $5, $6, $7);`
	findUserByIDQuery       = `SELECT ` + userColumns + ` FROM users WHERE id = $1;`
	findUserByEmailQuery    = `SELECT ` + userColumns + ` FROM users WHERE email = $1;`
	findUserByGoogleIDQuery = `SELECT ` + userColumns + ` FROM users WHERE google_id = $1;`
	findByOnGoingTaskQuery  = `SELECT ` + userColumns + ` FROM users WHERE tasks->'on_going' @> $1::jsonb LIMIT 1;`
	findByAnyTaskQuery      = `SELECT ` + userColumns + ` FROM users WHERE tasks->'on_going' @> $1::jsonb OR tasks->'completed' @> $1::jsonb LIMIT 1;`
	updateUserQuery         = `UPDATE users SET name = $1, email = $2, password_hash = $3, google_id = $4, tasks = $5, note_pad = $6, version = version + 1 WHERE id = $7 AND version = $8;`
	userExistsQuery         = `SELECT EXISTS(SELECT 1 FROM users WHERE id = $1);`
)

// UsersRepository stores every user aggregate as one row whose tasks live in a JSONB document.
type UsersRepository struct {
	conn PgConnection
}

func NewUsersRepo(cfg DBConfig) *UsersRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for usersRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for usersRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &UsersRepository{
		conn: pool,
	}
}

func NewUsersRepoWithConn(conn PgConnection) *UsersRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for usersRepo: " + err.Error())
	}
	return &UsersRepository{
		conn: conn,
	}
}

func (ur *UsersRepository) Create(ctx context.Context, user *entity.User) error {
	if user == nil {
		return errors.New("user is nil")
	}
	tasks, err := marshalTasks(user.Tasks)
	if err != nil {
		return err
	}
	_, err = ur.conn.Exec(ctx, createUserQuery,
		user.ID,
		user.Name,
		user.Email,
		nullable(user.PasswordHash),
		user.GoogleID,
		tasks,
		user.NotePad,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return errorvalues.ErrDuplicateEmail
		}
		return storageError("creating user", err)
	}
	user.Version = 1
	return nil
}

func (ur *UsersRepository) FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error) {
	user, err := scanUser(ur.conn.QueryRow(ctx, findUserByIDQuery, uid))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, storageError("searching user by id", err)
	}
	return user, nil
}

func (ur *UsersRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	user, err := scanUser(ur.conn.QueryRow(ctx, findUserByEmailQuery, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, storageError("searching user by email", err)
	}
	return user, nil
}

func (ur *UsersRepository) FindByGoogleID(ctx context.Context, googleID string) (*entity.User, error) {
	user, err := scanUser(ur.conn.QueryRow(ctx, findUserByGoogleIDQuery, googleID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, storageError("searching user by google id", err)
	}
	return user, nil
}

func (ur *UsersRepository) FindByTaskID(ctx context.Context, taskID uuid.UUID, scope TaskScope) (*entity.User, error) {
	query := findByAnyTaskQuery
	if scope == TaskScopeOnGoing {
		query = findByOnGoingTaskQuery
	}
	user, err := scanUser(ur.conn.QueryRow(ctx, query, taskFilter(taskID)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrTaskNotFound
		}
		return nil, storageError("searching user by task id", err)
	}
	return user, nil
}

// Update replaces the stored document only if its version still equals user.Version.
// On success user.Version is advanced to the stored one.
func (ur *UsersRepository) Update(ctx context.Context, user *entity.User) error {
	tasks, err := marshalTasks(user.Tasks)
	if err != nil {
		return err
	}
	ct, err := ur.conn.Exec(ctx, updateUserQuery,
		user.Name,
		user.Email,
		nullable(user.PasswordHash),
		user.GoogleID,
		tasks,
		user.NotePad,
		user.ID,
		user.Version,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return errorvalues.ErrDuplicateEmail
		}
		return storageError("updating user", err)
	}
	if ct.RowsAffected() == 0 {
		var exists bool
		if err := ur.conn.QueryRow(ctx, userExistsQuery, user.ID).Scan(&exists); err != nil {
			return storageError("inspecting if user exists", err)
		}
		if exists {
			return errorvalues.ErrVersionConflict
		}
		return errorvalues.ErrUserNotFound
	}
	user.Version++
	return nil
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var (
		user         entity.User
		passwordHash *string
		tasks        []byte
	)
	err := row.Scan(&user.ID, &user.Name, &user.Email, &passwordHash, &user.GoogleID, &tasks, &user.NotePad, &user.Version)
	if err != nil {
		return nil, err
	}
	if passwordHash != nil {
		user.PasswordHash = *passwordHash
	}
	if len(tasks) > 0 {
		if err = sonic.Unmarshal(tasks, &user.Tasks); err != nil {
			return nil, fmt.Errorf("unmarshalling tasks document error: %w", err)
		}
	}
	return &user, nil
}

func marshalTasks(tasks entity.TaskLists) (string, error) {
	if tasks.OnGoing == nil {
		tasks.OnGoing = []*entity.Task{}
	}
	if tasks.Completed == nil {
		tasks.Completed = []*entity.Task{}
	}
	data, err := sonic.Marshal(tasks)
	if err != nil {
		return "", errors.New("marshalling tasks document error: " + err.Error())
	}
	return string(data), nil
}

func taskFilter(taskID uuid.UUID) string {
	return fmt.Sprintf(`[{"id":%q}]`, taskID.String())
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	// 23505 is unique violation
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func storageError(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", errorvalues.ErrStorage, op, err)
}
