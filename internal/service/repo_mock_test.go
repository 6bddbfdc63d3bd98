package service_test

import (
	"context"
	"errors"
	"sync"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/tasktracker/internal/error_values"
	"github.com/limbo/tasktracker/internal/repository"
	"github.com/limbo/tasktracker/pkg/entity"
)

type mockState int

const (
	stateSuccess mockState = iota
	stateDBError
	stateConflict
)

// usersRepoMock keeps documents serialized, like a real document store,
// so that services can't mutate stored state without calling Update.
type usersRepoMock struct {
	mu      sync.Mutex
	state   mockState
	docs    map[uuid.UUID][]byte
	updates int
}

type storedUser struct {
	User         *entity.User `json:"user"`
	PasswordHash string       `json:"password_hash"`
	Version      int64        `json:"version"`
}

func newUsersRepoMock() *usersRepoMock {
	return &usersRepoMock{docs: make(map[uuid.UUID][]byte)}
}

func (m *usersRepoMock) put(user *entity.User) {
	data, err := sonic.Marshal(storedUser{User: user, PasswordHash: user.PasswordHash, Version: user.Version})
	if err != nil {
		panic(err)
	}
	m.docs[user.ID] = data
}

func (m *usersRepoMock) get(uid uuid.UUID) *entity.User {
	data, ok := m.docs[uid]
	if !ok {
		return nil
	}
	var doc storedUser
	if err := sonic.Unmarshal(data, &doc); err != nil {
		panic(err)
	}
	doc.User.PasswordHash = doc.PasswordHash
	doc.User.Version = doc.Version
	return doc.User
}

func (m *usersRepoMock) Create(ctx context.Context, user *entity.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == stateDBError {
		return errors.Join(errorvalues.ErrStorage, errors.New("db error"))
	}
	for id := range m.docs {
		if m.get(id).Email == user.Email {
			return errorvalues.ErrDuplicateEmail
		}
	}
	user.Version = 1
	m.put(user)
	return nil
}

func (m *usersRepoMock) FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == stateDBError {
		return nil, errors.Join(errorvalues.ErrStorage, errors.New("db error"))
	}
	user := m.get(uid)
	if user == nil {
		return nil, errorvalues.ErrUserNotFound
	}
	return user, nil
}

func (m *usersRepoMock) find(match func(u *entity.User) bool) *entity.User {
	for id := range m.docs {
		if u := m.get(id); match(u) {
			return u
		}
	}
	return nil
}

func (m *usersRepoMock) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == stateDBError {
		return nil, errors.Join(errorvalues.ErrStorage, errors.New("db error"))
	}
	user := m.find(func(u *entity.User) bool { return u.Email == email })
	if user == nil {
		return nil, errorvalues.ErrUserNotFound
	}
	return user, nil
}

func (m *usersRepoMock) FindByGoogleID(ctx context.Context, googleID string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == stateDBError {
		return nil, errors.Join(errorvalues.ErrStorage, errors.New("db error"))
	}
	user := m.find(func(u *entity.User) bool { return u.GoogleID != nil && *u.GoogleID == googleID })
	if user == nil {
		return nil, errorvalues.ErrUserNotFound
	}
	return user, nil
}

func (m *usersRepoMock) FindByTaskID(ctx context.Context, taskID uuid.UUID, scope repository.TaskScope) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == stateDBError {
		return nil, errors.Join(errorvalues.ErrStorage, errors.New("db error"))
	}
	user := m.find(func(u *entity.User) bool {
		if u.FindOnGoingTask(taskID) != nil {
			return true
		}
		if scope == repository.TaskScopeOnGoing {
			return false
		}
		_, err := u.FindTaskByID(taskID)
		return err == nil
	})
	if user == nil {
		return nil, errorvalues.ErrTaskNotFound
	}
	return user, nil
}

func (m *usersRepoMock) Update(ctx context.Context, user *entity.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	switch m.state {
	case stateDBError:
		return errors.Join(errorvalues.ErrStorage, errors.New("db error"))
	case stateConflict:
		return errorvalues.ErrVersionConflict
	}
	stored := m.get(user.ID)
	if stored == nil {
		return errorvalues.ErrUserNotFound
	}
	if stored.Version != user.Version {
		return errorvalues.ErrVersionConflict
	}
	user.Version++
	m.put(user)
	m.updates++
	return nil
}
