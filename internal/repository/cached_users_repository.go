package repository

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/limbo/tasktracker/pkg/entity"
	"github.com/redis/go-redis/v9"
)

// CachedUsersRepository keeps user documents loaded by id in Redis (cache-aside).
// A successful write stores the new document, a failed one evicts it. Fills on
// miss never overwrite an existing entry, so a reader holding an older load
// cannot replace a document written meanwhile.
type CachedUsersRepository struct {
	UsersRepositoryI
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// cachedUser carries the fields entity.User hides from JSON.
type cachedUser struct {
	User         *entity.User `json:"user"`
	PasswordHash string       `json:"password_hash"`
	Version      int64        `json:"version"`
}

func NewCachedUsersRepo(repo UsersRepositoryI, client *redis.Client, ttl time.Duration) *CachedUsersRepository {
	return &CachedUsersRepository{
		UsersRepositoryI: repo,
		client:           client,
		prefix:           "tasktracker:user:",
		ttl:              ttl,
	}
}

func (cr *CachedUsersRepository) FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error) {
	key := cr.prefix + uid.String()
	data, err := cr.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var doc cachedUser
		if err = sonic.Unmarshal(data, &doc); err == nil && doc.User != nil {
			doc.User.PasswordHash = doc.PasswordHash
			doc.User.Version = doc.Version
			return doc.User, nil
		}
		slog.Warn("corrupted cached user", slog.String("key", key))
		cr.evict(ctx, uid)
	case !errors.Is(err, redis.Nil):
		slog.Warn("cache get error", slog.String("error", err.Error()))
	}
	user, err := cr.UsersRepositoryI.FindByID(ctx, uid)
	if err != nil {
		return nil, err
	}
	cr.fill(ctx, user)
	return user, nil
}

func (cr *CachedUsersRepository) Update(ctx context.Context, user *entity.User) error {
	err := cr.UsersRepositoryI.Update(ctx, user)
	if err != nil {
		cr.evict(ctx, user.ID)
		return err
	}
	if !cr.store(ctx, user) {
		cr.evict(ctx, user.ID)
	}
	return nil
}

func (cr *CachedUsersRepository) fill(ctx context.Context, user *entity.User) {
	data, ok := cr.encode(user)
	if !ok {
		return
	}
	if err := cr.client.SetNX(ctx, cr.prefix+user.ID.String(), data, cr.ttl).Err(); err != nil {
		slog.Warn("cache fill error", slog.String("error", err.Error()))
	}
}

func (cr *CachedUsersRepository) store(ctx context.Context, user *entity.User) bool {
	data, ok := cr.encode(user)
	if !ok {
		return false
	}
	if err := cr.client.Set(ctx, cr.prefix+user.ID.String(), data, cr.ttl).Err(); err != nil {
		slog.Warn("cache set error", slog.String("error", err.Error()))
		return false
	}
	return true
}

func (cr *CachedUsersRepository) encode(user *entity.User) ([]byte, bool) {
	data, err := sonic.Marshal(cachedUser{
		User:         user,
		PasswordHash: user.PasswordHash,
		Version:      user.Version,
	})
	if err != nil {
		slog.Warn("cache marshal error", slog.String("error", err.Error()))
		return nil, false
	}
	return data, true
}

func (cr *CachedUsersRepository) evict(ctx context.Context, uid uuid.UUID) {
	if err := cr.client.Del(ctx, cr.prefix+uid.String()).Err(); err != nil {
		slog.Warn("cache delete error", slog.String("error", err.Error()))
	}
}
