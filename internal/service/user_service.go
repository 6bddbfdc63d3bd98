package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/tasktracker/internal/error_values"
	"github.com/limbo/tasktracker/internal/repository"
	"github.com/limbo/tasktracker/pkg/entity"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	repo repository.UsersRepositoryI
}

func NewUserService(usersRepo repository.UsersRepositoryI) *UserService {
	return &UserService{
		repo: usersRepo,
	}
}

func (us *UserService) Register(ctx context.Context, req *RegisterRequest) (*entity.User, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	passwordHash, err := Hash(req.Password)
	if err != nil {
		return nil, errors.New("hashing password error: " + err.Error())
	}
	user := &entity.User{
		ID:           uuid.New(),
		Name:         strings.TrimSpace(req.Name),
		Email:        normalizeEmail(req.Email),
		PasswordHash: passwordHash,
		Tasks: entity.TaskLists{
			OnGoing:   []*entity.Task{},
			Completed: []*entity.Task{},
		},
	}
	if err = us.repo.Create(ctx, user); err != nil {
		if errors.Is(err, errorvalues.ErrDuplicateEmail) {
			return nil, err
		}
		return nil, fmt.Errorf("repository creating error: %w", err)
	}
	return user, nil
}

func (us *UserService) Login(ctx context.Context, email, password string) (*entity.User, error) {
	user, err := us.repo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, errorvalues.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("repository searching error: %w", err)
	}
	// federated accounts have no password
	if user.PasswordHash == "" {
		return nil, errorvalues.ErrInvalidCredentials
	}
	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, errorvalues.ErrInvalidCredentials
	}
	return user, nil
}

func (us *UserService) LoginWithGoogle(ctx context.Context, googleID, name, email string) (*entity.User, error) {
	user, err := us.repo.FindByGoogleID(ctx, googleID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, errorvalues.ErrUserNotFound) {
		return nil, fmt.Errorf("repository searching error: %w", err)
	}
	user = &entity.User{
		ID:       uuid.New(),
		Name:     strings.TrimSpace(name),
		Email:    normalizeEmail(email),
		GoogleID: &googleID,
		Tasks: entity.TaskLists{
			OnGoing:   []*entity.Task{},
			Completed: []*entity.Task{},
		},
	}
	if err = user.Validate(); err != nil {
		return nil, err
	}
	if err = us.repo.Create(ctx, user); err != nil {
		if errors.Is(err, errorvalues.ErrDuplicateEmail) {
			return nil, err
		}
		return nil, fmt.Errorf("repository creating error: %w", err)
	}
	return user, nil
}

func (us *UserService) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := us.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("repository searching error: %w", err)
	}
	return user, nil
}

func Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
