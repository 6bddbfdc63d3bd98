package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/bytedance/sonic"
	errorvalues "github.com/limbo/tasktracker/internal/error_values"
	"github.com/limbo/tasktracker/internal/service"
	"github.com/limbo/tasktracker/pkg/entity"
	"github.com/limbo/tasktracker/pkg/httputil"
)

func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req RegisterRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("registering error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	user, err := s.userService.Register(ctx, &service.RegisterRequest{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrDuplicateEmail):
			logger.Error("registering error: existed user")
			httputil.WriteErrorResponse(w, http.StatusConflict, "user with such email already exists", nil)
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("registering error: invalid data", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid registration data", err)
		default:
			logger.Error("registering error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during registration", nil)
		}
		return
	}
	token, ok := s.issueToken(w, logger, user)
	if !ok {
		return
	}
	httputil.WriteSuccess(w, http.StatusCreated, "registration successful", map[string]any{
		"uid":   user.ID.String(),
		"token": token,
	})
	logger.Info("successful registration")
}

func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req LoginRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("login error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	if req.Email == "" || req.Password == "" {
		logger.Error("login error: empty credentials")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "email and password are required", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	user, err := s.userService.Login(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrInvalidCredentials):
			logger.Error("login error: wrong credentials")
			httputil.WriteErrorResponse(w, http.StatusUnauthorized, "invalid email or password", nil)
		default:
			logger.Error("login error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during login", nil)
		}
		return
	}
	token, ok := s.issueToken(w, logger, user)
	if !ok {
		return
	}
	httputil.WriteSuccess(w, http.StatusOK, "login successful", map[string]any{
		"uid":   user.ID.String(),
		"token": token,
	})
	logger.Info("successful login")
}

func (s *Server) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     tokenCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
	httputil.WriteSuccess(w, http.StatusOK, "logged out", nil)
}

func (s *Server) VerifyToken(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	claims, ok := getClaimsFromContext(r)
	if !ok {
		logger.Error("verify error: no claims in context")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	httputil.WriteSuccess(w, http.StatusOK, "token is valid", map[string]any{
		"user": map[string]string{
			"id":    claims.UserID,
			"name":  claims.Name,
			"email": claims.Email,
		},
	})
}

func (s *Server) Home(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("home error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	user, err := s.userService.GetByID(ctx, uid)
	if err != nil {
		s.writeServiceError(w, logger, "home", err)
		return
	}
	httputil.WriteSuccess(w, http.StatusOK, "welcome", map[string]any{
		"name":  user.Name,
		"email": user.Email,
	})
}

// issueToken signs a token and sets it as the auth cookie. Writes the error response itself on failure.
func (s *Server) issueToken(w http.ResponseWriter, logger *slog.Logger, user *entity.User) (string, bool) {
	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		logger.Error("generating token error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error creating token", nil)
		return "", false
	}
	http.SetCookie(w, &http.Cookie{
		Name:     tokenCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.tokenTTL.Seconds()),
		HttpOnly: true,
		Secure:   s.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
	return token, true
}

// writeServiceError maps domain errors to statuses. Anything unknown is reported as internal.
func (s *Server) writeServiceError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	var (
		status  int
		message string
		details error
	)
	switch {
	case errors.Is(err, errorvalues.ErrUserNotFound):
		status, message = http.StatusNotFound, "user not found"
	case errors.Is(err, errorvalues.ErrTaskNotFound):
		status, message = http.StatusNotFound, "task not found"
	case errors.Is(err, errorvalues.ErrWorkEntryNotFound):
		status, message = http.StatusNotFound, "no work logged for this date"
	case errors.Is(err, errorvalues.ErrWorkDetailNotFound):
		status, message = http.StatusNotFound, "work item not found"
	case errors.Is(err, errorvalues.ErrTaskExists):
		status, message = http.StatusConflict, "task with such name already exists"
	case errors.Is(err, errorvalues.ErrWorkDetailExists):
		status, message = http.StatusConflict, "work item already exists for this date"
	case errors.Is(err, errorvalues.ErrVersionConflict):
		status, message = http.StatusConflict, "data was changed by another request, retry"
	case errors.Is(err, errorvalues.ErrInvalidDate):
		status, message, details = http.StatusBadRequest, "invalid date", err
	case errors.Is(err, errorvalues.ErrValidation), errors.Is(err, errorvalues.ErrInvalidUser):
		status, message, details = http.StatusBadRequest, "invalid request data", err
	default:
		logger.Error(op+" error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error", nil)
		return
	}
	logger.Error(op+" error", slog.String("error", err.Error()), slog.Int("status", status))
	httputil.WriteErrorResponse(w, status, message, details)
}
