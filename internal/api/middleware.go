package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/tasktracker/internal/error_values"
	jwtservice "github.com/limbo/tasktracker/pkg/jwt_service"
	"github.com/limbo/tasktracker/pkg/httputil"
)

type contextKey string

const (
	requestIDContextKey contextKey = "Request-ID"
	loggerContextKey    contextKey = "Logger"
	uidContextKey       contextKey = "User-ID"
	claimsContextKey    contextKey = "Claims"
)

const tokenCookieName = "jwt"

func (s *Server) RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := uuid.New()
		w.Header().Set("X-Request-ID", reqID.String())
		ctx := context.WithValue(r.Context(), requestIDContextKey, reqID.String())
		r = r.WithContext(ctx)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) SettingUpLoggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := slog.Default()
		reqID, ok := r.Context().Value(requestIDContextKey).(string)
		if ok && reqID != "" {
			logger = logger.With(slog.String("request_id", reqID))
		}
		logger = logger.With(slog.String("from", r.RemoteAddr))
		ctx := context.WithValue(r.Context(), loggerContextKey, logger)
		r = r.WithContext(ctx)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) LoggerExtensionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLoggerFromCtx(r.Context())
		if uid, err := GetUIDFromContext(r); err == nil {
			logger = logger.With(slog.String("uid", uid.String()))
		}
		ctx := context.WithValue(r.Context(), loggerContextKey, logger)
		r = r.WithContext(ctx)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLoggerFromCtx(r.Context())
		tokenString, err := GetToken(r)
		if err != nil {
			logger.Error("auth failed: no token")
			httputil.WriteErrorResponse(w, http.StatusUnauthorized, "authorization failed: invalid token", nil)
			return
		}
		claims, err := s.jwtService.ParseToken(tokenString)
		if err != nil {
			if errors.Is(err, errorvalues.ErrInvalidToken) {
				logger.Error("auth failed: error parsing token", slog.String("error", err.Error()))
				httputil.WriteErrorResponse(w, http.StatusUnauthorized, "authorization failed: invalid token", nil)
				return
			}
			logger.Error("auth failed: internal error while parsing token", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error parsing token", nil)
			return
		}
		uid, err := uuid.Parse(claims.UserID)
		if err != nil {
			logger.Error("invalid uid in token claims")
			httputil.WriteErrorResponse(w, http.StatusUnauthorized, "invalid token payload", nil)
			return
		}
		// Assuring if user still exists
		ctx, cancel := context.WithTimeout(r.Context(), authTimeout)
		defer cancel()
		_, err = s.userService.GetByID(ctx, uid)
		if err != nil {
			if errors.Is(err, errorvalues.ErrUserNotFound) {
				logger.Error("user doesn't exist")
				httputil.WriteErrorResponse(w, http.StatusUnauthorized, "auth failed: user not found", nil)
				return
			}
			logger.Error("error while searching for user", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while searching for user", nil)
			return
		}
		rctx := ContextWithUID(r.Context(), uid)
		rctx = context.WithValue(rctx, claimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(rctx))
	})
}

func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(loggerContextKey).(*slog.Logger)
	if ok {
		return logger
	}
	return slog.Default()
}

// GetToken reads the token from the auth cookie, falling back to a bearer header.
func GetToken(r *http.Request) (string, error) {
	if cookie, err := r.Cookie(tokenCookieName); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}
	return GetTokenFromHeader(r)
}

func GetTokenFromHeader(r *http.Request) (string, error) {
	token := r.Header.Get("Authorization")
	if token == "" {
		return "", errorvalues.ErrInvalidToken
	}
	parts := strings.Split(token, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", errorvalues.ErrInvalidToken
	}
	return parts[1], nil
}

func ContextWithUID(ctx context.Context, uid uuid.UUID) context.Context {
	return context.WithValue(ctx, uidContextKey, uid)
}

func GetUIDFromContext(r *http.Request) (uuid.UUID, error) {
	uid, ok := r.Context().Value(uidContextKey).(uuid.UUID)
	if !ok {
		return uuid.UUID{}, errors.New("uid invalid or doesn't exists")
	}
	return uid, nil
}

func getClaimsFromContext(r *http.Request) (*jwtservice.JWTClaims, bool) {
	claims, ok := r.Context().Value(claimsContextKey).(*jwtservice.JWTClaims)
	return claims, ok
}
