package api

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/limbo/tasktracker/internal/service"
)

const (
	requestTimeout = 10 * time.Second
	authTimeout    = 5 * time.Second
)

type Server struct {
	mx           *chi.Mux
	mu           sync.Mutex
	srv          *http.Server
	userService  service.UserServiceI
	tasksService service.TasksServiceI
	jwtService   JWTServiceI
	cookieSecure bool
	tokenTTL     time.Duration
}

type ServicesList struct {
	UserService  service.UserServiceI
	TasksService service.TasksServiceI
	JwtService   JWTServiceI
	// Marks auth cookie as Secure, should be set behind TLS
	CookieSecure bool
	TokenTTL     time.Duration
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:           chi.NewMux(),
		userService:  servicesOptions.UserService,
		tasksService: servicesOptions.TasksService,
		jwtService:   servicesOptions.JwtService,
		cookieSecure: servicesOptions.CookieSecure,
		tokenTTL:     servicesOptions.TokenTTL,
	}
	if s.tokenTTL <= 0 {
		s.tokenTTL = 24 * time.Hour
	}
	s.mountEndpoints()
	return s
}

func (s *Server) mountEndpoints() {
	s.mx.Use(middleware.Recoverer, s.RequestIDMiddleware, s.SettingUpLoggerMiddleware)
	s.mx.Route("/auth", func(r chi.Router) {
		r.Post("/register", s.Register)
		r.Post("/login", s.Login)
		r.Post("/logout", s.Logout)
	})
	s.mx.Route("/api", func(r chi.Router) {
		r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)
		r.Get("/verify", s.VerifyToken)
		r.Get("/home", s.Home)

		r.Post("/tasks", s.CreateTask)
		r.Get("/tasks/ongoing", s.ListOnGoing)
		r.Get("/tasks/completed", s.ListCompleted)
		r.Get("/tasks/stats/{name}", s.GetCompletionStats)
		r.Get("/tasks/{id}", s.GetTaskDetail)
		r.Delete("/tasks/{id}", s.DeleteTask)
		r.Put("/tasks/{id}/heading", s.SetMonthHeading)
		r.Put("/tasks/{id}/work", s.UpdateWorkItem)
		r.Delete("/tasks/{id}/work", s.DeleteWorkItem)
		r.Put("/tasks/{id}/work/completion", s.ToggleCompletion)

		r.Post("/work", s.AddWorkItem)
		r.Get("/work", s.GetWorkForDate)

		r.Get("/notepad", s.GetNotePad)
		r.Put("/notepad", s.SetNotePad)
	})
}

func (s *Server) Handler() http.Handler {
	return s.mx
}

// Run blocks until the server stops. Graceful stop via Shutdown is not reported as an error.
func (s *Server) Run(address string) error {
	srv := &http.Server{
		Addr:              address,
		Handler:           s.mx,
		ReadHeaderTimeout: 5 * time.Second,
	}
	s.mu.Lock()
	s.srv = srv
	s.mu.Unlock()
	err := srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	srv := s.srv
	s.mu.Unlock()
	if srv == nil {
		return nil
	}
	return srv.Shutdown(ctx)
}
