package api

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/limbo/tasktracker/internal/service"
	"github.com/limbo/tasktracker/pkg/httputil"
)

// authorizedUID writes 401 itself when uid is missing.
func authorizedUID(w http.ResponseWriter, r *http.Request, logger *slog.Logger, op string) (uuid.UUID, bool) {
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error(op + " error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return uuid.UUID{}, false
	}
	return uid, true
}

func taskIDFromPath(w http.ResponseWriter, r *http.Request, logger *slog.Logger, op string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error(op + " error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid task id in path value", nil)
		return uuid.UUID{}, false
	}
	return id, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, logger *slog.Logger, op string, dst any) bool {
	defer r.Body.Close()
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.Error(op+" error: invalid request body", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return false
	}
	return true
}

func badRequest(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	logger.Error(op+" error: bad request", slog.String("error", err.Error()))
	httputil.WriteErrorResponse(w, http.StatusBadRequest, err.Error(), nil)
}

func (s *Server) CreateTask(w http.ResponseWriter, r *http.Request) {
	const op = "create task"
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorizedUID(w, r, logger, op)
	if !ok {
		return
	}
	var req CreateTaskRequest
	if !decodeBody(w, r, logger, op, &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	task, err := s.tasksService.CreateTask(ctx, uid, &service.CreateTaskRequest{
		Name:      req.TaskName,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	})
	if err != nil {
		s.writeServiceError(w, logger, op, err)
		return
	}
	httputil.WriteSuccess(w, http.StatusCreated, "task added successfully", map[string]any{
		"task_id": task.ID.String(),
	})
	logger.Info("task created", slog.String("task_id", task.ID.String()))
}

func (s *Server) DeleteTask(w http.ResponseWriter, r *http.Request) {
	const op = "task deletion"
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorizedUID(w, r, logger, op)
	if !ok {
		return
	}
	id, ok := taskIDFromPath(w, r, logger, op)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	if err := s.tasksService.DeleteTask(ctx, uid, id); err != nil {
		s.writeServiceError(w, logger, op, err)
		return
	}
	httputil.WriteSuccess(w, http.StatusOK, "task deleted successfully", nil)
	logger.Info("task deleted", slog.String("task_id", id.String()))
}

func (s *Server) ListOnGoing(w http.ResponseWriter, r *http.Request) {
	const op = "list ongoing"
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorizedUID(w, r, logger, op)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	tasks, err := s.tasksService.ListOnGoing(ctx, uid)
	if err != nil {
		s.writeServiceError(w, logger, op, err)
		return
	}
	httputil.WriteSuccess(w, http.StatusOK, "ongoing tasks", map[string]any{"tasks": tasks})
}

func (s *Server) ListCompleted(w http.ResponseWriter, r *http.Request) {
	const op = "list completed"
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorizedUID(w, r, logger, op)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	tasks, err := s.tasksService.ListCompleted(ctx, uid)
	if err != nil {
		s.writeServiceError(w, logger, op, err)
		return
	}
	httputil.WriteSuccess(w, http.StatusOK, "completed tasks", map[string]any{"tasks": tasks})
}

func (s *Server) GetTaskDetail(w http.ResponseWriter, r *http.Request) {
	const op = "task detail"
	logger := GetLoggerFromCtx(r.Context())
	id, ok := taskIDFromPath(w, r, logger, op)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	task, err := s.tasksService.GetTaskDetail(ctx, id)
	if err != nil {
		s.writeServiceError(w, logger, op, err)
		return
	}
	httputil.WriteSuccess(w, http.StatusOK, "task found", map[string]any{"task": task})
}

func (s *Server) SetMonthHeading(w http.ResponseWriter, r *http.Request) {
	const op = "month heading"
	logger := GetLoggerFromCtx(r.Context())
	id, ok := taskIDFromPath(w, r, logger, op)
	if !ok {
		return
	}
	var req MonthHeadingRequest
	if !decodeBody(w, r, logger, op, &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	if err := s.tasksService.SetMonthHeading(ctx, id, req.MonthHeading); err != nil {
		s.writeServiceError(w, logger, op, err)
		return
	}
	httputil.WriteSuccess(w, http.StatusOK, "month heading updated", nil)
}

func (s *Server) GetCompletionStats(w http.ResponseWriter, r *http.Request) {
	const op = "completion stats"
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorizedUID(w, r, logger, op)
	if !ok {
		return
	}
	name := r.PathValue("name")
	// Router matches on the escaped path when there is one, so %2F arrives undecoded
	if r.URL.RawPath != "" {
		if unescaped, err := url.PathUnescape(name); err == nil {
			name = unescaped
		}
	}
	if name == "" {
		logger.Error(op + " error: empty task name")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "task name is required", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	stats, err := s.tasksService.GetCompletionStats(ctx, uid, name)
	if err != nil {
		s.writeServiceError(w, logger, op, err)
		return
	}
	httputil.WriteSuccess(w, http.StatusOK, "completion stats", map[string]any{"stats": stats})
}

func (s *Server) GetNotePad(w http.ResponseWriter, r *http.Request) {
	const op = "get notepad"
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorizedUID(w, r, logger, op)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	text, err := s.tasksService.GetNotePad(ctx, uid)
	if err != nil {
		s.writeServiceError(w, logger, op, err)
		return
	}
	httputil.WriteSuccess(w, http.StatusOK, "notepad", map[string]any{"text": text})
}

func (s *Server) SetNotePad(w http.ResponseWriter, r *http.Request) {
	const op = "set notepad"
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorizedUID(w, r, logger, op)
	if !ok {
		return
	}
	var req NotePadRequest
	if !decodeBody(w, r, logger, op, &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	text, err := s.tasksService.SetNotePad(ctx, uid, req.Text)
	if err != nil {
		s.writeServiceError(w, logger, op, err)
		return
	}
	httputil.WriteSuccess(w, http.StatusOK, "notepad saved", map[string]any{"text": text})
}
