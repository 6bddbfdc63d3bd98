package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/limbo/tasktracker/internal/service"
	"github.com/limbo/tasktracker/pkg/entity"
	"github.com/limbo/tasktracker/pkg/httputil"
)

var errMissingText = errors.New("text is required")

func (s *Server) AddWorkItem(w http.ResponseWriter, r *http.Request) {
	const op = "add work"
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorizedUID(w, r, logger, op)
	if !ok {
		return
	}
	var req AddWorkRequest
	if !decodeBody(w, r, logger, op, &req) {
		return
	}
	ref, err := req.taskRef()
	if err != nil {
		badRequest(w, logger, op, err)
		return
	}
	date, err := req.toWorkDate()
	if err != nil {
		badRequest(w, logger, op, err)
		return
	}
	if req.Text == "" {
		badRequest(w, logger, op, errMissingText)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	task, err := s.tasksService.AddWorkItem(ctx, uid, &service.AddWorkRequest{
		Task:      ref,
		Date:      date,
		Text:      req.Text,
		Completed: req.Completed,
	})
	if err != nil {
		s.writeServiceError(w, logger, op, err)
		return
	}
	httputil.WriteSuccess(w, http.StatusCreated, "work item added", map[string]any{"task": task})
	logger.Info("work item added", slog.String("task_id", task.ID.String()))
}

func (s *Server) UpdateWorkItem(w http.ResponseWriter, r *http.Request) {
	const op = "update work"
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorizedUID(w, r, logger, op)
	if !ok {
		return
	}
	id, ok := taskIDFromPath(w, r, logger, op)
	if !ok {
		return
	}
	var req UpdateWorkRequest
	if !decodeBody(w, r, logger, op, &req) {
		return
	}
	date, err := req.toWorkDate()
	if err != nil {
		badRequest(w, logger, op, err)
		return
	}
	if req.OldText == "" || req.NewText == "" {
		badRequest(w, logger, op, errors.New("old_text and new_text are required"))
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	err = s.tasksService.UpdateWorkItemText(ctx, uid, &service.UpdateWorkRequest{
		TaskID:  id,
		Date:    date,
		OldText: req.OldText,
		NewText: req.NewText,
	})
	if err != nil {
		s.writeServiceError(w, logger, op, err)
		return
	}
	httputil.WriteSuccess(w, http.StatusOK, "work item updated", nil)
}

func (s *Server) DeleteWorkItem(w http.ResponseWriter, r *http.Request) {
	const op = "delete work"
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorizedUID(w, r, logger, op)
	if !ok {
		return
	}
	id, ok := taskIDFromPath(w, r, logger, op)
	if !ok {
		return
	}
	var req WorkItemRequest
	if !decodeBody(w, r, logger, op, &req) {
		return
	}
	date, err := req.toWorkDate()
	if err != nil {
		badRequest(w, logger, op, err)
		return
	}
	if req.Text == "" {
		badRequest(w, logger, op, errMissingText)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	err = s.tasksService.DeleteWorkItem(ctx, uid, &service.WorkItemRequest{
		TaskID: id,
		Date:   date,
		Text:   req.Text,
	})
	if err != nil {
		s.writeServiceError(w, logger, op, err)
		return
	}
	httputil.WriteSuccess(w, http.StatusOK, "work item deleted", nil)
}

func (s *Server) ToggleCompletion(w http.ResponseWriter, r *http.Request) {
	const op = "toggle completion"
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorizedUID(w, r, logger, op)
	if !ok {
		return
	}
	id, ok := taskIDFromPath(w, r, logger, op)
	if !ok {
		return
	}
	var req ToggleWorkRequest
	if !decodeBody(w, r, logger, op, &req) {
		return
	}
	date, err := req.toWorkDate()
	if err != nil {
		badRequest(w, logger, op, err)
		return
	}
	if req.Text == "" {
		badRequest(w, logger, op, errMissingText)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	err = s.tasksService.ToggleCompletion(ctx, uid, &service.ToggleWorkRequest{
		TaskID:    id,
		Date:      date,
		Text:      req.Text,
		Completed: req.Completed,
	})
	if err != nil {
		s.writeServiceError(w, logger, op, err)
		return
	}
	httputil.WriteSuccess(w, http.StatusOK, "completion status updated", nil)
}

// GetWorkForDate takes task_id or task_name from query. Without either, work of all tasks is merged.
func (s *Server) GetWorkForDate(w http.ResponseWriter, r *http.Request) {
	const op = "get work"
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorizedUID(w, r, logger, op)
	if !ok {
		return
	}
	q := r.URL.Query()
	var ref service.TaskRef
	if rawID := q.Get("task_id"); rawID != "" {
		id, err := uuid.Parse(rawID)
		if err != nil {
			badRequest(w, logger, op, errors.New("invalid task id"))
			return
		}
		ref.ID = id
	} else {
		ref.Name = q.Get("task_name")
	}
	date, err := WorkDateRequest{
		Date:  flexString(q.Get("date")),
		Month: q.Get("month"),
		Year:  flexString(q.Get("year")),
	}.toWorkDate()
	if err != nil {
		badRequest(w, logger, op, err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	details, err := s.tasksService.GetWorkForDate(ctx, uid, ref, date)
	if err != nil {
		s.writeServiceError(w, logger, op, err)
		return
	}
	if details == nil {
		details = []entity.WorkDetail{}
	}
	httputil.WriteSuccess(w, http.StatusOK, "work for date", map[string]any{"work_details": details})
}
