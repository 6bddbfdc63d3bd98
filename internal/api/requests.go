package api

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/limbo/tasktracker/internal/service"
)

var errMissingDate = errors.New("date, month and year are required")

// flexString accepts both JSON strings and bare numbers, clients send the day either way.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*f = ""
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := sonic.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
	default:
		if _, err := strconv.ParseFloat(string(data), 64); err != nil {
			return fmt.Errorf("expected string or number, got %s", data)
		}
		*f = flexString(data)
	}
	return nil
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreateTaskRequest struct {
	TaskName  string `json:"task_name"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type MonthHeadingRequest struct {
	MonthHeading string `json:"month_heading"`
}

type NotePadRequest struct {
	Text string `json:"text"`
}

type WorkDateRequest struct {
	Date  flexString `json:"date"`
	Month string     `json:"month"`
	Year  flexString `json:"year"`
}

func (d WorkDateRequest) toWorkDate() (service.WorkDate, error) {
	wd := service.WorkDate{
		Day:   strings.TrimSpace(string(d.Date)),
		Month: strings.TrimSpace(d.Month),
		Year:  strings.TrimSpace(string(d.Year)),
	}
	if wd.Day == "" || wd.Month == "" || wd.Year == "" {
		return service.WorkDate{}, errMissingDate
	}
	return wd, nil
}

type AddWorkRequest struct {
	WorkDateRequest
	TaskID    string `json:"task_id"`
	TaskName  string `json:"task_name"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

func (req *AddWorkRequest) taskRef() (service.TaskRef, error) {
	if req.TaskID != "" {
		id, err := uuid.Parse(req.TaskID)
		if err != nil {
			return service.TaskRef{}, fmt.Errorf("invalid task id: %w", err)
		}
		return service.TaskRef{ID: id}, nil
	}
	if strings.TrimSpace(req.TaskName) == "" {
		return service.TaskRef{}, errors.New("task_id or task_name is required")
	}
	return service.TaskRef{Name: req.TaskName}, nil
}

type UpdateWorkRequest struct {
	WorkDateRequest
	OldText string `json:"old_text"`
	NewText string `json:"new_text"`
}

type WorkItemRequest struct {
	WorkDateRequest
	Text string `json:"text"`
}

type ToggleWorkRequest struct {
	WorkDateRequest
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}
