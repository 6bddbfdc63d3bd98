package service_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/tasktracker/internal/error_values"
	"github.com/limbo/tasktracker/internal/service"
	"github.com/limbo/tasktracker/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Variables for tests
var (
	fixedNow = time.Date(2024, 1, 10, 15, 0, 0, 0, time.UTC)
	jan5     = service.WorkDate{Day: "5", Month: "January", Year: "2024"}
	jan5Pad  = service.WorkDate{Day: "05", Month: "January", Year: "2024"}
)

func setupTasksService(t *testing.T) (*service.TasksService, *usersRepoMock, uuid.UUID) {
	t.Helper()
	repo := newUsersRepoMock()
	user := &entity.User{
		ID:           uuid.New(),
		Name:         "owner",
		Email:        "owner@example.com",
		PasswordHash: "hash",
	}
	require.NoError(t, repo.Create(context.Background(), user))
	s := service.NewTasksService(repo, service.WithClock(func() time.Time { return fixedNow }))
	return s, repo, user.ID
}

func TestCreateTask(t *testing.T) {
	s, repo, uid := setupTasksService(t)
	ctx := context.Background()
	t.Run("created", func(t *testing.T) {
		task, err := s.CreateTask(ctx, uid, &service.CreateTaskRequest{Name: "Gym", StartDate: "2024-01-01", EndDate: "2024-12-31"})
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, task.ID)
		assert.Equal(t, entity.DefaultMonthHeading, task.MonthHeading)
		assert.Equal(t, fixedNow, task.CreatedAt)
		assert.Empty(t, task.Work)
		list, err := s.ListOnGoing(ctx, uid)
		require.NoError(t, err)
		assert.Equal(t, []entity.TaskSummary{{ID: task.ID, Name: "Gym", StartDate: "2024-01-01", EndDate: "2024-12-31"}}, list)
	})
	t.Run("duplicate name", func(t *testing.T) {
		_, err := s.CreateTask(ctx, uid, &service.CreateTaskRequest{Name: "Gym"})
		assert.ErrorIs(t, err, errorvalues.ErrTaskExists)
	})
	t.Run("blank name", func(t *testing.T) {
		_, err := s.CreateTask(ctx, uid, &service.CreateTaskRequest{Name: "   "})
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
	t.Run("user not found", func(t *testing.T) {
		_, err := s.CreateTask(ctx, uuid.New(), &service.CreateTaskRequest{Name: "Read"})
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("storage error", func(t *testing.T) {
		repo.state = stateDBError
		defer func() { repo.state = stateSuccess }()
		_, err := s.CreateTask(ctx, uid, &service.CreateTaskRequest{Name: "Read"})
		assert.ErrorIs(t, err, errorvalues.ErrStorage)
	})
	t.Run("conflict is not retried", func(t *testing.T) {
		repo.state = stateConflict
		defer func() { repo.state = stateSuccess }()
		before := repo.updates
		_, err := s.CreateTask(ctx, uid, &service.CreateTaskRequest{Name: "Read"})
		assert.ErrorIs(t, err, errorvalues.ErrVersionConflict)
		assert.Equal(t, before, repo.updates)
	})
}

func TestDeleteTask(t *testing.T) {
	s, _, uid := setupTasksService(t)
	ctx := context.Background()
	task, err := s.CreateTask(ctx, uid, &service.CreateTaskRequest{Name: "Gym"})
	require.NoError(t, err)
	t.Run("absent task is a no-op", func(t *testing.T) {
		require.NoError(t, s.DeleteTask(ctx, uid, uuid.New()))
		list, err := s.ListOnGoing(ctx, uid)
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})
	t.Run("deleted", func(t *testing.T) {
		require.NoError(t, s.DeleteTask(ctx, uid, task.ID))
		list, err := s.ListOnGoing(ctx, uid)
		require.NoError(t, err)
		assert.Empty(t, list)
	})
	t.Run("user not found", func(t *testing.T) {
		assert.ErrorIs(t, s.DeleteTask(ctx, uuid.New(), task.ID), errorvalues.ErrUserNotFound)
	})
}

func TestWorkItems(t *testing.T) {
	s, _, uid := setupTasksService(t)
	ctx := context.Background()
	task, err := s.CreateTask(ctx, uid, &service.CreateTaskRequest{Name: "Gym", StartDate: "2024-01-01", EndDate: "2024-12-31"})
	require.NoError(t, err)

	t.Run("add by name then read back", func(t *testing.T) {
		_, err := s.AddWorkItem(ctx, uid, &service.AddWorkRequest{
			Task: service.TaskRef{Name: "Gym"},
			Date: jan5,
			Text: "Run 5k",
		})
		require.NoError(t, err)
		work, err := s.GetWorkForDate(ctx, uid, service.TaskRef{Name: "Gym"}, jan5Pad)
		require.NoError(t, err)
		assert.Equal(t, []entity.WorkDetail{{Text: "Run 5k"}}, work)
	})
	t.Run("add by id reuses day entry", func(t *testing.T) {
		updated, err := s.AddWorkItem(ctx, uid, &service.AddWorkRequest{
			Task:      service.TaskRef{ID: task.ID},
			Date:      jan5Pad,
			Text:      "Stretch",
			Completed: true,
		})
		require.NoError(t, err)
		assert.Len(t, updated.Work, 1)
		work, err := s.GetWorkForDate(ctx, uid, service.TaskRef{ID: task.ID}, jan5)
		require.NoError(t, err)
		assert.Len(t, work, 2)
	})
	t.Run("add with invalid date", func(t *testing.T) {
		_, err := s.AddWorkItem(ctx, uid, &service.AddWorkRequest{
			Task: service.TaskRef{ID: task.ID},
			Date: service.WorkDate{Day: "5", Month: "Janvier", Year: "2024"},
			Text: "x",
		})
		assert.ErrorIs(t, err, errorvalues.ErrInvalidDate)
	})
	t.Run("add to unknown task", func(t *testing.T) {
		_, err := s.AddWorkItem(ctx, uid, &service.AddWorkRequest{Task: service.TaskRef{Name: "Swim"}, Date: jan5, Text: "x"})
		assert.ErrorIs(t, err, errorvalues.ErrTaskNotFound)
	})
	t.Run("update missing text leaves details unchanged", func(t *testing.T) {
		before, err := s.GetWorkForDate(ctx, uid, service.TaskRef{ID: task.ID}, jan5)
		require.NoError(t, err)
		err = s.UpdateWorkItemText(ctx, uid, &service.UpdateWorkRequest{TaskID: task.ID, Date: jan5, OldText: "Swim", NewText: "Dive"})
		assert.ErrorIs(t, err, errorvalues.ErrWorkDetailNotFound)
		after, err := s.GetWorkForDate(ctx, uid, service.TaskRef{ID: task.ID}, jan5)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})
	t.Run("update text", func(t *testing.T) {
		err := s.UpdateWorkItemText(ctx, uid, &service.UpdateWorkRequest{TaskID: task.ID, Date: jan5, OldText: "Run 5k", NewText: "Run 10k"})
		require.NoError(t, err)
		work, err := s.GetWorkForDate(ctx, uid, service.TaskRef{ID: task.ID}, jan5)
		require.NoError(t, err)
		assert.Equal(t, "Run 10k", work[0].Text)
	})
	t.Run("update on empty day", func(t *testing.T) {
		err := s.UpdateWorkItemText(ctx, uid, &service.UpdateWorkRequest{TaskID: task.ID, Date: service.WorkDate{Day: "6", Month: "January", Year: "2024"}, OldText: "a", NewText: "b"})
		assert.ErrorIs(t, err, errorvalues.ErrWorkEntryNotFound)
	})
	t.Run("toggle", func(t *testing.T) {
		require.NoError(t, s.ToggleCompletion(ctx, uid, &service.ToggleWorkRequest{TaskID: task.ID, Date: jan5, Text: "Run 10k", Completed: true}))
		err := s.ToggleCompletion(ctx, uid, &service.ToggleWorkRequest{TaskID: task.ID, Date: jan5, Text: "nope", Completed: true})
		assert.ErrorIs(t, err, errorvalues.ErrWorkDetailNotFound)
		err = s.ToggleCompletion(ctx, uuid.New(), &service.ToggleWorkRequest{TaskID: task.ID, Date: jan5, Text: "Run 10k"})
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
		err = s.ToggleCompletion(ctx, uid, &service.ToggleWorkRequest{TaskID: uuid.New(), Date: jan5, Text: "Run 10k"})
		assert.ErrorIs(t, err, errorvalues.ErrTaskNotFound)
	})
	t.Run("delete last details removes entry", func(t *testing.T) {
		require.NoError(t, s.DeleteWorkItem(ctx, uid, &service.WorkItemRequest{TaskID: task.ID, Date: jan5, Text: "Run 10k"}))
		require.NoError(t, s.DeleteWorkItem(ctx, uid, &service.WorkItemRequest{TaskID: task.ID, Date: jan5, Text: "Stretch"}))
		detail, err := s.GetTaskDetail(ctx, task.ID)
		require.NoError(t, err)
		assert.Empty(t, detail.Work)
		err = s.DeleteWorkItem(ctx, uid, &service.WorkItemRequest{TaskID: task.ID, Date: jan5, Text: "Stretch"})
		assert.ErrorIs(t, err, errorvalues.ErrWorkEntryNotFound)
	})
	t.Run("empty day is not an error", func(t *testing.T) {
		work, err := s.GetWorkForDate(ctx, uid, service.TaskRef{Name: "Gym"}, service.WorkDate{Day: "1", Month: "February", Year: "2024"})
		require.NoError(t, err)
		assert.NotNil(t, work)
		assert.Empty(t, work)
	})
}

func TestGetWorkForDateAcrossTasks(t *testing.T) {
	s, _, uid := setupTasksService(t)
	ctx := context.Background()
	for _, name := range []string{"Gym", "Read"} {
		_, err := s.CreateTask(ctx, uid, &service.CreateTaskRequest{Name: name})
		require.NoError(t, err)
		_, err = s.AddWorkItem(ctx, uid, &service.AddWorkRequest{Task: service.TaskRef{Name: name}, Date: jan5, Text: name + " item"})
		require.NoError(t, err)
	}
	work, err := s.GetWorkForDate(ctx, uid, service.TaskRef{}, jan5)
	require.NoError(t, err)
	assert.Equal(t, []entity.WorkDetail{{Text: "Gym item"}, {Text: "Read item"}}, work)
	_, err = s.GetWorkForDate(ctx, uuid.New(), service.TaskRef{}, jan5)
	assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
}

func TestCompletionScenario(t *testing.T) {
	s, _, uid := setupTasksService(t)
	ctx := context.Background()
	_, err := s.CreateTask(ctx, uid, &service.CreateTaskRequest{Name: "Gym", StartDate: "2024-01-01", EndDate: "2024-12-31"})
	require.NoError(t, err)
	t.Run("no work gives zero", func(t *testing.T) {
		stats, err := s.GetCompletionStats(ctx, uid, "Gym")
		require.NoError(t, err)
		assert.Equal(t, entity.CompletionStats{}, *stats)
	})
	task, err := s.AddWorkItem(ctx, uid, &service.AddWorkRequest{Task: service.TaskRef{Name: "Gym"}, Date: jan5, Text: "Run 5k"})
	require.NoError(t, err)
	require.NoError(t, s.ToggleCompletion(ctx, uid, &service.ToggleWorkRequest{TaskID: task.ID, Date: jan5, Text: "Run 5k", Completed: true}))
	stats, err := s.GetCompletionStats(ctx, uid, "Gym")
	require.NoError(t, err)
	assert.Equal(t, 100.0, stats.Overall)
	assert.Equal(t, 100.0, stats.Month)
	// Jan 5 is before the week of Jan 10, 2024 (starts Sunday Jan 7)
	assert.Equal(t, 0.0, stats.Week)
	assert.Equal(t, 0.0, stats.Today)

	_, err = s.GetCompletionStats(ctx, uid, "Swim")
	assert.ErrorIs(t, err, errorvalues.ErrTaskNotFound)
}

func TestCrossUserTaskLookup(t *testing.T) {
	s, repo, uid := setupTasksService(t)
	ctx := context.Background()
	other := &entity.User{ID: uuid.New(), Email: "other@example.com", PasswordHash: "hash"}
	require.NoError(t, repo.Create(ctx, other))
	task, err := s.CreateTask(ctx, other.ID, &service.CreateTaskRequest{Name: "Gym"})
	require.NoError(t, err)

	t.Run("detail found without owner id", func(t *testing.T) {
		detail, err := s.GetTaskDetail(ctx, task.ID)
		require.NoError(t, err)
		assert.Equal(t, "Gym", detail.Name)
	})
	t.Run("month heading", func(t *testing.T) {
		require.NoError(t, s.SetMonthHeading(ctx, task.ID, "January plan"))
		detail, err := s.GetTaskDetail(ctx, task.ID)
		require.NoError(t, err)
		assert.Equal(t, "January plan", detail.MonthHeading)
	})
	t.Run("unknown task", func(t *testing.T) {
		_, err := s.GetTaskDetail(ctx, uuid.New())
		assert.ErrorIs(t, err, errorvalues.ErrTaskNotFound)
		assert.ErrorIs(t, s.SetMonthHeading(ctx, uuid.New(), "x"), errorvalues.ErrTaskNotFound)
	})
	t.Run("completed tasks", func(t *testing.T) {
		owner := repo.get(other.ID)
		done := entity.NewTask("Old", "", "", fixedNow)
		owner.Tasks.Completed = append(owner.Tasks.Completed, done)
		repo.put(owner)
		detail, err := s.GetTaskDetail(ctx, done.ID)
		require.NoError(t, err)
		assert.Equal(t, "Old", detail.Name)
		assert.ErrorIs(t, s.SetMonthHeading(ctx, done.ID, "x"), errorvalues.ErrTaskNotFound)
		completed, err := s.ListCompleted(ctx, other.ID)
		require.NoError(t, err)
		assert.Len(t, completed, 1)
		completed, err = s.ListCompleted(ctx, uid)
		require.NoError(t, err)
		assert.Empty(t, completed)
	})
}

func TestNotePad(t *testing.T) {
	s, _, uid := setupTasksService(t)
	ctx := context.Background()
	note, err := s.GetNotePad(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, "", note)
	note, err = s.SetNotePad(ctx, uid, "  remember the milk \n")
	require.NoError(t, err)
	assert.Equal(t, "remember the milk", note)
	note, err = s.SetNotePad(ctx, uid, "   ")
	require.NoError(t, err)
	assert.Equal(t, "", note)
	_, err = s.SetNotePad(ctx, uuid.New(), "x")
	assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
}

// Concurrent writers against one user: every write either lands or fails
// with a version conflict, none is silently lost.
func TestConcurrentWritesAreNotLost(t *testing.T) {
	s, _, uid := setupTasksService(t)
	ctx := context.Background()
	task, err := s.CreateTask(ctx, uid, &service.CreateTaskRequest{Name: "Gym"})
	require.NoError(t, err)
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded []string
	)
	texts := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	for _, text := range texts {
		wg.Add(1)
		go func(text string) {
			defer wg.Done()
			_, err := s.AddWorkItem(ctx, uid, &service.AddWorkRequest{Task: service.TaskRef{ID: task.ID}, Date: jan5, Text: text})
			if err != nil {
				assert.ErrorIs(t, err, errorvalues.ErrVersionConflict)
				return
			}
			mu.Lock()
			succeeded = append(succeeded, text)
			mu.Unlock()
		}(text)
	}
	wg.Wait()
	work, err := s.GetWorkForDate(ctx, uid, service.TaskRef{ID: task.ID}, jan5)
	require.NoError(t, err)
	got := make([]string, 0, len(work))
	for _, d := range work {
		got = append(got, d.Text)
	}
	assert.ElementsMatch(t, succeeded, got)
}
