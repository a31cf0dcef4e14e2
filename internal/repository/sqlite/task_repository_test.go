package sqlite

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/domain"
	"taskboard/internal/repository"
)

func TestTaskRepositoryCreateAndGet(t *testing.T) {
	repo := NewTaskRepository(openTestDB(t))
	ctx := context.Background()

	task := &domain.Task{
		Title:       "write report",
		Description: "quarterly numbers",
		Status:      domain.TaskStatusPending,
	}
	id, err := repo.Create(ctx, task)
	require.NoError(t, err)
	assert.Positive(t, id)
	assert.False(t, task.CreatedAt.IsZero())
	assert.False(t, task.UpdatedAt.IsZero())

	got, err := repo.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "write report", got.Title)
	assert.Equal(t, "quarterly numbers", got.Description)
	assert.Equal(t, domain.TaskStatusPending, got.Status)
}

func TestTaskRepositoryGetMiss(t *testing.T) {
	repo := NewTaskRepository(openTestDB(t))

	_, err := repo.Get(context.Background(), 12345)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestTaskRepositoryListWindowAndCount(t *testing.T) {
	repo := NewTaskRepository(openTestDB(t))
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		_, err := repo.Create(ctx, &domain.Task{
			Title:  fmt.Sprintf("task %d", i),
			Status: domain.TaskStatusPending,
		})
		require.NoError(t, err)
	}

	total, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)

	window, err := repo.List(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, window, 2)
	assert.Equal(t, "task 3", window[0].Title)
	assert.Equal(t, "task 4", window[1].Title)

	tail, err := repo.List(ctx, 4, 10)
	require.NoError(t, err)
	require.Len(t, tail, 1)
	assert.Equal(t, "task 5", tail[0].Title)

	empty, err := repo.List(ctx, 100, 10)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestTaskRepositoryUpdate(t *testing.T) {
	repo := NewTaskRepository(openTestDB(t))
	ctx := context.Background()

	task := &domain.Task{Title: "before", Status: domain.TaskStatusPending}
	id, err := repo.Create(ctx, task)
	require.NoError(t, err)
	createdAt := task.CreatedAt

	time.Sleep(10 * time.Millisecond)

	task.Title = "after"
	task.Status = domain.TaskStatusDone
	require.NoError(t, repo.Update(ctx, task))

	got, err := repo.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "after", got.Title)
	assert.Equal(t, domain.TaskStatusDone, got.Status)
	assert.False(t, got.UpdatedAt.Before(createdAt))
	assert.True(t, got.UpdatedAt.After(got.CreatedAt))
}

func TestTaskRepositoryUpdateMiss(t *testing.T) {
	repo := NewTaskRepository(openTestDB(t))

	err := repo.Update(context.Background(), &domain.Task{
		ID:     999,
		Title:  "nobody home",
		Status: domain.TaskStatusPending,
	})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestTaskRepositoryDelete(t *testing.T) {
	repo := NewTaskRepository(openTestDB(t))
	ctx := context.Background()

	task := &domain.Task{Title: "throwaway", Status: domain.TaskStatusPending}
	id, err := repo.Create(ctx, task)
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, id))

	_, err = repo.Get(ctx, id)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, id), repository.ErrNotFound)
}
