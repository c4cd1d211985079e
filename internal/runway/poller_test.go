package runway

import (
	"Runway_MCP/internal/models"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedGetter returns a scripted sequence of statuses, one per GetTask call,
// and records how often it was called and when it slept between calls.
type scriptedGetter struct {
	statuses []models.TaskStatus
	failure  string
	output   []string
	calls    int
	err      error
}

func (g *scriptedGetter) GetTask(ctx context.Context, taskID string) (*models.Task, error) {
	g.calls++
	if g.err != nil {
		return nil, g.err
	}
	idx := g.calls - 1
	if idx >= len(g.statuses) {
		idx = len(g.statuses) - 1
	}
	return &models.Task{
		ID:      taskID,
		Status:  g.statuses[idx],
		Output:  g.output,
		Failure: g.failure,
	}, nil
}

func TestPoll_RunningThenSucceeded(t *testing.T) {
	// RUNNING N times, then SUCCEEDED: exactly N+1 attempts.
	const n = 3
	statuses := make([]models.TaskStatus, 0, n+1)
	for i := 0; i < n; i++ {
		statuses = append(statuses, models.TaskStatusRunning)
	}
	statuses = append(statuses, models.TaskStatusSucceeded)

	getter := &scriptedGetter{statuses: statuses, output: []string{"https://example.com/video.mp4"}}
	poller := NewPoller(getter, time.Millisecond)

	result, err := poller.Poll(context.Background(), "task-123", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, PollOutcomeSucceeded, result.Outcome)
	assert.Equal(t, n+1, result.Attempts)
	assert.Equal(t, n+1, getter.calls)
	assert.Equal(t, models.TaskStatusSucceeded, result.Task.Status)
}

func TestPoll_TerminalOnFirstAttempt_NoSleep(t *testing.T) {
	getter := &scriptedGetter{statuses: []models.TaskStatus{models.TaskStatusSucceeded}}
	// A huge interval: if the poller slept after the terminal response the
	// test would blow way past its deadline.
	poller := NewPoller(getter, time.Hour)

	start := time.Now()
	result, err := poller.Poll(context.Background(), "task-123", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, PollOutcomeSucceeded, result.Outcome)
	assert.Equal(t, 1, result.Attempts)
	assert.Less(t, time.Since(start), time.Second, "poller must not sleep after a terminal response")
}

func TestPoll_ZeroBudget_SingleAttempt(t *testing.T) {
	t.Run("non-terminal first response times out", func(t *testing.T) {
		getter := &scriptedGetter{statuses: []models.TaskStatus{models.TaskStatusPending}}
		poller := NewPoller(getter, time.Hour)

		result, err := poller.Poll(context.Background(), "task-123", 0)
		require.NoError(t, err)
		assert.Equal(t, PollOutcomeTimedOut, result.Outcome)
		assert.Equal(t, 1, result.Attempts)
		assert.Equal(t, 1, getter.calls)
	})

	t.Run("terminal first response is reported", func(t *testing.T) {
		getter := &scriptedGetter{statuses: []models.TaskStatus{models.TaskStatusFailed}, failure: "bad prompt"}
		poller := NewPoller(getter, time.Hour)

		result, err := poller.Poll(context.Background(), "task-123", 0)
		require.NoError(t, err)
		assert.Equal(t, PollOutcomeFailed, result.Outcome)
		assert.Equal(t, 1, result.Attempts)
	})
}

func TestPoll_FailedTask(t *testing.T) {
	getter := &scriptedGetter{
		statuses: []models.TaskStatus{models.TaskStatusRunning, models.TaskStatusFailed},
		failure:  "bad prompt",
	}
	poller := NewPoller(getter, time.Millisecond)

	result, err := poller.Poll(context.Background(), "task-123", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, PollOutcomeFailed, result.Outcome)
	assert.Equal(t, 2, result.Attempts)
	assert.Equal(t, "bad prompt", result.Task.Failure)
}

func TestPoll_CancelledTask(t *testing.T) {
	getter := &scriptedGetter{statuses: []models.TaskStatus{models.TaskStatusCancelled}}
	poller := NewPoller(getter, time.Millisecond)

	result, err := poller.Poll(context.Background(), "task-123", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, PollOutcomeCancelled, result.Outcome)
}

func TestPoll_QueryErrorAbortsImmediately(t *testing.T) {
	getter := &scriptedGetter{err: errors.New("connection refused")}
	poller := NewPoller(getter, time.Millisecond)

	result, err := poller.Poll(context.Background(), "task-123", time.Minute)
	require.Error(t, err)
	assert.Nil(t, result)
	assert.Equal(t, 1, getter.calls, "a failed query must not be retried")
}

func TestPoll_ThrottledIsTreatedAsInProgress(t *testing.T) {
	getter := &scriptedGetter{
		statuses: []models.TaskStatus{models.TaskStatusThrottled, models.TaskStatusRunning, models.TaskStatusSucceeded},
		output:   []string{"https://example.com/image.png"},
	}
	poller := NewPoller(getter, time.Millisecond)

	result, err := poller.Poll(context.Background(), "task-123", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, PollOutcomeSucceeded, result.Outcome)
	assert.Equal(t, 3, result.Attempts)
}
