package runway

import (
	"Runway_MCP/internal/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatPollResult_SuccessSingleURL(t *testing.T) {
	text := FormatPollResult(&PollResult{
		Outcome:  PollOutcomeSucceeded,
		Attempts: 4,
		Task: &models.Task{
			ID:     "task-abc",
			Status: models.TaskStatusSucceeded,
			Output: []string{"https://example.com/out.mp4"},
		},
	})

	assert.Contains(t, text, "task-abc")
	assert.Contains(t, text, "4 attempt(s)")
	assert.Contains(t, text, "Output URL: https://example.com/out.mp4")
}

func TestFormatPollResult_SuccessMultipleURLsAreEnumerated(t *testing.T) {
	text := FormatPollResult(&PollResult{
		Outcome:  PollOutcomeSucceeded,
		Attempts: 1,
		Task: &models.Task{
			ID:     "task-abc",
			Status: models.TaskStatusSucceeded,
			Output: []string{"https://example.com/a.png", "https://example.com/b.png"},
		},
	})

	// Both URLs enumerated in order, 1-indexed.
	assert.Contains(t, text, "1. https://example.com/a.png")
	assert.Contains(t, text, "2. https://example.com/b.png")
}

func TestFormatPollResult_FailureIncludesIDAndReason(t *testing.T) {
	text := FormatPollResult(&PollResult{
		Outcome:  PollOutcomeFailed,
		Attempts: 2,
		Task: &models.Task{
			ID:      "task-abc",
			Status:  models.TaskStatusFailed,
			Failure: "bad prompt",
		},
	})

	assert.Contains(t, text, "task-abc")
	assert.Contains(t, text, "bad prompt")
}

func TestFormatPollResult_FailureWithoutReasonFallsBack(t *testing.T) {
	text := FormatPollResult(&PollResult{
		Outcome:  PollOutcomeFailed,
		Attempts: 2,
		Task:     &models.Task{ID: "task-abc", Status: models.TaskStatusFailed},
	})

	assert.Contains(t, text, "Unknown error")
}

func TestFormatPollResult_TimeoutAdvisesFollowUp(t *testing.T) {
	text := FormatPollResult(&PollResult{
		Outcome:  PollOutcomeTimedOut,
		Attempts: 100,
		Elapsed:  300 * time.Second,
		Task:     &models.Task{ID: "task-abc", Status: models.TaskStatusRunning},
	})

	assert.Contains(t, text, "task-abc")
	assert.Contains(t, text, "100 attempt(s)")
	assert.Contains(t, text, "runway_get_task")
	// A timeout is not a failure and must not read like one.
	assert.NotContains(t, text, "failed")
}

func TestFormatTask_SnapshotFields(t *testing.T) {
	progress := 0.25
	text := FormatTask(&models.Task{
		ID:       "task-abc",
		Status:   models.TaskStatusRunning,
		Progress: &progress,
	})

	assert.Contains(t, text, "Task ID: task-abc")
	assert.Contains(t, text, "Status: RUNNING")
	assert.Contains(t, text, "Progress: 25%")
}

func TestFormatOrganization(t *testing.T) {
	text := FormatOrganization(&models.Organization{
		CreditBalance: 1250,
		Tier: models.OrganizationTier{
			Models: map[string]models.ModelLimits{
				"gen4_turbo": {MaxConcurrentGenerations: 5, MaxDailyGenerations: 100},
			},
		},
		Usage: models.OrganizationUsage{
			Models: map[string]models.ModelUsage{
				"gen4_turbo": {DailyGenerations: 7},
			},
		},
	})

	assert.Contains(t, text, "Credit balance: 1250")
	assert.Contains(t, text, "gen4_turbo: max 5 concurrent, max 100 daily generations")
	assert.Contains(t, text, "gen4_turbo: 7 generation(s)")
}
