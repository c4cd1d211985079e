package runway

import (
	"Runway_MCP/internal/models"
	"fmt"
	"sort"
	"strings"
)

// 本文件把任务状态渲染为返回给工具调用方的人类可读文本。

// FormatPollResult 将一次轮询的收尾结果渲染为文本。
func FormatPollResult(result *PollResult) string {
	task := result.Task
	switch result.Outcome {
	case PollOutcomeSucceeded:
		var b strings.Builder
		fmt.Fprintf(&b, "Task %s completed successfully after %d attempt(s).\n", task.ID, result.Attempts)
		b.WriteString(formatOutput(task.Output))
		return b.String()
	case PollOutcomeFailed:
		failure := task.Failure
		if failure == "" {
			failure = "Unknown error"
		}
		msg := fmt.Sprintf("Task %s failed after %d attempt(s): %s", task.ID, result.Attempts, failure)
		if task.FailureCode != "" {
			msg += fmt.Sprintf(" (code: %s)", task.FailureCode)
		}
		return msg
	case PollOutcomeCancelled:
		return fmt.Sprintf("Task %s was cancelled after %d attempt(s).", task.ID, result.Attempts)
	default:
		return fmt.Sprintf(
			"Task %s did not reach a terminal state within the wait budget (%d attempt(s), status: %s, %.0fs elapsed).\n"+
				"The task is still running remotely. Check on it later with runway_get_task or runway_poll_task.",
			task.ID, result.Attempts, task.Status, result.Elapsed.Seconds())
	}
}

// FormatTask 将单次状态查询的任务快照渲染为文本。
func FormatTask(task *models.Task) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Task ID: %s\n", task.ID)
	fmt.Fprintf(&b, "Status: %s\n", task.Status)
	if task.Progress != nil {
		fmt.Fprintf(&b, "Progress: %.0f%%\n", *task.Progress*100)
	}
	if task.CreatedAt != "" {
		fmt.Fprintf(&b, "Created at: %s\n", task.CreatedAt)
	}
	switch task.Status {
	case models.TaskStatusSucceeded:
		b.WriteString(formatOutput(task.Output))
	case models.TaskStatusFailed:
		failure := task.Failure
		if failure == "" {
			failure = "Unknown error"
		}
		fmt.Fprintf(&b, "Failure: %s\n", failure)
		if task.FailureCode != "" {
			fmt.Fprintf(&b, "Failure code: %s\n", task.FailureCode)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// formatOutput 渲染任务产物。多个 URL 时按顺序从 1 开始编号。
func formatOutput(output []string) string {
	switch len(output) {
	case 0:
		return "No output URLs were returned.\n"
	case 1:
		return fmt.Sprintf("Output URL: %s\n", output[0])
	default:
		var b strings.Builder
		b.WriteString("Output URLs:\n")
		for i, url := range output {
			fmt.Fprintf(&b, "%d. %s\n", i+1, url)
		}
		return b.String()
	}
}

// FormatTaskCreated 渲染创建成功但未开启自动轮询时的提示文本。
func FormatTaskCreated(taskID string) string {
	return fmt.Sprintf(
		"Task created with ID: %s\nAuto-polling is disabled. Use runway_poll_task or runway_get_task to check its status.",
		taskID)
}

// FormatOrganization 渲染组织额度与限额摘要。
func FormatOrganization(org *models.Organization) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Credit balance: %d\n", org.CreditBalance)

	if len(org.Tier.Models) > 0 {
		b.WriteString("Tier limits:\n")
		for _, name := range sortedModelNames(org.Tier.Models) {
			limits := org.Tier.Models[name]
			fmt.Fprintf(&b, "- %s: max %d concurrent, max %d daily generations\n",
				name, limits.MaxConcurrentGenerations, limits.MaxDailyGenerations)
		}
	}
	if len(org.Usage.Models) > 0 {
		b.WriteString("Usage today:\n")
		names := make([]string, 0, len(org.Usage.Models))
		for name := range org.Usage.Models {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(&b, "- %s: %d generation(s)\n", name, org.Usage.Models[name].DailyGenerations)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func sortedModelNames(limits map[string]models.ModelLimits) []string {
	names := make([]string, 0, len(limits))
	for name := range limits {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
