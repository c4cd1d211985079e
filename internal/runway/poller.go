package runway

import (
	"Runway_MCP/internal/models"
	"context"
	"time"
)

// TaskGetter 是轮询器对远程客户端的最小依赖。
type TaskGetter interface {
	GetTask(ctx context.Context, taskID string) (*models.Task, error)
}

// PollOutcome 区分一次轮询的四种收尾方式。
// 任务失败或被取消是正常的业务结果，不是系统错误；超时同样是独立的结果。
type PollOutcome string

const (
	PollOutcomeSucceeded PollOutcome = "succeeded"
	PollOutcomeFailed    PollOutcome = "failed"
	PollOutcomeCancelled PollOutcome = "cancelled"
	PollOutcomeTimedOut  PollOutcome = "timed_out"
)

// PollResult 是一次轮询的汇总结果。
type PollResult struct {
	Outcome  PollOutcome   // 收尾方式
	Task     *models.Task  // 最后一次观测到的任务视图
	Attempts int           // 已发出的查询次数，首次查询计为 1
	Elapsed  time.Duration // 实际消耗的墙钟时间
}

// Poller 以固定间隔轮询远程任务，直到观测到终态或耗尽时间预算。
type Poller struct {
	getter   TaskGetter
	interval time.Duration
}

// NewPoller 创建一个轮询器。interval 非正时回退为 3 秒的固定间隔。
func NewPoller(getter TaskGetter, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = 3 * time.Second
	}
	return &Poller{getter: getter, interval: interval}
}

// Poll 对指定任务执行有界轮询。
//
// 行为约定：
//   - 查询次数从 1 开始计数；查询自身失败（网络/认证/HTTP 错误）立即中止并返回该错误，不重试。
//   - 观测到终态立即返回，终态之后绝不休眠。
//   - 时间预算在每次查询之后检查，因此 maxWait 为 0 时也会恰好发出一次查询；
//     预算在一次查询进行中耗尽时，允许该查询完成。
//
// 参数:
//
//	ctx: 上下文，贯穿每一次出站查询。
//	taskID: 远程任务标识。
//	maxWait: 时间预算，非负。
//
// 返回值:
//
//	*PollResult: 轮询汇总结果。
//	error: 查询自身失败时返回错误，此时不产生 PollResult。
func (p *Poller) Poll(ctx context.Context, taskID string, maxWait time.Duration) (*PollResult, error) {
	start := time.Now()
	attempts := 0

	for {
		attempts++
		task, err := p.getter.GetTask(ctx, taskID)
		if err != nil {
			return nil, err
		}

		result := &PollResult{Task: task, Attempts: attempts}
		switch task.Status {
		case models.TaskStatusSucceeded:
			result.Outcome = PollOutcomeSucceeded
			result.Elapsed = time.Since(start)
			return result, nil
		case models.TaskStatusFailed:
			result.Outcome = PollOutcomeFailed
			result.Elapsed = time.Since(start)
			return result, nil
		case models.TaskStatusCancelled:
			result.Outcome = PollOutcomeCancelled
			result.Elapsed = time.Since(start)
			return result, nil
		}

		if time.Since(start) >= maxWait {
			result.Outcome = PollOutcomeTimedOut
			result.Elapsed = time.Since(start)
			return result, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(p.interval):
		}
	}
}
