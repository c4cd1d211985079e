package models

// TaskStatus 表示远程任务的生命周期状态。
// 状态由 Runway 服务端分配，本地只读不改。
type TaskStatus string

const (
	TaskStatusPending   TaskStatus = "PENDING"   // 任务已创建，等待调度
	TaskStatusThrottled TaskStatus = "THROTTLED" // 任务因配额被暂缓，等同于进行中
	TaskStatusRunning   TaskStatus = "RUNNING"   // 任务正在执行
	TaskStatusSucceeded TaskStatus = "SUCCEEDED" // 终态：成功
	TaskStatusFailed    TaskStatus = "FAILED"    // 终态：失败
	TaskStatusCancelled TaskStatus = "CANCELLED" // 终态：已取消
)

// IsTerminal 判断状态是否为终态。到达终态后远程侧不会再发生状态迁移。
func (s TaskStatus) IsTerminal() bool {
	switch s {
	case TaskStatusSucceeded, TaskStatusFailed, TaskStatusCancelled:
		return true
	}
	return false
}

// Task 是 GET /v1/tasks/{id} 返回的任务视图。
// 字段名与 Runway 公开 API 的响应保持一致。
type Task struct {
	ID          string     `json:"id"`                    // 远程分配的任务标识，创建后不可变
	Status      TaskStatus `json:"status"`                // 当前状态
	Progress    *float64   `json:"progress,omitempty"`    // 进度比例 [0,1]，可能缺失
	Output      []string   `json:"output,omitempty"`      // 产物 URL 列表，成功后非空
	Failure     string     `json:"failure,omitempty"`     // 失败描述，失败时可能提供
	FailureCode string     `json:"failureCode,omitempty"` // 失败分类码
	CreatedAt   string     `json:"createdAt,omitempty"`   // 创建时间（远程侧时间戳字符串）
}

// TaskCreated 是创建类接口（image_to_video 等）的响应体。
type TaskCreated struct {
	ID string `json:"id"`
}
