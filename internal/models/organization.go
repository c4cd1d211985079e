package models

// Organization 是 GET /v1/organization 返回的组织信息视图。
type Organization struct {
	CreditBalance int               `json:"creditBalance"` // 剩余额度
	Tier          OrganizationTier  `json:"tier"`          // 当前套餐的模型限额
	Usage         OrganizationUsage `json:"usage"`         // 当日用量
}

// OrganizationTier 描述套餐内各模型的并发与日限额。
type OrganizationTier struct {
	MaxMonthlyCreditSpend int                    `json:"maxMonthlyCreditSpend,omitempty"`
	Models                map[string]ModelLimits `json:"models,omitempty"`
}

// ModelLimits 是单个模型的限额。
type ModelLimits struct {
	MaxConcurrentGenerations int `json:"maxConcurrentGenerations"`
	MaxDailyGenerations      int `json:"maxDailyGenerations"`
}

// OrganizationUsage 描述各模型的当日已用量。
type OrganizationUsage struct {
	Models map[string]ModelUsage `json:"models,omitempty"`
}

// ModelUsage 是单个模型的用量计数。
type ModelUsage struct {
	DailyGenerations int `json:"dailyGenerations"`
}
