package models

// 本文件中的请求体结构与 Runway 公开 API 的请求字段一一对应，
// 字段名（promptText、promptImage、ratio、duration 等）必须逐字节保持兼容。

// TextToVideoRequest 是 POST /v1/text_to_video 的请求体。
type TextToVideoRequest struct {
	Model      string `json:"model"`
	PromptText string `json:"promptText"`
	Ratio      string `json:"ratio"`
	Duration   int    `json:"duration"`
	Seed       *int   `json:"seed,omitempty"`
}

// ImageToVideoRequest 是 POST /v1/image_to_video 的请求体。
type ImageToVideoRequest struct {
	Model       string `json:"model"`
	PromptImage string `json:"promptImage"`
	PromptText  string `json:"promptText,omitempty"`
	Ratio       string `json:"ratio"`
	Duration    int    `json:"duration"`
	Seed        *int   `json:"seed,omitempty"`
}

// ReferenceImage 是文生图请求中的参考图条目。
type ReferenceImage struct {
	URI string `json:"uri"`
	Tag string `json:"tag,omitempty"`
}

// TextToImageRequest 是 POST /v1/text_to_image 的请求体。
type TextToImageRequest struct {
	Model           string           `json:"model"`
	PromptText      string           `json:"promptText"`
	Ratio           string           `json:"ratio"`
	ReferenceImages []ReferenceImage `json:"referenceImages,omitempty"`
	Seed            *int             `json:"seed,omitempty"`
}
