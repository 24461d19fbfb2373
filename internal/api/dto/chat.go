package dto

// ChatRequest 自然语言提问
type ChatRequest struct {
	Question string `json:"question" binding:"required"`
}

// ChatAnswer 模型约定输出的结构化答案
type ChatAnswer struct {
	Response string `json:"response"`
}
