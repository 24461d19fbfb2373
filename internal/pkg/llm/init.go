package llm

import (
	"Instalens/internal/api/config"
	log "log/slog"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

var analyticsChatPrompt string

// InitLLM 初始化模型客户端并加载 prompt，客户端通过依赖注入传递
func InitLLM() (llms.Model, error) {
	cfg := config.Cfg.LLM

	llm, err := openai.New(
		openai.WithModel(cfg.TextModel),
		openai.WithToken(cfg.ApiKey),
		openai.WithBaseURL(cfg.URL),
	)

	if err != nil {
		log.Error("AI大模型初始化失败", "err", err)
		return nil, err
	}

	// 从prompt txt文件中读取prompt
	analyticsChatPrompt = readPrompt(cfg.PromptsPath.AnalyticsChat)

	return llm, nil
}
