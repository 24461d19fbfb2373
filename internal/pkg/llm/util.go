package llm

import (
	"Instalens/internal/api/config"
	"context"
	log "log/slog"
	"os"

	"github.com/tmc/langchaingo/llms"
)

func readPrompt(file string) string {
	data, err := os.ReadFile(file)
	if err != nil {
		log.Error("读取prompt文件失败", "err", err)
		return ""
	}
	return string(data)
}

func (s *AgentImpl) fetchAgentCall(ctx context.Context, messages []llms.MessageContent, tools []llms.Tool, temp float64) (*llms.ContentResponse, error) {
	if err := TextSem.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer TextSem.Release(1)

	log.InfoContext(ctx, "正在请求AI大模型")
	return s.model.GenerateContent(ctx, messages,
		llms.WithModel(config.Cfg.LLM.TextModel),
		llms.WithTemperature(temp),
		llms.WithTools(tools),
		llms.WithJSONMode(),
	)
}
