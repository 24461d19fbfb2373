package llm

import (
	"Instalens/internal/service"
	"context"
	log "log/slog"

	"github.com/goccy/go-json"
)

// NoEngagementData 空库时反馈给模型的占位文本
const NoEngagementData = "No engagement data found."

// HandleFunction 工具处理器函数签名
type HandleFunction func(context.Context, string) (string, error)

// ToolHandler 工具处理器
type ToolHandler struct {
	querySvc service.PostQueryService
}

func NewToolHandler(querySvc service.PostQueryService) *ToolHandler {
	return &ToolHandler{
		querySvc: querySvc,
	}
}

// GetHandleFunction 返回绑定了当前实例的工具映射表
func (s *ToolHandler) GetHandleFunction(funcName string) HandleFunction {
	return map[string]HandleFunction{
		FetchEngagementToolName: s.FetchEngagementData,
	}[funcName]
}

// FetchEngagementData 读取最近帖子投影并序列化给模型
func (s *ToolHandler) FetchEngagementData(ctx context.Context, argsJson string) (string, error) {
	rows, err := s.querySvc.FetchRecent(ctx)
	if err != nil {
		log.ErrorContext(ctx, "FetchEngagementData", "err", err)
		return "", err
	}

	if len(rows) == 0 {
		return NoEngagementData, nil
	}

	data, err := json.Marshal(rows)
	if err != nil {
		return "", err
	}

	log.InfoContext(ctx, "FetchEngagementData", "rows", len(rows))
	return string(data), nil
}
