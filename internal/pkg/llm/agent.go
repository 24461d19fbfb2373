package llm

import (
	"Instalens/internal/api/dto"
	"context"
	"errors"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/tmc/langchaingo/llms"
	"golang.org/x/sync/errgroup"
)

var tools = []llms.Tool{
	DefineFetchEngagementTool(),
}

type Agent interface {
	Chat(ctx context.Context, question string) (string, error)
}

type AgentImpl struct {
	model   llms.Model
	handler *ToolHandler
}

func NewAgent(model llms.Model, handler *ToolHandler) Agent {
	return &AgentImpl{
		model:   model,
		handler: handler,
	}
}

// Chat 单轮问答Agent：模型自行决定是否调用查询工具，
// 最终输出约定为 {"response": "..."} 的结构化答案
func (s *AgentImpl) Chat(ctx context.Context, question string) (string, error) {
	messages := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(analyticsChatPrompt),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(question),
			},
		},
	}

	content, err := s.runAgentLoop(ctx, messages, 5)
	if err != nil {
		return "", err
	}

	var answer dto.ChatAnswer
	if err = json.Unmarshal([]byte(content), &answer); err != nil {
		return "", fmt.Errorf("malformed model answer: %w", err)
	}

	return answer.Response, nil
}

// runAgentLoop 封装了通用的工具调用循环逻辑
func (s *AgentImpl) runAgentLoop(ctx context.Context, messages []llms.MessageContent, maxIter int) (string, error) {
	for i := 0; i < maxIter; i++ {
		// 调用模型决策
		resp, err := s.fetchAgentCall(ctx, messages, tools, 0.7)
		if err != nil {
			return "", err
		}
		if len(resp.Choices) == 0 {
			return "", errors.New("model returned no choices")
		}

		choice := resp.Choices[0]

		// 模型决定直接回复文本
		if len(choice.ToolCalls) == 0 {
			if choice.Content != "" {
				return choice.Content, nil
			}
			continue
		}

		// 模型决定调用工具 - 记录模型意图
		messages = append(messages, llms.MessageContent{
			Role:  llms.ChatMessageTypeAI,
			Parts: s.convertToolCallsToParts(choice.ToolCalls),
		})

		// 并行执行工具并同步响应
		toolResponses, err := s.executeTools(ctx, choice.ToolCalls)
		if err != nil {
			return "", err
		}

		// 将工具结果反馈给上下文，进入下一轮迭代
		messages = append(messages, toolResponses...)
	}
	return "", errors.New("agent loop exceeded max iterations")
}

// executeTools 通用的并行工具执行器，任一工具失败即中止本次问答
func (s *AgentImpl) executeTools(ctx context.Context, toolCalls []llms.ToolCall) ([]llms.MessageContent, error) {
	g, gCtx := errgroup.WithContext(ctx)
	toolResponses := make([]llms.ContentPart, len(toolCalls))

	for idx, tc := range toolCalls {
		i, toolCall := idx, tc
		g.Go(func() error {
			handler := s.handler.GetHandleFunction(toolCall.FunctionCall.Name)
			if handler == nil {
				return fmt.Errorf("未定义的工具: %s", toolCall.FunctionCall.Name)
			}

			// 执行具体工具逻辑
			result, err := handler(gCtx, toolCall.FunctionCall.Arguments)
			if err != nil {
				return err
			}

			toolResponses[i] = llms.ToolCallResponse{
				ToolCallID: toolCall.ID,
				Name:       toolCall.FunctionCall.Name,
				Content:    result,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var msgs []llms.MessageContent
	for _, tr := range toolResponses {
		msgs = append(msgs, llms.MessageContent{
			Role:  llms.ChatMessageTypeTool,
			Parts: []llms.ContentPart{tr},
		})
	}
	return msgs, nil
}

// convertToolCallsToParts 将工具调用转换为 ContentPart
func (s *AgentImpl) convertToolCallsToParts(tcs []llms.ToolCall) []llms.ContentPart {
	parts := make([]llms.ContentPart, len(tcs))
	for i, tc := range tcs {
		parts[i] = tc
	}
	return parts
}
