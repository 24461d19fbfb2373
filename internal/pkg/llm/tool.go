package llm

import "github.com/tmc/langchaingo/llms"

// FetchEngagementToolName 查询工具名，模型通过它读取已入库的互动数据
const FetchEngagementToolName = "fetch_engagement_data"

// DefineFetchEngagementTool 定义查询工具的元数据，无入参
func DefineFetchEngagementTool() llms.Tool {
	return llms.Tool{
		Type: "function",
		Function: &llms.FunctionDefinition{
			Name:        FetchEngagementToolName,
			Description: "Fetch the stored Instagram engagement data: instagram_id, caption, likes, comments, media_type, timestamp, engagement and total_followers for the most recent posts, newest first. Call this whenever the question depends on actual post performance.",
			Parameters: map[string]any{
				"type":                 "object",
				"properties":           map[string]any{},
				"additionalProperties": false,
			},
		},
	}
}
