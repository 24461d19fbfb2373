package handler

import (
	"Instalens/internal/api/dto"
	"Instalens/internal/pkg/llm"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	agent llm.Agent
}

func NewChatHandler(agent llm.Agent) *ChatHandler {
	return &ChatHandler{agent: agent}
}

// Chat 对话入口，正常返回纯文本答案；
// 循环中的任何失败只向上传播一层，转为 500 加错误文本
func (s *ChatHandler) Chat(c *gin.Context) {
	var req dto.ChatRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	answer, err := s.agent.Chat(c.Request.Context(), req.Question)
	if err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}

	c.String(http.StatusOK, answer)
}
