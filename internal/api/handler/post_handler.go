package handler

import (
	"Instalens/internal/pkg/response"
	"Instalens/internal/service"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	querySvc service.PostQueryService
}

func NewPostHandler(querySvc service.PostQueryService) *PostHandler {
	return &PostHandler{
		querySvc: querySvc,
	}
}

// GetRecentPosts 获取最近入库的帖子快照
func (h *PostHandler) GetRecentPosts(c *gin.Context) {
	rows, err := h.querySvc.FetchRecent(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, rows)
}
