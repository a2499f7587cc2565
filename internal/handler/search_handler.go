package handler

import (
	"errors"
	"net/http"
	"strconv"

	"edu-smart-go/internal/service"
	"edu-smart-go/pkg/log"

	"github.com/gin-gonic/gin"
)

// SearchHandler 负责处理答疑历史全文检索的 API 请求。
type SearchHandler struct {
	searchService service.SearchService
}

// NewSearchHandler 创建一个新的 SearchHandler 实例。
func NewSearchHandler(searchService service.SearchService) *SearchHandler {
	return &SearchHandler{searchService: searchService}
}

// SearchHistory 按关键词检索答疑历史。
func (h *SearchHandler) SearchHistory(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query required"})
		return
	}
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))

	docs, err := h.searchService.SearchHistory(c.Request.Context(), query, size)
	if err != nil {
		if errors.Is(err, service.ErrSearchDisabled) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "History search is disabled"})
			return
		}
		log.Error("SearchHistory: 检索失败", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search history"})
		return
	}

	c.JSON(http.StatusOK, docs)
}
