// Package handler 包含了处理 HTTP 请求的控制器逻辑。
package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"edu-smart-go/internal/model"
	"edu-smart-go/internal/service"
	"edu-smart-go/pkg/log"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// DoubtHandler 负责处理答疑与历史记录相关的 API 请求。
type DoubtHandler struct {
	doubtService service.DoubtService
}

// NewDoubtHandler 创建一个新的 DoubtHandler 实例。
func NewDoubtHandler(doubtService service.DoubtService) *DoubtHandler {
	return &DoubtHandler{doubtService: doubtService}
}

// AskDoubtRequest 定义了答疑 API 的请求体结构。
type AskDoubtRequest struct {
	Messages []model.ChatMessage `json:"messages"`
	ImageURL string              `json:"image_url"`
}

// doubtResponse 是历史记录的对外结构，steps 反序列化为数组返回。
type doubtResponse struct {
	ID           uint            `json:"id"`
	QuestionText string          `json:"questionText"`
	ImageURL     string          `json:"imageUrl,omitempty"`
	Answer       string          `json:"answer"`
	Steps        []string        `json:"steps"`
	Subject      string          `json:"subject"`
	Topic        string          `json:"topic"`
	Timestamp    model.LocalTime `json:"timestamp"`
}

func toDoubtResponse(d model.Doubt) doubtResponse {
	steps := []string{}
	if d.Steps != "" {
		_ = json.Unmarshal([]byte(d.Steps), &steps)
	}
	return doubtResponse{
		ID:           d.ID,
		QuestionText: d.Question,
		ImageURL:     d.ImageURL,
		Answer:       d.Answer,
		Steps:        steps,
		Subject:      d.Subject,
		Topic:        d.Topic,
		Timestamp:    model.LocalTime(d.CreatedAt),
	}
}

// AskDoubt 处理一次学生答疑请求。
func (h *DoubtHandler) AskDoubt(c *gin.Context) {
	var req AskDoubtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	ans, err := h.doubtService.AskDoubt(c.Request.Context(), req.Messages, req.ImageURL)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMessagesRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Messages required"})
		case errors.Is(err, service.ErrNoUserMessage):
			c.JSON(http.StatusBadRequest, gin.H{"error": "No user message found"})
		default:
			log.Error("AskDoubt: AI 调用失败", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "AI error"})
		}
		return
	}

	c.JSON(http.StatusOK, ans)
}

// GetHistory 返回全部答疑历史。
func (h *DoubtHandler) GetHistory(c *gin.Context) {
	doubts, err := h.doubtService.GetHistory()
	if err != nil {
		log.Error("GetHistory: 查询历史失败", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch history"})
		return
	}

	resp := make([]doubtResponse, 0, len(doubts))
	for _, d := range doubts {
		resp = append(resp, toDoubtResponse(d))
	}
	c.JSON(http.StatusOK, resp)
}

// GetDoubtByID 返回单条答疑记录。
func (h *DoubtHandler) GetDoubtByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid doubt id"})
		return
	}

	doubt, err := h.doubtService.GetDoubtByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Doubt not found"})
			return
		}
		log.Error("GetDoubtByID: 查询失败", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch doubt"})
		return
	}

	c.JSON(http.StatusOK, toDoubtResponse(*doubt))
}
