package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"edu-smart-go/internal/service"
	"edu-smart-go/pkg/log"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // 允许所有来源
	},
}

// ChatHandler 负责处理 WebSocket 流式陪聊连接。
type ChatHandler struct {
	chatService service.ChatService
}

// NewChatHandler 创建一个新的 ChatHandler。
func NewChatHandler(chatService service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// NewSession 返回一个新的会话 id，客户端拿它去建立 WebSocket 连接。
func (h *ChatHandler) NewSession(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"sessionId": uuid.NewString()})
}

// Handle 处理一个传入的 WebSocket 连接。
// 每条文本帧是一个问题，回答以 {"chunk":"..."} 分块流式写回，结尾发送 completion 通知。
func (h *ChatHandler) Handle(c *gin.Context) {
	sessionID := c.Param("session")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Session required"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error("WebSocket 升级失败", err)
		return
	}
	defer conn.Close()

	log.Infof("WebSocket 连接已建立，会话: %s", sessionID)

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			log.Warnf("从 WebSocket 读取消息失败: %v", err)
			break
		}

		err = h.chatService.StreamResponse(c.Request.Context(), sessionID, string(message), conn)
		if err != nil {
			log.Errorf("处理流式响应失败: %v", err)
			// 统一 JSON 错误，随后仍然发送 completion 通知
			errResp := map[string]string{"error": "AI error"}
			b, _ := json.Marshal(errResp)
			_ = conn.WriteMessage(websocket.TextMessage, b)
			notif := map[string]interface{}{
				"type":      "completion",
				"status":    "finished",
				"timestamp": time.Now().UnixMilli(),
			}
			nb, _ := json.Marshal(notif)
			_ = conn.WriteMessage(websocket.TextMessage, nb)
			break
		}
	}
}
