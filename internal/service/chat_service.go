package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"edu-smart-go/internal/config"
	"edu-smart-go/internal/model"
	"edu-smart-go/internal/repository"
	"edu-smart-go/pkg/llm"
	"edu-smart-go/pkg/log"

	"github.com/gorilla/websocket"
)

// defaultChatSystemPrompt 是流式陪聊的 system 前导。
const defaultChatSystemPrompt = "You are a friendly study tutor. " +
	"Answer the student's questions conversationally and encourage them to think."

// ChatService 定义了流式陪聊的接口。
type ChatService interface {
	StreamResponse(ctx context.Context, sessionID, question string, ws *websocket.Conn) error
}

type chatService struct {
	llmClient        llm.Client
	conversationRepo repository.ConversationRepository
}

// NewChatService 创建一个新的 ChatService 实例。
// conversationRepo 可以为 nil（未启用 Redis），此时不携带也不保存历史。
func NewChatService(llmClient llm.Client, conversationRepo repository.ConversationRepository) ChatService {
	return &chatService{
		llmClient:        llmClient,
		conversationRepo: conversationRepo,
	}
}

// StreamResponse 把问题连同会话历史发给 LLM，并把流式分块写回 WebSocket。
func (s *chatService) StreamResponse(ctx context.Context, sessionID, question string, ws *websocket.Conn) error {
	// 1. 加载会话历史（Redis 未启用时为空）
	var history []model.ChatMessage
	if s.conversationRepo != nil {
		var err error
		history, err = s.conversationRepo.GetConversationHistory(ctx, sessionID)
		if err != nil {
			log.Errorf("Failed to load conversation history: %v", err)
			history = []model.ChatMessage{}
		}
	}

	// 2. 组装消息
	systemPrompt := config.Conf.LLM.Prompt.ChatSystem
	if systemPrompt == "" {
		systemPrompt = defaultChatSystemPrompt
	}
	llmMsgs := make([]llm.Message, 0, len(history)+2)
	llmMsgs = append(llmMsgs, llm.Message{Role: model.RoleSystem, Content: systemPrompt})
	for _, m := range history {
		llmMsgs = append(llmMsgs, llm.Message{Role: m.Role, Content: m.Content})
	}
	llmMsgs = append(llmMsgs, llm.Message{Role: model.RoleUser, Content: question})

	// 拦截 websocket writer 以捕获完整答案，并包装为 JSON 分块
	answerBuilder := &strings.Builder{}
	interceptor := &wsWriterInterceptor{conn: ws, writer: answerBuilder}

	// 3. 流式调用 LLM
	if err := s.llmClient.StreamChatMessages(ctx, llmMsgs, nil, interceptor); err != nil {
		return err
	}

	// 4. 发送完成通知，并把本轮对话保存到 Redis
	sendCompletion(ws)
	fullAnswer := answerBuilder.String()
	if s.conversationRepo != nil && len(fullAnswer) > 0 {
		now := time.Now()
		history = append(history,
			model.ChatMessage{Role: model.RoleUser, Content: question, Timestamp: now},
			model.ChatMessage{Role: model.RoleAssistant, Content: fullAnswer, Timestamp: now},
		)
		// 使用后台上下文：即使原始请求被取消，也保存已生成的答案
		if err := s.conversationRepo.UpdateConversationHistory(context.Background(), sessionID, history); err != nil {
			log.Errorf("Failed to save conversation history: %v", err)
		}
	}

	return nil
}

// wsWriterInterceptor 是对 websocket.Conn 的封装，用于捕获写入的消息。
type wsWriterInterceptor struct {
	conn   *websocket.Conn
	writer *strings.Builder
}

// WriteMessage 满足 llm.MessageWriter 接口。
func (w *wsWriterInterceptor) WriteMessage(messageType int, data []byte) error {
	w.writer.Write(data)
	// 将原始分块包装成 {"chunk":"..."}
	payload := map[string]string{"chunk": string(data)}
	b, _ := json.Marshal(payload)
	return w.conn.WriteMessage(messageType, b)
}

// sendCompletion 发送完成通知 JSON
func sendCompletion(ws *websocket.Conn) {
	notif := map[string]interface{}{
		"type":      "completion",
		"status":    "finished",
		"timestamp": time.Now().UnixMilli(),
	}
	b, _ := json.Marshal(notif)
	_ = ws.WriteMessage(websocket.TextMessage, b)
}
