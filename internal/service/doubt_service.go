package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"edu-smart-go/internal/answer"
	"edu-smart-go/internal/config"
	"edu-smart-go/internal/model"
	"edu-smart-go/internal/repository"
	"edu-smart-go/pkg/kafka"
	"edu-smart-go/pkg/llm"
	"edu-smart-go/pkg/log"
	"edu-smart-go/pkg/tasks"
)

// defaultSystemPrompt 要求模型以固定 JSON 结构回答，便于解析科目/主题/步骤。
const defaultSystemPrompt = `You are a patient tutor helping a student resolve a doubt. ` +
	`Respond with a single JSON object of the shape ` +
	`{"subject": string, "topic": string, "answer": string, "steps": [string], "followUpQuestion": string}. ` +
	`Classify the question into a short subject and topic, answer clearly, ` +
	`list the solution steps, and suggest one follow-up question. ` +
	`Return only the JSON object, without markdown fences.`

// DoubtService 定义了学生答疑的业务操作。
type DoubtService interface {
	// AskDoubt 把对话发给 LLM，按触发消息做格式化后写入历史并更新薄弱知识点。
	AskDoubt(ctx context.Context, messages []model.ChatMessage, imageURL string) (*model.Answer, error)
	GetHistory() ([]model.Doubt, error)
	GetDoubtByID(id uint) (*model.Doubt, error)
}

type doubtService struct {
	llmClient     llm.Client
	doubtRepo     repository.DoubtRepository
	weakTopicRepo repository.WeakTopicRepository
}

// NewDoubtService 创建一个新的 DoubtService 实例。
func NewDoubtService(llmClient llm.Client, doubtRepo repository.DoubtRepository, weakTopicRepo repository.WeakTopicRepository) DoubtService {
	return &doubtService{
		llmClient:     llmClient,
		doubtRepo:     doubtRepo,
		weakTopicRepo: weakTopicRepo,
	}
}

// AskDoubt 完成一次完整的答疑流程。
// 已经算出的回答不会因为落库失败而丢弃：持久化错误只记日志，回答照常返回。
func (s *doubtService) AskDoubt(ctx context.Context, messages []model.ChatMessage, imageURL string) (*model.Answer, error) {
	if len(messages) == 0 {
		return nil, ErrMessagesRequired
	}
	trigger, ok := model.LastUserMessage(messages)
	if !ok {
		return nil, ErrNoUserMessage
	}

	// 1. 组装消息：固定 system 前导 + 原始对话
	systemPrompt := config.Conf.LLM.Prompt.System
	if systemPrompt == "" {
		systemPrompt = defaultSystemPrompt
	}
	llmMsgs := make([]llm.Message, 0, len(messages)+1)
	llmMsgs = append(llmMsgs, llm.Message{Role: model.RoleSystem, Content: systemPrompt})
	for _, m := range messages {
		llmMsgs = append(llmMsgs, llm.Message{Role: m.Role, Content: m.Content})
	}

	// 2. 调用 LLM，失败时统一上抛，不重试
	raw, err := s.llmClient.Chat(ctx, llmMsgs, nil)
	if err != nil {
		return nil, fmt.Errorf("LLM 调用失败: %w", err)
	}

	// 3. 解析结构化回答并按触发消息做格式化
	ans := parseStructuredAnswer(raw)
	ans.Answer = answer.Format(ans.Answer, trigger)

	// 4. 写入历史与薄弱知识点计分，失败只记日志
	stepsJSON, _ := json.Marshal(ans.Steps)
	doubt := &model.Doubt{
		Question: trigger,
		ImageURL: imageURL,
		Answer:   ans.Answer,
		Steps:    string(stepsJSON),
		Subject:  ans.Subject,
		Topic:    ans.Topic,
	}
	if err := s.doubtRepo.Create(doubt); err != nil {
		log.Error("写入答疑历史失败", err)
	} else if config.Conf.Kafka.Enabled {
		// 旁路发布索引事件，由消费者异步写入 Elasticsearch
		task := tasks.DoubtIndexTask{
			DoubtID:   doubt.ID,
			Question:  doubt.Question,
			Answer:    doubt.Answer,
			Subject:   doubt.Subject,
			Topic:     doubt.Topic,
			CreatedAt: doubt.CreatedAt,
		}
		if err := kafka.ProduceDoubtIndexTask(task); err != nil {
			log.Error("发布答疑索引事件失败", err)
		}
	}
	if err := s.weakTopicRepo.RecordOccurrence(ans.Topic); err != nil {
		log.Error("更新薄弱知识点计分失败", err)
	}

	return ans, nil
}

// GetHistory 返回全部答疑历史（最新在前）。
func (s *doubtService) GetHistory() ([]model.Doubt, error) {
	return s.doubtRepo.FindAll()
}

// GetDoubtByID 返回单条答疑记录。
func (s *doubtService) GetDoubtByID(id uint) (*model.Doubt, error) {
	return s.doubtRepo.FindByID(id)
}

// parseStructuredAnswer 从模型输出中解析结构化回答。
// 模型可能带 markdown 代码栅栏或在 JSON 前后夹杂文字，这里取第一个 '{' 到
// 最后一个 '}' 之间的内容解析；解析不出来时整段文本作为 answer，科目/主题回落到 General。
func parseStructuredAnswer(raw string) *model.Answer {
	ans := &model.Answer{Subject: "General", Topic: "General", Answer: raw, Steps: []string{}}

	text := strings.TrimSpace(raw)
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return ans
	}

	var parsed model.Answer
	if err := json.Unmarshal([]byte(text[start:end+1]), &parsed); err != nil {
		return ans
	}

	if parsed.Subject != "" {
		ans.Subject = parsed.Subject
	}
	if parsed.Topic != "" {
		ans.Topic = parsed.Topic
	}
	ans.Answer = parsed.Answer
	if parsed.Steps != nil {
		ans.Steps = parsed.Steps
	}
	ans.FollowUpQuestion = parsed.FollowUpQuestion
	return ans
}
