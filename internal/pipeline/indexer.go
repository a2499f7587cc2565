// Package pipeline 定义了答疑历史异步索引的处理流程。
package pipeline

import (
	"context"
	"fmt"

	"edu-smart-go/internal/config"
	"edu-smart-go/internal/model"
	"edu-smart-go/pkg/es"
	"edu-smart-go/pkg/log"
	"edu-smart-go/pkg/tasks"
)

// Indexer 消费答疑索引事件，把文档写入 Elasticsearch。
// 它实现了 kafka.TaskProcessor。
type Indexer struct {
	esCfg config.ElasticsearchConfig
}

// NewIndexer 创建一个新的 Indexer 实例。
func NewIndexer(esCfg config.ElasticsearchConfig) *Indexer {
	return &Indexer{esCfg: esCfg}
}

// Process 把单条答疑写入 Elasticsearch 索引。
func (p *Indexer) Process(ctx context.Context, task tasks.DoubtIndexTask) error {
	doc := model.EsDoubtDocument{
		DoubtID:   task.DoubtID,
		Question:  task.Question,
		Answer:    task.Answer,
		Subject:   task.Subject,
		Topic:     task.Topic,
		CreatedAt: task.CreatedAt,
	}
	if err := es.IndexDoubt(ctx, p.esCfg.IndexName, doc); err != nil {
		return fmt.Errorf("索引答疑文档失败 (doubtID=%d): %w", task.DoubtID, err)
	}
	log.Infof("答疑文档已索引: doubtID=%d, topic=%s", task.DoubtID, task.Topic)
	return nil
}
