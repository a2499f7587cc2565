package service

import (
	"context"
	"fmt"

	"edu-smart-go/internal/config"
	"edu-smart-go/internal/model"
	"edu-smart-go/pkg/es"
)

// SearchService 接口定义了答疑历史的全文检索。
type SearchService interface {
	SearchHistory(ctx context.Context, query string, size int) ([]model.EsDoubtDocument, error)
}

type searchService struct {
	esCfg config.ElasticsearchConfig
}

// NewSearchService 创建一个新的 SearchService 实例。
func NewSearchService(esCfg config.ElasticsearchConfig) SearchService {
	return &searchService{esCfg: esCfg}
}

// SearchHistory 在 Elasticsearch 中检索答疑历史。
// 未启用 Elasticsearch 时返回 ErrSearchDisabled。
func (s *searchService) SearchHistory(ctx context.Context, query string, size int) ([]model.EsDoubtDocument, error) {
	if !s.esCfg.Enabled {
		return nil, ErrSearchDisabled
	}
	if size <= 0 {
		size = 10
	}

	docs, err := es.SearchDoubts(ctx, s.esCfg.IndexName, query, size)
	if err != nil {
		return nil, fmt.Errorf("检索答疑历史失败: %w", err)
	}
	return docs, nil
}
