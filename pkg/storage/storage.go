// Package storage 提供题目图片的对象存储能力（MinIO 或本地磁盘）。
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"edu-smart-go/internal/config"
)

// ObjectStorage 定义了图片存储的统一接口。
// 返回值是客户端可直接访问的 URL。
type ObjectStorage interface {
	PutObject(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error)
}

// New 根据配置选择存储后端。
func New(cfg config.StorageConfig) (ObjectStorage, error) {
	switch cfg.Backend {
	case "minio":
		return NewMinIOStorage(cfg.MinIO)
	default:
		return NewLocalStorage(cfg.LocalDir, cfg.BaseURL)
	}
}

// localStorage 将对象写到本地磁盘，URL 由 baseURL 拼接对象名得到。
type localStorage struct {
	dir     string
	baseURL string
}

// NewLocalStorage 创建本地磁盘存储，目录不存在时自动创建。
func NewLocalStorage(dir, baseURL string) (ObjectStorage, error) {
	if dir == "" {
		dir = "uploads"
	}
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("创建本地存储目录失败: %w", err)
	}
	return &localStorage{dir: dir, baseURL: strings.TrimSuffix(baseURL, "/")}, nil
}

func (s *localStorage) PutObject(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	path := filepath.Join(s.dir, filepath.FromSlash(objectName))
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return "", fmt.Errorf("创建对象目录失败: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("创建对象文件失败: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, reader); err != nil {
		return "", fmt.Errorf("写入对象文件失败: %w", err)
	}
	return s.baseURL + "/" + objectName, nil
}
