package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"edu-smart-go/pkg/log"
	"edu-smart-go/pkg/storage"

	"github.com/google/uuid"
)

// UploadService 接口定义了题目图片上传的业务操作。
type UploadService interface {
	// UploadImage 保存一张题目图片并返回可访问的 URL。
	UploadImage(ctx context.Context, file multipart.File, header *multipart.FileHeader) (string, error)
}

type uploadService struct {
	store storage.ObjectStorage
}

// NewUploadService 创建一个新的 UploadService 实例。
func NewUploadService(store storage.ObjectStorage) UploadService {
	return &uploadService{store: store}
}

// UploadImage 以 uuid 作为对象名保存图片，保留原扩展名。
func (s *uploadService) UploadImage(ctx context.Context, file multipart.File, header *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(header.Filename))
	objectName := fmt.Sprintf("images/%s%s", uuid.NewString(), ext)

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	url, err := s.store.PutObject(ctx, objectName, file, header.Size, contentType)
	if err != nil {
		return "", fmt.Errorf("保存题目图片失败: %w", err)
	}

	log.Infof("题目图片已保存: %s", objectName)
	return url, nil
}
