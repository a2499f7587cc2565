package handler

import (
	"net/http"

	"edu-smart-go/internal/service"
	"edu-smart-go/pkg/log"

	"github.com/gin-gonic/gin"
)

// UploadHandler 负责处理题目图片上传的 API 请求。
type UploadHandler struct {
	uploadService service.UploadService
}

// NewUploadHandler 创建一个新的 UploadHandler 实例。
func NewUploadHandler(uploadService service.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

// UploadImage 处理 multipart 图片上传，返回可访问的 URL。
func (h *UploadHandler) UploadImage(c *gin.Context) {
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image file required"})
		return
	}
	defer file.Close()

	url, err := h.uploadService.UploadImage(c.Request.Context(), file, header)
	if err != nil {
		log.Error("UploadImage: 保存图片失败", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"imageUrl": url})
}
