// Package main 是应用程序的入口点。
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"edu-smart-go/internal/config"
	"edu-smart-go/internal/handler"
	"edu-smart-go/internal/middleware"
	"edu-smart-go/internal/model"
	"edu-smart-go/internal/pipeline"
	"edu-smart-go/internal/repository"
	"edu-smart-go/internal/service"
	"edu-smart-go/pkg/database"
	"edu-smart-go/pkg/es"
	"edu-smart-go/pkg/kafka"
	"edu-smart-go/pkg/llm"
	"edu-smart-go/pkg/log"
	"edu-smart-go/pkg/storage"

	"github.com/gin-gonic/gin"
)

func main() {
	// 1. 初始化配置
	config.Init("./configs/config.yaml")
	cfg := config.Conf

	// 2. 初始化日志记录器
	log.Init(cfg.Log.Level, cfg.Log.Format, cfg.Log.OutputPath)
	defer log.Sync() // 确保在程序退出时刷新所有缓冲的日志条目
	log.Info("日志记录器初始化成功")

	// 3. 初始化数据库与可选组件
	database.Init(cfg.Database.Driver, cfg.Database.DSN)
	if err := database.DB.AutoMigrate(&model.Doubt{}, &model.WeakTopic{}, &model.DailyTask{}); err != nil {
		log.Fatal("数据库建表失败", err)
	}
	if cfg.Database.Redis.Enabled {
		database.InitRedis(cfg.Database.Redis.Addr, cfg.Database.Redis.Password, cfg.Database.Redis.DB)
	}
	if cfg.Elasticsearch.Enabled {
		if err := es.InitES(cfg.Elasticsearch); err != nil {
			log.Errorf("es 初始化失败 %s", err)
			return
		}
	}
	if cfg.Kafka.Enabled {
		kafka.InitProducer(cfg.Kafka)
	}

	objectStorage, err := storage.New(cfg.Storage)
	if err != nil {
		log.Fatal("初始化图片存储失败", err)
	}

	// 4. 初始化 Repository
	doubtRepo := repository.NewDoubtRepository(database.DB)
	weakTopicRepo := repository.NewWeakTopicRepository(database.DB)
	dailyTaskRepo := repository.NewDailyTaskRepository(database.DB)
	var conversationRepo repository.ConversationRepository
	if cfg.Database.Redis.Enabled {
		conversationRepo = repository.NewConversationRepository(database.RDB)
	}

	// 5. 初始化 Service (依赖注入)
	llmClient := llm.NewClient(cfg.LLM)
	doubtService := service.NewDoubtService(llmClient, doubtRepo, weakTopicRepo)
	taskService := service.NewTaskService(dailyTaskRepo, weakTopicRepo)
	uploadService := service.NewUploadService(objectStorage)
	searchService := service.NewSearchService(cfg.Elasticsearch)
	chatService := service.NewChatService(llmClient, conversationRepo)

	// 6. 启动后台 Kafka 消费者，把答疑历史异步索引到 Elasticsearch
	if cfg.Kafka.Enabled && cfg.Elasticsearch.Enabled {
		indexer := pipeline.NewIndexer(cfg.Elasticsearch)
		go kafka.StartConsumer(cfg.Kafka, indexer)
	}

	// 7. 设置 Gin 模式并创建路由引擎
	gin.SetMode(cfg.Server.Mode)
	r := gin.New() // 使用 New() 创建一个不带默认中间件的引擎
	r.Use(middleware.RequestLogger(), middleware.CORS(), gin.Recovery())

	// 8. 注册路由
	doubtHandler := handler.NewDoubtHandler(doubtService)
	taskHandler := handler.NewTaskHandler(taskService, weakTopicRepo)
	uploadHandler := handler.NewUploadHandler(uploadService)
	searchHandler := handler.NewSearchHandler(searchService)
	chatHandler := handler.NewChatHandler(chatService)

	apiV1 := r.Group("/api/v1")
	{
		apiV1.POST("/ask-doubt", doubtHandler.AskDoubt)
		apiV1.GET("/history", doubtHandler.GetHistory)
		apiV1.GET("/history/search", searchHandler.SearchHistory)
		apiV1.GET("/history/:id", doubtHandler.GetDoubtByID)

		apiV1.GET("/daily-tasks", taskHandler.GetDailyTasks)
		apiV1.POST("/complete-task", taskHandler.CompleteTask)
		apiV1.GET("/weak-topics", taskHandler.GetWeakTopics)

		apiV1.POST("/upload-image", uploadHandler.UploadImage)

		apiV1.GET("/chat/session", chatHandler.NewSession)
	}
	// Chat 路由 (WebSocket)
	r.GET("/chat/:session", chatHandler.Handle)

	// 本地存储时由本服务直接托管图片目录
	if cfg.Storage.Backend != "minio" {
		localDir := cfg.Storage.LocalDir
		if localDir == "" {
			localDir = "uploads"
		}
		r.Static("/uploads", localDir)
	}

	// 启动 HTTP 服务器并实现优雅停机
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: r,
	}

	go func() {
		log.Infof("服务启动于 %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP 服务监听失败: %s\n", err)
		}
	}()

	// 等待中断信号以实现优雅停机
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("接收到停机信号，正在关闭服务...")

	// 设置一个5秒的超时上下文
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// 关闭 HTTP 服务器
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("HTTP 服务器关闭失败: %v", err)
	}

	log.Info("服务已优雅关闭")
}
