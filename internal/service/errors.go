// Package service 包含了应用的业务逻辑层。
package service

import "errors"

// 业务层哨兵错误，handler 据此区分 400 与 500。
var (
	// ErrMessagesRequired 表示请求缺少 messages。
	ErrMessagesRequired = errors.New("messages required")
	// ErrNoUserMessage 表示消息序列里没有用户消息，无法确定触发消息。
	ErrNoUserMessage = errors.New("no user message in conversation")
	// ErrTaskNotFound 表示指定的每日任务不存在。
	ErrTaskNotFound = errors.New("daily task not found")
	// ErrSearchDisabled 表示未启用 Elasticsearch，历史检索不可用。
	ErrSearchDisabled = errors.New("history search is disabled")
)
