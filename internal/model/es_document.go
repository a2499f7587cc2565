package model

import "time"

// EsDoubtDocument 是写入 Elasticsearch 的答疑历史文档结构。
type EsDoubtDocument struct {
	DoubtID   uint      `json:"doubt_id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Subject   string    `json:"subject"`
	Topic     string    `json:"topic"`
	CreatedAt time.Time `json:"created_at"`
}
