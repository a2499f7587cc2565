// Package tasks defines the structure for tasks that are sent to Kafka.
package tasks

import "time"

// DoubtIndexTask represents an answered doubt waiting to be indexed into Elasticsearch.
type DoubtIndexTask struct {
	DoubtID   uint      `json:"doubt_id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Subject   string    `json:"subject"`
	Topic     string    `json:"topic"`
	CreatedAt time.Time `json:"created_at"`
}
