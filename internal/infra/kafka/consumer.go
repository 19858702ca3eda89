package kafka

import (
	"context"
	"encoding/json"
	"time"

	"vidnest-go/pkg/logger"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// EventHandler 处理评论删除事件的回调函数
type EventHandler func(event *CommentDeletedEvent) error

// StartCommentDeletedConsumer 启动评论删除事件消费者（阻塞，需在 goroutine 中运行）
// ctx 取消后会自动停止
func StartCommentDeletedConsumer(ctx context.Context, brokers []string, topic, groupID string, handler EventHandler) {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        brokers,
		Topic:          topic,
		GroupID:        groupID,
		MinBytes:       1,
		MaxBytes:       10e6,
		CommitInterval: time.Second,
		StartOffset:    kafka.LastOffset,
	})

	defer func() {
		if err := reader.Close(); err != nil {
			logger.Error("Failed to close kafka consumer", zap.Error(err))
		}
		logger.Info("Kafka comment deleted consumer stopped")
	}()

	logger.Info("Kafka comment deleted consumer started",
		zap.String("topic", topic),
		zap.String("group", groupID),
	)

	for {
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			logger.Error("Failed to read kafka message", zap.Error(err))
			time.Sleep(time.Second)
			continue
		}

		var event CommentDeletedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			logger.Error("Failed to unmarshal comment deleted event",
				zap.Error(err),
				zap.ByteString("value", msg.Value),
			)
			continue
		}

		if err := handler(&event); err != nil {
			logger.Error("Comment deleted event handling failed",
				zap.Int64("comment_id", event.CommentID),
				zap.Error(err),
			)
		}
	}
}
