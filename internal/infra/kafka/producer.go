package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"vidnest-go/internal/config"
	"vidnest-go/pkg/logger"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

var producer *kafka.Writer

// CommentDeletedEvent 评论删除事件消息体
// 评论删除后发出，worker 消费后重放点赞级联清理，兜住主流程与级联之间的窗口
type CommentDeletedEvent struct {
	CommentID int64 `json:"comment_id"`
	VideoID   int64 `json:"video_id"`
	DeletedBy int64 `json:"deleted_by"`
	DeletedAt int64 `json:"deleted_at"`
}

// InitProducer 初始化 Kafka 生产者
func InitProducer(cfg *config.KafkaConfig) error {
	producer = &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}

	logger.Info("Kafka producer initialized",
		zap.Strings("brokers", cfg.Brokers),
	)

	return nil
}

// SendCommentDeleted 发送评论删除事件到 Kafka
// 按评论 ID 作为消息键，同一评论的事件落到同一分区保持顺序
func SendCommentDeleted(ctx context.Context, topic string, event *CommentDeletedEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal comment deleted event: %w", err)
	}

	if err := SendRaw(ctx, topic, fmt.Sprintf("comment-%d", event.CommentID), payload); err != nil {
		return fmt.Errorf("failed to send comment deleted event: %w", err)
	}

	logger.Info("Comment deleted event sent",
		zap.Int64("comment_id", event.CommentID),
		zap.String("topic", topic),
	)

	return nil
}

// SendRaw 发送原始消息到指定 topic
func SendRaw(ctx context.Context, topic, key string, value []byte) error {
	if producer == nil {
		return fmt.Errorf("kafka producer not initialized")
	}

	msg := kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: value,
	}

	if err := producer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to send kafka message: %w", err)
	}
	return nil
}

// CloseProducer 关闭生产者
func CloseProducer() error {
	if producer == nil {
		return nil
	}
	logger.Info("Kafka producer closed")
	return producer.Close()
}
