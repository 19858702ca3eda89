package kafka

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendRawRequiresProducer(t *testing.T) {
	err := SendRaw(context.Background(), "some-topic", "key", []byte(`{}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not initialized")
}

func TestSendCommentDeletedRequiresProducer(t *testing.T) {
	// 类型化发送经由 SendRaw，生产者未初始化时同样报错而不是 panic
	event := &CommentDeletedEvent{CommentID: 1, VideoID: 2, DeletedBy: 3}
	err := SendCommentDeleted(context.Background(), "some-topic", event)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not initialized")
}
