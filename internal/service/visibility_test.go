package service

import (
	"testing"

	"vidnest-go/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestIsVideoVisiblePublished(t *testing.T) {
	video := &model.Video{ID: 1, OwnerID: 10, IsPublished: true}

	assert.True(t, IsVideoVisible(video, 0, 10), "匿名访客可见已发布视频")
	assert.True(t, IsVideoVisible(video, 99, 10), "其他用户可见已发布视频")
	assert.True(t, IsVideoVisible(video, 10, 10), "所有者可见已发布视频")
}

func TestIsVideoVisibleUnpublished(t *testing.T) {
	video := &model.Video{ID: 1, OwnerID: 10, IsPublished: false}

	assert.True(t, IsVideoVisible(video, 10, 10), "所有者可见自己的未发布视频")
	assert.False(t, IsVideoVisible(video, 99, 10), "其他用户不可见未发布视频")
	assert.False(t, IsVideoVisible(video, 0, 10), "匿名访客不可见未发布视频")
}

func TestIsVideoVisibleAnonymousNeverOwner(t *testing.T) {
	// 上下文所有者 ID 为 0 时，匿名访客不能被误判为所有者
	video := &model.Video{ID: 1, OwnerID: 0, IsPublished: false}
	assert.False(t, IsVideoVisible(video, 0, 0))
}
