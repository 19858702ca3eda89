package service

import (
	"testing"
	"time"

	"vidnest-go/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCommentPage(t *testing.T) {
	now := time.Now()
	comments := []model.Comment{
		{ID: 3, VideoID: 1, Content: "最新", CreatedAt: now, User: model.User{ID: 20, UserName: "bob"}},
		{ID: 2, VideoID: 1, Content: "较早", CreatedAt: now.Add(-time.Hour), User: model.User{ID: 10, UserName: "alice"}},
	}
	likeCounts := map[int64]int64{3: 5}
	likedSet := map[int64]bool{3: true}

	data := buildCommentPage(comments, likeCounts, likedSet, 1, 10, 2)
	require.Len(t, data.Comments, 2)

	assert.Equal(t, int64(3), data.Comments[0].ID)
	assert.Equal(t, int64(5), data.Comments[0].LikesCount)
	assert.True(t, data.Comments[0].IsLiked)
	require.NotNil(t, data.Comments[0].Owner)
	assert.Equal(t, "bob", data.Comments[0].Owner.Username)

	// 没有聚合记录的评论计 0，未点赞
	assert.Equal(t, int64(0), data.Comments[1].LikesCount)
	assert.False(t, data.Comments[1].IsLiked)

	assert.Equal(t, int64(2), data.TotalItems)
	assert.Equal(t, int64(1), data.TotalPages)
}

func TestBuildCommentPageAnonymousViewer(t *testing.T) {
	comments := []model.Comment{
		{ID: 1, VideoID: 1, Content: "评论"},
	}
	likeCounts := map[int64]int64{1: 3}

	// 匿名访客没有点赞集合，is_liked 恒为 false
	data := buildCommentPage(comments, likeCounts, map[int64]bool{}, 1, 10, 1)
	require.Len(t, data.Comments, 1)
	assert.Equal(t, int64(3), data.Comments[0].LikesCount)
	assert.False(t, data.Comments[0].IsLiked)
}

func TestBuildCommentPageEmpty(t *testing.T) {
	data := buildCommentPage(nil, map[int64]int64{}, map[int64]bool{}, 1, 10, 0)
	assert.Empty(t, data.Comments)
	assert.Equal(t, int64(0), data.TotalItems)
	assert.False(t, data.HasNext)
}

func TestToCommentInfoOmitsUserWhenNotLoaded(t *testing.T) {
	c := &model.Comment{ID: 1, VideoID: 2, Content: "hi"}
	info := toCommentInfo(c, 0, false)
	assert.Nil(t, info.Owner)
	assert.Equal(t, int64(2), info.VideoID)
}
