package service

import (
	"testing"

	"vidnest-go/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPlaylistViewOwnerSeesEverything(t *testing.T) {
	playlist := &model.Playlist{ID: 1, Name: "我的收藏", OwnerID: 10}
	videos := []model.Video{
		{ID: 1, OwnerID: 10, Title: "a", IsPublished: true, ViewCount: 100},
		{ID: 2, OwnerID: 10, Title: "b", IsPublished: false, ViewCount: 50},
	}

	view, visible := buildPlaylistView(playlist, videos, nil, 10)
	require.True(t, visible)
	assert.Len(t, view.Videos, 2, "所有者可见全部视频，含未发布")
	assert.Equal(t, 2, view.TotalVideos)
	assert.Equal(t, int64(150), view.TotalViews)
}

func TestBuildPlaylistViewOtherViewerFiltered(t *testing.T) {
	playlist := &model.Playlist{ID: 1, Name: "我的收藏", OwnerID: 10}
	videos := []model.Video{
		{ID: 1, OwnerID: 10, Title: "a", IsPublished: true, ViewCount: 100},
		{ID: 2, OwnerID: 10, Title: "b", IsPublished: false, ViewCount: 50},
	}

	view, visible := buildPlaylistView(playlist, videos, nil, 99)
	require.True(t, visible)
	assert.Len(t, view.Videos, 1, "非所有者只能看到已发布视频")
	assert.Equal(t, int64(1), view.Videos[0].ID)

	// 汇总在可见性过滤之前统计，反映存在而非可见
	assert.Equal(t, 2, view.TotalVideos)
	assert.Equal(t, int64(150), view.TotalViews)
}

func TestBuildPlaylistViewCollapsesWhenNothingVisible(t *testing.T) {
	playlist := &model.Playlist{ID: 1, Name: "私藏", OwnerID: 10}
	videos := []model.Video{
		{ID: 1, OwnerID: 10, IsPublished: false},
		{ID: 2, OwnerID: 10, IsPublished: false},
	}

	_, visible := buildPlaylistView(playlist, videos, nil, 99)
	assert.False(t, visible, "全部视频被过滤时对非所有者等同于不存在")

	_, visible = buildPlaylistView(playlist, videos, nil, 0)
	assert.False(t, visible, "匿名访客同样不可见")

	view, visible := buildPlaylistView(playlist, videos, nil, 10)
	require.True(t, visible, "所有者始终可见")
	assert.Len(t, view.Videos, 2)
}

func TestBuildPlaylistViewEmptyPlaylist(t *testing.T) {
	playlist := &model.Playlist{ID: 1, Name: "空列表", OwnerID: 10}

	_, visible := buildPlaylistView(playlist, nil, nil, 99)
	assert.False(t, visible, "空列表对非所有者不可见")

	view, visible := buildPlaylistView(playlist, nil, nil, 10)
	require.True(t, visible)
	assert.Empty(t, view.Videos)
	assert.Equal(t, 0, view.TotalVideos)
	assert.Equal(t, int64(0), view.TotalViews)
}

func TestBuildPlaylistViewOwnerBrief(t *testing.T) {
	playlist := &model.Playlist{ID: 1, Name: "收藏", OwnerID: 10}
	videos := []model.Video{{ID: 1, OwnerID: 10, IsPublished: true}}
	owner := &model.User{ID: 10, UserName: "alice", FullName: "Alice", Password: "secret-hash"}

	view, visible := buildPlaylistView(playlist, videos, owner, 0)
	require.True(t, visible)
	require.NotNil(t, view.Owner)
	assert.Equal(t, int64(10), view.Owner.ID)
	assert.Equal(t, "alice", view.Owner.Username)
}

func TestOrderByMembership(t *testing.T) {
	items := []model.PlaylistVideo{
		{ID: 1, PlaylistID: 1, VideoID: 30},
		{ID: 2, PlaylistID: 1, VideoID: 10},
		{ID: 3, PlaylistID: 1, VideoID: 20},
	}
	// 批量查询结果的顺序与成员顺序无关
	videos := []model.Video{
		{ID: 10, Title: "j"},
		{ID: 20, Title: "k"},
		{ID: 30, Title: "l"},
	}

	ordered := orderByMembership(items, videos)
	require.Len(t, ordered, 3)
	assert.Equal(t, int64(30), ordered[0].ID)
	assert.Equal(t, int64(10), ordered[1].ID)
	assert.Equal(t, int64(20), ordered[2].ID)
}

func TestOrderByMembershipMissingVideo(t *testing.T) {
	items := []model.PlaylistVideo{
		{ID: 1, PlaylistID: 1, VideoID: 10},
		{ID: 2, PlaylistID: 1, VideoID: 999},
	}
	videos := []model.Video{{ID: 10}}

	ordered := orderByMembership(items, videos)
	require.Len(t, ordered, 1, "联结不到的视频 ID 直接缺席")
	assert.Equal(t, int64(10), ordered[0].ID)
}

func TestBuildPlaylistSummary(t *testing.T) {
	playlist := &model.Playlist{ID: 1, Name: "收藏", OwnerID: 10}
	videos := []model.Video{
		{ID: 1, CoverURL: "https://cdn.example.com/cover1.jpg", ViewCount: 10},
		{ID: 2, CoverURL: "https://cdn.example.com/cover2.jpg", ViewCount: 20},
	}

	summary := buildPlaylistSummary(playlist, videos)
	assert.Equal(t, 2, summary.TotalVideos)
	assert.Equal(t, int64(30), summary.TotalViews)
	require.NotNil(t, summary.FirstVideoCover)
	assert.Equal(t, "https://cdn.example.com/cover1.jpg", *summary.FirstVideoCover, "封面取最先加入的视频")
}

func TestBuildPlaylistSummaryEmpty(t *testing.T) {
	playlist := &model.Playlist{ID: 1, Name: "空", OwnerID: 10}

	summary := buildPlaylistSummary(playlist, nil)
	assert.Equal(t, 0, summary.TotalVideos)
	assert.Nil(t, summary.FirstVideoCover)
}
