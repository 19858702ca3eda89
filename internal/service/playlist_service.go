package service

import (
	"errors"
	"strings"

	"vidnest-go/internal/api/dto"
	"vidnest-go/internal/model"
	"vidnest-go/internal/repository"

	"gorm.io/gorm"
)

var (
	ErrPlaylistNotFound     = errors.New("播放列表不存在")
	ErrPlaylistNoPermission = errors.New("没有权限操作该播放列表")
	ErrPlaylistEmptyName    = errors.New("播放列表名称不能为空")
	ErrPlaylistEmptyUpdate  = errors.New("至少提供一个待更新字段")
)

type PlaylistService struct {
	playlistRepo *repository.PlaylistRepository
	videoRepo    *repository.VideoRepository
	userRepo     *repository.UserRepository
}

func NewPlaylistService(playlistRepo *repository.PlaylistRepository, videoRepo *repository.VideoRepository, userRepo *repository.UserRepository) *PlaylistService {
	return &PlaylistService{playlistRepo: playlistRepo, videoRepo: videoRepo, userRepo: userRepo}
}

// Create 创建播放列表，所有者即操作者，创建后不再变更
func (s *PlaylistService) Create(ownerID int64, req *dto.PlaylistCreateRequest) (*dto.PlaylistView, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrPlaylistEmptyName
	}

	playlist := &model.Playlist{
		Name:        name,
		Description: strings.TrimSpace(req.Description),
		OwnerID:     ownerID,
	}

	if err := s.playlistRepo.Create(playlist); err != nil {
		return nil, err
	}

	owner, _ := s.userRepo.GetByID(ownerID)

	view, _ := buildPlaylistView(playlist, nil, owner, ownerID)
	return view, nil
}

// Update 更新播放列表（仅所有者）
func (s *PlaylistService) Update(playlistID, actingID int64, req *dto.PlaylistUpdateRequest) (*dto.PlaylistView, error) {
	updates := map[string]interface{}{}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, ErrPlaylistEmptyName
		}
		updates["name"] = name
	}
	if req.Description != nil {
		updates["description"] = strings.TrimSpace(*req.Description)
	}
	if len(updates) == 0 {
		return nil, ErrPlaylistEmptyUpdate
	}

	playlist, err := s.playlistRepo.GetByID(playlistID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlaylistNotFound
		}
		return nil, err
	}
	if playlist.OwnerID != actingID {
		return nil, ErrPlaylistNoPermission
	}

	if err := s.playlistRepo.Update(playlistID, updates); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlaylistNotFound
		}
		return nil, err
	}

	return s.GetByID(playlistID, actingID)
}

// Delete 删除播放列表（仅所有者）
// 只移除列表与成员引用，视频本身是独立实体，不做级联
func (s *PlaylistService) Delete(playlistID, actingID int64) error {
	playlist, err := s.playlistRepo.GetByID(playlistID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPlaylistNotFound
		}
		return err
	}
	if playlist.OwnerID != actingID {
		return ErrPlaylistNoPermission
	}

	return s.playlistRepo.Delete(playlistID)
}

// AddVideo 添加视频到播放列表（仅列表所有者，无需视频所有权）
// 重复添加为无操作成功
func (s *PlaylistService) AddVideo(playlistID, videoID, actingID int64) error {
	playlist, err := s.playlistRepo.GetByID(playlistID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPlaylistNotFound
		}
		return err
	}
	if playlist.OwnerID != actingID {
		return ErrPlaylistNoPermission
	}

	if _, err := s.videoRepo.GetByID(videoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrVideoNotFound
		}
		return err
	}

	return s.playlistRepo.AddVideo(playlistID, videoID)
}

// RemoveVideo 从播放列表移除视频（仅列表所有者）
// 移除不在列表中的视频为无操作成功，不校验视频是否仍然存在
func (s *PlaylistService) RemoveVideo(playlistID, videoID, actingID int64) error {
	playlist, err := s.playlistRepo.GetByID(playlistID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPlaylistNotFound
		}
		return err
	}
	if playlist.OwnerID != actingID {
		return ErrPlaylistNoPermission
	}

	return s.playlistRepo.RemoveVideo(playlistID, videoID)
}

// GetByID 组合播放列表详情视图
// 流水线：查列表 → 联结视频与创建者 → 统计汇总 → 可见性过滤
func (s *PlaylistService) GetByID(playlistID, viewerID int64) (*dto.PlaylistView, error) {
	playlist, err := s.playlistRepo.GetByIDWithItems(playlistID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlaylistNotFound
		}
		return nil, err
	}

	videoIDs := make([]int64, 0, len(playlist.Items))
	for _, item := range playlist.Items {
		videoIDs = append(videoIDs, item.VideoID)
	}

	videos, err := s.videoRepo.GetByIDs(videoIDs)
	if err != nil {
		return nil, err
	}

	owner, err := s.userRepo.GetByID(playlist.OwnerID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	view, visible := buildPlaylistView(playlist, orderByMembership(playlist.Items, videos), owner, viewerID)
	if !visible {
		// 全部视频被过滤且访问者不是所有者时，与"不存在"对外不可区分
		return nil, ErrPlaylistNotFound
	}

	return view, nil
}

// ListByUser 获取用户创建的播放列表摘要，用户没有播放列表时返回空列表
func (s *PlaylistService) ListByUser(userID int64) (*dto.PlaylistListData, error) {
	playlists, err := s.playlistRepo.ListByOwnerWithItems(userID)
	if err != nil {
		return nil, err
	}

	idSet := make(map[int64]struct{})
	var allIDs []int64
	for i := range playlists {
		for _, item := range playlists[i].Items {
			if _, ok := idSet[item.VideoID]; !ok {
				idSet[item.VideoID] = struct{}{}
				allIDs = append(allIDs, item.VideoID)
			}
		}
	}

	videos, err := s.videoRepo.GetByIDs(allIDs)
	if err != nil {
		return nil, err
	}
	videoMap := make(map[int64]*model.Video, len(videos))
	for i := range videos {
		videoMap[videos[i].ID] = &videos[i]
	}

	summaries := make([]dto.PlaylistSummary, 0, len(playlists))
	for i := range playlists {
		joined := make([]model.Video, 0, len(playlists[i].Items))
		for _, item := range playlists[i].Items {
			if v, ok := videoMap[item.VideoID]; ok {
				joined = append(joined, *v)
			}
		}
		summaries = append(summaries, *buildPlaylistSummary(&playlists[i], joined))
	}

	return &dto.PlaylistListData{Playlists: summaries}, nil
}

// orderByMembership 按成员记录的加入顺序排列联结到的视频，未命中的 ID 缺席
func orderByMembership(items []model.PlaylistVideo, videos []model.Video) []model.Video {
	videoMap := make(map[int64]*model.Video, len(videos))
	for i := range videos {
		videoMap[videos[i].ID] = &videos[i]
	}

	ordered := make([]model.Video, 0, len(items))
	for _, item := range items {
		if v, ok := videoMap[item.VideoID]; ok {
			ordered = append(ordered, *v)
		}
	}
	return ordered
}

// buildPlaylistView 组合播放列表视图
// total_videos/total_views 在可见性过滤之前统计，反映存在而非可见
// 访问者不是所有者且没有任何可见视频时返回 visible=false
func buildPlaylistView(playlist *model.Playlist, videos []model.Video, owner *model.User, viewerID int64) (*dto.PlaylistView, bool) {
	totalViews := int64(0)
	for i := range videos {
		totalViews += videos[i].ViewCount
	}

	visibleVideos := make([]dto.VideoInfo, 0, len(videos))
	for i := range videos {
		if IsVideoVisible(&videos[i], viewerID, playlist.OwnerID) {
			visibleVideos = append(visibleVideos, *toVideoInfo(&videos[i], nil))
		}
	}

	if viewerID != playlist.OwnerID && len(visibleVideos) == 0 {
		return nil, false
	}

	view := &dto.PlaylistView{
		ID:          playlist.ID,
		Name:        playlist.Name,
		Description: playlist.Description,
		OwnerID:     playlist.OwnerID,
		Videos:      visibleVideos,
		TotalVideos: len(videos),
		TotalViews:  totalViews,
		CreatedAt:   playlist.CreatedAt,
		UpdatedAt:   playlist.UpdatedAt,
	}
	if owner != nil {
		view.Owner = toUserBrief(owner)
	}
	return view, true
}

// buildPlaylistSummary 组合播放列表摘要，封面取最先加入的视频
func buildPlaylistSummary(playlist *model.Playlist, videos []model.Video) *dto.PlaylistSummary {
	totalViews := int64(0)
	for i := range videos {
		totalViews += videos[i].ViewCount
	}

	var firstCover *string
	if len(videos) > 0 {
		cover := resolveMediaURL(videos[0].CoverURL)
		firstCover = &cover
	}

	return &dto.PlaylistSummary{
		ID:              playlist.ID,
		Name:            playlist.Name,
		Description:     playlist.Description,
		TotalVideos:     len(videos),
		TotalViews:      totalViews,
		FirstVideoCover: firstCover,
		CreatedAt:       playlist.CreatedAt,
		UpdatedAt:       playlist.UpdatedAt,
	}
}

func toUserBrief(user *model.User) *dto.UserBrief {
	return &dto.UserBrief{
		ID:       user.ID,
		Username: user.UserName,
		FullName: user.FullName,
		Avatar:   user.Avatar,
	}
}
