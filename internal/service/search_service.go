package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"vidnest-go/internal/api/dto"
	"vidnest-go/internal/config"
	infraES "vidnest-go/internal/infra/elasticsearch"
	"vidnest-go/internal/model"
	"vidnest-go/internal/repository"
	"vidnest-go/pkg/logger"
	"vidnest-go/pkg/pagination"

	"go.uber.org/zap"
)

type SearchService struct {
	videoRepo *repository.VideoRepository
}

func NewSearchService(videoRepo *repository.VideoRepository) *SearchService {
	return &SearchService{videoRepo: videoRepo}
}

// SearchVideos 搜索已发布视频（ES 优先，失败则降级到 DB）
func (s *SearchService) SearchVideos(req *dto.SearchVideoRequest, page, limit int) (*dto.SearchVideoData, error) {
	data, err := s.searchFromES(req.Keyword, page, limit)
	if err != nil {
		logger.Warn("ES search failed, fallback to DB", zap.Error(err))
		return s.searchFromDB(req.Keyword, page, limit)
	}
	return data, nil
}

func (s *SearchService) searchFromES(keyword string, page, limit int) (*dto.SearchVideoData, error) {
	cfg := config.GetElasticsearch()
	indexName := cfg.Index["videos"]
	if indexName == "" {
		indexName = "videos"
	}

	query := buildESQuery(keyword, page, limit)
	queryJSON, err := json.Marshal(query)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	resp, err := infraES.Search(ctx, indexName, bytes.NewReader(queryJSON))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return nil, fmt.Errorf("ES search error: %s", resp.String())
	}

	var esResp struct {
		Hits struct {
			Total struct {
				Value int64 `json:"value"`
			} `json:"total"`
			Hits []struct {
				Source struct {
					ID int64 `json:"id"`
				} `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&esResp); err != nil {
		return nil, err
	}

	videoIDs := make([]int64, 0, len(esResp.Hits.Hits))
	for _, h := range esResp.Hits.Hits {
		videoIDs = append(videoIDs, h.Source.ID)
	}

	total := esResp.Hits.Total.Value
	if len(videoIDs) == 0 {
		return buildSearchData(nil, page, limit, total), nil
	}

	videos, err := s.videoRepo.GetByIDsWithOwner(videoIDs)
	if err != nil {
		return nil, err
	}

	// ES 命中按相关度排序，DB 批量查询不保序，按命中顺序重排
	videoMap := make(map[int64]*model.Video, len(videos))
	for i := range videos {
		videoMap[videos[i].ID] = &videos[i]
	}

	ordered := make([]model.Video, 0, len(videoIDs))
	for _, id := range videoIDs {
		if v, ok := videoMap[id]; ok {
			ordered = append(ordered, *v)
		}
	}

	return buildSearchData(ordered, page, limit, total), nil
}

func (s *SearchService) searchFromDB(keyword string, page, limit int) (*dto.SearchVideoData, error) {
	skip := pagination.Offset(page, limit)
	videos, total, err := s.videoRepo.ListPublished(skip, limit, &keyword)
	if err != nil {
		return nil, err
	}
	return buildSearchData(videos, page, limit, total), nil
}

func buildESQuery(keyword string, page, limit int) map[string]interface{} {
	return map[string]interface{}{
		"from": pagination.Offset(page, limit),
		"size": limit,
		"query": map[string]interface{}{
			"bool": map[string]interface{}{
				"must": []interface{}{
					map[string]interface{}{
						"multi_match": map[string]interface{}{
							"query":  keyword,
							"fields": []string{"title^2", "description"},
						},
					},
				},
				"filter": []interface{}{
					map[string]interface{}{
						"term": map[string]interface{}{"is_published": true},
					},
				},
			},
		},
	}
}

func buildSearchData(videos []model.Video, page, limit int, total int64) *dto.SearchVideoData {
	items := make([]dto.VideoInfo, 0, len(videos))
	for i := range videos {
		var owner *model.User
		if videos[i].Owner.ID != 0 {
			owner = &videos[i].Owner
		}
		items = append(items, *toVideoInfo(&videos[i], owner))
	}

	return &dto.SearchVideoData{
		Videos: items,
		Meta:   pagination.NewMeta(page, limit, total),
	}
}
