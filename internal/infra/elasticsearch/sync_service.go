package elasticsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"vidnest-go/internal/config"
	"vidnest-go/internal/model"
	"vidnest-go/pkg/logger"

	"go.uber.org/zap"
)

// ESVideoDoc ES 视频文档结构
type ESVideoDoc struct {
	ID          int64  `json:"id"`
	OwnerID     int64  `json:"owner_id"`
	OwnerName   string `json:"owner_name"`
	Title       string `json:"title"`
	Description string `json:"description"`
	IsPublished bool   `json:"is_published"`
	ViewCount   int64  `json:"view_count"`
	Duration    int    `json:"duration"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

func videoToESDoc(v *model.Video, ownerName string) *ESVideoDoc {
	return &ESVideoDoc{
		ID:          v.ID,
		OwnerID:     v.OwnerID,
		OwnerName:   ownerName,
		Title:       v.Title,
		Description: v.Description,
		IsPublished: v.IsPublished,
		ViewCount:   v.ViewCount,
		Duration:    v.Duration,
		CreatedAt:   v.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   v.UpdatedAt.Format(time.RFC3339),
	}
}

func videosIndexName() string {
	cfg := config.GetElasticsearch()
	if name := cfg.Index["videos"]; name != "" {
		return name
	}
	return "videos"
}

// SyncVideo 同步单个视频到 ES
func SyncVideo(ctx context.Context, v *model.Video, ownerName string) error {
	doc := videoToESDoc(v, ownerName)
	body, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	resp, err := Index(ctx, videosIndexName(), fmt.Sprintf("%d", v.ID), bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return fmt.Errorf("index document failed: %s", resp.String())
	}

	logger.Debug("Video synced to ES", zap.Int64("video_id", v.ID))
	return nil
}

// DeleteVideo 从 ES 删除视频
func DeleteVideo(ctx context.Context, videoID int64) error {
	resp, err := Delete(ctx, videosIndexName(), fmt.Sprintf("%d", videoID))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.IsError() && resp.StatusCode != 404 {
		return fmt.Errorf("delete document failed: %s", resp.String())
	}
	return nil
}

// BulkSyncVideos 批量同步视频到 ES
func BulkSyncVideos(ctx context.Context, videos []model.Video, ownerNames map[int64]string) (success, failed int, err error) {
	indexName := videosIndexName()

	var buf strings.Builder
	for _, v := range videos {
		doc := videoToESDoc(&v, ownerNames[v.OwnerID])
		docBody, _ := json.Marshal(doc)

		buf.WriteString(fmt.Sprintf(`{"index":{"_index":"%s","_id":"%d"}}`, indexName, v.ID))
		buf.WriteString("\n")
		buf.Write(docBody)
		buf.WriteString("\n")
	}

	if buf.Len() == 0 {
		return 0, 0, nil
	}

	resp, err := Bulk(ctx, strings.NewReader(buf.String()))
	if err != nil {
		return 0, len(videos), err
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return 0, len(videos), fmt.Errorf("bulk failed: %s", resp.String())
	}

	var bulkResp struct {
		Errors bool `json:"errors"`
		Items  []struct {
			Index struct {
				Status int `json:"status"`
			} `json:"index"`
		} `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&bulkResp); err != nil {
		return len(videos), 0, nil
	}

	for _, item := range bulkResp.Items {
		if item.Index.Status >= 200 && item.Index.Status < 300 {
			success++
		} else {
			failed++
		}
	}

	logger.Info("Bulk sync to ES completed", zap.Int("success", success), zap.Int("failed", failed))
	return success, failed, nil
}
