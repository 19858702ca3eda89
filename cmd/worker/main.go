package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vidnest-go/internal/config"
	"vidnest-go/internal/infra/database"
	infraES "vidnest-go/internal/infra/elasticsearch"
	infraKafka "vidnest-go/internal/infra/kafka"
	"vidnest-go/internal/repository"
	"vidnest-go/pkg/logger"

	"go.uber.org/zap"
)

// 后台工作进程：
//  1. 消费 comment_deleted 事件，兜底清理评论残留的点赞记录
//  2. 周期性把已发布视频批量同步到 Elasticsearch
func main() {
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format, cfg.Log.Output, cfg.Log.FilePath); err != nil {
		panic(fmt.Sprintf("Failed to init logger: %v", err))
	}
	defer logger.Sync()

	if err := database.Init(&cfg.Database); err != nil {
		logger.Fatal("Failed to init database", zap.Error(err))
	}
	defer database.Close()

	esEnabled := true
	if err := infraES.Init(&cfg.Elasticsearch); err != nil {
		logger.Warn("Elasticsearch init failed, sync disabled", zap.Error(err))
		esEnabled = false
	} else {
		defer infraES.Close()
		if err := infraES.InitIndexes(); err != nil {
			logger.Warn("Elasticsearch index init failed", zap.Error(err))
		}
	}

	db := database.Get()
	likeRepo := repository.NewLikeRepository(db)
	videoRepo := repository.NewVideoRepository(db)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 监听系统信号，优雅退出
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		logger.Info("Received signal, shutting down", zap.String("signal", sig.String()))
		cancel()
	}()

	// 周期性 ES 同步
	if esEnabled {
		go runESSyncLoop(ctx, videoRepo)
	}

	topic := cfg.Kafka.Topics["comment_deleted"]
	if topic == "" {
		logger.Fatal("Kafka topic comment_deleted is not configured")
	}
	groupID := "vidnest-cleanup-worker"

	logger.Info("Cleanup worker started",
		zap.String("topic", topic),
		zap.String("group", groupID),
		zap.Strings("brokers", cfg.Kafka.Brokers),
	)

	handler := func(event *infraKafka.CommentDeletedEvent) error {
		removed, err := likeRepo.DeleteByComment(event.CommentID)
		if err != nil {
			return err
		}
		if removed > 0 {
			logger.Info("Cleaned up orphan likes",
				zap.Int64("comment_id", event.CommentID),
				zap.Int64("removed", removed),
			)
		}
		return nil
	}

	// 阻塞直到 ctx 取消
	infraKafka.StartCommentDeletedConsumer(ctx, cfg.Kafka.Brokers, topic, groupID, handler)
}

const (
	esSyncInterval  = 10 * time.Minute
	esSyncBatchSize = 500
)

// runESSyncLoop 分批拉取已发布视频并批量写入 ES
func runESSyncLoop(ctx context.Context, videoRepo *repository.VideoRepository) {
	ticker := time.NewTicker(esSyncInterval)
	defer ticker.Stop()

	// 启动时先做一次全量同步
	syncPublishedVideos(ctx, videoRepo)

	for {
		select {
		case <-ctx.Done():
			logger.Info("ES sync loop stopped")
			return
		case <-ticker.C:
			syncPublishedVideos(ctx, videoRepo)
		}
	}
}

func syncPublishedVideos(ctx context.Context, videoRepo *repository.VideoRepository) {
	totalSynced := 0

	for skip := 0; ; skip += esSyncBatchSize {
		if ctx.Err() != nil {
			return
		}

		videos, _, err := videoRepo.ListPublished(skip, esSyncBatchSize, nil)
		if err != nil {
			logger.Error("Failed to list videos for ES sync", zap.Error(err))
			return
		}
		if len(videos) == 0 {
			break
		}

		ownerNames := make(map[int64]string, len(videos))
		for i := range videos {
			if videos[i].Owner.ID != 0 {
				ownerNames[videos[i].OwnerID] = videos[i].Owner.UserName
			}
		}

		batchCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		success, failed, err := infraES.BulkSyncVideos(batchCtx, videos, ownerNames)
		cancel()
		if err != nil {
			logger.Error("ES bulk sync failed", zap.Int("skip", skip), zap.Error(err))
			return
		}

		totalSynced += success
		if failed > 0 {
			logger.Warn("ES bulk sync partial failure", zap.Int("failed", failed))
		}

		if len(videos) < esSyncBatchSize {
			break
		}
	}

	if totalSynced > 0 {
		logger.Info("ES sync completed", zap.Int("synced", totalSynced))
	}
}
