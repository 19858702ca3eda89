package handler

import (
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"vidnest-go/internal/api/middleware"
	"vidnest-go/internal/repository"
	"vidnest-go/internal/service"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newLikeTestRouter(t *testing.T, userID int64) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	likeService := service.NewLikeService(
		repository.NewLikeRepository(db),
		repository.NewCommentRepository(db),
	)
	likeHandler := NewLikeHandler(likeService)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/v1/comments/:id/like", func(c *gin.Context) {
		c.Set(middleware.ContextKeyUserID, userID)
		c.Next()
	}, likeHandler.ToggleCommentLike)

	return r, mock
}

func TestToggleCommentLikeUsesPathCommentID(t *testing.T) {
	const (
		userID    = int64(7)
		commentID = int64(5)
	)

	r, mock := newLikeTestRouter(t, userID)

	// 评论存在性校验必须用路径里的评论 ID 查询，而不是当前用户 ID
	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "comments" WHERE "comments"."id" = $1`)).
		WithArgs(commentID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "video_id", "content", "created_at", "updated_at"}).
			AddRow(commentID, int64(3), int64(2), "不错", now, now))

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "likes"`)).
		WithArgs(userID, commentID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(0)))

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "likes"`)).
		WithArgs(userID, commentID, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(9)))

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "likes"`)).
		WithArgs(commentID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(1)))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/comments/5/like", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"liked":true`)
	assert.Contains(t, w.Body.String(), `"comment_id":5`)
	assert.Contains(t, w.Body.String(), `"likes_count":1`)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestToggleCommentLikeCommentNotFound(t *testing.T) {
	r, mock := newLikeTestRouter(t, 7)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "comments" WHERE "comments"."id" = $1`)).
		WithArgs(int64(404), 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/comments/404/like", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}
