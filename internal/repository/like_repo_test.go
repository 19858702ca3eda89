package repository

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLikeRepositoryDelete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLikeRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "likes"`)).
		WithArgs(int64(10), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	removed, err := repo.Delete(10, 1)
	require.NoError(t, err)
	assert.True(t, removed)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLikeRepositoryDeleteNotLiked(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLikeRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "likes"`)).
		WithArgs(int64(10), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	removed, err := repo.Delete(10, 1)
	require.NoError(t, err)
	assert.False(t, removed)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLikeRepositoryDeleteByComment(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLikeRepository(db)

	// 级联清理可重复执行，返回删掉的行数
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "likes"`)).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 5))

	removed, err := repo.DeleteByComment(1)
	require.NoError(t, err)
	assert.Equal(t, int64(5), removed)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLikeRepositoryExists(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLikeRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "likes"`)).
		WithArgs(int64(10), int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(1)))

	exists, err := repo.Exists(10, 1)
	require.NoError(t, err)
	assert.True(t, exists)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLikeRepositoryCountByComments(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLikeRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT comment_id, COUNT(*) AS count FROM "likes"`)).
		WithArgs(int64(1), int64(2), int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"comment_id", "count"}).
			AddRow(int64(1), int64(4)).
			AddRow(int64(3), int64(2)))

	counts, err := repo.CountByComments([]int64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, int64(4), counts[1])
	assert.Equal(t, int64(0), counts[2], "没有点赞记录的评论计 0")
	assert.Equal(t, int64(2), counts[3])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLikeRepositoryCountByCommentsEmptyInput(t *testing.T) {
	db, _ := newMockDB(t)
	repo := NewLikeRepository(db)

	// 空输入不触发查询
	counts, err := repo.CountByComments(nil)
	require.NoError(t, err)
	assert.Empty(t, counts)
}

func TestLikeRepositoryLikedCommentIDs(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLikeRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT "comment_id" FROM "likes"`)).
		WithArgs(int64(10), int64(1), int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"comment_id"}).AddRow(int64(2)))

	liked, err := repo.LikedCommentIDs(10, []int64{1, 2})
	require.NoError(t, err)
	assert.False(t, liked[1])
	assert.True(t, liked[2])
	require.NoError(t, mock.ExpectationsWereMet())
}
