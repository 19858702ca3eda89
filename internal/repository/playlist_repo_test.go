package repository

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestPlaylistRepositoryAddVideo(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPlaylistRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "playlist_videos"`)).
		WithArgs(int64(1), int64(2), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

	err := repo.AddVideo(1, 2)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPlaylistRepositoryAddVideoDuplicate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPlaylistRepository(db)

	// ON CONFLICT DO NOTHING 命中冲突时不返回行，重复添加不报错
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "playlist_videos"`)).
		WithArgs(int64(1), int64(2), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	err := repo.AddVideo(1, 2)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPlaylistRepositoryRemoveVideo(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPlaylistRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "playlist_videos"`)).
		WithArgs(int64(1), int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.RemoveVideo(1, 2)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPlaylistRepositoryRemoveVideoNotInList(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPlaylistRepository(db)

	// 不在列表中时删除 0 行，同样视为成功
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "playlist_videos"`)).
		WithArgs(int64(1), int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.RemoveVideo(1, 99)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPlaylistRepositoryDelete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPlaylistRepository(db)

	// 成员记录与播放列表在同一事务内删除
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "playlist_videos"`)).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "playlists"`)).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Delete(1)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPlaylistRepositoryUpdateNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPlaylistRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "playlists" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(999, map[string]interface{}{"name": "新名字"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
