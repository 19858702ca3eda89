package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDefaults(t *testing.T) {
	page, limit, err := Normalize(0, 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultPage, page)
	assert.Equal(t, DefaultLimit, limit)
}

func TestNormalizeExplicitValues(t *testing.T) {
	page, limit, err := Normalize(3, 25)
	require.NoError(t, err)
	assert.Equal(t, 3, page)
	assert.Equal(t, 25, limit)
}

func TestNormalizeNegativeValues(t *testing.T) {
	_, _, err := Normalize(-1, 10)
	assert.ErrorIs(t, err, ErrInvalidParams)

	_, _, err = Normalize(1, -5)
	assert.ErrorIs(t, err, ErrInvalidParams)
}

func TestNormalizeLimitCap(t *testing.T) {
	_, limit, err := Normalize(1, 1000)
	require.NoError(t, err)
	assert.Equal(t, MaxLimit, limit)
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Offset(1, 10))
	assert.Equal(t, 10, Offset(2, 10))
	assert.Equal(t, 40, Offset(5, 10))
}

func TestNewMeta(t *testing.T) {
	meta := NewMeta(2, 10, 35)
	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 10, meta.Limit)
	assert.Equal(t, int64(35), meta.TotalItems)
	assert.Equal(t, int64(4), meta.TotalPages)
	assert.True(t, meta.HasNext)
	assert.True(t, meta.HasPrev)
}

func TestNewMetaFirstPage(t *testing.T) {
	meta := NewMeta(1, 10, 5)
	assert.Equal(t, int64(1), meta.TotalPages)
	assert.False(t, meta.HasNext)
	assert.False(t, meta.HasPrev)
}

func TestNewMetaEmpty(t *testing.T) {
	meta := NewMeta(1, 10, 0)
	assert.Equal(t, int64(0), meta.TotalPages)
	assert.False(t, meta.HasNext)
	assert.False(t, meta.HasPrev)
}

func TestNewMetaBeyondLastPage(t *testing.T) {
	// 请求超出范围的页码仍返回一致的元信息，数据为空页
	meta := NewMeta(9, 10, 35)
	assert.Equal(t, int64(4), meta.TotalPages)
	assert.False(t, meta.HasNext)
	assert.True(t, meta.HasPrev)
}
