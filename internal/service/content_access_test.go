package service

import (
	"testing"

	"cms-backend/internal/dto"
	"cms-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uintPtr(v uint) *uint { return &v }

func TestBuildContentQueryAdmin(t *testing.T) {
	admin := &entity.User{ID: 1, IsAdmin: true}

	q := BuildContentQuery(admin, dto.ContentFilter{UserID: uintPtr(7)})
	require.NotNil(t, q.OwnerID)
	assert.Equal(t, uint(7), *q.OwnerID)
	assert.Nil(t, q.ContentID)

	q = BuildContentQuery(admin, dto.ContentFilter{ContentID: uintPtr(42)})
	assert.Nil(t, q.OwnerID)
	require.NotNil(t, q.ContentID)
	assert.Equal(t, uint(42), *q.ContentID)

	// user_id wins when both are supplied
	q = BuildContentQuery(admin, dto.ContentFilter{UserID: uintPtr(7), ContentID: uintPtr(42)})
	require.NotNil(t, q.OwnerID)
	assert.Nil(t, q.ContentID)

	// no filters: the whole table
	q = BuildContentQuery(admin, dto.ContentFilter{})
	assert.Nil(t, q.OwnerID)
	assert.Nil(t, q.ContentID)
}

func TestBuildContentQueryNonAdmin(t *testing.T) {
	user := &entity.User{ID: 3}

	// always pinned to own content
	q := BuildContentQuery(user, dto.ContentFilter{})
	require.NotNil(t, q.OwnerID)
	assert.Equal(t, uint(3), *q.OwnerID)

	// a content id narrows within the owner restriction, so a foreign
	// id can only produce an empty set
	q = BuildContentQuery(user, dto.ContentFilter{ContentID: uintPtr(42)})
	require.NotNil(t, q.OwnerID)
	assert.Equal(t, uint(3), *q.OwnerID)
	require.NotNil(t, q.ContentID)
	assert.Equal(t, uint(42), *q.ContentID)

	// user_id filter is admin-only and ignored here
	q = BuildContentQuery(user, dto.ContentFilter{UserID: uintPtr(9)})
	require.NotNil(t, q.OwnerID)
	assert.Equal(t, uint(3), *q.OwnerID)
	assert.Nil(t, q.ContentID)
}

func TestBuildContentQueryCarriesSearch(t *testing.T) {
	admin := &entity.User{ID: 1, IsAdmin: true}
	user := &entity.User{ID: 2}

	q := BuildContentQuery(admin, dto.ContentFilter{Search: "math"})
	assert.Nil(t, q.OwnerID)
	assert.Equal(t, "math", q.Search)

	q = BuildContentQuery(user, dto.ContentFilter{Search: "math"})
	require.NotNil(t, q.OwnerID)
	assert.Equal(t, "math", q.Search)
}

func TestCanMutateContent(t *testing.T) {
	owner := &entity.User{ID: 5}
	other := &entity.User{ID: 6}
	admin := &entity.User{ID: 7, IsAdmin: true}
	content := &entity.Content{ID: 1, UserID: 5}

	assert.True(t, CanMutateContent(owner, content))
	assert.True(t, CanMutateContent(admin, content))
	assert.False(t, CanMutateContent(other, content))
}
