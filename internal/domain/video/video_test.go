package video

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestNewVideo(t *testing.T) {
	tests := []struct {
		name       string
		title      string
		url        string
		duration   *int
		categoryID uint
		userID     uint
		wantErr    bool
	}{
		{name: "valid", title: "Song A", url: "https://cdn.example.com/a.mp4", duration: intPtr(120), categoryID: 1, userID: 1},
		{name: "nil duration is allowed", title: "Song B", url: "https://cdn.example.com/b.mp4", categoryID: 1, userID: 1},
		{name: "missing title", url: "https://x/v.mp4", categoryID: 1, userID: 1, wantErr: true},
		{name: "title too short", title: "A", url: "https://x/v.mp4", categoryID: 1, userID: 1, wantErr: true},
		{name: "title too long", title: strings.Repeat("x", 201), url: "https://x/v.mp4", categoryID: 1, userID: 1, wantErr: true},
		{name: "missing url", title: "Song A", categoryID: 1, userID: 1, wantErr: true},
		{name: "url too long", title: "Song A", url: "https://" + strings.Repeat("x", 500), categoryID: 1, userID: 1, wantErr: true},
		{name: "negative duration", title: "Song A", url: "https://x/v.mp4", duration: intPtr(-1), categoryID: 1, userID: 1, wantErr: true},
		{name: "missing category", title: "Song A", url: "https://x/v.mp4", userID: 1, wantErr: true},
		{name: "missing user", title: "Song A", url: "https://x/v.mp4", categoryID: 1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := NewVideo(tt.title, "", tt.url, tt.duration, tt.categoryID, tt.userID)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, v)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.title, v.Title())
			assert.Equal(t, int64(0), v.Views())
			assert.Equal(t, int64(0), v.Likes())
			assert.True(t, v.IsActive())
			assert.Equal(t, tt.categoryID, v.CategoryID())
			assert.Equal(t, tt.userID, v.UserID())
		})
	}
}

func TestReconstructVideo(t *testing.T) {
	now := time.Now()

	v, err := ReconstructVideo(9, "Song A", "desc", "https://x/v.mp4", intPtr(120), 42, 7, 1, 2, "active", now, now)
	require.NoError(t, err)
	assert.Equal(t, uint(9), v.ID())
	assert.Equal(t, int64(42), v.Views())
	assert.Equal(t, int64(7), v.Likes())

	_, err = ReconstructVideo(0, "Song A", "", "https://x/v.mp4", nil, 0, 0, 1, 2, "active", now, now)
	assert.Error(t, err)

	_, err = ReconstructVideo(9, "Song A", "", "https://x/v.mp4", nil, 0, 0, 1, 2, "archived", now, now)
	assert.Error(t, err)
}

func TestVideoAssignReferences(t *testing.T) {
	v, err := NewVideo("Song A", "", "https://x/v.mp4", nil, 1, 1)
	require.NoError(t, err)

	require.NoError(t, v.AssignCategory(3))
	assert.Equal(t, uint(3), v.CategoryID())
	require.NoError(t, v.AssignUser(5))
	assert.Equal(t, uint(5), v.UserID())

	assert.Error(t, v.AssignCategory(0))
	assert.Error(t, v.AssignUser(0))
}

func TestVideoStatusTransitions(t *testing.T) {
	v, err := NewVideo("Song A", "", "https://x/v.mp4", nil, 1, 1)
	require.NoError(t, err)

	v.Deactivate()
	assert.False(t, v.IsActive())
	v.Deactivate()
	assert.False(t, v.IsActive())

	v.Activate()
	assert.True(t, v.IsActive())
}

func TestRankingIsValid(t *testing.T) {
	assert.True(t, RankingMostViewed.IsValid())
	assert.True(t, RankingMostLiked.IsValid())
	assert.True(t, RankingRecent.IsValid())
	assert.False(t, Ranking("trending").IsValid())
}
