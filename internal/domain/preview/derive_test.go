package preview

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kizuna/internal/domain/draft"
)

func TestElapsed_DaysHoursMins(t *testing.T) {
	now := time.Date(2025, 6, 10, 18, 30, 45, 0, time.UTC)
	start := now.Add(-(2*24*time.Hour + 3*time.Hour + 10*time.Minute))

	c := Elapsed(start.Format(time.RFC3339), now)
	require.NotNil(t, c)
	assert.Equal(t, int64(2), c.Days)
	assert.Equal(t, int64(3), c.Hours)
	assert.Equal(t, int64(10), c.Mins)
	assert.GreaterOrEqual(t, c.Secs, int64(0))
	assert.Less(t, c.Secs, int64(60))
}

func TestElapsed_DateOnlyAndLocalForms(t *testing.T) {
	now := time.Date(2025, 1, 3, 1, 2, 3, 0, time.UTC)

	c := Elapsed("2025-01-01", now)
	require.NotNil(t, c)
	assert.Equal(t, Counter{Days: 2, Hours: 1, Mins: 2, Secs: 3}, *c)

	c = Elapsed("2025-01-02T23:00", now)
	require.NotNil(t, c)
	assert.Equal(t, Counter{Days: 0, Hours: 2, Mins: 2, Secs: 3}, *c)
}

func TestElapsed_EmptyFutureAndGarbage(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.Nil(t, Elapsed("", now))
	assert.Nil(t, Elapsed("ontem", now))
	assert.Equal(t, &Counter{}, Elapsed("2030-01-01", now))
}

func TestSlideIndex(t *testing.T) {
	interval := 4 * time.Second
	assert.Equal(t, 0, SlideIndex(3, 0, interval))
	assert.Equal(t, 0, SlideIndex(3, 3999*time.Millisecond, interval))
	assert.Equal(t, 1, SlideIndex(3, 4*time.Second, interval))
	assert.Equal(t, 2, SlideIndex(3, 9*time.Second, interval))
	assert.Equal(t, 0, SlideIndex(3, 12*time.Second, interval))
	assert.Equal(t, 0, SlideIndex(1, time.Hour, interval))
	assert.Equal(t, 0, SlideIndex(0, time.Hour, interval))
}

func TestCapsuleFor(t *testing.T) {
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	d := draft.Default()
	d.CapsuleMessage = "abra no nosso aniversário"

	assert.Nil(t, capsuleFor(d, now))

	d.CapsuleOpenDate = "2026-05-01"
	c := capsuleFor(d, now)
	require.NotNil(t, c)
	assert.False(t, c.Unlocked)
	assert.Empty(t, c.Message)

	d.CapsuleOpenDate = "2025-05-01T12:00"
	c = capsuleFor(d, now)
	require.NotNil(t, c)
	assert.True(t, c.Unlocked)
	assert.Equal(t, "abra no nosso aniversário", c.Message)

	d.CapsuleOpenDate = "someday"
	c = capsuleFor(d, now)
	require.NotNil(t, c)
	assert.False(t, c.Unlocked)
}

func TestYouTubeID(t *testing.T) {
	valid := []string{
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		"https://youtube.com/watch?v=dQw4w9WgXcQ&t=42",
		"https://youtu.be/dQw4w9WgXcQ",
		"https://www.youtube.com/embed/dQw4w9WgXcQ",
		"https://youtube.com/shorts/dQw4w9WgXcQ?feature=share",
		"https://www.youtube.com/v/dQw4w9WgXcQ",
		"https://www.youtube.com/watch?feature=player&v=dQw4w9WgXcQ",
	}
	for _, u := range valid {
		id, ok := YouTubeID(u)
		assert.True(t, ok, u)
		assert.Equal(t, "dQw4w9WgXcQ", id, u)
	}

	invalid := []string{
		"",
		"https://vimeo.com/123456",
		"https://youtu.be/short",
		"not a url",
	}
	for _, u := range invalid {
		_, ok := YouTubeID(u)
		assert.False(t, ok, u)
	}

	assert.Equal(t, "https://www.youtube.com/embed/dQw4w9WgXcQ", EmbedURL("dQw4w9WgXcQ"))
}

func TestSortMilestones(t *testing.T) {
	in := []draft.Milestone{
		{ID: "c", Date: "2022-03-01"},
		{ID: "x", Date: ""},
		{ID: "a", Date: "2019-12-24"},
		{ID: "b", Date: "2020-06-12"},
	}
	out := sortMilestones(in)

	ids := make([]string, len(out))
	for i, m := range out {
		ids[i] = m.ID
	}
	assert.Equal(t, []string{"a", "b", "c", "x"}, ids)
	assert.Equal(t, "c", in[0].ID)
}
