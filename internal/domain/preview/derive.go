package preview

import (
	"regexp"
	"sort"
	"time"

	"kizuna/internal/domain/draft"
)

// Counter is the elapsed time since the couple's start date.
type Counter struct {
	Days  int64 `json:"days"`
	Hours int64 `json:"hours"`
	Mins  int64 `json:"mins"`
	Secs  int64 `json:"secs"`
}

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// ParseDate accepts the date forms the editor produces. Dates without a
// zone are UTC.
func ParseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Elapsed splits now-start into days, hours, minutes and seconds. It
// returns nil when start is empty or unparsable; a start in the future
// counts as zero.
func Elapsed(start string, now time.Time) *Counter {
	t, ok := ParseDate(start)
	if !ok {
		return nil
	}
	diff := now.Sub(t)
	if diff < 0 {
		diff = 0
	}
	secs := int64(diff / time.Second)
	return &Counter{
		Days:  secs / 86400,
		Hours: secs % 86400 / 3600,
		Mins:  secs % 3600 / 60,
		Secs:  secs % 60,
	}
}

// SlideIndex is the photo shown after elapsed time on a timer advancing
// every interval.
func SlideIndex(count int, elapsed, interval time.Duration) int {
	if count <= 1 || interval <= 0 || elapsed < 0 {
		return 0
	}
	return int(int64(elapsed/interval) % int64(count))
}

// Capsule is the time capsule section. Message is only set once the
// capsule is open.
type Capsule struct {
	OpenDate string `json:"openDate"`
	Unlocked bool   `json:"unlocked"`
	Message  string `json:"message,omitempty"`
	Title    string `json:"title"`
}

// capsuleFor returns nil when no open date is set. An unparsable date
// keeps the capsule sealed.
func capsuleFor(d draft.CoupleDraft, now time.Time) *Capsule {
	if d.CapsuleOpenDate == "" {
		return nil
	}
	c := &Capsule{OpenDate: d.CapsuleOpenDate}
	if open, ok := ParseDate(d.CapsuleOpenDate); ok && !now.Before(open) {
		c.Unlocked = true
		c.Message = d.CapsuleMessage
	}
	return c
}

var youtubeID = regexp.MustCompile(`^.*(?:(?:youtu\.be\/|v\/|vi\/|u\/\w\/|embed\/|shorts\/)|(?:(?:watch)?\?v(?:i)?=|\&v(?:i)?=))([^#\&\?]*).*`)

// YouTubeID extracts the 11 character video id from the common URL shapes
// (watch, shorts, embed, youtu.be).
func YouTubeID(url string) (string, bool) {
	if url == "" {
		return "", false
	}
	m := youtubeID.FindStringSubmatch(url)
	if m == nil || len(m[1]) != 11 {
		return "", false
	}
	return m[1], true
}

func EmbedURL(id string) string {
	return "https://www.youtube.com/embed/" + id
}

// sortMilestones orders by date; undated milestones go last in their
// original order.
func sortMilestones(in []draft.Milestone) []draft.Milestone {
	out := append([]draft.Milestone{}, in...)
	sort.SliceStable(out, func(i, j int) bool {
		ti, oki := ParseDate(out[i].Date)
		tj, okj := ParseDate(out[j].Date)
		switch {
		case oki && okj:
			return ti.Before(tj)
		case oki:
			return true
		default:
			return false
		}
	})
	return out
}
