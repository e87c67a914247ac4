package worldoftea

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHelpers(t *testing.T) {
	r := require.New(t)

	now, _ := time.Parse(time.RFC3339, "2025-01-01T12:00:00Z")
	withFakeNow(func() time.Time { return now }, func() {
		ago := helpers["ago"].(func(time.Time) string)
		r.Equal("3 hours ago", ago(now.Add(-3*time.Hour)))
		r.Equal("now", ago(now))
	})

	percent := helpers["percent"].(func(float64) string)
	r.Equal("67%", percent(200.0/3))
	r.Equal("0%", percent(0))

	plural := helpers["plural"].(func(int, string, string) string)
	r.Equal("1 vote", plural(1, "vote", "votes"))
	r.Equal("0 votes", plural(0, "vote", "votes"))
}

func withFakeNow(nowFunc func() time.Time, f func()) {
	old := NowFunc
	NowFunc = nowFunc
	defer func() { NowFunc = old }()
	f()
}
