package worldoftea

import (
	"html/template"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
)

// NowFunc is the clock stamping votes and comments. Tests replace it.
var NowFunc func() time.Time = time.Now

var helpers template.FuncMap = template.FuncMap{
	"ago": func(t time.Time) string {
		return humanize.RelTime(t, NowFunc(), "ago", "from now")
	},
	"markdown": renderMarkdown,
	"percent": func(f float64) string {
		return strconv.FormatFloat(f, 'f', 0, 64) + "%"
	},
	"plural": func(n int, singular string, plural string) string {
		if n == 1 {
			return "1 " + singular
		}
		return strconv.Itoa(n) + " " + plural
	},
}
