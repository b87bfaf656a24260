package report

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// plural renders a count with the singular or plural form of a word.
func plural(count int, singular string) string {
	num := strconv.Itoa(count)
	if count == 1 {
		return num + " " + singular
	}
	switch {
	case strings.HasSuffix(singular, "y"):
		return num + " " + singular[:len(singular)-1] + "ies"
	case strings.HasSuffix(singular, "s"):
		return num + " " + singular + "es"
	default:
		return num + " " + singular + "s"
	}
}

// formatDuration renders elapsed wall-clock time as m:ss.s.
func formatDuration(d time.Duration) string {
	secs := d.Seconds()
	minutes := int(secs) / 60
	return fmt.Sprintf("%d:%04.1f", minutes, secs-float64(minutes*60))
}
