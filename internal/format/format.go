// Package format holds small human-readable rendering helpers shared by the
// CLI reporter and the interactive browser.
package format

import (
	"fmt"
	"time"
)

// Duration renders d with three significant fractional digits in whatever
// unit keeps the number closest to human scale.
func Duration(d time.Duration) string {
	if d < time.Microsecond {
		return fmt.Sprintf("%.3fns", float64(d)/float64(time.Nanosecond))
	} else if d < time.Millisecond {
		return fmt.Sprintf("%.3fµs", float64(d)/float64(time.Microsecond))
	} else if d < time.Second {
		return fmt.Sprintf("%.3fms", float64(d)/float64(time.Millisecond))
	}
	return fmt.Sprintf("%.3fs", float64(d)/float64(time.Second))
}
