package pos

import (
	"fmt"
	"time"

	"github.com/Tahashy/Panel-Administrativo/internal/models"
)

// ElapsedSeconds returns the preparation time to display for an order: the
// stamped value once finalized, otherwise the running time since creation.
func ElapsedSeconds(o *models.Order, now time.Time) int {
	if o.PrepSeconds != nil {
		return *o.PrepSeconds
	}
	secs := int(now.Sub(NormalizeStoreTime(o.CreatedAt)).Seconds())
	if secs < 0 {
		return 0
	}
	return secs
}

// FormatElapsed renders seconds as a MM:SS kitchen clock, capped at "60:00+".
func FormatElapsed(seconds int) string {
	minutes := seconds / 60
	if minutes >= 60 {
		return "60:00+"
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds%60)
}
