package pos

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Tahashy/Panel-Administrativo/internal/models"
)

// ErrOrderFinalized is returned for any transition or edit attempted on an
// order that already reached a terminal status.
var ErrOrderFinalized = errors.New("order is finalized")

var knownStatuses = map[models.OrderStatus]bool{
	models.StatusPending:   true,
	models.StatusPreparing: true,
	models.StatusReady:     true,
	models.StatusDelivered: true,
	models.StatusCancelled: true,
	models.StatusVoided:    true,
}

// IsFinal reports whether a status is terminal: no further transition or
// edit is permitted once reached.
func IsFinal(s models.OrderStatus) bool {
	return s == models.StatusDelivered || s == models.StatusCancelled || s == models.StatusVoided
}

// IsFinalizing reports whether entering a status stamps preparation time.
func IsFinalizing(s models.OrderStatus) bool {
	return s == models.StatusReady || IsFinal(s)
}

// NextStatus returns the linear happy-path successor. The mutation layer
// stays permissive about forward moves; this only backs the one-button flow.
func NextStatus(s models.OrderStatus) (models.OrderStatus, bool) {
	switch s {
	case models.StatusPending:
		return models.StatusPreparing, true
	case models.StatusPreparing:
		return models.StatusReady, true
	case models.StatusReady:
		return models.StatusDelivered, true
	}
	return "", false
}

// ApplyStatus validates a requested transition and produces the partial
// update to persist. On the first entry into a finalizing status it computes
// whole elapsed preparation seconds from the creation time (normalized to
// UTC) and stamps the finalization moment; both are set exactly once.
func ApplyStatus(order *models.Order, target models.OrderStatus, now time.Time) (models.StatusUpdate, error) {
	if !knownStatuses[target] {
		return models.StatusUpdate{}, fmt.Errorf("unknown status %q", target)
	}
	if IsFinal(order.Status) {
		return models.StatusUpdate{}, ErrOrderFinalized
	}

	update := models.StatusUpdate{Status: target}
	if IsFinalizing(target) && order.PrepSeconds == nil {
		secs := int(now.Sub(NormalizeStoreTime(order.CreatedAt)).Seconds())
		at := now.UTC()
		update.PrepSeconds = &secs
		update.FinalizedAt = &at
	}
	return update, nil
}

// NormalizeStoreTime converts a store timestamp to UTC. pgx hands back
// TIMESTAMPTZ values as correct absolute instants located in the local zone,
// so only the instant may be kept; zoneless string input is handled at the
// parsing boundary by ParseStoreTime.
func NormalizeStoreTime(t time.Time) time.Time {
	return t.UTC()
}

// ParseStoreTime parses timestamps as the store emits them: RFC 3339, or the
// zoneless "2006-01-02 15:04:05" form which is taken as UTC. A bare date is
// accepted too.
func ParseStoreTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	for _, layout := range []string{"2006-01-02 15:04:05", "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}
