package pos

import (
	"fmt"
	"math/rand"
	"time"
)

const orderNumberPrefix = "ORD-"

// OrderNumber produces a human-facing display label: the fixed prefix, the
// last six digits of the current millisecond timestamp and a two-digit random
// suffix. It is not guaranteed unique and is never used as a primary key.
func OrderNumber() string {
	ms := fmt.Sprintf("%d", time.Now().UnixMilli())
	return fmt.Sprintf("%s%s%02d", orderNumberPrefix, ms[len(ms)-6:], rand.Intn(100))
}
