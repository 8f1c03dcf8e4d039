package pos

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var orderNumberPattern = regexp.MustCompile(`^ORD-\d{8}$`)

func TestOrderNumberFormat(t *testing.T) {
	for i := 0; i < 50; i++ {
		n := OrderNumber()
		assert.True(t, orderNumberPattern.MatchString(n), "got %q", n)
	}
}
