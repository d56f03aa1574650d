package strings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContain(t *testing.T) {
	assert.True(t, Contain([]string{"info", "debug", "warn"}, "debug"))
	assert.False(t, Contain([]string{"info", "debug", "warn"}, "verbose"))
	assert.False(t, Contain(nil, "info"))
}
