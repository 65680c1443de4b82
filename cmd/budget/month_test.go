package budget

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidMonth(t *testing.T) {
	assert.True(t, validMonth("2024-01"))
	assert.True(t, validMonth("2024-12"))

	// Unpadded months pass string lookups but never match the monthly
	// analysis range, so they are rejected up front.
	assert.False(t, validMonth("2024-1"))
	assert.False(t, validMonth("2024-13"))
	assert.False(t, validMonth("2024"))
	assert.False(t, validMonth(""))
}
