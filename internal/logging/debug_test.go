package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDebugEnabled(t *testing.T) {
	t.Run("disabled by default", func(t *testing.T) {
		t.Setenv("TC_DEBUG", "")
		assert.False(t, DebugEnabled())
	})

	t.Run("enabled when TC_DEBUG is set", func(t *testing.T) {
		t.Setenv("TC_DEBUG", "1")
		assert.True(t, DebugEnabled())
	})
}

func TestLogger(t *testing.T) {
	assert.NotNil(t, Logger())
	// Same instance on repeated calls
	assert.Same(t, Logger(), Logger())
}
