package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTheme(t *testing.T) {
	theme := DefaultTheme()

	require.NotNil(t, theme)
	assert.NotEmpty(t, theme.Primary)
	assert.NotEmpty(t, theme.Foreground)
}

func TestNewStyles(t *testing.T) {
	t.Run("nil theme falls back to default", func(t *testing.T) {
		s := NewStyles(nil)

		require.NotNil(t, s)
		assert.Equal(t, DefaultTheme(), s.Theme())
	})

	t.Run("custom theme is kept", func(t *testing.T) {
		theme := DefaultTheme()
		theme.Primary = "#FF0000"

		s := NewStyles(theme)
		assert.Equal(t, theme, s.Theme())
	})
}
