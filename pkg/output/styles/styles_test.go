package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistry(t *testing.T) {
	registry := Default()

	for _, name := range []string{"Header", "Department", "Employee", "Message", "Error", "Muted", "Bullet"} {
		t.Run(name, func(t *testing.T) {
			_, exists := registry[name]
			assert.True(t, exists, "style %s should exist", name)
		})
	}

	assert.True(t, registry.Get("Header").GetBold())
	assert.True(t, registry.Get("Muted").GetItalic())
}

func TestGet(t *testing.T) {
	registry := Default()

	assert.Equal(t, lipgloss.NewStyle(), registry.Get("NonExistentStyle"))
	assert.NotEqual(t, lipgloss.NewStyle(), registry.Get("Error"))
}

func TestParse(t *testing.T) {
	t.Run("resolves_colors", func(t *testing.T) {
		registry, err := Parse([]byte(`
colors:
  red:
    light: "#FF0000"
    dark: "#AA0000"
styles:
  Alert:
    bold: true
    foreground: red
  Plain:
    foreground: undefined
`))
		require.NoError(t, err)

		assert.Equal(t, lipgloss.AdaptiveColor{Light: "#FF0000", Dark: "#AA0000"}, registry.Get("Alert").GetForeground())
		assert.True(t, registry.Get("Alert").GetBold())
		assert.Equal(t, lipgloss.NoColor{}, registry.Get("Plain").GetForeground())
	})

	t.Run("invalid_yaml", func(t *testing.T) {
		_, err := Parse([]byte("styles: [unclosed"))
		assert.Error(t, err)
	})
}

func TestRenderKeepsText(t *testing.T) {
	assert.Contains(t, Default().Render("Department", "Pie Quality Control"), "Pie Quality Control")
}
