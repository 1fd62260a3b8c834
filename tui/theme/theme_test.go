package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveThemeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"kanagawa", "kanagawa"},
		{"Kanagawa Dragon", "kanagawa"},
		{"kanagawa_wave", "kanagawa"},
		{"ANSI", "terminal"},
		{"terminal", "terminal"},
		{"solarized", defaultThemeName},
		{"", defaultThemeName},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, resolveThemeName(tt.in))
		})
	}
}

func TestThemeStylesUsePalette(t *testing.T) {
	th := NewThemeWithName("terminal")

	assert.Equal(t, "terminal", th.Name)
	assert.Equal(t, th.Colors.MutedText, th.Muted.GetForeground())
	assert.Equal(t, th.Colors.Green, th.Success.GetForeground())
	assert.Equal(t, th.Colors.Yellow, th.Warning.GetForeground())
	assert.Equal(t, th.Colors.LightText, th.Code.GetForeground())
	assert.True(t, th.Header.GetBold())
}

func TestSetIcons(t *testing.T) {
	t.Cleanup(func() { SetIcons(false) })

	SetIcons(false)
	assert.Equal(t, plainIconArchive, IconArchive)
	assert.Equal(t, plainIconShell, IconShell)
	assert.Equal(t, plainIconArrow, IconArrow)

	SetIcons(true)
	assert.Equal(t, nerdIconArchive, IconArchive)
	assert.Equal(t, nerdIconShell, IconShell)
	assert.Equal(t, nerdIconArrow, IconArrow)
}
