package tui

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBanner_Ascii(t *testing.T) {
	out := Banner(termenv.Ascii)
	assert.Equal(t, "------------------------------------------------------\n"+
		"-         Welcome to the Vending Machine!            -\n"+
		"------------------------------------------------------", out)
}

func TestBanner_Colored(t *testing.T) {
	out := Banner(termenv.TrueColor)
	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, out, "Welcome to the Vending Machine!")
}

func TestToMarkdown(t *testing.T) {
	in := "------\nAvailable Items:\n- Sprite: $3.50\n------\n"
	assert.Equal(t, "\n---\n\nAvailable Items:  \n- Sprite: $3.50\n\n---\n\n", ToMarkdown(in))
}

func TestNewRenderer(t *testing.T) {
	render, err := NewRenderer()
	require.NoError(t, err)

	out, err := render("1. Customer\n2. Administrator")
	require.NoError(t, err)
	assert.Contains(t, out, "Customer")
	assert.Contains(t, out, "Administrator")
}

func TestIsInteractive_File(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "input"))
	require.NoError(t, err)
	defer f.Close()

	assert.False(t, IsInteractive(f))
	assert.False(t, IsInteractive(nil))
}
