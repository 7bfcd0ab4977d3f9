package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thanhnguyen2187/wadex/internal/fixture"
	"github.com/thanhnguyen2187/wadex/wad/wstruct"
)

func createBrowser(t *testing.T) LumpBrowser {
	lumps := append(
		[]fixture.Lump{{Name: "TITLEPIC", Data: fixture.Patch(320, 200, 0, 0)}},
		fixture.Map("E1M1", fixture.Thing(0, 0, 0, 1, 7), fixture.Thing(1, 1, 0, 2, 7))...,
	)
	archive, err := wstruct.Decode(fixture.Build("IWAD", lumps), wstruct.Config{})
	require.NoError(t, err)
	browser, err := CreateLumpBrowser(archive)
	require.NoError(t, err)
	return browser
}

func press(t *testing.T, browser LumpBrowser, keys ...tea.KeyMsg) LumpBrowser {
	for _, key := range keys {
		model, _ := browser.Update(key)
		var ok bool
		browser, ok = model.(LumpBrowser)
		require.True(t, ok)
	}
	return browser
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestLumpBrowser_Move(t *testing.T) {
	browser := createBrowser(t)

	browser = press(t, browser, tea.KeyMsg{Type: tea.KeyDown}, runes("j"))
	assert.Equal(t, 2, browser.Cursor())
	selected, ok := browser.Selected()
	assert.True(t, ok)
	assert.Equal(t, "THINGS", selected.Name)

	browser = press(t, browser, runes("k"), tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, browser.Cursor())

	browser = press(t, browser, runes("G"))
	assert.Equal(t, 11, browser.Cursor())
	browser = press(t, browser, runes("j"))
	assert.Equal(t, 11, browser.Cursor())
}

func TestLumpBrowser_Scroll(t *testing.T) {
	browser := createBrowser(t)

	model, _ := browser.Update(tea.WindowSizeMsg{Width: 80, Height: 12})
	browser = model.(LumpBrowser)
	browser = press(t, browser, runes("G"))

	view := browser.View()
	assert.Contains(t, view, "BLOCKMAP")
	assert.NotContains(t, view, "TITLEPIC")
}

func TestLumpBrowser_Quit(t *testing.T) {
	browser := createBrowser(t)

	_, cmd := browser.Update(runes("q"))
	assert.NotNil(t, cmd)
	_, cmd = browser.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.NotNil(t, cmd)
	_, cmd = browser.Update(runes("x"))
	assert.Nil(t, cmd)
}

func TestLumpBrowser_Detail(t *testing.T) {
	browser := createBrowser(t)

	assert.Contains(t, browser.View(), "As a picture: 320x200")

	browser = press(t, browser, runes("j"), runes("j"))
	assert.Contains(t, browser.View(), "Things: 2")
}

func TestLumpBrowser_Empty(t *testing.T) {
	archive, err := wstruct.Decode(fixture.Build("PWAD", nil), wstruct.Config{})
	require.NoError(t, err)
	browser, err := CreateLumpBrowser(archive)
	require.NoError(t, err)

	browser = press(t, browser, runes("j"), runes("G"))
	assert.Equal(t, 0, browser.Cursor())
	assert.Contains(t, browser.View(), "The directory is empty")
}
