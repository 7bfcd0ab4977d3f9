package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/thanhnguyen2187/wadex/wad/wstruct"
)

func Start(archive *wstruct.Archive) error {
	lumpBrowser, err := CreateLumpBrowser(archive)
	if err != nil {
		return err
	}
	if err := tea.NewProgram(lumpBrowser).Start(); err != nil {
		return errors.Wrap(err, "ui.Start error")
	}
	return nil
}
