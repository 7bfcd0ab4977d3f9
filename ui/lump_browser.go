package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/thanhnguyen2187/wadex/wad/wlump"
	"github.com/thanhnguyen2187/wadex/wad/wpatch"
	"github.com/thanhnguyen2187/wadex/wad/wstruct"
	"github.com/thanhnguyen2187/wadex/wad/wthing"
)

const (
	DefaultListHeight = 20
	detailHeight      = 8
)

type LumpBrowser struct {
	archive *wstruct.Archive
	lumps   []wlump.Descriptor
	cursor  int
	top     int
	height  int
}

func CreateLumpBrowser(archive *wstruct.Archive) (LumpBrowser, error) {
	lumps, err := archive.Directory.Descriptors()
	if err != nil {
		return LumpBrowser{}, errors.Wrap(err, "CreateLumpBrowser error")
	}
	return LumpBrowser{
		archive: archive,
		lumps:   lumps,
		height:  DefaultListHeight,
	}, nil
}

func (s LumpBrowser) Cursor() int {
	return s.cursor
}

func (s LumpBrowser) Selected() (wlump.Descriptor, bool) {
	if len(s.lumps) == 0 {
		return wlump.Descriptor{}, false
	}
	return s.lumps[s.cursor], true
}

// moveTo clamps the cursor to the directory and scrolls the window so the
// cursor stays visible.
func (s LumpBrowser) moveTo(cursor int) LumpBrowser {
	s.cursor = max(min(cursor, len(s.lumps)-1), 0)
	if s.cursor < s.top {
		s.top = s.cursor
	}
	if s.cursor >= s.top+s.height {
		s.top = s.cursor - s.height + 1
	}
	return s
}

func (s LumpBrowser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return s, tea.Quit
		case "up", "k":
			return s.moveTo(s.cursor - 1), nil
		case "down", "j":
			return s.moveTo(s.cursor + 1), nil
		case "pgup":
			return s.moveTo(s.cursor - s.height), nil
		case "pgdown":
			return s.moveTo(s.cursor + s.height), nil
		case "home", "g":
			return s.moveTo(0), nil
		case "end", "G":
			return s.moveTo(len(s.lumps) - 1), nil
		}
	case tea.WindowSizeMsg:
		s.height = max(msg.Height-detailHeight, 1)
		return s.moveTo(s.cursor), nil
	}
	return s, nil
}

func (s LumpBrowser) Init() tea.Cmd {
	return nil
}

func (s LumpBrowser) View() string {
	builder := strings.Builder{}
	builder.WriteString(fmt.Sprintf(
		"WADEX  %s  %d lumps declared, %d in directory\n\n",
		s.archive.Header.Kind, s.archive.Header.LumpCount, len(s.lumps),
	))

	end := min(s.top+s.height, len(s.lumps))
	for i := s.top; i < end; i++ {
		marker := "  "
		if i == s.cursor {
			marker = "> "
		}
		builder.WriteString(fmt.Sprintf("%s%5d  %-8s  %8d\n", marker, i, s.lumps[i].Name, s.lumps[i].Size))
	}

	builder.WriteString("\n")
	builder.WriteString(s.detail())
	builder.WriteString("\n\nj/k: move  g/G: first/last  q: quit\n")
	return builder.String()
}

func (s LumpBrowser) detail() string {
	descriptor, ok := s.Selected()
	if !ok {
		return "The directory is empty"
	}
	lines := []string{
		fmt.Sprintf("Name: %s  Offset: %d  Size: %d", descriptor.Name, descriptor.Offset, descriptor.Size),
	}

	payload, err := s.archive.Payload(descriptor)
	switch {
	case err != nil:
		lines = append(lines, "Payload lies outside of the file")
	case descriptor.Name == wthing.LumpName:
		lines = append(lines, fmt.Sprintf("Things: %d", wthing.CountLump(descriptor.Size)))
	case len(payload) >= wpatch.DefaultHeaderSize:
		header, err := wpatch.DecodeBytes(payload)
		if err == nil {
			lines = append(lines, fmt.Sprintf(
				"As a picture: %dx%d, offset (%d, %d)",
				header.Width, header.Height, header.LeftOffset, header.TopOffset,
			))
		}
	}
	return strings.Join(lines, "\n")
}
