package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"unicode"

	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/thanhnguyen2187/wadex/logging"
	"github.com/thanhnguyen2187/wadex/wad/wlump"
	"github.com/thanhnguyen2187/wadex/wad/wstruct"
	"golang.org/x/sync/errgroup"
)

type (
	extractResult struct {
		Written int      `json:"written"`
		Skipped int      `json:"skipped"`
		Files   []string `json:"files"`
	}
)

// FileName builds the name an extracted lump is written to. The directory
// index keeps repeated names (one THINGS per level) apart.
func FileName(index int, descriptor wlump.Descriptor, compressed bool) string {
	name := strings.Map(
		func(r rune) rune {
			if r == '/' || r == '\\' || r == '.' || !unicode.IsPrint(r) {
				return '_'
			}
			return r
		},
		descriptor.Name,
	)
	fileName := fmt.Sprintf("%04d_%s.lmp", index, name)
	if compressed {
		fileName += ".zst"
	}
	return fileName
}

// Extract writes the payload of every selected lump into cmd.Out. Zero-size
// lumps such as level markers are skipped. Payloads are written concurrently.
func Extract(w io.Writer, archive *wstruct.Archive, cmd ExtractCmd) error {
	if err := os.MkdirAll(cmd.Out, 0755); err != nil {
		return errors.Wrap(err, "Extract error: create output folder")
	}

	var encoder *zstd.Encoder
	if cmd.Zstd {
		var err error
		encoder, err = zstd.NewWriter(nil)
		if err != nil {
			return errors.Wrap(err, "Extract error: create zstd encoder")
		}
		defer encoder.Close()
	}

	names := lo.Map(
		cmd.Names,
		func(name string, _ int) string {
			return strings.ToUpper(name)
		},
	)
	result := extractResult{Files: make([]string, 0)}
	group := errgroup.Group{}
	group.SetLimit(runtime.NumCPU())
	for index, descriptor := range archive.Directory.All() {
		if len(names) > 0 && !lo.Contains(names, strings.ToUpper(descriptor.Name)) {
			continue
		}
		if descriptor.Size == 0 {
			result.Skipped++
			continue
		}
		payload, err := archive.Payload(descriptor)
		if err != nil {
			_ = group.Wait()
			return errors.Wrap(err, "Extract error")
		}
		path := filepath.Join(cmd.Out, FileName(index, descriptor, cmd.Zstd))
		result.Written++
		result.Files = append(result.Files, path)

		group.Go(func() error {
			bs := payload
			if encoder != nil {
				bs = encoder.EncodeAll(payload, make([]byte, 0, len(payload)))
			}
			if err := os.WriteFile(path, bs, 0644); err != nil {
				return errors.Wrapf(err, `Extract error: write lump "%s"`, descriptor.Name)
			}
			logging.L().Debug().Str("lump", descriptor.Name).Str("path", path).Int("size", len(bs)).Msg("extracted lump")
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return err
	}

	return writeJSON(w, result)
}
