package cli

import (
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/alexflint/go-arg"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/thanhnguyen2187/wadex/ds"
	"github.com/thanhnguyen2187/wadex/logging"
	"github.com/thanhnguyen2187/wadex/ui"
	"github.com/thanhnguyen2187/wadex/wad/wlump"
	"github.com/thanhnguyen2187/wadex/wad/wpatch"
	"github.com/thanhnguyen2187/wadex/wad/wstruct"
	"github.com/thanhnguyen2187/wadex/wad/wthing"
)

type (
	Args struct {
		Header      *HeaderCmd      `arg:"subcommand:header" help:"print the archive header"`
		Lumps       *LumpsCmd       `arg:"subcommand:lumps" help:"list the lump directory"`
		Patch       *PatchCmd       `arg:"subcommand:patch" help:"decode the picture header of a lump"`
		Things      *ThingsCmd      `arg:"subcommand:things" help:"decode the things placed in a level"`
		Maps        *MapsCmd        `arg:"subcommand:maps" help:"list the levels"`
		Extract     *ExtractCmd     `arg:"subcommand:extract" help:"write lump payloads to files"`
		Interactive *InteractiveCmd `arg:"subcommand:interactive" help:"browse the lump directory"`

		Debug  bool `arg:"--debug,env:WADEX_DEBUG" help:"log debug messages"`
		Human  bool `arg:"--human,env:WADEX_HUMAN" help:"log in a human-friendly format instead of JSON"`
		Strict bool `arg:"--strict,env:WADEX_STRICT" help:"fail when the directory does not match the header"`
	}
	FileArg struct {
		File string `arg:"positional,required" help:"path to the WAD file" placeholder:"DOOM.WAD"`
	}
	HeaderCmd struct {
		FileArg
	}
	LumpsCmd struct {
		FileArg
		Name string `help:"only list lumps with this name"`
	}
	PatchCmd struct {
		FileArg
		Lump string `arg:"positional,required" help:"name of the picture lump" placeholder:"TITLEPIC"`
	}
	ThingsCmd struct {
		FileArg
		Map  string `arg:"required" help:"level marker name" placeholder:"E1M1"`
		Type []int  `help:"only print things of these types"`
	}
	MapsCmd struct {
		FileArg
	}
	ExtractCmd struct {
		FileArg
		Out   string   `arg:"required" help:"destination folder" placeholder:"DIR"`
		Names []string `help:"only extract lumps with these names"`
		Zstd  bool     `help:"compress every payload with zstd"`
	}
	InteractiveCmd struct {
		FileArg
	}

	lumpEntry struct {
		Index int `json:"index"`
		wlump.Descriptor
	}
)

var ErrNoCommand = errors.New("no command given")

func (r FileArg) Path() string {
	return r.File
}

func (Args) Description() string {
	des := strings.Join(
		[]string{
			"Decode the header, lump directory, pictures and things of DOOM WAD files.",
			"Every command prints JSON to the standard output.",
		},
		"\n",
	)
	des += "\n"
	return des
}

func writeJSON(w io.Writer, v any) error {
	bs, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(err, "writeJSON error")
	}
	bs = append(bs, '\n')
	_, err = w.Write(bs)
	return err
}

func PrintHeader(w io.Writer, archive *wstruct.Archive) error {
	return writeJSON(w, archive.Header)
}

func PrintLumps(w io.Writer, archive *wstruct.Archive, name string) error {
	entries := make([]lumpEntry, 0, archive.Directory.Len())
	for index, descriptor := range archive.Directory.All() {
		entries = append(entries, lumpEntry{Index: index, Descriptor: descriptor})
	}
	if name != "" {
		entries = lo.Filter(
			entries,
			func(entry lumpEntry, _ int) bool {
				return strings.EqualFold(entry.Name, name)
			},
		)
	}
	return writeJSON(w, entries)
}

func PrintPatch(w io.Writer, archive *wstruct.Archive, lumpName string) error {
	_, payload, err := archive.Lump(lumpName)
	if err != nil {
		return err
	}
	header, err := wpatch.DecodeBytes(payload)
	if err != nil {
		return errors.Wrapf(err, `PrintPatch error: lump "%s"`, lumpName)
	}
	return writeJSON(w, header)
}

func PrintThings(w io.Writer, archive *wstruct.Archive, mapName string, types []int) error {
	_, payload, err := archive.MapLump(mapName, wthing.LumpName)
	if err != nil {
		return err
	}
	things, err := wthing.DecodeLump(payload)
	if err != nil {
		return errors.Wrapf(err, `PrintThings error: map "%s"`, mapName)
	}
	if len(types) > 0 {
		things = lo.Filter(
			things,
			func(thing wthing.Thing, _ int) bool {
				return lo.Contains(types, int(thing.Type))
			},
		)
	}
	return writeJSON(w, things)
}

func PrintMaps(w io.Writer, archive *wstruct.Archive) error {
	return writeJSON(w, archive.Maps())
}

// Run parses argv (without the program name) and executes the chosen command.
func Run(argv []string, stdout io.Writer) error {
	args := Args{}
	parser, err := arg.NewParser(arg.Config{Program: "wadex"}, &args)
	if err != nil {
		return errors.Wrap(err, "Run error: create parser")
	}
	if err := parser.Parse(argv); err != nil {
		if errors.Is(err, arg.ErrHelp) {
			parser.WriteHelp(stdout)
			return nil
		}
		return err
	}
	logging.Init(args.Debug, args.Human)
	cfg := wstruct.Config{Strict: args.Strict}

	cmd, ok := parser.Subcommand().(interface{ Path() string })
	if !ok {
		parser.WriteUsage(stdout)
		return ErrNoCommand
	}

	archive, err := wstruct.DecodeFile(cmd.Path(), cfg)
	if err != nil {
		return err
	}

	switch cmd := cmd.(type) {
	case *HeaderCmd:
		return PrintHeader(stdout, archive)
	case *LumpsCmd:
		return PrintLumps(stdout, archive, cmd.Name)
	case *PatchCmd:
		return PrintPatch(stdout, archive, cmd.Lump)
	case *ThingsCmd:
		return PrintThings(stdout, archive, cmd.Map, cmd.Type)
	case *MapsCmd:
		return PrintMaps(stdout, archive)
	case *ExtractCmd:
		return Extract(stdout, archive, *cmd)
	case *InteractiveCmd:
		return ui.Start(archive)
	}
	return ds.ErrUnreachableCode{Caller: "cli.Run"}
}

func Start() {
	if err := Run(os.Args[1:], os.Stdout); err != nil {
		logging.L().Error().Err(err).Msg("wadex failed")
		os.Exit(1)
	}
}
