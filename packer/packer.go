package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/taotao54321/starsoldier-ground-compress/codec"
)

var errUsage = errors.New("bad arguments")

func Ratio(num int, denom int) float32 {
	if denom == 0 {
		return 0.0
	}
	return float32(num) / float32(denom)
}

func Percent(num int, denom int) float32 {
	return 100.0 * Ratio(num, denom)
}

// Describes packing config for a whole file
type FilePackConfig struct {
	origin   uint16
	window   InputWindow
	verbose  bool
	verify   bool
	report   bool   // print output report
	graphDir string // write SVG histograms here if set
}

func DefaultFilePackConfig() FilePackConfig {
	return FilePackConfig{
		origin: codec.DefaultOrigin,
		report: true,
	}
}

// Core function to pack raw rows and return the encoded bytes.
func PackAll(w io.Writer, raw []byte, cfg FilePackConfig) ([]byte, *codec.Stats, error) {
	packed, stats, err := codec.EncodeWithStats(raw, cfg.origin)
	if err != nil {
		return nil, nil, err
	}
	log.Debug("encoded", "rows", stats.Rows, "self", stats.SelfRows, "short", stats.ShortRows,
		"refs", stats.RefRows, "size", len(packed))

	// Verify by unpacking
	if cfg.verify {
		unpacked, err := codec.Decode(packed, cfg.origin)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to verify pack<->unpack round trip: %w", err)
		}
		if !bytes.Equal(raw, unpacked) {
			return nil, nil, fmt.Errorf("failed to verify pack<->unpack round trip, there is a bug (digest %s != %s)",
				Digest(unpacked), Digest(raw))
		}
		log.Debug("verify OK", "digest", Digest(raw))
	}

	if cfg.graphDir != "" {
		written, err := WriteGraphs(cfg.graphDir, stats)
		if err != nil {
			return nil, nil, err
		}
		for _, path := range written {
			log.Debug("wrote graph", "path", path)
		}
	}

	if cfg.report {
		PrintReport(w, stats, cfg)
	}
	return packed, stats, nil
}

func PrintReport(w io.Writer, stats *codec.Stats, cfg FilePackConfig) {
	fmt.Fprintln(w, "===== Complete =====")
	fmt.Fprintf(w, "Rows:             %6d\n", stats.Rows)
	fmt.Fprintf(w, "  own code:       %6d\n", stats.SelfRows)
	fmt.Fprintf(w, "  short code:     %6d\n", stats.ShortRows)
	fmt.Fprintf(w, "  back-reference: %6d\n", stats.RefRows)
	fmt.Fprintf(w, "Literals:         %6d\n", stats.Literals)
	fmt.Fprintf(w, "Runs:             %6d (unit 1-4: %d/%d/%d/%d)\n", stats.TotalRuns(),
		stats.Runs[1], stats.Runs[2], stats.Runs[3], stats.Runs[4])
	fmt.Fprintf(w, "Original size:    %6d\n", stats.RawSize)
	fmt.Fprintf(w, "Packed size:      %6d (%.1f%%)\n", stats.PackedSize, Percent(stats.PackedSize, stats.RawSize))
	if stats.PackedSize > 0 {
		fmt.Fprintf(w, "Address range:    $%04X-$%04X\n", cfg.origin, int(cfg.origin)+stats.PackedSize-1)
	}
	if cfg.verify {
		fmt.Fprintln(w, "Verify:           OK")
	}
}

// Pack a file with the given config.
func CommandPack(w io.Writer, inputPath string, outputPath string, cfg FilePackConfig) error {
	raw, err := LoadRows(inputPath, cfg.window)
	if err != nil {
		return err
	}
	log.Debug("loaded input", "path", inputPath, "size", len(raw), "digest", Digest(raw))

	packed, _, err := PackAll(w, raw, cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(outputPath, packed, 0644)
}

// Unpack a file produced by "pack" at the same origin.
func CommandUnpack(w io.Writer, inputPath string, outputPath string, origin uint16) error {
	packed, err := os.ReadFile(inputPath)
	if err != nil {
		return err
	}
	raw, err := codec.Decode(packed, origin)
	if err != nil {
		return err
	}
	log.Debug("decoded", "path", inputPath, "rows", len(raw)/codec.RowWidth, "digest", Digest(raw))

	fmt.Fprintf(w, "Unpacked %d bytes to %d bytes (%d rows)\n", len(packed), len(raw), len(raw)/codec.RowWidth)
	return os.WriteFile(outputPath, raw, 0644)
}

// Compare the packed size against general-purpose codecs.
func CommandCompare(w io.Writer, inputPath string, cfg FilePackConfig) error {
	raw, err := LoadRows(inputPath, cfg.window)
	if err != nil {
		return err
	}
	cfg.report = false
	packed, _, err := PackAll(w, raw, cfg)
	if err != nil {
		return err
	}
	PrintComparison(w, raw, len(packed), CompareCodecs(raw))
	return nil
}

type CliCommand struct {
	fn       func(args []string) error
	flagset  *flag.FlagSet
	argsdesc string // argument description
	desc     string
}

// Describes how to use a given command.
func PrintCmdUsage(w io.Writer, name string, cmd CliCommand) {
	fmt.Fprintf(w, "%s %s - %s\n", name, cmd.argsdesc, cmd.desc)
	fs := cmd.flagset
	var count int = 0
	fs.VisitAll(func(_ *flag.Flag) {
		count++
	})
	if count != 0 {
		fs.SetOutput(w)
		fs.PrintDefaults()
	}
}

func PrintUsage(w io.Writer, commands map[string]CliCommand) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage: packer <command> [arguments]")
	fmt.Fprintln(w, "Commands available:")

	names := []string{}
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		cmd := commands[name]
		fmt.Fprintf(w, "    %-10s %s\n", name, cmd.desc)
	}
}

// Flags shared by the commands reading raw rows.
func addInputFlags(fs *flag.FlagSet, cfg *FilePackConfig) {
	fs.Var((*addrFlag)(&cfg.origin), "origin", "load address of the packed data on the target")
	fs.Var((*sizeFlag)(&cfg.window.offset), "offset", "offset of the rows in the input file")
	fs.Var((*sizeFlag)(&cfg.window.size), "size", "size of the rows in bytes (0 = to end of file)")
	fs.BoolVar(&cfg.verbose, "verbose", false, "verbose output")
}

func NewCommands(w io.Writer, errorHandling flag.ErrorHandling) map[string]CliCommand {
	pack_flags := flag.NewFlagSet("pack", errorHandling)
	unpack_flags := flag.NewFlagSet("unpack", errorHandling)
	compare_flags := flag.NewFlagSet("compare", errorHandling)
	help_flags := flag.NewFlagSet("help", errorHandling)

	packCfg := DefaultFilePackConfig()
	addInputFlags(pack_flags, &packCfg)
	pack_flags.BoolVar(&packCfg.verify, "verify", false, "unpack again and compare with the input")
	pack_flags.StringVar(&packCfg.graphDir, "graph", "", "write SVG histograms to this directory")

	unpackOrigin := addrFlag(codec.DefaultOrigin)
	unpack_flags.Var(&unpackOrigin, "origin", "load address of the packed data on the target")
	unpackVerbose := unpack_flags.Bool("verbose", false, "verbose output")

	compareCfg := DefaultFilePackConfig()
	addInputFlags(compare_flags, &compareCfg)

	var commands map[string]CliCommand

	cmd_pack := func(args []string) error {
		if err := pack_flags.Parse(args); err != nil {
			return err
		}
		files := pack_flags.Args()
		if len(files) != 2 {
			return fmt.Errorf("%w: 'pack' command: expected <input> <output> arguments", errUsage)
		}
		setVerbose(packCfg.verbose)
		return CommandPack(w, files[0], files[1], packCfg)
	}

	cmd_unpack := func(args []string) error {
		if err := unpack_flags.Parse(args); err != nil {
			return err
		}
		files := unpack_flags.Args()
		if len(files) != 2 {
			return fmt.Errorf("%w: 'unpack' command: expected <input> <output> arguments", errUsage)
		}
		setVerbose(*unpackVerbose)
		return CommandUnpack(w, files[0], files[1], uint16(unpackOrigin))
	}

	cmd_compare := func(args []string) error {
		if err := compare_flags.Parse(args); err != nil {
			return err
		}
		files := compare_flags.Args()
		if len(files) != 1 {
			return fmt.Errorf("%w: 'compare' command: expected <input> argument", errUsage)
		}
		setVerbose(compareCfg.verbose)
		return CommandCompare(w, files[0], compareCfg)
	}

	cmd_help := func(args []string) error {
		if err := help_flags.Parse(args); err != nil {
			return err
		}
		names := help_flags.Args()
		if len(names) > 0 {
			cmd, pres := commands[names[0]]
			if !pres {
				PrintUsage(w, commands)
				return fmt.Errorf("%w: unknown command for help: %q", errUsage, names[0])
			}
			PrintCmdUsage(w, names[0], cmd)
		} else {
			PrintUsage(w, commands)
		}
		return nil
	}

	commands = map[string]CliCommand{
		"pack":    {cmd_pack, pack_flags, "[flags] <input> <output>", "pack raw ground rows"},
		"unpack":  {cmd_unpack, unpack_flags, "[flags] <input> <output>", "unpack to raw ground rows"},
		"compare": {cmd_compare, compare_flags, "[flags] <input>", "compare packed size with lz4, s2 and zstd"},
		"help":    {cmd_help, help_flags, "[command]", "list commands or describe a single command"},
	}
	return commands
}

func main() {
	commands := NewCommands(os.Stdout, flag.ExitOnError)

	if len(os.Args) < 2 {
		fmt.Println("error: expected a command")
		PrintUsage(os.Stdout, commands)
		os.Exit(1)
	}

	cmd, pres := commands[os.Args[1]]
	if !pres {
		fmt.Println("error: unknown command")
		PrintUsage(os.Stdout, commands)
		os.Exit(1)
	}

	err := cmd.fn(os.Args[2:])
	if err != nil {
		log.Error("packer failed", "command", os.Args[1], "err", err)
		if errors.Is(err, errUsage) {
			PrintCmdUsage(os.Stdout, os.Args[1], cmd)
		}
		os.Exit(1)
	}
}
