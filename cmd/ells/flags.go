package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/alexisbeaulieu97/ells/internal/config"
	"github.com/alexisbeaulieu97/ells/internal/listing"
	"github.com/alexisbeaulieu97/ells/internal/render"
)

type rootFlags struct {
	long    bool
	oneline bool
	all     bool
	inode   bool
	blocks  bool
	header  bool
	git     bool
	binary  bool
	bytes   bool

	colour      string
	colourScale bool

	configPath string
	verbose    bool
}

func (f *rootFlags) register(cmd *cobra.Command) {
	cmd.SetGlobalNormalizationFunc(americanSpelling)

	flags := cmd.Flags()
	// -h belongs to --header, so help is long-form only.
	flags.Bool("help", false, "help for ells")

	flags.BoolVarP(&f.long, "long", "l", false, "Show details for each file")
	flags.BoolVarP(&f.oneline, "oneline", "1", false, "Show one file per line")
	flags.BoolVarP(&f.all, "all", "a", false, "Include files whose names start with a dot")
	flags.BoolVarP(&f.inode, "inode", "i", false, "Show inode numbers (long view)")
	flags.BoolVarP(&f.blocks, "blocks", "s", false, "Show block counts (long view)")
	flags.BoolVarP(&f.header, "header", "h", false, "Show a header row (long view)")
	flags.BoolVar(&f.git, "git", false, "Show git status (long view)")
	flags.BoolVarP(&f.binary, "binary", "b", false, "Show sizes with binary prefixes")
	flags.BoolVarP(&f.bytes, "bytes", "B", false, "Show sizes in bytes without prefixes")
	flags.StringVar(&f.colour, "colour", string(config.ColourAuto), "When to use colours: auto, always or never")
	flags.BoolVar(&f.colourScale, "colour-scale", false, "Colour file sizes by magnitude")
	flags.StringVar(&f.configPath, "config", "", "Settings file (default $XDG_CONFIG_HOME/ells/config.yaml)")

	cmd.PersistentFlags().BoolVarP(&f.verbose, "verbose", "v", false, "Enable debug logging")
}

// americanSpelling accepts --color and --color-scale.
func americanSpelling(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.Replace(name, "color", "colour", 1))
}

// apply overrides settings with every flag set on the command line.
func (f *rootFlags) apply(flags *pflag.FlagSet, s *config.Settings) {
	if flags.Changed("long") {
		s.Long = f.long
	}
	if flags.Changed("all") {
		s.All = f.all
	}
	if flags.Changed("inode") {
		s.Inode = f.inode
	}
	if flags.Changed("blocks") {
		s.Blocks = f.blocks
	}
	if flags.Changed("header") {
		s.Header = f.header
	}
	if flags.Changed("git") {
		s.Git = f.git
	}
	if flags.Changed("binary") && f.binary {
		s.SizeFormat = config.SizeBinary
	}
	if flags.Changed("bytes") && f.bytes {
		s.SizeFormat = config.SizeBytes
	}
	if flags.Changed("colour") {
		s.Colour = config.ColourMode(f.colour)
	}
	if flags.Changed("colour-scale") {
		s.ColourScale = f.colourScale
	}
	if f.verbose {
		s.LogLevel = "debug"
	}
}

func listingOptions(s config.Settings, f *rootFlags, tty terminal) listing.Options {
	opts := listing.Options{
		All:        s.All,
		Header:     s.Header,
		Inode:      s.Inode,
		Blocks:     s.Blocks,
		Git:        s.Git,
		SizeFormat: sizeFormat(s.SizeFormat),
	}

	switch {
	case s.Long:
		opts.View = listing.ViewLong
	case f.oneline || !tty.isTTY:
		opts.View = listing.ViewLines
	default:
		opts.View = listing.ViewGrid
		opts.Width = tty.width
	}
	return opts
}

func sizeFormat(name string) render.SizeFormat {
	switch name {
	case config.SizeBinary:
		return render.BinaryBytes
	case config.SizeBytes:
		return render.JustBytes
	default:
		return render.DecimalBytes
	}
}
