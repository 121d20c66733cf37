package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/ells/internal/config"
	"github.com/alexisbeaulieu97/ells/internal/listing"
	"github.com/alexisbeaulieu97/ells/internal/logger"
	"github.com/alexisbeaulieu97/ells/internal/users"
	ellserrors "github.com/alexisbeaulieu97/ells/pkg/errors"
)

// errPartialListing is returned when some paths could not be listed.
var errPartialListing = errors.New("some paths could not be listed")

const rootLong = `List directory contents with colour.

A directory named like a subcommand is listed by giving its path, as in
'ells ./version'.`

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "ells [paths...]",
		Short:         "List directory contents with colour",
		Long:          rootLong,
		Version:       version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, flags, args)
		},
	}

	flags.register(cmd)
	// Build info carries no template actions, so it serves as the template.
	cmd.SetVersionTemplate(buildInfo())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func runList(cmd *cobra.Command, flags *rootFlags, args []string) error {
	settings, err := config.Load(flags.configPath)
	if err != nil {
		return newCommandError("load settings", settingsLabel(flags.configPath), err, "Fix the settings file or point --config at another one.")
	}

	flags.apply(cmd.Flags(), &settings)
	if err := config.Validate(&settings); err != nil {
		return newCommandError("parse flags", "validating options", err, "Run 'ells --help' to see accepted values.")
	}

	log, err := logger.New(logger.Options{Level: settings.LogLevel, HumanReadable: true, Writer: cmd.ErrOrStderr()})
	if err != nil {
		return newCommandError("start", "creating logger", err, "Set log_level to one of trace, debug, info, warn or error.")
	}

	out := cmd.OutOrStdout()
	tty := detectTerminal(out)
	colours, renderer := selectTheme(settings, tty, os.Getenv, out)

	log.WithFields(map[string]any{
		"colour":       settings.Colour,
		"colour_scale": settings.ColourScale,
		"tty":          tty.isTTY,
		"width":        tty.width,
	}).Debug("output configured")

	lister := listing.New(listing.Config{
		Out:      out,
		Renderer: renderer,
		Colours:  colours,
		Users:    users.NewCache(),
		Logger:   log,
		Options:  listingOptions(settings, flags, tty),
	})

	if err := lister.List(args); err != nil {
		reportListErrors(cmd.ErrOrStderr(), err)
		return errPartialListing
	}
	return nil
}

func settingsLabel(path string) string {
	if path != "" {
		return path
	}
	if def, err := config.DefaultPath(); err == nil {
		return def
	}
	return "default settings"
}

// reportListErrors prints one line per path that failed, in the form ls uses.
func reportListErrors(w io.Writer, err error) {
	errs := []error{err}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		errs = joined.Unwrap()
	}

	for _, e := range errs {
		var listErr *ellserrors.ListError
		if errors.As(e, &listErr) {
			_, _ = fmt.Fprintf(w, "ells: %s: %v\n", listErr.Path, rootCause(listErr.Err))
			continue
		}
		_, _ = fmt.Fprintf(w, "ells: %v\n", e)
	}
}

func rootCause(err error) error {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err
	}
	return err
}
