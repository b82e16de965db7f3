package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"slices"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/five82/apod98/internal/app"
	"github.com/five82/apod98/internal/config"
	"github.com/five82/apod98/internal/prefs"
	"github.com/five82/apod98/internal/query"
	"github.com/five82/apod98/internal/ui"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "apod98: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	opts := app.Options{Version: version}

	root := &cobra.Command{
		Use:   "apod98",
		Short: "NASA Astronomy Picture of the Day in a retro terminal window",
		Long: `apod98 shows NASA's Astronomy Picture of the Day in a Windows 98 style
terminal window. Type a date as YYYY-MM-DD and press enter, or press ctrl+t
for today's picture.

The API key comes from NASA_API_KEY (a .env file in the working directory is
read too) or api_key in the config file; DEMO_KEY is used otherwise.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return validateOptions(opts)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Run(cmd.Context(), opts)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.ConfigPath, "config", "",
		fmt.Sprintf("config file path (default %s)", config.DefaultPath()))
	flags.StringVar(&opts.Language, "lang", "",
		fmt.Sprintf("message language: %s (overrides config)", strings.Join(query.Languages(), ", ")))
	root.Flags().StringVar(&opts.PrefsPath, "prefs", "",
		fmt.Sprintf("preferences file path (default %s)", prefs.DefaultPath()))
	root.Flags().StringVar(&opts.ThemeName, "theme", "",
		fmt.Sprintf("theme: %s (overrides saved preference)", strings.Join(ui.ThemeNames(), ", ")))

	root.AddCommand(newGetCmd(&opts), newVersionCmd())
	return root
}

// validateOptions rejects flag values that would otherwise fall back
// silently. Region suffixes are accepted for --lang ("pt-BR").
func validateOptions(opts app.Options) error {
	if opts.Language != "" {
		lang := strings.ToLower(strings.TrimSpace(opts.Language))
		if i := strings.IndexAny(lang, "-_"); i > 0 {
			lang = lang[:i]
		}
		if !slices.Contains(query.Languages(), lang) {
			return fmt.Errorf("unsupported --lang %q (want one of %s)", opts.Language, strings.Join(query.Languages(), ", "))
		}
	}
	if opts.ThemeName != "" && !slices.Contains(ui.ThemeNames(), opts.ThemeName) {
		return fmt.Errorf("unknown --theme %q (want one of %s)", opts.ThemeName, strings.Join(ui.ThemeNames(), ", "))
	}
	return nil
}

func newGetCmd(opts *app.Options) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "get [YYYY-MM-DD]",
		Short: "Fetch one picture of the day and print it",
		Long:  "Fetch the picture of the day for a date, or for today when no date is given, and print it without starting the TUI.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date := ""
			if len(args) == 1 {
				date = args[0]
			}
			return app.Fetch(cmd.Context(), *opts, date, cmd.OutOrStdout(), asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the record as JSON")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the apod98 version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "apod98 %s\n", version)
		},
	}
}
