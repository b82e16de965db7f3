package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/five82/apod98/internal/apod"
	"github.com/five82/apod98/internal/config"
	"github.com/five82/apod98/internal/logging"
	"github.com/five82/apod98/internal/prefs"
	"github.com/five82/apod98/internal/query"
	"github.com/five82/apod98/internal/state"
	"github.com/five82/apod98/internal/ui"
)

// Options configure the apod98 application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/apod98/prefs.toml
	Language   string // overrides config and APOD_LANG when set
	ThemeName  string // overrides the saved theme when set
	Version    string
}

// runtime is the wired object graph shared by Run and Fetch.
type runtime struct {
	cfg        config.Config
	logger     *slog.Logger
	closeLog   func() error
	client     *apod.Client
	store      *state.Store
	controller *query.Controller
}

func build(ctx context.Context, opts Options) (*runtime, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if opts.Language != "" {
		cfg.Language = opts.Language
	}

	logger, closeLog, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		// Logging is best effort; the app runs without it.
		logger, closeLog = logging.Discard(), func() error { return nil }
		cfg.LogFile = ""
	}

	client, err := apod.NewClient(apod.Options{
		Endpoint:  cfg.Endpoint,
		APIKey:    cfg.APIKey,
		Timeout:   cfg.Timeout,
		UserAgent: userAgent(opts.Version),
	})
	if err != nil {
		_ = closeLog()
		return nil, fmt.Errorf("init apod client: %w", err)
	}

	store := &state.Store{}
	controller := query.New(client, store,
		query.WithContext(ctx),
		query.WithLogger(logger),
		query.WithMessages(query.MessagesFor(cfg.Language)),
	)

	return &runtime{
		cfg:        cfg,
		logger:     logger,
		closeLog:   closeLog,
		client:     client,
		store:      store,
		controller: controller,
	}, nil
}

func (r *runtime) close() {
	_ = r.closeLog()
}

// Run boots the apod98 TUI until the user quits or the context is cancelled.
// Fetches still in flight at exit are abandoned and awaited.
func Run(ctx context.Context, opts Options) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	rt, err := build(ctx, opts)
	if err != nil {
		return err
	}
	defer rt.close()

	userPrefs := prefs.Load(opts.PrefsPath)
	themeName := userPrefs.Theme
	if opts.ThemeName != "" {
		themeName = opts.ThemeName
	}

	rt.logger.Info("apod98 starting",
		"version", opts.Version,
		"endpoint", rt.client.Endpoint(),
		"language", rt.cfg.Language,
		"theme", themeName,
	)

	err = ui.Run(ui.Options{
		Context:   ctx,
		Querier:   rt.controller,
		Store:     rt.store,
		ThemeName: themeName,
		PrefsPath: opts.PrefsPath,
		LogFile:   rt.cfg.LogFile,
		Language:  rt.cfg.Language,
		Version:   opts.Version,
	})

	cancel()
	rt.controller.Wait()
	rt.logger.Info("apod98 stopped")
	if err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

// Fetch runs one query without the TUI and writes the record to w, as text
// or as JSON. A failed query is returned as an error carrying the same
// message the TUI would show.
func Fetch(ctx context.Context, opts Options, date string, w io.Writer, asJSON bool) error {
	rt, err := build(ctx, opts)
	if err != nil {
		return err
	}
	defer rt.close()

	snap := rt.controller.SubmitWait(ctx, date)
	if snap.Phase != state.PhaseSuccess || snap.Record == nil {
		return &QueryError{Kind: snap.ErrorKind, Title: snap.ErrorTitle, Message: snap.ErrorMessage}
	}

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(snap.Record); err != nil {
			return fmt.Errorf("encode record: %w", err)
		}
		return nil
	}
	return writeRecord(w, *snap.Record)
}

// QueryError is a failed one-shot query.
type QueryError struct {
	Kind    state.ErrorKind
	Title   string
	Message string
}

func (e *QueryError) Error() string {
	if e.Title == "" {
		return e.Message
	}
	return e.Title + ": " + e.Message
}

func userAgent(version string) string {
	if version == "" {
		return ""
	}
	return "apod98/" + version
}
