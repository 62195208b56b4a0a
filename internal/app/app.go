package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/five82/roster/internal/config"
	"github.com/five82/roster/internal/directory"
	"github.com/five82/roster/internal/export"
	"github.com/five82/roster/internal/logging"
	"github.com/five82/roster/internal/logtail"
	"github.com/five82/roster/internal/prefs"
	"github.com/five82/roster/internal/randomuser"
	"github.com/five82/roster/internal/ui"
)

// Options configure the roster application. Zero values defer to the config
// file.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/roster/prefs.toml
	Results    int    // overrides config results when positive
	Seed       string // overrides config seed when non-empty
	Debug      bool   // forces debug-level logging
}

// env is everything a command needs once config has been resolved.
type env struct {
	cfg     config.Config
	log     *zap.Logger
	fetcher directory.Fetcher
}

// setup loads config, applies flag overrides, and builds the logger and
// client.
func setup(opts Options) (env, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return env{}, fmt.Errorf("load roster config: %w", err)
	}
	if opts.Results > 0 {
		cfg.Results = opts.Results
	}
	if opts.Seed != "" {
		cfg.Seed = opts.Seed
	}
	if opts.Debug {
		cfg.LogLevel = "debug"
	}

	logger, err := logging.New(cfg.LogPath(), cfg.LogLevel)
	if err != nil {
		return env{}, fmt.Errorf("init logger: %w", err)
	}

	client, err := randomuser.NewClient(randomuser.Options{
		BaseURL:     cfg.APIURL,
		Results:     cfg.Results,
		Nationality: cfg.Nationality,
		Seed:        cfg.Seed,
		Timeout:     cfg.Timeout,
	})
	if err != nil {
		_ = logger.Sync()
		return env{}, fmt.Errorf("init randomuser client: %w", err)
	}
	logger.Debug("client ready", zap.String("endpoint", client.Endpoint()))

	return env{cfg: cfg, log: logger, fetcher: client}, nil
}

// Run boots the roster TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	e, err := setup(opts)
	if err != nil {
		return err
	}
	defer func() { _ = e.log.Sync() }()

	userPrefs := prefs.Load(opts.PrefsPath)
	e.log.Info("starting ui", zap.String("theme", userPrefs.Theme))

	return ui.Run(ui.Options{
		Context:   ctx,
		Fetcher:   e.fetcher,
		Logger:    e.log,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
		ExportDir: e.cfg.ExportDir,
	})
}

// ListOptions select what `roster list` prints.
type ListOptions struct {
	Query string
	Show  int // 1-based card to open in detail; zero shows none
}

// List fetches the batch once, applies the query, and writes the resulting
// gallery to w.
func List(ctx context.Context, opts Options, list ListOptions, w io.Writer) error {
	e, err := setup(opts)
	if err != nil {
		return err
	}
	defer func() { _ = e.log.Sync() }()

	return runList(ctx, e.fetcher, e.log, list, w)
}

func runList(ctx context.Context, fetcher directory.Fetcher, log *zap.Logger, list ListOptions, w io.Writer) error {
	sink := newTextSink()
	ctrl := directory.NewController(sink, directory.WithLogger(log))
	if err := ctrl.Load(ctx, fetcher); err != nil {
		_ = sink.WriteTo(w)
		return err
	}
	if list.Query != "" {
		ctrl.OnQueryChanged(list.Query)
	}
	if list.Show > 0 {
		ctrl.OnCardSelected(list.Show - 1)
	}
	return sink.WriteTo(w)
}

// Export fetches the batch, applies query, and writes the matching records as
// vCards to out ("" or "-" for w).
func Export(ctx context.Context, opts Options, query, out string, w io.Writer) error {
	e, err := setup(opts)
	if err != nil {
		return err
	}
	defer func() { _ = e.log.Sync() }()

	return runExport(ctx, e.fetcher, e.log, query, out, w)
}

func runExport(ctx context.Context, fetcher directory.Fetcher, log *zap.Logger, query, out string, w io.Writer) error {
	ctrl := directory.NewController(newTextSink(), directory.WithLogger(log))
	if err := ctrl.Load(ctx, fetcher); err != nil {
		return err
	}
	ctrl.OnQueryChanged(query)
	records := ctrl.View()

	if out == "" || out == "-" {
		return export.Write(w, records)
	}
	path, err := config.ExpandPath(out)
	if err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	if err := export.Write(file, records); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close export file: %w", err)
	}
	log.Info("exported records", zap.Int("count", len(records)), zap.String("path", path))
	return nil
}

// Logs prints the last n formatted lines of roster's log file.
func Logs(opts Options, n int, w io.Writer) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load roster config: %w", err)
	}
	return printLogs(cfg.LogPath(), n, w)
}

func printLogs(path string, n int, w io.Writer) error {
	lines, err := logtail.Read(path, n)
	if err != nil {
		return err
	}
	if len(lines) == 0 {
		_, err := fmt.Fprintf(w, "no log entries in %s\n", path)
		return err
	}
	for _, line := range logtail.FormatLines(lines) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
