package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"fyne.io/fyne/v2/app"

	"StylusBoard/internal/board"
	"StylusBoard/internal/config"
	"StylusBoard/internal/export"
	feednet "StylusBoard/internal/net"
	"StylusBoard/internal/store"
	"StylusBoard/internal/ui"
)

const feedPath = "/feed"

var errNothingToExport = errors.New("nothing to export: the saved drawing has no ink")

func main() {
	args := os.Args[1:]
	cmd := "run"
	if len(args) > 0 && args[0] != "" && args[0][0] != '-' {
		cmd, args = args[0], args[1:]
	}

	var err error
	switch cmd {
	case "run":
		err = runHost(args)
	case "feed":
		err = runFeed(args)
	case "export":
		err = runExport(args)
	case "discover":
		err = runDiscover(args)
	default:
		err = fmt.Errorf("unknown command %q (want run, feed, export or discover)", cmd)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "stylusboard:", err)
		os.Exit(1)
	}
}

// setup parses the common flags and loads the config.
func setup(name string, args []string, extra func(*flag.FlagSet)) (config.Config, *slog.Logger, error) {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	path := fs.String("config", config.DefaultPath(), "settings file")
	if extra != nil {
		extra(fs)
	}
	fs.Parse(args)

	cfg, err := config.Load(*path)
	if err != nil {
		return cfg, nil, err
	}
	lvl, _ := cfg.Level()
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(log)
	log.Debug("config loaded", "path", *path)
	return cfg, log, nil
}

// runApp opens the desktop board and blocks until its window closes.
func runApp(cfg config.Config, log *slog.Logger, onChange func(board.ContentChange)) {
	a := app.NewWithID(ui.AppID)
	var st store.Store
	if cfg.StateBackend == config.BackendPrefs {
		st = store.NewPrefsStore(a.Preferences())
	} else {
		st = store.NewFileStore(cfg.StateDir)
	}
	ui.RunApp(a, ui.Options{
		Board:           append(cfg.BoardOptions(), board.WithStore(st, cfg.StateKey)),
		OnContentChange: onChange,
		Logger:          log,
	})
}

func runHost(args []string) error {
	cfg, log, err := setup("run", args, nil)
	if err != nil {
		return err
	}
	log.Info("starting board", "backend", cfg.StateBackend)
	runApp(cfg, log, nil)
	return nil
}

func runFeed(args []string) error {
	cfg, log, err := setup("feed", args, nil)
	if err != nil {
		return err
	}
	listener, err := net.Listen("tcp", cfg.FeedAddr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", cfg.FeedAddr, err)
	}
	port := listener.Addr().(*net.TCPAddr).Port

	feed := feednet.NewFeed(log)
	defer feed.Close()
	mux := http.NewServeMux()
	mux.Handle(feedPath, feed)
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 10 * time.Second}
	go func() {
		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("feed server stopped", "err", err)
		}
	}()
	defer srv.Close()

	mdnsServer, err := feednet.Advertise(port, feedPath)
	if err != nil {
		log.Warn("feed will not be announced", "err", err)
	} else {
		defer mdnsServer.Shutdown()
	}
	log.Info("serving content feed", "url", fmt.Sprintf("ws://%s:%d%s", feednet.OutgoingIP(), port, feedPath))

	publish := func(c board.ContentChange) {
		if err := feed.Publish(c); err != nil {
			log.Warn("content change not published", "err", err)
		}
	}
	cfg.AutoExport = true
	runApp(cfg, log, publish)
	return nil
}

func runExport(args []string) error {
	var format, out string
	cfg, log, err := setup("export", args, func(fs *flag.FlagSet) {
		fs.StringVar(&format, "format", "png", "png or pdf")
		fs.StringVar(&out, "o", "", "output file (default stdout)")
	})
	if err != nil {
		return err
	}
	f, err := export.ParseFormat(format)
	if err != nil {
		return err
	}
	if cfg.StateBackend != config.BackendFile {
		return fmt.Errorf("export reads the %q backend only, config uses %q", config.BackendFile, cfg.StateBackend)
	}

	doc, err := store.NewAdapter(store.NewFileStore(cfg.StateDir), cfg.StateKey).Load()
	if err != nil {
		return err
	}
	if !doc.Paths.HasInk() {
		return errNothingToExport
	}

	if out == "" {
		_, err = export.Write(os.Stdout, f, doc.Paths, cfg.ExportOptions())
	} else {
		err = writeExportFile(out, f, doc, cfg.ExportOptions())
	}
	if err != nil {
		return err
	}
	log.Info("drawing exported", "strokes", len(doc.Paths), "format", string(f), "out", out)
	return nil
}

// writeExportFile writes doc to path; a failed close is reported like a
// failed write.
func writeExportFile(path string, f export.Format, doc store.Document, opts export.Options) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	_, err = export.Write(file, f, doc.Paths, opts)
	if cerr := file.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func runDiscover(args []string) error {
	var wait time.Duration
	_, log, err := setup("discover", args, func(fs *flag.FlagSet) {
		fs.DurationVar(&wait, "wait", 2*time.Second, "how long to listen for announcements")
	})
	if err != nil {
		return err
	}
	log.Debug("browsing", "service", feednet.ServiceType)
	return feednet.Browse(wait, func(addr string) {
		fmt.Printf("ws://%s%s\n", addr, feedPath)
	})
}
