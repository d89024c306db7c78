package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/kerrislane/tvshelf/browser"
	"github.com/kerrislane/tvshelf/catalog"
	"github.com/kerrislane/tvshelf/config"
	"github.com/kerrislane/tvshelf/logx"
	"github.com/kerrislane/tvshelf/terminal"
)

var (
	configFlag  = flag.String("config", "tvshelf.toml", "Path to configuration file")
	libraryFlag = flag.String("library", "", "Path to library file (overrides config)")
	backendFlag = flag.String("backend", "", "Terminal backend: ansi, tcell (overrides config)")
)

func main() {
	// Panic recovery: restore the terminal before the stack trace prints
	defer func() {
		if r := recover(); r != nil {
			terminal.HandleCrash(r)
		}
	}()

	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fatalf("config: %v", err)
	}
	if *libraryFlag != "" {
		cfg.Library.Path = *libraryFlag
	}
	if *backendFlag != "" {
		cfg.Terminal.Backend = *backendFlag
	}

	th, err := cfg.Theme()
	if err != nil {
		fatalf("theme: %v", err)
	}

	log, closer, err := logx.Setup(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		fatalf("log: %v", err)
	}
	if closer != nil {
		defer closer.Close()
	}

	lib, err := catalog.Load(cfg.Library.Path)
	if err != nil {
		fatalf("library: %v", err)
	}

	drv, err := terminal.New(cfg.Terminal.Backend)
	if err != nil {
		fatalf("terminal: %v", err)
	}
	if err := drv.Init(); err != nil {
		fatalf("terminal init: %v", err)
	}
	defer drv.Fini()

	log.Info("started", "backend", cfg.Terminal.Backend, "library", cfg.Library.Path)

	app := browser.New(drv, lib, cfg.Library.Path, th, log)
	if err := app.Run(); err != nil {
		drv.Fini()
		fatalf("%v", err)
	}
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
