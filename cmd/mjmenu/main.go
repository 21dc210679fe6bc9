package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/microjournal/mjmenu/internal/ansi"
	"github.com/microjournal/mjmenu/internal/config"
	"github.com/microjournal/mjmenu/internal/logging"
	"github.com/microjournal/mjmenu/internal/menu"
	"github.com/microjournal/mjmenu/internal/proc"
	"github.com/microjournal/mjmenu/internal/rawinput"
	"github.com/microjournal/mjmenu/internal/termsize"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.Load(os.Getenv)
	logging.DebugEnabled = cfg.Debug

	logFile, err := logging.Setup(cfg.LogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mjmenu: logging disabled: %v\n", err)
	}
	defer logFile.Close()
	log.Printf("INFO: menu starting (pid %d, scripts %s, shell %s)", os.Getpid(), cfg.ScriptsDir, cfg.Shell)

	if err := ansi.EnableVT(os.Stdout); err != nil {
		log.Printf("WARN: escape sequences may not render: %v", err)
	}

	table, err := menu.DefaultTable(cfg)
	if err != nil {
		log.Printf("ERROR: %v", err)
		fmt.Fprintf(os.Stderr, "mjmenu: %v\n", err)
		return 1
	}

	self, err := proc.Current()
	if err != nil {
		log.Printf("WARN: reload will resolve the executable on demand: %v", err)
	}

	probe := termsize.New()
	dispatcher := &menu.Dispatcher{
		Runner: proc.NewSystem(),
		Shell:  cfg.Shell,
		Self:   self,
	}
	loop := menu.NewLoop(table, dispatcher, rawinput.NewReader(os.Stdin), os.Stdout, probe.Width)

	// Ctrl-C and Ctrl-D arrive as bytes in raw mode; these cover a hangup or
	// a kill from outside.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	if err := loop.Run(ctx); err != nil {
		log.Printf("ERROR: %v", err)
		fmt.Fprintf(os.Stderr, "mjmenu: %v\n", err)
		return 1
	}
	log.Printf("INFO: menu stopped")
	return 0
}
