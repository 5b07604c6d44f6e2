package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/lixenwraith/termhost/config"
	"github.com/lixenwraith/termhost/engine"
	"github.com/lixenwraith/termhost/status"
	"github.com/lixenwraith/termhost/terminal"
)

var (
	configFlag = flag.String("config", "", "Path to TOML config file")
	colorFlag  = flag.String("color", "", "Color mode: auto, truecolor, 256, 16")
	debugFlag  = flag.Bool("debug", false, "Write debug log to the log directory")
	tickFlag   = flag.String("tick", "", "Tick interval, e.g. 50ms")
)

func main() {
	os.Exit(run())
}

func run() (code int) {
	// Panic Recovery: Ensure terminal is reset even if the host crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\n\x1b[31mTERMHOST CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			code = 1
		}
	}()

	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "termhost: %v\n", err)
		return 1
	}
	cfg, err = cfg.Apply(config.Overrides{
		ColorMode:    *colorFlag,
		TickInterval: *tickFlag,
		Debug:        *debugFlag,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "termhost: %v\n", err)
		return 1
	}

	if logFile := setupLogging(cfg.Log.Debug, cfg.Log.Dir); logFile != nil {
		defer logFile.Close()
	}

	term, err := terminal.New(cfg.Terminal())
	if err != nil {
		log.Printf("terminal: %+v", err)
		fmt.Fprintf(os.Stderr, "termhost: %v\n", err)
		return 1
	}

	stats := status.NewRegistry()
	opts := cfg.Engine()
	opts.Stats = stats

	eng := engine.New[demoState](demo{stats: stats}, term, opts)
	err = eng.Run()
	for _, m := range stats.Snapshot() {
		log.Printf("stat %s=%s", m.Name, m.Value)
	}
	if err != nil {
		log.Printf("fatal: %+v", err)
		fmt.Fprintf(os.Stderr, "termhost: %v\n", err)
		return 1
	}
	return 0
}
