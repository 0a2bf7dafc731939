package main

import (
	"flag"
	"fmt"
	"os"

	"easel/config"
	"easel/core"
	"easel/editor"
	"easel/logging"
	"easel/terminal"
)

func main() {
	var (
		configPath = flag.String("config", "", "Path to keymap config file (TOML)")
		debug      = flag.Bool("debug", false, "Write debug log")
		logPath    = flag.String("log", "easel.log", "Debug log file (with -debug)")
		showKeys   = flag.Bool("show-keys", false, "Print the effective keymap and exit")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Canvas tool controller: hold the override key for a temporary move tool.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s                        # Start with built-in keymap\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -config easel.toml     # Custom keymap\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -show-keys             # Print bindings without a TTY\n", os.Args[0])
	}

	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *showKeys {
		printKeymap(cfg.Keys)
		return
	}

	log := logging.Nop()
	if *debug {
		var closeLog func() error
		log, closeLog, err = logging.Init(*logPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer closeLog()
	}

	st := editor.NewStore(core.ToolBrush)
	ctrl := editor.NewController(st, core.ToolMove, log)

	if err := terminal.Run(ctrl, st, cfg, log); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printKeymap(keys config.Keymap) {
	for _, name := range config.Names() {
		fmt.Printf("%-20s %s\n", name, keys.Binding(name))
	}
}
