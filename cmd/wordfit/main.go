// Copyright 2025 The WordFit Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the wordfit longest word server and CLI application.

WordFit answers one question: given a handful of letters, what is the longest
dictionary word that can be spelled with them? Letters are used at most as
often as they appear, case matters, and ties between words of equal length go
to whichever comes first in the word list.

# Usage

Start the msgpack IPC server with the bundled word list:

	wordfit

Use a custom word list and enable debug logs:

	wordfit -dict /path/to/words.txt -d

Run in CLI mode for interactive testing, listing up to 5 candidates:

	wordfit -c -limit 5

Word lists are plain text files with one word per line (.txt) or binary word
files (.bin). Without -dict the list embedded in the binary is used. A word
list that cannot be loaded stops startup.

# Configuration

Runtime configuration is read from a TOML file, created with defaults when
missing:

	[server]
	max_input_len = 64
	max_limit = 64
	default_limit = 10

	[dict]
	path = ""

	[cli]
	show_timing = true
	default_limit = 10

The -dict flag takes precedence over dict.path.

# IPC Protocol

The server reads msgpack maps from stdin and writes one msgpack map per
request to stdout:

	{"id": "req1", "in": "rancary"}
	{"id": "req1", "w": "canary", "n": 6, "t": 41}

See package server for the other actions.

# Command Line Flags

	-dict string
	    Word list file (default: bundled list)
	-config string
	    Config file path (default: user config dir)
	-d  Enable debug mode with detailed logging
	-c  Run in CLI mode instead of server mode
	-limit int
	    Candidates to list per query in CLI mode
	-version
	    Show version and exit
	-reset-config
	    Rewrite the default config file with builtin values and exit
	-set-max-input int
	    Save server.max_input_len to the active config file and exit
	-set-max-limit int
	    Save server.max_limit to the active config file and exit
	-set-default-limit int
	    Save server.default_limit to the active config file and exit
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bastiangx/wordfit/internal/cli"
	"github.com/bastiangx/wordfit/internal/utils"
	"github.com/bastiangx/wordfit/pkg/config"
	"github.com/bastiangx/wordfit/pkg/dictionary"
	"github.com/bastiangx/wordfit/pkg/server"
	"github.com/bastiangx/wordfit/pkg/solver"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.3.0-beta"
	AppName = "wordfit"
	gh      = "https://github.com/bastiangx/wordfit"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main wires config, dictionary and the chosen front end.
// It does not implement logic for them and only manages the flow.
func main() {
	sigHandler()

	showVersion := flag.Bool("version", false, "Show current version")
	dictPath := flag.String("dict", "", "Word list file, .txt or .bin (default: bundled list)")
	configPath := flag.String("config", "", "Config file path (default: user config dir)")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	limit := flag.Int("limit", 0, "Candidates to list per query in CLI mode (default from config)")
	resetConfig := flag.Bool("reset-config", false, "Rewrite the default config.toml with builtin values and exit")
	setMaxInput := flag.Int("set-max-input", 0, "Save server.max_input_len to the config file and exit (0 = no cap)")
	setMaxLimit := flag.Int("set-max-limit", 0, "Save server.max_limit to the config file and exit")
	setDefaultLimit := flag.Int("set-default-limit", 0, "Save server.default_limit to the config file and exit")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	if *resetConfig {
		if err := config.RebuildConfigFile(); err != nil {
			log.Fatalf("Failed to rebuild config: %v", err)
		}
		fmt.Fprintf(os.Stderr, "Config rebuilt at %s\n", config.GetActiveConfigPath(""))
		os.Exit(0)
	}

	appConfig, activeConfig, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Warnf("Config unavailable, using defaults: %v", err)
		appConfig = config.DefaultConfig()
	}
	log.Debugf("Using config file: (%s)", config.GetActiveConfigPath(activeConfig))

	// Only flags given on the command line are written.
	updates := map[string]*int{}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "set-max-input":
			updates[f.Name] = setMaxInput
		case "set-max-limit":
			updates[f.Name] = setMaxLimit
		case "set-default-limit":
			updates[f.Name] = setDefaultLimit
		}
	})
	if len(updates) > 0 {
		target := config.GetActiveConfigPath(activeConfig)
		if target == "unknown" {
			log.Fatal("No config file location available to save to")
		}
		err := appConfig.Update(target, updates["set-max-input"], updates["set-max-limit"], updates["set-default-limit"])
		if err != nil {
			log.Fatalf("Failed to update config: %v", err)
		}
		s := appConfig.Server
		fmt.Fprintf(os.Stderr, "Config saved at %s: max_input_len=%d max_limit=%d default_limit=%d\n",
			target, s.MaxInputLen, s.MaxLimit, s.DefaultLimit)
		os.Exit(0)
	}

	wordList := appConfig.Dict.Path
	if *dictPath != "" {
		wordList = *dictPath
	}
	if wordList != "" {
		pathResolver, err := utils.NewPathResolver()
		if err != nil {
			log.Fatalf("Failed to initialize path resolver: %v", err)
		}
		log.Debugf("Word list search dirs: (%s)", pathResolver.ConfigDir())
		wordList, err = pathResolver.ResolveWordList(wordList)
		if err != nil {
			log.Fatalf("Failed to find word list: %v", err)
		}
	}

	index, err := dictionary.Load(wordList)
	if err != nil {
		log.Fatalf("Failed to load dictionary: %v", err)
	}
	log.Debugf("Dictionary ready: words=[%d], longest=[%d]", index.Size(), index.MaxLength())

	matcher := solver.New(index)

	// CLI would be mainly used for testing and dbg purposes.
	if *cliMode {
		log.SetReportTimestamp(false)
		cliLimit := *limit
		if cliLimit <= 0 {
			cliLimit = appConfig.CLI.DefaultLimit
		}
		inputHandler := cli.NewInputHandler(matcher, cliLimit, appConfig.CLI.ShowTiming)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	showStartupInfo(wordList, index)

	srv := server.NewServer(matcher, appConfig)
	if err := srv.Start(); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}

func printVersion() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	logger.SetStyles(styles)

	logger.Print("")
	logger.Print("[ WordFit ] Finds the longest word your letters can spell")
	logger.Print("", "version", Version)
	logger.Print("")
	logger.Print("use -h or --help to see available options")
	logger.Print("Github Repo", "gh", gh)
}

// showStartupInfo displays some basic info about the init process on stderr.
func showStartupInfo(wordList string, index *dictionary.Index) {
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	source := wordList
	if source == "" {
		source = "bundled"
	}

	fmt.Fprintln(os.Stderr, "===========")
	fmt.Fprintln(os.Stderr, "  WordFit  ")
	fmt.Fprintln(os.Stderr, "===========")
	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", os.Getpid())
	log.Infof("word list: ( %s )", source)
	log.Infof("words: %d, longest: %d", index.Size(), index.MaxLength())
	log.Info("status: ready")
	fmt.Fprintln(os.Stderr, "===========")

	log.SetLevel(currentLevel)
}
