/*
Package main implements the typing-assist server and CLI [DBG] application.

TypeAssist builds a bigram language model from a training corpus and serves
spelling correction, next-word prediction and prefix completion on top of it.
It can operate as a MessagePack IPC server for integration with text editors,
or as a CLI application for testing and debugging.

The model is rebuilt from the corpus at every startup; nothing is persisted.
Correction scans the whole vocabulary per word, which is fine for the small
corpora this targets and wrong for dictionary-scale ones.

# Usage

Start the server with the builtin starter corpus:

	typeassist

Train from a corpus file (one sentence per line) and enable debug mode:

	typeassist -corpus /path/to/corpus.txt -d

Run in CLI mode for interactive testing:

	typeassist -c -k 5 -limit 10

# Configuration

Runtime configuration is managed through a TOML file:

	[server]
	max_word_len = 60
	default_k = 3
	max_k = 10
	max_limit = 64
	enable_filter = true

	[corpus]
	path = ""
	max_sentences = 100000

The config file is automatically created with defaults if it doesn't exist.

# IPC Protocol

The server communicates via MessagePack over stdin/stdout. Send a request:

	{"id": "r1", "op": "predict", "w": "i", "k": 3}

Receive followers ranked by bigram count:

	{"id": "r1", "s": ["am", "love", "learning"], "c": 3, "t": 45}

See the server package docs for the full op list.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/softkey/typeassist/internal/cli"
	"github.com/softkey/typeassist/pkg/config"
	"github.com/softkey/typeassist/pkg/corpus"
	"github.com/softkey/typeassist/pkg/model"
	"github.com/softkey/typeassist/pkg/server"
	"github.com/softkey/typeassist/pkg/suggest"
)

const (
	Version = "0.3.0"
	AppName = "typeassist"
	gh      = "https://github.com/softkey/typeassist"
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

// main wires config, corpus and engine together and hands off to the
// server or the CLI; it implements no suggestion logic itself.
func main() {
	sigHandler()
	defaultConfig := config.DefaultConfig()

	showVersion := flag.Bool("version", false, "Show current version")
	configPath := flag.String("config", "", "Path to config.toml (defaults to user config dir)")
	corpusPath := flag.String("corpus", "", "Training corpus file, one sentence per line (builtin demo corpus if empty)")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	predictK := flag.Int("k", defaultConfig.CLI.DefaultK, "Number of next-word predictions to return")
	limit := flag.Int("limit", defaultConfig.CLI.DefaultLimit, "Number of prefix completions to return")
	noFilter := flag.Bool("no-filter", defaultConfig.CLI.DefaultNoFilter, "Disable input filtering (DBG only)")

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

	resolvedConfigPath := *configPath
	if resolvedConfigPath == "" {
		var err error
		resolvedConfigPath, err = config.GetDefaultConfigPath()
		if err != nil {
			log.Warnf("Failed to determine config path: %v. Using built-in defaults...", err)
		}
	}

	appConfig := defaultConfig
	if resolvedConfigPath != "" {
		var err error
		appConfig, err = config.InitConfig(resolvedConfigPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
			os.Exit(1)
		}
		log.Debugf("Using config file: (%s)", resolvedConfigPath)
	}

	m := buildModel(*corpusPath, appConfig)
	engine := suggest.NewEngine(m)

	if *cliMode {
		log.SetReportTimestamp(false)
		log.Debug("Input info:",
			"k", *predictK,
			"limit", *limit,
			"noFilter", *noFilter)

		inputHandler := cli.NewInputHandler(engine, appConfig.Server.MaxWordLen, *predictK, *limit, *noFilter)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
			os.Exit(1)
		}
		return
	}

	log.Debug("spawning IPC")
	srv := server.NewServer(engine, appConfig)

	showStartupInfo(m)

	if err := srv.Start(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}

// buildModel trains the bigram model from the flag path, the configured
// path, or the builtin starter corpus, in that order.
func buildModel(corpusPath string, cfg *config.Config) *model.Model {
	path := corpusPath
	if path == "" {
		path = cfg.Corpus.Path
	}

	if path == "" {
		log.Warn("No corpus file specified, training on the builtin demo corpus...")
		return model.Build(corpus.Builtin())
	}

	loader := corpus.NewLoader(path, cfg.Corpus.MaxSentences)
	m, err := loader.BuildModel()
	if err != nil {
		log.Fatalf("Failed to build model from %s: %v", path, err)
		os.Exit(1)
	}
	log.Debugf("Model built from corpus: %s", path)
	return m
}

// printVersion renders the styled version banner.
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
	logger.Print("[ TypeAssist ] Corrects typos and predicts the next word!")
	logger.Print("", "version", Version)
	logger.Print("")
	logger.Print("use -h or --help to see available options")
	logger.Print("Github Repo", "gh", gh)
}

// showStartupInfo displays some basic info about the init process.
func showStartupInfo(m *model.Model) {
	pid := os.Getpid()
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	stats := m.Stats()
	println("============")
	println(" TypeAssist ")
	println("============")
	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", pid)
	log.Infof("vocabulary: %d words, %d contexts", stats["totalWords"], stats["totalContexts"])
	log.Info("status: ready")
	println("============")
	println("Press Ctrl+C to exit")

	log.SetLevel(currentLevel)
}
