package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/kpauljoseph/pagecheck/internal/checker"
	"github.com/kpauljoseph/pagecheck/internal/config"
	"github.com/kpauljoseph/pagecheck/internal/pdf"
	"github.com/kpauljoseph/pagecheck/internal/report"
	"github.com/kpauljoseph/pagecheck/internal/splitplan"
	"github.com/kpauljoseph/pagecheck/pkg/logger"
	"github.com/kpauljoseph/pagecheck/pkg/version"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "path to config file (optional)")
	backend := flag.String("backend", "", "PDF backend: pdfcpu, fitz or ledongthuc (overrides config)")
	noColor := flag.Bool("no-color", false, "disable colored output")
	verbose := flag.Bool("verbose", false, "enable verbose logging")
	debug := flag.Bool("debug", false, "enable debug mode with trace logging")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Print(version.GetDetailedVersionInfo())
		return
	}

	log := logger.New(logger.WithPrefix("[pagecheck] "))

	explicitConfig := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			explicitConfig = true
		}
	})

	cfg, err := loadConfig(*configPath, explicitConfig)
	if err != nil {
		log.Fatal("Error loading config: %v", err)
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal("Error in config: %v", err)
	}
	log.SetLevel(level)
	log.SetVerbose(*verbose || level >= logger.LevelDebug)
	if *debug {
		log.SetVerbose(true)
		log.SetLevel(logger.LevelTrace)
	}
	log.Debug("Starting %s", version.GetVersionInfo())

	if *backend != "" {
		cfg.Backend = *backend
	}
	if *noColor {
		cfg.NoColor = true
	}

	counter, err := pdf.NewCounter(cfg.Backend)
	if err != nil {
		log.Fatal("Error initializing backend: %v", err)
	}
	log.Debug("Using %s backend", counter.Name())

	useColor := !cfg.NoColor && term.IsTerminal(int(os.Stdout.Fd()))
	printer := report.New(os.Stdout, useColor)

	chk := checker.New(counter, printer, cfg.FixturePath, cfg.OutputGlob, log)

	results, err := chk.Run(context.Background())
	if err != nil {
		log.Fatal("Error checking files: %v", err)
	}

	if cfg.Split.Enabled() {
		var intro *splitplan.IntroRange
		if cfg.Split.HasIntro() {
			intro = &splitplan.IntroRange{Start: cfg.Split.IntroStart, End: cfg.Split.IntroEnd}
		}
		if _, err := chk.VerifySplit(results, cfg.Split.Parts, intro, cfg.Split.OutputBasename); err != nil {
			log.Info("Skipping split verification: %v", err)
		}
	}
}

// loadConfig falls back to defaults only when -config was left unset.
func loadConfig(path string, explicit bool) (*config.Config, error) {
	if explicit {
		return config.Load(path)
	}
	return config.LoadOrDefault(path)
}
