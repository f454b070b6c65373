package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/LN405Rx/lectern/internal/app"
	"github.com/LN405Rx/lectern/internal/config"
	"github.com/LN405Rx/lectern/internal/errmsg"
	"github.com/LN405Rx/lectern/internal/extract"
	"github.com/LN405Rx/lectern/internal/logging"
	"github.com/LN405Rx/lectern/internal/mpris"
	"github.com/LN405Rx/lectern/internal/notify"
	"github.com/LN405Rx/lectern/internal/reader"
	"github.com/LN405Rx/lectern/internal/speech"
	"github.com/LN405Rx/lectern/internal/stderr"
)

func main() {
	configPath := flag.String("config", "", "path to a config file (TOML)")
	flag.Parse()

	if err := run(*configPath, flag.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "lectern: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, docPath string) error {
	// A .env file in the working directory can set LECTERN_* overrides.
	_ = godotenv.Load()

	// Capture stderr before the audio backend initializes so ALSA noise
	// does not corrupt the TUI.
	_ = stderr.Start()
	defer stderr.Stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("%s", errmsg.Format(errmsg.OpConfigLoad, err))
	}

	logger, err := logging.New(cfg.LogFile, cfg.LogLevel, cfg.Location())
	if err != nil {
		return fmt.Errorf("%s", errmsg.Format(errmsg.OpInitialize, err))
	}
	defer func() { _ = logger.Sync() }()

	synth, err := speech.NewSynthesizer(cfg.Engine)
	if err != nil {
		return fmt.Errorf("%s", errmsg.Format(errmsg.OpInitialize, err))
	}

	engine, err := speech.New(synth, cfg.OutputDir, logger)
	if err != nil {
		return fmt.Errorf("%s", errmsg.Format(errmsg.OpInitialize, err))
	}
	engine.SetRate(cfg.Rate)
	engine.SetVolume(cfg.Volume)

	cache := speech.NewCache(cfg.OutputDir, cfg.MemoryThresholdMB,
		cfg.CleanupInterval, engine.CurrentUtterance, logger)
	cache.Start()
	defer cache.Stop()

	extractor := extract.New(logger)
	extractor.FallbackPdftotext = cfg.PdftotextFallback

	svc := reader.New(engine, extractor)
	defer func() { _ = svc.Close() }()

	// The configured voice goes through the service so an unknown name is
	// rejected instead of silently producing espeak errors per utterance.
	if cfg.Voice != "" {
		if voiceErr := svc.SetVoice(cfg.Voice); voiceErr != nil {
			logger.Warn("configured voice unavailable, using default",
				zap.String("voice", cfg.Voice), zap.Error(voiceErr))
		}
	}

	if adapter, mprisErr := mpris.New(svc); mprisErr == nil {
		defer func() { _ = adapter.Close() }()
	} else {
		logger.Warn("mpris unavailable", zap.Error(mprisErr))
	}

	notifier, err := notify.New()
	if err != nil {
		logger.Warn("desktop notifications unavailable", zap.Error(err))
		notifier = nil
	}

	m := app.New(cfg, svc, logger, notifier)

	p := tea.NewProgram(m, tea.WithAltScreen())

	// A document given on the command line is loaded once the UI is up.
	if docPath != "" {
		go func() {
			p.Send(app.LoadDocumentCmd(svc, docPath)())
		}()
	}

	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
