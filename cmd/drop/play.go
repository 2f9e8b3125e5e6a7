package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/drop/internal/audio"
	"github.com/vovakirdan/drop/internal/config"
	"github.com/vovakirdan/drop/internal/core"
	"github.com/vovakirdan/drop/internal/games/drop"
	"github.com/vovakirdan/drop/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a session in the terminal. The 800x480 field is scaled to fit.

Controls:
  Mouse drag      - Move the bucket under the pointer
  Left/A/H        - Move left
  Right/D/L       - Move right
  P/Esc           - Pause
  R               - Restart
  Q/Ctrl+C        - Quit

Logs go to --log-file so they do not disturb the screen.

Examples:
  drop play
  drop play --fps 30 --seed 7
  drop play --log-level debug --log-file ./drop.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logFile, err := openLogFile()
	if err != nil {
		return err
	}
	defer logFile.Close()

	logger, err := newLogger(logFile)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	sink, err := newSpeakerSink(cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := sink.Close(); err != nil {
			logger.Warn("audio close failed", "err", err)
		}
	}()

	return tui.Run(drop.New(cfg), tui.Options{
		Config: cfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Sink:   sink,
		Logger: logger,
	})
}

// newSpeakerSink returns the beep-backed sink, or a silent one when muted.
func newSpeakerSink(cfg config.DropConfig, logger *log.Logger) (audio.Sink, error) {
	if flagMute || !cfg.Audio.Enabled {
		logger.Info("audio disabled")
		return audio.Nop{}, nil
	}
	return audio.NewSpeaker(cfg.Audio, cfg.Assets, logger)
}
