package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/drop/internal/audio"
	"github.com/vovakirdan/drop/internal/core"
	"github.com/vovakirdan/drop/internal/games/drop"
	"github.com/vovakirdan/drop/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open an 800x480 window and start a session.

Controls:
  Mouse/Touch     - Move the bucket under the pointer
  Left/A          - Move left
  Right/D         - Move right
  P               - Pause
  R               - Restart
  Esc/Q           - Quit

Sprites and sounds come from the assets section of the config;
built-in ones are used for any path left empty.`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func runWindow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}

	sprites, err := window.LoadSprites(cfg.Assets, cfg)
	if err != nil {
		return err
	}

	var sink audio.Sink = audio.Nop{}
	if !flagMute && cfg.Audio.Enabled {
		a, err := window.NewAudio(cfg.Audio, cfg.Assets)
		if err != nil {
			return err
		}
		sink = a
	}
	defer func() {
		if err := sink.Close(); err != nil {
			logger.Warn("audio close failed", "err", err)
		}
	}()

	return window.Run(drop.New(cfg), window.Options{
		Config: cfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  int(cfg.World.Width),
			ScreenH:  int(cfg.World.Height),
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Sprites: sprites,
		Sink:    sink,
		Logger:  logger,
	})
}
