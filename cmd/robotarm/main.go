// Command robotarm renders a lit two-link robot arm rotating above a floor slab.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/orrery/internal/app"
	"github.com/Faultbox/orrery/internal/config"
	"github.com/Faultbox/orrery/internal/demo"
	"github.com/Faultbox/orrery/internal/logger"
)

func main() {
	config.ParseFlags()

	preset := demo.RobotArm()
	cfg, err := config.Load(preset.Defaults())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if config.SaveRequested() {
		path, err := cfg.Save()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("config written to", path)
		return
	}

	opts := logger.Options{Level: cfg.Logging.Level, Console: true}
	if cfg.Logging.File != "" {
		opts.File = logger.FileConfig{
			Path:       cfg.Logging.File,
			MaxSizeMB:  cfg.Logging.MaxSizeMB,
			MaxBackups: cfg.Logging.MaxBackups,
			MaxAgeDays: cfg.Logging.MaxAgeDays,
			Compress:   cfg.Logging.Compress,
			Format:     cfg.Logging.Format,
		}
	}
	if err := logger.InitWithOptions(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== " + cfg.Window.Title + " ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	a, err := app.New(cfg, preset)
	if err != nil {
		logger.Error("failed to start demo", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	err = a.Run()
	a.Close()
	if err != nil {
		logger.Error("demo error", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	logger.Info("demo closed normally")
}
