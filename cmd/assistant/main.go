package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"assistant-bot/internal/app"
	"assistant-bot/internal/config"
	"assistant-bot/internal/logger"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

const serviceName = "assistant-bot"

func main() {
	cliApp := &cli.App{
		Name:  "assistant",
		Usage: "Interactive contact book",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				EnvVars: []string{"ASSISTANT_CONFIG"},
				Value:   "config.yml",
				Usage:   "configuration file to use",
			},
			&cli.StringFlag{
				Name:    "log-level",
				EnvVars: []string{"ASSISTANT_CLI_LOG_LEVEL"},
				Usage:   "override logging level (debug, info, warn, error)",
			},
		},
		Action: run,
	}

	if err := cliApp.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx *cli.Context) error {
	// Загружаем конфигурацию из файла
	cfg, err := config.Load(ctx.String("config"))
	if err != nil {
		return errors.Wrap(err, "could not load config")
	}

	if level := ctx.String("log-level"); level != "" {
		cfg.Logger.Level = level
	}

	log, err := logger.New(serviceName, logger.Options{
		Env:    cfg.Logger.Env,
		Level:  cfg.Logger.Level,
		Output: cfg.Logger.Output,
	})
	if err != nil {
		return errors.Wrap(err, "could not init logger")
	}

	application, err := app.NewApp(cfg, log)
	if err != nil {
		return errors.Wrap(err, "could not create app")
	}
	defer application.Shutdown()

	if err := application.Initialize(); err != nil {
		return errors.Wrap(err, "could not initialize app")
	}

	// Ctrl+C и SIGTERM прерывают сессию, даже если она ждет ввода
	sessionCtx, stop := signal.NotifyContext(ctx.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := application.Run(sessionCtx, os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, context.Canceled) {
			log.Infow("session interrupted")
			return nil
		}
		return errors.WithStack(err)
	}

	return nil
}
