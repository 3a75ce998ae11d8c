// Command formcheck validates registration form input from the command line.
//
// Usage:
//
//	formcheck rules
//	formcheck check --field email --value a@b.co
//	formcheck check --field confirmPassword --value Secret1! --password Secret1!
//	formcheck submit --file record.yaml
//	formcheck fill
//	formcheck theme [toggle]
//	formcheck render --file record.yaml --submit > page.html
//
// Configuration is read from the environment (and an optional .env file):
// FORMCHECK_OUTPUT (text|json), FORMCHECK_LOG_LEVEL, FORMCHECK_LOG_FORMAT,
// FORMCHECK_PREFS and APP_ENV.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/dmitrymomot/formkit/pkg/config"
	"github.com/dmitrymomot/formkit/pkg/logger"
)

// Exit codes.
const (
	exitOK       = 0
	exitRejected = 1
	exitUsage    = 2
)

// Config is the command configuration.
type Config struct {
	Env       string `env:"APP_ENV" envDefault:"development"`
	Output    string `env:"FORMCHECK_OUTPUT" envDefault:"text"`
	LogLevel  string `env:"FORMCHECK_LOG_LEVEL" envDefault:"warn"`
	LogFormat string `env:"FORMCHECK_LOG_FORMAT"`
	PrefsPath string `env:"FORMCHECK_PREFS" envDefault:".formcheck.yaml"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		fmt.Fprintf(stderr, "formcheck: %v\n", err)
		return exitUsage
	}

	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, "formcheck"),
		logger.WithLevelName(cfg.LogLevel),
		logger.WithOutput(stderr),
	}
	switch logger.Format(cfg.LogFormat) {
	case logger.FormatJSON, logger.FormatText:
		opts = append(opts, logger.WithFormat(logger.Format(cfg.LogFormat)))
	}

	log := logger.New(opts...)
	logger.SetAsDefault(log)

	a := &app{cfg: cfg, log: log}
	return a.execute(ctx, args, stdin, stdout, stderr)
}
