// Licensed to Andrew Kroh under one or more agreements.
// Andrew Kroh licenses this file to you under the Apache 2.0 License.
// See the LICENSE file in the project root for more information.

// Package main implements gh-rest, a command-line client for a subset of the
// GitHub REST API. Each command performs one API call and prints its outcome
// as JSON.
//
// Exit status is 0 when the call succeeded, 1 when GitHub answered with a
// failure, and 2 for usage errors or when no answer was received.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/andrewkroh/github-rest/github"
	"github.com/andrewkroh/github-rest/internal/config"
	"github.com/andrewkroh/github-rest/internal/otelsetup"
)

// version is set at build time via -ldflags "-X main.version=v1.0.0".
var version = "dev"

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

// Config holds the parsed command line.
type Config struct {
	// Settings are the file settings with flag overrides applied.
	Settings *config.Config

	// Command is the name of the command to run.
	Command string

	// Args are the command's positional arguments.
	Args []string

	run runFunc
}

// parseFlags parses global flags, the command name, and the command's own
// flags and arguments. It uses custom flag.FlagSets so that tests can call
// it without affecting the global flag.CommandLine state.
func parseFlags(args []string, output io.Writer) (*Config, error) {
	fs := flag.NewFlagSet("gh-rest", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() { usage(fs) }

	configPath := fs.String("config", "", "Path to a YAML configuration file")
	baseURL := fs.String("base-url", "", "GitHub API base URL (overrides config and "+config.BaseURLEnv+")")
	tokenEnv := fs.String("token-env", "", "Environment variable holding the API token (default "+config.DefaultTokenEnv+")")
	userAgent := fs.String("user-agent", "", "User-Agent header value")
	logLevel := fs.String("log-level", "", "Log level: debug, info, warn, error")
	timeout := fs.Duration("timeout", 0, "Request timeout (default 30s)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	settings := config.Default()
	if *configPath != "" {
		var err error
		if settings, err = config.Load(*configPath); err != nil {
			return nil, err
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "base-url":
			settings.BaseURL = *baseURL
		case "token-env":
			settings.TokenEnv = *tokenEnv
		case "user-agent":
			settings.UserAgent = *userAgent
		case "log-level":
			settings.LogLevel = *logLevel
		case "timeout":
			settings.Timeout = *timeout
		}
	})

	cfg := &Config{Settings: settings}

	rest := fs.Args()
	if len(rest) == 0 {
		err := errors.New("no command given")
		fmt.Fprintf(output, "Error: %v\n\n", err)
		fs.Usage()
		return nil, err
	}
	cfg.Command = rest[0]

	cmd, ok := lookupCommand(cfg.Command)
	if !ok {
		err := fmt.Errorf("unknown command %q", cfg.Command)
		fmt.Fprintf(output, "Error: %v\n\n", err)
		fs.Usage()
		return nil, err
	}

	sub := flag.NewFlagSet("gh-rest "+cmd.name, flag.ContinueOnError)
	sub.SetOutput(output)
	cfg.run = cmd.setup(sub)
	if err := sub.Parse(rest[1:]); err != nil {
		return nil, err
	}
	cfg.Args = sub.Args()

	if err := cfg.validate(cmd); err != nil {
		fmt.Fprintf(output, "Error: %v\n\nUsage: gh-rest %s\n", err, cmd.usage())
		sub.PrintDefaults()
		return nil, err
	}
	return cfg, nil
}

// validate checks the settings and the number of positional arguments.
func (c *Config) validate(cmd command) error {
	if err := c.Settings.Validate(); err != nil {
		return err
	}
	if _, err := otelsetup.ParseLevel(c.Settings.LogLevel); err != nil {
		return err
	}
	if len(c.Args) != len(cmd.args) {
		return fmt.Errorf("command %s takes %d argument(s), got %d", cmd.name, len(cmd.args), len(c.Args))
	}
	for i, a := range c.Args {
		if a == "" {
			return fmt.Errorf("argument <%s> must not be empty", cmd.args[i])
		}
	}
	return nil
}

func usage(fs *flag.FlagSet) {
	out := fs.Output()
	fmt.Fprintln(out, "Usage: gh-rest [flags] <command> [command flags] [args]")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Commands:")
	for _, cmd := range commands {
		fmt.Fprintf(out, "  %-14s %s\n", cmd.name, cmd.summary)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Flags:")
	fs.PrintDefaults()
}

// newClient builds the API client described by settings.
func newClient(settings *config.Config, logger *slog.Logger) *github.Client {
	opts := []github.Option{
		github.WithBaseURL(settings.BaseURL),
		github.WithLogger(logger),
	}
	if settings.UserAgent != "" {
		opts = append(opts, github.WithUserAgent(settings.UserAgent))
	}
	if token := settings.Token(); token != "" {
		opts = append(opts, github.WithToken(token))
	}
	return github.NewClient(opts...)
}

// run executes the command line and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	level, _ := otelsetup.ParseLevel(cfg.Settings.LogLevel)
	logger := otelsetup.NewLogger(stderr, level)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	otelShutdown, err := otelsetup.Setup(ctx, "gh-rest", version)
	if err != nil {
		slog.Error("failed to set up OpenTelemetry", slog.String("error", err.Error()))
		return exitUsage
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := otelShutdown(shutdownCtx); err != nil {
			slog.Error("OpenTelemetry shutdown error", slog.String("error", err.Error()))
		}
	}()

	client := newClient(cfg.Settings, logger)

	if cfg.Settings.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Settings.Timeout)
		defer cancel()
	}

	res, err := cfg.run(ctx, client, cfg.Args)
	if err != nil {
		slog.Error("request failed",
			slog.String("command", cfg.Command),
			slog.String("error", err.Error()),
		)
		return exitUsage
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res.outcome); err != nil {
		slog.Error("failed to write output", slog.String("error", err.Error()))
		return exitUsage
	}

	if !res.ok {
		return exitFailure
	}
	return exitOK
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
