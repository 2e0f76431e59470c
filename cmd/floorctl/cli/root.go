// Package cli implements the floorctl commands.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/odyssey-erp/floorconsole/internal/apiclient"
	"github.com/odyssey-erp/floorconsole/internal/app"
	"github.com/odyssey-erp/floorconsole/internal/console"
	"github.com/odyssey-erp/floorconsole/internal/platform/cache"
	"github.com/odyssey-erp/floorconsole/internal/session"
)

// Options configures one floorctl invocation.
type Options struct {
	Stdout io.Writer
	Stderr io.Writer
	Stdin  io.Reader
	// EnvFile defaults to app.EnvFile().
	EnvFile string
	// Config skips app.LoadConfig when set.
	Config     *app.Config
	HTTPClient *http.Client
	// Persister skips the Redis lookup when set.
	Persister session.Persister
}

// exitError carries a specific exit code out of a cobra RunE.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }

func (e *exitError) Unwrap() error { return e.err }

// runner holds what the commands share; config and console are built lazily
// so that env works without a valid configuration.
type runner struct {
	opts    Options
	cfg     *app.Config
	logger  *slog.Logger
	console *console.Context
	closers []func() error
}

// Execute runs floorctl with args and returns the process exit code.
func Execute(ctx context.Context, args []string, opts Options) int {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	if opts.EnvFile == "" {
		opts.EnvFile = app.EnvFile()
	}

	r := &runner{opts: opts}
	defer r.close()

	root := r.rootCommand()
	root.SetArgs(args)
	root.SetOut(opts.Stdout)
	root.SetErr(opts.Stderr)
	root.SetIn(opts.Stdin)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return 0
	}
	fmt.Fprintf(opts.Stderr, "floorctl: %v\n", err)
	var exit *exitError
	if errors.As(err, &exit) {
		return exit.code
	}
	return 1
}

func (r *runner) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "floorctl",
		Short:         "Operator tool for the production floor console",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		r.envCommand(),
		r.statusCommand(),
		r.routeCommand(),
	)
	root.AddCommand(r.resourceCommands()...)
	root.AddCommand(r.sessionCommands()...)
	return root
}

func (r *runner) config() (*app.Config, error) {
	if r.cfg != nil {
		return r.cfg, nil
	}
	if r.opts.Config != nil {
		r.cfg = r.opts.Config
	} else {
		cfg, err := app.LoadConfig()
		if err != nil {
			return nil, err
		}
		r.cfg = cfg
	}
	r.logger = app.NewLoggerTo(r.cfg, r.opts.Stderr)
	return r.cfg, nil
}

// consoleContext builds the console context on first use: the API client for
// the configured backend and the session registry, persisted in Redis when
// REDIS_ADDR is set.
func (r *runner) consoleContext(ctx context.Context) (*console.Context, error) {
	if r.console != nil {
		return r.console, nil
	}
	cfg, err := r.config()
	if err != nil {
		return nil, err
	}

	clientOpts := []apiclient.Option{}
	if r.opts.HTTPClient != nil {
		clientOpts = append(clientOpts, apiclient.WithHTTPClient(r.opts.HTTPClient))
	}
	api, err := apiclient.New(cfg.APIBaseURL(), clientOpts...)
	if err != nil {
		return nil, err
	}

	persister := r.opts.Persister
	if persister == nil && cfg.RedisAddr != "" {
		client, err := cache.New(ctx, cache.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return nil, err
		}
		r.closers = append(r.closers, client.Close)
		persister = session.NewRedisPersister(client, cfg.SessionNamespace, cfg.SessionTTL)
	}

	c, err := console.New(ctx, console.Options{API: api, Persister: persister, Logger: r.logger})
	if err != nil {
		return nil, err
	}
	r.console = c
	return c, nil
}

func (r *runner) close() {
	for _, fn := range r.closers {
		if err := fn(); err != nil && r.logger != nil {
			r.logger.Warn("close", slog.Any("error", err))
		}
	}
}
