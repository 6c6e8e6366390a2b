package cli

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/facile/handler"
	"github.com/dmitrymomot/facile/pkg/broadcast"
	"github.com/dmitrymomot/facile/pkg/clientip"
	"github.com/dmitrymomot/facile/pkg/config"
	"github.com/dmitrymomot/facile/pkg/environment"
	"github.com/dmitrymomot/facile/pkg/form"
	"github.com/dmitrymomot/facile/pkg/httpserver"
	"github.com/dmitrymomot/facile/pkg/logger"
	"github.com/dmitrymomot/facile/pkg/metrics"
	"github.com/dmitrymomot/facile/pkg/ratelimiter"
	"github.com/dmitrymomot/facile/pkg/requestid"
	"github.com/dmitrymomot/facile/pkg/validator"
)

// ServerConfig holds the settings of the serve command.
type ServerConfig struct {
	Env         string   `env:"FACILE_ENV" envDefault:"development"`
	Service     string   `env:"FACILE_SERVICE" envDefault:"facile"`
	FormsDir    string   `env:"FACILE_FORMS_DIR" envDefault:"forms"`
	LocalesDir  string   `env:"FACILE_LOCALES_DIR"`
	DefaultLang string   `env:"FACILE_DEFAULT_LANG" envDefault:"en"`
	LogLevel    string   `env:"FACILE_LOG_LEVEL"`
	IPHeaders   []string `env:"FACILE_IP_HEADERS" envSeparator:","`
	RateLimit   int      `env:"FACILE_RATE_LIMIT"` // submissions per minute and client; 0 disables

	HTTP httpserver.Config
}

var errNoForms = errors.New("no forms loaded")

type serveFlags struct {
	addr       string
	formsDir   string
	localesDir string
	lang       string
	envFiles   []string
}

func newServeCmd() *cobra.Command {
	var flags serveFlags

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve form validation over HTTP",
		Long: `Serve form validation over HTTP.

Settings are read from FACILE_* environment variables, optionally loaded
from .env files. Flags override the environment.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveServerConfig(cmd, flags)
			if err != nil {
				return &ExitError{Code: ExitFailure, Err: err}
			}
			if err := runServer(cmd.Context(), cfg); err != nil {
				return &ExitError{Code: ExitFailure, Err: err}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.addr, "addr", "", "listen address (FACILE_HTTP_ADDR)")
	cmd.Flags().StringVar(&flags.formsDir, "forms", "", "directory with form descriptions (FACILE_FORMS_DIR)")
	cmd.Flags().StringVar(&flags.localesDir, "locales", "", "directory with locale files (FACILE_LOCALES_DIR)")
	cmd.Flags().StringVar(&flags.lang, "lang", "", "default language (FACILE_DEFAULT_LANG)")
	cmd.Flags().StringSliceVar(&flags.envFiles, "env-file", nil, ".env files to load before reading the environment")
	return cmd
}

// resolveServerConfig loads the environment into a ServerConfig and
// applies the flags the user set.
func resolveServerConfig(cmd *cobra.Command, flags serveFlags) (ServerConfig, error) {
	if err := config.LoadEnv(flags.envFiles...); err != nil {
		return ServerConfig{}, err
	}
	var cfg ServerConfig
	if err := config.Load(&cfg); err != nil {
		return ServerConfig{}, err
	}

	fs := cmd.Flags()
	if fs.Changed("addr") {
		cfg.HTTP.Addr = flags.addr
	}
	if fs.Changed("forms") {
		cfg.FormsDir = flags.formsDir
	}
	if fs.Changed("locales") {
		cfg.LocalesDir = flags.localesDir
	}
	if fs.Changed("lang") {
		cfg.DefaultLang = flags.lang
	}
	return cfg, nil
}

func runServer(ctx context.Context, cfg ServerConfig) error {
	env := environment.Parse(cfg.Env)
	log := logger.New(
		logger.WithEnvironment(env, cfg.Service),
		logger.WithLevelName(cfg.LogLevel),
		logger.WithOutput(os.Stderr),
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			clientip.LoggerExtractor(),
			environment.LoggerExtractor(),
		),
	)

	catalog, err := loadCatalog(ctx, cfg.LocalesDir, cfg.DefaultLang)
	if err != nil {
		return err
	}
	store, err := form.LoadDir(ctx, os.DirFS(cfg.FormsDir), ".")
	if err != nil {
		return err
	}
	log.InfoContext(ctx, "forms loaded",
		slog.Int("count", store.Len()),
		slog.String("dir", cfg.FormsDir),
		slog.Any("languages", catalog.Languages()),
	)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	events := broadcast.NewMemoryBroadcaster[validator.EventPayload](64)
	defer events.Close()
	go logOutcomes(ctx, log, events)

	opts := []handler.Option{
		handler.WithLogger(log),
		handler.WithCatalog(catalog),
		handler.WithRegistry(newRegistry()),
		handler.WithMetrics(metrics.New(reg), reg),
		handler.WithBroadcaster(events),
		handler.WithIPHeaders(cfg.IPHeaders...),
		handler.WithHealthChecks(func(context.Context) error {
			if store.Len() == 0 {
				return errNoForms
			}
			return nil
		}),
	}
	if cfg.RateLimit > 0 {
		limits := ratelimiter.NewMemoryStore()
		defer limits.Close()
		bucket, err := ratelimiter.NewBucket(limits, ratelimiter.PerMinute(cfg.RateLimit))
		if err != nil {
			return err
		}
		opts = append(opts, handler.WithRateLimit(bucket))
	}

	forms, err := handler.New(store, opts...)
	if err != nil {
		return err
	}

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	return srv.Run(ctx, environment.Middleware(env)(forms.Router()))
}

// logOutcomes logs the end of every validation run until ctx is done.
func logOutcomes(ctx context.Context, log *slog.Logger, b broadcast.Broadcaster[validator.EventPayload]) {
	sub := b.Subscribe(ctx, string(validator.EventEnd))
	defer sub.Close()

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-sub.Receive(ctx):
			if !ok {
				return
			}
			log.DebugContext(ctx, "validation finished",
				logger.Form(msg.Data.Form),
				logger.RunID(msg.Data.RunID),
				logger.Valid(msg.Data.Valid),
			)
		}
	}
}
