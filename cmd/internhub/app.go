package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"internhub/internal/client"
	"internhub/internal/config"
	"internhub/internal/logger"
	"internhub/internal/session"
	"internhub/internal/view"
)

// app carries what every command needs once the config is read.
type app struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	configPath string
	verbose    bool
	plain      bool
	yes        bool

	cfg      *config.Config
	log      *slog.Logger
	styles   view.Styles
	store    session.Store
	accessor *session.Accessor
	api      *client.Client
	redis    *redis.Client
}

func newApp(in io.Reader, out, errOut io.Writer) *app {
	return &app{in: in, out: out, errOut: errOut, styles: view.DefaultStyles()}
}

func (a *app) setup(ctx context.Context) error {
	if a.configPath == "" {
		a.configPath = os.Getenv("CONFIG_PATH")
	}
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	a.cfg = cfg

	level := slog.LevelWarn
	if a.verbose {
		level = slog.LevelDebug
	}
	a.log = logger.New(a.errOut, cfg.Env, level)
	slog.SetDefault(a.log)

	if a.plain {
		a.styles = view.PlainStyles()
	}

	switch cfg.Session.Driver {
	case "redis":
		rdb, err := session.OpenRedis(ctx, cfg.Session.RedisURL)
		if err != nil {
			return fmt.Errorf("open session store: %w", err)
		}
		a.redis = rdb
		a.store = session.NewRedisStore(rdb, cfg.Session.Prefix, cfg.Session.TTL)
	default:
		a.store = session.NewFileStore(cfg.Session.Path)
	}
	a.accessor = session.NewAccessor(a.store)
	a.api = client.New(cfg.API.BaseURL, a.accessor,
		client.WithTimeout(cfg.API.Timeout),
		client.WithLogger(a.log),
	)
	a.log.Debug("session store ready", "driver", cfg.Session.Driver, "api", cfg.API.BaseURL)
	return nil
}

func (a *app) close() error {
	if a.redis != nil {
		return a.redis.Close()
	}
	return nil
}

func (a *app) dialog() *view.Dialog {
	d := view.NewDialog(a.in, a.out, a.styles)
	if a.yes {
		d.AssumeYes()
	}
	return d
}

func (a *app) fail(err error) {
	fmt.Fprint(a.errOut, view.Alert(a.styles, err))
}

func (a *app) info(format string, args ...any) {
	fmt.Fprint(a.out, view.Info(a.styles, format, args...))
}

// navigator points the user at the saved record once a form goes through.
type navigator struct {
	a *app
}

func (n navigator) Navigate(route string) {
	n.a.info("saved, view it with: internhub %s", route)
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "internhub",
		Short:         "Browse and manage internship programs",
		Long:          `internhub talks to the internship portal backend: programs, mentors, applications, assessments and certificates.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.Context())
		},
	}
	root.SetIn(a.in)
	root.SetOut(a.out)
	root.SetErr(a.errOut)

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default $CONFIG_PATH or ./config/local.yaml)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "log requests to stderr")
	flags.BoolVar(&a.plain, "plain", false, "disable colors")
	flags.BoolVarP(&a.yes, "yes", "y", false, "answer yes to confirmations")

	root.AddCommand(
		newLoginCmd(a),
		newLogoutCmd(a),
		newWhoamiCmd(a),
		newDashboardCmd(a),
		newProgramsCmd(a),
		newMentorsCmd(a),
		newApplicationsCmd(a),
		newAssessmentsCmd(a),
		newCertificatesCmd(a),
	)
	return root
}
