package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"siteboard/internal/config"
	"siteboard/internal/scope"
	"siteboard/internal/telemetry"
	"siteboard/internal/ui"
	"siteboard/internal/viewpref"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// flags are the persistent flags shared by every command.
type flags struct {
	configPath string
	backend    string
	verbose    bool
}

// env is everything a command needs, built from config and flags.
type env struct {
	cfg    *config.Config
	logger *zap.Logger
	store  *viewpref.Store
	scopes *scope.Manager

	closers []func() error
}

func (e *env) close() {
	for i := len(e.closers) - 1; i >= 0; i-- {
		if err := e.closers[i](); err != nil {
			e.logger.Warn("shutdown", zap.Error(err))
		}
	}
	_ = e.logger.Sync() // EINVAL on stderr TTYs
}

// NewRootCmd creates the root command. Without a subcommand it runs the TUI.
func NewRootCmd() *cobra.Command {
	f := &flags{}
	root := &cobra.Command{
		Use:          "siteboard",
		Short:        "Browse project boards as a list, kanban, or gantt chart",
		Long:         "siteboard shows project tasks in a terminal UI and remembers the\nview mode you pick, globally and per project.",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context(), f)
		},
	}

	root.PersistentFlags().StringVar(&f.configPath, "config", "", "config file (default is $SITEBOARD_HOME/config.yaml or ~/.siteboard/config.yaml)")
	root.PersistentFlags().StringVar(&f.backend, "backend", "", "preference storage backend: memory, file, or sqlite")
	root.PersistentFlags().BoolVarP(&f.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newGetCmd(f))
	root.AddCommand(newSetCmd(f))
	root.AddCommand(newModesCmd())
	root.AddCommand(newProjectsCmd(f))
	return root
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig(f *flags) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if f.configPath != "" {
		cfg, err = config.LoadFile(f.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}
	if f.backend != "" {
		cfg.SetBackend(f.backend)
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// newLogger builds a production zap logger writing to output.
func newLogger(cfg *config.Config, verbose bool, output string) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	level, err := cfg.LogLevel()
	if err != nil {
		return nil, err
	}
	if verbose {
		level = zap.DebugLevel
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.OutputPaths = []string{output}
	zcfg.ErrorOutputPaths = []string{output}
	return zcfg.Build()
}

// setup loads config and opens storage, telemetry, and logging. logOutput is
// a zap output path ("stderr" or a file).
func setup(ctx context.Context, f *flags, logOutput func(*config.Config) (string, error)) (*env, error) {
	cfg, err := loadConfig(f)
	if err != nil {
		return nil, err
	}
	output, err := logOutput(cfg)
	if err != nil {
		return nil, err
	}
	logger, err := newLogger(cfg, f.verbose, output)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	e := &env{cfg: cfg, logger: logger, scopes: scope.NewManager(cfg.ProjectsDir)}

	storage, closer, err := config.OpenStorage(cfg)
	if err != nil {
		e.close()
		return nil, fmt.Errorf("open %s storage: %w", cfg.Storage.Backend, err)
	}
	e.closers = append(e.closers, closer.Close)

	provider, err := telemetry.Setup(ctx, cfg.Telemetry.ServiceName)
	if err != nil {
		// Tracing is optional; keep going without it.
		logger.Warn("telemetry setup", zap.Error(err))
	}
	if provider != nil {
		e.closers = append(e.closers, func() error { return provider.Shutdown(context.Background()) })
	}

	e.store = viewpref.New(storage,
		viewpref.WithLogger(logger.Named("viewpref")),
		viewpref.WithTracer(provider.Tracer()),
	)
	logger.Debug("configured",
		zap.String("backend", cfg.Storage.Backend),
		zap.String("storage_path", cfg.Storage.Path),
		zap.String("projects_dir", cfg.ProjectsDir))
	return e, nil
}

func stderrLog(*config.Config) (string, error) {
	return "stderr", nil
}

// fileLog keeps logs off the alt screen.
func fileLog(cfg *config.Config) (string, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.Log.File), 0755); err != nil {
		return "", fmt.Errorf("create log directory: %w", err)
	}
	return cfg.Log.File, nil
}

func runTUI(ctx context.Context, f *flags) error {
	e, err := setup(ctx, f, fileLog)
	if err != nil {
		return err
	}
	defer e.close()

	model := ui.NewAppModel(e.store, e.scopes, e.logger.Named("ui")).AsTeaModel()
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		e.logger.Error("tui exited", zap.Error(err))
		return err
	}
	return nil
}

// withEnv runs fn with a CLI environment that logs to stderr.
func withEnv(cmd *cobra.Command, f *flags, fn func(e *env, out io.Writer) error) error {
	e, err := setup(cmd.Context(), f, stderrLog)
	if err != nil {
		return err
	}
	defer e.close()
	return fn(e, cmd.OutOrStdout())
}
