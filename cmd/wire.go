package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	flagstore "github.com/termdeck/termdeck/internal/adapters/flags/toml"
	"github.com/termdeck/termdeck/internal/adapters/notify"
	"github.com/termdeck/termdeck/internal/adapters/records"
	"github.com/termdeck/termdeck/internal/adapters/render/console"
	"github.com/termdeck/termdeck/internal/adapters/store/memory"
	"github.com/termdeck/termdeck/internal/adapters/theme"
	"github.com/termdeck/termdeck/internal/adapters/watch"
	"github.com/termdeck/termdeck/internal/application"
	"github.com/termdeck/termdeck/internal/ports"
)

const configDirName = ".termdeck"

type app struct {
	cfg        *viper.Viper
	logger     *slog.Logger
	store      *memory.Store
	views      *memory.ViewStore
	flags      *flagstore.Store
	screen     *console.Screen
	reconciler *application.Reconciler
	changes    *application.ChangeNotifier
	session    *application.Session
	bootstrap  *application.Bootstrap
	themes     ports.ThemeLoader
	mail       *application.MailService
	journal    *application.JournalService
	roster     *application.RosterService
	watcher    *watch.Watcher
	notifier   ports.Notifier
	userID     string
	themeName  string
}

func wireApp() (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	logger := newLogger(cfg)

	flags, err := flagstore.NewStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("wire flag store: %w", err)
	}

	store := memory.NewStore()
	views := memory.NewViewStore(nil)

	recCfg := application.ReconcilerConfig{
		FolderName: cfg.GetString("records.folder_name"),
		FolderType: cfg.GetString("records.folder_type"),
		Limit:      cfg.GetInt("records.limit"),
	}
	userID := cfg.GetString("user.id")

	if cfg.GetBool("demo.enabled") {
		err := memory.SeedDemo(context.Background(), store, views, flags,
			cfg.GetString("records.folder_name"), cfg.GetString("records.folder_type"), userID)
		if err != nil {
			return nil, fmt.Errorf("seed demo world: %w", err)
		}
	}

	screen := console.NewScreen()
	detail := records.NewManager(flags, os.Stdout)
	reconciler := application.NewReconciler(store, flags, screen, detail, recCfg, logger)

	sched := ports.SystemScheduler{}
	changes := application.NewChangeNotifier(reconciler, store, sched, recCfg, cfg.GetDuration("refresh.delay"), logger)
	store.Subscribe(changes)

	session := application.NewSession(flags, sched, reconciler, userID, cfg.GetDuration("refresh.interval"), logger)
	notifier := notify.NewNotifier(os.Stderr)
	themes := theme.NewLoader(cfg.GetString("theme.dir"))
	bootstrap := application.NewBootstrap(themes, screen, store, reconciler, session, notifier, recCfg, cfg.GetString("theme.name"), logger)

	watcher := watch.NewWatcher(
		[]string{flags.Path()},
		cfg.GetDuration("refresh.delay"),
		func(ctx context.Context) { reconciler.ReconcileRecentEntries(ctx) },
		logger,
	)

	return &app{
		cfg:        cfg,
		logger:     logger,
		store:      store,
		views:      views,
		flags:      flags,
		screen:     screen,
		reconciler: reconciler,
		changes:    changes,
		session:    session,
		bootstrap:  bootstrap,
		themes:     themes,
		mail:       application.NewMailService(views, flags),
		journal:    application.NewJournalService(views),
		roster:     application.NewRosterService(views),
		watcher:    watcher,
		notifier:   notifier,
		userID:     userID,
		themeName:  cfg.GetString("theme.name"),
	}, nil
}

func loadConfig() (*viper.Viper, error) {
	cfg := viper.New()
	cfg.SetConfigName("config")
	cfg.SetConfigType("toml")

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}
	cfg.AddConfigPath(filepath.Join(homeDir, configDirName))

	registerSettings(cfg, homeDir)

	if err := cfg.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	return cfg, nil
}

func registerSettings(cfg *viper.Viper, homeDir string) {
	cfg.SetDefault("records.folder_name", "PC Records")
	cfg.SetDefault("records.folder_type", "Actor")
	cfg.SetDefault("records.limit", 3)
	cfg.SetDefault("refresh.interval", "500ms")
	cfg.SetDefault("refresh.delay", "500ms")
	cfg.SetDefault("theme.name", "green-crt")
	cfg.SetDefault("theme.dir", "")
	cfg.SetDefault("user.id", "player")
	cfg.SetDefault("demo.enabled", true)
	cfg.SetDefault("log.level", "warn")
	cfg.SetDefault("flags.path", filepath.Join(homeDir, configDirName, "flags.toml"))
}

func newLogger(cfg *viper.Viper) *slog.Logger {
	level := slog.LevelWarn
	switch cfg.GetString("log.level") {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
