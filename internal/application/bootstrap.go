package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/termdeck/termdeck/internal/domain"
	"github.com/termdeck/termdeck/internal/ports"
)

// Bootstrap runs the sequential startup chain: theme, screen skin, target
// folder, initial reconciliation, session activation. Each step depends on
// the previous one; a theme load failure is surfaced to the user and halts
// everything after it.
type Bootstrap struct {
	themes     ports.ThemeLoader
	screen     ports.Screen
	data       ports.DataStore
	reconciler *Reconciler
	session    *Session
	notifier   ports.Notifier
	cfg        ReconcilerConfig
	themeName  string
	logger     *slog.Logger
}

func NewBootstrap(themes ports.ThemeLoader, screen ports.Screen, data ports.DataStore, reconciler *Reconciler, session *Session, notifier ports.Notifier, cfg ReconcilerConfig, themeName string, logger *slog.Logger) *Bootstrap {
	cfg.applyDefaults()
	if logger == nil {
		logger = slog.Default()
	}

	return &Bootstrap{
		themes:     themes,
		screen:     screen,
		data:       data,
		reconciler: reconciler,
		session:    session,
		notifier:   notifier,
		cfg:        cfg,
		themeName:  themeName,
		logger:     logger,
	}
}

func (b *Bootstrap) Run(ctx context.Context) error {
	theme, err := b.themes.Load(b.themeName)
	if err != nil {
		b.notifier.Error(fmt.Sprintf("termdeck: theme %q failed to load, interface not started", b.themeName))
		b.logger.Error("load theme", "theme", b.themeName, "error", err)
		return fmt.Errorf("load theme %q: %w", b.themeName, err)
	}
	b.screen.ApplyTheme(theme)
	b.reconciler.ApplyTheme(theme)

	if err := b.ensureTargetFolder(ctx); err != nil {
		// The reconciler renders the empty-state placeholder until the
		// folder exists, so this is not fatal.
		b.notifier.Warn(fmt.Sprintf("termdeck: could not prepare folder %q", b.cfg.FolderName))
		b.logger.Warn("ensure target folder", "folder", b.cfg.FolderName, "error", err)
	}

	b.reconciler.ReconcileRecentEntries(ctx)

	if err := b.session.Activate(ctx); err != nil {
		return fmt.Errorf("activate interface session: %w", err)
	}

	return nil
}

func (b *Bootstrap) ensureTargetFolder(ctx context.Context) error {
	_, err := b.data.FolderByName(ctx, b.cfg.FolderName, b.cfg.FolderType)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrFolderNotFound) {
		return fmt.Errorf("resolve folder: %w", err)
	}

	if _, err := b.data.CreateFolder(ctx, b.cfg.FolderName, b.cfg.FolderType); err != nil {
		return fmt.Errorf("create folder: %w", err)
	}
	b.logger.Info("created target folder", "folder", b.cfg.FolderName, "type", b.cfg.FolderType)
	return nil
}
