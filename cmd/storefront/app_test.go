package main

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/hardware-storefront/config"
	"github.com/yourusername/hardware-storefront/internal/domain/entity"
)

func memoryConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		StorageDriver:     "memory",
		MaxContextSize:    10,
		MediaDir:          t.TempDir(),
		NodeID:            1,
		AdminUsername:     "admin",
		AdminPassword:     "secret-pass",
		OrderPollInterval: time.Second,
		SessionTTL:        time.Hour,
	}
}

func newTestApp(t *testing.T, cfg *config.Config) *app {
	t.Helper()
	a, err := newApp(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })
	require.NoError(t, a.bootstrap(context.Background()))
	return a
}

func seedParts(t *testing.T, a *app) {
	t.Helper()
	require.NoError(t, a.repos.hardware.SaveMany(context.Background(), []entity.HardwareItem{
		{ID: "cpu", Category: entity.CategoryProcessor, Brand: "AMD", Model: "Ryzen 5 7600", Price: 200, Socket: "AM5"},
		{ID: "mb", Category: entity.CategoryMotherboard, Brand: "ASUS", Model: "B650", Price: 150, Socket: "AM5", MemoryType: "DDR5"},
		{ID: "ram", Category: entity.CategoryMemory, Brand: "Kingston", Model: "Fury 32GB", Price: 90, MemoryType: "DDR5"},
	}))
}

func TestNewApp_MemoryWithoutAI(t *testing.T) {
	a := newTestApp(t, memoryConfig(t))
	assert.Nil(t, a.suggestions)

	admins, err := a.admins.ListAdmins(context.Background())
	require.NoError(t, err)
	require.Len(t, admins, 1)

	labels, err := a.hardwareCategories.List(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, labels)
}

func TestNewApp_UnknownDriver(t *testing.T) {
	cfg := memoryConfig(t)
	cfg.StorageDriver = "postgres"
	_, err := newApp(context.Background(), cfg)
	assert.Error(t, err)
}

func TestNewApp_SQLite(t *testing.T) {
	cfg := memoryConfig(t)
	dir := t.TempDir()
	cfg.StorageDriver = "sqlite"
	cfg.DBPath = filepath.Join(dir, "store.db")
	cfg.ChatDBPath = filepath.Join(dir, "chat.db")

	a := newTestApp(t, cfg)
	seedParts(t, a)
	items, err := a.hardware.List(context.Background(), entity.CategoryProcessor)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestCatalogCommands_ExportImportBuild(t *testing.T) {
	ctx := context.Background()
	a := newTestApp(t, memoryConfig(t))
	seedParts(t, a)

	out := filepath.Join(t.TempDir(), "hardware.xlsx")
	n, err := exportCatalog(ctx, a, "hardware", out)
	require.NoError(t, err)
	assert.Positive(t, n)

	result, err := importCatalog(ctx, a, "hardware", out, true)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Succeeded)
	assert.Zero(t, result.Failed)

	_, err = importCatalog(ctx, a, "widgets", out, false)
	assert.Error(t, err)

	var buf bytes.Buffer
	require.NoError(t, buildConfiguration(ctx, a, 1000, entity.ConfigurationKit, &buf))
	var allocation struct {
		Configuration entity.Configuration `json:"configuration"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &allocation))
	assert.Len(t, allocation.Configuration.Selected, 3)
	assert.Equal(t, 440.0, allocation.Configuration.TotalPrice)
}

func TestScheduler_RegistersCleanupJobs(t *testing.T) {
	a := newTestApp(t, memoryConfig(t))
	sched, err := newScheduler(a)
	require.NoError(t, err)
	assert.Len(t, sched.Entries(), 3)

	_, err = a.builder.StartWizard(context.Background(), entity.ConfigurationKit)
	require.NoError(t, err)
	assert.NotPanics(t, func() {
		purgeSessions(a)
		purgeWizards(a)
	})
	// a fresh wizard is not idle yet
	assert.Zero(t, a.builder.PurgeWizards(wizardIdle))
}
