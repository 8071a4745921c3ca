package main

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"

	cataloga "github.com/alwaysleaveanote/perchanceManger-sub002/internal/adapters/catalog"
	dbsqlite "github.com/alwaysleaveanote/perchanceManger-sub002/internal/adapters/db/sqlite"
	apiapp "github.com/alwaysleaveanote/perchanceManger-sub002/internal/api/app"
	"github.com/alwaysleaveanote/perchanceManger-sub002/internal/usecase/binding"
	"github.com/alwaysleaveanote/perchanceManger-sub002/internal/usecase/defaults"
	"github.com/alwaysleaveanote/perchanceManger-sub002/internal/usecase/library"
	"github.com/alwaysleaveanote/perchanceManger-sub002/internal/usecase/themes"
)

//go:embed all:frontend/dist
var assets embed.FS

const (
	dbPath          = "data/studio.db"
	catalogOverride = "data/sections.yaml"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	app := NewApp()

	db, err := dbsqlite.Init(dbPath)
	if err != nil {
		slog.Error("open database", "path", dbPath, "err", err)
		os.Exit(1)
	}
	characterRepo := dbsqlite.NewCharacterRepo(db)
	promptRepo := dbsqlite.NewPromptRepo(db)
	presetRepo := dbsqlite.NewPresetRepo(db)
	defaultsRepo := dbsqlite.NewDefaultsRepo(db)
	settingsRepo := dbsqlite.NewSettingsRepo(db)

	// Section catalog: persisted variant choice, then an optional user
	// override file that is hot-reloaded while the app runs.
	variant, err := settingsRepo.Get(context.Background(), apiapp.VariantSettingsKey)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		slog.Error("read catalog variant", "err", err)
	}
	sections, err := cataloga.NewSections(cataloga.Variant(variant))
	if err != nil {
		slog.Error("load section catalog", "err", err)
		os.Exit(1)
	}
	if _, statErr := os.Stat(catalogOverride); statErr == nil {
		if err := sections.LoadOverrideFile(catalogOverride); err != nil {
			slog.Error("load catalog override", "path", catalogOverride, "err", err)
		}
	}
	if err := os.MkdirAll(filepath.Dir(catalogOverride), 0o755); err == nil {
		if w, werr := cataloga.NewWatcher(sections, catalogOverride); werr == nil {
			app.SetCatalogWatcher(w)
			w.Start()
		} else {
			slog.Error("watch catalog override", "err", werr)
		}
	}

	themeCatalog, err := cataloga.NewThemes()
	if err != nil {
		slog.Error("load theme catalog", "err", err)
		os.Exit(1)
	}

	lib := library.New(presetRepo)
	if err := lib.Load(context.Background()); err != nil {
		slog.Error("load preset library", "err", err)
		os.Exit(1)
	}
	tracker := binding.New(lib)
	defaultsSvc := defaults.New(defaultsRepo)
	themesSvc := themes.New(themeCatalog, settingsRepo, characterRepo)

	presetAPI := apiapp.NewPresetAPI(lib)
	defaultsAPI := apiapp.NewDefaultsAPI(defaultsSvc)
	characterAPI := apiapp.NewCharacterAPI(characterRepo)
	promptAPI := apiapp.NewPromptAPI(promptRepo, lib, tracker, defaultsSvc)
	composeAPI := apiapp.NewComposeAPI(characterRepo, promptRepo, defaultsSvc, sections)
	themeAPI := apiapp.NewThemeAPI(themesSvc)
	catalogAPI := apiapp.NewCatalogAPI(sections, settingsRepo)

	err = wails.Run(&options.App{
		Title:  "Prompt Studio",
		Width:  1100,
		Height: 780,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		BackgroundColour: &options.RGBA{R: 16, G: 18, B: 26, A: 1},
		OnStartup:        app.startup,
		OnShutdown:       app.shutdown,
		Bind: []interface{}{
			app,
			presetAPI,
			defaultsAPI,
			characterAPI,
			promptAPI,
			composeAPI,
			themeAPI,
			catalogAPI,
		},
	})
	if err != nil {
		slog.Error("run app", "err", err)
	}
}
