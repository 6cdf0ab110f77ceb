package main

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"caffeine-editor/internal/config"
	"caffeine-editor/internal/controllers"
	"caffeine-editor/internal/dialogs"
	"caffeine-editor/internal/dialogs/native"
	"caffeine-editor/internal/logger"
	"caffeine-editor/internal/models"
	"caffeine-editor/internal/services"
	"caffeine-editor/internal/shutdown"
	"caffeine-editor/internal/views"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const (
	AppName    = "Caffeine Text Editor"
	AppID      = "org.oopseditor.caffeine"
	AppVersion = "1.0.0"
)

// Application owns the Fyne app and the editor's single window.
type Application struct {
	fyneApp fyne.App
	window  fyne.Window
	logger  logger.Logger
	view     *views.MainView
	shutdown *shutdown.Manager

	ctx    context.Context
	cancel context.CancelFunc
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	NewApplication(ctx, config.Load(os.Getenv)).Run()
}

// NewApplication wires the window, document, store, dialogs and controller.
func NewApplication(ctx context.Context, cfg config.Config) *Application {
	appLogger := logger.New(cfg.LogLevel, cfg.JSONLogs)

	fyneApp := app.NewWithID(AppID)
	fyneApp.SetMetadata(&fyne.AppMetadata{
		ID:      AppID,
		Name:    AppName,
		Version: AppVersion,
	})

	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(cfg.WindowWidth, cfg.WindowHeight))
	window.CenterOnScreen()
	window.SetMaster()

	appLogger.Info("Application", "starting", map[string]interface{}{
		"version":        AppVersion,
		"window_size":    fmt.Sprintf("%.0fx%.0f", cfg.WindowWidth, cfg.WindowHeight),
		"go_version":     runtime.Version(),
		"native_dialogs": cfg.NativeDialogs,
		"log_level":      cfg.LogLevel.String(),
	})

	var dlg dialogs.Dialogs
	if cfg.NativeDialogs {
		dlg = native.New(appLogger)
	} else {
		dlg = dialogs.NewFyneDialogs(window, appLogger)
	}

	document := models.NewDocument()
	store := services.NewDiskStore(appLogger)

	controller := controllers.NewMainController(document, store, dlg, appLogger)
	view := views.NewMainView(window)
	controller.SetMainView(view)
	controller.SetQuitHandler(fyneApp.Quit)
	controller.OnAction(controllers.NewActionLogger(appLogger))

	appCtx, appCancel := context.WithCancel(ctx)

	shutdownManager := shutdown.NewManager(appLogger)
	shutdownManager.Register("window", shutdown.Func(func() {
		fyne.Do(fyneApp.Quit)
	}))

	application := &Application{
		fyneApp:  fyneApp,
		window:   window,
		logger:   appLogger,
		view:     view,
		shutdown: shutdownManager,
		ctx:      appCtx,
		cancel:   appCancel,
	}

	application.setupWindowEvents()

	appLogger.Info("Application", "initialized", map[string]interface{}{
		"title": controller.WindowTitle(),
	})
	return application
}

// Run shows the window and blocks in the Fyne event loop until the app quits.
func (a *Application) Run() {
	a.shutdown.Listen(a.ctx)

	a.view.Show()
	a.fyneApp.Run()

	a.cancel()
	a.logger.Info("Application", "terminated", nil)
}

func (a *Application) setupWindowEvents() {
	a.window.SetOnClosed(func() {
		a.logger.Info("Application", "window closed", nil)
		a.cancel()
	})
}
