package main

import (
	"os"
	"os/signal"
	"syscall"

	"formbox.link/configs"
	"formbox.link/configs/configsdatabase"
	"formbox.link/configs/configslog"
	"formbox.link/routes"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func main() {
	configs.LoadEnv()
	configslog.InitLogger()
	defer configslog.SyncLogger()

	configsdatabase.InitDB()
	defer configsdatabase.CloseDB()

	app := fiber.New(fiber.Config{
		AppName:               "formbox",
		DisableStartupMessage: true,
	})

	routes.SetupRoutes(app, configs.GetDB())

	// Graceful shutdown on SIGINT/SIGTERM.
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		configslog.SLog.Info("shutting down...")
		_ = app.Shutdown()
	}()

	addr := ":" + configs.GetEnv("PORT", "3000")
	configslog.SLog.Infof("listening on %s", addr)
	if err := app.Listen(addr); err != nil {
		configslog.Log.Fatal("server stopped", zap.Error(err))
	}
}
