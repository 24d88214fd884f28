package main

import (
	"flag"
	"os"

	"formbox.link/configs"
	"formbox.link/configs/configsdatabase"
	"formbox.link/configs/configslog"
	"formbox.link/database"
)

func main() {
	configs.LoadEnv()
	configslog.InitLogger()
	defer configslog.SyncLogger()

	migrateFlag := flag.Bool("migrate", false, "run database migrations")
	seedFlag := flag.Bool("seed", false, "run database seeders")
	flag.Parse()

	configsdatabase.InitDB()
	defer configsdatabase.CloseDB()

	if err := database.Initialize(configsdatabase.GetDB(), *migrateFlag, *seedFlag); err != nil {
		configslog.SLog.Errorf("database initialization failed: %v", err)
		os.Exit(1)
	}
	configslog.SLog.Info("database initialization finished")
}
