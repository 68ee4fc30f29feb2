package main

import (
	"fmt"
	"os"

	"campushub/auth/microsoft"
	authservice "campushub/auth/service"
	botsqlite "campushub/bot/botstorage/sqlite"
	"campushub/bot/tgbot"
	"campushub/internal/config"
	"campushub/internal/filestore"
	"campushub/internal/logger"
	"campushub/internal/recommend"
	"campushub/internal/service"
	"campushub/internal/storage/sqlite"
	"campushub/internal/web"
)

func main() {
	if err := run(); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.New()
	if err != nil {
		return err
	}
	l := logger.New(cfg.Server.Debug)

	store, err := sqlite.New(l, cfg.Server.SqliteFile)
	if err != nil {
		return err
	}
	defer store.Close()

	engine := recommend.New(cfg.Server.RecommendLimit)
	eventService := service.NewEventService(l, store, store, store, engine)
	userService := service.NewUserService(l, store)
	orgService := service.NewOrgService(l, store, store, store, store)

	bridge := microsoft.New(cfg.Server.Auth.Microsoft)
	authService := authservice.New(l, cfg.Server.Auth, bridge, store)

	files, err := filestore.New(l, cfg.Server.UploadDir)
	if err != nil {
		return err
	}

	if cfg.TgBot.Enabled {
		botStorage, err := botsqlite.New(l, cfg.TgBot)
		if err != nil {
			return err
		}
		bot, err := tgbot.New(eventService, botStorage, cfg, l)
		if err != nil {
			return err
		}
		orgService.OnEventCreated(bot.NotifyNewEvent)
		go bot.Run()
		defer bot.Stop()
	}

	server := web.New(l, cfg.Server, authService, eventService, userService, orgService, files)
	return server.Serve()
}
