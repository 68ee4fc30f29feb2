package config

import (
	"os"

	"github.com/BurntSushi/toml"

	authservice "campushub/auth/service"
)

type TgBot struct {
	Enabled          bool   `toml:"enabled"`
	TelegramApiToken string `toml:"telegram_apitoken"`
	SqliteFile       string `toml:"sqlite_file"`
	AdminPass        string `toml:"admin_pass"`
}

type Server struct {
	Host           string             `toml:"host"`
	Port           int                `toml:"port"`
	Debug          bool               `toml:"debug_mode"`
	SqliteFile     string             `toml:"sqlite_file"`
	UploadDir      string             `toml:"upload_dir"`
	CertFile       string             `toml:"cert_file"`
	KeyFile        string             `toml:"key_file"`
	RecommendLimit int                `toml:"recommend_limit"`
	Auth           authservice.Config `toml:"auth"`
}

type Config struct {
	TgBot  TgBot
	Server Server
}

func New() (Config, error) {
	var serverCfg Server
	_, err := toml.DecodeFile("configs/server.toml", &serverCfg)
	if err != nil {
		return Config{}, err
	}
	if token := os.Getenv("AUTH_TOKEN_SECRET"); token != "" {
		serverCfg.Auth.Token = token
	}
	if secret := os.Getenv("MICROSOFT_CLIENT_SECRET"); secret != "" {
		serverCfg.Auth.Microsoft.ClientSecret = secret
	}

	var tgBotCfg TgBot
	_, err = toml.DecodeFile("configs/bot.toml", &tgBotCfg)
	if err != nil {
		return Config{}, err
	}
	if token := os.Getenv("TELEGRAM_APITOKEN"); token != "" {
		tgBotCfg.TelegramApiToken = token
	}

	return Config{
		TgBot:  tgBotCfg,
		Server: serverCfg,
	}, nil
}
