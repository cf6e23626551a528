package main

import (
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/douglarek/feedreader/app"
	"github.com/douglarek/feedreader/bot"
	"github.com/douglarek/feedreader/config"
)

var configFile = flag.String("config-file", "config.jsonc", "path to config file")
var slogLevel = new(slog.LevelVar)

func init() {
	h := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slogLevel})
	slog.SetDefault(slog.New(h))
}

func main() {
	flag.Parse()

	settings, err := config.LoadSettings(*configFile)
	if err != nil {
		slog.Error("[main]: cannot load settings", "error", err)
		return
	}
	if settings.EnableDebug {
		slogLevel.Set(slog.LevelDebug)
	}
	if settings.BotToken == "" {
		slog.Error("[main]: bot_token is required")
		return
	}

	a, err := app.New(settings)
	if err != nil {
		slog.Error("[main]: cannot start reader", "error", err)
		return
	}
	defer a.Close()

	bot, err := bot.NewDiscordBot(settings.BotToken, a)
	if err != nil {
		slog.Error("[main]: cannot create discord bot", "error", err)
		return
	}
	defer bot.Close()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	slog.Info("[main]: bot is running, press Ctrl+C to exit")
	<-stop
	slog.Info("[main]: bot is gracefully shutting down")
}
