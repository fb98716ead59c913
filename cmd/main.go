// Package main provides the entry point for the playlist bot
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"playlistbot/constants/zapkey"
	"playlistbot/debug"
	"playlistbot/discord"
	discordconfig "playlistbot/discord/config"
	"playlistbot/log"
	"playlistbot/session"
	"playlistbot/spotify"
	"playlistbot/spotify/auth"
	spotifyconfig "playlistbot/spotify/config"
)

func main() {
	defer log.Logger.Sync()

	// Local development reads secrets from a .env file; deployments set them directly
	_ = godotenv.Load()

	if err := run(); err != nil {
		log.Logger.Fatal("bot failed", zap.Error(err))
	}
}

func run() error {
	ctx := context.Background()

	// Spotify: config -> credentials -> client
	spotifyCfg, err := spotifyconfig.NewConfig()
	if err != nil {
		return err
	}
	creds, err := auth.New(spotifyCfg)
	if err != nil {
		return err
	}
	client, err := spotify.NewClient(creds)
	if err != nil {
		return err
	}

	// Verify the stored credential before serving commands
	user, err := client.CurrentUser(ctx)
	if err != nil {
		return err
	}
	log.Logger.Info("Spotify credential verified",
		zap.String(zapkey.UserID, user.ID),
		zap.String(zapkey.UserName, user.DisplayName))

	// Discord: config -> message handler -> client
	discordCfg, err := discordconfig.NewConfig()
	if err != nil {
		return err
	}
	handler, err := discord.NewMessageHandler(
		client,
		session.NewStore(),
		discord.WithChannelID(discordCfg.SongsChannelID),
	)
	if err != nil {
		return err
	}
	bot, err := discord.NewClient(
		discord.WithConfig(discordCfg),
		discord.WithHandlers(handler),
	)
	if err != nil {
		return err
	}

	dbg, err := debug.NewClient()
	if err != nil {
		return err
	}
	if err := dbg.Start(); err != nil {
		return err
	}
	defer dbg.Stop()

	if err := bot.Start(); err != nil {
		return err
	}
	defer bot.Stop()

	log.Logger.Info("Bot is running, press Ctrl+C to exit")
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Logger.Info("Shutting down")
	return nil
}
