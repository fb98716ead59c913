package discord

import "playlistbot/log"

var logger = log.Logger.Named("discord")
