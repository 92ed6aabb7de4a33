package domain

import "time"

// Settings are the last-known connection parameters. The bot token itself
// lives in the secret store and is referenced by TokenSecretRef.
type Settings struct {
	GuildID        string
	TokenSecretRef string
	UpdatedAt      time.Time
}
