package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version  int            `toml:"version"`
	Settings settingsSchema `toml:"settings"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported settings schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type settingsSchema struct {
	GuildID        string `toml:"guild_id"`
	TokenSecretRef string `toml:"token_secret_ref"`
	UpdatedAt      string `toml:"updated_at,omitempty"`
}

func (s settingsSchema) empty() bool {
	return s.GuildID == "" && s.TokenSecretRef == ""
}
