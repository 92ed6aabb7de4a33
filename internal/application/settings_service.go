package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/nx-sentinel/internal/domain"
	"github.com/bnema/nx-sentinel/internal/ports"
)

type SettingsService struct {
	repo  ports.SettingsRepository
	store ports.SecretStore
	clock ports.Clock
}

func NewSettingsService(repo ports.SettingsRepository, store ports.SecretStore, clock ports.Clock) *SettingsService {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &SettingsService{
		repo:  repo,
		store: store,
		clock: clock,
	}
}

func TokenSecretKey(guildID string) string {
	return fmt.Sprintf("discord/%s/bot_token", strings.TrimSpace(guildID))
}

// Load returns the last-known credentials. Missing settings are not an error.
func (s *SettingsService) Load(ctx context.Context) (domain.Credentials, error) {
	settings, err := s.repo.Load(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrSettingsNotFound) {
			return domain.Credentials{}, nil
		}
		return domain.Credentials{}, fmt.Errorf("load settings: %w", err)
	}

	creds := domain.Credentials{GuildID: settings.GuildID}
	if settings.TokenSecretRef == "" {
		return creds, nil
	}

	token, err := s.store.Get(ctx, settings.TokenSecretRef)
	if err != nil {
		return creds, fmt.Errorf("load bot token: %w", err)
	}
	creds.BotToken = strings.TrimSpace(token)

	return creds, nil
}

func (s *SettingsService) Save(ctx context.Context, creds domain.Credentials) error {
	creds.GuildID = strings.TrimSpace(creds.GuildID)
	creds.BotToken = strings.TrimSpace(creds.BotToken)
	if !creds.Complete() {
		return domain.ErrMissingCredentials
	}

	previous, err := s.repo.Load(ctx)
	if err != nil && !errors.Is(err, domain.ErrSettingsNotFound) {
		return fmt.Errorf("load settings: %w", err)
	}

	secretKey := TokenSecretKey(creds.GuildID)
	if err := s.store.Put(ctx, secretKey, creds.BotToken); err != nil {
		return fmt.Errorf("store bot token: %w", err)
	}

	next := domain.Settings{
		GuildID:        creds.GuildID,
		TokenSecretRef: secretKey,
		UpdatedAt:      s.clock.Now().UTC(),
	}
	if err := s.repo.Save(ctx, next); err != nil {
		if previous.TokenSecretRef != secretKey {
			if rollbackErr := s.store.Delete(ctx, secretKey); rollbackErr != nil {
				return fmt.Errorf("save settings and rollback stored token: %w", errors.Join(err, rollbackErr))
			}
		}
		return fmt.Errorf("save settings: %w", err)
	}

	if previous.TokenSecretRef != "" && previous.TokenSecretRef != secretKey {
		if err := s.store.Delete(ctx, previous.TokenSecretRef); err != nil {
			return fmt.Errorf("delete previous bot token: %w", err)
		}
	}

	return nil
}
