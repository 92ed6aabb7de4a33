package discord

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/bnema/nx-sentinel/internal/domain"
	"github.com/bnema/nx-sentinel/internal/ports"
)

const (
	DefaultBaseURL   = "https://discord.com/api/v10"
	DefaultCDNURL    = "https://cdn.discordapp.com"
	fallbackAvatar   = "https://ui-avatars.com/api/?name="
	maxResponseBytes = 1 << 20
	userAgent        = "nx-sentinel (https://github.com/bnema/nx-sentinel, 1)"
)

var ErrUnexpectedStatus = errors.New("connection failed, check token/server id")

type Client struct {
	baseURL    string
	cdnURL     string
	httpClient *http.Client
}

var _ ports.GuildPlatform = (*Client)(nil)

type Option func(*Client)

func WithCDNURL(cdnURL string) Option {
	return func(c *Client) {
		c.cdnURL = strings.TrimRight(cdnURL, "/")
	}
}

func NewClient(baseURL string, httpClient *http.Client, opts ...Option) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	client := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		cdnURL:     DefaultCDNURL,
		httpClient: httpClient,
	}
	for _, opt := range opts {
		opt(client)
	}

	return client
}

type guildPayload struct {
	ID                     string `json:"id"`
	Name                   string `json:"name"`
	Icon                   string `json:"icon"`
	ApproximateMemberCount int    `json:"approximate_member_count"`
}

type userPayload struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}

type memberPayload struct {
	User     *userPayload `json:"user"`
	JoinedAt string       `json:"joined_at"`
}

func (c *Client) FetchGuild(ctx context.Context, creds domain.Credentials) (ports.GuildInfo, error) {
	query := url.Values{"with_counts": []string{"true"}}

	var payload guildPayload
	if err := c.get(ctx, creds, guildPath(creds.GuildID), query, &payload); err != nil {
		return ports.GuildInfo{}, err
	}

	info := ports.GuildInfo{
		Name:        payload.Name,
		MemberCount: payload.ApproximateMemberCount,
	}
	if payload.Icon != "" {
		info.Icon = fmt.Sprintf("%s/icons/%s/%s.png", c.cdnURL, url.PathEscape(creds.GuildID), url.PathEscape(payload.Icon))
	}

	return info, nil
}

func (c *Client) ListMembers(ctx context.Context, creds domain.Credentials, limit int) ([]ports.GuildMember, error) {
	if limit <= 0 {
		limit = ports.MemberPageLimit
	}
	query := url.Values{"limit": []string{strconv.Itoa(limit)}}

	var payload []memberPayload
	if err := c.get(ctx, creds, guildPath(creds.GuildID)+"/members", query, &payload); err != nil {
		return nil, err
	}

	members := make([]ports.GuildMember, 0, len(payload))
	for _, entry := range payload {
		if entry.User == nil {
			continue
		}

		member := ports.GuildMember{
			ID:       entry.User.ID,
			Username: entry.User.Username,
			Avatar:   c.avatarURL(*entry.User),
		}
		if entry.JoinedAt != "" {
			joinedAt, err := time.Parse(time.RFC3339Nano, entry.JoinedAt)
			if err != nil {
				return nil, fmt.Errorf("parse joined_at for member %s: %w", entry.User.ID, err)
			}
			member.JoinedAt = joinedAt.UTC()
		}

		members = append(members, member)
	}

	return members, nil
}

func (c *Client) avatarURL(user userPayload) string {
	if user.Avatar == "" {
		return fallbackAvatar + url.QueryEscape(user.Username)
	}

	return fmt.Sprintf("%s/avatars/%s/%s.png", c.cdnURL, url.PathEscape(user.ID), url.PathEscape(user.Avatar))
}

func (c *Client) get(ctx context.Context, creds domain.Credentials, path string, query url.Values, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	request.Header.Set("Authorization", "Bot "+creds.BotToken)
	request.Header.Set("Accept", "application/json")
	request.Header.Set("User-Agent", userAgent)

	response, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("perform request: %w", err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(io.LimitReader(response.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if response.StatusCode < 200 || response.StatusCode > 299 {
		return fmt.Errorf("%w: status %d", ErrUnexpectedStatus, response.StatusCode)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}

	return nil
}

func guildPath(guildID string) string {
	return "/guilds/" + url.PathEscape(strings.TrimSpace(guildID))
}
