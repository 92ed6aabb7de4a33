package discord

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bnema/nx-sentinel/internal/domain"
	"github.com/bnema/nx-sentinel/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var creds = domain.Credentials{BotToken: "bot-token", GuildID: "42"}

func TestFetchGuildMapsMetadataAndIcon(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/guilds/42", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("with_counts"))
		assert.Equal(t, "Bot bot-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"42","name":"Nexus","icon":"abc123","approximate_member_count":128}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, server.Client(), WithCDNURL("https://cdn.test/"))

	info, err := client.FetchGuild(context.Background(), creds)
	require.NoError(t, err)
	assert.Equal(t, ports.GuildInfo{
		Name:        "Nexus",
		Icon:        "https://cdn.test/icons/42/abc123.png",
		MemberCount: 128,
	}, info)
}

func TestFetchGuildWithoutIconLeavesIconEmpty(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"id":"42","name":"Nexus","icon":null}`))
	}))
	defer server.Close()

	info, err := NewClient(server.URL, server.Client()).FetchGuild(context.Background(), creds)
	require.NoError(t, err)
	assert.Empty(t, info.Icon)
	assert.Zero(t, info.MemberCount)
}

func TestFetchGuildNonSuccessIsConnectionFailure(t *testing.T) {
	t.Parallel()

	testCases := []int{http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound, http.StatusInternalServerError}
	for _, status := range testCases {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, `{"message": "401: Unauthorized"}`, status)
		}))

		_, err := NewClient(server.URL, server.Client()).FetchGuild(context.Background(), creds)
		server.Close()

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnexpectedStatus)
		assert.Contains(t, err.Error(), "check token/server id")
	}
}

func TestListMembersMapsOnePage(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/guilds/42/members", r.URL.Path)
		assert.Equal(t, "20", r.URL.Query().Get("limit"))
		assert.Empty(t, r.URL.Query().Get("after"))

		_, _ = w.Write([]byte(`[
			{"user":{"id":"1","username":"alice","avatar":"hash1"},"joined_at":"2024-05-01T22:15:03.120000+00:00"},
			{"user":{"id":"2","username":"bob smith","avatar":null},"joined_at":"2023-01-02T03:04:05+00:00"},
			{"joined_at":"2023-01-02T03:04:05+00:00"}
		]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, server.Client(), WithCDNURL("https://cdn.test"))

	members, err := client.ListMembers(context.Background(), creds, ports.MemberPageLimit)
	require.NoError(t, err)
	require.Len(t, members, 2)

	assert.Equal(t, ports.GuildMember{
		ID:       "1",
		Username: "alice",
		Avatar:   "https://cdn.test/avatars/1/hash1.png",
		JoinedAt: time.Date(2024, 5, 1, 22, 15, 3, 120000000, time.UTC),
	}, members[0])
	assert.Equal(t, "https://ui-avatars.com/api/?name=bob+smith", members[1].Avatar)
	assert.Equal(t, time.Date(2023, 1, 2, 3, 4, 5, 0, time.UTC), members[1].JoinedAt)
}

func TestListMembersRejectsMalformedPayload(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"message":"not a list"}`))
	}))
	defer server.Close()

	_, err := NewClient(server.URL, server.Client()).ListMembers(context.Background(), creds, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode payload")
}

func TestNewClientDefaultsBaseURL(t *testing.T) {
	t.Parallel()

	client := NewClient("", nil)
	assert.Equal(t, DefaultBaseURL, client.baseURL)
	assert.Equal(t, DefaultCDNURL, client.cdnURL)
}
