package ports

import (
	"context"
	"time"

	"github.com/bnema/nx-sentinel/internal/domain"
)

const MemberPageLimit = 20

type GuildInfo struct {
	Name        string
	Icon        string
	MemberCount int
}

type GuildMember struct {
	ID       string
	Username string
	Avatar   string
	JoinedAt time.Time
}

// GuildPlatform is the chat platform account/guild API. Any non-success
// response is a connection failure; only one member page is ever fetched.
type GuildPlatform interface {
	FetchGuild(ctx context.Context, creds domain.Credentials) (GuildInfo, error)
	ListMembers(ctx context.Context, creds domain.Credentials, limit int) ([]GuildMember, error)
}
