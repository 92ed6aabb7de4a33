package application

import "github.com/bnema/nx-sentinel/internal/domain"

// Snapshot is a detached copy of everything the dashboard renders.
type Snapshot struct {
	Connected    bool
	Busy         bool
	GuildID      string
	Server       *domain.ServerAggregate
	Members      []domain.MemberRecord
	Events       []domain.LiveEvent
	Logs         []domain.LogEntry
	ThreatReport string
	Operation    domain.OperationSnapshot
}
