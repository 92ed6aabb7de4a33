package application

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/bnema/nx-sentinel/internal/domain"
	"github.com/bnema/nx-sentinel/internal/ports"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	ThreatScanPendingText = "AI is analyzing member patterns..."
	ThreatScanFailedText  = "AI analysis failed."

	syntheticMessageCeiling = 500
	syntheticVoiceCeiling   = 100
	joinDateLayout          = "2006-01-02"
)

// ConnectedHook runs after a successful connect, typically to persist the
// credentials that worked.
type ConnectedHook func(ctx context.Context, creds domain.Credentials) error

type SessionDeps struct {
	Platform    ports.GuildPlatform
	Content     ports.ContentProvider
	Clock       ports.Clock
	Random      ports.Random
	Logger      *zap.Logger
	OnConnected ConnectedHook
}

// Session is the single owner of connection state, the member set, the
// server aggregate and the two bounded feeds.
type Session struct {
	platform    ports.GuildPlatform
	content     ports.ContentProvider
	clock       ports.Clock
	random      ports.Random
	logger      *zap.Logger
	onConnected ConnectedHook
	busy        *busyGate

	mu        sync.Mutex
	connected bool
	guildID   string
	members   []domain.MemberRecord
	server    *domain.ServerAggregate
	events    *domain.Feed[domain.LiveEvent]
	logs      *domain.Feed[domain.LogEntry]
	report    string
}

func NewSession(deps SessionDeps) *Session {
	if deps.Clock == nil {
		deps.Clock = ports.SystemClock{}
	}
	if deps.Random == nil {
		deps.Random = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x6e78))
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	return &Session{
		platform:    deps.Platform,
		content:     deps.Content,
		clock:       deps.Clock,
		random:      deps.Random,
		logger:      deps.Logger.Named("session"),
		onConnected: deps.OnConnected,
		busy:        newBusyGate(),
		events:      domain.NewFeed[domain.LiveEvent](domain.LiveEventCapacity),
		logs:        domain.NewFeed[domain.LogEntry](domain.ConsoleLogCapacity),
	}
}

func (s *Session) Connect(ctx context.Context, creds domain.Credentials) error {
	if !creds.Complete() {
		s.Log(domain.SeverityError, "Bot token and server id are required")
		return fmt.Errorf("%w: %w", domain.ErrConnection, domain.ErrMissingCredentials)
	}

	if !s.busy.tryAcquire() {
		return domain.ErrBusy
	}
	defer s.busy.release()

	s.Log(domain.SeverityInfo, fmt.Sprintf("Initiating connection to guild %s...", creds.GuildID))

	guild, err := s.platform.FetchGuild(ctx, creds)
	if err != nil {
		return s.connectFailed(creds, fmt.Errorf("fetch guild: %w", err))
	}

	members, err := s.platform.ListMembers(ctx, creds, ports.MemberPageLimit)
	if err != nil {
		return s.connectFailed(creds, fmt.Errorf("list members: %w", err))
	}

	s.mu.Lock()
	s.server = &domain.ServerAggregate{
		Name:        guild.Name,
		Icon:        guild.Icon,
		MemberCount: max(0, guild.MemberCount),
	}
	s.members = s.memberRecords(members)
	s.guildID = creds.GuildID
	s.connected = true
	s.mu.Unlock()

	s.logger.Info("connected", zap.String("guild_id", creds.GuildID), zap.String("guild", guild.Name), zap.Int("members", len(members)))
	s.Log(domain.SeveritySuccess, fmt.Sprintf("Synchronized with %s", guild.Name))

	if s.onConnected != nil {
		if err := s.onConnected(ctx, creds); err != nil {
			s.logger.Warn("connected hook failed", zap.Error(err))
			s.Log(domain.SeverityWarn, fmt.Sprintf("Could not persist settings: %v", err))
		}
	}

	return nil
}

func (s *Session) connectFailed(creds domain.Credentials, err error) error {
	s.mu.Lock()
	s.connected = false
	s.mu.Unlock()

	s.logger.Warn("connect failed", zap.String("guild_id", creds.GuildID), zap.Error(err))
	s.Log(domain.SeverityError, err.Error())

	return fmt.Errorf("%w: %w", domain.ErrConnection, err)
}

// memberRecords must be called with s.mu held; it draws from s.random.
func (s *Session) memberRecords(members []ports.GuildMember) []domain.MemberRecord {
	records := make([]domain.MemberRecord, 0, len(members))
	for _, member := range members {
		joined := ""
		if !member.JoinedAt.IsZero() {
			joined = member.JoinedAt.UTC().Format(joinDateLayout)
		}

		records = append(records, domain.MemberRecord{
			ID:           domain.MemberID(member.ID),
			Username:     member.Username,
			Messages:     s.random.IntN(syntheticMessageCeiling),
			VoiceMinutes: s.random.IntN(syntheticVoiceCeiling),
			Avatar:       member.Avatar,
			Status:       domain.PresenceOnline,
			JoinedDate:   joined,
			Threat:       domain.ThreatSafe,
		})
	}

	return records
}

func (s *Session) Disconnect() {
	s.mu.Lock()
	wasConnected := s.connected
	s.connected = false
	s.members = nil
	s.server = nil
	s.mu.Unlock()

	if wasConnected {
		s.Log(domain.SeverityInfo, "Session disconnected")
	}
}

func (s *Session) ThreatScan(ctx context.Context) error {
	s.mu.Lock()
	connected := s.connected
	sample := make([]domain.MemberRecord, 0, ports.ThreatSampleSize)
	for i := 0; i < len(s.members) && i < ports.ThreatSampleSize; i++ {
		sample = append(sample, s.members[i])
	}
	s.mu.Unlock()

	if !connected {
		return domain.ErrNotConnected
	}

	if !s.busy.tryAcquire() {
		return domain.ErrBusy
	}
	defer s.busy.release()

	s.setReport(ThreatScanPendingText)

	report, err := s.content.ThreatNarrative(ctx, sample)
	if err != nil {
		s.setReport(ThreatScanFailedText)
		s.logger.Warn("threat scan failed", zap.Error(err))
		s.Log(domain.SeverityError, "Threat scan failed")
		return fmt.Errorf("%w: %w", domain.ErrContentProvider, err)
	}

	s.setReport(report)
	s.Log(domain.SeveritySuccess, fmt.Sprintf("Threat scan complete (%d members analyzed)", len(sample)))

	return nil
}

func (s *Session) setReport(report string) {
	s.mu.Lock()
	s.report = report
	s.mu.Unlock()
}

// Log appends an operator-facing console entry.
func (s *Session) Log(level domain.Severity, message string) {
	entry := domain.LogEntry{
		ID:        uuid.NewString(),
		Timestamp: s.clock.Now(),
		Level:     level,
		Message:   message,
	}

	s.mu.Lock()
	s.logs.Push(entry)
	s.mu.Unlock()

	s.logger.Debug("console", zap.String("level", string(level)), zap.String("message", message))
}

func (s *Session) Connected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.connected
}

func (s *Session) Busy() bool {
	return s.busy.busy()
}

// ServerName returns the connected server name or "" when there is none.
func (s *Session) ServerName() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.server == nil {
		return ""
	}
	return s.server.Name
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := Snapshot{
		Connected:    s.connected,
		Busy:         s.busy.busy(),
		GuildID:      s.guildID,
		Members:      append([]domain.MemberRecord(nil), s.members...),
		Events:       s.events.Items(),
		Logs:         s.logs.Items(),
		ThreatReport: s.report,
	}
	if s.server != nil {
		server := *s.server
		snapshot.Server = &server
	}

	return snapshot
}
