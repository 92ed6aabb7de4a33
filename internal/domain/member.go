package domain

type MemberID string

type Presence string

const (
	PresenceOnline  Presence = "online"
	PresenceIdle    Presence = "idle"
	PresenceDND     Presence = "dnd"
	PresenceOffline Presence = "offline"
)

type ThreatLevel string

const (
	ThreatSafe       ThreatLevel = "safe"
	ThreatSuspicious ThreatLevel = "suspicious"
	ThreatDanger     ThreatLevel = "danger"
)

// MemberRecord is replaced wholesale on every connect; the engine only reads it.
type MemberRecord struct {
	ID           MemberID
	Username     string
	Messages     int
	VoiceMinutes int
	Avatar       string
	Status       Presence
	JoinedDate   string
	Threat       ThreatLevel
}
