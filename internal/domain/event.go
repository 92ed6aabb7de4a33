package domain

import "time"

const LiveEventCapacity = 15

type ActionCategory string

const (
	CategoryMessage ActionCategory = "message"
	CategoryVoice   ActionCategory = "voice"
	CategoryJoin    ActionCategory = "join"
	CategoryLeave   ActionCategory = "leave"
)

type Action struct {
	Text     string
	Category ActionCategory
}

var Actions = []Action{
	{Text: "sent a message", Category: CategoryMessage},
	{Text: "joined voice", Category: CategoryVoice},
	{Text: "started streaming", Category: CategoryVoice},
	{Text: "joined the server", Category: CategoryJoin},
	{Text: "left the server", Category: CategoryLeave},
}

var Channels = []string{"#general", "#lobby", "#gaming", "#voice-hangout", "#dev-logs"}

type LiveEvent struct {
	ID        string
	Timestamp time.Time
	User      string
	Action    string
	Channel   string
	Category  ActionCategory
}
