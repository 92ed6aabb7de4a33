package domain

type ServerAggregate struct {
	Name        string
	Icon        string
	MemberCount int
}

func (s *ServerAggregate) Join() {
	if s == nil {
		return
	}
	s.MemberCount++
}

// Leave never takes MemberCount below zero.
func (s *ServerAggregate) Leave() {
	if s == nil {
		return
	}
	s.MemberCount = max(0, s.MemberCount-1)
}

type Credentials struct {
	BotToken string
	GuildID  string
}

func (c Credentials) Complete() bool {
	return c.BotToken != "" && c.GuildID != ""
}
