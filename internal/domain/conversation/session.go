package conversation

// DefaultSessionKey is the session used when a caller does not name one.
// The single-user CLI and bare HTTP chat requests both land here.
const DefaultSessionKey = "default"

// Session is the ordered conversation history for one session key. It is
// loaded wholesale at the start of a turn and persisted wholesale at the end.
type Session struct {
	Turns []Turn
}

// Append adds turns to the end of the session.
func (s *Session) Append(turns ...Turn) {
	s.Turns = append(s.Turns, turns...)
}

// UserTurnCount returns the number of user turns in the session.
func (s *Session) UserTurnCount() int {
	n := 0
	for i := range s.Turns {
		if s.Turns[i].Role == RoleUser {
			n++
		}
	}
	return n
}

// Recent returns the suffix of the session starting at the nth-from-last
// user turn, so the model sees at most maxUserTurns user utterances together
// with the agent and tool turns between them. The full session is returned
// when it holds fewer user turns. maxUserTurns <= 0 returns an empty slice.
//
// The returned slice aliases the session; callers must not mutate it.
func (s *Session) Recent(maxUserTurns int) []Turn {
	if maxUserTurns <= 0 {
		return nil
	}

	seen := 0
	for i := len(s.Turns) - 1; i >= 0; i-- {
		if s.Turns[i].Role != RoleUser {
			continue
		}
		seen++
		if seen == maxUserTurns {
			return s.Turns[i:]
		}
	}
	return s.Turns
}
