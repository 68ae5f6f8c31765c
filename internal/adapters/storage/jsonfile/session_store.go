package jsonfile

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"sync"

	"github.com/jsamuelsen11/todo-agent/internal/domain"
	"github.com/jsamuelsen11/todo-agent/internal/domain/conversation"
	"github.com/jsamuelsen11/todo-agent/internal/ports"
)

// sessionKeyPattern restricts keys to names that are safe as file name
// components. Anything else would let a caller escape the data directory.
var sessionKeyPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{1,64}$`)

// Compile-time interface check.
var _ ports.SessionStore = (*SessionStore)(nil)

// SessionStore implements [ports.SessionStore] with one
// session_<key>.json document per conversation, each holding
// {"history": [...]} with the full turn list. Documents are cached per key
// so concurrent calls for one session share the same file lock.
type SessionStore struct {
	dir  string
	mu   sync.Mutex
	docs map[string]*document
}

// NewSessionStore creates a SessionStore rooted at the given data directory.
func NewSessionStore(dir string) *SessionStore {
	return &SessionStore{dir: dir, docs: make(map[string]*document)}
}

// Load returns the session for the key. A missing document loads as an
// empty session.
func (s *SessionStore) Load(ctx context.Context, key string) (*conversation.Session, error) {
	doc, err := s.document(key)
	if err != nil {
		return nil, err
	}

	var record sessionRecord
	found, err := doc.load(ctx, &record)
	if err != nil {
		return nil, err
	}
	if !found {
		return &conversation.Session{}, nil
	}
	return record.toDomain(), nil
}

// Save replaces the stored session for the key.
func (s *SessionStore) Save(ctx context.Context, key string, session *conversation.Session) error {
	doc, err := s.document(key)
	if err != nil {
		return err
	}
	return doc.save(ctx, toSessionRecord(session))
}

// Reset deletes the stored session for the key.
func (s *SessionStore) Reset(ctx context.Context, key string) error {
	doc, err := s.document(key)
	if err != nil {
		return err
	}
	return doc.reset(ctx)
}

func (s *SessionStore) document(key string) (*document, error) {
	if !sessionKeyPattern.MatchString(key) {
		return nil, fmt.Errorf("invalid session key %q: %w", key, domain.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.docs[key]
	if !ok {
		doc = &document{path: filepath.Join(s.dir, "session_"+key+".json")}
		s.docs[key] = doc
	}
	return doc, nil
}

// sessionRecord is the on-disk shape of a conversation document.
type sessionRecord struct {
	History []turnRecord `json:"history"`
}

type turnRecord struct {
	Role       string           `json:"role"`
	Content    string           `json:"content,omitempty"`
	ToolCalls  []toolCallRecord `json:"tool_calls,omitempty"`
	ToolCallID string           `json:"tool_call_id,omitempty"`
	ToolName   string           `json:"tool_name,omitempty"`
}

type toolCallRecord struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

func toSessionRecord(session *conversation.Session) sessionRecord {
	record := sessionRecord{History: make([]turnRecord, len(session.Turns))}
	for i, turn := range session.Turns {
		tr := turnRecord{
			Role:       turn.Role.String(),
			Content:    turn.Content,
			ToolCallID: turn.ToolCallID,
			ToolName:   turn.ToolName,
		}
		for _, call := range turn.ToolCalls {
			tr.ToolCalls = append(tr.ToolCalls, toolCallRecord(call))
		}
		record.History[i] = tr
	}
	return record
}

func (r *sessionRecord) toDomain() *conversation.Session {
	session := &conversation.Session{Turns: make([]conversation.Turn, len(r.History))}
	for i, tr := range r.History {
		turn := conversation.Turn{
			Role:       conversation.Role(tr.Role),
			Content:    tr.Content,
			ToolCallID: tr.ToolCallID,
			ToolName:   tr.ToolName,
		}
		for _, call := range tr.ToolCalls {
			turn.ToolCalls = append(turn.ToolCalls, conversation.ToolCall(call))
		}
		session.Turns[i] = turn
	}
	return session
}
