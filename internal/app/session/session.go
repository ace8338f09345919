// Package session implements one viewer's view of a board: the local
// interaction state (search, sort, drag and drop, pending card join, hidden
// columns), the derived board and moderator views, and the edge-triggered
// reactions to query transitions observed in board snapshots.
//
// A Session serializes its own events with a mutex. Commands it issues are
// always sent after the mutex is released, so a command that re-enters the
// board store can never deadlock against the session.
package session

import (
	"context"
	"log/slog"
	"sync"

	"github.com/jsamuelsen11/retro-board/internal/app/board"
	"github.com/jsamuelsen11/retro-board/internal/domain/query"
	"github.com/jsamuelsen11/retro-board/internal/domain/retro"
	"github.com/jsamuelsen11/retro-board/internal/domain/step"
	"github.com/jsamuelsen11/retro-board/internal/ports"
)

var _ board.Subscriber = (*Session)(nil)

// Source provides the current board snapshot.
type Source interface {
	Snapshot() board.Snapshot
}

// Commands issues fire-and-forget board commands. Outcomes surface as query
// statuses in later snapshots.
type Commands interface {
	Join(ctx context.Context, userID string)
	AddColumn(ctx context.Context, col retro.Column)
	AddCard(ctx context.Context, columnID, text string)
	EditCard(ctx context.Context, edit retro.CardEdit)
	Merge(ctx context.Context, removeID string, edit retro.CardEdit)
	ChangeStep(ctx context.Context, key step.Key)
}

// notifiedFamilies are the command families whose failures are posted to
// the message sink instead of replacing the view.
var notifiedFamilies = []query.Family{query.FamilyAddColumn, query.FamilyAddCard}

// Session is one viewer's interaction with a board.
type Session struct {
	id     string
	userID string
	source Source
	cmds   Commands
	sink   ports.MessageSink
	steps  step.Sequence
	logger *slog.Logger

	mu        sync.Mutex
	seen      board.Snapshot
	closed    bool
	search    string
	sortVotes bool
	hidden    map[string]bool
	dragging  *retro.Card
	target    *retro.Card
}

// New creates a session for userID. baseline is the snapshot the session was
// subscribed at: only transitions observed after it trigger effects. cmds
// must record statuses under id, the same key the session reads them by.
func New(id, userID string, baseline board.Snapshot, source Source, cmds Commands, sink ports.MessageSink, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Session{
		id:     id,
		userID: userID,
		source: source,
		cmds:   cmds,
		sink:   sink,
		steps:  step.Default,
		logger: logger,
		seen:   baseline,
		hidden: make(map[string]bool),
	}
}

// ID returns the session id.
func (s *Session) ID() string {
	return s.id
}

// UserID returns the viewer's user id.
func (s *Session) UserID() string {
	return s.userID
}

// Start issues the initial join.
func (s *Session) Start(ctx context.Context) {
	s.logger.InfoContext(ctx, "joining board")
	s.cmds.Join(ctx, s.userID)
}

// Close stops the session from reacting to further snapshots.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
}

// Observe diffs snap against the previously observed snapshot and runs the
// one-shot effects of any transitions: failures of this session's own
// add commands go to the sink, and a feed reconnect re-joins. The board's
// first connect is not a reconnect. Snapshots not newer than the last
// observed one are ignored.
func (s *Session) Observe(ctx context.Context, snap board.Snapshot) {
	s.mu.Lock()
	if s.closed || snap.Version <= s.seen.Version {
		s.mu.Unlock()
		return
	}
	prev := s.seen
	s.seen = snap
	s.mu.Unlock()

	for _, f := range notifiedFamilies {
		next := snap.QueryFor(s.id, f)
		if query.Failed(prev.QueryFor(s.id, f), next) {
			s.logger.DebugContext(ctx, "command failed", slog.String("family", f.String()), slog.String("error", next.Error))
			s.sink.AddMessage(ctx, next.Error)
		}
	}

	if snap.Connects > 1 && query.Succeeded(prev.Query(query.FamilyConnect), snap.Query(query.FamilyConnect)) {
		s.logger.InfoContext(ctx, "feed reconnected, re-joining board")
		s.cmds.Join(ctx, s.userID)
	}
}
