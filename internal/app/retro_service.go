// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/retro-board/internal/app/board"
	"github.com/jsamuelsen11/retro-board/internal/app/notify"
	"github.com/jsamuelsen11/retro-board/internal/app/session"
	"github.com/jsamuelsen11/retro-board/internal/domain"
	"github.com/jsamuelsen11/retro-board/internal/platform/logging"
	"github.com/jsamuelsen11/retro-board/internal/platform/telemetry"
	"github.com/jsamuelsen11/retro-board/internal/ports"
)

// Compile-time check that RetroService implements ports.RetroService.
var _ ports.RetroService = (*RetroService)(nil)

// ErrShuttingDown is returned by Open once Shutdown has started.
var ErrShuttingDown = fmt.Errorf("retro service shutting down: %w", domain.ErrUnavailable)

// RetroServiceConfig tunes per-board resources.
type RetroServiceConfig struct {
	// CommandTimeout bounds each upstream command.
	CommandTimeout time.Duration
	// NotifyWorkers caps concurrent snapshot deliveries per board.
	NotifyWorkers int
	// MessageBuffer is the capacity of each session's notification inbox.
	MessageBuffer int
}

// RetroService implements ports.RetroService. It keeps one store, dispatcher
// and feed subscription per board, shared by every session open on that
// board, and tears them down when the last session closes. Board contents
// and the connect query are shared; each session's command statuses are
// its own.
type RetroService struct {
	channel ports.RetroChannel
	feed    ports.BoardFeed
	cfg     RetroServiceConfig
	metrics *telemetry.Metrics
	logger  *slog.Logger
	newID   func() string

	mu       sync.Mutex
	boards   map[string]*boardEntry
	sessions map[string]*sessionEntry
	closing  bool

	teardowns sync.WaitGroup
}

type boardEntry struct {
	shareID    string
	store      *board.Store
	dispatcher *board.Dispatcher
	stopFeed   context.CancelFunc
	feedDone   chan struct{}
	refs       int
}

type sessionEntry struct {
	sess        *session.Session
	inbox       *notify.Inbox
	board       *boardEntry
	unsubscribe func()
}

// NewRetroService creates a RetroService. channel carries commands upstream
// and feed streams board snapshots back. A nil metrics disables command
// metrics.
func NewRetroService(channel ports.RetroChannel, feed ports.BoardFeed, cfg RetroServiceConfig, metrics *telemetry.Metrics, logger *slog.Logger) *RetroService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &RetroService{
		channel:  channel,
		feed:     feed,
		cfg:      cfg,
		metrics:  metrics,
		logger:   logger,
		newID:    uuid.NewString,
		boards:   make(map[string]*boardEntry),
		sessions: make(map[string]*sessionEntry),
	}
}

// Open creates a session for userID on shareID and issues the initial join.
func (s *RetroService) Open(ctx context.Context, shareID, userID string) (*ports.BoardView, error) {
	if err := validateOpen(shareID, userID); err != nil {
		return nil, err
	}

	s.mu.Lock()
	if s.closing {
		s.mu.Unlock()
		return nil, ErrShuttingDown
	}
	b := s.boards[shareID]
	if b == nil {
		b = s.startBoard(shareID)
		s.boards[shareID] = b
	}
	id := s.newID()
	inbox := notify.NewInbox(s.cfg.MessageBuffer)
	logger := logging.ForSession(s.logger, id, shareID)
	var sess *session.Session
	unsubscribe := b.store.Subscribe(id, func(baseline board.Snapshot) board.Subscriber {
		sess = session.New(id, userID, baseline, b.store, b.dispatcher.For(id), inbox, logger)
		return sess
	})
	b.refs++
	s.sessions[id] = &sessionEntry{sess: sess, inbox: inbox, board: b, unsubscribe: unsubscribe}
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "session opened",
		slog.String("session_id", id),
		slog.String("share_id", shareID),
		slog.String("user_id", userID),
	)
	sess.Start(ctx)
	return sess.View(), nil
}

func validateOpen(shareID, userID string) error {
	fields := make(map[string]string)
	if strings.TrimSpace(shareID) == "" {
		fields["share_id"] = domain.MsgRequired
	}
	if strings.TrimSpace(userID) == "" {
		fields["user_id"] = domain.MsgRequired
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// startBoard creates the shared state for shareID and starts following its
// feed. Called with s.mu held.
func (s *RetroService) startBoard(shareID string) *boardEntry {
	logger := logging.ForBoard(s.logger, shareID)
	store := board.NewStore(shareID, s.cfg.NotifyWorkers, logger)
	feedCtx, stop := context.WithCancel(context.Background())
	b := &boardEntry{
		shareID:    shareID,
		store:      store,
		dispatcher: board.NewDispatcher(store, s.channel, s.cfg.CommandTimeout, s.metrics, logger),
		stopFeed:   stop,
		feedDone:   make(chan struct{}),
	}

	go func() {
		defer close(b.feedDone)
		if err := s.feed.Follow(feedCtx, shareID, store); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("board feed stopped",
				slog.String("operation", "Follow"),
				slog.Any("error", err),
			)
		}
	}()

	logger.Info("board opened")
	return b
}

// releaseBoard drops one reference to b. The last reference stops the feed
// and, in the background, waits for in-flight commands before closing the
// store. Called with s.mu held.
func (s *RetroService) releaseBoard(b *boardEntry) {
	b.refs--
	if b.refs > 0 {
		return
	}
	delete(s.boards, b.shareID)
	b.stopFeed()

	s.teardowns.Add(1)
	go func() {
		defer s.teardowns.Done()
		<-b.feedDone
		b.dispatcher.Wait()
		b.store.Close()
		s.logger.Info("board closed", slog.String("share_id", b.shareID))
	}()
}

func (s *RetroService) session(id string) (*sessionEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("session %q: %w", id, domain.ErrNotFound)
	}
	return e, nil
}

// View returns the current derived board view.
func (s *RetroService) View(_ context.Context, sessionID string) (*ports.BoardView, error) {
	e, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}
	return e.sess.View(), nil
}

// Close ends the session.
func (s *RetroService) Close(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	e, ok := s.sessions[sessionID]
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("session %q: %w", sessionID, domain.ErrNotFound)
	}
	delete(s.sessions, sessionID)
	e.sess.Close()
	e.unsubscribe()
	s.releaseBoard(e.board)
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "session closed",
		slog.String("session_id", sessionID),
		slog.String("share_id", e.board.shareID),
	)
	return nil
}

// Search sets the search text.
func (s *RetroService) Search(_ context.Context, sessionID, text string) (*ports.BoardView, error) {
	e, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}
	e.sess.Search(text)
	return e.sess.View(), nil
}

// ToggleSort flips sorting by votes.
func (s *RetroService) ToggleSort(_ context.Context, sessionID string) (*ports.BoardView, error) {
	e, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}
	e.sess.ToggleSort()
	return e.sess.View(), nil
}

// ToggleColumn flips the visibility of a column's cards.
func (s *RetroService) ToggleColumn(_ context.Context, sessionID, columnID string) (*ports.BoardView, error) {
	e, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}
	if err := e.sess.ToggleColumn(columnID); err != nil {
		return nil, err
	}
	return e.sess.View(), nil
}

// AddColumn issues an add-column command.
func (s *RetroService) AddColumn(ctx context.Context, sessionID, name, icon string) error {
	e, err := s.session(sessionID)
	if err != nil {
		return err
	}
	return e.sess.AddColumn(ctx, name, icon)
}

// AddCard issues an add-card command.
func (s *RetroService) AddCard(ctx context.Context, sessionID, columnID, text string) error {
	e, err := s.session(sessionID)
	if err != nil {
		return err
	}
	return e.sess.AddCard(ctx, columnID, text)
}

// StartDrag records the drag source.
func (s *RetroService) StartDrag(_ context.Context, sessionID, cardID string) (*ports.BoardView, error) {
	e, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}
	if err := e.sess.StartDrag(cardID); err != nil {
		return nil, err
	}
	return e.sess.View(), nil
}

// DropOnColumn drops the dragged card on a column.
func (s *RetroService) DropOnColumn(ctx context.Context, sessionID, columnID string) (*ports.BoardView, error) {
	e, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}
	if err := e.sess.DropOnColumn(ctx, columnID); err != nil {
		return nil, err
	}
	return e.sess.View(), nil
}

// DropOnCard drops the dragged card on another card.
func (s *RetroService) DropOnCard(_ context.Context, sessionID, cardID string) (*ports.BoardView, error) {
	e, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}
	if err := e.sess.DropOnCard(cardID); err != nil {
		return nil, err
	}
	return e.sess.View(), nil
}

// ConfirmJoin merges the dragged card into the target card.
func (s *RetroService) ConfirmJoin(ctx context.Context, sessionID string) (*ports.BoardView, error) {
	e, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}
	if err := e.sess.ConfirmJoin(ctx); err != nil {
		return nil, err
	}
	return e.sess.View(), nil
}

// CancelJoin closes the join dialog.
func (s *RetroService) CancelJoin(_ context.Context, sessionID string) (*ports.BoardView, error) {
	e, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}
	e.sess.CancelJoin()
	return e.sess.View(), nil
}

// Messages drains the session's notifications.
func (s *RetroService) Messages(_ context.Context, sessionID string) ([]ports.Message, error) {
	e, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}
	return e.inbox.Drain(), nil
}

// Moderator returns the moderator panel.
func (s *RetroService) Moderator(_ context.Context, sessionID string) (*ports.ModeratorView, error) {
	e, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}
	return e.sess.Moderator()
}

// NextStep advances the board one step.
func (s *RetroService) NextStep(ctx context.Context, sessionID string) (bool, error) {
	e, err := s.session(sessionID)
	if err != nil {
		return false, err
	}
	return e.sess.NextStep(ctx)
}

// PreviousStep moves the board back one step.
func (s *RetroService) PreviousStep(ctx context.Context, sessionID string) (bool, error) {
	e, err := s.session(sessionID)
	if err != nil {
		return false, err
	}
	return e.sess.PreviousStep(ctx)
}

// ExportRows returns the visible cards as a single-column table.
func (s *RetroService) ExportRows(_ context.Context, sessionID string) ([][]string, error) {
	e, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}
	return e.sess.ExportRows()
}

// Sessions returns the number of open sessions.
func (s *RetroService) Sessions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Shutdown closes every session, stops all feeds and waits for in-flight
// commands to resolve or ctx to end. Open fails once Shutdown has started.
func (s *RetroService) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	s.closing = true
	for id, e := range s.sessions {
		delete(s.sessions, id)
		e.sess.Close()
		e.unsubscribe()
		s.releaseBoard(e.board)
	}
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		s.teardowns.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("waiting for boards to close: %w", ctx.Err())
	}
}
