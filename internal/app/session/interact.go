package session

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/retro-board/internal/domain"
	"github.com/jsamuelsen11/retro-board/internal/domain/retro"
)

// Search stores the search text verbatim.
func (s *Session) Search(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.search = text
}

// ToggleSort flips sorting by votes.
func (s *Session) ToggleSort() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sortVotes = !s.sortVotes
}

// ToggleColumn flips whether columnID's cards are shown.
func (s *Session) ToggleColumn(columnID string) error {
	if _, ok := s.source.Snapshot().Retro.Column(columnID); !ok {
		return fmt.Errorf("column %q: %w", columnID, domain.ErrNotFound)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.hidden[columnID] {
		delete(s.hidden, columnID)
	} else {
		s.hidden[columnID] = true
	}
	return nil
}

// AddColumn issues an add-column command.
func (s *Session) AddColumn(ctx context.Context, name, icon string) error {
	col := retro.Column{Name: name, Icon: icon}
	if err := col.Validate(); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "adding column", slog.String("name", name))
	s.cmds.AddColumn(ctx, col)
	return nil
}

// AddCard issues an add-card command for an existing column.
func (s *Session) AddCard(ctx context.Context, columnID, text string) error {
	if err := retro.ValidateNewCard(columnID, text); err != nil {
		return err
	}
	if _, ok := s.source.Snapshot().Retro.Column(columnID); !ok {
		return fmt.Errorf("column %q: %w", columnID, domain.ErrNotFound)
	}
	s.logger.InfoContext(ctx, "adding card", slog.String("column_id", columnID))
	s.cmds.AddCard(ctx, columnID, text)
	return nil
}

// StartDrag records cardID as the drag source.
func (s *Session) StartDrag(cardID string) error {
	card, ok := s.source.Snapshot().Retro.Card(cardID)
	if !ok {
		return fmt.Errorf("card %q: %w", cardID, domain.ErrNotFound)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dragging = &card
	return nil
}

// DropOnColumn moves the dragged card to columnID when that is not already
// its column. The drag source is cleared in every case, including when
// columnID is unknown.
func (s *Session) DropOnColumn(ctx context.Context, columnID string) error {
	s.mu.Lock()
	dragged := s.dragging
	s.dragging = nil
	s.mu.Unlock()

	snap := s.source.Snapshot()
	if _, ok := snap.Retro.Column(columnID); !ok {
		return fmt.Errorf("column %q: %w", columnID, domain.ErrNotFound)
	}
	if dragged == nil {
		return nil
	}

	card := latest(snap.Retro, *dragged)
	if card.ColumnID == columnID {
		return nil
	}
	s.logger.InfoContext(ctx, "moving card",
		slog.String("card_id", card.ID),
		slog.String("column_id", columnID),
	)
	s.cmds.EditCard(ctx, retro.MoveTo(card.ID, columnID))
	return nil
}

// DropOnCard opens the join dialog for the dragged card and cardID.
// Nothing happens without a drag source or when a card is dropped on
// itself.
func (s *Session) DropOnCard(cardID string) error {
	target, ok := s.source.Snapshot().Retro.Card(cardID)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.dragging == nil || s.dragging.ID == cardID {
		return nil
	}
	if !ok {
		return fmt.Errorf("card %q: %w", cardID, domain.ErrNotFound)
	}
	s.target = &target
	return nil
}

// ConfirmJoin removes the dragged card and appends its text to the target
// card, then clears the dialog and the drag source.
func (s *Session) ConfirmJoin(ctx context.Context) error {
	s.mu.Lock()
	dragged, target := s.dragging, s.target
	if target == nil || dragged == nil {
		s.mu.Unlock()
		return fmt.Errorf("no card join in progress: %w", domain.ErrConflict)
	}
	s.dragging, s.target = nil, nil
	s.mu.Unlock()

	r := s.source.Snapshot().Retro
	d, t := latest(r, *dragged), latest(r, *target)
	s.logger.InfoContext(ctx, "joining cards",
		slog.String("card_id", t.ID),
		slog.String("removed_card_id", d.ID),
	)
	s.cmds.Merge(ctx, d.ID, retro.Rewrite(t.ID, retro.JoinedText(t, d)))
	return nil
}

// CancelJoin closes the join dialog without issuing commands.
func (s *Session) CancelJoin() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.target = nil
}

// latest returns the board's current copy of c, or c itself once the card
// is gone from the board.
func latest(r retro.Retro, c retro.Card) retro.Card {
	if cur, ok := r.Card(c.ID); ok {
		return cur
	}
	return c
}
