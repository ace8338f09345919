package ports

import (
	"context"

	"github.com/jsamuelsen11/retro-board/internal/domain/query"
	"github.com/jsamuelsen11/retro-board/internal/domain/retro"
	"github.com/jsamuelsen11/retro-board/internal/domain/step"
)

// RetroChannel defines the client port for commands sent to the upstream
// retro server. Implemented by the ACL adapter; called by the board
// dispatcher. Every method maps 1:1 to an upstream endpoint.
type RetroChannel interface {
	// JoinRetro registers userID on the board and returns its full state.
	// Returns domain.ErrNotFound if the board does not exist.
	JoinRetro(ctx context.Context, shareID, userID string) (*retro.Retro, error)

	// AddColumn creates a column and returns it with its server-assigned id.
	AddColumn(ctx context.Context, shareID string, col retro.Column) (*retro.Column, error)

	// AddCard creates a card in columnID and returns the created card.
	// Returns domain.ErrNotFound if the column does not exist upstream.
	AddCard(ctx context.Context, shareID, columnID, text string) (*retro.Card, error)

	// EditCard applies a partial update and returns the updated card.
	// Returns domain.ErrNotFound if the card does not exist.
	EditCard(ctx context.Context, shareID string, edit retro.CardEdit) (*retro.Card, error)

	// RemoveCard deletes a card.
	// Returns domain.ErrNotFound if the card does not exist.
	RemoveCard(ctx context.Context, shareID, cardID string) error

	// ChangeStep moves the board to the given step.
	ChangeStep(ctx context.Context, shareID string, key step.Key) error
}

// FeedHandler receives events from a BoardFeed.
type FeedHandler interface {
	// ConnectionChanged reports the lifecycle of the feed subscription.
	ConnectionChanged(ctx context.Context, q query.Query)

	// BoardUpdated delivers a full board snapshot pushed by the server.
	BoardUpdated(ctx context.Context, r retro.Retro)
}

// BoardFeed streams board snapshots for a share id.
type BoardFeed interface {
	// Follow subscribes to shareID and forwards events to h until ctx is
	// cancelled. It reconnects on its own after the subscription drops.
	Follow(ctx context.Context, shareID string, h FeedHandler) error
}

// MessageSink collects transient notifications for a viewer.
type MessageSink interface {
	AddMessage(ctx context.Context, text string)
}
