package board

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/jsamuelsen11/retro-board/internal/domain/query"
	"github.com/jsamuelsen11/retro-board/internal/domain/retro"
	"github.com/jsamuelsen11/retro-board/internal/domain/step"
	"github.com/jsamuelsen11/retro-board/internal/platform/telemetry"
	"github.com/jsamuelsen11/retro-board/internal/ports"
)

// DefaultCommandTimeout bounds an upstream command when none is configured.
const DefaultCommandTimeout = 15 * time.Second

// Dispatcher runs commands for one board. Commands are issued through a
// Handle bound to the session that owns them: every Handle method marks its
// command family pending for that session before returning and resolves it
// in the background; the caller never waits for the upstream round trip.
type Dispatcher struct {
	store   *Store
	channel ports.RetroChannel
	timeout time.Duration
	metrics *telemetry.Metrics
	logger  *slog.Logger

	wg sync.WaitGroup
}

// NewDispatcher wires a Dispatcher to store and channel. A nil metrics
// disables command metrics.
func NewDispatcher(store *Store, channel ports.RetroChannel, timeout time.Duration, metrics *telemetry.Metrics, logger *slog.Logger) *Dispatcher {
	if timeout <= 0 {
		timeout = DefaultCommandTimeout
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Dispatcher{
		store:   store,
		channel: channel,
		timeout: timeout,
		metrics: metrics,
		logger:  logger,
	}
}

// Handle issues commands on behalf of one store subscriber. Board changes
// are shared; the statuses of the commands are recorded for owner alone.
type Handle struct {
	d     *Dispatcher
	owner string
}

// For returns the Handle that records command statuses under owner.
func (d *Dispatcher) For(owner string) Handle {
	return Handle{d: d, owner: owner}
}

// Join registers userID on the board and replaces the board contents with
// the joined state.
func (h Handle) Join(ctx context.Context, userID string) {
	shareID := h.d.store.ShareID()
	h.dispatch(ctx, "join_retro", []query.Family{query.FamilyJoinRetro}, func(ctx context.Context) (mutation, error) {
		r, err := h.d.channel.JoinRetro(ctx, shareID, userID)
		if err != nil {
			return nil, err
		}
		return func(cur *retro.Retro) {
			*cur = r.Clone()
			if cur.ShareID == "" {
				cur.ShareID = shareID
			}
		}, nil
	})
}

// AddColumn creates a column.
func (h Handle) AddColumn(ctx context.Context, col retro.Column) {
	shareID := h.d.store.ShareID()
	h.dispatch(ctx, "add_column", []query.Family{query.FamilyAddColumn}, func(ctx context.Context) (mutation, error) {
		created, err := h.d.channel.AddColumn(ctx, shareID, col)
		if err != nil {
			return nil, err
		}
		return func(cur *retro.Retro) { cur.AddColumn(*created) }, nil
	})
}

// AddCard creates a card in columnID.
func (h Handle) AddCard(ctx context.Context, columnID, text string) {
	shareID := h.d.store.ShareID()
	h.dispatch(ctx, "add_card", []query.Family{query.FamilyAddCard}, func(ctx context.Context) (mutation, error) {
		card, err := h.d.channel.AddCard(ctx, shareID, columnID, text)
		if err != nil {
			return nil, err
		}
		return func(cur *retro.Retro) { cur.UpsertCard(*card) }, nil
	})
}

// EditCard applies a partial card update.
func (h Handle) EditCard(ctx context.Context, edit retro.CardEdit) {
	h.dispatch(ctx, "edit_card", []query.Family{query.FamilyEditCard}, h.d.edit(edit))
}

// Merge removes removeID and then applies edit, in that order. The edit is
// only sent once the removal succeeded; a failed removal fails both
// families.
func (h Handle) Merge(ctx context.Context, removeID string, edit retro.CardEdit) {
	shareID := h.d.store.ShareID()
	families := []query.Family{query.FamilyRemoveCard, query.FamilyEditCard}
	h.dispatch(ctx, "merge_cards", families, func(ctx context.Context) (mutation, error) {
		if err := h.d.channel.RemoveCard(ctx, shareID, removeID); err != nil {
			return nil, err
		}
		apply, err := h.d.edit(edit)(ctx)
		if err != nil {
			return func(cur *retro.Retro) { cur.RemoveCard(removeID) },
				&familyError{family: query.FamilyEditCard, err: err}
		}
		return func(cur *retro.Retro) {
			cur.RemoveCard(removeID)
			apply(cur)
		}, nil
	})
}

// RemoveCard deletes a card.
func (h Handle) RemoveCard(ctx context.Context, cardID string) {
	shareID := h.d.store.ShareID()
	h.dispatch(ctx, "remove_card", []query.Family{query.FamilyRemoveCard}, func(ctx context.Context) (mutation, error) {
		if err := h.d.channel.RemoveCard(ctx, shareID, cardID); err != nil {
			return nil, err
		}
		return func(cur *retro.Retro) { cur.RemoveCard(cardID) }, nil
	})
}

// ChangeStep moves the board to key.
func (h Handle) ChangeStep(ctx context.Context, key step.Key) {
	shareID := h.d.store.ShareID()
	h.dispatch(ctx, "change_step", []query.Family{query.FamilyChangeStep}, func(ctx context.Context) (mutation, error) {
		if err := h.d.channel.ChangeStep(ctx, shareID, key); err != nil {
			return nil, err
		}
		return func(cur *retro.Retro) { cur.Step = key }, nil
	})
}

// Wait blocks until every dispatched command has resolved.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

// mutation folds a command result into the board.
type mutation func(cur *retro.Retro)

// familyError pins a failure to one family of a multi-family command.
type familyError struct {
	family query.Family
	err    error
}

func (e *familyError) Error() string { return e.err.Error() }

func (e *familyError) Unwrap() error { return e.err }

func (d *Dispatcher) edit(edit retro.CardEdit) func(context.Context) (mutation, error) {
	shareID := d.store.ShareID()
	return func(ctx context.Context) (mutation, error) {
		card, err := d.channel.EditCard(ctx, shareID, edit)
		if err != nil {
			return nil, err
		}
		return func(cur *retro.Retro) { cur.UpsertCard(*card) }, nil
	}
}

// dispatch marks families pending for the handle's owner now and runs call
// on its own goroutine with a context detached from the caller. The result
// lands in the store as a single snapshot: the mutation (if any) plus the
// owner's resolved statuses.
func (h Handle) dispatch(ctx context.Context, name string, families []query.Family, call func(context.Context) (mutation, error)) {
	d := h.d
	d.store.UpdateFor(h.owner, func(_ *retro.Retro, qs query.Set) {
		for _, f := range families {
			qs[f] = query.Pending()
		}
	})

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()

		start := time.Now()
		cctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), d.timeout)
		defer cancel()

		apply, err := call(cctx)
		d.metrics.RecordCommand(cctx, name, start, err)
		if err != nil {
			d.logger.WarnContext(cctx, "board command failed",
				slog.String("operation", name),
				slog.String("share_id", d.store.ShareID()),
				slog.String("session_id", h.owner),
				slog.Any("error", err),
			)
		}

		d.store.UpdateFor(h.owner, func(cur *retro.Retro, qs query.Set) {
			if apply != nil {
				apply(cur)
			}
			for _, f := range families {
				qs[f] = resolve(f, err)
			}
		})
	}()
}

func resolve(f query.Family, err error) query.Query {
	if err == nil {
		return query.Success()
	}
	var fe *familyError
	if errors.As(err, &fe) && fe.family != f {
		return query.Success()
	}
	return query.Failure(err.Error())
}
