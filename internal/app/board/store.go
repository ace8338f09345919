package board

import (
	"context"
	"log/slog"
	"maps"
	"sync"

	"github.com/jsamuelsen11/retro-board/internal/app/fanout"
	"github.com/jsamuelsen11/retro-board/internal/domain/query"
	"github.com/jsamuelsen11/retro-board/internal/domain/retro"
	"github.com/jsamuelsen11/retro-board/internal/ports"
)

var _ ports.FeedHandler = (*Store)(nil)

// Snapshot is an immutable view of the board at one version. Holders must
// not modify the Retro or query sets they receive.
type Snapshot struct {
	Version uint64
	Retro   retro.Retro
	// Queries holds the board-wide statuses: the feed's connect query.
	Queries query.Set
	// Owned holds each subscriber's command statuses by subscriber id.
	Owned map[string]query.Set
	// Connects counts confirmed feed subscriptions. A connect success with
	// Connects above 1 is a reconnect.
	Connects int
}

// Query returns the status of the board-wide family f.
func (s Snapshot) Query(f query.Family) query.Query {
	return s.Queries.Get(f)
}

// QueryFor returns the status of f as seen by owner. Connect is shared by
// the whole board; every other family belongs to the owner that issued it.
func (s Snapshot) QueryFor(owner string, f query.Family) query.Query {
	if f == query.FamilyConnect {
		return s.Queries.Get(f)
	}
	return s.Owned[owner].Get(f)
}

// QueriesFor returns owner's statuses merged with the board-wide ones.
func (s Snapshot) QueriesFor(owner string) query.Set {
	out := s.Owned[owner].Clone()
	maps.Copy(out, s.Queries)
	return out
}

// Subscriber observes snapshots published by a Store.
type Subscriber interface {
	Observe(ctx context.Context, snap Snapshot)
}

// Store owns the board state for one share id. Mutations never block on
// subscribers: each new snapshot is queued and a single publisher goroutine
// delivers the queue in order, fanning each snapshot out to at most
// `workers` subscribers at a time.
type Store struct {
	shareID string
	workers int
	logger  *slog.Logger

	mu    sync.Mutex
	snap  Snapshot
	subs  map[string]subscription
	queue []Snapshot

	wake     chan struct{}
	done     chan struct{}
	stopped  chan struct{}
	stopOnce sync.Once
}

// NewStore creates a Store and starts its publisher. Call Close to stop it.
func NewStore(shareID string, workers int, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Store{
		shareID: shareID,
		workers: max(workers, 1),
		logger:  logger,
		snap: Snapshot{
			Retro:   retro.Retro{ShareID: shareID},
			Queries: query.Set{},
		},
		subs:    make(map[string]subscription),
		wake:    make(chan struct{}, 1),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	go s.publish()
	return s
}

// ShareID returns the board this store tracks.
func (s *Store) ShareID() string {
	return s.shareID
}

// Snapshot returns the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap
}

// subscription is a registered subscriber and the version it joined at.
type subscription struct {
	sub  Subscriber
	from uint64
}

// Subscribe registers the subscriber that attach builds from the current
// snapshot, its baseline. Both happen under the store lock, so no update
// can slip between the baseline and the registration, and snapshots up to
// and including the baseline's version are never delivered to it. attach
// must not call back into the store. Command statuses recorded with
// UpdateFor(id, ...) belong to this subscriber. The returned func removes
// the subscription and its statuses.
func (s *Store) Subscribe(id string, attach func(baseline Snapshot) Subscriber) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs[id] = subscription{sub: attach(s.snap), from: s.snap.Version}
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
		if _, ok := s.snap.Owned[id]; ok {
			owned := maps.Clone(s.snap.Owned)
			delete(owned, id)
			s.snap.Owned = owned
		}
	}
}

// Subscribers returns the number of live subscriptions.
func (s *Store) Subscribers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}

// Update applies fn to a private copy of the board and its board-wide
// statuses, bumps the version and queues the result for delivery.
func (s *Store) Update(fn func(r *retro.Retro, q query.Set)) Snapshot {
	return s.apply(func(next *Snapshot) {
		next.Queries = next.Queries.Clone()
		fn(&next.Retro, next.Queries)
	})
}

// UpdateFor is Update with owner's statuses in place of the board-wide
// ones. Statuses of an owner that is not subscribed are discarded; the
// board change still applies.
func (s *Store) UpdateFor(owner string, fn func(r *retro.Retro, q query.Set)) Snapshot {
	return s.apply(func(next *Snapshot) {
		qs := next.Owned[owner].Clone()
		fn(&next.Retro, qs)
		if _, ok := s.subs[owner]; !ok {
			return
		}
		owned := maps.Clone(next.Owned)
		if owned == nil {
			owned = make(map[string]query.Set, 1)
		}
		owned[owner] = qs
		next.Owned = owned
	})
}

// apply runs fn on the next snapshot under the lock. fn must copy whatever
// it changes other than Retro, which is already a private clone.
func (s *Store) apply(fn func(next *Snapshot)) Snapshot {
	s.mu.Lock()
	next := s.snap
	next.Version++
	next.Retro = s.snap.Retro.Clone()
	fn(&next)
	s.snap = next
	s.queue = append(s.queue, next)
	s.mu.Unlock()

	select {
	case s.wake <- struct{}{}:
	default:
	}
	return next
}

// SetQuery records the status of one command family.
func (s *Store) SetQuery(f query.Family, q query.Query) Snapshot {
	return s.Update(func(_ *retro.Retro, qs query.Set) {
		qs[f] = q
	})
}

// ConnectionChanged records the feed lifecycle as the connect query.
func (s *Store) ConnectionChanged(_ context.Context, q query.Query) {
	s.apply(func(next *Snapshot) {
		next.Queries = next.Queries.Clone()
		next.Queries[query.FamilyConnect] = q
		if q.State() == query.StatusSuccess {
			next.Connects++
		}
	})
}

// BoardUpdated replaces the board contents with a pushed snapshot.
func (s *Store) BoardUpdated(_ context.Context, r retro.Retro) {
	s.Update(func(cur *retro.Retro, _ query.Set) {
		*cur = r.Clone()
		if cur.ShareID == "" {
			cur.ShareID = s.shareID
		}
	})
}

// Close stops the publisher. Queued snapshots not yet delivered are
// dropped. Safe to call more than once.
func (s *Store) Close() {
	s.stopOnce.Do(func() { close(s.done) })
	<-s.stopped
}

func (s *Store) publish() {
	defer close(s.stopped)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		select {
		case <-s.done:
			cancel()
		case <-ctx.Done():
		}
	}()

	for {
		select {
		case <-s.done:
			return
		case <-s.wake:
		}

		for {
			snap, subs, ok := s.next()
			if !ok {
				break
			}
			if skipped := fanout.Each(ctx, s.workers, subs, func(ctx context.Context, sub Subscriber) {
				sub.Observe(ctx, snap)
			}); skipped > 0 {
				s.logger.Debug("snapshot delivery cut short",
					slog.Uint64("version", snap.Version),
					slog.Int("skipped", skipped),
				)
			}
		}
	}
}

// next pops the oldest queued snapshot together with the subscribers it
// goes to.
func (s *Store) next() (Snapshot, []Subscriber, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.queue) == 0 {
		return Snapshot{}, nil, false
	}
	snap := s.queue[0]
	s.queue[0] = Snapshot{}
	s.queue = s.queue[1:]

	subs := make([]Subscriber, 0, len(s.subs))
	for _, sub := range s.subs {
		if snap.Version > sub.from {
			subs = append(subs, sub.sub)
		}
	}
	return snap, subs, true
}
