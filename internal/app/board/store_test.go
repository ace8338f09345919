package board

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/jsamuelsen11/retro-board/internal/domain/query"
	"github.com/jsamuelsen11/retro-board/internal/domain/retro"
	"github.com/jsamuelsen11/retro-board/internal/domain/step"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// recorder collects every snapshot it observes.
type recorder struct {
	mu    sync.Mutex
	snaps []Snapshot
}

func (r *recorder) Observe(_ context.Context, snap Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snaps = append(r.snaps, snap)
}

func (r *recorder) versions() []uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]uint64, 0, len(r.snaps))
	for _, s := range r.snaps {
		out = append(out, s.Version)
	}
	return out
}

func (r *recorder) last() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.snaps) == 0 {
		return Snapshot{}
	}
	return r.snaps[len(r.snaps)-1]
}

// subscribe registers sub as is and returns its baseline.
func subscribe(s *Store, id string, sub Subscriber) (Snapshot, func()) {
	var baseline Snapshot
	unsubscribe := s.Subscribe(id, func(b Snapshot) Subscriber {
		baseline = b
		return sub
	})
	return baseline, unsubscribe
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore("retro-1", 4, nil)
	t.Cleanup(s.Close)
	return s
}

func TestStore_InitialSnapshot(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	snap := s.Snapshot()

	if snap.Version != 0 {
		t.Errorf("Version = %d, want 0", snap.Version)
	}
	if snap.Retro.ShareID != "retro-1" {
		t.Errorf("ShareID = %q, want retro-1", snap.Retro.ShareID)
	}
	if snap.Query(query.FamilyJoinRetro).State() != query.StatusIdle {
		t.Errorf("join_retro = %v, want idle", snap.Query(query.FamilyJoinRetro))
	}
}

func TestStore_DeliversEveryVersionInOrder(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	rec := &recorder{}
	base, unsubscribe := subscribe(s, "a", rec)
	defer unsubscribe()

	for range 20 {
		s.SetQuery(query.FamilyConnect, query.Pending())
	}

	require.Eventually(t, func() bool { return len(rec.versions()) == 20 }, time.Second, 5*time.Millisecond)

	for i, v := range rec.versions() {
		if want := base.Version + uint64(i) + 1; v != want {
			t.Fatalf("delivery %d has version %d, want %d", i, v, want)
		}
	}
}

func TestStore_SnapshotsAreIsolated(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	s.BoardUpdated(context.Background(), retro.Retro{
		Cards: []retro.Card{{ID: "a", ColumnID: "c1", Text: "x"}},
	})
	before := s.Snapshot()

	s.Update(func(r *retro.Retro, _ query.Set) {
		r.Cards[0].Text = "changed"
	})

	if before.Retro.Cards[0].Text != "x" {
		t.Errorf("earlier snapshot changed to %q", before.Retro.Cards[0].Text)
	}
	if got := s.Snapshot().Retro.Cards[0].Text; got != "changed" {
		t.Errorf("current text = %q, want changed", got)
	}
}

func TestStore_FeedHandler(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	ctx := context.Background()

	s.ConnectionChanged(ctx, query.Pending())
	s.ConnectionChanged(ctx, query.Success())
	s.BoardUpdated(ctx, retro.Retro{Name: "Sprint 9", Step: step.Vote})

	snap := s.Snapshot()
	if snap.Query(query.FamilyConnect).State() != query.StatusSuccess {
		t.Errorf("connect = %v, want success", snap.Query(query.FamilyConnect))
	}
	if snap.Retro.Name != "Sprint 9" || snap.Retro.Step != step.Vote {
		t.Errorf("retro = %+v, want pushed board", snap.Retro)
	}
	if snap.Retro.ShareID != "retro-1" {
		t.Errorf("ShareID = %q, want it filled from the store", snap.Retro.ShareID)
	}
	if snap.Version != 3 {
		t.Errorf("Version = %d, want 3", snap.Version)
	}
	if snap.Connects != 1 {
		t.Errorf("Connects = %d, want 1", snap.Connects)
	}
}

func TestStore_Unsubscribe(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	rec := &recorder{}
	_, unsubscribe := subscribe(s, "a", rec)
	if s.Subscribers() != 1 {
		t.Fatalf("Subscribers() = %d, want 1", s.Subscribers())
	}

	s.SetQuery(query.FamilyConnect, query.Pending())
	require.Eventually(t, func() bool { return len(rec.versions()) == 1 }, time.Second, 5*time.Millisecond)

	unsubscribe()
	if s.Subscribers() != 0 {
		t.Fatalf("Subscribers() = %d, want 0", s.Subscribers())
	}

	s.SetQuery(query.FamilyConnect, query.Success())
	other := &recorder{}
	_, unsub2 := subscribe(s, "b", other)
	defer unsub2()
	s.SetQuery(query.FamilyConnect, query.Failure("x"))

	require.Eventually(t, func() bool { return other.last().Version == 3 }, time.Second, 5*time.Millisecond)
	if n := len(rec.versions()); n != 1 {
		t.Errorf("unsubscribed recorder got %d snapshots, want 1", n)
	}
}

func TestStore_CloseIsIdempotent(t *testing.T) {
	t.Parallel()

	s := NewStore("retro-2", 1, nil)
	s.Close()
	s.Close()

	// Updates after close are kept but never delivered.
	s.SetQuery(query.FamilyConnect, query.Pending())
	if s.Snapshot().Version != 1 {
		t.Errorf("Version = %d, want 1", s.Snapshot().Version)
	}
}

// reentrant mutates the store from inside Observe, the way a session's
// re-join does.
type reentrant struct {
	store *Store
	once  sync.Once
	rec   recorder
}

func (r *reentrant) Observe(ctx context.Context, snap Snapshot) {
	r.rec.Observe(ctx, snap)
	r.once.Do(func() {
		r.store.UpdateFor("a", func(_ *retro.Retro, q query.Set) {
			q[query.FamilyJoinRetro] = query.Pending()
		})
	})
}

func TestStore_ObserveMayUpdate(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	sub := &reentrant{store: s}
	_, unsubscribe := subscribe(s, "a", sub)
	defer unsubscribe()

	s.SetQuery(query.FamilyConnect, query.Success())

	require.Eventually(t, func() bool { return len(sub.rec.versions()) == 2 }, time.Second, 5*time.Millisecond)
	if got := sub.rec.last().QueryFor("a", query.FamilyJoinRetro).State(); got != query.StatusPending {
		t.Errorf("join_retro = %v, want pending", got)
	}
}

func TestStore_ConnectsCountsSuccesses(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	ctx := context.Background()
	for _, q := range []query.Query{
		query.Pending(), query.Success(),
		query.Failure("dropped"), query.Pending(), query.Success(),
	} {
		s.ConnectionChanged(ctx, q)
	}

	if got := s.Snapshot().Connects; got != 2 {
		t.Errorf("Connects = %d, want 2", got)
	}
}

func TestStore_OwnedQueries(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	_, unsubA := subscribe(s, "a", &recorder{})
	_, unsubB := subscribe(s, "b", &recorder{})
	defer unsubB()

	s.ConnectionChanged(context.Background(), query.Success())
	s.UpdateFor("a", func(_ *retro.Retro, q query.Set) {
		q[query.FamilyAddCard] = query.Failure("card rejected")
	})
	s.UpdateFor("b", func(_ *retro.Retro, q query.Set) {
		q[query.FamilyJoinRetro] = query.Success()
	})

	snap := s.Snapshot()
	tests := []struct {
		owner string
		f     query.Family
		want  query.Status
	}{
		{owner: "a", f: query.FamilyAddCard, want: query.StatusFailure},
		{owner: "a", f: query.FamilyJoinRetro, want: query.StatusIdle},
		{owner: "a", f: query.FamilyConnect, want: query.StatusSuccess},
		{owner: "b", f: query.FamilyAddCard, want: query.StatusIdle},
		{owner: "b", f: query.FamilyJoinRetro, want: query.StatusSuccess},
		{owner: "b", f: query.FamilyConnect, want: query.StatusSuccess},
	}
	for _, tt := range tests {
		if got := snap.QueryFor(tt.owner, tt.f).State(); got != tt.want {
			t.Errorf("QueryFor(%s, %s) = %v, want %v", tt.owner, tt.f, got, tt.want)
		}
	}
	if got := snap.QueriesFor("a"); len(got) != 2 {
		t.Errorf("QueriesFor(a) = %v, want add_card and connect", got)
	}

	unsubA()
	if _, ok := s.Snapshot().Owned["a"]; ok {
		t.Error("statuses of an unsubscribed owner are still held")
	}
	if _, ok := snap.Owned["a"]; !ok {
		t.Error("unsubscribe changed an earlier snapshot")
	}
}

// gate blocks in Observe until released.
type gate struct {
	release chan struct{}
	rec     recorder
}

func (g *gate) Observe(ctx context.Context, snap Snapshot) {
	<-g.release
	g.rec.Observe(ctx, snap)
}

func TestStore_SubscribeSkipsQueuedSnapshots(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	slow := &gate{release: make(chan struct{})}
	_, unsubSlow := subscribe(s, "slow", slow)
	defer unsubSlow()

	// The publisher stalls on version 1 while 2 and 3 queue up.
	for range 3 {
		s.SetQuery(query.FamilyConnect, query.Pending())
	}

	late := &recorder{}
	base, unsubLate := subscribe(s, "late", late)
	defer unsubLate()
	if base.Version != 3 {
		t.Fatalf("baseline version = %d, want 3", base.Version)
	}

	close(slow.release)
	s.SetQuery(query.FamilyConnect, query.Success())

	require.Eventually(t, func() bool { return len(slow.rec.versions()) == 4 }, time.Second, 5*time.Millisecond)
	require.Eventually(t, func() bool { return len(late.versions()) == 1 }, time.Second, 5*time.Millisecond)
	if got := late.versions(); got[0] != 4 {
		t.Errorf("late subscriber got versions %v, want [4]", got)
	}
}
