package session

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jsamuelsen11/retro-board/internal/app/board"
	"github.com/jsamuelsen11/retro-board/internal/app/notify"
	"github.com/jsamuelsen11/retro-board/internal/domain"
	"github.com/jsamuelsen11/retro-board/internal/domain/query"
	"github.com/jsamuelsen11/retro-board/internal/domain/retro"
	"github.com/jsamuelsen11/retro-board/internal/domain/step"
	"github.com/jsamuelsen11/retro-board/internal/ports"
)

// fakeSource serves whatever snapshot the test sets.
type fakeSource struct {
	mu   sync.Mutex
	snap board.Snapshot
}

func (f *fakeSource) Snapshot() board.Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snap
}

func (f *fakeSource) set(snap board.Snapshot) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.snap = snap
}

// recorder captures issued commands as readable strings.
type recorder struct {
	mu    sync.Mutex
	calls []string
	edits []retro.CardEdit
}

func (r *recorder) record(call string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, call)
}

func (r *recorder) Join(_ context.Context, userID string) { r.record("join " + userID) }

func (r *recorder) AddColumn(_ context.Context, col retro.Column) {
	r.record("add_column " + col.Name)
}

func (r *recorder) AddCard(_ context.Context, columnID, text string) {
	r.record("add_card " + columnID + " " + text)
}

func (r *recorder) EditCard(_ context.Context, edit retro.CardEdit) {
	r.mu.Lock()
	r.edits = append(r.edits, edit)
	r.mu.Unlock()
	r.record("edit " + edit.ID)
}

func (r *recorder) Merge(_ context.Context, removeID string, edit retro.CardEdit) {
	r.mu.Lock()
	r.edits = append(r.edits, edit)
	r.mu.Unlock()
	r.record("merge " + removeID + " into " + edit.ID)
}

func (r *recorder) ChangeStep(_ context.Context, key step.Key) {
	r.record("change_step " + key.String())
}

func (r *recorder) got() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string{}, r.calls...)
}

func testBoard() retro.Retro {
	return retro.Retro{
		ShareID: "retro-1",
		Name:    "Sprint 12",
		Columns: []retro.Column{
			{ID: "c1", Name: "Went well", Icon: "thumb_up"},
			{ID: "c2", Name: "To improve", Icon: "build"},
		},
		Cards: []retro.Card{
			{ID: "a", ColumnID: "c1", Text: "foo"},
			{ID: "b", ColumnID: "c1", Text: "bar", Votes: []string{"u1", "u2"}},
			{ID: "c", ColumnID: "c2", Text: "slow builds", Votes: []string{"u1"}},
		},
		Users: map[string]retro.User{
			"u1": {ID: "u1", Name: "Ada Lovelace"},
			"u2": {ID: "u2", Name: "grace"},
		},
		Step:          step.Brainstorm,
		ScrumMasterID: "u1",
		VoteLimit:     3,
	}
}

const testSessionID = "s1"

// snapshot builds a board snapshot with connect in the board-wide set and
// every other family in qs owned by the fixture's session.
func snapshot(version uint64, r retro.Retro, qs query.Set) board.Snapshot {
	snap := board.Snapshot{
		Version: version,
		Retro:   r,
		Queries: query.Set{},
		Owned:   map[string]query.Set{testSessionID: {}},
	}
	for f, q := range qs {
		if f == query.FamilyConnect {
			snap.Queries[f] = q
			continue
		}
		snap.Owned[testSessionID][f] = q
	}
	return snap
}

func joined(version uint64, r retro.Retro) board.Snapshot {
	return snapshot(version, r, query.Set{query.FamilyJoinRetro: query.Success()})
}

type fixture struct {
	source *fakeSource
	cmds   *recorder
	inbox  *notify.Inbox
	sess   *Session
}

func newFixture(t *testing.T, userID string, snap board.Snapshot) *fixture {
	t.Helper()
	f := &fixture{
		source: &fakeSource{snap: snap},
		cmds:   &recorder{},
		inbox:  notify.NewInbox(8),
	}
	f.sess = New(testSessionID, userID, snap, f.source, f.cmds, f.inbox, nil)
	return f
}

func messageTexts(msgs []ports.Message) []string {
	out := []string{}
	for _, m := range msgs {
		out = append(out, m.Text)
	}
	return out
}

func TestSession_StartJoins(t *testing.T) {
	t.Parallel()

	f := newFixture(t, "u2", board.Snapshot{})
	f.sess.Start(context.Background())

	if diff := cmp.Diff([]string{"join u2"}, f.cmds.got()); diff != "" {
		t.Errorf("commands mismatch (-want +got):\n%s", diff)
	}
}

func TestSession_ObserveEffects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		prev         query.Set
		next         query.Set
		prevConnects int
		nextConnects int
		wantCalls    []string
		wantMessages []string
	}{
		{
			name:         "add card failure is reported",
			prev:         query.Set{query.FamilyAddCard: query.Pending()},
			next:         query.Set{query.FamilyAddCard: query.Failure("card too long")},
			wantCalls:    []string{},
			wantMessages: []string{"card too long"},
		},
		{
			name:         "add column failure is reported",
			prev:         query.Set{},
			next:         query.Set{query.FamilyAddColumn: query.Failure("duplicate column")},
			wantCalls:    []string{},
			wantMessages: []string{"duplicate column"},
		},
		{
			name:         "repeated failure is not reported again",
			prev:         query.Set{query.FamilyAddCard: query.Failure("card too long")},
			next:         query.Set{query.FamilyAddCard: query.Failure("card too long")},
			wantCalls:    []string{},
			wantMessages: []string{},
		},
		{
			name:         "edit failure is not a notification",
			prev:         query.Set{},
			next:         query.Set{query.FamilyEditCard: query.Failure("gone")},
			wantCalls:    []string{},
			wantMessages: []string{},
		},
		{
			name:         "first connect does not re-join",
			prev:         query.Set{query.FamilyConnect: query.Pending()},
			next:         query.Set{query.FamilyConnect: query.Success()},
			nextConnects: 1,
			wantCalls:    []string{},
			wantMessages: []string{},
		},
		{
			name:         "reconnect success re-joins",
			prev:         query.Set{query.FamilyConnect: query.Pending()},
			next:         query.Set{query.FamilyConnect: query.Success()},
			prevConnects: 1,
			nextConnects: 2,
			wantCalls:    []string{"join u2"},
			wantMessages: []string{},
		},
		{
			name:         "stable connect does not re-join",
			prev:         query.Set{query.FamilyConnect: query.Success()},
			next:         query.Set{query.FamilyConnect: query.Success()},
			prevConnects: 2,
			nextConnects: 2,
			wantCalls:    []string{},
			wantMessages: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			prev := snapshot(4, retro.Retro{}, tt.prev)
			prev.Connects = tt.prevConnects
			next := snapshot(5, retro.Retro{}, tt.next)
			next.Connects = tt.nextConnects

			f := newFixture(t, "u2", prev)
			f.sess.Observe(context.Background(), next)

			if diff := cmp.Diff(tt.wantCalls, f.cmds.got()); diff != "" {
				t.Errorf("commands mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantMessages, messageTexts(f.inbox.Drain())); diff != "" {
				t.Errorf("messages mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSession_ObserveIgnoresStaleAndClosed(t *testing.T) {
	t.Parallel()

	f := newFixture(t, "u2", board.Snapshot{Version: 4, Connects: 1})
	reconnect := func(version uint64) board.Snapshot {
		snap := snapshot(version, retro.Retro{}, query.Set{query.FamilyConnect: query.Success()})
		snap.Connects = 2
		return snap
	}

	f.sess.Observe(context.Background(), reconnect(3))
	f.sess.Observe(context.Background(), reconnect(4))
	if got := f.cmds.got(); len(got) != 0 {
		t.Fatalf("stale snapshots issued %v", got)
	}

	f.sess.Close()
	f.sess.Observe(context.Background(), reconnect(5))
	if got := f.cmds.got(); len(got) != 0 {
		t.Fatalf("closed session issued %v", got)
	}
}

func TestSession_ObserveEachTransitionOnce(t *testing.T) {
	t.Parallel()

	f := newFixture(t, "u2", board.Snapshot{})
	ctx := context.Background()
	seq := []query.Query{query.Pending(), query.Failure("a"), query.Failure("a"), query.Pending(), query.Failure("b")}
	for i, q := range seq {
		f.sess.Observe(ctx, snapshot(uint64(i+1), retro.Retro{}, query.Set{query.FamilyAddCard: q}))
	}

	if diff := cmp.Diff([]string{"a", "b"}, messageTexts(f.inbox.Drain())); diff != "" {
		t.Errorf("messages mismatch (-want +got):\n%s", diff)
	}
}

func TestSession_IgnoresOtherSessionsQueries(t *testing.T) {
	t.Parallel()

	f := newFixture(t, "u2", joined(1, testBoard()))
	ctx := context.Background()

	next := joined(2, testBoard())
	next.Owned["s2"] = query.Set{
		query.FamilyJoinRetro: query.Failure("user banned"),
		query.FamilyAddCard:   query.Failure("card rejected"),
	}
	f.source.set(next)
	f.sess.Observe(ctx, next)

	if msgs := f.inbox.Drain(); len(msgs) != 0 {
		t.Errorf("messages = %v, want none from another session", messageTexts(msgs))
	}
	v := f.sess.View()
	if v.Phase != ports.PhaseReady {
		t.Errorf("Phase = %q, want ready", v.Phase)
	}
	if q := v.Queries.Get(query.FamilyAddCard); q.State() != query.StatusIdle {
		t.Errorf("add_card = %+v, want idle", q)
	}
}

func TestSession_CardJoin(t *testing.T) {
	t.Parallel()

	f := newFixture(t, "u2", joined(1, testBoard()))
	ctx := context.Background()

	if err := f.sess.StartDrag("a"); err != nil {
		t.Fatalf("StartDrag() error = %v", err)
	}
	if err := f.sess.DropOnCard("b"); err != nil {
		t.Fatalf("DropOnCard() error = %v", err)
	}

	v := f.sess.View()
	if v.JoinDialog == nil {
		t.Fatal("JoinDialog = nil, want open dialog")
	}
	if v.JoinDialog.Dragged.ID != "a" || v.JoinDialog.Target.ID != "b" {
		t.Errorf("dialog holds %s onto %s, want a onto b", v.JoinDialog.Dragged.ID, v.JoinDialog.Target.ID)
	}
	if v.JoinDialog.TitleLabel != retro.LabelJoinCards {
		t.Errorf("TitleLabel = %q", v.JoinDialog.TitleLabel)
	}

	if err := f.sess.ConfirmJoin(ctx); err != nil {
		t.Fatalf("ConfirmJoin() error = %v", err)
	}

	if diff := cmp.Diff([]string{"merge a into b"}, f.cmds.got()); diff != "" {
		t.Errorf("commands mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(retro.Rewrite("b", "bar\nfoo"), f.cmds.edits[0]); diff != "" {
		t.Errorf("edit mismatch (-want +got):\n%s", diff)
	}

	v = f.sess.View()
	if v.JoinDialog != nil || v.DraggingID != "" {
		t.Errorf("after confirm dialog = %v, dragging = %q, want cleared", v.JoinDialog, v.DraggingID)
	}
	if err := f.sess.ConfirmJoin(ctx); !errors.Is(err, domain.ErrConflict) {
		t.Errorf("second ConfirmJoin() error = %v, want ErrConflict", err)
	}
}

func TestSession_CancelJoin(t *testing.T) {
	t.Parallel()

	f := newFixture(t, "u2", joined(1, testBoard()))
	_ = f.sess.StartDrag("a")
	_ = f.sess.DropOnCard("b")
	f.sess.CancelJoin()

	if v := f.sess.View(); v.JoinDialog != nil {
		t.Errorf("JoinDialog = %+v, want nil", v.JoinDialog)
	}
	if got := f.cmds.got(); len(got) != 0 {
		t.Errorf("cancel issued %v", got)
	}
	if err := f.sess.ConfirmJoin(context.Background()); !errors.Is(err, domain.ErrConflict) {
		t.Errorf("ConfirmJoin() error = %v, want ErrConflict", err)
	}
}

func TestSession_DropOnCard(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		drag       string
		drop       string
		wantErr    error
		wantDialog bool
	}{
		{name: "onto other card", drag: "a", drop: "b", wantDialog: true},
		{name: "onto itself", drag: "a", drop: "a"},
		{name: "nothing dragged", drop: "b"},
		{name: "unknown target", drag: "a", drop: "zzz", wantErr: domain.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newFixture(t, "u2", joined(1, testBoard()))
			if tt.drag != "" {
				if err := f.sess.StartDrag(tt.drag); err != nil {
					t.Fatalf("StartDrag() error = %v", err)
				}
			}

			err := f.sess.DropOnCard(tt.drop)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("DropOnCard() error = %v, want %v", err, tt.wantErr)
			}
			if got := f.sess.View().JoinDialog != nil; got != tt.wantDialog {
				t.Errorf("dialog open = %v, want %v", got, tt.wantDialog)
			}
		})
	}
}

func TestSession_DropOnColumn(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		drag      string
		column    string
		wantErr   error
		wantCalls []string
	}{
		{name: "to another column", drag: "a", column: "c2", wantCalls: []string{"edit a"}},
		{name: "to same column", drag: "a", column: "c1", wantCalls: []string{}},
		{name: "nothing dragged", column: "c2", wantCalls: []string{}},
		{name: "unknown column", drag: "a", column: "nope", wantErr: domain.ErrNotFound, wantCalls: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newFixture(t, "u2", joined(1, testBoard()))
			if tt.drag != "" {
				if err := f.sess.StartDrag(tt.drag); err != nil {
					t.Fatalf("StartDrag() error = %v", err)
				}
			}

			err := f.sess.DropOnColumn(context.Background(), tt.column)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("DropOnColumn() error = %v, want %v", err, tt.wantErr)
			}
			if diff := cmp.Diff(tt.wantCalls, f.cmds.got()); diff != "" {
				t.Errorf("commands mismatch (-want +got):\n%s", diff)
			}
			if id := f.sess.View().DraggingID; id != "" {
				t.Errorf("DraggingID = %q, want cleared", id)
			}
		})
	}
}

func TestSession_StartDragUnknownCard(t *testing.T) {
	t.Parallel()

	f := newFixture(t, "u2", joined(1, testBoard()))
	if err := f.sess.StartDrag("nope"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("StartDrag() error = %v, want ErrNotFound", err)
	}
}

func TestSession_AddCommands(t *testing.T) {
	t.Parallel()

	f := newFixture(t, "u2", joined(1, testBoard()))
	ctx := context.Background()

	if err := f.sess.AddCard(ctx, "c1", "ship it"); err != nil {
		t.Fatalf("AddCard() error = %v", err)
	}
	if err := f.sess.AddCard(ctx, "nope", "ship it"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("AddCard(unknown column) error = %v, want ErrNotFound", err)
	}
	if err := f.sess.AddCard(ctx, "c1", "  "); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("AddCard(blank) error = %v, want ErrValidation", err)
	}
	if err := f.sess.AddColumn(ctx, "Ideas", "lightbulb"); err != nil {
		t.Fatalf("AddColumn() error = %v", err)
	}
	if err := f.sess.AddColumn(ctx, "", "x"); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("AddColumn(blank) error = %v, want ErrValidation", err)
	}

	want := []string{"add_card c1 ship it", "add_column Ideas"}
	if diff := cmp.Diff(want, f.cmds.got()); diff != "" {
		t.Errorf("commands mismatch (-want +got):\n%s", diff)
	}
}
