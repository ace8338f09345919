package session

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jsamuelsen11/retro-board/internal/domain"
	"github.com/jsamuelsen11/retro-board/internal/domain/query"
	"github.com/jsamuelsen11/retro-board/internal/domain/retro"
	"github.com/jsamuelsen11/retro-board/internal/domain/step"
	"github.com/jsamuelsen11/retro-board/internal/ports"
)

func cardIDs(cards []retro.Card) []string {
	out := []string{}
	for _, c := range cards {
		out = append(out, c.ID)
	}
	return out
}

func TestPhaseOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		join query.Query
		want ports.Phase
	}{
		{join: query.Query{}, want: ports.PhaseLoading},
		{join: query.Idle(), want: ports.PhaseLoading},
		{join: query.Pending(), want: ports.PhaseLoading},
		{join: query.Success(), want: ports.PhaseReady},
		{join: query.Failure("boom"), want: ports.PhaseFailed},
	}

	for _, tt := range tests {
		t.Run(string(tt.join.State()), func(t *testing.T) {
			t.Parallel()
			if got := PhaseOf(tt.join); got != tt.want {
				t.Errorf("PhaseOf(%v) = %q, want %q", tt.join, got, tt.want)
			}
		})
	}
}

func TestSession_ViewPhases(t *testing.T) {
	t.Parallel()

	t.Run("loading", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, "u2", snapshot(1, testBoard(), query.Set{query.FamilyJoinRetro: query.Pending()}))
		v := f.sess.View()
		if v.Phase != ports.PhaseLoading || v.Columns != nil {
			t.Errorf("view = %+v, want loading without columns", v)
		}
	})

	t.Run("failed", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, "u2", snapshot(1, retro.Retro{}, query.Set{query.FamilyJoinRetro: query.Failure("retro not found")}))
		v := f.sess.View()
		if v.Phase != ports.PhaseFailed || v.Error != "retro not found" {
			t.Errorf("view = %+v, want failed with error", v)
		}
	})

	t.Run("ready", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, "u2", joined(7, testBoard()))
		v := f.sess.View()
		if v.Phase != ports.PhaseReady {
			t.Fatalf("Phase = %q, want ready", v.Phase)
		}
		if v.SessionID != "s1" || v.UserID != "u2" || v.ShareID != "retro-1" || v.Version != 7 {
			t.Errorf("identity = %s/%s/%s/%d", v.SessionID, v.UserID, v.ShareID, v.Version)
		}
		if v.IsModerator {
			t.Error("IsModerator = true for a regular participant")
		}
		if v.SearchLabel != retro.LabelSearch || v.SortLabel != retro.LabelSortVotes {
			t.Errorf("labels = %q, %q", v.SearchLabel, v.SortLabel)
		}
	})
}

func TestSession_ViewColumns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		search string
		sort   bool
		hide   string
		want   map[string][]string
	}{
		{
			name: "filter order",
			want: map[string][]string{"c1": {"a", "b"}, "c2": {"c"}},
		},
		{
			name: "sorted by votes",
			sort: true,
			want: map[string][]string{"c1": {"b", "a"}, "c2": {"c"}},
		},
		{
			name:   "single character search matches all",
			search: "o",
			want:   map[string][]string{"c1": {"a", "b"}, "c2": {"c"}},
		},
		{
			name:   "search filters",
			search: "ba",
			want:   map[string][]string{"c1": {"b"}, "c2": {}},
		},
		{
			name:   "search is case sensitive",
			search: "Foo",
			want:   map[string][]string{"c1": {}, "c2": {}},
		},
		{
			name: "hidden column has no cards",
			hide: "c1",
			want: map[string][]string{"c1": {}, "c2": {"c"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newFixture(t, "u2", joined(1, testBoard()))
			f.sess.Search(tt.search)
			if tt.sort {
				f.sess.ToggleSort()
			}
			if tt.hide != "" {
				if err := f.sess.ToggleColumn(tt.hide); err != nil {
					t.Fatalf("ToggleColumn() error = %v", err)
				}
			}

			v := f.sess.View()
			got := make(map[string][]string, len(v.Columns))
			for _, col := range v.Columns {
				got[col.ID] = cardIDs(col.Cards)
				if col.Hidden != (col.ID == tt.hide) {
					t.Errorf("column %s Hidden = %v", col.ID, col.Hidden)
				}
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("cards mismatch (-want +got):\n%s", diff)
			}
			if v.Search != tt.search || v.SortVotes != tt.sort {
				t.Errorf("Search = %q, SortVotes = %v", v.Search, v.SortVotes)
			}
		})
	}
}

func TestSession_ToggleColumnTwiceShowsCards(t *testing.T) {
	t.Parallel()

	f := newFixture(t, "u2", joined(1, testBoard()))
	_ = f.sess.ToggleColumn("c2")
	_ = f.sess.ToggleColumn("c2")

	if v := f.sess.View(); v.Columns[1].Hidden || len(v.Columns[1].Cards) != 1 {
		t.Errorf("column c2 = %+v, want visible with one card", v.Columns[1])
	}
	if err := f.sess.ToggleColumn("nope"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("ToggleColumn(unknown) error = %v, want ErrNotFound", err)
	}
}

func TestSession_ViewUsers(t *testing.T) {
	t.Parallel()

	f := newFixture(t, "u2", joined(1, testBoard()))
	want := []ports.UserView{
		{ID: "u1", Name: "Ada Lovelace", Initials: "AL"},
		{ID: "u2", Name: "grace", Initials: "G"},
	}
	if diff := cmp.Diff(want, f.sess.View().Users); diff != "" {
		t.Errorf("users mismatch (-want +got):\n%s", diff)
	}
}

func TestSession_ViewVotingAffordances(t *testing.T) {
	t.Parallel()

	for _, key := range step.Default {
		t.Run(key.String(), func(t *testing.T) {
			t.Parallel()

			r := testBoard()
			r.Step = key
			f := newFixture(t, "u1", joined(1, r))
			v := f.sess.View()

			voting := key == step.Vote
			if v.ShowSortToggle != voting || v.ShowRemainingVotes != voting {
				t.Errorf("ShowSortToggle = %v, ShowRemainingVotes = %v, want %v", v.ShowSortToggle, v.ShowRemainingVotes, voting)
			}
			if voting && v.RemainingVotes != 1 {
				t.Errorf("RemainingVotes = %d, want 1", v.RemainingVotes)
			}
		})
	}
}

func TestSession_Moderator(t *testing.T) {
	t.Parallel()

	tests := []struct {
		step         step.Key
		wantPrevious bool
		wantNext     bool
	}{
		{step: step.Brainstorm, wantNext: true},
		{step: step.Group, wantPrevious: true, wantNext: true},
		{step: step.Vote, wantPrevious: true, wantNext: true},
		{step: step.Action, wantPrevious: true},
		{step: step.Key("unknown"), wantNext: true},
	}

	for _, tt := range tests {
		t.Run(tt.step.String(), func(t *testing.T) {
			t.Parallel()

			r := testBoard()
			r.Step = tt.step
			f := newFixture(t, "u1", joined(1, r))

			v, err := f.sess.Moderator()
			if err != nil {
				t.Fatalf("Moderator() error = %v", err)
			}
			if v.HasPrevious != tt.wantPrevious || v.HasNext != tt.wantNext {
				t.Errorf("HasPrevious = %v, HasNext = %v, want %v, %v", v.HasPrevious, v.HasNext, tt.wantPrevious, tt.wantNext)
			}
			if v.ExportFilename != "action-points.csv" || v.DownloadLabel != retro.LabelDownloadActions {
				t.Errorf("export = %q, %q", v.ExportFilename, v.DownloadLabel)
			}
		})
	}
}

func TestSession_ModeratorOnly(t *testing.T) {
	t.Parallel()

	f := newFixture(t, "u2", joined(1, testBoard()))
	ctx := context.Background()

	if _, err := f.sess.Moderator(); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("Moderator() error = %v, want ErrForbidden", err)
	}
	if _, err := f.sess.NextStep(ctx); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("NextStep() error = %v, want ErrForbidden", err)
	}
	if _, err := f.sess.PreviousStep(ctx); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("PreviousStep() error = %v, want ErrForbidden", err)
	}
	if _, err := f.sess.ExportRows(); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("ExportRows() error = %v, want ErrForbidden", err)
	}
	if got := f.cmds.got(); len(got) != 0 {
		t.Errorf("forbidden calls issued %v", got)
	}
}

func TestSession_StepChanges(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		from      step.Key
		next      bool
		wantOK    bool
		wantCalls []string
	}{
		{name: "next from brainstorm", from: step.Brainstorm, next: true, wantOK: true, wantCalls: []string{"change_step group"}},
		{name: "next on last", from: step.Action, next: true, wantCalls: []string{}},
		{name: "previous from vote", from: step.Vote, wantOK: true, wantCalls: []string{"change_step group"}},
		{name: "previous on first", from: step.Brainstorm, wantCalls: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := testBoard()
			r.Step = tt.from
			f := newFixture(t, "u1", joined(1, r))

			move := f.sess.PreviousStep
			if tt.next {
				move = f.sess.NextStep
			}
			ok, err := move(context.Background())
			if err != nil {
				t.Fatalf("error = %v", err)
			}
			if ok != tt.wantOK {
				t.Errorf("ok = %v, want %v", ok, tt.wantOK)
			}
			if diff := cmp.Diff(tt.wantCalls, f.cmds.got()); diff != "" {
				t.Errorf("commands mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSession_ExportRows(t *testing.T) {
	t.Parallel()

	f := newFixture(t, "u1", joined(1, testBoard()))

	rows, err := f.sess.ExportRows()
	if err != nil {
		t.Fatalf("ExportRows() error = %v", err)
	}
	want := [][]string{{"foo"}, {"bar"}, {"slow builds"}}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}

	f.sess.ToggleSort()
	_ = f.sess.ToggleColumn("c2")
	rows, err = f.sess.ExportRows()
	if err != nil {
		t.Fatalf("ExportRows() error = %v", err)
	}
	if diff := cmp.Diff([][]string{{"bar"}, {"foo"}}, rows); diff != "" {
		t.Errorf("rows after sort and hide mismatch (-want +got):\n%s", diff)
	}
}
