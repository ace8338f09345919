package session

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/jsamuelsen11/retro-board/internal/app/board"
	"github.com/jsamuelsen11/retro-board/internal/domain"
	"github.com/jsamuelsen11/retro-board/internal/domain/query"
	"github.com/jsamuelsen11/retro-board/internal/domain/retro"
	"github.com/jsamuelsen11/retro-board/internal/domain/step"
	"github.com/jsamuelsen11/retro-board/internal/ports"
)

// localState is a copy of the session's interaction state taken under the
// mutex.
type localState struct {
	search    string
	sortVotes bool
	hidden    map[string]bool
	dragging  *retro.Card
	target    *retro.Card
}

func (s *Session) local() localState {
	s.mu.Lock()
	defer s.mu.Unlock()
	hidden := make(map[string]bool, len(s.hidden))
	for id := range s.hidden {
		hidden[id] = true
	}
	return localState{
		search:    s.search,
		sortVotes: s.sortVotes,
		hidden:    hidden,
		dragging:  s.dragging,
		target:    s.target,
	}
}

// PhaseOf maps the join query to the top-level view phase.
func PhaseOf(join query.Query) ports.Phase {
	switch join.State() {
	case query.StatusSuccess:
		return ports.PhaseReady
	case query.StatusFailure:
		return ports.PhaseFailed
	default:
		return ports.PhaseLoading
	}
}

// View derives the board view from the current snapshot and local state.
// Outside the ready phase only the phase, error and queries are filled.
func (s *Session) View() *ports.BoardView {
	snap := s.source.Snapshot()
	st := s.local()
	r := snap.Retro

	v := &ports.BoardView{
		SessionID: s.id,
		ShareID:   r.ShareID,
		UserID:    s.userID,
		Version:   snap.Version,
		Phase:     PhaseOf(snap.QueryFor(s.id, query.FamilyJoinRetro)),
		Queries:   snap.QueriesFor(s.id),
	}
	switch v.Phase {
	case ports.PhaseFailed:
		v.Error = snap.QueryFor(s.id, query.FamilyJoinRetro).Error
		return v
	case ports.PhaseLoading:
		return v
	}

	voting := step.AllowsVoting(r.Step)
	v.Name = r.Name
	v.Step = r.Step
	v.IsModerator = r.IsScrumMaster(s.userID)
	v.Search = st.search
	v.SearchLabel = retro.LabelSearch
	v.SortVotes = st.sortVotes
	v.ShowSortToggle = voting
	v.SortLabel = retro.LabelSortVotes
	v.ShowRemainingVotes = voting
	if voting {
		v.RemainingVotes = r.RemainingVotes(s.userID)
	}
	v.Columns = columnViews(r, st)
	v.Users = userViews(r.Users)

	if st.dragging != nil {
		v.DraggingID = st.dragging.ID
	}
	if st.dragging != nil && st.target != nil {
		v.JoinDialog = &ports.JoinDialogView{
			Dragged:      latest(r, *st.dragging),
			Target:       latest(r, *st.target),
			TitleLabel:   retro.LabelJoinCards,
			ConfirmLabel: retro.LabelJoinCardsConfirm,
			CancelLabel:  retro.LabelJoinCardsCancel,
		}
	}
	return v
}

func columnViews(r retro.Retro, st localState) []ports.ColumnView {
	out := make([]ports.ColumnView, 0, len(r.Columns))
	for _, col := range r.Columns {
		cv := ports.ColumnView{
			ID:          col.ID,
			Name:        col.Name,
			Icon:        col.Icon,
			Hidden:      st.hidden[col.ID],
			ToggleLabel: retro.LabelToggleCardsVisible,
			Cards:       []retro.Card{},
		}
		if !cv.Hidden {
			cv.Cards = retro.VisibleCards(r.Cards, filterFor(col.ID, st))
		}
		out = append(out, cv)
	}
	return out
}

func filterFor(columnID string, st localState) retro.Filter {
	return retro.Filter{ColumnID: columnID, Search: st.search, SortVotes: st.sortVotes}
}

func userViews(users map[string]retro.User) []ports.UserView {
	out := make([]ports.UserView, 0, len(users))
	for _, u := range users {
		out = append(out, ports.UserView{ID: u.ID, Name: u.Name, Initials: retro.Initials(u.Name)})
	}
	slices.SortFunc(out, func(a, b ports.UserView) int {
		return cmp.Or(cmp.Compare(a.Name, b.Name), cmp.Compare(a.ID, b.ID))
	})
	return out
}

// moderated returns the current snapshot if the viewer moderates the board.
func (s *Session) moderated() (board.Snapshot, error) {
	snap := s.source.Snapshot()
	if !snap.Retro.IsScrumMaster(s.userID) {
		return board.Snapshot{}, fmt.Errorf("user %q is not the scrum master: %w", s.userID, domain.ErrForbidden)
	}
	return snap, nil
}

// Moderator derives the moderator panel.
func (s *Session) Moderator() (*ports.ModeratorView, error) {
	snap, err := s.moderated()
	if err != nil {
		return nil, err
	}
	r := snap.Retro
	v := &ports.ModeratorView{
		TitleLabel:         retro.LabelModeratorPanel,
		Step:               r.Step,
		HasPrevious:        s.steps.HasPrevious(r.Step),
		PreviousLabel:      retro.LabelPreviousStep,
		HasNext:            s.steps.HasNext(r.Step),
		NextLabel:          retro.LabelNextStep,
		ShowRemainingVotes: step.AllowsVoting(r.Step),
		DownloadLabel:      retro.LabelDownloadActions,
		ExportFilename:     retro.ExportFilename,
	}
	if v.ShowRemainingVotes {
		v.RemainingVotes = r.RemainingVotes(s.userID)
	}
	return v, nil
}

// NextStep issues a change to the following step. It reports false, and
// issues nothing, on the last step.
func (s *Session) NextStep(ctx context.Context) (bool, error) {
	return s.changeStep(ctx, s.steps.Next)
}

// PreviousStep issues a change to the preceding step. It reports false,
// and issues nothing, on the first step.
func (s *Session) PreviousStep(ctx context.Context) (bool, error) {
	return s.changeStep(ctx, s.steps.Previous)
}

func (s *Session) changeStep(ctx context.Context, move func(step.Key) (step.Key, bool)) (bool, error) {
	snap, err := s.moderated()
	if err != nil {
		return false, err
	}
	key, ok := move(snap.Retro.Step)
	if !ok {
		return false, nil
	}
	s.logger.InfoContext(ctx, "changing step",
		slog.String("from", snap.Retro.Step.String()),
		slog.String("to", key.String()),
	)
	s.cmds.ChangeStep(ctx, key)
	return true, nil
}

// ExportRows returns the cards currently visible to the viewer, in column
// order, as one single-cell row each. Hidden columns are left out.
func (s *Session) ExportRows() ([][]string, error) {
	snap, err := s.moderated()
	if err != nil {
		return nil, err
	}
	st := s.local()

	var cards []retro.Card
	for _, col := range snap.Retro.Columns {
		if st.hidden[col.ID] {
			continue
		}
		cards = append(cards, retro.VisibleCards(snap.Retro.Cards, filterFor(col.ID, st))...)
	}
	return retro.ExportRows(cards), nil
}
