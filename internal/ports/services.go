package ports

import (
	"context"
	"time"

	"github.com/jsamuelsen11/retro-board/internal/domain/query"
	"github.com/jsamuelsen11/retro-board/internal/domain/retro"
	"github.com/jsamuelsen11/retro-board/internal/domain/step"
)

// RetroService defines the service port for viewer sessions on a board.
// Implemented by the application layer; called by inbound adapters (handlers).
// Every method except Open addresses an existing session and returns
// domain.ErrNotFound when the session is unknown.
//
// Commands (AddColumn, AddCard, step changes and the edits issued by drops
// and joins) are fire-and-forget: their outcome shows up later as a query
// status in BoardView.Queries, not as an error here.
type RetroService interface {
	// Open creates a session for userID on shareID and issues the initial join.
	Open(ctx context.Context, shareID, userID string) (*BoardView, error)

	// View returns the current derived board view.
	View(ctx context.Context, sessionID string) (*BoardView, error)

	// Close ends the session. The board feed stops with its last session.
	Close(ctx context.Context, sessionID string) error

	// Search sets the search text verbatim.
	Search(ctx context.Context, sessionID, text string) (*BoardView, error)

	// ToggleSort flips sorting by votes.
	ToggleSort(ctx context.Context, sessionID string) (*BoardView, error)

	// ToggleColumn flips whether a column's cards are shown.
	// Returns domain.ErrNotFound if the column does not exist.
	ToggleColumn(ctx context.Context, sessionID, columnID string) (*BoardView, error)

	// AddColumn issues an add-column command.
	// Returns domain.ErrValidation if the name is blank.
	AddColumn(ctx context.Context, sessionID, name, icon string) error

	// AddCard issues an add-card command.
	// Returns domain.ErrNotFound if the column does not exist.
	// Returns domain.ErrValidation if the text is blank.
	AddCard(ctx context.Context, sessionID, columnID, text string) error

	// StartDrag records cardID as the drag source.
	// Returns domain.ErrNotFound if the card does not exist.
	StartDrag(ctx context.Context, sessionID, cardID string) (*BoardView, error)

	// DropOnColumn moves the dragged card to columnID when it differs from
	// the card's column. The drag source is cleared in every case.
	// Returns domain.ErrNotFound if the column does not exist.
	DropOnColumn(ctx context.Context, sessionID, columnID string) (*BoardView, error)

	// DropOnCard opens the join dialog for the dragged card and cardID.
	// Dropping a card on itself or with nothing dragged changes nothing.
	DropOnCard(ctx context.Context, sessionID, cardID string) (*BoardView, error)

	// ConfirmJoin merges the dragged card into the target card.
	// Returns domain.ErrConflict if no join dialog is open.
	ConfirmJoin(ctx context.Context, sessionID string) (*BoardView, error)

	// CancelJoin closes the join dialog without issuing commands.
	CancelJoin(ctx context.Context, sessionID string) (*BoardView, error)

	// Messages drains the session's pending notifications.
	Messages(ctx context.Context, sessionID string) ([]Message, error)

	// Moderator returns the moderator panel.
	// Returns domain.ErrForbidden if the viewer is not the scrum master.
	Moderator(ctx context.Context, sessionID string) (*ModeratorView, error)

	// NextStep issues a change to the following step. It reports false
	// when the board is already on the last step.
	// Returns domain.ErrForbidden if the viewer is not the scrum master.
	NextStep(ctx context.Context, sessionID string) (bool, error)

	// PreviousStep issues a change to the preceding step. It reports false
	// when the board is already on the first step.
	// Returns domain.ErrForbidden if the viewer is not the scrum master.
	PreviousStep(ctx context.Context, sessionID string) (bool, error)

	// ExportRows returns the visible cards as one single-cell row each.
	// Returns domain.ErrForbidden if the viewer is not the scrum master.
	ExportRows(ctx context.Context, sessionID string) ([][]string, error)
}

// Phase is the top-level state of a board view.
type Phase string

const (
	PhaseLoading Phase = "loading"
	PhaseFailed  Phase = "failed"
	PhaseReady   Phase = "ready"
)

// BoardView is everything a renderer needs to draw one viewer's board.
// Labels are message identifiers resolved by the renderer.
type BoardView struct {
	SessionID string
	ShareID   string
	UserID    string
	Version   uint64

	Phase Phase
	Error string

	Name        string
	Step        step.Key
	IsModerator bool

	Search         string
	SearchLabel    string
	SortVotes      bool
	ShowSortToggle bool
	SortLabel      string

	ShowRemainingVotes bool
	RemainingVotes     int

	Columns    []ColumnView
	Users      []UserView
	DraggingID string
	JoinDialog *JoinDialogView
	Queries    query.Set
}

// ColumnView is one column with its filtered, possibly sorted cards.
// Hidden columns carry no cards.
type ColumnView struct {
	ID          string
	Name        string
	Icon        string
	Hidden      bool
	ToggleLabel string
	Cards       []retro.Card
}

// UserView is a present participant with avatar initials.
type UserView struct {
	ID       string
	Name     string
	Initials string
}

// JoinDialogView asks the viewer to confirm merging Dragged into Target.
type JoinDialogView struct {
	Dragged      retro.Card
	Target       retro.Card
	TitleLabel   string
	ConfirmLabel string
	CancelLabel  string
}

// ModeratorView holds the step controls offered to the scrum master.
type ModeratorView struct {
	TitleLabel         string
	Step               step.Key
	HasPrevious        bool
	PreviousLabel      string
	HasNext            bool
	NextLabel          string
	ShowRemainingVotes bool
	RemainingVotes     int
	DownloadLabel      string
	ExportFilename     string
}

// Message is a transient notification surfaced to the viewer.
type Message struct {
	Text      string
	CreatedAt time.Time
}
