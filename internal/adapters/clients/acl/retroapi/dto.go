// Package retroapi holds the upstream retro API's wire types and their
// translation to and from the board domain. The same retro document is
// returned by the join endpoint and published on the board feed.
package retroapi

// CardDTO matches the upstream card schema.
type CardDTO struct {
	ID       string   `json:"id"`
	ColumnID string   `json:"columnId"`
	Text     string   `json:"text"`
	Votes    []string `json:"votes"`
}

// ColumnDTO matches the upstream column schema.
type ColumnDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon,omitempty"`
}

// UserDTO matches the upstream user schema.
type UserDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// RetroDTO is the full board document.
type RetroDTO struct {
	ShareID       string             `json:"shareId"`
	Name          string             `json:"name"`
	Columns       []ColumnDTO        `json:"columns"`
	Cards         []CardDTO          `json:"cards"`
	Users         map[string]UserDTO `json:"users"`
	Step          string             `json:"step"`
	ScrumMasterID string             `json:"scrumMasterId"`
	VoteLimit     int                `json:"voteLimit"`
}

// JoinRequestDTO registers a participant on a board.
type JoinRequestDTO struct {
	UserID string `json:"userId"`
}

// AddCardRequestDTO creates a card.
type AddCardRequestDTO struct {
	ColumnID string `json:"columnId"`
	Text     string `json:"text"`
}

// EditCardRequestDTO is a partial card update. Nil fields are omitted and
// left unchanged upstream.
type EditCardRequestDTO struct {
	Text     *string `json:"text,omitempty"`
	ColumnID *string `json:"columnId,omitempty"`
}

// AddColumnRequestDTO creates a column.
type AddColumnRequestDTO struct {
	Name string `json:"name"`
	Icon string `json:"icon,omitempty"`
}

// ChangeStepRequestDTO moves the board to another step.
type ChangeStepRequestDTO struct {
	Step string `json:"step"`
}
