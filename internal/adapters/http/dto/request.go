package dto

import (
	"strings"

	"github.com/jsamuelsen11/retro-board/internal/domain"
)

// OpenSessionRequest represents the JSON body for opening a viewer session.
type OpenSessionRequest struct {
	UserID string `json:"user_id"`
}

// Validate checks that the user id is present.
// Returns a *domain.ValidationError if any checks fail.
func (r *OpenSessionRequest) Validate() error {
	if strings.TrimSpace(r.UserID) == "" {
		return domain.NewValidationError("user_id", domain.MsgRequired)
	}
	return nil
}

// SearchRequest represents the JSON body for setting the search text.
// An empty query clears the search; a missing one is rejected.
type SearchRequest struct {
	Query *string `json:"query"`
}

// Validate checks that the query field was sent.
func (r *SearchRequest) Validate() error {
	if r.Query == nil {
		return domain.NewValidationError("query", domain.MsgRequired)
	}
	return nil
}

// AddColumnRequest represents the JSON body for adding a column.
type AddColumnRequest struct {
	Name string `json:"name"`
	Icon string `json:"icon,omitempty"`
}

// Validate checks that the column name is present.
func (r *AddColumnRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return domain.NewValidationError("name", domain.MsgRequired)
	}
	return nil
}

// AddCardRequest represents the JSON body for adding a card to a column.
type AddCardRequest struct {
	Text string `json:"text"`
}

// Validate checks that the card text is present.
func (r *AddCardRequest) Validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return domain.NewValidationError("text", domain.MsgRequired)
	}
	return nil
}

// DragRequest represents the JSON body for starting a drag.
type DragRequest struct {
	CardID string `json:"card_id"`
}

// Validate checks that the dragged card id is present.
func (r *DragRequest) Validate() error {
	if strings.TrimSpace(r.CardID) == "" {
		return domain.NewValidationError("card_id", domain.MsgRequired)
	}
	return nil
}
