package retro

import (
	"strings"

	"github.com/jsamuelsen11/retro-board/internal/domain"
)

// CardEdit describes a partial card update. Nil fields are left unchanged.
type CardEdit struct {
	ID       string
	Text     *string
	ColumnID *string
}

// Validate checks that the edit names a card and changes something.
func (e CardEdit) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(e.ID) == "" {
		fields["id"] = domain.MsgRequired
	}
	if e.Text == nil && e.ColumnID == nil {
		fields["changes"] = "at least one of text or column_id is required"
	}
	if e.ColumnID != nil && strings.TrimSpace(*e.ColumnID) == "" {
		fields["column_id"] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Apply returns c with the edit's non-nil fields written over it.
func (e CardEdit) Apply(c Card) Card {
	if e.Text != nil {
		c.Text = *e.Text
	}
	if e.ColumnID != nil {
		c.ColumnID = *e.ColumnID
	}
	return c
}

// MoveTo builds an edit reassigning card id to columnID.
func MoveTo(id, columnID string) CardEdit {
	return CardEdit{ID: id, ColumnID: &columnID}
}

// Rewrite builds an edit replacing the text of card id.
func Rewrite(id, text string) CardEdit {
	return CardEdit{ID: id, Text: &text}
}

// JoinedText is the text the target card carries after dragged is merged
// into it.
func JoinedText(target, dragged Card) string {
	return target.Text + "\n" + dragged.Text
}

// ValidateNewCard checks the inputs of an add-card command.
func ValidateNewCard(columnID, text string) error {
	fields := make(map[string]string)
	if strings.TrimSpace(columnID) == "" {
		fields["column_id"] = domain.MsgRequired
	}
	if strings.TrimSpace(text) == "" {
		fields["text"] = domain.MsgRequired
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Validate checks the inputs of an add-column command.
func (c Column) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return domain.NewValidationError("name", domain.MsgRequired)
	}
	return nil
}
