package retroapi

import (
	"github.com/jsamuelsen11/retro-board/internal/domain/retro"
	"github.com/jsamuelsen11/retro-board/internal/domain/step"
)

// ToDomainCard converts an upstream card.
func ToDomainCard(dto *CardDTO) retro.Card {
	var votes []string
	if len(dto.Votes) > 0 {
		votes = append(votes, dto.Votes...)
	}
	return retro.Card{
		ID:       dto.ID,
		ColumnID: dto.ColumnID,
		Text:     dto.Text,
		Votes:    votes,
	}
}

// ToDomainColumn converts an upstream column.
func ToDomainColumn(dto *ColumnDTO) retro.Column {
	return retro.Column{ID: dto.ID, Name: dto.Name, Icon: dto.Icon}
}

// ToDomainRetro converts a full board document. Users are keyed by the
// user's own id; a user entry without an id takes its map key.
func ToDomainRetro(dto *RetroDTO) retro.Retro {
	r := retro.Retro{
		ShareID:       dto.ShareID,
		Name:          dto.Name,
		Columns:       make([]retro.Column, len(dto.Columns)),
		Cards:         make([]retro.Card, len(dto.Cards)),
		Users:         make(map[string]retro.User, len(dto.Users)),
		Step:          step.Key(dto.Step),
		ScrumMasterID: dto.ScrumMasterID,
		VoteLimit:     dto.VoteLimit,
	}
	for i := range dto.Columns {
		r.Columns[i] = ToDomainColumn(&dto.Columns[i])
	}
	for i := range dto.Cards {
		r.Cards[i] = ToDomainCard(&dto.Cards[i])
	}
	for key, u := range dto.Users {
		id := u.ID
		if id == "" {
			id = key
		}
		r.Users[id] = retro.User{ID: id, Name: u.Name}
	}
	return r
}

// FromDomainRetro converts a board back to its wire document.
func FromDomainRetro(r *retro.Retro) RetroDTO {
	dto := RetroDTO{
		ShareID:       r.ShareID,
		Name:          r.Name,
		Columns:       make([]ColumnDTO, len(r.Columns)),
		Cards:         make([]CardDTO, len(r.Cards)),
		Users:         make(map[string]UserDTO, len(r.Users)),
		Step:          r.Step.String(),
		ScrumMasterID: r.ScrumMasterID,
		VoteLimit:     r.VoteLimit,
	}
	for i, c := range r.Columns {
		dto.Columns[i] = ColumnDTO{ID: c.ID, Name: c.Name, Icon: c.Icon}
	}
	for i, c := range r.Cards {
		dto.Cards[i] = CardDTO{ID: c.ID, ColumnID: c.ColumnID, Text: c.Text, Votes: c.Votes}
	}
	for id, u := range r.Users {
		dto.Users[id] = UserDTO{ID: u.ID, Name: u.Name}
	}
	return dto
}

// ToEditCardRequest converts a partial card update.
func ToEditCardRequest(edit retro.CardEdit) EditCardRequestDTO {
	return EditCardRequestDTO{Text: edit.Text, ColumnID: edit.ColumnID}
}

// ToAddColumnRequest converts a new column.
func ToAddColumnRequest(col retro.Column) AddColumnRequestDTO {
	return AddColumnRequestDTO{Name: col.Name, Icon: col.Icon}
}
