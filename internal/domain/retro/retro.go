package retro

import (
	"slices"

	"github.com/jsamuelsen11/retro-board/internal/domain/step"
)

// Card is a single note on the board.
type Card struct {
	ID       string
	ColumnID string
	Text     string
	Votes    []string
}

// VoteCount returns the number of votes cast on the card.
func (c Card) VoteCount() int {
	return len(c.Votes)
}

// Column is a named bucket cards belong to.
type Column struct {
	ID   string
	Name string
	Icon string
}

// User is a participant currently present on the board.
type User struct {
	ID   string
	Name string
}

// Retro is the shared state of one board as last seen by this service.
type Retro struct {
	ShareID       string
	Name          string
	Columns       []Column
	Cards         []Card
	Users         map[string]User
	Step          step.Key
	ScrumMasterID string
	VoteLimit     int
}

// Clone returns a deep copy so snapshots never share backing arrays.
func (r Retro) Clone() Retro {
	out := r
	out.Columns = slices.Clone(r.Columns)
	out.Cards = make([]Card, len(r.Cards))
	for i, c := range r.Cards {
		c.Votes = slices.Clone(c.Votes)
		out.Cards[i] = c
	}
	if r.Users != nil {
		out.Users = make(map[string]User, len(r.Users))
		for id, u := range r.Users {
			out.Users[id] = u
		}
	}
	return out
}

// Card returns the card with the given id.
func (r Retro) Card(id string) (Card, bool) {
	for _, c := range r.Cards {
		if c.ID == id {
			return c, true
		}
	}
	return Card{}, false
}

// Column returns the column with the given id.
func (r Retro) Column(id string) (Column, bool) {
	for _, c := range r.Columns {
		if c.ID == id {
			return c, true
		}
	}
	return Column{}, false
}

// IsScrumMaster reports whether userID moderates the board.
func (r Retro) IsScrumMaster(userID string) bool {
	return userID != "" && r.ScrumMasterID == userID
}

// VotesCastBy counts the votes userID has placed across all cards.
func (r Retro) VotesCastBy(userID string) int {
	var n int
	for _, c := range r.Cards {
		for _, v := range c.Votes {
			if v == userID {
				n++
			}
		}
	}
	return n
}

// RemainingVotes returns how many votes userID may still cast, never below
// zero.
func (r Retro) RemainingVotes(userID string) int {
	return max(r.VoteLimit-r.VotesCastBy(userID), 0)
}

// UpsertCard replaces the card with the same id or appends it.
func (r *Retro) UpsertCard(card Card) {
	for i := range r.Cards {
		if r.Cards[i].ID == card.ID {
			r.Cards[i] = card
			return
		}
	}
	r.Cards = append(r.Cards, card)
}

// RemoveCard drops the card with the given id. It reports whether a card
// was removed.
func (r *Retro) RemoveCard(id string) bool {
	before := len(r.Cards)
	r.Cards = slices.DeleteFunc(r.Cards, func(c Card) bool { return c.ID == id })
	return len(r.Cards) != before
}

// AddColumn appends col unless a column with the same id exists.
func (r *Retro) AddColumn(col Column) {
	if _, ok := r.Column(col.ID); ok {
		return
	}
	r.Columns = append(r.Columns, col)
}
