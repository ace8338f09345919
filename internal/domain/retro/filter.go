package retro

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// MinSearchLength is the shortest search text that filters anything.
// Shorter searches match every card.
const MinSearchLength = 2

// Filter holds the view options applied to a column's cards.
// Zero-value fields mean "no filter" and "no sort".
type Filter struct {
	ColumnID  string
	Search    string
	SortVotes bool
}

// effectiveSearch returns the substring to match, empty when the search is
// too short to apply.
func (f Filter) effectiveSearch() string {
	if utf8.RuneCountInString(f.Search) < MinSearchLength {
		return ""
	}
	return f.Search
}

// Matches reports whether c belongs in the filtered column.
func (f Filter) Matches(c Card) bool {
	if c.ColumnID != f.ColumnID {
		return false
	}
	return strings.Contains(c.Text, f.effectiveSearch())
}

// VisibleCards projects cards onto a single column. The result is a new
// slice; cards is never modified. With SortVotes the result is ordered by
// vote count, highest first, keeping the original order between ties.
func VisibleCards(cards []Card, f Filter) []Card {
	out := make([]Card, 0, len(cards))
	for _, c := range cards {
		if f.Matches(c) {
			out = append(out, c)
		}
	}
	if f.SortVotes {
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].VoteCount() > out[j].VoteCount()
		})
	}
	return out
}
