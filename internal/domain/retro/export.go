package retro

import "strings"

// ExportRows turns cards into a single-column table, one row per card.
func ExportRows(cards []Card) [][]string {
	rows := make([][]string, 0, len(cards))
	for _, c := range cards {
		rows = append(rows, []string{c.Text})
	}
	return rows
}

// Initials returns the avatar initials for a display name: the first letter
// of the first and last words, upper-cased.
func Initials(name string) string {
	words := strings.Fields(name)
	switch len(words) {
	case 0:
		return ""
	case 1:
		return strings.ToUpper(firstRune(words[0]))
	default:
		return strings.ToUpper(firstRune(words[0]) + firstRune(words[len(words)-1]))
	}
}

func firstRune(s string) string {
	for _, r := range s {
		return string(r)
	}
	return ""
}
