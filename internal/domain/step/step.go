// Package step defines the ordered phases a retrospective moves through and
// the bounded next/previous transitions between them.
package step

// Key names one phase of a retrospective.
type Key string

const (
	Brainstorm Key = "brainstorm"
	Group      Key = "group"
	Vote       Key = "vote"
	Action     Key = "action"
)

// String implements fmt.Stringer.
func (k Key) String() string {
	return string(k)
}

// Sequence is a fixed ordered list of step keys.
type Sequence []Key

// Default is the four-phase workflow used by every board.
var Default = Sequence{Brainstorm, Group, Vote, Action}

// Index returns the position of k, or -1 when k is not part of the sequence.
func (s Sequence) Index(k Key) int {
	for i, candidate := range s {
		if candidate == k {
			return i
		}
	}
	return -1
}

// Contains reports whether k is part of the sequence.
func (s Sequence) Contains(k Key) bool {
	return s.Index(k) >= 0
}

// Next returns the step after current. The boolean is false when current is
// the last step, in which case no transition exists. An unknown current key
// advances to the first step.
func (s Sequence) Next(current Key) (Key, bool) {
	i := s.Index(current)
	if i+1 >= len(s) {
		return "", false
	}
	return s[i+1], true
}

// Previous returns the step before current. The boolean is false when
// current is the first step or unknown.
func (s Sequence) Previous(current Key) (Key, bool) {
	i := s.Index(current)
	if i <= 0 {
		return "", false
	}
	return s[i-1], true
}

// HasNext reports whether Next would produce a transition.
func (s Sequence) HasNext(current Key) bool {
	_, ok := s.Next(current)
	return ok
}

// HasPrevious reports whether Previous would produce a transition.
func (s Sequence) HasPrevious(current Key) bool {
	_, ok := s.Previous(current)
	return ok
}

// AllowsVoting reports whether the vote-only affordances (remaining votes,
// sort by votes) apply during k.
func AllowsVoting(k Key) bool {
	return k == Vote
}
