package query

// Family identifies a command family. Each family has exactly one Query
// per board.
type Family string

const (
	FamilyConnect    Family = "connect"
	FamilyJoinRetro  Family = "join_retro"
	FamilyAddColumn  Family = "add_column"
	FamilyAddCard    Family = "add_card"
	FamilyEditCard   Family = "edit_card"
	FamilyRemoveCard Family = "remove_card"
	FamilyChangeStep Family = "change_step"
)

// Families lists every known family in a stable order.
var Families = []Family{
	FamilyConnect,
	FamilyJoinRetro,
	FamilyAddColumn,
	FamilyAddCard,
	FamilyEditCard,
	FamilyRemoveCard,
	FamilyChangeStep,
}

// String implements fmt.Stringer.
func (f Family) String() string {
	return string(f)
}

// Set holds the current Query of each family. Missing families are idle.
type Set map[Family]Query

// Get returns the Query for f, idle when none was recorded.
func (s Set) Get(f Family) Query {
	if q, ok := s[f]; ok {
		return q
	}
	return Idle()
}

// Clone returns an independent copy of the set.
func (s Set) Clone() Set {
	out := make(Set, len(s))
	for f, q := range s {
		out[f] = q
	}
	return out
}
