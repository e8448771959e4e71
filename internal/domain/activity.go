package domain

// Activity is a point-in-time snapshot of one enrollable activity. The
// Participants slice is a copy owned by the caller; mutating it does not
// affect the store.
type Activity struct {
	Name            string
	Description     string
	Schedule        string
	MaxParticipants int
	Participants    []string
}

// SpotsLeft reports the remaining capacity. It is recomputed on demand and
// never stored.
func (a Activity) SpotsLeft() int {
	return a.MaxParticipants - len(a.Participants)
}
