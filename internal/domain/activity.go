package domain

// Activity is a named extracurricular offering with its participant roster.
// Participants hold email addresses in signup order, each at most once.
type Activity struct {
	Name            string
	Description     string
	Schedule        string
	MaxParticipants int
	Participants    []string
}

// IsRegistered reports whether email is currently on the roster.
func (a Activity) IsRegistered(email string) bool {
	for _, participant := range a.Participants {
		if participant == email {
			return true
		}
	}
	return false
}

// Clone returns a copy whose participant slice does not alias the receiver's.
func (a Activity) Clone() Activity {
	out := a
	out.Participants = make([]string, len(a.Participants))
	copy(out.Participants, a.Participants)
	return out
}
