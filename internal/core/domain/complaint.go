package domain

import "time"

// Complaint kinds, as submitted by the public form.
const (
	KindComplaint  = "queja"
	KindSuggestion = "sugerencia"
)

// Complaint statuses. The only transition is pendiente → resuelto, performed
// by an admin reply. There is no reverse transition.
const (
	StatusPending  = "pendiente"
	StatusResolved = "resuelto"
)

// ComplaintSuggestion is a mailbox entry with an optional admin response.
type ComplaintSuggestion struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Kind      string    `json:"type"`
	Message   string    `json:"message"`
	Response  string    `json:"response"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// ValidKind reports whether k is an accepted submission kind.
func ValidKind(k string) bool {
	return k == KindComplaint || k == KindSuggestion
}
