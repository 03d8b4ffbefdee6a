package domain

import "time"

// ContactMessage is a public contact-form submission. Messages are immutable
// once stored; admins may only read and delete them.
type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}
