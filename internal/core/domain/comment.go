package domain

import "time"

// Comment is attached to a news post. Author is the commenting user's
// username, stamped server-side. PostID is a denormalized reference: deleting
// a post does not cascade to its comments.
type Comment struct {
	ID        string    `json:"id"`
	PostID    string    `json:"postId"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// CanDeleteComment reports whether the given actor may delete c: the comment's
// own author, or any admin-level role.
func CanDeleteComment(c *Comment, username, role string) bool {
	return c.Author == username || IsAdmin(role)
}
