package domain

import "time"

// DefaultNewsImageURL is used when a post is created without an image.
const DefaultNewsImageURL = "https://placehold.co/600x400/E0E7FF/4338CA?text=Noticia"

// NewsPost is a published news article. Content is rendered HTML produced by
// the admin panel's rich-text editor; ImageURL may be a regular URL or an
// inline base64 data URI.
type NewsPost struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Author     string    `json:"author"`
	FontFamily string    `json:"fontFamily"`
	ImageURL   string    `json:"imageUrl"`
	CreatedAt  time.Time `json:"createdAt"`
}
