// Package models defines the client-side record shapes that are not owned by
// a record store collection: notifications, conversation messages, document
// submissions and dashboard announcements.
package models

import "time"

// Notification is one advisory in the in-memory feed. Never persisted; the
// feed empties on restart.
type Notification struct {
	ID      string    `json:"id"`
	Message string    `json:"message"`
	Date    time.Time `json:"date"`
}

// Message is one entry of a conversation log kept in the local key-value
// store under the counterpart's key.
type Message struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Sender    string    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
}

// Document is one required permit on the documents checklist. SubmittedAt and
// StorageKey are zero until the stallholder submits an image.
type Document struct {
	Name        string     `json:"name"`
	SubmittedAt *time.Time `json:"submitted_at,omitempty"`
	StorageKey  string     `json:"storage_key,omitempty"`
}

// Announcement is one rotating dashboard bulletin.
type Announcement struct {
	ID    string
	Title string
	Body  string
}
