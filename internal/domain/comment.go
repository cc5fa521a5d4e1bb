package domain

import "time"

// Comment is an append-only note on a ticket. Comments are never edited
// or deleted and are ordered by creation time.
type Comment struct {
	ID        int64     `json:"id"`
	Content   string    `json:"content"`
	Author    Identity  `json:"author"`
	TicketID  int64     `json:"ticketId"`
	CreatedAt time.Time `json:"createdAt"`
}
