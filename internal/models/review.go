package models

import "time"

// Review is broadcast to live subscribers of a product and never stored.
type Review struct {
	ID        uint64    `json:"id"`
	UserID    uint      `json:"userId"`
	Username  string    `json:"username"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}
