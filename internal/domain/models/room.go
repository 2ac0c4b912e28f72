package models

import "simaru-admin/internal/domain"

// Room is a bookable space. Price is the canonical display string
// ("Rp. 8.000.000"); the raw amount is recovered by de-formatting.
//
// Category carries the fixture variant's free category name, CategoryID the
// API variant's foreign key. A record uses one or the other depending on
// which source produced it.
type Room struct {
	ID          int64         `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Capacity    int           `json:"capacity"`
	Category    string        `json:"category,omitempty"`
	CategoryID  int64         `json:"categoryId,omitempty"`
	Price       string        `json:"price"`
	Status      domain.Status `json:"status"`
}

// Category is a room category from the API variant's /categories resource.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
