package entity

import (
	"github.com/google/uuid"
)

type User struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}

type Exercise struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Description string
	Duration    int
	// Date is the normalized calendar-date string, e.g. "Sun Jan 15 2023".
	// DateKey holds the same date in sortable YYYY-MM-DD form and exists
	// only for range filtering and ordering in the store.
	Date    string
	DateKey string
}

type LogEntry struct {
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}
