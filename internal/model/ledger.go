package model

import "time"

// Account is a user-owned money account. Balance is mutated only through
// atomic increments in the repository layer.
type Account struct {
	ID        string
	UserID    string
	Name      string
	Type      string
	Balance   float64
	Currency  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Record is a single bookkeeping entry. Records created by the scheduled
// task executor carry IsAutomatic = true.
type Record struct {
	ID          string
	UserID      string
	AccountID   string
	Type        TaskType
	Amount      float64
	Category    string
	Description string
	Date        time.Time
	IsAutomatic bool
	CreatedAt   time.Time
}

// Budget caps spending for one category in one month. Unique per
// (UserID, Category, Month).
type Budget struct {
	ID          string
	UserID      string
	Category    string
	Amount      float64
	Month       string // YYYY-MM
	IsRecurring bool
	CreatedAt   time.Time
}
