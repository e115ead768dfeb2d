package customer

import "time"

// Customer owns one or more accounts. Accounts are attached during
// onboarding and never reassigned.
type Customer struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	CreatedAt time.Time `json:"created_at"`
}
