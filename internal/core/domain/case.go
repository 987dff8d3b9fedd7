package domain

import "time"

// Case is the top-level investigative matter. A case owns its customers and
// investigations; deleting a case removes all of them.
type Case struct {
	ID                 int64     `json:"id"`
	Name               string    `json:"name"`
	Description        string    `json:"description"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
	CustomerCount      int64     `json:"customer_count"`
	InvestigationCount int64     `json:"investigation_count"`
}

// Customer is a client record scoped to exactly one case.
type Customer struct {
	ID        int64     `json:"id"`
	CaseID    int64     `json:"case_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DefaultStatus is applied to cases, investigations and targets created
// without an explicit status. Status is a free-form string; observed values
// are open, in_progress, closed and on_hold, but no closed set is enforced.
const DefaultStatus = "open"
