package domain

import "time"

// Investigation is a unit of inquiry scoped to one case. It owns targets;
// deleting an investigation removes them.
type Investigation struct {
	ID          int64     `json:"id"`
	CaseID      int64     `json:"case_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	StartDate   *Date     `json:"start_date"`
	EndDate     *Date     `json:"end_date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	TargetCount int64     `json:"target_count"`
}

// Target is an object of investigative interest (system, person, device)
// scoped to one investigation.
type Target struct {
	ID              int64     `json:"id"`
	InvestigationID int64     `json:"investigation_id"`
	Name            string    `json:"name"`
	Type            string    `json:"type"`
	Details         string    `json:"details"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
