package dtos

import "github.com/justsurfingit/jobjournal/internal/models"

type JobCreationRequest struct {
	Jobtitle    string `json:"jobtitle" binding:"required"`
	Company     string `json:"company" binding:"required"`
	Description string `json:"description"`

	// Optional Fields
	Location string `json:"location"`
	Jobtype  string `json:"jobtype"` // full-time/part-time/intern/other
	Salary   string `json:"salary"`
	Date     string `json:"date"` // YYYY-MM-DD
	Review   string `json:"review"`
	// initial round names, every one starts incomplete
	Rounds []string `json:"rounds"`
}

// JobUpdateRequest covers both mutation paths of PATCH /jobs.
// Round+Status together select the single-round toggle (per-key merge);
// otherwise the pointer fields form a sparse patch where nil means
// "leave unchanged". RoundStatus, when present, replaces the whole map.
type JobUpdateRequest struct {
	JobID uint `json:"jobId" binding:"required"`

	Round  *string `json:"round"`
	Status *int    `json:"status"`

	Jobtitle    *string             `json:"jobtitle"`
	Company     *string             `json:"company"`
	Salary      *string             `json:"salary"`
	Location    *string             `json:"location"`
	Description *string             `json:"description"`
	Review      *string             `json:"review"`
	RoundStatus *models.RoundStatus `json:"roundStatus"`
}

type JobDeleteRequest struct {
	JobID uint `json:"jobId" binding:"required"`
}
