package dtos

import "github.com/justsurfingit/jobjournal/internal/models"

// AIAnalysisRequest carries the job the client wants analyzed. The client
// sends the full job snapshot rather than an id, matching the original API.
type AIAnalysisRequest struct {
	Job JobSnapshot `json:"job" binding:"required"`
}

type JobSnapshot struct {
	Jobtitle    string             `json:"jobtitle"`
	Company     string             `json:"company"`
	Location    string             `json:"location"`
	Jobtype     string             `json:"jobtype"`
	Salary      string             `json:"salary"`
	Description string             `json:"description"`
	Review      string             `json:"review"`
	RoundStatus models.RoundStatus `json:"roundStatus"`
}
