package dtos

type ReviewCreationRequest struct {
	Company string `json:"company" binding:"required"`
	Review  string `json:"review"`
	Rating  int    `json:"rating"`
	Salary  string `json:"salary"`
	// ordered round labels, no per-round status
	Rounds []string `json:"rounds"`
	Role   string   `json:"role"`
}
