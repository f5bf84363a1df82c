package selection

import "prep-service/internal/models"

// Criteria defines what to pull from the question bank when assembling an
// ephemeral test section.
type Criteria struct {
	Topic      string   `json:"topic"`
	Difficulty string   `json:"difficulty"`
	Count      int      `json:"count"`
	ExcludeIDs []string `json:"exclude_ids,omitempty"`
}

// SectionSpec describes one section of a custom test to assemble.
type SectionSpec struct {
	Title      string `json:"title" binding:"required"`
	Topic      string `json:"topic" binding:"required"`
	Difficulty string `json:"difficulty"`
	Count      int    `json:"count" binding:"required,min=1"`
}

// WeightedQuestion pairs a candidate question with its selection weight.
type WeightedQuestion struct {
	Question models.Question `json:"question"`
	Weight   float64         `json:"weight"`
}

// Result contains the selected questions and pool metadata.
type Result struct {
	Questions       []models.Question `json:"questions"`
	TotalCandidates int               `json:"total_candidates"`
}
