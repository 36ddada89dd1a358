package models

// AnalysisResponse is the result of matching a resume against a job
// description. Skill and role slices are always non-nil so empty sets
// serialize as [] rather than null.
type AnalysisResponse struct {
	MatchPercentage float64  `json:"match_percentage"`
	ResumeSkills    []string `json:"resume_skills"`
	MissingSkills   []string `json:"missing_skills"`
	SuggestedRoles  []string `json:"suggested_roles"`
}
