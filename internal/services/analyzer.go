package services

import (
	"resume-analyzer/internal/models"
)

// AnalyzerService runs the full lexical analysis of a resume against a job
// description: match percentage, skills on both sides, missing skills, and
// role suggestions.
type AnalyzerService interface {
	Analyze(resumeText, jobDescription string) *models.AnalysisResponse
}

type analyzerService struct{}

func NewAnalyzerService() AnalyzerService {
	return &analyzerService{}
}

func (a *analyzerService) Analyze(resumeText, jobDescription string) *models.AnalysisResponse {
	// The scorer sees normalized text; skill extraction deliberately reads
	// the raw text, where terms like "c++" still carry their punctuation.
	similarity := TFIDFCosine(Normalize(resumeText), Normalize(jobDescription))

	resumeSkills := ExtractSkills(resumeText)
	jobSkills := ExtractSkills(jobDescription)

	return &models.AnalysisResponse{
		MatchPercentage: MatchPercentage(similarity),
		ResumeSkills:    resumeSkills,
		MissingSkills:   MissingSkills(jobSkills, resumeSkills),
		SuggestedRoles:  SuggestRoles(resumeSkills),
	}
}
