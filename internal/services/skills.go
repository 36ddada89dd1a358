package services

import "strings"

// SkillVocabulary is the closed list of recognized skill terms. Extraction
// results preserve this order, which keeps responses deterministic.
var SkillVocabulary = []string{
	"python", "java", "c++", "html", "css", "javascript",
	"machine learning", "deep learning", "nlp",
	"flask", "django", "react", "node", "sql",
	"mongodb", "aws", "docker",
}

// ExtractSkills returns the vocabulary terms present in text, matched as
// substrings of the lowercased input. Substring matching means "java" also
// fires inside "javascript"; that looseness is intentional and callers
// depend on it.
func ExtractSkills(text string) []string {
	lowered := strings.ToLower(text)

	found := make([]string, 0, len(SkillVocabulary))
	for _, skill := range SkillVocabulary {
		if strings.Contains(lowered, skill) {
			found = append(found, skill)
		}
	}
	return found
}

// MissingSkills returns the job-description skills absent from the resume,
// in job-description order.
func MissingSkills(jobSkills, resumeSkills []string) []string {
	have := make(map[string]bool, len(resumeSkills))
	for _, skill := range resumeSkills {
		have[skill] = true
	}

	missing := make([]string, 0, len(jobSkills))
	for _, skill := range jobSkills {
		if !have[skill] {
			missing = append(missing, skill)
		}
	}
	return missing
}
