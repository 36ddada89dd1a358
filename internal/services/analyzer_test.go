package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeIdenticalTexts(t *testing.T) {
	analyzer := NewAnalyzerService()
	text := "Python developer with Flask experience"

	result := analyzer.Analyze(text, text)

	assert.Equal(t, 100.0, result.MatchPercentage)
	assert.Equal(t, []string{"python", "flask"}, result.ResumeSkills)
	assert.Equal(t, []string{}, result.MissingSkills)
	assert.Equal(t, []string{"Python Developer"}, result.SuggestedRoles)
}

func TestAnalyzeEmptyInputs(t *testing.T) {
	analyzer := NewAnalyzerService()

	result := analyzer.Analyze("", "")

	require.NotNil(t, result)
	assert.Zero(t, result.MatchPercentage)
	assert.NotNil(t, result.ResumeSkills)
	assert.NotNil(t, result.MissingSkills)
	assert.Empty(t, result.ResumeSkills)
	assert.Empty(t, result.MissingSkills)
	assert.Equal(t, []string{"Software Engineer"}, result.SuggestedRoles)
}

func TestAnalyzeMissingSkills(t *testing.T) {
	analyzer := NewAnalyzerService()

	result := analyzer.Analyze(
		"I know Python and Flask",
		"Looking for Python and SQL experience",
	)

	assert.Equal(t, []string{"python", "flask"}, result.ResumeSkills)
	assert.Equal(t, []string{"sql"}, result.MissingSkills)
	assert.Equal(t, []string{"Python Developer"}, result.SuggestedRoles)
	assert.Greater(t, result.MatchPercentage, 0.0)
	assert.LessOrEqual(t, result.MatchPercentage, 100.0)
}

func TestAnalyzeSkillsUseRawText(t *testing.T) {
	analyzer := NewAnalyzerService()

	// "c++" only survives in the raw text; normalization strips the pluses.
	result := analyzer.Analyze("Systems programmer, C++ and SQL", "")

	assert.Equal(t, []string{"c++", "sql"}, result.ResumeSkills)
	assert.Equal(t, []string{"Backend Developer"}, result.SuggestedRoles)
	assert.Zero(t, result.MatchPercentage)
}
