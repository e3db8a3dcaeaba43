package analyzer

import (
	"testing"

	"github.com/jonathan/resume-analyzer/internal/advice"
	"github.com/jonathan/resume-analyzer/internal/analysis"
	"github.com/jonathan/resume-analyzer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var resumeLines = []string{
	"Alex Rivera",
	"alex@example.dev",
	"+12065550199",
	"EDUCATION",
	"Bachelor of Science in Computer Science, UW, 2019",
	"SKILLS",
	"Python, JavaScript, React",
	"SQL, Git, Docker",
	"EXPERIENCE",
	"Software Engineer, Initech",
	"Developed internal APIs over 4 years",
	"Worked closely with product",
	"PROJECTS",
	"Trip Planner |",
	"• React front end",
	"Budget Tracker:",
	"• Python back end",
}

func TestAnalyzeResume(t *testing.T) {
	result, err := AnalyzeResume(resumeLines, types.AnalysisRequest{
		JobTitle:       "Software Engineer",
		EducationLevel: "Bachelor's",
	})
	require.NoError(t, err)

	assert.Equal(t, "Alex Rivera", result.Resume.Name)
	assert.Equal(t, "alex@example.dev", result.Resume.Email)
	assert.Equal(t, "+12065550199", result.Resume.Phone)
	assert.Equal(t, "Software Engineer", result.JobTitle)
	assert.Contains(t, result.JobDescription, "Software Engineer")
	assert.Equal(t, types.EducationBachelor, result.Requirements.EducationLevel)

	assert.Equal(t, []string{"Node.js", "AWS", "REST APIs"}, result.Gaps.MissingSkills)
	assert.Empty(t, result.Gaps.WeakExperience)
	assert.Empty(t, result.Gaps.EducationGaps)
	assert.Empty(t, result.Gaps.ProjectGaps)

	// 100 - 12 + 3 + 0.75 + 0.75
	assert.InDelta(t, 92.5, result.Score.SelectionProbability, 1e-9)
	assert.Equal(t, analysis.BandStrong, result.Score.Band)
	assert.Equal(t, analysis.ScoringVersion, result.Score.ScoringVersion)
	assert.Contains(t, result.Review, "Selection Probability: 92.5%")

	require.Len(t, result.Suggestions, 2)
	assert.Equal(t, advice.CategorySkills, result.Suggestions[0].Category)
	assert.Equal(t, advice.CategoryCertifications, result.Suggestions[1].Category)
}

func TestAnalyzeResume_Overrides(t *testing.T) {
	result, err := AnalyzeResume(resumeLines, types.AnalysisRequest{
		JobTitle:       "Software Engineer",
		JobDescription: "Build things in Go.",
		Skills:         []string{"Go", "Python"},
		MinExperience:  2,
		EducationLevel: "masters",
	})
	require.NoError(t, err)

	assert.Equal(t, "Build things in Go.", result.JobDescription)
	assert.Equal(t, []string{"Go", "Python"}, result.Requirements.Skills)
	assert.Equal(t, 2, result.Requirements.MinExperience)
	assert.Equal(t, []string{"Go"}, result.Gaps.MissingSkills)
	assert.Equal(t, []string{analysis.MasterGapMessage}, result.Gaps.EducationGaps)
}

func TestAnalyzeResume_EmptyInput(t *testing.T) {
	result, err := AnalyzeResume(nil, types.AnalysisRequest{JobTitle: "Data Scientist"})
	require.NoError(t, err)

	assert.True(t, result.Resume.IsEmpty())
	assert.Len(t, result.Gaps.MissingSkills, 10)
	// 100 - 40 - 6 + 0.75 - 2.25
	assert.InDelta(t, 52.5, result.Score.SelectionProbability, 1e-9)
	assert.Equal(t, analysis.BandNeedsImprovement, result.Score.Band)
}

func TestAnalyzeResume_InvalidRequest(t *testing.T) {
	_, err := AnalyzeResume(resumeLines, types.AnalysisRequest{JobTitle: "x", MinExperience: -3})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid analysis request")

	_, err = AnalyzeResume(resumeLines, types.AnalysisRequest{JobTitle: "x", EducationLevel: "GED+"})
	assert.Error(t, err)
}

func TestChat_SelectionQuestionIgnoresCase(t *testing.T) {
	result, err := AnalyzeResume(resumeLines, types.AnalysisRequest{JobTitle: "Software Engineer"})
	require.NoError(t, err)

	for _, msg := range []string{"Will I be selected?", "WILL I BE SELECTED?", "will i be selected?"} {
		reply := Chat(msg, result.Resume, result.JobDescription, result.Requirements)
		assert.Equal(t, result.Review, reply, msg)
	}
}

func TestChat_Topics(t *testing.T) {
	result, err := AnalyzeResume(resumeLines, types.AnalysisRequest{JobTitle: "Software Engineer"})
	require.NoError(t, err)

	skills := Chat("Analyze my skills", result.Resume, result.JobDescription, result.Requirements)
	assert.Contains(t, skills, "Node.js, AWS, REST APIs")

	help := Chat("help", result.Resume, result.JobDescription, result.Requirements)
	assert.Equal(t, advice.HelpText, help)
}

func TestConversation(t *testing.T) {
	result, err := AnalyzeResume(resumeLines, types.AnalysisRequest{JobTitle: "Software Engineer"})
	require.NoError(t, err)

	conv := NewConversation(result)
	require.Len(t, conv.Messages, 1)
	assert.Equal(t, types.RoleAssistant, conv.Messages[0].Role)
	assert.Equal(t, advice.WelcomeMessage, conv.Messages[0].Content)

	reply, next := Ask(conv, "Check my projects")
	assert.Contains(t, reply, "Projects Analysis")
	require.Len(t, next.Messages, 3)
	assert.Equal(t, types.ChatMessage{Role: types.RoleUser, Content: "Check my projects"}, next.Messages[1])
	assert.Equal(t, reply, next.Messages[2].Content)

	// The original conversation is unchanged.
	assert.Len(t, conv.Messages, 1)

	_, third := Ask(next, "thanks")
	assert.Len(t, third.Messages, 5)
	assert.Len(t, next.Messages, 3)
}
