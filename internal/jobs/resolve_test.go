package jobs

import (
	"testing"

	"github.com/jonathan/resume-analyzer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplates_Order(t *testing.T) {
	var keys []string
	for _, tmpl := range Templates() {
		keys = append(keys, tmpl.Key)
		assert.NotEmpty(t, tmpl.Description, tmpl.Key)
		assert.NotEmpty(t, tmpl.Skills, tmpl.Key)
	}
	assert.Equal(t, []string{
		"software engineer",
		"data scientist",
		"frontend developer",
		"backend developer",
		"devops engineer",
		"product manager",
		"ui/ux designer",
		"machine learning engineer",
		"cybersecurity analyst",
		"cloud engineer",
	}, keys)
}

func TestResolve_FrontendDeveloper(t *testing.T) {
	description, skills := Resolve("Frontend Developer")

	require.NotEmpty(t, skills)
	assert.Equal(t, "HTML", skills[0])
	assert.Equal(t, []string{"HTML", "CSS", "JavaScript", "React", "Vue.js", "Angular", "TypeScript", "SASS", "Webpack", "Responsive Design"}, skills)
	assert.Contains(t, description, "Frontend Developer")
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		wantKey string
		found   bool
	}{
		{name: "exact", title: "data scientist", wantKey: "data scientist", found: true},
		{name: "title contains key", title: "Senior Backend Developer (Remote)", wantKey: "backend developer", found: true},
		{name: "key contains title", title: "DevOps", wantKey: "devops engineer", found: true},
		{name: "declaration order wins", title: "engineer", wantKey: "software engineer", found: true},
		{name: "ui/ux", title: "UI/UX Designer", wantKey: "ui/ux designer", found: true},
		{name: "ml engineer", title: "Machine Learning Engineer II", wantKey: "machine learning engineer", found: true},
		{name: "unknown", title: "Pastry Chef", wantKey: "generic", found: false},
		{name: "blank", title: "   ", wantKey: "generic", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl, found := Lookup(tt.title)
			assert.Equal(t, tt.wantKey, tmpl.Key)
			assert.Equal(t, tt.found, found)
		})
	}
}

func TestResolve_GenericFallback(t *testing.T) {
	_, skills := Resolve("Astronaut")
	assert.Equal(t, []string{"Technical Analysis", "Problem Solving", "Data Analysis", "Project Management", "System Design"}, skills)
}

func TestResolve_ReturnsCopies(t *testing.T) {
	_, skills := Resolve("software engineer")
	skills[0] = "COBOL"

	_, again := Resolve("software engineer")
	assert.Equal(t, "Python", again[0])

	listed := Templates()
	listed[0].Skills[0] = "Fortran"
	assert.Equal(t, "Python", Templates()[0].Skills[0])
}

func TestParseSkillList(t *testing.T) {
	assert.Equal(t, []string{"Go", "SQL", "Docker", "Kubernetes"}, ParseSkillList("Go, SQL\nDocker\r\n\n , Kubernetes,"))
	assert.Empty(t, ParseSkillList(" , \n"))
}

func TestBuildRequirements(t *testing.T) {
	t.Run("template", func(t *testing.T) {
		description, reqs := BuildRequirements("Cloud Engineer", Overrides{}, 3, types.EducationBachelor)
		assert.Contains(t, description, "Cloud Engineer")
		assert.Equal(t, "AWS", reqs.Skills[0])
		assert.Equal(t, 3, reqs.MinExperience)
		assert.Equal(t, types.EducationBachelor, reqs.EducationLevel)
	})

	t.Run("overrides", func(t *testing.T) {
		description, reqs := BuildRequirements("Cloud Engineer", Overrides{
			Description: "Custom posting",
			Skills:      []string{"Go", "Rust"},
		}, 0, "")
		assert.Equal(t, "Custom posting", description)
		assert.Equal(t, []string{"Go", "Rust"}, reqs.Skills)
		assert.Equal(t, types.EducationAny, reqs.EducationLevel)
	})
}
