package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEducationLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    EducationLevel
		wantErr bool
	}{
		{input: "", want: EducationAny},
		{input: "any", want: EducationAny},
		{input: "Bachelor's", want: EducationBachelor},
		{input: "bachelors", want: EducationBachelor},
		{input: "MASTER'S", want: EducationMaster},
		{input: "phd", want: EducationPhD},
		{input: "High School", want: EducationHighSchool},
		{input: "associate’s", want: EducationAssociate},
		{input: "doctorate", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseEducationLevel(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewResumeRecord_SerializesEmptyLists(t *testing.T) {
	data, err := json.Marshal(NewResumeRecord())
	require.NoError(t, err)

	assert.Contains(t, string(data), `"education":[]`)
	assert.Contains(t, string(data), `"certifications":[]`)
	assert.NotContains(t, string(data), "null")
	assert.True(t, NewResumeRecord().IsEmpty())
}

func TestGapReport_Empty(t *testing.T) {
	assert.True(t, GapReport{}.Empty())
	assert.False(t, GapReport{ProjectGaps: []string{"x"}}.Empty())
}

func TestAnalysisRequest_Validate(t *testing.T) {
	valid := AnalysisRequest{JobTitle: "Software Engineer", EducationLevel: "Bachelor's"}
	assert.NoError(t, valid.Validate())

	negative := AnalysisRequest{JobTitle: "x", MinExperience: -1}
	assert.Error(t, negative.Validate())

	badLevel := AnalysisRequest{JobTitle: "x", EducationLevel: "kindergarten"}
	assert.Error(t, badLevel.Validate())

	blankSkill := AnalysisRequest{Skills: []string{"Go", ""}}
	assert.Error(t, blankSkill.Validate())
}

func TestChatRequest_Validate(t *testing.T) {
	assert.Error(t, (&ChatRequest{}).Validate())
	assert.NoError(t, (&ChatRequest{Message: "help"}).Validate())

	outOfEnum := ChatRequest{Message: "help"}
	outOfEnum.Conversation.Requirements.EducationLevel = "Doctorate"
	assert.Error(t, outOfEnum.Validate())

	negative := ChatRequest{Message: "help"}
	negative.Conversation.Requirements.MinExperience = -7
	assert.Error(t, negative.Validate())
}

func TestChatRequest_ValidateCanonicalizesLevel(t *testing.T) {
	tests := []struct {
		in   EducationLevel
		want EducationLevel
	}{
		{"bachelors", EducationBachelor},
		{"MASTER'S", EducationMaster},
		{"", EducationAny},
		{"PhD", EducationPhD},
	}
	for _, tt := range tests {
		t.Run(string(tt.in), func(t *testing.T) {
			req := ChatRequest{Message: "help"}
			req.Conversation.Requirements.EducationLevel = tt.in
			require.NoError(t, req.Validate())
			assert.Equal(t, tt.want, req.Conversation.Requirements.EducationLevel)
		})
	}
}

func TestAnalysisRequest_LongExperienceAllowed(t *testing.T) {
	req := AnalysisRequest{JobTitle: "x", MinExperience: 75}
	assert.NoError(t, req.Validate())
}
