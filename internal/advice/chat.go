package advice

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// Intent is the topic a chat message is routed to.
type Intent string

const (
	IntentImprove     Intent = "improve"
	IntentProbability Intent = "probability"
	IntentReview      Intent = "review"
	IntentSkills      Intent = "skills"
	IntentExperience  Intent = "experience"
	IntentProjects    Intent = "projects"
	IntentHelp        Intent = "help"
	IntentGeneral     Intent = "general"
)

// intentRoutes are checked in order; the first route with a keyword contained in the
// lowercased message wins.
var intentRoutes = []struct {
	intent   Intent
	keywords []string
}{
	{IntentImprove, []string{"improve", "better"}},
	{IntentProbability, []string{"selected", "chance", "probability"}},
	{IntentReview, []string{"honest", "review"}},
	{IntentSkills, []string{"skills"}},
	{IntentExperience, []string{"experience"}},
	{IntentProjects, []string{"projects"}},
	{IntentHelp, []string{"help", "what"}},
}

// maxPrioritySuggestions is how many suggestions the improve reply shows.
const maxPrioritySuggestions = 3

// WelcomeMessage opens every conversation.
const WelcomeMessage = `Hi! I'm your Career Advisor. I've analyzed your resume against the job description. Ask me anything about improving your resume! Try asking:

• 'How can I improve my resume?'
• 'Will I be selected?'
• 'Analyze my skills'
• 'Review my experience'
• 'Check my projects'`

// HelpText lists the questions the advisor understands.
const HelpText = `**ResumePro Career Advisor**

I can help you improve your resume! Ask me about:

• **'How can I improve my resume?'** - Get overall suggestions
• **'Will I be selected?'** - Check selection probability
• **'Give me an honest review'** - Get detailed feedback
• **'Analyze my skills'** - Check skill gaps
• **'Review my experience'** - Experience section tips
• **'Check my projects'** - Project section advice

Just type your question and I'll provide personalized advice!`

const generalTips = `**General Resume Tips:**

• **Tailor your resume** to match the job description
• **Use keywords** from the job posting
• **Quantify achievements** with numbers and metrics
• **Keep it concise** (1-2 pages maximum)
• **Proofread carefully** for errors

Ask me specific questions like 'Will I be selected?' or 'Give me an honest review' for detailed feedback!`

// Route classifies a chat message. Exactly one intent is returned per message.
func Route(message string) Intent {
	lower := strings.ToLower(message)
	for _, route := range intentRoutes {
		if containsAny(lower, route.keywords) {
			return route.intent
		}
	}
	return IntentGeneral
}

// Context carries the derived analysis a chat reply is rendered from.
type Context struct {
	Resume       types.ResumeRecord
	Requirements types.JobRequirements
	Gaps         types.GapReport
	Score        float64
	Suggestions  []types.Suggestion
}

// Respond renders the reply for an intent.
func Respond(intent Intent, c Context) string {
	switch intent {
	case IntentImprove:
		return improveReply(c.Suggestions)
	case IntentProbability, IntentReview:
		return Review(c.Resume, c.Requirements, c.Gaps, c.Score)
	case IntentSkills:
		return skillsReply(c.Gaps)
	case IntentExperience:
		return experienceReply(c.Gaps)
	case IntentProjects:
		return projectsReply(c.Gaps)
	case IntentHelp:
		return HelpText
	default:
		return generalTips
	}
}

func improveReply(suggestions []types.Suggestion) string {
	var sb strings.Builder
	sb.WriteString("**Resume Analysis:**\n\n")
	if len(suggestions) == 0 {
		sb.WriteString("Your resume looks well-aligned with the job requirements!\n")
		return sb.String()
	}

	sb.WriteString("**Priority Improvements:**\n")
	for _, s := range suggestions[:min(len(suggestions), maxPrioritySuggestions)] {
		fmt.Fprintf(&sb, "[%s] **%s**: %s\n", s.Priority, s.Category, s.Suggestion)
		fmt.Fprintf(&sb, "   *Action*: %s\n\n", s.Action)
	}
	return sb.String()
}

func skillsReply(gaps types.GapReport) string {
	if len(gaps.MissingSkills) == 0 {
		return "**Skills Analysis:** Your skills match well with the job requirements!"
	}

	var sb strings.Builder
	sb.WriteString("**Skills Analysis:**\n\n")
	fmt.Fprintf(&sb, "**Missing Skills**: %s\n\n", strings.Join(gaps.MissingSkills, ", "))
	sb.WriteString("**Recommendations:**\n")
	sb.WriteString("• Take online courses (Coursera, Udemy, edX)\n")
	sb.WriteString("• Work on personal projects using these technologies\n")
	sb.WriteString("• Add relevant certifications to your resume\n")
	sb.WriteString("• Include these skills in your projects section\n")
	return sb.String()
}

func experienceReply(gaps types.GapReport) string {
	var sb strings.Builder
	sb.WriteString("**Experience Analysis:**\n\n")
	if len(gaps.WeakExperience) == 0 {
		sb.WriteString("Your experience section looks strong!")
		return sb.String()
	}

	sb.WriteString("**Areas for Improvement:**\n")
	sb.WriteString("• Add quantifiable achievements (e.g., 'Increased efficiency by 25%')\n")
	sb.WriteString("• Use strong action verbs (Developed, Implemented, Managed)\n")
	sb.WriteString("• Include specific technologies and tools used\n")
	sb.WriteString("• Add metrics and results where possible\n")
	return sb.String()
}

func projectsReply(gaps types.GapReport) string {
	var sb strings.Builder
	sb.WriteString("**Projects Analysis:**\n\n")
	if len(gaps.ProjectGaps) == 0 {
		sb.WriteString("Your projects section looks good!")
		return sb.String()
	}

	sb.WriteString("**Recommendations:**\n")
	sb.WriteString("• Add 2-3 relevant projects that showcase required skills\n")
	sb.WriteString("• Include GitHub links and live demos if available\n")
	sb.WriteString("• Describe the technologies used and your role\n")
	sb.WriteString("• Highlight problem-solving and technical skills\n")
	return sb.String()
}

func containsAny(s string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(s, needle) {
			return true
		}
	}
	return false
}
