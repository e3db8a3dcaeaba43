package fetch

import (
	"net/url"
	"strings"
)

// Board is a job board whose page layout is known.
type Board string

const (
	BoardGreenhouse Board = "greenhouse"
	BoardLever      Board = "lever"
	BoardWorkday    Board = "workday"
	BoardAshby      Board = "ashby"
	BoardUnknown    Board = "unknown"
)

var boardHosts = []struct {
	board    Board
	suffixes []string
}{
	{BoardGreenhouse, []string{"greenhouse.io"}},
	{BoardLever, []string{"lever.co"}},
	{BoardWorkday, []string{"workday.com", "myworkdayjobs.com"}},
	{BoardAshby, []string{"ashbyhq.com"}},
}

// DetectBoard identifies the job board hosting raw.
func DetectBoard(raw string) Board {
	parsed, err := url.Parse(raw)
	if err != nil {
		return BoardUnknown
	}
	host := strings.ToLower(parsed.Hostname())
	for _, entry := range boardHosts {
		for _, suffix := range entry.suffixes {
			if host == suffix || strings.HasSuffix(host, "."+suffix) {
				return entry.board
			}
		}
	}
	return BoardUnknown
}

// ContentSelectors returns where the posting body lives on a board.
func ContentSelectors(board Board) []string {
	switch board {
	case BoardGreenhouse:
		return []string{".job__description.body", ".job__description", "#content", ".job-post-container"}
	case BoardLever:
		return []string{".posting-page", ".section-wrapper.page-full-width", ".posting-description", ".content"}
	case BoardWorkday:
		return []string{"[data-automation-id='jobPostingDescription']", "[data-automation-id='jobDescription']", ".job-description"}
	case BoardAshby:
		return []string{"._descriptionText_oj0x8_198", "[class*='descriptionText']", "main"}
	default:
		return JobPostingSelectors()
	}
}

// commonNoise covers application forms and legal boilerplate shared by most boards.
var commonNoise = []string{
	"form",
	"#application-form",
	".application-form",
	".apply-button-container",
	".eeo-statement",
	".voluntary-disclosure",
	".self-identification",
	".social-share",
	".cookie-consent",
}

// NoiseSelectors returns elements to strip before extracting a posting.
func NoiseSelectors(board Board) []string {
	noise := append([]string(nil), commonNoise...)
	switch board {
	case BoardGreenhouse:
		noise = append(noise, ".application--wrapper", ".voluntary-self-id", "#usa_self_id_section")
	case BoardLever:
		noise = append(noise, ".apply-section", ".posting-apply")
	case BoardWorkday:
		noise = append(noise, "[data-automation-id='applyButton']")
	}
	return noise
}
