// Package types provides type definitions for structured data used throughout the resume-analyzer system.
package types

// ResumeRecord is the structured view of a résumé produced by the section segmenter.
// A record is never modified after it has been produced.
type ResumeRecord struct {
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone"`
	Education      []string `json:"education"`
	Skills         []string `json:"skills"`
	Experience     []string `json:"experience"`
	Projects       []string `json:"projects"`
	Certifications []string `json:"certifications"`
}

// NewResumeRecord returns an empty record whose list fields serialize as [] rather than null.
func NewResumeRecord() ResumeRecord {
	return ResumeRecord{
		Education:      []string{},
		Skills:         []string{},
		Experience:     []string{},
		Projects:       []string{},
		Certifications: []string{},
	}
}

// IsEmpty reports whether nothing at all was extracted.
func (r ResumeRecord) IsEmpty() bool {
	return r.Name == "" && r.Email == "" && r.Phone == "" &&
		len(r.Education) == 0 && len(r.Skills) == 0 && len(r.Experience) == 0 &&
		len(r.Projects) == 0 && len(r.Certifications) == 0
}

// Section identifies the résumé section a line belongs to.
type Section string

const (
	SectionNone           Section = "none"
	SectionEducation      Section = "education"
	SectionSkills         Section = "skills"
	SectionExperience     Section = "experience"
	SectionProjects       Section = "projects"
	SectionCertifications Section = "certifications"
)

// LineClass is the role the segmenter assigned to one input line.
type LineClass string

const (
	LineBlank          LineClass = "blank"
	LineHeader         LineClass = "header"
	LineName           LineClass = "name"
	LineDropped        LineClass = "none"
	LineEducation      LineClass = "education"
	LineSkills         LineClass = "skills"
	LineExperience     LineClass = "experience"
	LineProjects       LineClass = "projects"
	LineCertifications LineClass = "certifications"
)

// LineAssignment records where a single input line ended up.
type LineAssignment struct {
	Index int       `json:"index"`
	Line  string    `json:"line"`
	Class LineClass `json:"class"`
	// EntryStart is set when the line opened a new education, experience or project entry.
	EntryStart bool `json:"entry_start,omitempty"`
}
