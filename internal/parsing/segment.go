// Package parsing segments résumé text into a structured ResumeRecord.
package parsing

import (
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// sectionHeaders maps the exact, uppercased header lines to the section they open.
var sectionHeaders = map[string]types.Section{
	"EDUCATION":       types.SectionEducation,
	"SKILLS":          types.SectionSkills,
	"EXPERIENCE":      types.SectionExperience,
	"WORK EXPERIENCE": types.SectionExperience,
	"PROJECTS":        types.SectionProjects,
	"CERTIFICATIONS":  types.SectionCertifications,
}

// HeaderSection returns the section opened by line when line is a header.
func HeaderSection(line string) (types.Section, bool) {
	section, ok := sectionHeaders[strings.ToUpper(strings.TrimSpace(line))]
	return section, ok
}

// Segment folds lines into a ResumeRecord. Blank lines are ignored; an empty input
// yields an empty record.
func Segment(lines []string) types.ResumeRecord {
	s := newSegmenter()
	for i, line := range lines {
		s.feed(i, line)
	}
	return s.finish()
}

// Trace runs the same fold as Segment and reports how each input line was classified.
func Trace(lines []string) []types.LineAssignment {
	s := newSegmenter()
	s.trace = make([]types.LineAssignment, 0, len(lines))
	for i, line := range lines {
		s.feed(i, line)
	}
	s.finish()
	return s.trace
}

// segmenter is the fold state: the current section and at most one open entry.
// Only education, experience and projects accumulate multi-line entries, and the
// open entry always belongs to the current section.
type segmenter struct {
	record  types.ResumeRecord
	section types.Section
	entry   []string
	trace   []types.LineAssignment
}

func newSegmenter() *segmenter {
	return &segmenter{
		record:  types.NewResumeRecord(),
		section: types.SectionNone,
	}
}

func (s *segmenter) feed(index int, raw string) {
	line := strings.TrimSpace(raw)
	if line == "" {
		s.note(index, raw, types.LineBlank, false)
		return
	}

	if section, ok := HeaderSection(line); ok {
		s.flush()
		s.section = section
		s.note(index, line, types.LineHeader, false)
		return
	}

	if s.record.Name == "" && s.section == types.SectionNone {
		s.record.Name = line
		s.note(index, line, types.LineName, false)
		return
	}

	s.scanContact(line)

	switch s.section {
	case types.SectionSkills:
		s.record.Skills = append(s.record.Skills, line)
		s.note(index, line, types.LineSkills, false)
	case types.SectionCertifications:
		s.record.Certifications = append(s.record.Certifications, line)
		s.note(index, line, types.LineCertifications, false)
	case types.SectionEducation:
		s.accumulate(index, line, StartsEducationEntry(line), types.LineEducation)
	case types.SectionExperience:
		s.accumulate(index, line, StartsExperienceEntry(line), types.LineExperience)
	case types.SectionProjects:
		s.accumulate(index, line, StartsProjectEntry(line), types.LineProjects)
	default:
		s.note(index, line, types.LineDropped, false)
	}
}

// accumulate adds line to the open entry. A trigger line closes the open entry first
// and becomes the first line of the next one.
func (s *segmenter) accumulate(index int, line string, trigger bool, class types.LineClass) {
	if trigger && len(s.entry) > 0 {
		s.flush()
	}
	s.note(index, line, class, len(s.entry) == 0)
	s.entry = append(s.entry, line)
}

// flush moves the open entry into the field of the current section.
func (s *segmenter) flush() {
	if len(s.entry) == 0 {
		return
	}
	joined := strings.Join(s.entry, " ")
	s.entry = nil

	switch s.section {
	case types.SectionEducation:
		s.record.Education = append(s.record.Education, joined)
	case types.SectionExperience:
		s.record.Experience = append(s.record.Experience, joined)
	case types.SectionProjects:
		s.record.Projects = append(s.record.Projects, joined)
	}
}

func (s *segmenter) scanContact(line string) {
	if s.record.Email == "" {
		s.record.Email = FindEmail(line)
	}
	if phone := FindPhone(line); phone != "" {
		s.record.Phone = phone
	}
}

func (s *segmenter) note(index int, line string, class types.LineClass, entryStart bool) {
	if s.trace == nil {
		return
	}
	s.trace = append(s.trace, types.LineAssignment{
		Index:      index,
		Line:       line,
		Class:      class,
		EntryStart: entryStart,
	})
}

func (s *segmenter) finish() types.ResumeRecord {
	s.flush()
	return s.record
}
