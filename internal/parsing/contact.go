package parsing

import "regexp"

// emailPattern is searched in every content line. The first address found in the
// document is kept; later matches never replace it.
var emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

// phonePattern matches an optionally "+"-prefixed digit run. Only the leftmost run in a
// line is considered, it must be at least minPhoneLength long, and the last qualifying
// line in the document wins.
var phonePattern = regexp.MustCompile(`\+?[1-9]\d{0,15}`)

const minPhoneLength = 10

// FindEmail returns the first email-like token in line, or "".
func FindEmail(line string) string {
	return emailPattern.FindString(line)
}

// FindPhone returns the leftmost digit run in line when it is long enough to be a phone number, or "".
func FindPhone(line string) string {
	match := phonePattern.FindString(line)
	if len(match) < minPhoneLength {
		return ""
	}
	return match
}
