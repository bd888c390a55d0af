package detok

import (
	"strconv"
	"strings"
)

// Listing is the reconstructed source text of one save file. Lines are
// held in file order, exactly as the original interpreter would have
// listed them.
type Listing struct {
	lines    []string
	warnings []string
}

// Lines returns the rendered lines in file order
func (lst *Listing) Lines() []string { return lst.lines }

// Warnings returns the non-fatal oddities seen during the decode
func (lst *Listing) Warnings() []string { return lst.warnings }

// Text joins the lines into the final listing, one terminator per line
func (lst *Listing) Text() string {
	var sb strings.Builder

	for _, ln := range lst.lines {
		sb.WriteString(ln)
		sb.WriteByte('\n')
	}

	return sb.String()
}

// addLine prefixes the expanded text with its leading spaces and, when
// present, the line number and a single space
func (lst *Listing) addLine(rec *LineRecord, text string) {
	ln := strings.Repeat(" ", int(rec.LeadingSpaces))

	if rec.HasLineNumber {
		ln += strconv.Itoa(int(rec.LineNumber)) + " "
	}

	lst.lines = append(lst.lines, ln+text)
}

func (lst *Listing) warn(msg string) {
	if msg != "" {
		lst.warnings = append(lst.warnings, msg)
	}
}
