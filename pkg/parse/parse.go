// Package parse converts unstructured resume text into the structured
// resume schema through line classification, section detection and entry
// segmentation. It favors recall over precision: ambiguous input degrades
// the output but never aborts the parse.
package parse

import (
	"strings"

	"github.com/resumeforge/backend/pkg/resume"
)

// basicInfoWindow is how many leading lines are scanned for contact fields.
const basicInfoWindow = 10

// ParseResumeContent decodes a source document and parses it into a
// complete resume record. The only failure modes are *ExtractionError
// (the bytes could not be decoded) and ErrEmptyContent (no usable lines);
// everything else yields a best-effort, possibly sparse record.
func ParseResumeContent(data []byte, media MediaType) (resume.Record, error) {
	lines, err := ExtractLines(data, media)
	if err != nil {
		return resume.Record{}, err
	}
	if len(lines) == 0 {
		return resume.Record{}, ErrEmptyContent
	}

	rec := resume.NewRecord()
	extractBasicInfo(lines, &rec)
	segment(lines, &rec)
	return Normalize(rec), nil
}

// extractBasicInfo scans the first lines of the document for contact
// fields. First match wins per field; the very first line is taken as the
// candidate's name verbatim.
func extractBasicInfo(lines []string, rec *resume.Record) {
	head := lines
	if len(head) > basicInfoWindow {
		head = head[:basicInfoWindow]
	}

	rec.Name = head[0]

	for _, line := range head {
		if rec.Email == "" {
			if m := reEmail.FindString(line); m != "" {
				rec.Email = m
			}
		}
		if rec.Phone == "" {
			if m := rePhone.FindString(line); m != "" {
				rec.Phone = m
			}
		}
		if rec.LinkedIn == "" && IsLinkedIn(line) {
			rec.LinkedIn = linkedInURL(line)
		}
		if rec.Location == "" && IsLocationLine(line) {
			rec.Location = line
		}
	}

	// The role usually sits right under the name.
	for i := 1; i < len(head) && i < 5; i++ {
		if IsRoleLine(head[i]) {
			rec.Role = head[i]
			break
		}
	}
}

// linkedInURL pulls the profile URL out of a line and makes sure it
// carries a scheme.
func linkedInURL(line string) string {
	val := line
	for _, field := range strings.Fields(line) {
		if IsLinkedIn(field) {
			val = field
			break
		}
	}
	if !strings.HasPrefix(val, "http://") && !strings.HasPrefix(val, "https://") {
		val = "https://" + val
	}
	return val
}
