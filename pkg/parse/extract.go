package parse

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"code.sajari.com/docconv"
	pdf "github.com/ledongthuc/pdf"
)

// MediaType identifies the source document format accepted by the importer.
type MediaType string

const (
	MediaPDF       MediaType = "application/pdf"
	MediaWord      MediaType = "application/msword"
	MediaDocx      MediaType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MediaPlainText MediaType = "text/plain"
)

// ExtractionError reports that the source bytes could not be decoded into
// text. The underlying decoder failure is available via Unwrap.
type ExtractionError struct {
	MediaType MediaType
	Err       error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extract text from %s: %v", e.MediaType, e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// ErrEmptyContent is returned when decoding succeeded but the document
// contains no usable lines.
var ErrEmptyContent = errors.New("empty resume content")

// ExtractLines decodes a source document into a flat sequence of trimmed,
// non-empty text lines. Ordering is preserved.
func ExtractLines(data []byte, media MediaType) ([]string, error) {
	var (
		text string
		err  error
	)
	switch media {
	case MediaPDF:
		text, err = extractTextFromPDF(data)
	case MediaDocx:
		text, err = extractTextFromDocx(data)
	case MediaWord:
		text, err = extractTextFromDoc(data)
	case MediaPlainText:
		text = string(data)
	default:
		err = fmt.Errorf("unsupported media type: %s", media)
	}
	if err != nil {
		return nil, &ExtractionError{MediaType: media, Err: err}
	}
	return splitLines(text), nil
}

func extractTextFromPDF(data []byte) (string, error) {
	reader := bytes.NewReader(data)
	r, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", err
	}
	rs, err := r.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err = io.Copy(&buf, rs); err != nil {
		return "", err
	}
	return normalizeWhitespace(buf.String()), nil
}

func extractTextFromDocx(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	var docXML []byte
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			rc, err := f.Open()
			if err != nil {
				return "", err
			}
			defer rc.Close()
			docXML, err = io.ReadAll(rc)
			if err != nil {
				return "", err
			}
			break
		}
	}
	if len(docXML) == 0 {
		return "", errors.New("no document.xml found in docx")
	}
	xml := string(docXML)
	// Convert paragraph boundaries to newlines (very naive but effective).
	xml = strings.ReplaceAll(xml, "</w:p>", "\n")
	xml = strings.ReplaceAll(xml, "<w:tab/>", "\t")
	// Remove all XML tags.
	reTags := regexp.MustCompile(`<[^>]+>`)
	txt := reTags.ReplaceAllString(xml, " ")
	return normalizeWhitespace(txt), nil
}

// Legacy .doc files go through docconv, which handles the OLE container.
func extractTextFromDoc(data []byte) (string, error) {
	res, err := docconv.Convert(bytes.NewReader(data), string(MediaWord), false)
	if err != nil {
		return "", err
	}
	return normalizeWhitespace(res.Body), nil
}

func normalizeWhitespace(s string) string {
	// Collapse excessive whitespace and trim
	re := regexp.MustCompile(`[ \t\r\f\v]+`)
	s = re.ReplaceAllString(s, " ")
	s = strings.ReplaceAll(s, " ", " ")
	// Preserve newlines but collapse runs
	reN := regexp.MustCompile(`\n+`)
	s = reN.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}

func splitLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}
