package render

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/resumeforge/backend/pkg/resume"
)

// resumeTemplate is the print layout the headless browser captures. It is
// deliberately self-contained: inline CSS, A4 page box, no external assets.
var resumeTemplate = template.Must(template.New("resume").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  @page { size: A4; margin: 14mm; }
  body { font-family: "Helvetica Neue", Arial, sans-serif; color: #1d1d1f; font-size: 10.5pt; line-height: 1.45; }
  h1 { font-size: 21pt; margin: 0; }
  .role { font-size: 12pt; color: #444; margin: 2px 0 6px; }
  .contact { font-size: 9pt; color: #555; margin-bottom: 14px; }
  .contact span + span::before { content: " \2022  "; color: #999; }
  h2 { font-size: 11pt; text-transform: uppercase; letter-spacing: .08em; border-bottom: 1px solid #ccc; margin: 16px 0 6px; padding-bottom: 2px; }
  .entry { margin-bottom: 8px; }
  .entry-head { display: flex; justify-content: space-between; }
  .entry-head b { font-size: 10.5pt; }
  .muted { color: #666; font-size: 9.5pt; }
  ul { margin: 3px 0 0 16px; padding: 0; }
  li { margin-bottom: 2px; }
  .tags span { display: inline-block; background: #f0f0f2; border-radius: 3px; padding: 1px 7px; margin: 0 4px 4px 0; font-size: 9pt; }
</style>
</head>
<body>
<h1>{{.Name}}</h1>
<div class="role">{{.Role}}</div>
<div class="contact">
  <span>{{.Email}}</span><span>{{.Phone}}</span>{{if .LinkedIn}}<span>{{.LinkedIn}}</span>{{end}}<span>{{.Location}}</span>
</div>

{{if .Summary}}<h2>Summary</h2><p>{{.Summary}}</p>{{end}}

{{if .Experience}}<h2>Experience</h2>
{{range .Experience}}<div class="entry">
  <div class="entry-head"><b>{{.Title}}</b><span class="muted">{{.Date}}</span></div>
  <div class="muted">{{.CompanyName}}{{if .CompanyLocation}} &mdash; {{.CompanyLocation}}{{end}}</div>
  {{if .Accomplishment}}<ul>{{range .Accomplishment}}<li>{{.}}</li>{{end}}</ul>{{end}}
</div>{{end}}{{end}}

{{if .Education}}<h2>Education</h2>
{{range .Education}}<div class="entry">
  <div class="entry-head"><b>{{.Degree}}</b><span class="muted">{{.Duration}}</span></div>
  <div class="muted">{{.Institution}}{{if .Location}} &mdash; {{.Location}}{{end}}</div>
</div>{{end}}{{end}}

{{if .Projects}}<h2>Projects</h2>
{{range .Projects}}<div class="entry">
  <div class="entry-head"><b>{{.Title}}</b><span class="muted">{{.Duration}}</span></div>
  {{if .Description}}<div>{{.Description}}</div>{{end}}
</div>{{end}}{{end}}

{{if .Achievements}}<h2>Achievements</h2>
<ul>{{range .Achievements}}<li><b>{{.KeyAchievements}}</b>{{if .Describe}} &mdash; {{.Describe}}{{end}}</li>{{end}}</ul>{{end}}

{{if .Skills}}<h2>Skills</h2>
<div class="tags">{{range .Skills}}<span>{{.}}</span>{{end}}</div>{{end}}

{{if .Languages}}<h2>Languages</h2>
<div class="tags">{{range .Languages}}<span>{{.}}</span>{{end}}</div>{{end}}

{{if .Certifications}}<h2>Certifications</h2>
<ul>{{range .Certifications}}<li>{{.Title}}{{if .IssuedBy}} &mdash; {{.IssuedBy}}{{end}}{{if .Year}} ({{.Year}}){{end}}</li>{{end}}</ul>{{end}}

{{if .Courses}}<h2>Courses</h2>
<ul>{{range .Courses}}<li>{{.Title}}{{if .Description}} &mdash; {{.Description}}{{end}}</li>{{end}}</ul>{{end}}
</body>
</html>`))

// HTML renders the resume record into the print layout.
func HTML(rec resume.Record) (string, error) {
	var buf bytes.Buffer
	if err := resumeTemplate.Execute(&buf, rec); err != nil {
		return "", fmt.Errorf("render resume template: %w", err)
	}
	return buf.String(), nil
}
