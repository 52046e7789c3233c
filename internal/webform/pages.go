// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package webform

import (
	"html/template"

	"github.com/gofiber/fiber/v2"

	"github.com/pdiddy/resume-analyzer/internal/report"
	"github.com/pdiddy/resume-analyzer/pkg/types"
)

const formPage = `<!doctype html>
<html>
<head><meta charset="utf-8"><title>Resume Analyzer</title></head>
<body>
<h1>Resume Analyzer</h1>
<form action="/analyze" method="post" enctype="multipart/form-data">
  <p><label>Resume (PDF / DOCX / TXT):<br>
    <input type="file" name="resume" accept=".pdf,.docx,.txt" required></label></p>
  <p><label>Job description:<br>
    <textarea name="job_description" rows="12" cols="80"
      placeholder="Paste the full job description here" required></textarea></label></p>
  <p><label><input type="checkbox" name="format" value="json"> Respond with JSON</label></p>
  <p><button type="submit">Analyze</button></p>
</form>
</body>
</html>`

var resultTemplate = template.Must(template.New("result").Parse(`<!doctype html>
<html>
<head><meta charset="utf-8"><title>Resume Analysis — {{.Result.Source}}</title></head>
<body>
<h1>Resume Analysis</h1>
<pre>{{.Report}}</pre>
<p><a href="/">Analyze another resume</a></p>
</body>
</html>`))

// renderResult serves the analysis as an HTML page built around the same
// plain-text report the CLI writes.
func renderResult(c *fiber.Ctx, result types.AnalysisResult) error {
	c.Type("html", "utf-8")
	return resultTemplate.Execute(c.Response().BodyWriter(), struct {
		Result types.AnalysisResult
		Report string
	}{
		Result: result,
		Report: report.PlainText(result),
	})
}
