package manifest

import (
	"strings"
	"text/template"
)

const documentTemplate = `# {{.SiteName}}

> {{.Summary}}

Generated: {{.Date}}
Website: {{.BaseURL}}
Languages: {{join .Locales ", "}} (default: {{.DefaultLocale}})
Sitemap: {{.BaseURL}}/sitemap.xml
{{range .Sections}}
## {{.Title}}
{{range .Items}}
- [{{.Title}}]({{.URL}}){{with .Description}}: {{.}}{{end}}
{{- end}}
{{end}}
## Guarantee

{{.Guarantee}}

## AI Usage Policy

### Allowed
{{range .AllowedUses}}
- {{.}}
{{- end}}

### Not Allowed
{{range .DisallowedUses}}
- {{.}}
{{- end}}

## Attribution

{{.Attribution}}

## Results
{{range .Results}}
- {{.}}
{{- end}}

## Contact
{{with .Contact.Email}}
- Email: {{.}}
{{- end}}
{{- with .Contact.Phone}}
- Phone: {{.}}
{{- end}}
{{- with .Contact.Address}}
- Address: {{.}}
{{- end}}
{{- with .DemoURL}}
- Book a demo: {{.}}
{{- end}}

---

Last updated: {{.Date}}
`

var document = template.Must(template.New("manifest").Funcs(template.FuncMap{
	"join": strings.Join,
}).Parse(documentTemplate))
