package email

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
)

// ContactEmailData holds the values rendered into the notification HTML.
// Empty optional fields are omitted from the output.
type ContactEmailData struct {
	SenderName  string
	SenderEmail string
	Subject     string
	Prompt      string
	Content     string
}

const contactEmailTemplate = `<div style="font-family: Arial, sans-serif; padding: 20px; max-width: 600px;">
  <h2 style="color: #333;">Email Received</h2>
  {{- if .SenderName}}
  <p><strong>From:</strong> {{.SenderName}}</p>
  {{- end}}
  {{- if .SenderEmail}}
  <p><strong>Email:</strong> {{.SenderEmail}}</p>
  {{- end}}
  <p><strong>Subject:</strong> {{.Subject}}</p>
  {{- if .Prompt}}
  <p><strong>Prompt:</strong> {{.Prompt}}</p>
  {{- end}}
  <div style="margin-top: 20px; padding: 15px; background: #f5f5f5; border-radius: 5px;">
    {{range $i, $line := .Lines}}{{if $i}}<br>{{end}}{{$line}}{{end}}
  </div>
</div>`

var contactTemplate = template.Must(template.New("contact").Parse(contactEmailTemplate))

// RenderContactHTML renders the notification body. Every value is escaped;
// newlines in the content become <br>.
func RenderContactHTML(data ContactEmailData) (string, error) {
	view := struct {
		ContactEmailData
		Lines []string
	}{
		ContactEmailData: data,
		Lines:            strings.Split(strings.ReplaceAll(data.Content, "\r\n", "\n"), "\n"),
	}

	var body bytes.Buffer
	if err := contactTemplate.Execute(&body, view); err != nil {
		return "", fmt.Errorf("failed to execute email template: %w", err)
	}
	return body.String(), nil
}
