package email

import (
	"fmt"
	"html/template"
	"strings"
)

// Message bodies are compiled once at package init. Keeping them inline
// avoids a templates directory for two small notifications.
var (
	welcomeTemplate = template.Must(template.New("welcome").Parse(`<p>Hi {{.Name}},</p>
<p>Welcome to our Internship Portal. You have successfully registered as a <b>{{.Role}}</b>.</p>
<p>We will notify you about opportunities, applications, and updates.</p>
<br/>
<p>Best regards,</p>
<p><b>{{.FromName}}</b></p>`))

	loginAlertTemplate = template.Must(template.New("login_alert").Parse(`<p>Hi {{.Name}},</p>
<p>You just logged in to your account.</p>
<p>If this wasn't you, please reset your password immediately.</p>
<br/>
<p>Best regards,</p>
<p><b>{{.FromName}}</b></p>`))
)

type templateData struct {
	Name     string
	Role     string
	FromName string
}

func render(tpl *template.Template, data templateData) (string, error) {
	var buf strings.Builder
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s template: %w", tpl.Name(), err)
	}
	return buf.String(), nil
}
