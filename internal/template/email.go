// Package template renders the HTML bodies of outbound transactional mail.
package template

import (
	"bytes"
	"html/template"
)

const (
	ResetPasswordSubject = "Admin Password Reset"
	AdoptionAlertSubject = "New Adoption Request: "
)

var resetPasswordTmpl = template.Must(template.New("reset_password").Parse(`
<div style="font-family: Arial, sans-serif; padding: 20px;">
  <h3>Password Reset</h3>
  <p>Click below to reset your password (expires in 15 minutes):</p>
  <a href="{{.ResetLink}}" style="display:inline-block;padding:8px 14px;background:#1976d2;color:white;border-radius:6px;text-decoration:none;">Reset Password</a>
  <p style="font-size:12px;color:#666;margin-top:10px;">If you didn't request this, ignore it.</p>
</div>
`))

var adoptionAlertTmpl = template.Must(template.New("adoption_alert").Parse(`
<h2>New Adoption Request</h2>
<p><strong>Pet:</strong> {{.ProductName}}</p>
<p><strong>Requested by:</strong> {{if .UserName}}{{.UserName}}{{else}}Unknown{{end}} ({{.UserEmail}})</p>
{{if .UserContact}}<p><strong>Contact:</strong> {{.UserContact}}</p>{{end}}
{{if .Message}}<p><strong>Message:</strong> {{.Message}}</p>{{end}}
<hr/>
<p>Login to your admin dashboard to view and respond to this request.</p>
`))

// AdoptionAlertData feeds the operator-alert mail. Requester fields are
// user-supplied and escaped by html/template.
type AdoptionAlertData struct {
	ProductName string
	UserName    string
	UserEmail   string
	UserContact string
	Message     string
}

func RenderResetPassword(resetLink string) (string, error) {
	var b bytes.Buffer
	if err := resetPasswordTmpl.Execute(&b, struct{ ResetLink string }{ResetLink: resetLink}); err != nil {
		return "", err
	}
	return b.String(), nil
}

func RenderAdoptionAlert(data AdoptionAlertData) (string, error) {
	var b bytes.Buffer
	if err := adoptionAlertTmpl.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}
