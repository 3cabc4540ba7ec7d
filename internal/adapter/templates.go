package adapter

import (
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"
	"time"
)

const confirmationSubject = "Booking Confirmation - Eat with Chiso"

var templateFuncs = map[string]interface{}{
	"join":     func(s []string) string { return strings.Join(s, ", ") },
	"longDate": longDate,
}

// longDate renders 2026-10-20 as "Tuesday, October 20, 2026".
func longDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("Monday, January 2, 2006")
}

var confirmationHTML = htmltemplate.Must(htmltemplate.New("confirmation.html").
	Funcs(htmltemplate.FuncMap(templateFuncs)).Parse(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h1 style="color: #2d3748; border-bottom: 2px solid #4a5568; padding-bottom: 10px;">Booking Confirmation</h1>
  <p style="color: #4a5568;">Dear {{.Name}},</p>
  <p style="color: #4a5568;">Your booking has been confirmed! Here are your booking details:</p>
  <div style="background-color: #f7fafc; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <h2 style="color: #2d3748; margin-top: 0;">Booking Details</h2>
    <ul style="list-style: none; padding: 0;">
      <li><strong>Date:</strong> {{longDate .Date}}</li>
      <li><strong>Time:</strong> {{.Time}}</li>
      <li><strong>Number of Guests:</strong> {{.Guests}}</li>
    </ul>
    <h3 style="color: #2d3748; margin-top: 20px;">Menu Selections</h3>
    <ul style="list-style: none; padding: 0;">
      {{- if .PancakeType}}<li><strong>Pancakes:</strong> {{.PancakeType}}</li>{{end}}
      {{- if .EggStyle}}<li><strong>Eggs:</strong> {{.EggStyle}}</li>{{end}}
      {{- if .Sides}}<li><strong>Sides:</strong> {{join .Sides}}</li>{{end}}
      {{- if .Meat}}<li><strong>Meat:</strong> {{.Meat}}</li>{{end}}
      {{- if .Additions}}<li><strong>Additions:</strong> {{join .Additions}}</li>{{end}}
    </ul>
  </div>
  <p style="color: #4a5568;"><strong>Booking ID:</strong> {{.BookingID}}</p>
  <div style="margin-top: 30px; padding-top: 20px; border-top: 2px solid #4a5568;">
    <p style="color: #4a5568;">Thank you for choosing Eat with Chiso! We're looking forward to serving you.</p>
    <p style="color: #4a5568;">If you need to make any changes to your booking, please contact us with your booking ID.</p>
  </div>
</div>
`))

var confirmationText = texttemplate.Must(texttemplate.New("confirmation.txt").
	Funcs(texttemplate.FuncMap(templateFuncs)).Parse(`Dear {{.Name}},

Thank you for booking with Eat with Chiso! Here are your booking details:

Date: {{longDate .Date}}
Time: {{.Time}}
Party Size: {{.Guests}}

Your Menu Selections:
{{- if .PancakeType}}
- Pancakes: {{.PancakeType}}{{end}}
{{- if .EggStyle}}
- Eggs: {{.EggStyle}}{{end}}
{{- if .Sides}}
- Sides: {{join .Sides}}{{end}}
{{- if .Meat}}
- Meat: {{.Meat}}{{end}}
{{- if .Additions}}
- Additions: {{join .Additions}}{{end}}

Booking ID: {{.BookingID}}

Please keep this ID for your records. If you need to make any changes to your booking, please contact us with this ID.

Best regards,
Eat with Chiso Team
`))

func renderConfirmation(c Confirmation) (html, text string, err error) {
	var hb, tb strings.Builder
	if err := confirmationHTML.Execute(&hb, c); err != nil {
		return "", "", err
	}
	if err := confirmationText.Execute(&tb, c); err != nil {
		return "", "", err
	}
	return hb.String(), tb.String(), nil
}
