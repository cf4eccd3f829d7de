package email

import (
	"fmt"
	"html"
	"strings"
)

const defaultBrand = "OPTIMA"

const htmlHead = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
`

const htmlFoot = `</body>
</html>`

// ContactMessageData is a message posted through the contact relay.
type ContactMessageData struct {
	Name    string
	Email   string
	Message string
}

// BuildContactMessageEmail creates the sales notification for a contact form message.
// Replies go straight to the sender.
func BuildContactMessageEmail(to string, data ContactMessageData) Message {
	textBody := fmt.Sprintf(`Name: %s
Email: %s

%s`, data.Name, data.Email, data.Message)

	htmlBody := htmlHead + fmt.Sprintf(`    <p><b>Name:</b> %s</p>
    <p><b>Email:</b> %s</p>
    <p>%s</p>
`, escape(data.Name), escape(data.Email), escapeMultiline(data.Message)) + htmlFoot

	return Message{
		To:       []string{to},
		ReplyTo:  data.Email,
		Subject:  "New Contact Form Message",
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// DemoRequestData describes one accepted demo request. Industry and FleetSize
// carry display labels.
type DemoRequestData struct {
	Name      string
	Email     string
	Company   string
	Industry  string
	FleetSize string
	Message   string
	RequestID string
	Brand     string
}

// BuildDemoRequestEmail creates the sales notification for a demo request.
func BuildDemoRequestEmail(to string, data DemoRequestData) Message {
	subject := fmt.Sprintf("New demo request: %s (%s)", data.Company, data.Name)

	message := data.Message
	if strings.TrimSpace(message) == "" {
		message = "(no message)"
	}

	textBody := fmt.Sprintf(`New demo request

Name: %s
Email: %s
Company: %s
Industry: %s
Fleet size: %s

Message:
%s

Request ID: %s`,
		data.Name, data.Email, data.Company, data.Industry, data.FleetSize, message, data.RequestID)

	htmlBody := htmlHead + fmt.Sprintf(`    <h2 style="color: #2563eb;">New demo request</h2>
    <table style="border-collapse: collapse;">
        <tr><td style="padding: 4px 12px 4px 0;"><b>Name</b></td><td>%s</td></tr>
        <tr><td style="padding: 4px 12px 4px 0;"><b>Email</b></td><td>%s</td></tr>
        <tr><td style="padding: 4px 12px 4px 0;"><b>Company</b></td><td>%s</td></tr>
        <tr><td style="padding: 4px 12px 4px 0;"><b>Industry</b></td><td>%s</td></tr>
        <tr><td style="padding: 4px 12px 4px 0;"><b>Fleet size</b></td><td>%s</td></tr>
    </table>
    <p style="background-color: #f3f4f6; padding: 10px 15px; border-radius: 4px;">%s</p>
    <p style="color: #6b7280; font-size: 12px;">Request ID: %s</p>
`,
		escape(data.Name), escape(data.Email), escape(data.Company), escape(data.Industry),
		escape(data.FleetSize), escapeMultiline(message), escape(data.RequestID)) + htmlFoot

	return Message{
		To:       []string{to},
		ReplyTo:  data.Email,
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// BuildDemoAcknowledgementEmail creates the confirmation sent to the requester.
func BuildDemoAcknowledgementEmail(data DemoRequestData) Message {
	brand := data.Brand
	if brand == "" {
		brand = defaultBrand
	}

	firstName := strings.TrimSpace(data.Name)
	if i := strings.IndexByte(firstName, ' '); i > 0 {
		firstName = firstName[:i]
	}
	if firstName == "" {
		firstName = "there"
	}

	subject := "We received your demo request"

	textBody := fmt.Sprintf(`Hi %s,

Thanks for your interest in %s. We received your demo request for %s
(%s, %s) and our team will reach out shortly to schedule it.

Thanks,
The %s Team`,
		firstName, brand, data.Company, data.Industry, data.FleetSize, brand)

	htmlBody := htmlHead + fmt.Sprintf(`    <h2 style="color: #2563eb;">Hi %s,</h2>
    <p>Thanks for your interest in %s. We received your demo request for <strong>%s</strong> (%s, %s).</p>
    <p>Our team will reach out shortly to schedule your demo.</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Thanks,<br>The %s Team</p>
`,
		escape(firstName), escape(brand), escape(data.Company), escape(data.Industry),
		escape(data.FleetSize), escape(brand)) + htmlFoot

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// BuildTestEmail creates a message for checking provider settings.
func BuildTestEmail(to, brand string) Message {
	if brand == "" {
		brand = defaultBrand
	}
	return Message{
		To:       []string{to},
		Subject:  fmt.Sprintf("%s test email", brand),
		TextBody: fmt.Sprintf("This is a test email from the %s website. Delivery works.", brand),
	}
}

func escape(s string) string {
	return html.EscapeString(s)
}

func escapeMultiline(s string) string {
	return strings.ReplaceAll(html.EscapeString(s), "\n", "<br>")
}
