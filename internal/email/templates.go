package email

import "fmt"

const (
	TemplateRegistrationConfirmation = "registration-confirmation"
	TemplateSessionReminder          = "session-reminder"
)

// TemplateData is the substitution payload for both templates.
type TemplateData struct {
	Name           string `json:"name"`
	SessionDate    string `json:"sessionDate"`
	SessionTime    string `json:"sessionTime"`
	SessionID      string `json:"sessionId,omitempty"`
	RegistrationID string `json:"registrationId,omitempty"`
}

// KnownTemplate reports whether the template name is one we can render.
func KnownTemplate(template string) bool {
	return template == TemplateRegistrationConfirmation || template == TemplateSessionReminder
}

const baseStyles = `
    body { font-family: 'Lato', Arial, sans-serif; background-color: #0c253f; margin: 0; padding: 40px 20px; }
    .container { max-width: 600px; margin: 0 auto; background-color: #1a3a5c; border-radius: 16px; padding: 40px; }
    .logo { text-align: center; margin-bottom: 30px; }
    h1 { color: #ffffff; font-size: 28px; margin-bottom: 20px; text-align: center; }
    .highlight { color: #00d26a; }
    p { color: #b0c4de; font-size: 16px; line-height: 1.6; margin-bottom: 16px; }
    .details-box { background-color: #0c253f; border-radius: 12px; padding: 24px; margin: 24px 0; }
    .footer { text-align: center; color: #7a8fa6; font-size: 14px; margin-top: 40px; padding-top: 20px; border-top: 1px solid #2a4a6c; }
`

func detailsTable(data TemplateData) string {
	return fmt.Sprintf(`<div class="details-box">
      <table width="100%%" cellpadding="0" cellspacing="0">
        <tr>
          <td style="color: #7a8fa6; padding-bottom: 12px;">Date</td>
          <td style="color: #ffffff; font-weight: bold; text-align: right; padding-bottom: 12px;">%s</td>
        </tr>
        <tr>
          <td style="color: #7a8fa6; padding-bottom: 12px;">Time</td>
          <td style="color: #ffffff; font-weight: bold; text-align: right; padding-bottom: 12px;">%s CET</td>
        </tr>
        <tr>
          <td style="color: #7a8fa6;">Location</td>
          <td style="color: #ffffff; font-weight: bold; text-align: right;">Forward Networks Booth, RAI Amsterdam</td>
        </tr>
      </table>
    </div>`, data.SessionDate, data.SessionTime)
}

func htmlPage(title, body string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>%s</title>
  <style>%s</style>
</head>
<body>
  <div class="container">
    <div class="logo">
      <img src="https://quest.fwd.app/logo_fn.svg" alt="Forward Networks" width="150" />
    </div>
%s
  </div>
</body>
</html>`, title, baseStyles, body)
}

// RenderHTML produces the HTML body for a template.
func RenderHTML(template string, data TemplateData) string {
	switch template {
	case TemplateRegistrationConfirmation:
		body := fmt.Sprintf(`    <h1>You're In! <span class="highlight">Quest Live</span> Awaits</h1>

    <p>Hi %s,</p>

    <p>Great news! Your spot for Quest Live at Cisco Live EMEA is confirmed. Get ready for a fun, fast-paced network challenge!</p>

    %s

    <p><strong style="color: #ffffff;">What to expect:</strong></p>
    <ul style="color: #b0c4de; line-height: 1.8;">
      <li>5 players compete head-to-head</li>
      <li>5 network challenges to solve</li>
      <li>Live leaderboard for spectators</li>
      <li>Prizes for the fastest finishers!</li>
    </ul>

    <p>Arrive 5 minutes early to check in at our booth. We'll assign you a fun player name and get you set up!</p>

    <div class="footer">
      <p>See you at the booth!</p>
      <p>Forward Networks Team</p>
    </div>`, data.Name, detailsTable(data))
		return htmlPage("Registration Confirmed", body)

	case TemplateSessionReminder:
		body := fmt.Sprintf(`    <h1>Reminder: <span class="highlight">Quest Live</span> Tomorrow!</h1>

    <p>Hi %s,</p>

    <p>Just a friendly reminder that your Quest Live session is tomorrow! Don't miss your chance to compete.</p>

    %s

    <p><strong style="color: #ffffff;">Remember:</strong></p>
    <ul style="color: #b0c4de; line-height: 1.8;">
      <li>Arrive 5 minutes early for check-in</li>
      <li>Find the Forward Networks booth</li>
      <li>Get ready to compete!</li>
    </ul>

    <div class="footer">
      <p>Good luck!</p>
      <p>Forward Networks Team</p>
    </div>`, data.Name, detailsTable(data))
		return htmlPage("Quest Live Reminder", body)
	}

	return "<p>Email template not found</p>"
}

// RenderText produces the plain-text body for a template.
func RenderText(template string, data TemplateData) string {
	switch template {
	case TemplateRegistrationConfirmation:
		return fmt.Sprintf(`Hi %s,

Your Quest Live registration is confirmed!

Session Details:
- Date: %s
- Time: %s CET
- Location: Forward Networks Booth, RAI Amsterdam

What to expect:
- 5 players compete head-to-head
- 5 network challenges to solve
- Live leaderboard for spectators
- Prizes for the fastest finishers!

Arrive 5 minutes early to check in at our booth.

See you there!
Forward Networks Team
`, data.Name, data.SessionDate, data.SessionTime)

	case TemplateSessionReminder:
		return fmt.Sprintf(`Hi %s,

Reminder: Your Quest Live session is tomorrow!

Session Details:
- Date: %s
- Time: %s CET
- Location: Forward Networks Booth, RAI Amsterdam

Remember to arrive 5 minutes early for check-in.

Good luck!
Forward Networks Team
`, data.Name, data.SessionDate, data.SessionTime)
	}

	return "Email template not found"
}
