package mail

import (
	"bytes"
	"fmt"
	"text/template"

	"gopkg.in/gomail.v2"
)

const followupInviteTemplate = `<p>Hey {{.Name}},</p>
<p>Love that you're interested in using HomePilot for your own launch.</p>
<p>You're on the early list — and we're working hard to ship something special for people like you.</p>
<p>Soon, you'll be able to pick a plan, plug it in, and launch your own waitlist that actually qualifies the right people.</p>
<p>Hang tight, we'll be in touch soon.</p>
<p>– The HomePilot Team</p>`

func NewEmailSender(host string, port int, user, password, from string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
	}
}

// SendFollowupInvite mails the "get your own HomePilot" invite to a
// follow-up respondent who answered yes.
func (s *EmailSender) SendFollowupInvite(to, name string) error {
	t, err := template.New("followup_invite").Parse(followupInviteTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse invite template: %w", err)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, FollowupInviteData{Name: name}); err != nil {
		return fmt.Errorf("failed to render invite template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "You bit. Let's get you your own HomePilot")
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send invite mail: %w", err)
	}

	return nil
}
