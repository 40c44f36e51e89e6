package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendWelcome(toEmail, name, memberId string) error
	SendInterestNotification(toEmail, name, contactNo, message string) error
	SendProfileInterestNotification(toEmail, customerName, memId, profileName, profileMemId string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	senderName  string
}

func NewEmailService(host string, port int, username, password, senderEmail, senderName string) IEmailService {
	return &emailService{
		dialer:      gomail.NewDialer(host, port, username, password),
		senderEmail: senderEmail,
		senderName:  senderName,
	}
}

func (s *emailService) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.senderEmail, s.senderName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)
	return s.dialer.DialAndSend(m)
}

func (s *emailService) SendWelcome(toEmail, name, memberId string) error {
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Welcome to Viwahaa Matrimony, %s!</h2>
			<p>Your member id is <strong>%s</strong>. Keep it handy when contacting our team.</p>
			<p>You can now sign in, complete your profile and set your partner preferences.</p>
		</div>
	`, name, memberId)
	return s.send(toEmail, "Welcome to Viwahaa Matrimony", body)
}

// SendInterestNotification forwards a landing-page enquiry to the back office.
func (s *emailService) SendInterestNotification(toEmail, name, contactNo, message string) error {
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>New enquiry received</h2>
			<p><strong>Name:</strong> %s</p>
			<p><strong>Contact:</strong> %s</p>
			<p><strong>Message:</strong> %s</p>
		</div>
	`, name, contactNo, message)
	return s.send(toEmail, "New enquiry from the website", body)
}

func (s *emailService) SendProfileInterestNotification(toEmail, customerName, memId, profileName, profileMemId string) error {
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Profile interest submitted</h2>
			<p><strong>%s</strong> (%s) is interested in <strong>%s</strong> (%s).</p>
			<p>Please follow up with both parties.</p>
		</div>
	`, customerName, memId, profileName, profileMemId)
	return s.send(toEmail, "New profile interest", body)
}
