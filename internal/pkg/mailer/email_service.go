package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// ContactNotification is the payload forwarded to the hotel staff inbox
// after a contact-form submission.
type ContactNotification struct {
	Name                string
	Phone               string
	Email               string
	UnansweredQuestion  string
	ConversationSummary string
}

type IEmailService interface {
	SendContactNotification(n ContactNotification) error
}

type emailService struct {
	dialer       *gomail.Dialer
	senderEmail  string
	senderName   string
	contactEmail string
}

func NewEmailService(host string, port int, username, password, senderName, contactEmail string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:       d,
		senderEmail:  username,
		senderName:   senderName,
		contactEmail: contactEmail,
	}
}

func (s *emailService) SendContactNotification(n ContactNotification) error {
	if s.dialer.Host == "" || s.contactEmail == "" {
		return fmt.Errorf("smtp not configured, skipping contact email")
	}

	phone := n.Phone
	if phone == "" {
		phone = "Not provided"
	}
	question := n.UnansweredQuestion
	if question == "" {
		question = "Not specified"
	}
	summary := n.ConversationSummary
	if summary == "" {
		summary = "No conversation history available"
	}

	body := fmt.Sprintf(`New Contact Request from the Hotel Chatbot

Guest Information:
- Name: %s
- Email: %s
- Phone: %s

Unanswered Question:
%s

Conversation Summary:
%s

---
This email was sent automatically from the hotel chatbot system.
`, n.Name, n.Email, phone, question, summary)

	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.senderEmail, s.senderName))
	m.SetHeader("To", s.contactEmail)
	m.SetHeader("Subject", fmt.Sprintf("New Contact Request from %s", n.Name))
	m.SetBody("text/plain", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send contact email: %w", err)
	}
	return nil
}
