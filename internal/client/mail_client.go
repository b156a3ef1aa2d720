package client

import (
	"fmt"
	"net/smtp"
	"strings"
)

// MailClient sends mail through a plain SMTP relay.
type MailClient struct {
	host     string
	port     string
	user     string
	password string
}

func NewMailClient(host string, port string, user string, password string) *MailClient {
	return &MailClient{
		host:     host,
		port:     port,
		user:     user,
		password: password,
	}
}

// SendHTML sends a single HTML message.
func (c *MailClient) SendHTML(from string, to string, subject string, body string) error {
	headers := []string{
		fmt.Sprintf("From: %s", from),
		fmt.Sprintf("To: %s", to),
		fmt.Sprintf("Subject: %s", subject),
		"MIME-Version: 1.0",
		`Content-Type: text/html; charset="UTF-8"`,
	}
	message := strings.Join(headers, "\r\n") + "\r\n\r\n" + body

	auth := smtp.PlainAuth("", c.user, c.password, c.host)
	address := fmt.Sprintf("%s:%s", c.host, c.port)

	return smtp.SendMail(address, auth, from, []string{to}, []byte(message))
}
