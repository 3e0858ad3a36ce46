// Package mail delivers review notifications. Delivery is best effort, the
// caller treats a failed notification as a log line, never as an error.
package mail

import (
	"fmt"
	"log"
	"net/smtp"

	"github.com/storedocs/storedocs/core"
	"github.com/storedocs/storedocs/util"
)

// A LogMailer writes notifications to the log. It is the default when no
// mail.ini is present.
type LogMailer struct{}

func (LogMailer) Send(to, subject, message string) error {
	log.Printf("notification for %s: %s", to, subject)
	return nil
}

// An SMTPMailer sends notifications through a relay, configured in
// config/mail.ini with the keys host, port, from, user, password and domain.
type SMTPMailer struct {
	Addr     string // host:port
	From     string
	User     string
	Password string
	Host     string
	Domain   string // appended to bare usernames
}

// NewMailer returns an SMTPMailer if config/mail.ini exists and names a
// host, else a LogMailer.
func NewMailer() core.Mailer {

	cfg, err := util.Ini("mail.ini")
	if err != nil {
		return LogMailer{}
	}

	var host = cfg["host"]
	if host == "" {
		return LogMailer{}
	}

	var port = cfg["port"]
	if port == "" {
		port = "587"
	}

	return &SMTPMailer{
		Addr:     host + ":" + port,
		From:     cfg["from"],
		User:     cfg["user"],
		Password: cfg["password"],
		Host:     host,
		Domain:   cfg["domain"],
	}
}

func (m *SMTPMailer) Send(to, subject, message string) error {

	// recipients are usernames, the domain makes them addresses
	if m.Domain != "" {
		to = to + "@" + m.Domain
	}

	var body = fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n", m.From, to, subject, message)

	var auth smtp.Auth
	if m.User != "" {
		auth = smtp.PlainAuth("", m.User, m.Password, m.Host)
	}

	return smtp.SendMail(m.Addr, auth, m.From, []string{to}, []byte(body))
}
