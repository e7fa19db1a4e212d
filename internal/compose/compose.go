// Package compose turns a contact form submission into a message the
// visitor's own mail client can send.
package compose

import (
	"net/url"
	"strings"
)

// Message is a contact form submission.
type Message struct {
	Name    string `form:"name" json:"name" binding:"required"`
	Email   string `form:"email" json:"email" binding:"required"`
	Message string `form:"message" json:"message" binding:"required"`
}

// Composed is a message ready to hand off.
type Composed struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// FieldError lists the form fields that were left blank.
type FieldError struct {
	Fields []string
}

func (e *FieldError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// Validate checks that every field is present. It does not check formats.
func (m Message) Validate() error {
	var missing []string
	if strings.TrimSpace(m.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(m.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(m.Message) == "" {
		missing = append(missing, "message")
	}
	if len(missing) > 0 {
		return &FieldError{Fields: missing}
	}
	return nil
}

// Compose builds the subject and body addressed to to.
func Compose(to string, m Message) Composed {
	name := strings.TrimSpace(m.Name)
	email := strings.TrimSpace(m.Email)

	subject := "Inquiry from your website"
	if name != "" {
		subject = "Inquiry from " + name
	}

	signature := "— " + name
	if email != "" {
		signature += " <" + email + ">"
	}

	return Composed{
		To:      to,
		Subject: subject,
		Body:    strings.Join([]string{m.Message, "", signature}, "\n"),
	}
}

// MailtoURL renders c as a mailto link. Spaces are encoded as %20 since
// mail clients do not treat '+' as a space in mailto query values.
func MailtoURL(c Composed) string {
	return "mailto:" + c.To +
		"?subject=" + escape(c.Subject) +
		"&body=" + escape(c.Body)
}

func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
