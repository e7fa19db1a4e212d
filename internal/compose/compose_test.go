package compose

import (
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompose(t *testing.T) {
	c := Compose("me@example.com", Message{Name: "Jane Doe", Email: "jane@co.com", Message: "Hello there"})

	assert.Equal(t, "me@example.com", c.To)
	assert.Equal(t, "Inquiry from Jane Doe", c.Subject)
	assert.Equal(t, "Hello there\n\n— Jane Doe <jane@co.com>", c.Body)
}

func TestComposeBlankNameAndEmail(t *testing.T) {
	c := Compose("me@example.com", Message{Message: "hi"})

	assert.Equal(t, "Inquiry from your website", c.Subject)
	assert.Equal(t, "hi\n\n— ", c.Body)
}

func TestMailtoURLRoundTrips(t *testing.T) {
	c := Compose("me@example.com", Message{Name: "A & B", Email: "ab@x.io", Message: "line one\nline two?"})
	link := MailtoURL(c)

	assert.NotContains(t, link, "+")

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "mailto", u.Scheme)
	assert.Equal(t, "me@example.com", u.Opaque)
	q := u.Query()
	assert.Equal(t, c.Subject, q.Get("subject"))
	assert.Equal(t, c.Body, q.Get("body"))
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Message{Name: "n", Email: "e", Message: "m"}.Validate())

	err := Message{Name: "  ", Message: "m"}.Validate()
	var fe *FieldError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, []string{"name", "email"}, fe.Fields)
	assert.Equal(t, "missing required fields: name, email", err.Error())
}
