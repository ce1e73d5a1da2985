package mailservice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTemplate(t *testing.T) {
	tp := NewTemplate()

	data := struct {
		Username string
	}{
		Username: "testuser",
	}

	subject, plainBody, htmlBody, err := tp.ParseTemplate("welcome_email.html", data)
	assert.NoError(t, err)

	assert.NotEmpty(t, subject.String())
	assert.Contains(t, plainBody.String(), "testuser")
	assert.Contains(t, htmlBody.String(), "testuser")
}

func TestParseTemplateMissing(t *testing.T) {
	tp := NewTemplate()

	_, _, _, err := tp.ParseTemplate("no_such_template.html", nil)
	assert.Error(t, err)
}
