package templates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_Contact(t *testing.T) {
	data := ContactData{
		AppName: "SportsConnect",
		Name:    "Ann",
		Email:   "ann@example.com",
		Message: "<b>hello</b>",
		SentAt:  time.Now(),
	}
	subject, text, html, err := Render(Contact, data)
	require.NoError(t, err)
	assert.Equal(t, "Mail from SportsConnect Customer: ann@example.com", subject)
	assert.Contains(t, text, "<b>hello</b>")
	assert.Contains(t, html, "&lt;b&gt;hello&lt;/b&gt;")
}

func TestRender_UnknownTemplate(t *testing.T) {
	_, _, _, err := Render("missing", nil)
	assert.Error(t, err)
}
