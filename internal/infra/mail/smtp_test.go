package mail

import (
	"context"
	"net/smtp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSend_Disabled(t *testing.T) {
	s := NewSMTPSender("", "587", "", "")
	assert.ErrorIs(t, s.Send(context.Background(), Message{To: "a@b.c"}), ErrDisabled)
}

func TestSend_BuildsMessage(t *testing.T) {
	s := NewSMTPSender("smtp.example.com", "587", "gallery@example.com", "pw")

	var gotAddr string
	var gotTo []string
	var gotMsg []byte
	s.send = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotTo, gotMsg = addr, to, msg
		return nil
	}

	err := s.Send(context.Background(), Message{
		To:      "studio@example.com",
		ReplyTo: "visitor@example.com\r\nBcc: evil@example.com",
		Subject: "New inquiry",
		Body:    "Hello",
	})
	require.NoError(t, err)

	assert.Equal(t, "smtp.example.com:587", gotAddr)
	assert.Equal(t, []string{"studio@example.com"}, gotTo)
	msg := string(gotMsg)
	assert.Contains(t, msg, "Subject: New inquiry\r\n")
	assert.Contains(t, msg, "Reply-To: visitor@example.com  Bcc: evil@example.com\r\n")
	assert.NotContains(t, msg, "\r\nBcc:")
}
