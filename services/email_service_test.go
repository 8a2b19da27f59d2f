package services

import (
	"errors"
	"testing"
	"watchmarket_server/lib"
	"watchmarket_server/structs"

	"github.com/resend/resend-go/v3"
)

type recordingMailer struct {
	sent []*resend.SendEmailRequest
	err  error
}

func (m *recordingMailer) Send(params *resend.SendEmailRequest) (*resend.SendEmailResponse, error) {
	m.sent = append(m.sent, params)
	if m.err != nil {
		return nil, m.err
	}
	return &resend.SendEmailResponse{Id: "msg_1"}, nil
}

func TestForgotPassword(t *testing.T) {
	m := &recordingMailer{}
	es := NewEmailService(testLogger(), &structs.EmailConfig{From: "WatchMarket <no-reply@watchmarket.app>"})
	es.mailer = m

	if err := es.ForgotPassword("jane@example.com"); err != nil {
		t.Fatal(err)
	}
	if len(m.sent) != 1 || m.sent[0].To[0] != "jane@example.com" || m.sent[0].From == "" {
		t.Fatalf("sent = %+v", m.sent)
	}

	if err := es.ForgotPassword("jane"); !errors.Is(err, lib.ErrInvalidEmail) {
		t.Fatalf("bad address err = %v", err)
	}

	m.err = errors.New("smtp down")
	if err := es.ForgotPassword("jane@example.com"); err != nil {
		t.Fatalf("delivery failure should not surface: %v", err)
	}
}

func TestEmailServiceDisabledWithoutKey(t *testing.T) {
	es := NewEmailService(testLogger(), &structs.EmailConfig{})
	if es.Enabled() {
		t.Fatal("should be disabled without an API key")
	}
	if err := es.SendEmail([]string{"a@b.co"}, "hi", "<p>hi</p>"); err != nil {
		t.Fatal(err)
	}
}
