package mailer

import (
	"context"
	"testing"
	"time"
)

func TestNewSMTPSender_Defaults(t *testing.T) {
	s := NewSMTPSender(Config{Host: "smtp.example.com"})
	if s.cfg.Port != 465 {
		t.Errorf("expected default port 465, got %d", s.cfg.Port)
	}
	if s.cfg.Timeout != 30*time.Second {
		t.Errorf("expected default timeout 30s, got %v", s.cfg.Timeout)
	}
}

func TestNewSMTPSender_KeepsExplicitConfig(t *testing.T) {
	s := NewSMTPSender(Config{Host: "smtp.example.com", Port: 587, Timeout: 5 * time.Second})
	if s.cfg.Port != 587 {
		t.Errorf("expected port 587, got %d", s.cfg.Port)
	}
	if s.cfg.Timeout != 5*time.Second {
		t.Errorf("expected timeout 5s, got %v", s.cfg.Timeout)
	}
}

func TestSMTPSender_Send_RejectsEmptyRecipient(t *testing.T) {
	s := NewSMTPSender(Config{
		Host:        "smtp.example.com",
		FromAddress: "noreply@example.com",
		FromName:    "Test",
	})
	if err := s.Send(context.Background(), Message{Subject: "x", TextBody: "y"}); err == nil {
		t.Fatal("expected error for missing recipient")
	}
}

func TestSMTPSender_Send_RejectsInvalidAddresses(t *testing.T) {
	s := NewSMTPSender(Config{
		Host:        "smtp.example.com",
		FromAddress: "not an address",
		FromName:    "Test",
	})
	err := s.Send(context.Background(), Message{To: "dest@example.com", TextBody: "y"})
	if err == nil {
		t.Fatal("expected error for invalid from address")
	}
}
