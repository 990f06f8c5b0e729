package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
)

// EmailJSEndpoint is a package var so tests can point it at a stub server.
var EmailJSEndpoint = "https://api.emailjs.com/api/v1.0/email/send"

type emailJSRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	TemplateParams map[string]string `json:"template_params"`
}

// EmailService sends transactional notifications through EmailJS. Every send
// is best-effort: callers report failures as warnings, never as errors of the
// parent operation.
type EmailService struct {
	ServiceID  string
	TemplateID string
	PublicKey  string
}

func NewEmailServiceFromEnv() *EmailService {
	return &EmailService{
		ServiceID:  os.Getenv("EMAILJS_SERVICE_ID"),
		TemplateID: os.Getenv("EMAILJS_TEMPLATE_ID"),
		PublicKey:  os.Getenv("EMAILJS_PUBLIC_KEY"),
	}
}

// Enabled reports whether the service is configured. An unconfigured service
// skips sends silently rather than producing warnings on every share.
func (s *EmailService) Enabled() bool {
	return s.ServiceID != "" && s.TemplateID != "" && s.PublicKey != ""
}

func (s *EmailService) SendShareNotification(toEmail, senderEmail, personalNote string) error {
	return s.send(map[string]string{
		"to_email":      toEmail,
		"inviter_email": senderEmail,
		"personal_note": personalNote,
		"kind":          "share",
	})
}

func (s *EmailService) SendCapsuleInvite(toEmail, inviterEmail, capsuleName string) error {
	return s.send(map[string]string{
		"to_email":      toEmail,
		"inviter_email": inviterEmail,
		"capsule_name":  capsuleName,
		"kind":          "capsule_invite",
	})
}

func (s *EmailService) send(params map[string]string) error {
	payload := emailJSRequest{
		ServiceID:      s.ServiceID,
		TemplateID:     s.TemplateID,
		UserID:         s.PublicKey,
		TemplateParams: params,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal email payload: %w", err)
	}

	resp, err := http.Post(EmailJSEndpoint, "application/json", bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("email provider returned status %d", resp.StatusCode)
	}

	return nil
}
