package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendShareNotificationPayload(t *testing.T) {
	var got emailJSRequest

	stub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer stub.Close()

	previous := EmailJSEndpoint
	EmailJSEndpoint = stub.URL
	defer func() { EmailJSEndpoint = previous }()

	svc := &EmailService{ServiceID: "svc", TemplateID: "tpl", PublicKey: "key"}

	err := svc.SendShareNotification("bob@example.com", "alice@example.com", "a note")
	require.NoError(t, err)

	assert.Equal(t, "svc", got.ServiceID)
	assert.Equal(t, "tpl", got.TemplateID)
	assert.Equal(t, "key", got.UserID)
	assert.Equal(t, "bob@example.com", got.TemplateParams["to_email"])
	assert.Equal(t, "alice@example.com", got.TemplateParams["inviter_email"])
	assert.Equal(t, "a note", got.TemplateParams["personal_note"])
}

func TestSendReportsUpstreamFailure(t *testing.T) {
	stub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad key", http.StatusForbidden)
	}))
	defer stub.Close()

	previous := EmailJSEndpoint
	EmailJSEndpoint = stub.URL
	defer func() { EmailJSEndpoint = previous }()

	svc := &EmailService{ServiceID: "svc", TemplateID: "tpl", PublicKey: "key"}

	err := svc.SendCapsuleInvite("bob@example.com", "alice@example.com", "Us Two")
	assert.Error(t, err)
}

func TestEnabledRequiresFullConfig(t *testing.T) {
	assert.False(t, (&EmailService{}).Enabled())
	assert.False(t, (&EmailService{ServiceID: "svc", TemplateID: "tpl"}).Enabled())
	assert.True(t, (&EmailService{ServiceID: "svc", TemplateID: "tpl", PublicKey: "key"}).Enabled())
}
