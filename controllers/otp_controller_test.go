package controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendAndVerifyOTP(t *testing.T) {
	env := newTestEnv(t)

	w := env.doJSON(t, http.MethodPost, "/send-otp", gin.H{"email": "alice@x.com"})
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "OTP sent successfully", body["message"])

	code, ok := body["otp"].(string)
	require.True(t, ok, "response must echo the code for debugging")
	require.Len(t, code, 6)

	// The code also went out by mail.
	require.Len(t, env.Mailer.Sent, 1)
	assert.Equal(t, "alice@x.com", env.Mailer.Sent[0].To)
	assert.Contains(t, env.Mailer.Sent[0].Body, code)

	// Wrong code fails and does not consume the stored one.
	w = env.doJSON(t, http.MethodPost, "/verify-otp", gin.H{"email": "alice@x.com", "otp": "000000"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid OTP", w.Body.String())

	// Correct code succeeds exactly once.
	w = env.doJSON(t, http.MethodPost, "/verify-otp", gin.H{"email": "alice@x.com", "otp": code})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OTP verified successfully", w.Body.String())

	w = env.doJSON(t, http.MethodPost, "/verify-otp", gin.H{"email": "alice@x.com", "otp": code})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "OTP not sent or expired", w.Body.String())
}

func TestSendOTPMissingEmail(t *testing.T) {
	env := newTestEnv(t)
	w := env.doJSON(t, http.MethodPost, "/send-otp", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSendOTPMailFailureLeavesCodeStored(t *testing.T) {
	env := newTestEnv(t)
	env.Mailer.FailNext = true

	w := env.doJSON(t, http.MethodPost, "/send-otp", gin.H{"email": "alice@x.com"})
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	// The code was stored before dispatch was attempted. A wrong-code probe
	// answers "Invalid OTP" rather than "not sent", proving it survived.
	w = env.doJSON(t, http.MethodPost, "/verify-otp", gin.H{"email": "alice@x.com", "otp": "000000"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid OTP", w.Body.String(), "a live code must exist for alice despite the failed send")
}

func TestVerifyOTPMissingFields(t *testing.T) {
	env := newTestEnv(t)

	w := env.doJSON(t, http.MethodPost, "/verify-otp", gin.H{"email": "alice@x.com"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Missing email or OTP", w.Body.String())

	w = env.doJSON(t, http.MethodPost, "/verify-otp", gin.H{"otp": "123456"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Missing email or OTP", w.Body.String())
}

func TestReissueReplacesPendingCode(t *testing.T) {
	env := newTestEnv(t)

	w := env.doJSON(t, http.MethodPost, "/send-otp", gin.H{"email": "bob@x.com"})
	require.Equal(t, http.StatusOK, w.Code)
	first := decodeBody(t, w)["otp"].(string)

	w = env.doJSON(t, http.MethodPost, "/send-otp", gin.H{"email": "bob@x.com"})
	require.Equal(t, http.StatusOK, w.Code)
	second := decodeBody(t, w)["otp"].(string)

	if first != second {
		w = env.doJSON(t, http.MethodPost, "/verify-otp", gin.H{"email": "bob@x.com", "otp": first})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}
	w = env.doJSON(t, http.MethodPost, "/verify-otp", gin.H{"email": "bob@x.com", "otp": second})
	assert.Equal(t, http.StatusOK, w.Code)
}
