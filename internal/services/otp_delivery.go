package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/udyam-reg/app-udyam/internal/logging"
	"github.com/udyam-reg/app-udyam/internal/observability"
	"github.com/udyam-reg/app-udyam/internal/utils"
	"github.com/udyam-reg/app-udyam/internal/utils/httpclient"
	"go.uber.org/zap"
)

// OTPDelivery hands a freshly issued code to the user
type OTPDelivery interface {
	// Deliver sends code to phone. It returns the code when the caller must
	// display it itself, or "" when the code went out of band.
	Deliver(ctx context.Context, phone, code string) (string, error)
}

// EchoDelivery returns the code to the caller instead of sending it.
// This is demo behavior and offers no proof of phone ownership.
type EchoDelivery struct{}

func (EchoDelivery) Deliver(_ context.Context, _ string, code string) (string, error) {
	return code, nil
}

// SMSDelivery posts codes to an HTTP SMS gateway
type SMSDelivery struct {
	gatewayURL string
	token      string
	senderID   string
	client     *http.Client
	logger     *logging.SafeLogger
}

// smsGatewayRequest is the JSON body sent to the SMS gateway
type smsGatewayRequest struct {
	To      string `json:"to"`
	Sender  string `json:"sender"`
	Message string `json:"message"`
}

// NewSMSDelivery creates an SMS delivery. client may be nil.
func NewSMSDelivery(gatewayURL, token, senderID string, client *http.Client, logger *logging.SafeLogger) *SMSDelivery {
	if client == nil {
		client = httpclient.New(httpclient.DefaultTimeout)
	}
	return &SMSDelivery{
		gatewayURL: gatewayURL,
		token:      token,
		senderID:   senderID,
		client:     client,
		logger:     logger,
	}
}

func (d *SMSDelivery) Deliver(ctx context.Context, phone, code string) (string, error) {
	ctx, span, cleanup := utils.TraceExternalService(ctx, "sms_gateway", "send_otp")
	defer cleanup()

	to, err := utils.FormatIndianMobileE164(phone)
	if err != nil {
		utils.RecordErrorInSpan(span, err, nil)
		return "", fmt.Errorf("cannot format phone for sms: %w", err)
	}

	body, err := json.Marshal(smsGatewayRequest{
		To:      to,
		Sender:  d.senderID,
		Message: fmt.Sprintf("%s is your Udyam registration OTP. Do not share it with anyone.", code),
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode sms request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.gatewayURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build sms request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if d.token != "" {
		req.Header.Set("Authorization", "Bearer "+d.token)
	}
	httpclient.InjectTraceHeaders(req)

	resp, err := d.client.Do(req)
	if err != nil {
		utils.RecordErrorInSpan(span, err, nil)
		return "", fmt.Errorf("sms gateway request failed: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	utils.AddSpanAttribute(span, "http.status_code", resp.StatusCode)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		err := fmt.Errorf("sms gateway returned status %d", resp.StatusCode)
		utils.RecordErrorInSpan(span, err, nil)
		return "", err
	}

	d.logger.Debug("otp sent by sms", zap.String("mobile", observability.MaskPhone(phone)))
	return "", nil
}
