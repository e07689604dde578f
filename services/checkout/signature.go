package checkout

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	"staybook/errors"

	json "github.com/goccy/go-json"
)

// signatureTolerance bounds how old a notification timestamp may be before
// it is rejected as a possible replay.
const signatureTolerance = 5 * time.Minute

type eventEnvelope struct {
	Type string `json:"type"`
	Data struct {
		Object struct {
			ID            string            `json:"id"`
			PaymentIntent string            `json:"payment_intent"`
			Metadata      map[string]string `json:"metadata"`
		} `json:"object"`
	} `json:"data"`
}

// VerifyNotification checks the `t=<unix>,v1=<hex hmac>` signature header
// against the raw payload and decodes the event. It fails closed: any parse
// or signature mismatch rejects the notification without touching state.
func (c *Client) VerifyNotification(payload []byte, signatureHeader string) (*Event, error) {
	timestamp, signature, err := parseSignatureHeader(signatureHeader)
	if err != nil {
		return nil, err
	}

	if time.Since(time.Unix(timestamp, 0)) > signatureTolerance {
		return nil, errors.NewAppError(errors.ErrCodeValidation, "Notification timestamp too old", errors.ErrInvalidSignature)
	}

	expected := ComputeSignature(c.webhookSecret, timestamp, payload)
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return nil, errors.NewAppError(errors.ErrCodeValidation, "Webhook signature mismatch", errors.ErrInvalidSignature)
	}

	var envelope eventEnvelope
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeValidation, "Malformed event payload", err)
	}

	return &Event{
		Type:          envelope.Type,
		SessionID:     envelope.Data.Object.ID,
		PaymentIntent: envelope.Data.Object.PaymentIntent,
		Metadata:      envelope.Data.Object.Metadata,
	}, nil
}

// ComputeSignature returns hex(HMAC-SHA256(secret, "<timestamp>.<payload>")).
// Exported so tests and local tooling can forge valid headers.
func ComputeSignature(secret string, timestamp int64, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.", timestamp)
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

// SignatureHeader builds a header value the way the provider does.
func SignatureHeader(secret string, timestamp int64, payload []byte) string {
	return fmt.Sprintf("t=%d,v1=%s", timestamp, ComputeSignature(secret, timestamp, payload))
}

func parseSignatureHeader(header string) (int64, string, error) {
	if header == "" {
		return 0, "", errors.NewAppError(errors.ErrCodeValidation, "Missing signature header", errors.ErrInvalidSignature)
	}

	var timestamp int64
	var signature string

	for _, part := range strings.Split(header, ",") {
		key, value, found := strings.Cut(strings.TrimSpace(part), "=")
		if !found {
			continue
		}
		switch key {
		case "t":
			parsed, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return 0, "", errors.NewAppError(errors.ErrCodeValidation, "Bad signature timestamp", errors.ErrInvalidSignature)
			}
			timestamp = parsed
		case "v1":
			signature = value
		}
	}

	if timestamp == 0 || signature == "" {
		return 0, "", errors.NewAppError(errors.ErrCodeValidation, "Incomplete signature header", errors.ErrInvalidSignature)
	}

	return timestamp, signature, nil
}
