// Package checkout talks to the hosted-checkout payment provider. The
// provider collects card details on its own pages and reports completion
// asynchronously through a signed webhook.
package checkout

import (
	"context"

	"staybook/errors"
)

type CreateSessionParams struct {
	Amount        int64  // minor units (cents)
	Currency      string
	ProductName   string
	CustomerEmail string
	SuccessURL    string
	CancelURL     string
	Metadata      map[string]string
}

// Session is the provider's hosted checkout session: ID is the transaction
// id we key local payment rows by, URL is where the customer is redirected.
type Session struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// Event is a verified provider notification.
type Event struct {
	Type          string
	SessionID     string
	PaymentIntent string
	Metadata      map[string]string
}

// EventCheckoutCompleted is the only event type the reconciliation flow
// consumes; everything else is acknowledged and dropped.
const EventCheckoutCompleted = "checkout.session.completed"

// Provider is the external payment collaborator boundary. Exactly one
// implementation (Client) is wired at startup; tests substitute fakes.
type Provider interface {
	CreateSession(ctx context.Context, params CreateSessionParams) (*Session, error)
	VerifyNotification(payload []byte, signatureHeader string) (*Event, error)
	ReceiptURL(ctx context.Context, paymentIntentID string) (string, error)
}

// BookingIDMetadataKey is the metadata field carrying our booking id through
// the provider and back in the webhook.
const BookingIDMetadataKey = "bookingId"

// BookingID extracts the embedded booking id from event metadata.
func (e *Event) BookingID() (string, error) {
	id, ok := e.Metadata[BookingIDMetadataKey]
	if !ok || id == "" {
		return "", errors.NewAppError(errors.ErrCodeValidation, "Missing bookingId", errors.ErrMissingMetadata)
	}
	return id, nil
}
