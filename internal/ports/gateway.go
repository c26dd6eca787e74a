package ports

import "context"

// ConfirmResult carries the gateway's record of a settled payment.
type ConfirmResult struct {
	PaymentID string
}

// PaymentGateway is the server-to-server surface of the external payment
// processor. Confirm verifies a client-initiated payment actually succeeded;
// Cancel reverses a settled one. A rejection from the processor surfaces as
// *domain.GatewayError; a transport failure comes back as a plain error and
// the outcome must be treated as unknown.
type PaymentGateway interface {
	Confirm(ctx context.Context, paymentKey, orderRef string, amount int64) (ConfirmResult, error)
	Cancel(ctx context.Context, paymentKey, reason string) error
}
