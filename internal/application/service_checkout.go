package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/horu2day/saleslicense/internal/domain"
)

// CreateOrder opens a checkout: it validates the product, computes the total
// with decimal arithmetic and inserts a pending order. The returned reference
// and integer amount are what the client hands to the gateway's hosted widget.
func (s *Service) CreateOrder(ctx context.Context, actor Actor, input CreateOrderInput) (CheckoutSession, error) {
	if !actor.authenticated() {
		return CheckoutSession{}, domain.ErrUnauthorized
	}
	quantity := input.Quantity
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 1 {
		return CheckoutSession{}, domain.ErrInvalidInput
	}

	product, err := s.products.GetByID(ctx, input.ProductID)
	if err != nil {
		return CheckoutSession{}, err
	}
	if !product.Active {
		// Inactive listings are indistinguishable from absent ones to buyers.
		return CheckoutSession{}, domain.ErrNotFound
	}

	now := s.nowFn()
	order, err := s.orders.Create(ctx, domain.Order{
		BuyerID:    actor.UserID,
		SellerID:   product.SellerID,
		ProductID:  product.ID,
		Quantity:   quantity,
		UnitPrice:  product.Price,
		TotalPrice: product.Price.Mul(decimal.NewFromInt(int64(quantity))),
		Currency:   product.Currency,
		Status:     domain.OrderPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		return CheckoutSession{}, fmt.Errorf("create pending order: %w", err)
	}

	s.log().InfoContext(ctx, "pending order created",
		"operation", "create_order",
		"outcome", "success",
		"order_id", order.ID,
		"product_id", product.ID,
		"buyer_id", actor.UserID,
		"total_price", order.TotalPrice.String(),
	)
	return CheckoutSession{
		OrderRef:    domain.FormatOrderRef(order.ID, now),
		Amount:      order.ChargeAmount(),
		ProductName: product.Title,
	}, nil
}

// ConfirmPayment is the server-side leg of checkout. It validates the claimed
// amount against the stored total, confirms the charge with the gateway, and
// settles the order and license key in one storage transaction guarded by a
// compare-and-swap on the pending status. A duplicate confirmation loses the
// swap and gets ErrConflict, so at most one call ever issues a key.
func (s *Service) ConfirmPayment(ctx context.Context, actor Actor, input ConfirmPaymentInput) (ConfirmPaymentResult, error) {
	if !actor.authenticated() {
		return ConfirmPaymentResult{}, domain.ErrUnauthorized
	}
	orderID, err := domain.ParseOrderRef(input.OrderRef)
	if err != nil {
		return ConfirmPaymentResult{}, err
	}
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return ConfirmPaymentResult{}, err
	}
	if order.BuyerID != actor.UserID {
		return ConfirmPaymentResult{}, domain.ErrUnauthorized
	}
	if order.Status != domain.OrderPending {
		return ConfirmPaymentResult{}, fmt.Errorf("%w: order %d is %s", domain.ErrConflict, order.ID, order.Status)
	}
	if input.Amount != order.ChargeAmount() {
		s.log().WarnContext(ctx, "payment amount mismatch",
			"operation", "confirm_payment",
			"outcome", "failure",
			"order_id", order.ID,
			"claimed_amount", input.Amount,
			"expected_amount", order.ChargeAmount(),
		)
		return ConfirmPaymentResult{}, domain.ErrAmountMismatch
	}

	confirmation, err := s.gateway.Confirm(ctx, input.PaymentKey, input.OrderRef, input.Amount)
	if err != nil {
		// The order stays pending: a timeout is an ambiguous outcome and the
		// payment may have settled on the gateway side.
		s.log().WarnContext(ctx, "gateway confirmation failed",
			"operation", "confirm_payment",
			"outcome", "failure",
			"order_id", order.ID,
			"error", err.Error(),
		)
		return ConfirmPaymentResult{}, err
	}

	key, err := s.settleOrder(ctx, order, confirmation.PaymentID, actor.UserID)
	if err != nil {
		return ConfirmPaymentResult{}, err
	}

	if err := s.sellers.AddSale(ctx, order.SellerID, order.TotalPrice); err != nil {
		s.log().WarnContext(ctx, "seller counters not updated",
			"operation", "confirm_payment",
			"order_id", order.ID,
			"seller_id", order.SellerID,
			"error", err.Error(),
		)
	}

	productName := ""
	if product, err := s.products.GetByID(ctx, order.ProductID); err == nil {
		productName = product.Title
	} else {
		s.log().WarnContext(ctx, "product name lookup failed",
			"operation", "confirm_payment",
			"order_id", order.ID,
			"product_id", order.ProductID,
			"error", err.Error(),
		)
	}

	s.log().InfoContext(ctx, "order completed",
		"operation", "confirm_payment",
		"outcome", "success",
		"order_id", order.ID,
		"transaction_id", confirmation.PaymentID,
	)
	return ConfirmPaymentResult{ProductName: productName, LicenseKey: key.Key}, nil
}

// settleOrder runs the completion transaction, regenerating the license key at
// most once when storage reports a uniqueness collision.
func (s *Service) settleOrder(ctx context.Context, order domain.Order, transactionID string, buyerID int64) (domain.LicenseKey, error) {
	issued, err := s.orders.CompleteWithLicense(ctx, order.ID, transactionID, s.newPurchaseKey(order, buyerID))
	if errors.Is(err, domain.ErrDuplicateKey) {
		issued, err = s.orders.CompleteWithLicense(ctx, order.ID, transactionID, s.newPurchaseKey(order, buyerID))
	}
	if err != nil {
		return domain.LicenseKey{}, err
	}
	return issued, nil
}

func (s *Service) newPurchaseKey(order domain.Order, buyerID int64) domain.LicenseKey {
	now := s.nowFn()
	expires := now.Add(s.cfg.LicenseValidity)
	orderID := order.ID
	return domain.LicenseKey{
		ProductID:      order.ProductID,
		Key:            domain.NewKeyString(order.ProductID),
		BuyerID:        &buyerID,
		OrderID:        &orderID,
		Status:         domain.LicenseActive,
		ActivatedAt:    &now,
		ExpiresAt:      &expires,
		MaxActivations: 1,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// FailPayment records the gateway's failure redirect. Best-effort: a missing
// or already-settled order is logged and ignored, only a malformed reference
// is reported back.
func (s *Service) FailPayment(ctx context.Context, input FailPaymentInput) error {
	orderID, err := domain.ParseOrderRef(input.OrderRef)
	if err != nil {
		return err
	}
	log := s.log().With(
		"operation", "fail_payment",
		"order_id", orderID,
		"gateway_code", input.Code,
		"gateway_message", input.Message,
	)
	if _, err := s.orders.GetByID(ctx, orderID); err != nil {
		log.WarnContext(ctx, "failure callback for unknown order")
		return nil
	}
	if err := s.orders.MarkFailed(ctx, orderID); err != nil {
		log.WarnContext(ctx, "order not moved to failed", "error", err.Error())
		return nil
	}
	log.InfoContext(ctx, "order marked failed", "outcome", "success")
	return nil
}

// RefundOrder cancels a settled payment at the gateway, moves the order to its
// terminal refunded state and revokes the key issued for it.
func (s *Service) RefundOrder(ctx context.Context, actor Actor, input RefundInput) error {
	if !actor.authenticated() {
		return domain.ErrUnauthorized
	}
	order, err := s.orders.GetByID(ctx, input.OrderID)
	if err != nil {
		return err
	}
	if order.SellerID != actor.UserID {
		return domain.ErrUnauthorized
	}
	if order.Status != domain.OrderCompleted || order.TransactionID == "" {
		return fmt.Errorf("%w: order %d is not refundable", domain.ErrConflict, order.ID)
	}

	if err := s.gateway.Cancel(ctx, order.TransactionID, input.Reason); err != nil {
		s.log().WarnContext(ctx, "gateway cancel failed",
			"operation", "refund_order",
			"outcome", "failure",
			"order_id", order.ID,
			"error", err.Error(),
		)
		return err
	}
	if err := s.orders.MarkRefunded(ctx, order.ID); err != nil {
		return err
	}
	if err := s.licenses.RevokeByOrder(ctx, order.ID); err != nil {
		s.log().WarnContext(ctx, "license not revoked after refund",
			"operation", "refund_order",
			"order_id", order.ID,
			"error", err.Error(),
		)
	}
	s.log().InfoContext(ctx, "order refunded",
		"operation", "refund_order",
		"outcome", "success",
		"order_id", order.ID,
	)
	return nil
}

// MyOrders lists the caller's purchases, newest first.
func (s *Service) MyOrders(ctx context.Context, actor Actor) ([]domain.Order, error) {
	if !actor.authenticated() {
		return nil, domain.ErrUnauthorized
	}
	return s.orders.ListByBuyer(ctx, actor.UserID)
}

// SellingOrders lists orders placed against the caller's products.
func (s *Service) SellingOrders(ctx context.Context, actor Actor) ([]domain.Order, error) {
	if !actor.authenticated() {
		return nil, domain.ErrUnauthorized
	}
	return s.orders.ListBySeller(ctx, actor.UserID)
}
