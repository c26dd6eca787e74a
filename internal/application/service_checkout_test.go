package application

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/horu2day/saleslicense/internal/adapters/memory"
	"github.com/horu2day/saleslicense/internal/domain"
	"github.com/horu2day/saleslicense/internal/ports"
)

type fakeGateway struct {
	confirmCalls   int
	cancelCalls    int
	confirmErr     error
	cancelErr      error
	lastPaymentKey string
	lastOrderRef   string
	lastAmount     int64
	lastReason     string
}

func (g *fakeGateway) Confirm(_ context.Context, paymentKey, orderRef string, amount int64) (ports.ConfirmResult, error) {
	g.confirmCalls++
	g.lastPaymentKey = paymentKey
	g.lastOrderRef = orderRef
	g.lastAmount = amount
	if g.confirmErr != nil {
		return ports.ConfirmResult{}, g.confirmErr
	}
	return ports.ConfirmResult{PaymentID: "txn-" + paymentKey}, nil
}

func (g *fakeGateway) Cancel(_ context.Context, paymentKey, reason string) error {
	g.cancelCalls++
	g.lastPaymentKey = paymentKey
	g.lastReason = reason
	return g.cancelErr
}

func newTestService(t *testing.T) (*Service, *memory.Repositories, *fakeGateway) {
	t.Helper()
	repos := memory.NewRepositories()
	gw := &fakeGateway{}
	svc := NewService(Dependencies{
		Products:  repos.Products,
		Orders:    repos.Orders,
		Licenses:  repos.Licenses,
		Reviews:   repos.Reviews,
		Downloads: repos.Downloads,
		Sellers:   repos.Sellers,
		Gateway:   gw,
	})
	return svc, repos, gw
}

var (
	seller = Actor{UserID: 1}
	buyer  = Actor{UserID: 2}
)

func listProduct(t *testing.T, svc *Service, price string) domain.Product {
	t.Helper()
	p, err := decimal.NewFromString(price)
	if err != nil {
		t.Fatalf("parse price: %v", err)
	}
	product, err := svc.CreateProduct(context.Background(), seller, CreateProductInput{
		Title:       "DevTool Pro",
		Price:       p,
		LicenseType: domain.LicensePerpetual,
	})
	if err != nil {
		t.Fatalf("create product: %v", err)
	}
	return product
}

func TestCreateOrderReturnsCheckoutSession(t *testing.T) {
	svc, _, _ := newTestService(t)
	product := listProduct(t, svc, "49.99")

	session, err := svc.CreateOrder(context.Background(), buyer, CreateOrderInput{ProductID: product.ID})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	if session.Amount != 50 {
		t.Fatalf("expected rounded amount 50, got %d", session.Amount)
	}
	if session.ProductName != "DevTool Pro" {
		t.Fatalf("unexpected product name %q", session.ProductName)
	}
	orderID, err := domain.ParseOrderRef(session.OrderRef)
	if err != nil {
		t.Fatalf("reference not parseable: %v", err)
	}
	if orderID <= 0 {
		t.Fatalf("bad order id in reference: %d", orderID)
	}
}

func TestCreateOrderInactiveProduct(t *testing.T) {
	svc, _, _ := newTestService(t)
	product := listProduct(t, svc, "10.00")
	inactive := false
	if _, err := svc.UpdateProduct(context.Background(), seller, UpdateProductInput{ProductID: product.ID, Active: &inactive}); err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	if _, err := svc.CreateOrder(context.Background(), buyer, CreateOrderInput{ProductID: product.ID}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for inactive product, got %v", err)
	}
}

func TestCreateOrderQuantityTotal(t *testing.T) {
	svc, _, _ := newTestService(t)
	product := listProduct(t, svc, "19.99")
	session, err := svc.CreateOrder(context.Background(), buyer, CreateOrderInput{ProductID: product.ID, Quantity: 3})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	// 3 x 19.99 = 59.97, charged as 60 whole units.
	if session.Amount != 60 {
		t.Fatalf("expected amount 60, got %d", session.Amount)
	}
}

func TestConfirmPaymentIssuesLicense(t *testing.T) {
	svc, _, gw := newTestService(t)
	product := listProduct(t, svc, "49.99")
	session, _ := svc.CreateOrder(context.Background(), buyer, CreateOrderInput{ProductID: product.ID})

	result, err := svc.ConfirmPayment(context.Background(), buyer, ConfirmPaymentInput{
		PaymentKey: "pay-abc",
		OrderRef:   session.OrderRef,
		Amount:     session.Amount,
	})
	if err != nil {
		t.Fatalf("confirm payment: %v", err)
	}
	if result.LicenseKey == "" {
		t.Fatalf("expected a license key")
	}
	if result.ProductName != "DevTool Pro" {
		t.Fatalf("unexpected product name %q", result.ProductName)
	}
	if gw.confirmCalls != 1 || gw.lastAmount != 50 || gw.lastOrderRef != session.OrderRef {
		t.Fatalf("unexpected gateway call: %+v", gw)
	}

	orders, _ := svc.MyOrders(context.Background(), buyer)
	if len(orders) != 1 || orders[0].Status != domain.OrderCompleted {
		t.Fatalf("expected one completed order, got %+v", orders)
	}
	if orders[0].TransactionID != "txn-pay-abc" {
		t.Fatalf("transaction id not recorded: %q", orders[0].TransactionID)
	}

	licenses, _ := svc.MyLicenses(context.Background(), buyer)
	if len(licenses) != 1 {
		t.Fatalf("expected one license, got %d", len(licenses))
	}
	license := licenses[0]
	if license.Status != domain.LicenseActive {
		t.Fatalf("expected active license, got %s", license.Status)
	}
	if license.BuyerID == nil || *license.BuyerID != buyer.UserID {
		t.Fatalf("license not bound to buyer: %+v", license)
	}
	if license.OrderID == nil || *license.OrderID != orders[0].ID {
		t.Fatalf("license not bound to order: %+v", license)
	}
	if license.ExpiresAt == nil || license.ActivatedAt == nil {
		t.Fatalf("expected activation and expiry timestamps")
	}
}

func TestConfirmPaymentAmountMismatch(t *testing.T) {
	svc, _, gw := newTestService(t)
	product := listProduct(t, svc, "49.99")
	session, _ := svc.CreateOrder(context.Background(), buyer, CreateOrderInput{ProductID: product.ID})

	_, err := svc.ConfirmPayment(context.Background(), buyer, ConfirmPaymentInput{
		PaymentKey: "pay-abc",
		OrderRef:   session.OrderRef,
		Amount:     1,
	})
	if !errors.Is(err, domain.ErrAmountMismatch) {
		t.Fatalf("expected ErrAmountMismatch, got %v", err)
	}
	if gw.confirmCalls != 0 {
		t.Fatalf("gateway must not be called on mismatch")
	}
	orders, _ := svc.MyOrders(context.Background(), buyer)
	if orders[0].Status != domain.OrderPending {
		t.Fatalf("order must stay pending after mismatch, got %s", orders[0].Status)
	}
	if licenses, _ := svc.MyLicenses(context.Background(), buyer); len(licenses) != 0 {
		t.Fatalf("no license may exist after mismatch")
	}
}

func TestConfirmPaymentDoubleConfirm(t *testing.T) {
	svc, _, _ := newTestService(t)
	product := listProduct(t, svc, "20.00")
	session, _ := svc.CreateOrder(context.Background(), buyer, CreateOrderInput{ProductID: product.ID})

	input := ConfirmPaymentInput{PaymentKey: "pay-1", OrderRef: session.OrderRef, Amount: session.Amount}
	if _, err := svc.ConfirmPayment(context.Background(), buyer, input); err != nil {
		t.Fatalf("first confirm: %v", err)
	}
	if _, err := svc.ConfirmPayment(context.Background(), buyer, input); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected ErrConflict on duplicate confirm, got %v", err)
	}
	licenses, _ := svc.MyLicenses(context.Background(), buyer)
	if len(licenses) != 1 {
		t.Fatalf("exactly one license must exist, got %d", len(licenses))
	}
}

func TestConfirmPaymentWrongBuyer(t *testing.T) {
	svc, _, _ := newTestService(t)
	product := listProduct(t, svc, "20.00")
	session, _ := svc.CreateOrder(context.Background(), buyer, CreateOrderInput{ProductID: product.ID})

	other := Actor{UserID: 99}
	_, err := svc.ConfirmPayment(context.Background(), other, ConfirmPaymentInput{
		PaymentKey: "pay-1",
		OrderRef:   session.OrderRef,
		Amount:     session.Amount,
	})
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestConfirmPaymentGatewayFailureKeepsOrderPending(t *testing.T) {
	svc, _, gw := newTestService(t)
	gw.confirmErr = &domain.GatewayError{Status: 400, Message: "REJECTED"}
	product := listProduct(t, svc, "20.00")
	session, _ := svc.CreateOrder(context.Background(), buyer, CreateOrderInput{ProductID: product.ID})

	_, err := svc.ConfirmPayment(context.Background(), buyer, ConfirmPaymentInput{
		PaymentKey: "pay-1",
		OrderRef:   session.OrderRef,
		Amount:     session.Amount,
	})
	var gatewayErr *domain.GatewayError
	if !errors.As(err, &gatewayErr) {
		t.Fatalf("expected GatewayError, got %v", err)
	}
	orders, _ := svc.MyOrders(context.Background(), buyer)
	if orders[0].Status != domain.OrderPending {
		t.Fatalf("order must stay pending after gateway failure, got %s", orders[0].Status)
	}
}

func TestConfirmPaymentMalformedRef(t *testing.T) {
	svc, _, _ := newTestService(t)
	_, err := svc.ConfirmPayment(context.Background(), buyer, ConfirmPaymentInput{
		PaymentKey: "pay-1",
		OrderRef:   "not-a-ref",
		Amount:     10,
	})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestFailPaymentBestEffort(t *testing.T) {
	svc, _, _ := newTestService(t)
	product := listProduct(t, svc, "20.00")
	session, _ := svc.CreateOrder(context.Background(), buyer, CreateOrderInput{ProductID: product.ID})

	if err := svc.FailPayment(context.Background(), FailPaymentInput{OrderRef: session.OrderRef, Code: "PAY_CANCEL"}); err != nil {
		t.Fatalf("fail payment: %v", err)
	}
	orders, _ := svc.MyOrders(context.Background(), buyer)
	if orders[0].Status != domain.OrderFailed {
		t.Fatalf("expected failed order, got %s", orders[0].Status)
	}

	// Unknown orders and repeated callbacks are swallowed.
	if err := svc.FailPayment(context.Background(), FailPaymentInput{OrderRef: "9999-1"}); err != nil {
		t.Fatalf("unknown order must not error: %v", err)
	}
	if err := svc.FailPayment(context.Background(), FailPaymentInput{OrderRef: session.OrderRef}); err != nil {
		t.Fatalf("repeat callback must not error: %v", err)
	}
	if err := svc.FailPayment(context.Background(), FailPaymentInput{OrderRef: "garbage"}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("malformed reference must be reported, got %v", err)
	}
}

func TestRefundOrderRevokesLicense(t *testing.T) {
	svc, _, gw := newTestService(t)
	product := listProduct(t, svc, "30.00")
	session, _ := svc.CreateOrder(context.Background(), buyer, CreateOrderInput{ProductID: product.ID})
	if _, err := svc.ConfirmPayment(context.Background(), buyer, ConfirmPaymentInput{
		PaymentKey: "pay-1", OrderRef: session.OrderRef, Amount: session.Amount,
	}); err != nil {
		t.Fatalf("confirm: %v", err)
	}
	orders, _ := svc.MyOrders(context.Background(), buyer)

	if err := svc.RefundOrder(context.Background(), seller, RefundInput{OrderID: orders[0].ID, Reason: "buyer request"}); err != nil {
		t.Fatalf("refund: %v", err)
	}
	if gw.cancelCalls != 1 || gw.lastReason != "buyer request" {
		t.Fatalf("gateway cancel not called correctly: %+v", gw)
	}

	orders, _ = svc.MyOrders(context.Background(), buyer)
	if orders[0].Status != domain.OrderRefunded {
		t.Fatalf("expected refunded order, got %s", orders[0].Status)
	}
	licenses, _ := svc.MyLicenses(context.Background(), buyer)
	if len(licenses) != 1 || licenses[0].Status != domain.LicenseRevoked {
		t.Fatalf("expected revoked license, got %+v", licenses)
	}
}

func TestRefundOrderGuards(t *testing.T) {
	svc, _, _ := newTestService(t)
	product := listProduct(t, svc, "30.00")
	session, _ := svc.CreateOrder(context.Background(), buyer, CreateOrderInput{ProductID: product.ID})
	orders, _ := svc.MyOrders(context.Background(), buyer)
	orderID := orders[0].ID

	// Pending orders are not refundable.
	if err := svc.RefundOrder(context.Background(), seller, RefundInput{OrderID: orderID}); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected ErrConflict for pending order, got %v", err)
	}

	if _, err := svc.ConfirmPayment(context.Background(), buyer, ConfirmPaymentInput{
		PaymentKey: "pay-1", OrderRef: session.OrderRef, Amount: session.Amount,
	}); err != nil {
		t.Fatalf("confirm: %v", err)
	}

	// Only the seller may refund.
	if err := svc.RefundOrder(context.Background(), buyer, RefundInput{OrderID: orderID}); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for buyer refund, got %v", err)
	}
}

func TestConfirmPaymentUpdatesSellerCounters(t *testing.T) {
	svc, _, _ := newTestService(t)
	if _, err := svc.CreateProfile(context.Background(), seller, profileInput("Acme", "", "")); err != nil {
		t.Fatalf("create profile: %v", err)
	}
	product := listProduct(t, svc, "25.50")
	session, _ := svc.CreateOrder(context.Background(), buyer, CreateOrderInput{ProductID: product.ID})
	if _, err := svc.ConfirmPayment(context.Background(), buyer, ConfirmPaymentInput{
		PaymentKey: "pay-1", OrderRef: session.OrderRef, Amount: session.Amount,
	}); err != nil {
		t.Fatalf("confirm: %v", err)
	}

	profile, err := svc.MyProfile(context.Background(), seller)
	if err != nil {
		t.Fatalf("my profile: %v", err)
	}
	expected, _ := decimal.NewFromString("25.50")
	if !profile.TotalEarnings.Equal(expected) || profile.TotalSales != 1 {
		t.Fatalf("counters not updated: earnings=%s sales=%d", profile.TotalEarnings, profile.TotalSales)
	}
}

// collidingOrderRepo reports a license key uniqueness violation for the first
// failures completion attempts, then delegates to the real repository.
type collidingOrderRepo struct {
	ports.OrderRepository
	failures int
	attempts []string
}

func (r *collidingOrderRepo) CompleteWithLicense(ctx context.Context, orderID int64, transactionID string, key domain.LicenseKey) (domain.LicenseKey, error) {
	r.attempts = append(r.attempts, key.Key)
	if len(r.attempts) <= r.failures {
		return domain.LicenseKey{}, domain.ErrDuplicateKey
	}
	return r.OrderRepository.CompleteWithLicense(ctx, orderID, transactionID, key)
}

func newCollidingService(t *testing.T, failures int) (*Service, *collidingOrderRepo) {
	t.Helper()
	repos := memory.NewRepositories()
	orders := &collidingOrderRepo{OrderRepository: repos.Orders, failures: failures}
	svc := NewService(Dependencies{
		Products:  repos.Products,
		Orders:    orders,
		Licenses:  repos.Licenses,
		Reviews:   repos.Reviews,
		Downloads: repos.Downloads,
		Sellers:   repos.Sellers,
		Gateway:   &fakeGateway{},
	})
	return svc, orders
}

func TestConfirmPaymentRegeneratesKeyOnCollision(t *testing.T) {
	svc, orders := newCollidingService(t, 1)
	product := listProduct(t, svc, "49.99")
	session, err := svc.CreateOrder(context.Background(), buyer, CreateOrderInput{ProductID: product.ID})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	result, err := svc.ConfirmPayment(context.Background(), buyer, ConfirmPaymentInput{
		PaymentKey: "pay-retry", OrderRef: session.OrderRef, Amount: session.Amount,
	})
	if err != nil {
		t.Fatalf("confirm after one collision: %v", err)
	}
	if len(orders.attempts) != 2 {
		t.Fatalf("expected exactly 2 completion attempts, got %d", len(orders.attempts))
	}
	if orders.attempts[0] == orders.attempts[1] {
		t.Fatalf("second attempt reused the colliding key %q", orders.attempts[0])
	}
	if result.LicenseKey != orders.attempts[1] {
		t.Fatalf("issued key %q, want the regenerated %q", result.LicenseKey, orders.attempts[1])
	}
}

func TestConfirmPaymentGivesUpAfterSecondCollision(t *testing.T) {
	svc, orders := newCollidingService(t, 2)
	product := listProduct(t, svc, "49.99")
	session, err := svc.CreateOrder(context.Background(), buyer, CreateOrderInput{ProductID: product.ID})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	_, err = svc.ConfirmPayment(context.Background(), buyer, ConfirmPaymentInput{
		PaymentKey: "pay-retry", OrderRef: session.OrderRef, Amount: session.Amount,
	})
	if !errors.Is(err, domain.ErrDuplicateKey) {
		t.Fatalf("confirm after two collisions: got %v, want ErrDuplicateKey", err)
	}
	if len(orders.attempts) != 2 {
		t.Fatalf("expected exactly 2 completion attempts, got %d", len(orders.attempts))
	}

	purchases, err := svc.MyOrders(context.Background(), buyer)
	if err != nil {
		t.Fatalf("my orders: %v", err)
	}
	if len(purchases) != 1 || purchases[0].Status != domain.OrderPending {
		t.Fatalf("order should stay pending after a failed settle, got %+v", purchases)
	}
	keys, err := svc.MyLicenses(context.Background(), buyer)
	if err != nil {
		t.Fatalf("my licenses: %v", err)
	}
	if len(keys) != 0 {
		t.Fatalf("no license should be issued, got %d", len(keys))
	}
}

func TestConfirmPaymentSucceedsWhenProductVanishes(t *testing.T) {
	svc, _, _ := newTestService(t)
	product := listProduct(t, svc, "49.99")
	session, err := svc.CreateOrder(context.Background(), buyer, CreateOrderInput{ProductID: product.ID})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	if err := svc.DeleteProduct(context.Background(), seller, product.ID); err != nil {
		t.Fatalf("delete product: %v", err)
	}

	result, err := svc.ConfirmPayment(context.Background(), buyer, ConfirmPaymentInput{
		PaymentKey: "pay-gone", OrderRef: session.OrderRef, Amount: session.Amount,
	})
	if err != nil {
		t.Fatalf("confirm with deleted product: %v", err)
	}
	if result.LicenseKey == "" {
		t.Fatal("license key should still be issued")
	}
	if result.ProductName != "" {
		t.Fatalf("product name should be empty when the listing is gone, got %q", result.ProductName)
	}
}
