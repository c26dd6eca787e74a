package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderCompleted OrderStatus = "completed"
	OrderFailed    OrderStatus = "failed"
	OrderRefunded  OrderStatus = "refunded"
)

// Order links one buyer, one seller and one product. Created in pending; moves
// to completed only after the gateway confirmation succeeds with a matching
// amount, to failed on an explicit failure callback, and from completed to
// refunded. No other transitions are valid.
type Order struct {
	ID            int64           `json:"id"`
	BuyerID       int64           `json:"buyer_id"`
	SellerID      int64           `json:"seller_id"`
	ProductID     int64           `json:"product_id"`
	Quantity      int             `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	TotalPrice    decimal.Decimal `json:"total_price"`
	Currency      string          `json:"currency"`
	Status        OrderStatus     `json:"status"`
	PaymentMethod string          `json:"payment_method,omitempty"`
	TransactionID string          `json:"transaction_id,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ChargeAmount is the integer amount the gateway is told to charge, the stored
// total rounded to whole currency units. Confirmation compares the claimed
// amount against this value exactly.
func (o Order) ChargeAmount() int64 {
	return o.TotalPrice.Round(0).IntPart()
}

// FormatOrderRef builds the opaque reference handed to the payment widget:
// "{orderId}-{unixMillis}". The integer prefix must stay parseable because the
// gateway echoes the reference back on the success redirect.
func FormatOrderRef(orderID int64, at time.Time) string {
	return fmt.Sprintf("%d-%d", orderID, at.UnixMilli())
}

// ParseOrderRef recovers the internal order id from a reference produced by
// FormatOrderRef. Malformed input is a client error, not a lookup miss.
func ParseOrderRef(ref string) (int64, error) {
	head, _, found := strings.Cut(ref, "-")
	if !found {
		head = ref
	}
	id, err := strconv.ParseInt(head, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: malformed order reference %q", ErrInvalidInput, ref)
	}
	return id, nil
}
