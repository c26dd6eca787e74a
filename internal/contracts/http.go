// Package contracts holds the wire-level request and response shapes of the
// HTTP API. Handlers decode into these and translate to application inputs;
// nothing here leaks into the domain layer.
package contracts

type SuccessResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

type ErrorPayload struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

type ErrorResponse struct {
	Status string       `json:"status"`
	Error  ErrorPayload `json:"error"`
}

type CreateProductRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
	Price       string `json:"price"`
	Currency    string `json:"currency,omitempty"`
	Version     string `json:"version,omitempty"`
	DownloadURL string `json:"download_url,omitempty"`
	LicenseType string `json:"license_type,omitempty"`
}

type UpdateProductRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Category    *string `json:"category,omitempty"`
	Price       *string `json:"price,omitempty"`
	Version     *string `json:"version,omitempty"`
	DownloadURL *string `json:"download_url,omitempty"`
	Active      *bool   `json:"active,omitempty"`
}

type CreateOrderRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity,omitempty"`
}

// ConfirmPaymentRequest carries the parameters the gateway attaches to the
// success redirect. Amount is what the widget claims was paid; the server
// re-checks it against the stored order total before confirming.
type ConfirmPaymentRequest struct {
	PaymentKey string `json:"payment_key"`
	OrderID    string `json:"order_id"`
	Amount     int64  `json:"amount"`
}

type FailPaymentRequest struct {
	OrderID string `json:"order_id"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}

type RefundRequest struct {
	Reason string `json:"reason,omitempty"`
}

type IssueBatchRequest struct {
	Count int `json:"count"`
}

type ValidateKeyRequest struct {
	LicenseKey string `json:"license_key"`
}

type SetLicenseStatusRequest struct {
	Status string `json:"status"`
}

type CreateReviewRequest struct {
	ProductID int64  `json:"product_id"`
	Rating    int    `json:"rating"`
	Title     string `json:"title"`
	Content   string `json:"content"`
}

type UpdateReviewRequest struct {
	Rating  *int    `json:"rating,omitempty"`
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
}

type SellerProfileRequest struct {
	CompanyName *string `json:"company_name,omitempty"`
	Bio         *string `json:"bio,omitempty"`
	Website     *string `json:"website,omitempty"`
}

type RecordDownloadRequest struct {
	ProductID    int64  `json:"product_id"`
	LicenseKeyID *int64 `json:"license_key_id,omitempty"`
}
