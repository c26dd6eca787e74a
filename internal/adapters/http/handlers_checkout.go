package http

import (
	"net/http"

	"github.com/horu2day/saleslicense/internal/application"
	"github.com/horu2day/saleslicense/internal/contracts"
)

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req contracts.CreateOrderRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "create_order", err)
		return
	}
	session, err := h.service.CreateOrder(r.Context(), actorFromContext(r.Context()), application.CreateOrderInput{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		writeMappedError(r.Context(), w, "create_order", err)
		return
	}
	writeSuccess(w, http.StatusCreated, session)
}

func (h *Handler) confirmPayment(w http.ResponseWriter, r *http.Request) {
	var req contracts.ConfirmPaymentRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "confirm_payment", err)
		return
	}
	result, err := h.service.ConfirmPayment(r.Context(), actorFromContext(r.Context()), application.ConfirmPaymentInput{
		PaymentKey: req.PaymentKey,
		OrderRef:   req.OrderID,
		Amount:     req.Amount,
	})
	if err != nil {
		writeMappedError(r.Context(), w, "confirm_payment", err)
		return
	}
	writeSuccess(w, http.StatusOK, result)
}

func (h *Handler) failPayment(w http.ResponseWriter, r *http.Request) {
	var req contracts.FailPaymentRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "fail_payment", err)
		return
	}
	if err := h.service.FailPayment(r.Context(), application.FailPaymentInput{
		OrderRef: req.OrderID,
		Code:     req.Code,
		Message:  req.Message,
	}); err != nil {
		writeMappedError(r.Context(), w, "fail_payment", err)
		return
	}
	writeMessage(w, http.StatusOK, "order marked failed")
}

func (h *Handler) refundOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := pathID(r, "order_id")
	if err != nil {
		writeValidationError(r.Context(), w, "refund_order", err)
		return
	}
	var req contracts.RefundRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "refund_order", err)
		return
	}
	if err := h.service.RefundOrder(r.Context(), actorFromContext(r.Context()), application.RefundInput{
		OrderID: orderID,
		Reason:  req.Reason,
	}); err != nil {
		writeMappedError(r.Context(), w, "refund_order", err)
		return
	}
	writeMessage(w, http.StatusOK, "order refunded")
}

func (h *Handler) myOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.MyOrders(r.Context(), actorFromContext(r.Context()))
	if err != nil {
		writeMappedError(r.Context(), w, "my_orders", err)
		return
	}
	writeSuccess(w, http.StatusOK, orders)
}

func (h *Handler) sellingOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.SellingOrders(r.Context(), actorFromContext(r.Context()))
	if err != nil {
		writeMappedError(r.Context(), w, "selling_orders", err)
		return
	}
	writeSuccess(w, http.StatusOK, orders)
}
