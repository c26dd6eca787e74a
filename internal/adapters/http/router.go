package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// NewRouter registers the marketplace routes and middleware stack.
// Public routes cover browsing and the gateway redirect endpoints; everything
// that acts on behalf of a user sits behind the auth middleware.
func NewRouter(handler *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(recoverMiddleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.healthz)
	r.Get("/readyz", handler.readyz)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/products", handler.listProducts)
		r.Get("/products/{product_id}", handler.getProduct)
		r.Get("/products/{product_id}/reviews", handler.productReviews)
		r.Get("/products/{product_id}/reviews/summary", handler.reviewSummary)
		r.Post("/licenses/validate", handler.validateKey)

		// The gateway redirects the buyer's browser here after the hosted
		// widget finishes; the confirm handler is the authoritative check.
		r.Group(func(r chi.Router) {
			r.Use(handler.authMiddleware)

			r.Post("/products", handler.createProduct)
			r.Get("/products/mine", handler.myProducts)
			r.Patch("/products/{product_id}", handler.updateProduct)
			r.Delete("/products/{product_id}", handler.deleteProduct)

			r.Post("/orders", handler.createOrder)
			r.Get("/orders/mine", handler.myOrders)
			r.Get("/orders/selling", handler.sellingOrders)
			r.Post("/orders/{order_id}/refund", handler.refundOrder)

			r.Post("/payments/confirm", handler.confirmPayment)
			r.Post("/payments/fail", handler.failPayment)

			r.Post("/products/{product_id}/licenses/batch", handler.issueBatch)
			r.Get("/products/{product_id}/licenses", handler.productLicenses)
			r.Get("/licenses/mine", handler.myLicenses)
			r.Patch("/licenses/{license_id}/status", handler.setLicenseStatus)

			r.Post("/reviews", handler.createReview)
			r.Patch("/reviews/{review_id}", handler.updateReview)
			r.Delete("/reviews/{review_id}", handler.deleteReview)

			r.Get("/sellers/me", handler.myProfile)
			r.Post("/sellers/me", handler.createProfile)
			r.Patch("/sellers/me", handler.updateProfile)

			r.Post("/downloads", handler.recordDownload)
			r.Get("/products/{product_id}/downloads", handler.productDownloads)
		})
	})

	return r
}
