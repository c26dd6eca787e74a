package http

import (
	"net/http"

	"github.com/horu2day/saleslicense/internal/application"
	"github.com/horu2day/saleslicense/internal/contracts"
)

func (h *Handler) createReview(w http.ResponseWriter, r *http.Request) {
	var req contracts.CreateReviewRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "create_review", err)
		return
	}
	review, err := h.service.CreateReview(r.Context(), actorFromContext(r.Context()), application.CreateReviewInput{
		ProductID: req.ProductID,
		Rating:    req.Rating,
		Title:     req.Title,
		Content:   req.Content,
	})
	if err != nil {
		writeMappedError(r.Context(), w, "create_review", err)
		return
	}
	writeSuccess(w, http.StatusCreated, review)
}

func (h *Handler) updateReview(w http.ResponseWriter, r *http.Request) {
	reviewID, err := pathID(r, "review_id")
	if err != nil {
		writeValidationError(r.Context(), w, "update_review", err)
		return
	}
	var req contracts.UpdateReviewRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "update_review", err)
		return
	}
	review, err := h.service.UpdateReview(r.Context(), actorFromContext(r.Context()), application.UpdateReviewInput{
		ReviewID: reviewID,
		Rating:   req.Rating,
		Title:    req.Title,
		Content:  req.Content,
	})
	if err != nil {
		writeMappedError(r.Context(), w, "update_review", err)
		return
	}
	writeSuccess(w, http.StatusOK, review)
}

func (h *Handler) deleteReview(w http.ResponseWriter, r *http.Request) {
	reviewID, err := pathID(r, "review_id")
	if err != nil {
		writeValidationError(r.Context(), w, "delete_review", err)
		return
	}
	if err := h.service.DeleteReview(r.Context(), actorFromContext(r.Context()), reviewID); err != nil {
		writeMappedError(r.Context(), w, "delete_review", err)
		return
	}
	writeMessage(w, http.StatusOK, "review deleted")
}

func (h *Handler) productReviews(w http.ResponseWriter, r *http.Request) {
	productID, err := pathID(r, "product_id")
	if err != nil {
		writeValidationError(r.Context(), w, "product_reviews", err)
		return
	}
	reviews, err := h.service.ProductReviews(r.Context(), productID)
	if err != nil {
		writeMappedError(r.Context(), w, "product_reviews", err)
		return
	}
	writeSuccess(w, http.StatusOK, reviews)
}

func (h *Handler) reviewSummary(w http.ResponseWriter, r *http.Request) {
	productID, err := pathID(r, "product_id")
	if err != nil {
		writeValidationError(r.Context(), w, "review_summary", err)
		return
	}
	summary, err := h.service.ReviewSummary(r.Context(), productID)
	if err != nil {
		writeMappedError(r.Context(), w, "review_summary", err)
		return
	}
	writeSuccess(w, http.StatusOK, summary)
}
