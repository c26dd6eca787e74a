package http

import (
	"net/http"

	"github.com/horu2day/saleslicense/internal/application"
	"github.com/horu2day/saleslicense/internal/contracts"
	"github.com/horu2day/saleslicense/internal/domain"
)

func (h *Handler) issueBatch(w http.ResponseWriter, r *http.Request) {
	productID, err := pathID(r, "product_id")
	if err != nil {
		writeValidationError(r.Context(), w, "issue_batch", err)
		return
	}
	var req contracts.IssueBatchRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "issue_batch", err)
		return
	}
	keys, err := h.service.IssueBatch(r.Context(), actorFromContext(r.Context()), application.IssueBatchInput{
		ProductID: productID,
		Count:     req.Count,
	})
	if err != nil {
		writeMappedError(r.Context(), w, "issue_batch", err)
		return
	}
	writeSuccess(w, http.StatusCreated, keys)
}

func (h *Handler) validateKey(w http.ResponseWriter, r *http.Request) {
	var req contracts.ValidateKeyRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "validate_key", err)
		return
	}
	result, err := h.service.ValidateKey(r.Context(), req.LicenseKey)
	if err != nil {
		writeMappedError(r.Context(), w, "validate_key", err)
		return
	}
	writeSuccess(w, http.StatusOK, result)
}

func (h *Handler) myLicenses(w http.ResponseWriter, r *http.Request) {
	keys, err := h.service.MyLicenses(r.Context(), actorFromContext(r.Context()))
	if err != nil {
		writeMappedError(r.Context(), w, "my_licenses", err)
		return
	}
	writeSuccess(w, http.StatusOK, keys)
}

func (h *Handler) productLicenses(w http.ResponseWriter, r *http.Request) {
	productID, err := pathID(r, "product_id")
	if err != nil {
		writeValidationError(r.Context(), w, "product_licenses", err)
		return
	}
	keys, err := h.service.ProductLicenses(r.Context(), actorFromContext(r.Context()), productID)
	if err != nil {
		writeMappedError(r.Context(), w, "product_licenses", err)
		return
	}
	writeSuccess(w, http.StatusOK, keys)
}

func (h *Handler) setLicenseStatus(w http.ResponseWriter, r *http.Request) {
	licenseID, err := pathID(r, "license_id")
	if err != nil {
		writeValidationError(r.Context(), w, "set_license_status", err)
		return
	}
	var req contracts.SetLicenseStatusRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "set_license_status", err)
		return
	}
	key, err := h.service.SetLicenseStatus(r.Context(), actorFromContext(r.Context()), application.SetLicenseStatusInput{
		LicenseID: licenseID,
		Status:    domain.LicenseStatus(req.Status),
	})
	if err != nil {
		writeMappedError(r.Context(), w, "set_license_status", err)
		return
	}
	writeSuccess(w, http.StatusOK, key)
}
