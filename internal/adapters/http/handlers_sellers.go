package http

import (
	"net/http"

	"github.com/horu2day/saleslicense/internal/application"
	"github.com/horu2day/saleslicense/internal/contracts"
)

func (h *Handler) myProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.service.MyProfile(r.Context(), actorFromContext(r.Context()))
	if err != nil {
		writeMappedError(r.Context(), w, "my_profile", err)
		return
	}
	writeSuccess(w, http.StatusOK, profile)
}

func (h *Handler) createProfile(w http.ResponseWriter, r *http.Request) {
	var req contracts.SellerProfileRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "create_profile", err)
		return
	}
	profile, err := h.service.CreateProfile(r.Context(), actorFromContext(r.Context()), application.SellerProfileInput{
		CompanyName: req.CompanyName,
		Bio:         req.Bio,
		Website:     req.Website,
	})
	if err != nil {
		writeMappedError(r.Context(), w, "create_profile", err)
		return
	}
	writeSuccess(w, http.StatusCreated, profile)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	var req contracts.SellerProfileRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "update_profile", err)
		return
	}
	profile, err := h.service.UpdateProfile(r.Context(), actorFromContext(r.Context()), application.SellerProfileInput{
		CompanyName: req.CompanyName,
		Bio:         req.Bio,
		Website:     req.Website,
	})
	if err != nil {
		writeMappedError(r.Context(), w, "update_profile", err)
		return
	}
	writeSuccess(w, http.StatusOK, profile)
}

func (h *Handler) recordDownload(w http.ResponseWriter, r *http.Request) {
	var req contracts.RecordDownloadRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "record_download", err)
		return
	}
	download, err := h.service.RecordDownload(r.Context(), actorFromContext(r.Context()), application.RecordDownloadInput{
		ProductID:    req.ProductID,
		LicenseKeyID: req.LicenseKeyID,
	})
	if err != nil {
		writeMappedError(r.Context(), w, "record_download", err)
		return
	}
	writeSuccess(w, http.StatusCreated, download)
}

func (h *Handler) productDownloads(w http.ResponseWriter, r *http.Request) {
	productID, err := pathID(r, "product_id")
	if err != nil {
		writeValidationError(r.Context(), w, "product_downloads", err)
		return
	}
	downloads, err := h.service.ProductDownloads(r.Context(), actorFromContext(r.Context()), productID)
	if err != nil {
		writeMappedError(r.Context(), w, "product_downloads", err)
		return
	}
	writeSuccess(w, http.StatusOK, downloads)
}
