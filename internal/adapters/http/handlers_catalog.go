package http

import (
	"errors"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/horu2day/saleslicense/internal/application"
	"github.com/horu2day/saleslicense/internal/contracts"
	"github.com/horu2day/saleslicense/internal/domain"
)

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	var req contracts.CreateProductRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "create_product", err)
		return
	}
	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		writeValidationError(r.Context(), w, "create_product", errors.New("malformed price"))
		return
	}
	licenseType := domain.LicenseType(req.LicenseType)
	if req.LicenseType == "" {
		licenseType = domain.LicensePerpetual
	}

	product, err := h.service.CreateProduct(r.Context(), actorFromContext(r.Context()), application.CreateProductInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Price:       price,
		Currency:    req.Currency,
		Version:     req.Version,
		DownloadURL: req.DownloadURL,
		LicenseType: licenseType,
	})
	if err != nil {
		writeMappedError(r.Context(), w, "create_product", err)
		return
	}
	writeSuccess(w, http.StatusCreated, product)
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	productID, err := pathID(r, "product_id")
	if err != nil {
		writeValidationError(r.Context(), w, "get_product", err)
		return
	}
	product, err := h.service.GetProduct(r.Context(), productID)
	if err != nil {
		writeMappedError(r.Context(), w, "get_product", err)
		return
	}
	writeSuccess(w, http.StatusOK, product)
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	query := application.ListProductsQuery{
		Category: r.URL.Query().Get("category"),
		Limit:    parseIntDefault(r.URL.Query().Get("limit"), 0),
		Offset:   parseIntDefault(r.URL.Query().Get("offset"), 0),
	}
	products, err := h.service.ListProducts(r.Context(), query)
	if err != nil {
		writeMappedError(r.Context(), w, "list_products", err)
		return
	}
	writeSuccess(w, http.StatusOK, products)
}

func (h *Handler) myProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.MyProducts(r.Context(), actorFromContext(r.Context()))
	if err != nil {
		writeMappedError(r.Context(), w, "my_products", err)
		return
	}
	writeSuccess(w, http.StatusOK, products)
}

func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	productID, err := pathID(r, "product_id")
	if err != nil {
		writeValidationError(r.Context(), w, "update_product", err)
		return
	}
	var req contracts.UpdateProductRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "update_product", err)
		return
	}

	input := application.UpdateProductInput{
		ProductID:   productID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Version:     req.Version,
		DownloadURL: req.DownloadURL,
		Active:      req.Active,
	}
	if req.Price != nil {
		price, err := decimal.NewFromString(*req.Price)
		if err != nil {
			writeValidationError(r.Context(), w, "update_product", errors.New("malformed price"))
			return
		}
		input.Price = &price
	}

	product, err := h.service.UpdateProduct(r.Context(), actorFromContext(r.Context()), input)
	if err != nil {
		writeMappedError(r.Context(), w, "update_product", err)
		return
	}
	writeSuccess(w, http.StatusOK, product)
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	productID, err := pathID(r, "product_id")
	if err != nil {
		writeValidationError(r.Context(), w, "delete_product", err)
		return
	}
	if err := h.service.DeleteProduct(r.Context(), actorFromContext(r.Context()), productID); err != nil {
		writeMappedError(r.Context(), w, "delete_product", err)
		return
	}
	writeMessage(w, http.StatusOK, "product deleted")
}
