package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/permitd/permitd/internal/auth/service"
	"github.com/permitd/permitd/internal/auth/store"
	"github.com/permitd/permitd/pkg/slogx"
)

// ProductHandler is a representative protected business surface. Its
// routes carry no static role gate; access is whatever the permission
// table says.
type ProductHandler struct {
	ProductService *service.ProductService
}

type addProductRequest struct {
	Name string  `json:"name" validate:"required"`
	Type *string `json:"type"`
}

// HandleAdd creates a product
//
//	@Summary	Add a product
//	@Tags		Product
//	@Accept		json
//	@Produce	json
//	@Param		request	body		addProductRequest	true	"Product data"
//	@Success	200		{object}	envelope
//	@Security	BearerAuth
//	@Router		/api/product/addproduct [post].
func (h *ProductHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	var req addProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailure(w, "Product Data is Null")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeInvalid(w, validationMessages(err))
		return
	}

	p, err := h.ProductService.AddProduct(r.Context(), req.Name, req.Type)
	if err != nil {
		slogx.FromContext(r.Context()).Error("add product failed", slog.Any("error", err))
		writeFailure(w, MsgInternal)
		return
	}
	writeResult(w, "Product Added Successfully.", p)
}

// HandleGetByID fetches one product
//
//	@Summary	Get a product by id
//	@Tags		Product
//	@Produce	json
//	@Param		id	path		string	true	"Product id"
//	@Success	200	{object}	envelope	"status_code 0 with Product Not Found. when absent"
//	@Security	BearerAuth
//	@Router		/api/product/getproductby/{id} [get].
func (h *ProductHandler) HandleGetByID(w http.ResponseWriter, r *http.Request) {
	p, err := h.ProductService.GetProductByID(r.Context(), r.PathValue("id"))
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeFailure(w, "Product Not Found.")
	case err != nil:
		slogx.FromContext(r.Context()).Error("get product failed", slog.Any("error", err))
		writeFailure(w, MsgInternal)
	default:
		writeResult(w, "", p)
	}
}

// HandleList lists all non-deleted products
//
//	@Summary	List products
//	@Tags		Product
//	@Produce	json
//	@Success	200	{object}	envelope
//	@Security	BearerAuth
//	@Router		/api/product/getproducts [get].
func (h *ProductHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	products, err := h.ProductService.ListProducts(r.Context())
	if err != nil {
		slogx.FromContext(r.Context()).Error("list products failed", slog.Any("error", err))
		writeFailure(w, MsgInternal)
		return
	}
	writeResult(w, "", products)
}
