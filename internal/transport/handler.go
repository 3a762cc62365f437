package transport

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/verifresh-labs/verifresh-backend/internal/insight"
	"github.com/verifresh-labs/verifresh-backend/internal/ledger"
	"github.com/verifresh-labs/verifresh-backend/internal/model"
	"github.com/verifresh-labs/verifresh-backend/pkg/safe"
	"go.uber.org/zap"
)

// maxImageBytes bounds uploaded product images before the insight
// pipeline ever sees them.
const maxImageBytes = 5 << 20

// imageFormField is the multipart field carrying the product photo.
const imageFormField = "productImage"

// Handler sequences ledger and insight calls per request and maps error
// conditions to status codes.
type Handler struct {
	ledger         ProvenanceLedger
	insights       InsightGenerator
	logger         *zap.Logger
	requestTimeout time.Duration
}

// NewHandler constructs the REST handler set.
func NewHandler(provLedger ProvenanceLedger, insights InsightGenerator, logger *zap.Logger, requestTimeout time.Duration) *Handler {
	return &Handler{
		ledger:         provLedger,
		insights:       insights,
		logger:         logger,
		requestTimeout: requestTimeout,
	}
}

// Register attaches all routes to the mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", h.handleHealth)
	mux.HandleFunc("POST /products", h.handleCreateProduct)
	mux.HandleFunc("POST /products/{id}/logs", h.handleAddLog)
	mux.HandleFunc("GET /products/{id}", h.handleGetProduct)
	mux.HandleFunc("POST /products/{id}/image", h.handleProductImage)
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	h.sendJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type createProductRequest struct {
	ProductID *int64 `json:"productId"`
	Name      string `json:"name"`
	FarmName  string `json:"farmName"`
}

func (h *Handler) handleCreateProduct(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	var req createProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	if req.ProductID == nil || req.Name == "" || req.FarmName == "" {
		h.sendError(w, "missing required fields: productId, name, farmName", http.StatusBadRequest)
		return
	}
	productID, err := safe.Uint64(*req.ProductID)
	if err != nil {
		h.sendError(w, "productId must be a non-negative integer", http.StatusBadRequest)
		return
	}

	sig, err := h.ledger.CreateProduct(ctx, productID, req.Name, req.FarmName)
	if err != nil {
		h.sendLedgerError(w, r, err)
		return
	}

	h.sendJSON(w, http.StatusCreated, map[string]string{
		"message":              "Product created successfully on the ledger.",
		"transactionSignature": sig,
	})
}

type addLogRequest struct {
	Status   string `json:"status"`
	Location string `json:"location"`
}

func (h *Handler) handleAddLog(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	productID, ok := h.productID(w, r)
	if !ok {
		return
	}

	var req addLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	if req.Status == "" || req.Location == "" {
		h.sendError(w, "missing required fields: status, location", http.StatusBadRequest)
		return
	}

	sig, err := h.ledger.AddLog(ctx, productID, req.Status, req.Location)
	if err != nil {
		h.sendLedgerError(w, r, err)
		return
	}

	h.sendJSON(w, http.StatusOK, map[string]string{
		"message":              "Log added successfully to the ledger.",
		"transactionSignature": sig,
	})
}

func (h *Handler) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	productID, ok := h.productID(w, r)
	if !ok {
		return
	}

	product, err := h.ledger.FetchProduct(ctx, productID)
	if err != nil {
		h.sendLedgerError(w, r, err)
		return
	}
	if product == nil {
		h.sendError(w, "product not found on the ledger", http.StatusNotFound)
		return
	}

	h.respondWithInsights(ctx, w, product, nil)
}

func (h *Handler) handleProductImage(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	productID, ok := h.productID(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxImageBytes)
	if err := r.ParseMultipartForm(maxImageBytes); err != nil {
		h.sendError(w, "image upload too large or malformed", http.StatusBadRequest)
		return
	}
	file, header, err := r.FormFile(imageFormField)
	if err != nil {
		h.sendError(w, "no image file uploaded", http.StatusBadRequest)
		return
	}
	defer func() {
		_ = file.Close()
	}()

	imageBytes, err := io.ReadAll(file)
	if err != nil {
		h.sendError(w, "failed to read uploaded image", http.StatusBadRequest)
		return
	}

	product, err := h.ledger.FetchProduct(ctx, productID)
	if err != nil {
		h.sendLedgerError(w, r, err)
		return
	}
	if product == nil {
		h.sendError(w, "product not found on the ledger", http.StatusNotFound)
		return
	}

	h.respondWithInsights(ctx, w, product, &insight.Image{
		Bytes:    imageBytes,
		MIMEType: header.Header.Get("Content-Type"),
	})
}

func (h *Handler) respondWithInsights(ctx context.Context, w http.ResponseWriter, product *model.Product, image *insight.Image) {
	result := h.insights.Generate(ctx, product, image)

	h.sendJSON(w, http.StatusOK, map[string]any{
		"message":     "Product data and AI insights fetched successfully.",
		"productData": product,
		"aiInsights":  result.Insight,
	})
}

func (h *Handler) requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), h.requestTimeout)
}

func (h *Handler) productID(w http.ResponseWriter, r *http.Request) (uint64, bool) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 64)
	if err != nil {
		h.sendError(w, "invalid product ID", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func (h *Handler) sendLedgerError(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Error("ledger operation failed",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Error(err),
	)

	switch {
	case errors.Is(err, ledger.ErrRecordNotFound):
		h.sendError(w, "product not found on the ledger", http.StatusNotFound)
	case errors.Is(err, ledger.ErrUnauthorized):
		h.sendError(w, "signer is not authorized for this product", http.StatusForbidden)
	case errors.Is(err, ledger.ErrWriteRejected):
		h.sendError(w, "ledger rejected the write", http.StatusConflict)
	case errors.Is(err, ledger.ErrNetworkUnavailable):
		h.sendError(w, "ledger network unavailable", http.StatusServiceUnavailable)
	default:
		h.sendError(w, "internal server error", http.StatusInternalServerError)
	}
}

func (h *Handler) sendJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}

func (h *Handler) sendError(w http.ResponseWriter, message string, status int) {
	h.sendJSON(w, status, map[string]string{"message": message})
}
