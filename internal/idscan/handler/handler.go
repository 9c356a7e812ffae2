package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rajpal07/self-exclusion-app/internal/idscan/domain"
	"github.com/rajpal07/self-exclusion-app/internal/idscan/service"
	"github.com/rajpal07/self-exclusion-app/pkg/errors"
	"github.com/rajpal07/self-exclusion-app/pkg/httputil"
	"github.com/rajpal07/self-exclusion-app/pkg/logger"
)

// Handler handles HTTP requests for identity-card scans
type Handler struct {
	service *service.Service
	log     *logger.Logger
}

// NewHandler creates a new scan handler
func NewHandler(svc *service.Service, log *logger.Logger) *Handler {
	return &Handler{
		service: svc,
		log:     log,
	}
}

// ScanRequest is the payload produced by the scanning UI after the vision
// call: the full recognized text plus optional positioned tokens. Empty
// text is allowed and yields the zero-confidence result.
type ScanRequest struct {
	Text   string                   `json:"text" validate:"max=65536"`
	Tokens []domain.RecognizedToken `json:"tokens" validate:"max=4096"`
}

// Scan handles POST /api/v1/scans
func (h *Handler) Scan(w http.ResponseWriter, r *http.Request) {
	var req ScanRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.Error(w, err)
		return
	}
	if err := httputil.Validate(req); err != nil {
		httputil.Error(w, err)
		return
	}

	rec := h.service.Scan(r.Context(), req.Text, req.Tokens)
	httputil.Created(w, rec)
}

// GetScan handles GET /api/v1/scans/{scanId}
func (h *Handler) GetScan(w http.ResponseWriter, r *http.Request) {
	scanID := chi.URLParam(r, "scanId")
	if scanID == "" {
		httputil.Error(w, errors.BadRequest("missing scanId parameter"))
		return
	}

	rec := h.service.GetScan(scanID)
	if rec == nil {
		httputil.Error(w, errors.NotFound("scan"))
		return
	}

	httputil.JSON(w, http.StatusOK, rec)
}
