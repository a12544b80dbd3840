package listings

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/ombaa/ombaa/internal/users"
	"github.com/ombaa/ombaa/pkg/handlers"
	"github.com/ombaa/ombaa/pkg/pagination"
	"github.com/ombaa/ombaa/pkg/routes"
)

// Handler provides HTTP endpoints for listing operations. Browsing is
// public; writes require a solar_farm bearer token.
type Handler struct {
	sys           System
	auth          *users.Authenticator
	pagination    pagination.Config
	logger        *slog.Logger
	maxUploadSize int64
}

// NewHandler creates a Handler with the given system, authenticator, and
// upload size limit for contract documents.
func NewHandler(sys System, auth *users.Authenticator, pageCfg pagination.Config, logger *slog.Logger, maxUploadSize int64) *Handler {
	return &Handler{
		sys:           sys,
		auth:          auth,
		pagination:    pageCfg,
		logger:        logger.With("handler", "listings"),
		maxUploadSize: maxUploadSize,
	}
}

// Routes returns the route group definition for listing endpoints.
func (h *Handler) Routes() routes.Group {
	requireOperator := func(next http.HandlerFunc) http.HandlerFunc {
		return h.auth.RequireRole(users.RoleSolarFarm, next)
	}

	return routes.Group{
		Prefix: "/marketplace/listings",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List},
			{Method: "GET", Pattern: "/{id}", Handler: h.Find},
			{Method: "POST", Pattern: "", Handler: requireOperator(h.Create)},
			{Method: "PUT", Pattern: "/{id}", Handler: requireOperator(h.Update)},
			{Method: "POST", Pattern: "/{id}/contract", Handler: requireOperator(h.CreateContract)},
		},
	}
}

// List returns a page of listings filtered by the status query parameter,
// defaulting to open listings.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page := pagination.PageRequestFromQuery(r.URL.Query(), h.pagination)

	result, err := h.sys.List(r.Context(), r.URL.Query().Get("status"), page)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Find returns a single listing by its UUID path parameter.
func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidInput)
		return
	}

	listing, err := h.sys.Find(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, listing)
}

// Create opens a new listing on an owned site and generates its matches.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	ident, _ := users.IdentityFrom(r.Context())

	var cmd CreateCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidInput)
		return
	}

	listing, err := h.sys.Create(r.Context(), ident, cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, listing)
}

// Update applies a partial update to an owned listing.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	ident, _ := users.IdentityFrom(r.Context())

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidInput)
		return
	}

	var cmd UpdateCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidInput)
		return
	}

	listing, err := h.sys.Update(r.Context(), ident, id, cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, listing)
}

// CreateContract draws a contract against an owned listing from a multipart
// form. The optional document part must be a valid PDF.
func (h *Handler) CreateContract(w http.ResponseWriter, r *http.Request) {
	ident, _ := users.IdentityFrom(r.Context())

	listingID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidInput)
		return
	}

	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		handlers.RespondError(w, h.logger, http.StatusRequestEntityTooLarge, err)
		return
	}

	cmd, err := contractCommandFromForm(r)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	contract, err := h.sys.CreateContract(r.Context(), ident, listingID, cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, contract)
}

func contractCommandFromForm(r *http.Request) (ContractCommand, error) {
	var cmd ContractCommand

	shepherdID, err := uuid.Parse(r.FormValue("shepherd_id"))
	if err != nil {
		return cmd, ErrInvalidInput
	}
	cmd.ShepherdID = shepherdID

	cmd.TotalAmount, err = strconv.ParseFloat(r.FormValue("total_amount"), 64)
	if err != nil {
		return cmd, ErrInvalidInput
	}

	if raw := r.FormValue("platform_fee"); raw != "" {
		if cmd.PlatformFee, err = strconv.ParseFloat(raw, 64); err != nil {
			return cmd, ErrInvalidInput
		}
	}
	if raw := r.FormValue("shepherd_payout"); raw != "" {
		if cmd.ShepherdPayout, err = strconv.ParseFloat(raw, 64); err != nil {
			return cmd, ErrInvalidInput
		}
	}

	file, header, err := r.FormFile("document")
	if err == nil {
		defer file.Close()
		data, err := io.ReadAll(file)
		if err != nil {
			return cmd, ErrInvalidInput
		}
		cmd.Document = data
		cmd.Filename = header.Filename
	} else if err != http.ErrMissingFile {
		return cmd, ErrInvalidInput
	}

	return cmd, nil
}
