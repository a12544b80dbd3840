package directory

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/ombaa/ombaa/pkg/handlers"
	"github.com/ombaa/ombaa/pkg/pagination"
	"github.com/ombaa/ombaa/pkg/routes"
)

// Handler provides HTTP endpoints for the public directory. No routes
// require authentication.
type Handler struct {
	sys        System
	pagination pagination.Config
	logger     *slog.Logger
}

// NewHandler creates a Handler with the given system.
func NewHandler(sys System, pageCfg pagination.Config, logger *slog.Logger) *Handler {
	return &Handler{
		sys:        sys,
		pagination: pageCfg,
		logger:     logger.With("handler", "directory"),
	}
}

// Routes returns the route group definition for directory endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/directory",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/shepherds", Handler: h.Shepherds},
			{Method: "GET", Pattern: "/solar-parks", Handler: h.Sites},
			{Method: "GET", Pattern: "/regions", Handler: h.Regions},
			{Method: "POST", Pattern: "/enquiry", Handler: h.Enquire},
			{Method: "POST", Pattern: "/waitlist", Handler: h.JoinWaitlist},
		},
	}
}

func filterFromQuery(r *http.Request) Filter {
	q := r.URL.Query()
	return Filter{
		Country: q.Get("country"),
		Region:  q.Get("region"),
	}
}

// Shepherds returns a page of the verified shepherd directory.
func (h *Handler) Shepherds(w http.ResponseWriter, r *http.Request) {
	page := pagination.PageRequestFromQuery(r.URL.Query(), h.pagination)

	result, err := h.sys.Shepherds(r.Context(), filterFromQuery(r), page)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Sites returns a page of the solar site directory.
func (h *Handler) Sites(w http.ResponseWriter, r *http.Request) {
	page := pagination.PageRequestFromQuery(r.URL.Query(), h.pagination)

	result, err := h.sys.Sites(r.Context(), filterFromQuery(r), page)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Regions returns the known region names per country code.
func (h *Handler) Regions(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.sys.Regions())
}

// Enquire stores a visitor enquiry.
func (h *Handler) Enquire(w http.ResponseWriter, r *http.Request) {
	var cmd EnquiryCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidInput)
		return
	}

	entry, err := h.sys.Enquire(r.Context(), cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, entry)
}

// JoinWaitlist stores a waitlist signup.
func (h *Handler) JoinWaitlist(w http.ResponseWriter, r *http.Request) {
	var cmd WaitlistCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidInput)
		return
	}

	entry, err := h.sys.JoinWaitlist(r.Context(), cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, entry)
}
