package server

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/mikiyas/txboard/internal/upstream"
)

// APIHandlers exposes the JSON proxy endpoints in front of the payment
// provider API.
type APIHandlers struct {
	logger *slog.Logger
	client upstream.Client
}

// NewAPIHandlers constructs an APIHandlers instance.
func NewAPIHandlers(logger *slog.Logger, client upstream.Client) *APIHandlers {
	return &APIHandlers{
		logger: logger,
		client: client,
	}
}

// errorEnvelope is the structured error body every proxy failure is converted
// into. details carries the raw upstream body or the transport error text.
type errorEnvelope struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

func (h *APIHandlers) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	page := r.URL.Query().Get("p")
	if page == "" {
		page = "2"
	}

	reply, err := h.client.FindByUser(r.Context(), page)
	if err != nil {
		h.logger.Error("upstream fetch failed", "error", err, "page", page)
		respondJSON(w, http.StatusInternalServerError, errorEnvelope{
			Error:   "Failed to fetch transactions",
			Details: err.Error(),
		})
		return
	}
	if !reply.OK() {
		h.logger.Warn("upstream rejected fetch", "status", reply.StatusCode, "page", page)
		respondJSON(w, reply.StatusCode, errorEnvelope{
			Error:   "API request failed",
			Details: string(reply.Body),
		})
		return
	}

	relayJSON(w, http.StatusOK, reply.Body)
}

type searchRequest struct {
	Query string `json:"query"`
}

func (h *APIHandlers) handleSearchTransactions(w http.ResponseWriter, r *http.Request) {
	var payload searchRequest
	if err := decodeJSON(r, &payload); err != nil {
		respondJSON(w, http.StatusInternalServerError, errorEnvelope{
			Error:   "Failed to search transactions",
			Details: err.Error(),
		})
		return
	}

	reply, err := h.client.Search(r.Context(), payload.Query)
	if err != nil {
		h.logger.Error("upstream search failed", "error", err)
		respondJSON(w, http.StatusInternalServerError, errorEnvelope{
			Error:   "Failed to search transactions",
			Details: err.Error(),
		})
		return
	}
	if !reply.OK() {
		h.logger.Warn("upstream rejected search", "status", reply.StatusCode)
		respondJSON(w, reply.StatusCode, errorEnvelope{
			Error:   "API request failed",
			Details: string(reply.Body),
		})
		return
	}

	relayJSON(w, http.StatusOK, reply.Body)
}

func decodeJSON(r *http.Request, dst any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}

// relayJSON writes an upstream body through untouched.
func relayJSON(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
