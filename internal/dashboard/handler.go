package dashboard

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/mikiyas/txboard/internal/domain"
	"github.com/mikiyas/txboard/internal/upstream"
)

//go:embed templates/*.html
var templateFS embed.FS

// Handler serves the server-rendered transaction dashboard. Page number and
// search query live in the URL, so every render performs exactly one upstream
// fetch and there is no stale-response race between navigations.
type Handler struct {
	logger *slog.Logger
	client upstream.Client
	tmpl   *template.Template
	loc    *time.Location
}

// NewHandler parses the embedded templates and builds the dashboard handler.
// loc controls timestamp rendering; nil means the server's local zone.
func NewHandler(logger *slog.Logger, client upstream.Client, loc *time.Location) (*Handler, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse dashboard templates: %w", err)
	}
	if loc == nil {
		loc = time.Local
	}
	return &Handler{
		logger: logger,
		client: client,
		tmpl:   tmpl,
		loc:    loc,
	}, nil
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	page := parsePage(r.URL.Query().Get("page"))
	query := r.URL.Query().Get("q")

	txs, err := h.fetch(r, page, query)
	if err != nil {
		// Render an empty table rather than an error page; the failure is
		// visible in the logs.
		h.logger.Error("dashboard fetch failed", "error", err, "page", page, "query", query)
		txs = nil
	}

	view := buildView(txs, page, query, h.loc)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.ExecuteTemplate(w, "dashboard.html", view); err != nil {
		h.logger.Error("render dashboard failed", "error", err)
	}
}

// fetch runs the list fetch for the page, or the search when a query is
// present. An empty query always falls back to the paged list.
func (h *Handler) fetch(r *http.Request, page int, query string) ([]domain.Transaction, error) {
	var (
		reply *upstream.Reply
		err   error
	)
	if query == "" {
		reply, err = h.client.FindByUser(r.Context(), strconv.Itoa(page))
	} else {
		reply, err = h.client.Search(r.Context(), query)
	}
	if err != nil {
		return nil, err
	}
	if !reply.OK() {
		return nil, fmt.Errorf("upstream returned status %d: %s", reply.StatusCode, reply.Body)
	}

	var result domain.ResultSet
	if err := json.Unmarshal(reply.Body, &result); err != nil {
		return nil, fmt.Errorf("decode upstream payload: %w", err)
	}
	return result.Data, nil
}

func parsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}
