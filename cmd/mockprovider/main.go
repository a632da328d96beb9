// Command mockprovider runs a local stand-in for the payment provider API.
// It serves the find-by-user and search endpoints over a generated dataset
// and enforces the same HMAC signing contract as the real provider, which
// makes it useful for exercising the dashboard end to end without
// credentials for the live sandbox.
package main

import (
	"crypto/hmac"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/mikiyas/txboard/internal/domain"
	"github.com/mikiyas/txboard/internal/generator"
	"github.com/mikiyas/txboard/internal/signing"
)

const pageSize = 10

func main() {
	cfg := generator.DefaultConfig()
	var (
		addr         = flag.String("addr", ":9000", "listen address")
		apiKey       = flag.String("api-key", "sandbox-key", "API key clients must present")
		apiSecret    = flag.String("api-secret", "sandbox-secret", "shared signing secret")
		accounts     = flag.Int("accounts", cfg.NumAccounts, "number of accounts to generate")
		transactions = flag.Int("transactions", cfg.NumTransactions, "number of transactions to generate")
		seed         = flag.Int64("seed", cfg.Seed, "random seed for deterministic generation")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	gen := generator.New(generator.Config{
		NumAccounts:     *accounts,
		NumTransactions: *transactions,
		Seed:            *seed,
	})

	p := &provider{
		logger: logger,
		apiKey: *apiKey,
		secret: []byte(*apiSecret),
		txs:    gen.Generate(),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/en/transaction/find-by-user", p.handleFindByUser)
	mux.HandleFunc("/api/en/transaction/search", p.handleSearch)

	logger.Info("mock provider listening", "addr", *addr, "transactions", len(p.txs))
	if err := http.ListenAndServe(*addr, mux); err != nil {
		fmt.Fprintf(os.Stderr, "mock provider stopped: %v\n", err)
		os.Exit(1)
	}
}

type provider struct {
	logger *slog.Logger
	apiKey string
	secret []byte
	txs    []domain.Transaction
}

func (p *provider) handleFindByUser(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if !p.authenticate(w, r, "") {
		return
	}

	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(p.txs) {
		start = len(p.txs)
	}
	if end > len(p.txs) {
		end = len(p.txs)
	}

	writeJSON(w, map[string]any{
		"data":    p.txs[start:end],
		"page":    page,
		"perPage": pageSize,
		"total":   len(p.txs),
	})
}

func (p *provider) handleSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "unreadable body", http.StatusBadRequest)
		return
	}
	if !p.authenticate(w, r, string(body)) {
		return
	}

	var payload struct {
		Query string `json:"query"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	needle := strings.ToLower(payload.Query)
	matches := make([]domain.Transaction, 0)
	for _, tx := range p.txs {
		if matchesQuery(tx, needle) {
			matches = append(matches, tx)
		}
	}

	writeJSON(w, map[string]any{
		"data":  matches,
		"total": len(matches),
	})
}

// authenticate enforces the provider signing contract: the signature covers
// timestamp+method+path+body, with the query string excluded.
func (p *provider) authenticate(w http.ResponseWriter, r *http.Request, body string) bool {
	if r.Header.Get("YAYA-API-KEY") != p.apiKey {
		http.Error(w, "unknown API key", http.StatusUnauthorized)
		return false
	}

	timestamp := r.Header.Get("YAYA-API-TIMESTAMP")
	if timestamp == "" {
		http.Error(w, "missing timestamp", http.StatusUnauthorized)
		return false
	}

	want := signing.Sign(p.secret, timestamp, r.Method, r.URL.Path, body)
	got := r.Header.Get("YAYA-API-SIGN")
	if !hmac.Equal([]byte(want), []byte(got)) {
		p.logger.Warn("signature mismatch", "method", r.Method, "path", r.URL.Path)
		http.Error(w, "invalid signature", http.StatusForbidden)
		return false
	}
	return true
}

func matchesQuery(tx domain.Transaction, needle string) bool {
	if needle == "" {
		return true
	}
	for _, hay := range []string{
		tx.ID,
		tx.Sender.Display(),
		tx.Sender.Account(),
		tx.Receiver.Display(),
		tx.Receiver.Account(),
		tx.Cause,
	} {
		if strings.Contains(strings.ToLower(hay), needle) {
			return true
		}
	}
	return false
}

func writeJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(data)
}
