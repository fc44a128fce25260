package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	qrcode "github.com/skip2/go-qrcode"

	"urlify/internal/base62"
	"urlify/internal/types"
)

// Server is the HTTP surface over the shortener core. Unauthenticated
// traffic is limited per client IP; requests carrying a resolvable X-Api-Key
// go through the more generous authenticated limiter keyed by owner. The two
// limiters have independent bucket tables.
type Server struct {
	port      string
	baseURL   string
	shortener *Shortener
	users     UserDirectory

	publicLimiter *Limiter
	authLimiter   *Limiter
}

func NewServer(port, baseURL string, shortener *Shortener, users UserDirectory, publicLimiter, authLimiter *Limiter) *Server {
	return &Server{
		port:          port,
		baseURL:       strings.TrimSuffix(baseURL, "/"),
		shortener:     shortener,
		users:         users,
		publicLimiter: publicLimiter,
		authLimiter:   authLimiter,
	}
}

func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:    ":" + s.port,
		Handler: s.Handler(),
	}
	errChan := make(chan error, 1)
	go func() { errChan <- srv.ListenAndServe() }()
	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		return nil
	case err := <-errChan:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{code}", s.handleRedirect)
	mux.HandleFunc("POST /urls", s.handleShorten)
	mux.HandleFunc("GET /urls", s.handleList)
	mux.HandleFunc("GET /urls/{code}/stats", s.handleStats)
	mux.HandleFunc("GET /urls/{code}/qr", s.handleQR)
	return mux
}

func (s *Server) handleRedirect(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")
	ip := clientIP(r)

	if !s.publicLimiter.TryConsume(ip, 1) {
		writeError(w, http.StatusTooManyRequests, "Rate limit exceeded. Please try again later.")
		return
	}

	click := ClickInfo{
		IP:        ip,
		UserAgent: r.UserAgent(),
		Referer:   r.Referer(),
	}
	destination, err := s.shortener.Resolve(r.Context(), code, click)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound), errors.Is(err, ErrExpired):
			writeError(w, http.StatusNotFound, "short link not found")
		case errors.Is(err, base62.ErrInvalidCharacter):
			writeError(w, http.StatusBadRequest, "malformed short code")
		default:
			slog.Error("Resolve failed", "code", code, "error", err)
			writeError(w, http.StatusServiceUnavailable, "service unavailable")
		}
		return
	}

	http.Redirect(w, r, destination, http.StatusFound)
}

func (s *Server) handleShorten(w http.ResponseWriter, r *http.Request) {
	ownerID, limiter, identity, err := s.identify(r)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			writeError(w, http.StatusUnauthorized, "invalid API key")
			return
		}
		slog.Error("Identity lookup failed", "error", err)
		writeError(w, http.StatusServiceUnavailable, "service unavailable")
		return
	}

	if !limiter.TryConsume(identity, 1) {
		writeError(w, http.StatusTooManyRequests, "Rate limit exceeded. Please try again later.")
		return
	}

	var req ShortenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	link, err := s.shortener.Shorten(r.Context(), req, ownerID)
	if err != nil {
		var vErr *ValidationError
		switch {
		case errors.As(err, &vErr):
			writeError(w, http.StatusBadRequest, vErr.Error())
		case errors.Is(err, ErrAliasTaken):
			writeError(w, http.StatusBadRequest, "alias already in use")
		default:
			slog.Error("Shorten failed", "error", err)
			writeError(w, http.StatusInternalServerError, "failed to create short link")
		}
		return
	}

	writeJSON(w, http.StatusCreated, s.linkResponse(*link))
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	apiKey := r.Header.Get("X-Api-Key")
	if apiKey == "" {
		writeError(w, http.StatusUnauthorized, "API key required")
		return
	}
	ownerID, err := s.users.ResolveOwnerID(r.Context(), apiKey)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			writeError(w, http.StatusUnauthorized, "invalid API key")
			return
		}
		slog.Error("Identity lookup failed", "error", err)
		writeError(w, http.StatusServiceUnavailable, "service unavailable")
		return
	}

	links, err := s.shortener.ListByOwner(r.Context(), ownerID)
	if err != nil {
		slog.Error("List links failed", "owner_id", ownerID, "error", err)
		writeError(w, http.StatusServiceUnavailable, "service unavailable")
		return
	}

	resp := make([]linkResponse, 0, len(links))
	for _, link := range links {
		resp = append(resp, s.linkResponse(link))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")

	stats, err := s.shortener.Stats(r.Context(), code)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			writeError(w, http.StatusNotFound, "short link not found")
			return
		}
		slog.Error("Stats failed", "code", code, "error", err)
		writeError(w, http.StatusServiceUnavailable, "service unavailable")
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

func (s *Server) handleQR(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")

	link, err := s.shortener.store.Get(r.Context(), code)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			writeError(w, http.StatusNotFound, "short link not found")
			return
		}
		slog.Error("QR lookup failed", "code", code, "error", err)
		writeError(w, http.StatusServiceUnavailable, "service unavailable")
		return
	}
	if link.Expired(time.Now()) {
		writeError(w, http.StatusNotFound, "short link not found")
		return
	}

	png, err := qrcode.Encode(s.shortURL(code), qrcode.Medium, 256)
	if err != nil {
		slog.Error("QR encoding failed", "code", code, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to generate QR code")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(png)
}

// identify picks the limiter class for the request: authenticated when a
// resolvable API key is present, public (per client IP) otherwise.
func (s *Server) identify(r *http.Request) (ownerID int64, limiter *Limiter, identity string, err error) {
	apiKey := r.Header.Get("X-Api-Key")
	if apiKey == "" {
		return 0, s.publicLimiter, clientIP(r), nil
	}
	ownerID, err = s.users.ResolveOwnerID(r.Context(), apiKey)
	if err != nil {
		return 0, nil, "", err
	}
	return ownerID, s.authLimiter, fmt.Sprintf("user:%d", ownerID), nil
}

type linkResponse struct {
	Code        string     `json:"code"`
	Destination string     `json:"destination"`
	ShortURL    string     `json:"short_url"`
	ClickCount  int64      `json:"click_count"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func (s *Server) linkResponse(link types.ShortLink) linkResponse {
	return linkResponse{
		Code:        link.Code,
		Destination: link.Destination,
		ShortURL:    s.shortURL(link.Code),
		ClickCount:  link.ClickCount,
		ExpiresAt:   link.ExpiresAt,
		CreatedAt:   link.CreatedAt,
	}
}

func (s *Server) shortURL(code string) string {
	return s.baseURL + "/" + code
}

// clientIP derives the rate-limit identity for unauthenticated traffic:
// first X-Forwarded-For hop, then X-Real-IP, then the socket address.
func clientIP(r *http.Request) string {
	ip := r.Header.Get("X-Forwarded-For")
	if ip == "" {
		ip = r.Header.Get("X-Real-IP")
	}
	if ip == "" {
		host, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			return r.RemoteAddr
		}
		return host
	}
	if i := strings.IndexByte(ip, ','); i >= 0 {
		ip = ip[:i]
	}
	return strings.TrimSpace(ip)
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
