// Package server provides the HTTP server and handlers.
package server

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/cbaxter/domainfolio/internal/catalog"
	"github.com/cbaxter/domainfolio/internal/chat"
	"github.com/cbaxter/domainfolio/internal/model"
	"github.com/cbaxter/domainfolio/internal/render"
)

//go:embed static/*
var staticFS embed.FS

// inquiryAck is the canned acknowledgement for contact-form submissions.
const inquiryAck = "Thank you for your inquiry! I will get back to you within 24 hours."

// Server is the main HTTP server.
type Server struct {
	store        *catalog.Store
	engine       *render.Engine
	chats        *chat.Manager
	contactEmail string
	router       chi.Router
}

// New creates a new server over the given store and chat manager.
func New(store *catalog.Store, chats *chat.Manager, contactEmail string) (*Server, error) {
	engine, err := render.NewEngine()
	if err != nil {
		return nil, err
	}

	s := &Server{
		store:        store,
		engine:       engine,
		chats:        chats,
		contactEmail: contactEmail,
	}
	s.setupRoutes()
	return s, nil
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))

	// Serve static files.
	staticSub, _ := fs.Sub(staticFS, "static")
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticSub))))

	// Pages.
	r.Get("/", s.handleCollection)
	r.Get("/domains/{domainID}", s.handleDetail)

	// API.
	r.Route("/api", func(r chi.Router) {
		r.Get("/domains", s.handleListDomains)
		r.Get("/domains/{domainID}", s.handleGetDomain)
		r.Get("/domains/{domainID}/contact", s.handleContact)
		r.Get("/filters", s.handleFilterMetadata)
		r.Post("/inquiries", s.handleInquiry)

		r.Post("/chat", s.handleOpenChat)
		r.Get("/chat/{sessionID}", s.handleChatTranscript)
		r.Post("/chat/{sessionID}/messages", s.handleChatMessage)
		r.Delete("/chat/{sessionID}", s.handleCloseChat)
	})

	s.router = r
}

// Start starts the server and the chat janitor.
func (s *Server) Start(addr string) error {
	s.chats.Start()
	log.Printf("Server starting on %s", addr)
	return http.ListenAndServe(addr, s.router)
}

// Stop stops the chat janitor.
func (s *Server) Stop() {
	s.chats.Stop()
}

// ServeHTTP makes the server usable directly in tests.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// --- Page Handlers ---

func (s *Server) handleCollection(w http.ResponseWriter, r *http.Request) {
	criteria := criteriaFromQuery(r.URL.Query())
	listings := s.store.All()
	if !criteria.IsZero() {
		listings = catalog.Filter(listings, criteria)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.engine.RenderCollection(w, listings, s.store.Categories(), s.store.Extensions(), criteria); err != nil {
		log.Printf("Template error: %v", err)
		http.Error(w, "Render error", http.StatusInternalServerError)
	}
}

func (s *Server) handleDetail(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "domainID"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err = s.engine.RenderDetail(w, s.store, id)
	if errors.Is(err, render.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		log.Printf("Template error: %v", err)
		http.Error(w, "Render error", http.StatusInternalServerError)
	}
}

// --- Catalog API Handlers ---

func (s *Server) handleListDomains(w http.ResponseWriter, r *http.Request) {
	criteria := criteriaFromQuery(r.URL.Query())
	listings := catalog.Filter(s.store.All(), criteria)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"count":   len(listings),
		"domains": toDomainJSON(listings),
	})
}

func (s *Server) handleGetDomain(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "domainID"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid domain id", http.StatusBadRequest)
		return
	}
	l, ok := s.store.Get(id)
	if !ok {
		http.Error(w, "Domain not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, domainJSON(l))
}

func (s *Server) handleFilterMetadata(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"categories":     s.store.Categories(),
		"extensions":     s.store.Extensions(),
		"price_brackets": render.DefaultPriceBrackets(),
	})
}

func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "domainID"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid domain id", http.StatusBadRequest)
		return
	}
	l, ok := s.store.Get(id)
	if !ok {
		http.Error(w, "Domain not found", http.StatusNotFound)
		return
	}

	subject := fmt.Sprintf("Inquiry about %s", l.Name)
	body := fmt.Sprintf("Hi, I'm interested in purchasing %s. Could we discuss the details?", l.Name)
	mailto := fmt.Sprintf("mailto:%s?subject=%s&body=%s",
		s.contactEmail, url.QueryEscape(subject), url.QueryEscape(body))

	writeJSON(w, http.StatusOK, map[string]string{"mailto": mailto})
}

func (s *Server) handleInquiry(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name           string `json:"name"`
		Email          string `json:"email"`
		DomainInterest string `json:"domain_interest"`
		Message        string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	log.Printf("Inquiry from %s <%s> about %q", req.Name, req.Email, req.DomainInterest)
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"message": inquiryAck,
	})
}

// --- Chat API Handlers ---

func (s *Server) handleOpenChat(w http.ResponseWriter, r *http.Request) {
	var req struct {
		DomainName string `json:"domain_name"`
	}
	// An empty body opens an unscoped chat.
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	session := s.chats.Open(req.DomainName)
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"session_id": session.ID,
		"messages":   session.Transcript(),
	})
}

func (s *Server) handleChatTranscript(w http.ResponseWriter, r *http.Request) {
	session, ok := s.chatSession(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"session_id": session.ID,
		"messages":   session.Transcript(),
	})
}

func (s *Server) handleChatMessage(w http.ResponseWriter, r *http.Request) {
	session, ok := s.chatSession(w, r)
	if !ok {
		return
	}

	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	req.Text = strings.TrimSpace(req.Text)
	if req.Text == "" {
		http.Error(w, "Message text required", http.StatusBadRequest)
		return
	}

	msg, err := session.Send(req.Text)
	if errors.Is(err, chat.ErrSessionClosed) {
		http.Error(w, "Session closed", http.StatusGone)
		return
	}
	if err != nil {
		http.Error(w, "Failed to send", http.StatusInternalServerError)
		return
	}

	// The owner reply arrives in the transcript after the typing delay.
	writeJSON(w, http.StatusAccepted, msg)
}

func (s *Server) handleCloseChat(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "sessionID"))
	if err != nil {
		http.Error(w, "Invalid session id", http.StatusBadRequest)
		return
	}
	if !s.chats.Close(id) {
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) chatSession(w http.ResponseWriter, r *http.Request) (*chat.Session, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "sessionID"))
	if err != nil {
		http.Error(w, "Invalid session id", http.StatusBadRequest)
		return nil, false
	}
	session, ok := s.chats.Get(id)
	if !ok {
		http.Error(w, "Session not found", http.StatusNotFound)
		return nil, false
	}
	return session, true
}

// --- Helpers ---

func criteriaFromQuery(q url.Values) model.Criteria {
	return model.Criteria{
		Category:   q.Get("category"),
		Extension:  q.Get("extension"),
		PriceToken: q.Get("price"),
		Search:     q.Get("q"),
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("JSON encode error: %v", err)
	}
}

func domainJSON(l model.Listing) map[string]interface{} {
	return map[string]interface{}{
		"id":               l.ID,
		"name":             l.Name,
		"price":            l.Price,
		"price_label":      render.FormatPrice(l.Price),
		"category":         l.Category,
		"extension":        l.Extension,
		"length":           l.Length,
		"age":              l.Age,
		"traffic":          l.Traffic,
		"description":      l.Description,
		"owner_notes":      l.OwnerNotes,
		"keywords":         l.Keywords,
		"acquisition_year": l.AcquisitionYear,
		"featured":         l.Featured,
	}
}

func toDomainJSON(listings []model.Listing) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(listings))
	for _, l := range listings {
		out = append(out, domainJSON(l))
	}
	return out
}
