package storefront

import (
	"context"
	"net/http"
	"strings"

	"github.com/mabkhara/storefront/internal/response"
)

// ServeHTTP implements http.Handler. Routing is a plain path walk; the
// storefront's URL space is small enough that a router dependency would buy
// nothing.
func (s *Service) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := strings.Trim(r.URL.Path, "/")

	// Root path: the service document, listing what the service exposes.
	if path == "" {
		s.serveServiceDocument(w, r)
		return
	}

	segments := strings.Split(path, "/")

	switch segments[0] {
	case "healthz":
		if !s.requireMethod(w, r, http.MethodGet) {
			return
		}
		s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})

	case "products":
		s.serveProducts(w, r, segments[1:])

	case "categories":
		s.serveCategories(w, r, segments[1:])

	case "carts":
		s.serveCarts(w, r, segments[1:])

	default:
		s.writeError(w, http.StatusNotFound, "NotFound", "unknown resource '"+segments[0]+"'")
	}
}

func (s *Service) serveProducts(w http.ResponseWriter, r *http.Request, rest []string) {
	if !s.requireMethod(w, r, http.MethodGet) {
		return
	}

	switch len(rest) {
	case 0:
		s.catalogHandler.HandleProducts(w, r)
	case 1:
		s.catalogHandler.HandleProduct(w, r, rest[0])
	default:
		s.writeError(w, http.StatusNotFound, "NotFound", "invalid products path")
	}
}

func (s *Service) serveCategories(w http.ResponseWriter, r *http.Request, rest []string) {
	if !s.requireMethod(w, r, http.MethodGet) {
		return
	}

	switch {
	case len(rest) == 0:
		s.catalogHandler.HandleCategories(w, r)
	case len(rest) == 1:
		s.catalogHandler.HandleCategory(w, r, rest[0])
	case len(rest) == 2 && rest[1] == "products":
		s.catalogHandler.HandleCategoryProducts(w, r, rest[0])
	default:
		s.writeError(w, http.StatusNotFound, "NotFound", "invalid categories path")
	}
}

func (s *Service) serveCarts(w http.ResponseWriter, r *http.Request, rest []string) {
	switch {
	case len(rest) == 0 && r.Method == http.MethodPost:
		s.cartHandler.HandleCreate(w, r)

	case len(rest) == 1 && r.Method == http.MethodGet:
		s.cartHandler.HandleGet(w, r, rest[0])

	case len(rest) == 1 && r.Method == http.MethodDelete:
		s.cartHandler.HandleDelete(w, r, rest[0])

	case len(rest) == 2 && rest[1] == "items" && r.Method == http.MethodPost:
		s.cartHandler.HandleAddItem(w, r, rest[0])

	case len(rest) == 3 && rest[1] == "items" && r.Method == http.MethodPut:
		s.cartHandler.HandleSetQuantity(w, r, rest[0], rest[2])

	case len(rest) == 3 && rest[1] == "items" && r.Method == http.MethodDelete:
		s.cartHandler.HandleRemoveItem(w, r, rest[0], rest[2])

	default:
		s.writeError(w, http.StatusMethodNotAllowed, "MethodNotAllowed",
			r.Method+" is not supported on this cart path")
	}
}

// serveServiceDocument lists the top-level resources, so the API root is
// self-describing.
func (s *Service) serveServiceDocument(w http.ResponseWriter, r *http.Request) {
	if !s.requireMethod(w, r, http.MethodGet) {
		return
	}

	type resource struct {
		Name string `json:"name"`
		URL  string `json:"url"`
	}
	s.writeJSON(w, http.StatusOK, map[string][]resource{
		"value": {
			{Name: "products", URL: "products"},
			{Name: "categories", URL: "categories"},
			{Name: "carts", URL: "carts"},
		},
	})
}

func (s *Service) requireMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method != method {
		s.writeError(w, http.StatusMethodNotAllowed, "MethodNotAllowed",
			r.Method+" is not supported here")
		return false
	}
	return true
}

func (s *Service) writeJSON(w http.ResponseWriter, status int, v any) {
	if err := response.WriteJSON(w, status, v); err != nil {
		s.logger.Error("failed to write response", "error", err)
	}
}

func (s *Service) writeError(w http.ResponseWriter, status int, code, message string) {
	if err := response.WriteError(w, status, code, message); err != nil {
		s.logger.Error("failed to write error response", "error", err)
	}
}

// Handler returns the service wrapped in its observability middleware. Use
// this instead of the Service itself when mounting into an existing server.
func (s *Service) Handler() http.Handler {
	return s.obs.HTTPMiddleware(s)
}

// ListenAndServe starts the storefront service on the specified address and
// blocks until the server stops.
func (s *Service) ListenAndServe(addr string) error {
	s.httpMu.Lock()
	server := &http.Server{Addr: addr, Handler: s.Handler()}
	s.httpServer = server
	s.httpMu.Unlock()

	s.logger.Info("starting storefront service", "addr", addr)
	return server.ListenAndServe()
}

// Shutdown gracefully stops a server started with ListenAndServe.
func (s *Service) Shutdown(ctx context.Context) error {
	s.httpMu.Lock()
	server := s.httpServer
	s.httpMu.Unlock()

	if server == nil {
		return nil
	}
	return server.Shutdown(ctx)
}
