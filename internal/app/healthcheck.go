package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/specialistvlad/uaschema/internal/registry"
)

// Handler returns the HTTP handler served by Serve:
//
//	GET /health             200 once the registry is finalized, 503 before
//	GET /descriptors        every registered descriptor
//	GET /descriptors/{ref}  one descriptor by identity or `<ns>:<Name>`
func (a *App) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", a.healthHandler)
	mux.HandleFunc("GET /descriptors", a.listHandler)
	mux.HandleFunc("GET /descriptors/{ref}", a.lookupHandler)
	return mux
}

func (a *App) healthHandler(w http.ResponseWriter, r *http.Request) {
	a.logger.Debug("Health check endpoint hit.", "remote_addr", r.RemoteAddr, "path", r.URL.Path)
	if err := a.registry.RequireFinalized(); err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "OK")
}

func (a *App) listHandler(w http.ResponseWriter, r *http.Request) {
	catalog, err := a.registry.Snapshot()
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	descriptors := catalog.Descriptors()
	views := make([]DescriptorView, len(descriptors))
	for i, d := range descriptors {
		views[i] = Describe(d)
	}
	a.writeJSON(w, views)
}

func (a *App) lookupHandler(w http.ResponseWriter, r *http.Request) {
	ref := r.PathValue("ref")
	catalog, err := a.registry.Snapshot()
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	d, err := catalog.Lookup(ref)
	switch {
	case errors.Is(err, registry.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	case err != nil:
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	a.logger.Debug("Descriptor looked up.", "ref", ref, "identity", d.Identity().String())
	a.writeJSON(w, Describe(d))
}

func (a *App) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		a.logger.Error("Failed to write response.", "error", err)
	}
}

// Serve runs the health check and lookup server on the configured port until
// ctx is cancelled, then shuts it down gracefully.
func (a *App) Serve(ctx context.Context) error {
	if a.config.HealthcheckPort <= 0 {
		return errors.New("health check server disabled: no port configured")
	}
	addr := fmt.Sprintf(":%d", a.config.HealthcheckPort)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	return a.serve(ctx, ln)
}

func (a *App) serve(ctx context.Context, ln net.Listener) error {
	a.httpServer = &http.Server{
		Handler:           a.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("Health check server starting.", "address", fmt.Sprintf("http://%s/health", ln.Addr()))
		// ErrServerClosed is the normal result of Shutdown.
		if err := a.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("health check server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}
	return a.closeHealthCheckServer()
}

func (a *App) closeHealthCheckServer() error {
	if a.httpServer == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	a.logger.Info("Shutting down health check server.")
	if err := a.httpServer.Shutdown(ctx); err != nil {
		a.logger.Error("Health check server shutdown failed.", "error", err)
		return err
	}
	a.logger.Debug("Health check server shut down gracefully.")
	return nil
}
