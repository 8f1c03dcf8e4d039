package api

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/Tahashy/Panel-Administrativo/internal/models"
	"github.com/gorilla/mux"
)

// Server owns the HTTP listener and shuts it down gracefully when its
// context is cancelled.
type Server struct {
	cfg *models.Config
	srv *http.Server
}

func NewServer(cfg *models.Config, orderController *OrderController, productController *ProductController) *Server {
	router := mux.NewRouter()
	RegisterRoutes(router, orderController, productController)

	return &Server{
		cfg: cfg,
		srv: &http.Server{
			Addr:    cfg.ListenAddr,
			Handler: router,
		},
	}
}

func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		log.Printf("HTTP server listening on %s", s.cfg.ListenAddr)
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()
		if err := s.srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		log.Println("HTTP server shut down gracefully")
		return nil
	case err := <-errCh:
		return err
	}
}
