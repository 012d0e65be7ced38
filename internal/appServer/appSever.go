// launching the server, storage and the Gemini client
package appServer

import (
	"context"
	"crypto/tls"
	"log"

	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ds124wfegd/gemini-studio/config"
	"github.com/ds124wfegd/gemini-studio/internal/database"
	"github.com/ds124wfegd/gemini-studio/internal/gemini"
	"github.com/ds124wfegd/gemini-studio/internal/pkg/storage"
	"github.com/ds124wfegd/gemini-studio/internal/service"
	"github.com/ds124wfegd/gemini-studio/internal/transport"
)

type Server struct {
	httpServer *http.Server
}

func (s *Server) Run(cfg *config.Config, handler http.Handler) error {
	s.httpServer = &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           handler,
		MaxHeaderBytes:    1 << 20,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       cfg.Server.Idle_timeout,
		ReadHeaderTimeout: 3 * time.Second,
		TLSConfig:         &tls.Config{MinVersion: tls.VersionTLS12}, // ban on outdated TLS versions
		ErrorLog:          log.New(os.Stderr, "SERVER ERROR: ", log.LstdFlags),
	}
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func NewServer(cfg *config.Config) {

	logrus.SetFormatter(new(logrus.JSONFormatter))

	geminiClient, err := gemini.NewClient(context.Background(), cfg.Gemini.APIKey)
	if err != nil {
		logrus.Fatalf("cannot create Gemini client: %s", err.Error())
	}

	fileStorage := storage.NewFileStorage(cfg.App.StoragePath)
	artifactRepo := database.NewArtifactRepository(fileStorage)
	genService := service.NewGenerationService(geminiClient, artifactRepo)
	genHandler := transport.NewGenerationHandler(genService, artifactRepo, cfg.App.MaxUploadSize)

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := new(Server)
	go func() {
		if err := srv.Run(cfg, transport.InitRoutes(genHandler, cfg.App.TemplatesDir)); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("error occured while running http server: %s", err.Error())
		}
	}()

	logrus.Print("App Started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	logrus.Print("App Shutting Down")

	if err := srv.Shutdown(context.Background()); err != nil {
		logrus.Errorf("error occured on server shutting down: %s", err.Error())
	}

}
