package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/case-framework/contact-manager/pkg/apihelpers"
	"github.com/case-framework/contact-manager/pkg/utils"
	"github.com/case-framework/contact-manager/services/contacts-api/apihandlers"
)

const (
	defaultReadHeaderTimeout = 10 * time.Second
	defaultShutdownTimeout   = 15 * time.Second
)

func main() {
	defer func() {
		if err := contactsDBService.Disconnect(); err != nil {
			slog.Error("Error disconnecting from Contacts DB", slog.String("error", err.Error()))
		}
	}()

	readHeaderTimeout, err := utils.ParseDurationString(conf.GinConfig.ReadHeaderTimeout, defaultReadHeaderTimeout)
	if err != nil {
		slog.Error("Invalid read header timeout", slog.String("error", err.Error()))
		return
	}
	shutdownTimeout, err := utils.ParseDurationString(conf.GinConfig.ShutdownTimeout, defaultShutdownTimeout)
	if err != nil {
		slog.Error("Invalid shutdown timeout", slog.String("error", err.Error()))
		return
	}

	// Start webserver
	contactsAPIHandlers := apihandlers.NewHTTPHandler(contactService)
	router := apihandlers.NewRouter(contactsAPIHandlers, apiRoot, conf.GinConfig.AllowOrigins)

	if conf.GinConfig.DebugMode {
		if err := apihelpers.WriteRoutesToFile(router, "contacts-api-routes.txt"); err != nil {
			slog.Warn("Could not write routes to file", slog.String("error", err.Error()))
		}
	}

	server := &http.Server{
		Addr:              ":" + conf.GinConfig.Port,
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Starting Contacts API on port "+conf.GinConfig.Port, slog.String("apiRoot", apiRoot))
		serverErr <- listen(server)
	}()

	select {
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Exited Contacts API", slog.String("error", err.Error()))
		}
		return
	case <-ctx.Done():
		slog.Info("Shutting down Contacts API")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Error during shutdown", slog.String("error", err.Error()))
	}
}

func listen(server *http.Server) error {
	if !conf.GinConfig.MTLS.Use {
		return server.ListenAndServe()
	}

	// Create tls config for mutual TLS
	tlsConfig, err := apihelpers.LoadTLSConfig(conf.GinConfig.MTLS.CertificatePaths)
	if err != nil {
		slog.Error("Error loading TLS config.", slog.String("error", err.Error()))
		return err
	}
	server.TLSConfig = tlsConfig

	return server.ListenAndServeTLS(
		conf.GinConfig.MTLS.CertificatePaths.ServerCertPath,
		conf.GinConfig.MTLS.CertificatePaths.ServerKeyPath,
	)
}
