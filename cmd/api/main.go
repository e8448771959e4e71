package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"example.com/enrollment/internal/api"
	"example.com/enrollment/internal/config"
	"example.com/enrollment/internal/domain"
	"example.com/enrollment/internal/events"
	"example.com/enrollment/internal/observability"
	httptransport "example.com/enrollment/internal/transport/http"
)

func main() {
	cfg := config.Load()

	roster, err := config.LoadRoster(cfg.RosterPath)
	if err != nil {
		log.Fatalf("failed to load roster: %v", err)
	}

	store := domain.NewStore()
	for _, activity := range roster {
		if err := store.Add(activity.Name, activity.Description, activity.Schedule, activity.MaxParticipants, activity.Participants); err != nil {
			log.Fatalf("failed to provision activity: %v", err)
		}
	}
	for _, activity := range store.ListActivities() {
		observability.RecordSpotsAvailable(activity.Name, activity.SpotsLeft())
	}

	var publisher events.Publisher = events.NopPublisher{}
	if len(cfg.KafkaBrokers) > 0 {
		kafkaPublisher := events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.EnrollmentTopic)
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
		log.Printf("publishing enrollment events to %s via %v", cfg.EnrollmentTopic, cfg.KafkaBrokers)
	}

	handler := api.NewHandler(store, publisher)
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir))))

	// Basic request logger
	logger := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log.Printf("%s %s", r.Method, r.URL.Path)
			next.ServeHTTP(w, r)
		})
	}

	server := httptransport.NewServer(httptransport.ServerConfig{
		Address:      cfg.HTTPAddress,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}, logger(mux))

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("enrollment-service listening on %s with %d activities", cfg.HTTPAddress, len(roster))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-shutdownCh

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}
}
