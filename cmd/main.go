package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chatgram/auth"
	"chatgram/delivery"
	"chatgram/dispatch"
	"chatgram/domain/event"
	grpc2 "chatgram/grpc"
	"chatgram/gateway"
	"chatgram/internal"
	"chatgram/observability"
	"chatgram/presence"
	v1 "chatgram/proto/chat"
	"chatgram/repositories"
	"chatgram/runtime/workers"
	"chatgram/services"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"google.golang.org/grpc"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, manages the server lifecycle, and
// centralizes error reporting so every defer executes before exit.
func run() error {
	// 1. Configuration & Logger
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)
	auth.SetSigningKey(config.JwtSigningKey)

	// 2. Database (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.INFO))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Core components: registries, repositories, engine, gateway
	messageRepository := repositories.NewMessageRepository(db, log)
	conversationRepository := repositories.NewConversationRepository(db, log)
	registry := presence.NewRegistry()
	index := gateway.NewSubscriptionIndex()

	telemetryChan := make(chan event.Event, config.TelemetryBufferSize)
	dispatcher := dispatch.NewDispatcher(log, index, registry, telemetryChan)
	engine := delivery.NewEngine(log, registry, conversationRepository, messageRepository, dispatcher)
	gw := gateway.NewGateway(log, registry, index, conversationRepository, engine, dispatcher)
	chatService := services.NewChatService(log, engine, conversationRepository, messageRepository, registry)

	// 4. Supervision: telemetry pipeline & monitoring
	counter := event.NewCounter()
	monitoring := observability.NewMonitoringManager(log, config.MetricInterval, counter, registry)
	telemetryWorker := workers.NewTelemetryWorker(log, telemetryChan, []event.Handler{
		event.NewCounterHandler(counter),
		event.NewLatencyHandler(log, config.LatencyThreshold),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sup := workers.NewSupervisor(log)
	supDone := make(chan struct{})
	go func() {
		sup.Add(telemetryWorker, monitoring).Run(ctx)
		close(supDone)
	}()

	// 5. Debug endpoint over the raw store
	internal.StartDebugServer(db, config.DebugPort, "/inspect", internal.DefaultMapper, func() map[string]any {
		stats := monitoring.GetLatest()
		return map[string]any{
			"online_users": stats.OnlineUsers,
			"cpu_percent":  fmt.Sprintf("%.1f", stats.CpuPercent),
			"alloc_mem_mb": stats.AllocMemMb,
			"goroutines":   stats.NumGoroutines,
			"events":       stats.EventCounts,
		}
	})

	// 6. gRPC Server Setup
	address := fmt.Sprintf("%s:%d", config.Host, config.Port)
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", address, err)
	}

	s := grpc.NewServer(grpc.UnaryInterceptor(auth.UnaryInterceptor))
	server := grpc2.NewChatServer(log, gw, engine, chatService, config.ConnectionBufferSize)
	v1.RegisterChatServiceServer(s, server)

	errChan := make(chan error, 1)
	go func() {
		log.Info("Starting gRPC server", "address", address, "at", time.Now().UTC())
		if err := s.Serve(listener); err != nil && err != grpc.ErrServerStopped {
			errChan <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	// 7. Wait for Stop or Error
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case err := <-errChan:
		return err
	}

	// 8. Final Cleanup
	s.GracefulStop()
	sup.Stop()
	<-supDone
	log.Info("Program stopped cleanly")

	return nil
}
