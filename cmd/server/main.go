package main

import (
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	"github.com/ruimtorres/tradedesk-backend/internal/adapter/execution"
	grpcadapter "github.com/ruimtorres/tradedesk-backend/internal/adapter/grpc"
	tradedeskv1 "github.com/ruimtorres/tradedesk-backend/internal/adapter/grpc/tradedesk/v1"
	"github.com/ruimtorres/tradedesk-backend/internal/adapter/marketdata"
	"github.com/ruimtorres/tradedesk-backend/internal/adapter/repository/memory"
	"github.com/ruimtorres/tradedesk-backend/internal/adapter/repository/postgres"
	"github.com/ruimtorres/tradedesk-backend/internal/adapter/ws"
	"github.com/ruimtorres/tradedesk-backend/internal/domain"
	"github.com/ruimtorres/tradedesk-backend/internal/usecase/interpreter"
	"github.com/ruimtorres/tradedesk-backend/internal/usecase/parser"
)

const (
	defaultAPIToken = "dev-token"
	grpcPort        = ":8080"
	wsPort          = ":8081"
)

func main() {
	// Load .env if present (local development convenience)
	_ = godotenv.Load()

	// 1. Setup the ledger. Postgres is the default audit store; set
	// LEDGER_DRIVER=memory to run without a database.
	var ledger domain.CommandRepository
	if os.Getenv("LEDGER_DRIVER") == "memory" {
		// Negative bound keeps the full session in memory.
		ledger = memory.NewCommandRepository(-1)
		log.Println("Using in-memory ledger (no audit persistence)")
	} else {
		db, err := postgres.NewDB(dbConnectionString())
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()
		ledger = postgres.NewCommandRepository(db)
	}

	// 2. Initialize collaborators. The demo providers and the simulated
	// executor stand in for the host's market-data, portfolio and
	// execution integrations.
	marketData := marketdata.NewDemoProvider()
	portfolio := marketdata.NewDemoPortfolio()
	executor := execution.NewSimulatedExecutor(0)
	gate := interpreter.NewDecisionGate()

	// 3. Initialize the interpreter service
	svc := interpreter.NewService(
		parser.New(),
		marketData,
		portfolio,
		gate,
		executor,
		ledger,
		0, // default confirmation TTL
	)

	// 4. Start the websocket event hub
	hub := ws.NewHub()
	svc.Subscribe(hub)
	go func() {
		mux := http.NewServeMux()
		mux.Handle("/ws", hub.Handler())
		log.Printf("Websocket event hub listening on %s", wsPort)
		if err := http.ListenAndServe(wsPort, mux); err != nil {
			log.Fatalf("Failed to serve websocket hub: %v", err)
		}
	}()

	// 5. Start gRPC Server
	apiToken := os.Getenv("API_TOKEN")
	if apiToken == "" {
		apiToken = defaultAPIToken
	}

	grpcServer := grpclib.NewServer(
		grpclib.UnaryInterceptor(grpcadapter.AuthInterceptor(apiToken)),
	)

	grpcAdapter := grpcadapter.NewServer(svc, gate)
	tradedeskv1.RegisterTradeDeskServiceServer(grpcServer, grpcAdapter)

	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", grpcPort)
	if err != nil {
		log.Fatalf("Failed to listen on %s: %v", grpcPort, err)
	}

	go func() {
		log.Printf("gRPC server listening on %s", grpcPort)
		if err := grpcServer.Serve(lis); err != nil {
			log.Fatalf("Failed to serve gRPC server: %v", err)
		}
	}()

	// Graceful shutdown
	waitForShutdown(grpcServer, hub)
}

// dbConnectionString builds the Postgres connection string from DB_CONN_STR
// or from the individual DB_* variables (Docker friendly).
func dbConnectionString() string {
	if connStr := os.Getenv("DB_CONN_STR"); connStr != "" {
		return connStr
	}

	host := os.Getenv("DB_HOST")
	if host == "" {
		host = "localhost" // Default for local run without docker
	}
	port := os.Getenv("DB_PORT")
	if port == "" {
		port = "5432"
	}
	user := os.Getenv("DB_USER")
	if user == "" {
		user = "postgres"
	}
	password := os.Getenv("DB_PASSWORD")
	if password == "" {
		password = "postgres"
	}
	dbname := os.Getenv("DB_NAME")
	if dbname == "" {
		dbname = "tradedesk"
	}

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, password, dbname)
}

// waitForShutdown waits for SIGTERM or SIGINT and gracefully shuts down the server
func waitForShutdown(grpcServer *grpclib.Server, hub *ws.Hub) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	sig := <-sigChan
	log.Printf("Received signal: %v. Shutting down gracefully...", sig)

	grpcServer.GracefulStop()
	hub.Close()
	log.Println("Server stopped")
}
