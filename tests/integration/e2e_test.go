//go:build integration

package integration

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	tradedeskv1 "github.com/ruimtorres/tradedesk-backend/internal/adapter/grpc/tradedesk/v1"
	"github.com/ruimtorres/tradedesk-backend/internal/adapter/repository/postgres"
)

var (
	db         *postgres.DB
	grpcClient tradedeskv1.TradeDeskServiceClient
	grpcConn   *grpc.ClientConn
)

// TestMain sets up the test environment. The server under test must be
// running with LEDGER_DRIVER=postgres against the same database.
func TestMain(m *testing.M) {
	dbConnStr := getDBConnectionString()
	var err error
	db, err = postgres.NewDB(dbConnStr)
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to database: %v", err))
	}
	defer db.Close()

	grpcAddr := getGRPCAddress()
	grpcConn, err = grpc.NewClient(grpcAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to gRPC server: %v", err))
	}
	defer grpcConn.Close()

	grpcClient = tradedeskv1.NewTradeDeskServiceClient(grpcConn)

	code := m.Run()

	os.Exit(code)
}

// getAuthContext returns a context with authorization metadata
func getAuthContext() context.Context {
	md := metadata.New(map[string]string{
		"authorization": "dev-token",
	})
	return metadata.NewOutgoingContext(context.Background(), md)
}

// getDBConnectionString returns the database connection string from environment or defaults
func getDBConnectionString() string {
	connStr := os.Getenv("DB_CONN_STR")
	if connStr != "" {
		return connStr
	}

	host := os.Getenv("DB_HOST")
	if host == "" {
		host = "localhost"
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

// getGRPCAddress returns the gRPC server address from environment or defaults
func getGRPCAddress() string {
	addr := os.Getenv("GRPC_ADDRESS")
	if addr == "" {
		addr = "localhost:8080"
	}
	return addr
}

// waitForStatus polls GetCommand until the command reaches the wanted status.
// Settlement is asynchronous, so every terminal assertion goes through here.
func waitForStatus(t *testing.T, ctx context.Context, commandID string, want tradedeskv1.CommandStatus) *tradedeskv1.TradeCommand {
	t.Helper()

	var last *tradedeskv1.TradeCommand
	require.Eventually(t, func() bool {
		resp, err := grpcClient.GetCommand(ctx, &tradedeskv1.GetCommandRequest{CommandId: commandID})
		if err != nil {
			return false
		}
		last = resp.Command
		return last.Status == want
	}, 10*time.Second, 100*time.Millisecond,
		"command %s never reached %s (last seen: %v)", commandID, want, last)
	return last
}

// confirmCommand delivers a decision for a command awaiting confirmation.
// The decision slot is registered before ParseCommand returns, so a single
// immediate call is reliable.
func confirmCommand(t *testing.T, ctx context.Context, commandID string, approve bool) {
	t.Helper()

	_, err := grpcClient.ConfirmCommand(ctx, &tradedeskv1.ConfirmCommandRequest{
		CommandId: commandID,
		Approve:   approve,
	})
	require.NoError(t, err, "command %s did not accept a decision", commandID)
}

// TestEndToEndFlow tests the complete auto-execution path: a small buy is
// parsed, risk-scored, recorded in the ledger and executed without
// confirmation.
func TestEndToEndFlow(t *testing.T) {
	ctx := getAuthContext()

	// Step A: Parse a small market buy. 0.001 BTC is below the confirmation
	// threshold, so no decision is required.
	parseResp, err := grpcClient.ParseCommand(ctx, &tradedeskv1.ParseCommandRequest{
		Text: "Buy 0.001 BTC at market price",
	})
	require.NoError(t, err, "ParseCommand should succeed")
	require.True(t, parseResp.Matched, "trading utterance should match")
	require.NotNil(t, parseResp.Command)

	cmd := parseResp.Command
	assert.Equal(t, tradedeskv1.Action_ACTION_BUY, cmd.Action)
	assert.Equal(t, "BTC", cmd.Asset)
	assert.False(t, cmd.ConfirmationRequired)
	assert.NotEmpty(t, cmd.Id)

	amount, err := decimal.NewFromString(cmd.Amount)
	require.NoError(t, err, "Amount should be a valid decimal")
	assert.True(t, amount.Equal(decimal.NewFromFloat(0.001)))

	// Step B: The command settles to EXECUTED without any confirmation call.
	executed := waitForStatus(t, ctx, cmd.Id, tradedeskv1.CommandStatus_COMMAND_STATUS_EXECUTED)
	assert.NotNil(t, executed.ExecutedAt, "executed_at should be stamped")

	// Step C: Verify the audit row landed in the ledger with the final status.
	var storedStatus, storedText string
	query := `SELECT status, original_text FROM trade_commands WHERE id = $1`
	err = db.QueryRowContext(ctx, query, cmd.Id).Scan(&storedStatus, &storedText)
	require.NoError(t, err, "Should be able to query the trade_commands row")
	assert.Equal(t, "EXECUTED", storedStatus)
	assert.Equal(t, "Buy 0.001 BTC at market price", storedText)

	// Step D: The command appears in history, newest first.
	historyResp, err := grpcClient.ListHistory(ctx, &tradedeskv1.ListHistoryRequest{Limit: 10})
	require.NoError(t, err, "ListHistory should succeed")
	require.NotEmpty(t, historyResp.Commands)
	assert.Equal(t, cmd.Id, historyResp.Commands[0].Id, "most recent command should be first")
}

// TestConfirmationFlow tests the confirm/decline decision path for a sell,
// which always requires confirmation.
func TestConfirmationFlow(t *testing.T) {
	ctx := getAuthContext()

	t.Run("ApprovedSellExecutes", func(t *testing.T) {
		parseResp, err := grpcClient.ParseCommand(ctx, &tradedeskv1.ParseCommandRequest{
			Text: "Sell 50% of my ETH holdings",
		})
		require.NoError(t, err, "ParseCommand should succeed")
		require.True(t, parseResp.Matched)

		cmd := parseResp.Command
		assert.Equal(t, tradedeskv1.Action_ACTION_SELL, cmd.Action)
		assert.True(t, cmd.ConfirmationRequired, "sells always require confirmation")
		assert.Equal(t, tradedeskv1.CommandStatus_COMMAND_STATUS_PENDING, cmd.Status)

		pct, err := decimal.NewFromString(cmd.Percentage)
		require.NoError(t, err)
		assert.True(t, pct.Equal(decimal.NewFromInt(50)))

		confirmCommand(t, ctx, cmd.Id, true)

		waitForStatus(t, ctx, cmd.Id, tradedeskv1.CommandStatus_COMMAND_STATUS_EXECUTED)
	})

	t.Run("DeclinedSellCancels", func(t *testing.T) {
		parseResp, err := grpcClient.ParseCommand(ctx, &tradedeskv1.ParseCommandRequest{
			Text: "Sell 25% of my ETH holdings",
		})
		require.NoError(t, err)
		require.True(t, parseResp.Matched)

		confirmCommand(t, ctx, parseResp.Command.Id, false)

		waitForStatus(t, ctx, parseResp.Command.Id, tradedeskv1.CommandStatus_COMMAND_STATUS_CANCELLED)
	})
}

// TestCancelFlow tests direct cancellation of a pending command.
func TestCancelFlow(t *testing.T) {
	ctx := getAuthContext()

	parseResp, err := grpcClient.ParseCommand(ctx, &tradedeskv1.ParseCommandRequest{
		Text: "Sell 10% of my ETH holdings",
	})
	require.NoError(t, err)
	require.True(t, parseResp.Matched)
	require.True(t, parseResp.Command.ConfirmationRequired)

	cancelResp, err := grpcClient.CancelCommand(ctx, &tradedeskv1.CancelCommandRequest{
		CommandId: parseResp.Command.Id,
	})
	require.NoError(t, err, "CancelCommand should succeed on a pending command")
	assert.Equal(t, tradedeskv1.CommandStatus_COMMAND_STATUS_CANCELLED, cancelResp.Command.Status)

	// Cancellation is terminal: cancelling again is rejected.
	_, err = grpcClient.CancelCommand(ctx, &tradedeskv1.CancelCommandRequest{
		CommandId: parseResp.Command.Id,
	})
	require.Error(t, err, "cancelling a settled command should fail")
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))
}

// TestNegativeScenarios tests error handling for invalid inputs
func TestNegativeScenarios(t *testing.T) {
	ctx := getAuthContext()

	// 1. Non-trading utterance: not an error, matched = false
	t.Run("NonTradingUtterance", func(t *testing.T) {
		parseResp, err := grpcClient.ParseCommand(ctx, &tradedeskv1.ParseCommandRequest{
			Text: "What's the weather like today",
		})
		require.NoError(t, err, "non-trading input is not an RPC error")
		assert.False(t, parseResp.Matched)
		assert.Nil(t, parseResp.Command)
	})

	// 2. Empty text
	t.Run("EmptyText", func(t *testing.T) {
		_, err := grpcClient.ParseCommand(ctx, &tradedeskv1.ParseCommandRequest{Text: ""})
		require.Error(t, err, "ParseCommand with empty text should return an error")
		assert.Equal(t, codes.InvalidArgument, status.Code(err), "Error code should be InvalidArgument")
	})

	// 3. Malformed UUID
	t.Run("MalformedUUID", func(t *testing.T) {
		_, err := grpcClient.GetCommand(ctx, &tradedeskv1.GetCommandRequest{CommandId: "not-a-uuid"})
		require.Error(t, err, "GetCommand with malformed UUID should return an error")
		assert.Equal(t, codes.InvalidArgument, status.Code(err), "Error code should be InvalidArgument")
	})

	// 4. Unknown command ID
	t.Run("UnknownCommand", func(t *testing.T) {
		_, err := grpcClient.GetCommand(ctx, &tradedeskv1.GetCommandRequest{CommandId: uuid.New().String()})
		require.Error(t, err, "GetCommand with unknown ID should return an error")
		assert.Equal(t, codes.NotFound, status.Code(err), "Error code should be NotFound")
	})

	// 5. Confirming a command nobody is waiting on
	t.Run("ConfirmWithoutPendingWait", func(t *testing.T) {
		_, err := grpcClient.ConfirmCommand(ctx, &tradedeskv1.ConfirmCommandRequest{
			CommandId: uuid.New().String(),
			Approve:   true,
		})
		require.Error(t, err, "ConfirmCommand without an awaiting command should fail")
		assert.Equal(t, codes.FailedPrecondition, status.Code(err))
	})
}

// TestRiskAnnotations verifies the risk scoring fields surfaced on the wire.
func TestRiskAnnotations(t *testing.T) {
	ctx := getAuthContext()

	parseResp, err := grpcClient.ParseCommand(ctx, &tradedeskv1.ParseCommandRequest{
		Text: "Sell 100% of my ETH holdings",
	})
	require.NoError(t, err)
	require.True(t, parseResp.Matched)

	cmd := parseResp.Command

	// A full liquidation carries two risk factors and must classify HIGH.
	assert.Equal(t, tradedeskv1.RiskLevel_RISK_LEVEL_HIGH, cmd.RiskLevel)
	assert.True(t, cmd.ConfirmationRequired)
	assert.GreaterOrEqual(t, cmd.Confidence, int32(70))
	assert.LessOrEqual(t, cmd.Confidence, int32(95))

	cost, err := decimal.NewFromString(cmd.EstimatedCost)
	require.NoError(t, err, "estimated cost should be a valid decimal")
	assert.True(t, cost.GreaterThanOrEqual(decimal.Zero))

	// Decline to leave no pending state behind for later tests.
	confirmCommand(t, ctx, cmd.Id, false)
	waitForStatus(t, ctx, cmd.Id, tradedeskv1.CommandStatus_COMMAND_STATUS_CANCELLED)
}
