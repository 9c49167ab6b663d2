package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ruimtorres/tradedesk-backend/internal/domain"
)

// commandRepository implements domain.CommandRepository on Postgres.
// This is the unbounded audit side of the ledger: rows are inserted once and
// afterwards only status and executed_at are replaced by ID.
type commandRepository struct {
	db *DB
}

// NewCommandRepository creates a new command repository
func NewCommandRepository(db *DB) domain.CommandRepository {
	return &commandRepository{db: db}
}

const commandColumns = `
	id, original_text, action, asset, amount, price, percentage, conditions,
	confidence, estimated_cost, market_impact, risk_level,
	confirmation_required, status, created_at, executed_at
`

// Create appends a new command to the audit ledger
func (r *commandRepository) Create(ctx context.Context, cmd *domain.TradeCommand) error {
	query := `
		INSERT INTO trade_commands (` + commandColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`

	_, err := r.db.ExecContext(ctx, query,
		cmd.ID,
		cmd.OriginalText,
		string(cmd.Intent.Action),
		cmd.Intent.Asset,
		decimalToNullString(cmd.Intent.Amount),
		decimalToNullString(cmd.Intent.Price),
		decimalToNullString(cmd.Intent.Percentage),
		conditionsToString(cmd.Intent.Conditions),
		cmd.Confidence,
		cmd.EstimatedCost.String(),
		cmd.MarketImpact.String(),
		string(cmd.RiskLevel),
		cmd.ConfirmationRequired,
		string(cmd.Status),
		cmd.CreatedAt,
		nullTime(cmd.ExecutedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to insert trade command: %w", err)
	}
	return nil
}

// UpdateStatus replaces status and executed_at for the command with the given ID
func (r *commandRepository) UpdateStatus(ctx context.Context, id uuid.UUID, cmd *domain.TradeCommand) error {
	query := `
		UPDATE trade_commands
		SET status = $2, executed_at = $3
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query, id, string(cmd.Status), nullTime(cmd.ExecutedAt))
	if err != nil {
		return fmt.Errorf("failed to update trade command status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if rows == 0 {
		return domain.ErrCommandNotFound
	}
	return nil
}

// GetByID retrieves a command by its ID
func (r *commandRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.TradeCommand, error) {
	query := `
		SELECT ` + commandColumns + `
		FROM trade_commands
		WHERE id = $1
	`

	cmd, err := scanCommand(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, domain.ErrCommandNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get trade command: %w", err)
	}
	return cmd, nil
}

// ListRecent retrieves the most recent commands, newest first
func (r *commandRepository) ListRecent(ctx context.Context, limit int) ([]*domain.TradeCommand, error) {
	query := `
		SELECT ` + commandColumns + `
		FROM trade_commands
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list trade commands: %w", err)
	}
	defer rows.Close()

	var commands []*domain.TradeCommand
	for rows.Next() {
		cmd, err := scanCommand(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan trade command: %w", err)
		}
		commands = append(commands, cmd)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate trade commands: %w", err)
	}
	return commands, nil
}

// rowScanner abstracts *sql.Row and *sql.Rows for scanCommand
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanCommand maps a trade_commands row back to the domain type
func scanCommand(row rowScanner) (*domain.TradeCommand, error) {
	var (
		cmd        domain.TradeCommand
		action     string
		amount     sql.NullString
		price      sql.NullString
		percentage sql.NullString
		conditions string
		cost       string
		impact     string
		riskLevel  string
		status     string
		executedAt sql.NullTime
	)

	if err := row.Scan(
		&cmd.ID,
		&cmd.OriginalText,
		&action,
		&cmd.Intent.Asset,
		&amount,
		&price,
		&percentage,
		&conditions,
		&cmd.Confidence,
		&cost,
		&impact,
		&riskLevel,
		&cmd.ConfirmationRequired,
		&status,
		&cmd.CreatedAt,
		&executedAt,
	); err != nil {
		return nil, err
	}

	cmd.Intent.Action = domain.Action(action)
	cmd.RiskLevel = domain.RiskLevel(riskLevel)
	cmd.Status = domain.CommandStatus(status)

	var err error
	if cmd.Intent.Amount, err = nullStringToDecimal(amount); err != nil {
		return nil, fmt.Errorf("invalid amount column: %w", err)
	}
	if cmd.Intent.Price, err = nullStringToDecimal(price); err != nil {
		return nil, fmt.Errorf("invalid price column: %w", err)
	}
	if cmd.Intent.Percentage, err = nullStringToDecimal(percentage); err != nil {
		return nil, fmt.Errorf("invalid percentage column: %w", err)
	}
	if cmd.EstimatedCost, err = decimal.NewFromString(cost); err != nil {
		return nil, fmt.Errorf("invalid estimated_cost column: %w", err)
	}
	if cmd.MarketImpact, err = decimal.NewFromString(impact); err != nil {
		return nil, fmt.Errorf("invalid market_impact column: %w", err)
	}

	cmd.Intent.Conditions = stringToConditions(conditions)
	if executedAt.Valid {
		t := executedAt.Time
		cmd.ExecutedAt = &t
	}
	return &cmd, nil
}

func decimalToNullString(d *decimal.Decimal) sql.NullString {
	if d == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: d.String(), Valid: true}
}

func nullStringToDecimal(s sql.NullString) (*decimal.Decimal, error) {
	if !s.Valid {
		return nil, nil
	}
	d, err := decimal.NewFromString(s.String)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

// conditionsToString serializes condition tags as a comma-separated list
func conditionsToString(conditions []domain.Condition) string {
	parts := make([]string, len(conditions))
	for i, c := range conditions {
		parts[i] = string(c)
	}
	return strings.Join(parts, ",")
}

// stringToConditions deserializes a comma-separated condition list
func stringToConditions(s string) []domain.Condition {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	conditions := make([]domain.Condition, len(parts))
	for i, p := range parts {
		conditions[i] = domain.Condition(p)
	}
	return conditions
}
