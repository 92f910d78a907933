// Package clickhouse persists analysis runs, segment assignments, and segment
// profiles. Columnar storage suits the append-only, scan-heavy access pattern
// of repeated batch runs.
package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AnalysisRun records one execution of the pipeline.
type AnalysisRun struct {
	ID        uuid.UUID `ch:"id"`
	Dataset   string    `ch:"dataset"`
	K         int32     `ch:"k"`
	Seed      int64     `ch:"seed"`
	CreatedAt time.Time `ch:"created_at"`
}

// Assignment is one record's segment label within a run. Predicted marks
// classifier output rather than a clustering assignment.
type Assignment struct {
	RunID     uuid.UUID `ch:"run_id"`
	RecordKey string    `ch:"record_key"`
	Segment   int32     `ch:"segment"`
	Predicted bool      `ch:"predicted"`
}

// ProfileRow is one segment's profitability within a run.
type ProfileRow struct {
	RunID      uuid.UUID       `ch:"run_id"`
	Segment    int32           `ch:"segment"`
	Customers  int32           `ch:"customers"`
	AvgRevenue decimal.Decimal `ch:"avg_revenue"`
}

// Config holds ClickHouse connection configuration.
type Config struct {
	Host     string
	Port     int
	Database string
	Username string
	Password string
	Debug    bool
}

// DefaultConfig returns default development configuration.
func DefaultConfig() *Config {
	return &Config{
		Host:     "localhost",
		Port:     9000,
		Database: "segmentiq",
		Username: "default",
		Password: "",
		Debug:    false,
	}
}

// Store persists analysis results in ClickHouse.
type Store struct {
	conn clickhouse.Conn
	cfg  *Config
}

// NewStore connects to ClickHouse over the native protocol.
func NewStore(cfg *Config) (*Store, error) {
	conn, err := clickhouse.Open(&clickhouse.Options{
		Addr: []string{fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)},
		Auth: clickhouse.Auth{
			Database: cfg.Database,
			Username: cfg.Username,
			Password: cfg.Password,
		},
		Debug: cfg.Debug,
		Settings: clickhouse.Settings{
			"max_execution_time": 60,
		},
		Compression: &clickhouse.Compression{
			Method: clickhouse.CompressionLZ4,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to ClickHouse: %w", err)
	}
	return &Store{conn: conn, cfg: cfg}, nil
}

// Ping checks database connectivity.
func (s *Store) Ping(ctx context.Context) error {
	return s.conn.Ping(ctx)
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.conn.Close()
}

// EnsureSchema creates the result tables if they do not exist.
func (s *Store) EnsureSchema(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS analysis_runs (
			id UUID,
			dataset String,
			k Int32,
			seed Int64,
			created_at DateTime
		) ENGINE = MergeTree() ORDER BY (created_at, id)`,
		`CREATE TABLE IF NOT EXISTS segment_assignments (
			run_id UUID,
			record_key String,
			segment Int32,
			predicted UInt8
		) ENGINE = MergeTree() ORDER BY (run_id, record_key)`,
		`CREATE TABLE IF NOT EXISTS segment_profiles (
			run_id UUID,
			segment Int32,
			customers Int32,
			avg_revenue Decimal(18, 4)
		) ENGINE = MergeTree() ORDER BY (run_id, segment)`,
	}
	for _, stmt := range stmts {
		if err := s.conn.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}

// SaveRun inserts an analysis run header.
func (s *Store) SaveRun(ctx context.Context, run *AnalysisRun) error {
	query := `
		INSERT INTO analysis_runs (id, dataset, k, seed, created_at)
		VALUES (?, ?, ?, ?, ?)
	`
	return s.conn.Exec(ctx, query,
		run.ID,
		run.Dataset,
		run.K,
		run.Seed,
		run.CreatedAt,
	)
}

// SaveAssignments batch-inserts segment assignments for a run.
func (s *Store) SaveAssignments(ctx context.Context, assignments []Assignment) error {
	if len(assignments) == 0 {
		return nil
	}
	batch, err := s.conn.PrepareBatch(ctx,
		"INSERT INTO segment_assignments (run_id, record_key, segment, predicted)")
	if err != nil {
		return fmt.Errorf("failed to prepare assignment batch: %w", err)
	}
	for _, a := range assignments {
		if err := batch.Append(a.RunID, a.RecordKey, a.Segment, boolToUInt8(a.Predicted)); err != nil {
			return fmt.Errorf("failed to append assignment: %w", err)
		}
	}
	return batch.Send()
}

// SaveProfiles batch-inserts segment profitability rows for a run.
func (s *Store) SaveProfiles(ctx context.Context, profiles []ProfileRow) error {
	if len(profiles) == 0 {
		return nil
	}
	batch, err := s.conn.PrepareBatch(ctx,
		"INSERT INTO segment_profiles (run_id, segment, customers, avg_revenue)")
	if err != nil {
		return fmt.Errorf("failed to prepare profile batch: %w", err)
	}
	for _, p := range profiles {
		if err := batch.Append(p.RunID, p.Segment, p.Customers, p.AvgRevenue); err != nil {
			return fmt.Errorf("failed to append profile: %w", err)
		}
	}
	return batch.Send()
}

// GetProfiles retrieves the stored profitability rows of a run.
func (s *Store) GetProfiles(ctx context.Context, runID uuid.UUID) ([]ProfileRow, error) {
	query := `
		SELECT run_id, segment, customers, avg_revenue
		FROM segment_profiles
		WHERE run_id = ?
		ORDER BY segment
	`
	rows, err := s.conn.Query(ctx, query, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query profiles: %w", err)
	}
	defer rows.Close()

	var out []ProfileRow
	for rows.Next() {
		var p ProfileRow
		if err := rows.Scan(&p.RunID, &p.Segment, &p.Customers, &p.AvgRevenue); err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func boolToUInt8(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
