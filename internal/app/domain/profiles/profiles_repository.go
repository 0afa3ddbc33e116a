package profiles

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"github.com/felixashong/campus-navigate/internal/app/models"
	"github.com/felixashong/campus-navigate/internal/app/observability/metrics"
)

var _ Repository = (*PostgresRepository)(nil)

// Repository persists whole profile snapshots keyed by application id.
type Repository interface {
	// GetSnapshot returns the stored snapshot, or (nil, nil) when no row
	// exists for the app id.
	GetSnapshot(ctx context.Context, appID string) (*models.ProfileSnapshot, error)
	// SaveSnapshot replaces the stored snapshot as one unit.
	SaveSnapshot(ctx context.Context, appID string, snap models.ProfileSnapshot) error
}

// Querier is the subset of pgxpool.Pool the repository needs. pgxmock
// satisfies it too.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// observeQuery records the duration of one database round trip.
func observeQuery(ctx context.Context, query string, start time.Time) {
	if m := metrics.Get(); m != nil {
		m.DBQueryDurationSeconds.Record(ctx, time.Since(start).Seconds(),
			metric.WithAttributes(attribute.String("query", query)))
	}
}

type PostgresRepository struct {
	db     Querier
	logger *zap.Logger
}

func NewPostgresRepository(db Querier, logger *zap.Logger) *PostgresRepository {
	return &PostgresRepository{
		db:     db,
		logger: logger,
	}
}

func (r *PostgresRepository) GetSnapshot(ctx context.Context, appID string) (*models.ProfileSnapshot, error) {
	query, args, err := psql.
		Select("snapshot").
		From("profile_snapshots").
		Where(sq.Eq{"app_id": appID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build snapshot query: %w", err)
	}

	defer observeQuery(ctx, "get_snapshot", time.Now())

	var raw []byte
	if err := r.db.QueryRow(ctx, query, args...).Scan(&raw); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read profile snapshot: %w", err)
	}

	var snap models.ProfileSnapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("failed to decode profile snapshot: %w", err)
	}
	return &snap, nil
}

func (r *PostgresRepository) SaveSnapshot(ctx context.Context, appID string, snap models.ProfileSnapshot) error {
	payload, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode profile snapshot: %w", err)
	}

	query, args, err := psql.
		Insert("profile_snapshots").
		Columns("app_id", "snapshot", "updated_at").
		Values(appID, payload, time.Now().UTC()).
		Suffix("ON CONFLICT (app_id) DO UPDATE SET snapshot = EXCLUDED.snapshot, updated_at = EXCLUDED.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build snapshot upsert: %w", err)
	}

	defer observeQuery(ctx, "save_snapshot", time.Now())

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to write profile snapshot: %w", err)
	}

	r.logger.Debug("Profile snapshot written", zap.String("app_id", appID), zap.Int("bytes", len(payload)))
	return nil
}
