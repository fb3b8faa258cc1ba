package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"NewsFuse/internal/domain/models"
	"NewsFuse/internal/domain/repository"
	pkgkafka "NewsFuse/pkg/kafka"
)

// ClickHousePredictionStore implements PredictionStore for ClickHouse.
type ClickHousePredictionStore struct {
	db    *sql.DB
	table string
}

// NewClickHousePredictionStore creates ClickHouse-backed result storage.
func NewClickHousePredictionStore(db *sql.DB, table string) repository.PredictionStore {
	return &ClickHousePredictionStore{db: db, table: table}
}

func (s *ClickHousePredictionStore) Init(ctx context.Context) error {
	q := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		symbol         String,
		ts             DateTime,
		direction      String,
		action         String,
		strength       String,
		agreement      String,
		confidence_a   Nullable(Float64),
		confidence_b   Nullable(Float64),
		article_count  UInt32,
		error_summary  Nullable(String),
		execution_ms   UInt64
	) ENGINE = MergeTree() ORDER BY (symbol, ts)`, s.table)
	_, err := s.db.ExecContext(ctx, q)
	return err
}

func (s *ClickHousePredictionStore) Store(ctx context.Context, r *models.SymbolAnalysisResult) error {
	q := fmt.Sprintf("INSERT INTO %s (symbol, ts, direction, action, strength, agreement, confidence_a, confidence_b, article_count, error_summary, execution_ms) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)", s.table)
	args, err := rowArgs(r)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, q, args...)
	return err
}

func (s *ClickHousePredictionStore) StoreBatch(ctx context.Context, rs []*models.SymbolAnalysisResult) error {
	if len(rs) == 0 {
		return nil
	}
	// Multi-row VALUES to keep one round-trip per batch.
	values := make([]string, 0, len(rs))
	args := make([]interface{}, 0, len(rs)*11)
	for _, r := range rs {
		if r == nil || r.Symbol == "" {
			continue
		}
		a, err := rowArgs(r)
		if err != nil {
			return err
		}
		values = append(values, "(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)")
		args = append(args, a...)
	}
	if len(values) == 0 {
		return nil
	}
	q := fmt.Sprintf("INSERT INTO %s (symbol, ts, direction, action, strength, agreement, confidence_a, confidence_b, article_count, error_summary, execution_ms) VALUES %s",
		s.table, strings.Join(values, ","))
	_, err := s.db.ExecContext(ctx, q, args...)
	return err
}

func (s *ClickHousePredictionStore) Query(ctx context.Context, symbol string, from, to time.Time, limit int) ([]*models.StoredPrediction, error) {
	q := fmt.Sprintf("SELECT symbol, ts, direction, action, strength, agreement, confidence_a, confidence_b, article_count, execution_ms FROM %s WHERE symbol = ? AND ts >= ? AND ts <= ? ORDER BY ts DESC LIMIT ?", s.table)
	rows, err := s.db.QueryContext(ctx, q, symbol, from, to, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.StoredPrediction
	for rows.Next() {
		var p models.StoredPrediction
		var ts time.Time
		if err := rows.Scan(&p.Symbol, &ts, &p.Direction, &p.Action, &p.Strength, &p.Agreement, &p.ConfidenceA, &p.ConfidenceB, &p.ArticleCount, &p.ExecutionMs); err != nil {
			return nil, err
		}
		p.Timestamp = ts
		out = append(out, &p)
	}
	return out, rows.Err()
}

func (s *ClickHousePredictionStore) Health(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *ClickHousePredictionStore) Close() error {
	return nil // pool is owned by pkg/clickhouse
}

func rowArgs(r *models.SymbolAnalysisResult) ([]interface{}, error) {
	var errJSON interface{}
	if r.ErrorSummary != nil {
		b, err := json.Marshal(r.ErrorSummary)
		if err != nil {
			return nil, fmt.Errorf("marshal error summary: %w", err)
		}
		errJSON = string(b)
	}
	return []interface{}{
		r.Symbol,
		r.Timestamp,
		string(r.Signal.Direction),
		string(r.Signal.Action),
		string(r.Signal.Strength),
		string(r.Comparison.Type),
		floatOrNil(r.Models.A.Confidence),
		floatOrNil(r.Models.B.Confidence),
		uint32(r.ArticleCount),
		errJSON,
		uint64(r.ExecutionTimeMs),
	}, nil
}

func floatOrNil(f *float64) interface{} {
	if f == nil {
		return nil
	}
	return *f
}

// KafkaResultPublisher implements Publisher for Kafka.
type KafkaResultPublisher struct {
	producer *pkgkafka.Producer
	topic    string
}

// NewKafkaResultPublisher creates a Kafka-backed result publisher.
func NewKafkaResultPublisher(producer *pkgkafka.Producer, topic string) repository.Publisher {
	return &KafkaResultPublisher{producer: producer, topic: topic}
}

func (p *KafkaResultPublisher) Publish(ctx context.Context, r *models.SymbolAnalysisResult) error {
	// Keyed by symbol so one symbol's history lands on one partition.
	return p.producer.Publish(ctx, p.topic, []byte(r.Symbol), r)
}

func (p *KafkaResultPublisher) PublishBatch(ctx context.Context, rs []*models.SymbolAnalysisResult) error {
	if len(rs) == 0 {
		return nil
	}
	msgs := make([]pkgkafka.Message, len(rs))
	for i, r := range rs {
		msgs[i] = pkgkafka.Message{
			Key:   []byte(r.Symbol),
			Value: r,
		}
	}
	return p.producer.PublishBatch(ctx, p.topic, msgs)
}

func (p *KafkaResultPublisher) Close() error {
	if p.producer != nil {
		return p.producer.Close()
	}
	return nil
}
