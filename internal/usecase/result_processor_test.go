package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"NewsFuse/internal/domain/models"
)

type fakePublisher struct {
	published int
	batches   int
	err       error
	closed    bool
}

func (p *fakePublisher) Publish(context.Context, *models.SymbolAnalysisResult) error {
	p.published++
	return p.err
}

func (p *fakePublisher) PublishBatch(_ context.Context, rs []*models.SymbolAnalysisResult) error {
	p.batches++
	return p.err
}

func (p *fakePublisher) Close() error {
	p.closed = true
	return nil
}

type fakeStore struct {
	stored int
}

func (s *fakeStore) Init(context.Context) error { return nil }

func (s *fakeStore) Store(context.Context, *models.SymbolAnalysisResult) error {
	s.stored++
	return nil
}

func (s *fakeStore) StoreBatch(_ context.Context, rs []*models.SymbolAnalysisResult) error {
	s.stored += len(rs)
	return nil
}

func (s *fakeStore) Query(context.Context, string, time.Time, time.Time, int) ([]*models.StoredPrediction, error) {
	return nil, nil
}

func (s *fakeStore) Health(context.Context) error { return nil }
func (s *fakeStore) Close() error                 { return nil }

type fakeMetrics struct {
	errorKinds []string
}

func (m *fakeMetrics) RecordProviderError(string, string) {}
func (m *fakeMetrics) RecordAgreement(string)             {}
func (m *fakeMetrics) RecordSignal(string, string)        {}
func (m *fakeMetrics) RecordLatency(string, float64)      {}

func (m *fakeMetrics) RecordError(kind string) {
	m.errorKinds = append(m.errorKinds, kind)
}

func sampleResult(symbol string) *models.SymbolAnalysisResult {
	return &models.SymbolAnalysisResult{Symbol: symbol, Timestamp: time.Now()}
}

func TestProcessRoutesToKafka(t *testing.T) {
	pub := &fakePublisher{}
	store := &fakeStore{}
	p := NewResultProcessor(pub, store, &fakeMetrics{}, "kafka")

	if err := p.Process(context.Background(), sampleResult("ACME")); err != nil {
		t.Fatalf("process: %v", err)
	}
	if pub.published != 1 || store.stored != 0 {
		t.Fatalf("expected kafka route, pub=%d store=%d", pub.published, store.stored)
	}
}

func TestProcessRoutesToClickHouse(t *testing.T) {
	pub := &fakePublisher{}
	store := &fakeStore{}
	p := NewResultProcessor(pub, store, &fakeMetrics{}, "clickhouse")

	if err := p.Process(context.Background(), sampleResult("ACME")); err != nil {
		t.Fatalf("process: %v", err)
	}
	if store.stored != 1 || pub.published != 0 {
		t.Fatalf("expected clickhouse route, pub=%d store=%d", pub.published, store.stored)
	}
}

func TestProcessUnknownBackend(t *testing.T) {
	m := &fakeMetrics{}
	p := NewResultProcessor(&fakePublisher{}, &fakeStore{}, m, "postgres")

	if err := p.Process(context.Background(), sampleResult("ACME")); err == nil {
		t.Fatalf("expected error for unknown backend")
	}
	if len(m.errorKinds) != 1 || m.errorKinds[0] != "persist" {
		t.Fatalf("persist failure must be counted, got %v", m.errorKinds)
	}
}

func TestProcessBatchEmptyIsNoop(t *testing.T) {
	pub := &fakePublisher{}
	p := NewResultProcessor(pub, nil, &fakeMetrics{}, "kafka")

	if err := p.ProcessBatch(context.Background(), nil); err != nil {
		t.Fatalf("empty batch must be a no-op, got %v", err)
	}
	if pub.batches != 0 {
		t.Fatalf("no publish expected for empty batch")
	}
}

func TestProcessWrapsBackendError(t *testing.T) {
	pub := &fakePublisher{err: errors.New("broker down")}
	p := NewResultProcessor(pub, nil, &fakeMetrics{}, "kafka")

	err := p.Process(context.Background(), sampleResult("ACME"))
	if err == nil || !errors.Is(err, pub.err) {
		t.Fatalf("backend error must be wrapped, got %v", err)
	}
}

func TestProcessorClose(t *testing.T) {
	pub := &fakePublisher{}
	p := NewResultProcessor(pub, &fakeStore{}, &fakeMetrics{}, "kafka")
	p.Close()
	if !pub.closed {
		t.Fatalf("close must reach the publisher")
	}
}
