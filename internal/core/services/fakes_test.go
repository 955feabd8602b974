package services

import (
	"context"
	"errors"
	"time"

	"github.com/obruchev/user_intake_service/internal/core/domain"
)

// fakeStore is an in-memory RecordStore counting its calls.
type fakeStore struct {
	records     []domain.Record
	nextID      int64
	insertCalls int
	fetchCalls  int
	insertErr   error
	fetchErr    error
}

func newFakeStore() *fakeStore {
	return &fakeStore{nextID: 1}
}

func (s *fakeStore) Insert(_ context.Context, record *domain.Record) (int64, error) {
	s.insertCalls++
	if s.insertErr != nil {
		return 0, s.insertErr
	}
	record.ID = s.nextID
	s.nextID++
	s.records = append(s.records, *record)
	return record.ID, nil
}

func (s *fakeStore) FetchAll(_ context.Context) ([]domain.Record, error) {
	s.fetchCalls++
	if s.fetchErr != nil {
		return nil, s.fetchErr
	}
	snapshot := make([]domain.Record, len(s.records))
	copy(snapshot, s.records)
	return snapshot, nil
}

func (s *fakeStore) Close() error {
	return nil
}

// fakeCache is an in-memory CachePort.
type fakeCache struct {
	entries map[string][]byte
	deletes int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string][]byte{}}
}

func (c *fakeCache) Get(key string) ([]byte, error) {
	value, ok := c.entries[key]
	if !ok {
		return nil, errors.New("cache miss")
	}
	return value, nil
}

func (c *fakeCache) Set(key string, value []byte, _ time.Duration) error {
	c.entries[key] = value
	return nil
}

func (c *fakeCache) Delete(key string) error {
	c.deletes++
	delete(c.entries, key)
	return nil
}

// fakeProvider returns a canned draft or a canned error.
type fakeProvider struct {
	record *domain.Record
	err    error
}

func (p *fakeProvider) Fetch(_ context.Context) (*domain.Record, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.record, nil
}

// nopLogger satisfies LoggerPort without output.
type nopLogger struct{}

func (nopLogger) Info(string, map[string]interface{}) {}
func (nopLogger) Error(string, map[string]interface{}) {}
func (nopLogger) Debug(string, map[string]interface{}) {}
func (nopLogger) Warn(string, map[string]interface{}) {}
