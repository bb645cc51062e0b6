package lifecycle

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bantaydagat/bantay-dagat-api/databases"
	"github.com/bantaydagat/bantay-dagat-api/models"
)

// memStore is an in-memory ReportStore with per-operation failure hooks
type memStore struct {
	mu         sync.Mutex
	partitions map[models.Partition]map[primitive.ObjectID]models.Report

	insertErr error
	deleteErr error
	findErr   error
}

func newMemStore() *memStore {
	m := &memStore{partitions: map[models.Partition]map[primitive.ObjectID]models.Report{}}
	for _, p := range models.Partitions {
		m.partitions[p] = map[primitive.ObjectID]models.Report{}
	}
	return m
}

func (m *memStore) put(p models.Partition, r models.Report) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.partitions[p][r.ID] = r
}

func (m *memStore) has(p models.Partition, id primitive.ObjectID) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.partitions[p][id]
	return ok
}

func (m *memStore) get(p models.Partition, id primitive.ObjectID) models.Report {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.partitions[p][id]
}

func (m *memStore) Insert(ctx context.Context, p models.Partition, r models.Report) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.insertErr != nil {
		return m.insertErr
	}
	if _, ok := m.partitions[p][r.ID]; ok {
		return errors.New("duplicate key")
	}
	m.partitions[p][r.ID] = r
	return nil
}

func (m *memStore) InsertIfAbsent(ctx context.Context, p models.Partition, r models.Report) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.insertErr != nil {
		return false, m.insertErr
	}
	if _, ok := m.partitions[p][r.ID]; ok {
		return false, nil
	}
	m.partitions[p][r.ID] = r
	return true, nil
}

func (m *memStore) FindByID(ctx context.Context, p models.Partition, id primitive.ObjectID) (*models.Report, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.findErr != nil {
		return nil, m.findErr
	}
	r, ok := m.partitions[p][id]
	if !ok {
		return nil, databases.ErrNotFound
	}
	return &r, nil
}

func (m *memStore) UpdateStatus(ctx context.Context, p models.Partition, id primitive.ObjectID, status string, at time.Time) (*models.Report, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.partitions[p][id]
	if !ok {
		return nil, databases.ErrNotFound
	}
	r.Status = status
	r.StatusUpdatedAt = &at
	m.partitions[p][id] = r
	return &r, nil
}

func (m *memStore) Delete(ctx context.Context, p models.Partition, id primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.deleteErr != nil {
		return m.deleteErr
	}
	delete(m.partitions[p], id)
	return nil
}

func (m *memStore) List(ctx context.Context, p models.Partition, filter models.ReportFilter) ([]models.Report, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	reports := []models.Report{}
	for _, r := range m.partitions[p] {
		if filter.ResponderType != "" && r.ResponderType != filter.ResponderType {
			continue
		}
		reports = append(reports, r)
	}
	sort.Slice(reports, func(i, j int) bool {
		return reports[i].DateReported.After(reports[j].DateReported)
	})
	return reports, nil
}

// memSink records notifications
type memSink struct {
	mu            sync.Mutex
	notifications []models.Notification
	err           error
}

func (s *memSink) Create(ctx context.Context, n models.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.notifications = append(s.notifications, n)
	return nil
}

func (s *memSink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.notifications)
}
