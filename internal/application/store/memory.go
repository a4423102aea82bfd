package store

import (
	"context"
	"sync"
)

// InMemoryStore keeps records in a map. It is the default for local
// development and the workhorse of the unit tests.
type InMemoryStore struct {
	mu      sync.RWMutex
	nextID  int64
	records map[int64]Record
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{nextID: 1, records: make(map[int64]Record)}
}

func (s *InMemoryStore) Create(_ context.Context, data Data) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	record := Record{ID: s.nextID, Data: cloneData(data)}
	s.nextID++
	s.records[record.ID] = record
	return record, nil
}

func (s *InMemoryStore) FindByID(_ context.Context, id int64) (Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.records[id]
	if !ok {
		return Record{}, ErrNotFound
	}
	record.Data = cloneData(record.Data)
	return record, nil
}

func (s *InMemoryStore) UpdateData(_ context.Context, id int64, data Data) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	record, ok := s.records[id]
	if !ok {
		return ErrNotFound
	}
	record.Data = cloneData(data)
	s.records[id] = record
	return nil
}

func (s *InMemoryStore) Complete(_ context.Context, id int64, quote float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	record, ok := s.records[id]
	if !ok {
		return ErrNotFound
	}
	record.Completed = true
	record.Quote = &quote
	s.records[id] = record
	return nil
}

// cloneData keeps callers from sharing byte slices with the map.
func cloneData(data Data) Data {
	clone := func(b []byte) []byte {
		if b == nil {
			return nil
		}
		out := make([]byte, len(b))
		copy(out, b)
		return out
	}
	return Data{
		PrimaryDriver:     clone(data.PrimaryDriver),
		MailingAddress:    clone(data.MailingAddress),
		GaragingAddress:   clone(data.GaragingAddress),
		Vehicles:          clone(data.Vehicles),
		AdditionalDrivers: clone(data.AdditionalDrivers),
	}
}
