package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const (
	recordKeyPrefix = "application:"
	sequenceKey     = "application:next_id"
)

// RedisStore keeps each record as a JSON document under application:{id}
// and assigns ids from an INCR sequence.
type RedisStore struct {
	client *redis.Client
}

func NewRedis(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

type redisRecord struct {
	ID                int64           `json:"id"`
	PrimaryDriver     json.RawMessage `json:"primaryDriver,omitempty"`
	MailingAddress    json.RawMessage `json:"mailingAddress,omitempty"`
	GaragingAddress   json.RawMessage `json:"garagingAddress,omitempty"`
	Vehicles          json.RawMessage `json:"vehicles,omitempty"`
	AdditionalDrivers json.RawMessage `json:"additionalDrivers,omitempty"`
	Completed         bool            `json:"completed"`
	Quote             *float64        `json:"quote,omitempty"`
}

func (s *RedisStore) Create(ctx context.Context, data Data) (Record, error) {
	id, err := s.client.Incr(ctx, sequenceKey).Result()
	if err != nil {
		return Record{}, fmt.Errorf("next application id: %w", err)
	}
	record := Record{ID: id, Data: data}
	if err := s.save(ctx, record); err != nil {
		return Record{}, err
	}
	return record, nil
}

func (s *RedisStore) FindByID(ctx context.Context, id int64) (Record, error) {
	raw, err := s.client.Get(ctx, recordKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Record{}, ErrNotFound
	}
	if err != nil {
		return Record{}, fmt.Errorf("get application: %w", err)
	}
	var doc redisRecord
	if err := json.Unmarshal(raw, &doc); err != nil {
		return Record{}, fmt.Errorf("decode application record: %w", err)
	}
	return Record{
		ID: doc.ID,
		Data: Data{
			PrimaryDriver:     doc.PrimaryDriver,
			MailingAddress:    doc.MailingAddress,
			GaragingAddress:   doc.GaragingAddress,
			Vehicles:          doc.Vehicles,
			AdditionalDrivers: doc.AdditionalDrivers,
		},
		Completed: doc.Completed,
		Quote:     doc.Quote,
	}, nil
}

func (s *RedisStore) UpdateData(ctx context.Context, id int64, data Data) error {
	record, err := s.FindByID(ctx, id)
	if err != nil {
		return err
	}
	record.Data = data
	return s.save(ctx, record)
}

func (s *RedisStore) Complete(ctx context.Context, id int64, quote float64) error {
	record, err := s.FindByID(ctx, id)
	if err != nil {
		return err
	}
	record.Completed = true
	record.Quote = &quote
	return s.save(ctx, record)
}

func (s *RedisStore) save(ctx context.Context, record Record) error {
	doc := redisRecord{
		ID:                record.ID,
		PrimaryDriver:     record.Data.PrimaryDriver,
		MailingAddress:    record.Data.MailingAddress,
		GaragingAddress:   record.Data.GaragingAddress,
		Vehicles:          record.Data.Vehicles,
		AdditionalDrivers: record.Data.AdditionalDrivers,
		Completed:         record.Completed,
		Quote:             record.Quote,
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode application record: %w", err)
	}
	if err := s.client.Set(ctx, recordKey(record.ID), raw, 0).Err(); err != nil {
		return fmt.Errorf("set application: %w", err)
	}
	return nil
}

func recordKey(id int64) string {
	return fmt.Sprintf("%s%d", recordKeyPrefix, id)
}
