package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// PostgresStore persists records in the applications table. Entity
// sections are TEXT columns holding JSON documents; NULL decodes to an
// empty object on read.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Migrate creates the applications table when it does not exist yet.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	const ddl = `
		CREATE TABLE IF NOT EXISTS applications (
			id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
			primary_driver TEXT,
			mailing_address TEXT,
			garaging_address TEXT,
			vehicles TEXT,
			additional_drivers TEXT,
			completed BOOLEAN NOT NULL DEFAULT FALSE,
			quote DOUBLE PRECISION
		)
	`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("migrate applications table: %w", err)
	}
	return nil
}

func (s *PostgresStore) Create(ctx context.Context, data Data) (Record, error) {
	const query = `
		INSERT INTO applications (primary_driver, mailing_address, garaging_address, vehicles, additional_drivers)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	var id int64
	err := s.db.QueryRowContext(ctx, query,
		nullableText(data.PrimaryDriver),
		nullableText(data.MailingAddress),
		nullableText(data.GaragingAddress),
		nullableText(data.Vehicles),
		nullableText(data.AdditionalDrivers),
	).Scan(&id)
	if err != nil {
		return Record{}, fmt.Errorf("insert application: %w", err)
	}
	return Record{ID: id, Data: data}, nil
}

func (s *PostgresStore) FindByID(ctx context.Context, id int64) (Record, error) {
	const query = `
		SELECT id, primary_driver, mailing_address, garaging_address, vehicles, additional_drivers, completed, quote
		FROM applications
		WHERE id = $1
	`
	var (
		record Record
		pd, ma, ga, ve, ad sql.NullString
		quote  sql.NullFloat64
	)
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&record.ID, &pd, &ma, &ga, &ve, &ad, &record.Completed, &quote,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, ErrNotFound
	}
	if err != nil {
		return Record{}, fmt.Errorf("select application: %w", err)
	}
	record.Data = Data{
		PrimaryDriver:     textBytes(pd),
		MailingAddress:    textBytes(ma),
		GaragingAddress:   textBytes(ga),
		Vehicles:          textBytes(ve),
		AdditionalDrivers: textBytes(ad),
	}
	if quote.Valid {
		record.Quote = &quote.Float64
	}
	return record, nil
}

func (s *PostgresStore) UpdateData(ctx context.Context, id int64, data Data) error {
	const query = `
		UPDATE applications
		SET primary_driver = $2, mailing_address = $3, garaging_address = $4, vehicles = $5, additional_drivers = $6
		WHERE id = $1
	`
	result, err := s.db.ExecContext(ctx, query, id,
		nullableText(data.PrimaryDriver),
		nullableText(data.MailingAddress),
		nullableText(data.GaragingAddress),
		nullableText(data.Vehicles),
		nullableText(data.AdditionalDrivers),
	)
	if err != nil {
		return fmt.Errorf("update application data: %w", err)
	}
	return ensureRowAffected(result)
}

func (s *PostgresStore) Complete(ctx context.Context, id int64, quote float64) error {
	const query = `
		UPDATE applications
		SET completed = TRUE, quote = $2
		WHERE id = $1
	`
	result, err := s.db.ExecContext(ctx, query, id, quote)
	if err != nil {
		return fmt.Errorf("complete application: %w", err)
	}
	return ensureRowAffected(result)
}

func ensureRowAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func nullableText(b []byte) sql.NullString {
	if len(b) == 0 {
		return sql.NullString{}
	}
	return sql.NullString{String: string(b), Valid: true}
}

func textBytes(ns sql.NullString) []byte {
	if !ns.Valid {
		return nil
	}
	return []byte(ns.String)
}
