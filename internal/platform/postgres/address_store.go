package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/rayzor/contacts-api/internal/domain"
	"github.com/rayzor/contacts-api/internal/platform/logger"
	"github.com/rayzor/contacts-api/internal/store"
)

// PostgresAddressStore implements the store.AddressStore interface
// using a PostgreSQL database as the storage backend.
type PostgresAddressStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresAddressStore creates a new PostgreSQL implementation of the
// AddressStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresAddressStore(db store.DBTX, logger *slog.Logger) *PostgresAddressStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresAddressStore{
		db:     db,
		logger: logger.With(slog.String("component", "address_store")),
	}
}

// Ensure PostgresAddressStore implements store.AddressStore interface
var _ store.AddressStore = (*PostgresAddressStore)(nil)

// Create implements store.AddressStore.Create
// It inserts the address and fills in the generated ID.
func (s *PostgresAddressStore) Create(ctx context.Context, address *domain.Address) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO addresses (contact_id, street, city, province, country, postal_code)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := s.db.QueryRowContext(
		ctx,
		query,
		address.ContactID,
		nullable(address.Street),
		nullable(address.City),
		nullable(address.Province),
		address.Country,
		address.PostalCode,
	).Scan(&address.ID)

	if err != nil {
		log.Error("failed to create address",
			slog.String("error", err.Error()),
			slog.Int64("contact_id", address.ContactID))
		return err
	}

	log.Debug("address created",
		slog.Int64("address_id", address.ID),
		slog.Int64("contact_id", address.ContactID))
	return nil
}

// GetByIDAndContact implements store.AddressStore.GetByIDAndContact
// Returns store.ErrAddressNotFound when no row matches both id and
// contact, including rows that exist under a different contact.
func (s *PostgresAddressStore) GetByIDAndContact(ctx context.Context, id, contactID int64) (*domain.Address, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, contact_id, street, city, province, country, postal_code
		FROM addresses
		WHERE id = $1 AND contact_id = $2
	`

	var address domain.Address
	var street, city, province sql.NullString

	err := s.db.QueryRowContext(ctx, query, id, contactID).Scan(
		&address.ID,
		&address.ContactID,
		&street,
		&city,
		&province,
		&address.Country,
		&address.PostalCode,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("address not found",
				slog.Int64("address_id", id),
				slog.Int64("contact_id", contactID))
			return nil, store.ErrAddressNotFound
		}
		log.Error("failed to get address",
			slog.String("error", err.Error()),
			slog.Int64("address_id", id),
			slog.Int64("contact_id", contactID))
		return nil, err
	}

	address.Street = street.String
	address.City = city.String
	address.Province = province.String
	return &address, nil
}

// CountByIDAndContact implements store.AddressStore.CountByIDAndContact
func (s *PostgresAddressStore) CountByIDAndContact(ctx context.Context, id, contactID int64) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT COUNT(*)
		FROM addresses
		WHERE id = $1 AND contact_id = $2
	`

	var count int64
	if err := s.db.QueryRowContext(ctx, query, id, contactID).Scan(&count); err != nil {
		log.Error("failed to count addresses",
			slog.String("error", err.Error()),
			slog.Int64("address_id", id),
			slog.Int64("contact_id", contactID))
		return 0, err
	}

	return count, nil
}

// Update implements store.AddressStore.Update
// All five mutable fields are replaced unconditionally.
func (s *PostgresAddressStore) Update(ctx context.Context, address *domain.Address) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE addresses
		SET street = $1, city = $2, province = $3, country = $4, postal_code = $5
		WHERE id = $6
	`

	result, err := s.db.ExecContext(
		ctx,
		query,
		nullable(address.Street),
		nullable(address.City),
		nullable(address.Province),
		address.Country,
		address.PostalCode,
		address.ID,
	)

	if err != nil {
		log.Error("failed to update address",
			slog.String("error", err.Error()),
			slog.Int64("address_id", address.ID))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.Int64("address_id", address.ID))
		return err
	}

	if rowsAffected == 0 {
		log.Debug("address not found for update",
			slog.Int64("address_id", address.ID))
		return store.ErrAddressNotFound
	}

	return nil
}

// Delete implements store.AddressStore.Delete
func (s *PostgresAddressStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		DELETE FROM addresses
		WHERE id = $1
	`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Error("failed to delete address",
			slog.String("error", err.Error()),
			slog.Int64("address_id", id))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.Int64("address_id", id))
		return err
	}

	if rowsAffected == 0 {
		log.Debug("address not found for delete",
			slog.Int64("address_id", id))
		return store.ErrAddressNotFound
	}

	log.Debug("address deleted", slog.Int64("address_id", id))
	return nil
}
