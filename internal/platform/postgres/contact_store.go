package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/rayzor/contacts-api/internal/domain"
	"github.com/rayzor/contacts-api/internal/platform/logger"
	"github.com/rayzor/contacts-api/internal/store"
)

// PostgresContactStore implements the store.ContactStore interface
// using a PostgreSQL database as the storage backend.
type PostgresContactStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresContactStore creates a new PostgreSQL implementation of the
// ContactStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresContactStore(db store.DBTX, logger *slog.Logger) *PostgresContactStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresContactStore{
		db:     db,
		logger: logger.With(slog.String("component", "contact_store")),
	}
}

// Ensure PostgresContactStore implements store.ContactStore interface
var _ store.ContactStore = (*PostgresContactStore)(nil)

// Create implements store.ContactStore.Create
// It inserts the contact and fills in the generated ID.
func (s *PostgresContactStore) Create(ctx context.Context, contact *domain.Contact) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO contacts (username, first_name, last_name, email, phone)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := s.db.QueryRowContext(
		ctx,
		query,
		contact.Username,
		nullable(contact.FirstName),
		nullable(contact.LastName),
		nullable(contact.Email),
		nullable(contact.Phone),
	).Scan(&contact.ID)

	if err != nil {
		log.Error("failed to create contact",
			slog.String("error", err.Error()),
			slog.String("owner", contact.Username))
		return err
	}

	log.Debug("contact created",
		slog.Int64("contact_id", contact.ID),
		slog.String("owner", contact.Username))
	return nil
}

// GetByIDAndOwner implements store.ContactStore.GetByIDAndOwner
// Returns store.ErrContactNotFound when no row matches both id and owner,
// which includes rows that exist under a different owner.
func (s *PostgresContactStore) GetByIDAndOwner(ctx context.Context, id int64, owner string) (*domain.Contact, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, username, first_name, last_name, email, phone
		FROM contacts
		WHERE id = $1 AND username = $2
	`

	contact, err := scanContact(s.db.QueryRowContext(ctx, query, id, owner))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("contact not found",
				slog.Int64("contact_id", id),
				slog.String("owner", owner))
			return nil, store.ErrContactNotFound
		}
		log.Error("failed to get contact",
			slog.String("error", err.Error()),
			slog.Int64("contact_id", id),
			slog.String("owner", owner))
		return nil, err
	}

	return contact, nil
}

// CountByIDAndOwner implements store.ContactStore.CountByIDAndOwner
func (s *PostgresContactStore) CountByIDAndOwner(ctx context.Context, id int64, owner string) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT COUNT(*)
		FROM contacts
		WHERE id = $1 AND username = $2
	`

	var count int64
	if err := s.db.QueryRowContext(ctx, query, id, owner).Scan(&count); err != nil {
		log.Error("failed to count contacts",
			slog.String("error", err.Error()),
			slog.Int64("contact_id", id),
			slog.String("owner", owner))
		return 0, err
	}

	return count, nil
}

// Update implements store.ContactStore.Update
// All four mutable fields are replaced unconditionally.
func (s *PostgresContactStore) Update(ctx context.Context, contact *domain.Contact) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE contacts
		SET first_name = $1, last_name = $2, email = $3, phone = $4
		WHERE id = $5
	`

	result, err := s.db.ExecContext(
		ctx,
		query,
		nullable(contact.FirstName),
		nullable(contact.LastName),
		nullable(contact.Email),
		nullable(contact.Phone),
		contact.ID,
	)

	if err != nil {
		log.Error("failed to update contact",
			slog.String("error", err.Error()),
			slog.Int64("contact_id", contact.ID))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.Int64("contact_id", contact.ID))
		return err
	}

	if rowsAffected == 0 {
		log.Debug("contact not found for update",
			slog.Int64("contact_id", contact.ID))
		return store.ErrContactNotFound
	}

	return nil
}

// Delete implements store.ContactStore.Delete
func (s *PostgresContactStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		DELETE FROM contacts
		WHERE id = $1
	`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Error("failed to delete contact",
			slog.String("error", err.Error()),
			slog.Int64("contact_id", id))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.Int64("contact_id", id))
		return err
	}

	if rowsAffected == 0 {
		log.Debug("contact not found for delete",
			slog.Int64("contact_id", id))
		return store.ErrContactNotFound
	}

	log.Debug("contact deleted", slog.Int64("contact_id", id))
	return nil
}

// Search implements store.ContactStore.Search
// It builds a conjunction of the present substring filters, always
// scoped by owner: name matches first_name OR last_name, email and
// phone each match their own column.
func (s *PostgresContactStore) Search(ctx context.Context, owner string, filter store.ContactFilter) ([]*domain.Contact, int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	conditions := []string{"username = $1"}
	args := []any{owner}

	if filter.Name != "" {
		args = append(args, "%"+filter.Name+"%")
		n := len(args)
		conditions = append(conditions,
			fmt.Sprintf("(first_name LIKE $%d OR last_name LIKE $%d)", n, n))
	}
	if filter.Email != "" {
		args = append(args, "%"+filter.Email+"%")
		conditions = append(conditions, fmt.Sprintf("email LIKE $%d", len(args)))
	}
	if filter.Phone != "" {
		args = append(args, "%"+filter.Phone+"%")
		conditions = append(conditions, fmt.Sprintf("phone LIKE $%d", len(args)))
	}

	where := strings.Join(conditions, " AND ")

	countQuery := `SELECT COUNT(*) FROM contacts WHERE ` + where

	var total int64
	if err := s.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		log.Error("failed to count search results",
			slog.String("error", err.Error()),
			slog.String("owner", owner))
		return nil, 0, err
	}

	pageQuery := fmt.Sprintf(`
		SELECT id, username, first_name, last_name, email, phone
		FROM contacts
		WHERE %s
		ORDER BY id
		LIMIT $%d OFFSET $%d
	`, where, len(args)+1, len(args)+2)

	rows, err := s.db.QueryContext(ctx, pageQuery, append(args, filter.Size, filter.Offset())...)
	if err != nil {
		log.Error("failed to search contacts",
			slog.String("error", err.Error()),
			slog.String("owner", owner))
		return nil, 0, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	contacts := []*domain.Contact{}
	for rows.Next() {
		contact, err := scanContact(rows)
		if err != nil {
			log.Error("failed to scan contact row",
				slog.String("error", err.Error()))
			return nil, 0, err
		}
		contacts = append(contacts, contact)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows",
			slog.String("error", err.Error()))
		return nil, 0, err
	}

	log.Debug("contact search completed",
		slog.String("owner", owner),
		slog.Int("count", len(contacts)),
		slog.Int64("total", total))
	return contacts, total, nil
}

// rowScanner abstracts *sql.Row and *sql.Rows for shared scanning.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanContact(row rowScanner) (*domain.Contact, error) {
	var contact domain.Contact
	var firstName, lastName, email, phone sql.NullString

	if err := row.Scan(
		&contact.ID,
		&contact.Username,
		&firstName,
		&lastName,
		&email,
		&phone,
	); err != nil {
		return nil, err
	}

	contact.FirstName = firstName.String
	contact.LastName = lastName.String
	contact.Email = email.String
	contact.Phone = phone.String
	return &contact, nil
}

// nullable maps an empty string to SQL NULL so optional columns do not
// store empty strings.
func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
