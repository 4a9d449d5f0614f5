package postgres

import (
	"context"
	"database/sql"

	"github.com/custodia-labs/snapseek-core/internal/core/domain"
	"github.com/custodia-labs/snapseek-core/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.IdentityStore = (*IdentityStore)(nil)

// IdentityStore implements driven.IdentityStore using PostgreSQL.
// Provider access tokens are encrypted at rest.
type IdentityStore struct {
	db        *DB
	encryptor *SecretEncryptor
}

// NewIdentityStore creates a new IdentityStore
func NewIdentityStore(db *DB, encryptor *SecretEncryptor) *IdentityStore {
	return &IdentityStore{db: db, encryptor: encryptor}
}

// Save creates or updates an identity link
func (s *IdentityStore) Save(ctx context.Context, identity *domain.Identity) error {
	var tokenBlob []byte
	if identity.AccessToken != "" {
		blob, err := s.encryptor.Encrypt(identity.AccessToken)
		if err != nil {
			return err
		}
		tokenBlob = blob
	}

	query := `
		INSERT INTO identities (id, user_id, provider, provider_user_id, access_token_enc, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (provider, provider_user_id) DO UPDATE SET
			access_token_enc = EXCLUDED.access_token_enc
	`

	_, err := s.db.ExecContext(ctx, query,
		identity.ID,
		identity.UserID,
		string(identity.Provider),
		identity.ProviderUserID,
		tokenBlob,
		identity.CreatedAt,
	)
	return err
}

// GetByProvider retrieves an identity by provider and provider user id
func (s *IdentityStore) GetByProvider(ctx context.Context, provider domain.Provider, providerUserID string) (*domain.Identity, error) {
	query := `
		SELECT id, user_id, provider, provider_user_id, access_token_enc, created_at
		FROM identities
		WHERE provider = $1 AND provider_user_id = $2
	`

	identity, err := s.scan(s.db.QueryRowContext(ctx, query, string(provider), providerUserID))
	if err != nil {
		return nil, err
	}
	return identity, nil
}

// ListByUser lists all identities linked to a user
func (s *IdentityStore) ListByUser(ctx context.Context, userID string) ([]*domain.Identity, error) {
	query := `
		SELECT id, user_id, provider, provider_user_id, access_token_enc, created_at
		FROM identities
		WHERE user_id = $1
		ORDER BY created_at
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*domain.Identity
	for rows.Next() {
		identity, err := s.scan(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, identity)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// scanner abstracts sql.Row and sql.Rows
type scanner interface {
	Scan(dest ...any) error
}

func (s *IdentityStore) scan(row scanner) (*domain.Identity, error) {
	var identity domain.Identity
	var tokenBlob []byte

	err := row.Scan(
		&identity.ID,
		&identity.UserID,
		&identity.Provider,
		&identity.ProviderUserID,
		&tokenBlob,
		&identity.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if len(tokenBlob) > 0 {
		token, err := s.encryptor.Decrypt(tokenBlob)
		if err != nil {
			return nil, err
		}
		identity.AccessToken = token
	}
	return &identity, nil
}
