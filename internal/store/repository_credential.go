package store

import (
	"context"
	"maps"

	"github.com/MKhiriev/go-employees/models"
)

// credentialRepository is the in-memory implementation of
// [CredentialRepository]. Its set of principals is fixed at construction.
type credentialRepository struct {
	hashes map[string]string
}

// NewCredentialRepository constructs a [CredentialRepository] from a mapping
// of username to bcrypt password hash. The map is copied.
func NewCredentialRepository(users map[string]string) CredentialRepository {
	return &credentialRepository{hashes: maps.Clone(users)}
}

func (r *credentialRepository) FindByUsername(_ context.Context, username string) (models.Credential, error) {
	hash, ok := r.hashes[username]
	if !ok {
		return models.Credential{}, ErrCredentialNotFound
	}

	return models.Credential{Username: username, PasswordHash: hash}, nil
}
