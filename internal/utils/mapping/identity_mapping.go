package mapping

import (
	"github.com/SscSPs/officeflow/internal/core/domain"
	"github.com/SscSPs/officeflow/internal/models"
)

// ToModelIdentity converts a domain Identity to a model Identity
func ToModelIdentity(d domain.Identity) models.Identity {
	return models.Identity{
		UID:          d.UID,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		DisplayName:  d.DisplayName,
		Provider:     string(d.Provider),
		CreatedAt:    d.CreatedAt,
	}
}

// ToDomainIdentity converts a model Identity to a domain Identity
func ToDomainIdentity(m models.Identity) domain.Identity {
	return domain.Identity{
		UID:          m.UID,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		DisplayName:  m.DisplayName,
		Provider:     domain.IdentityProvider(m.Provider),
		CreatedAt:    m.CreatedAt,
	}
}
