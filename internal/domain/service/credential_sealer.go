package service

import "wearsync/internal/domain/entity"

// CredentialSealer encrypts provider credentials for storage.
type CredentialSealer interface {
	Seal(cred *entity.ProviderCredential) ([]byte, error)
	Open(sealed []byte) (*entity.ProviderCredential, error)
}
