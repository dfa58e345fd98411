// Package crypto seals provider credentials before they reach the database.
package crypto

import (
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"

	"wearsync/config"
	"wearsync/internal/domain/entity"
	"wearsync/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/crypto/chacha20poly1305"
)

// sealerVersion is the first byte of every sealed blob.
const sealerVersion byte = 1

var (
	ErrInvalidKey    = errors.New("credential key must be 32 bytes, base64 encoded")
	ErrMalformedSeal = errors.New("sealed credential is malformed")
)

// xchachaSealer is a CredentialSealer using XChaCha20-Poly1305 with a random nonce per seal.
type xchachaSealer struct {
	aead cipher.AEAD
}

// NewSealer builds the credential sealer from config.Crypto.CredentialKey.
func NewSealer(cfg *config.Config) (service.CredentialSealer, error) {
	if cfg.Crypto == nil || cfg.Crypto.CredentialKey == "" {
		return nil, errors.WithStack(ErrInvalidKey)
	}

	key, err := base64.StdEncoding.DecodeString(cfg.Crypto.CredentialKey)
	if err != nil || len(key) != chacha20poly1305.KeySize {
		return nil, errors.WithStack(ErrInvalidKey)
	}

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &xchachaSealer{aead: aead}, nil
}

// Seal encrypts cred. The layout is version | nonce | ciphertext.
func (s *xchachaSealer) Seal(cred *entity.ProviderCredential) ([]byte, error) {
	plaintext, err := json.Marshal(cred)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	out := make([]byte, 1+s.aead.NonceSize(), 1+s.aead.NonceSize()+len(plaintext)+s.aead.Overhead())
	out[0] = sealerVersion
	nonce := out[1:]
	if _, err := rand.Read(nonce); err != nil {
		return nil, errors.WithStack(err)
	}

	return s.aead.Seal(out, nonce, plaintext, []byte{sealerVersion}), nil
}

// Open decrypts a blob produced by Seal.
func (s *xchachaSealer) Open(sealed []byte) (*entity.ProviderCredential, error) {
	headerSize := 1 + s.aead.NonceSize()
	if len(sealed) < headerSize+s.aead.Overhead() || sealed[0] != sealerVersion {
		return nil, errors.WithStack(ErrMalformedSeal)
	}

	plaintext, err := s.aead.Open(nil, sealed[1:headerSize], sealed[headerSize:], []byte{sealerVersion})
	if err != nil {
		return nil, errors.Wrap(ErrMalformedSeal, err.Error())
	}

	var cred entity.ProviderCredential
	if err := json.Unmarshal(plaintext, &cred); err != nil {
		return nil, errors.Wrap(ErrMalformedSeal, err.Error())
	}

	return &cred, nil
}
