//go:build unit
// +build unit

package v1

import (
	"context"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/textbookrsa"
	"github.com/stretchr/testify/mock"
)

// MockKeyPairService is a mock implementation of KeyPairService
type MockKeyPairService struct {
	mock.Mock
}

func (m *MockKeyPairService) Generate(ctx context.Context, lower, upper int64) (*textbookrsa.KeyPair, error) {
	args := m.Called(ctx, lower, upper)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*textbookrsa.KeyPair), args.Error(1)
}

// MockCipherService is a mock implementation of CipherService
type MockCipherService struct {
	mock.Mock
}

func (m *MockCipherService) Encrypt(ctx context.Context, message int64, publicKey textbookrsa.PublicKey) (int64, error) {
	args := m.Called(ctx, message, publicKey)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCipherService) Decrypt(ctx context.Context, ciphertext int64, privateKey textbookrsa.PrivateKey) (int64, error) {
	args := m.Called(ctx, ciphertext, privateKey)
	return args.Get(0).(int64), args.Error(1)
}
