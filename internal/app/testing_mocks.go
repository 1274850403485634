//go:build unit
// +build unit

package app

import (
	"github.com/MGTheTrain/textbook-rsa/internal/domain/textbookrsa"
	"github.com/stretchr/testify/mock"
)

// MockTextbookRSAProcessor is a mock implementation of the TextbookRSAProcessor interface
type MockTextbookRSAProcessor struct {
	mock.Mock
}

func (m *MockTextbookRSAProcessor) GenerateKeyPair(lower, upper int64) (*textbookrsa.KeyPair, error) {
	args := m.Called(lower, upper)
	keyPair, _ := args.Get(0).(*textbookrsa.KeyPair)
	return keyPair, args.Error(1)
}

func (m *MockTextbookRSAProcessor) Encrypt(message int64, publicKey textbookrsa.PublicKey) (int64, error) {
	args := m.Called(message, publicKey)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTextbookRSAProcessor) Decrypt(ciphertext int64, privateKey textbookrsa.PrivateKey) (int64, error) {
	args := m.Called(ciphertext, privateKey)
	return args.Get(0).(int64), args.Error(1)
}
