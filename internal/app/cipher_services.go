package app

import (
	"context"
	"errors"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/textbookrsa"
	"github.com/MGTheTrain/textbook-rsa/internal/infrastructure/metrics"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/logger"
)

// cipherService implements the CipherService interface
type cipherService struct {
	processor textbookrsa.TextbookRSAProcessor
	logger    logger.Logger
}

// NewCipherService creates a new cipherService instance
func NewCipherService(processor textbookrsa.TextbookRSAProcessor, logger logger.Logger) (textbookrsa.CipherService, error) {
	if processor == nil {
		return nil, errors.New("processor cannot be nil")
	}
	return &cipherService{
		processor: processor,
		logger:    logger,
	}, nil
}

// Encrypt returns message^e mod n for the given public key.
func (s *cipherService) Encrypt(ctx context.Context, message int64, publicKey textbookrsa.PublicKey) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	cipherText, err := s.processor.Encrypt(message, publicKey)
	metrics.CipherOperationsCount.WithLabelValues(textbookrsa.OperationEncrypt, metrics.CipherOutcome(err)).Inc()
	if err != nil {
		s.logger.Warn("Encryption rejected: ", err)
		return 0, err
	}
	return cipherText, nil
}

// Decrypt returns ciphertext^d mod n for the given private key.
func (s *cipherService) Decrypt(ctx context.Context, ciphertext int64, privateKey textbookrsa.PrivateKey) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	plainText, err := s.processor.Decrypt(ciphertext, privateKey)
	metrics.CipherOperationsCount.WithLabelValues(textbookrsa.OperationDecrypt, metrics.CipherOutcome(err)).Inc()
	if err != nil {
		s.logger.Warn("Decryption rejected: ", err)
		return 0, err
	}
	return plainText, nil
}
