//go:build unit
// +build unit

package app

import (
	"context"
	"testing"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/textbookrsa"
	"github.com/MGTheTrain/textbook-rsa/internal/infrastructure/metrics"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/testutil"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCipherService(t *testing.T) {
	logger := testutil.SetupTestLogger(t)
	ctx := context.Background()
	publicKey := textbookrsa.PublicKey{E: 7, N: 221}
	privateKey := textbookrsa.PrivateKey{D: 103, N: 221}

	t.Run("Encrypt", func(t *testing.T) {
		processor := new(MockTextbookRSAProcessor)
		processor.On("Encrypt", int64(42), publicKey).Return(int64(185), nil)

		service, err := NewCipherService(processor, logger)
		require.NoError(t, err)

		counter := metrics.CipherOperationsCount.WithLabelValues(textbookrsa.OperationEncrypt, metrics.OutcomeSuccess)
		before := promtestutil.ToFloat64(counter)

		got, err := service.Encrypt(ctx, 42, publicKey)
		require.NoError(t, err)
		assert.Equal(t, int64(185), got)
		assert.Equal(t, before+1, promtestutil.ToFloat64(counter))
	})

	t.Run("DecryptInvalidMessage", func(t *testing.T) {
		processor := new(MockTextbookRSAProcessor)
		invalid := &textbookrsa.InvalidMessageError{Reason: textbookrsa.ReasonNotBelowModulus, Message: 300, Modulus: 221}
		processor.On("Decrypt", int64(300), privateKey).Return(int64(0), invalid)

		service, err := NewCipherService(processor, logger)
		require.NoError(t, err)

		counter := metrics.CipherOperationsCount.WithLabelValues(textbookrsa.OperationDecrypt, metrics.OutcomeInvalidMessage)
		before := promtestutil.ToFloat64(counter)

		_, err = service.Decrypt(ctx, 300, privateKey)
		assert.ErrorIs(t, err, textbookrsa.ErrInvalidMessage)
		assert.Equal(t, before+1, promtestutil.ToFloat64(counter))
	})

	t.Run("CanceledContext", func(t *testing.T) {
		processor := new(MockTextbookRSAProcessor)
		service, err := NewCipherService(processor, logger)
		require.NoError(t, err)

		canceled, cancel := context.WithCancel(ctx)
		cancel()

		_, err = service.Encrypt(canceled, 42, publicKey)
		assert.ErrorIs(t, err, context.Canceled)
		processor.AssertNotCalled(t, "Encrypt", mock.Anything, mock.Anything)
	})

	t.Run("NilProcessor", func(t *testing.T) {
		_, err := NewCipherService(nil, logger)
		assert.Error(t, err)
	})
}
