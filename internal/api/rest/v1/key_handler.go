package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/textbookrsa"
	"github.com/gin-gonic/gin"
)

// KeyHandler defines the interface for handling key-related operations
type KeyHandler interface {
	GenerateKeyPair(ctx *gin.Context)
}

type keyHandler struct {
	keyPairService textbookrsa.KeyPairService
}

// NewKeyHandler creates a new KeyHandler
func NewKeyHandler(keyPairService textbookrsa.KeyPairService) KeyHandler {
	return &keyHandler{
		keyPairService: keyPairService,
	}
}

// GenerateKeyPair handles the POST request to generate a textbook RSA key pair
// @Summary Generate a textbook RSA key pair
// @Description Draws two distinct primes from [lower, upper] and derives the public and private exponents.
// @Tags Key
// @Accept json
// @Produce json
// @Param requestBody body GenerateKeyPairRequest true "Prime search range"
// @Success 201 {object} KeyPairResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /keys [post]
func (handler *keyHandler) GenerateKeyPair(ctx *gin.Context) {
	var request GenerateKeyPairRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid key request: %v", err)})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("validation failed: %v", err)})
		return
	}

	keyPair, err := handler.keyPairService.Generate(ctx, request.Lower, request.Upper)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, textbookrsa.ErrKeyGeneration) {
			status = http.StatusUnprocessableEntity
		}
		ctx.JSON(status, ErrorResponse{Message: fmt.Sprintf("%v; try a wider range", err)})
		return
	}

	ctx.JSON(http.StatusCreated, KeyPairResponse{
		ID:         keyPair.ID,
		Algorithm:  textbookrsa.AlgorithmTextbookRSA,
		PublicKey:  keyPair.Public,
		PrivateKey: keyPair.Private,
	})
}
