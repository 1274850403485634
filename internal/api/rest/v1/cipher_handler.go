package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/textbookrsa"
	"github.com/gin-gonic/gin"
)

// CipherHandler defines the interface for handling encrypt and decrypt requests
type CipherHandler interface {
	Encrypt(ctx *gin.Context)
	Decrypt(ctx *gin.Context)
	Examples(ctx *gin.Context)
}

type cipherHandler struct {
	cipherService textbookrsa.CipherService
}

// NewCipherHandler creates a new CipherHandler
func NewCipherHandler(cipherService textbookrsa.CipherService) CipherHandler {
	return &cipherHandler{
		cipherService: cipherService,
	}
}

// Encrypt handles the POST request to encrypt a single integer
// @Summary Encrypt an integer with a public key
// @Tags Cipher
// @Accept json
// @Produce json
// @Param requestBody body EncryptRequest true "Message and public key"
// @Success 200 {object} CipherResponse
// @Failure 400 {object} ErrorResponse
// @Router /encrypt [post]
func (handler *cipherHandler) Encrypt(ctx *gin.Context) {
	var request EncryptRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid encrypt request: %v", err)})
		return
	}

	result, err := handler.cipherService.Encrypt(ctx, *request.Message, request.PublicKey())
	if err != nil {
		writeCipherError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, CipherResponse{Result: result})
}

// Decrypt handles the POST request to decrypt a single integer
// @Summary Decrypt an integer with a private key
// @Tags Cipher
// @Accept json
// @Produce json
// @Param requestBody body DecryptRequest true "Ciphertext and private key"
// @Success 200 {object} CipherResponse
// @Failure 400 {object} ErrorResponse
// @Router /decrypt [post]
func (handler *cipherHandler) Decrypt(ctx *gin.Context) {
	var request DecryptRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid decrypt request: %v", err)})
		return
	}

	result, err := handler.cipherService.Decrypt(ctx, *request.Ciphertext, request.PrivateKey())
	if err != nil {
		writeCipherError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, CipherResponse{Result: result})
}

// Examples handles the GET request listing the worked examples
// @Summary Run the worked examples
// @Tags Cipher
// @Produce json
// @Success 200 {array} ExampleResponse
// @Router /examples [get]
func (handler *cipherHandler) Examples(ctx *gin.Context) {
	responses := make([]ExampleResponse, 0, len(textbookrsa.WorkedExamples))

	for _, example := range textbookrsa.WorkedExamples {
		var result int64
		var err error
		switch example.Operation {
		case textbookrsa.OperationEncrypt:
			result, err = handler.cipherService.Encrypt(ctx, example.Input, textbookrsa.PublicKey{E: example.Exponent, N: example.Modulus})
		default:
			result, err = handler.cipherService.Decrypt(ctx, example.Input, textbookrsa.PrivateKey{D: example.Exponent, N: example.Modulus})
		}
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: fmt.Sprintf("example %s(%d) failed: %v", example.Operation, example.Input, err)})
			return
		}
		responses = append(responses, ExampleResponse{WorkedExample: example, Result: result})
	}

	ctx.JSON(http.StatusOK, responses)
}

func writeCipherError(ctx *gin.Context, err error) {
	var invalid *textbookrsa.InvalidMessageError
	switch {
	case errors.As(err, &invalid):
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error(), Reason: string(invalid.Reason)})
	case errors.Is(err, textbookrsa.ErrInvalidKey):
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error(), Reason: "invalid_key"})
	default:
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: err.Error()})
	}
}
