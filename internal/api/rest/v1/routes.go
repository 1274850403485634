package v1

import (
	"github.com/MGTheTrain/textbook-rsa/internal/domain/textbookrsa"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRoutes sets up all the API routes for version 1 and the metrics endpoint.
func SetupRoutes(r *gin.Engine,
	keyPairService textbookrsa.KeyPairService,
	cipherService textbookrsa.CipherService,
	gatherer prometheus.Gatherer) {

	v1 := r.Group(BasePath)

	keyHandler := NewKeyHandler(keyPairService)
	v1.POST("/keys", keyHandler.GenerateKeyPair)

	cipherHandler := NewCipherHandler(cipherService)
	v1.POST("/encrypt", cipherHandler.Encrypt)
	v1.POST("/decrypt", cipherHandler.Decrypt)
	v1.GET("/examples", cipherHandler.Examples)

	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
}
