// Package v1 implements version 1 of the textbook RSA REST API on gin.
package v1

// BasePath is the route prefix of every v1 endpoint.
const BasePath = "/api/v1/trsa"
