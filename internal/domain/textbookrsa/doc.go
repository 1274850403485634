// Package textbookrsa defines the key material, errors and processor contract for
// textbook RSA over small integers: key pair generation from a prime search range and
// unpadded encryption/decryption of a single integer below the modulus.
package textbookrsa
