package textbookrsa

import "context"

// TextbookRSAProcessor generates textbook RSA key pairs and applies the raw RSA
// permutation to single integers. No padding is involved.
type TextbookRSAProcessor interface {
	// GenerateKeyPair draws two distinct primes from [lower, upper] and derives a key pair.
	// Failures wrap ErrKeyGeneration.
	GenerateKeyPair(lower, upper int64) (*KeyPair, error)

	// Encrypt computes message^e mod n. The message must satisfy 0 <= message < n.
	Encrypt(message int64, publicKey PublicKey) (int64, error)

	// Decrypt computes ciphertext^d mod n. The ciphertext must satisfy 0 <= ciphertext < n.
	Decrypt(ciphertext int64, privateKey PrivateKey) (int64, error)
}

// KeyPairService generates key pairs on behalf of the CLI and REST API.
type KeyPairService interface {
	// Generate produces a key pair from [lower, upper], retrying failures that depend on
	// random draws. Failures that no retry can fix are returned immediately.
	Generate(ctx context.Context, lower, upper int64) (*KeyPair, error)
}

// CipherService encrypts and decrypts single integers with caller-supplied keys.
type CipherService interface {
	// Encrypt returns message^e mod n or an error matching ErrInvalidMessage or ErrInvalidKey.
	Encrypt(ctx context.Context, message int64, publicKey PublicKey) (int64, error)

	// Decrypt returns ciphertext^d mod n or an error matching ErrInvalidMessage or ErrInvalidKey.
	Decrypt(ctx context.Context, ciphertext int64, privateKey PrivateKey) (int64, error)
}
