package textbookrsa

// AlgorithmTextbookRSA names the unpadded RSA variant implemented here.
const AlgorithmTextbookRSA = "TEXTBOOK-RSA"

// MinExponent is the smallest public exponent drawn during key generation.
const MinExponent = 2

// WorkedExample is a fixed encryption or decryption with a known answer.
type WorkedExample struct {
	Operation string `json:"operation"`
	Input     int64  `json:"input"`
	Exponent  int64  `json:"exponent"`
	Modulus   int64  `json:"modulus"`
	Expected  int64  `json:"expected"`
}

// Operation names used by WorkedExample.
const (
	OperationEncrypt = "encrypt"
	OperationDecrypt = "decrypt"
)

// WorkedExamples are the hard-coded demonstrations offered by the CLI and REST API.
var WorkedExamples = []WorkedExample{
	{Operation: OperationEncrypt, Input: 42, Exponent: 7, Modulus: 221, Expected: 185},
	{Operation: OperationEncrypt, Input: 15, Exponent: 5, Modulus: 899, Expected: 619},
	{Operation: OperationDecrypt, Input: 185, Exponent: 103, Modulus: 221, Expected: 42},
}
