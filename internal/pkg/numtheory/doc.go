// Package numtheory provides the small-integer number theory used by textbook RSA:
// trial-division primality, random prime selection within a range, greatest common
// divisor, modular inverse via the extended Euclidean algorithm and fast modular
// exponentiation. SqrtMaxInt64 bounds primes whose products still fit an int64.
//
// The routines are sized for demonstration ranges. Trial division is O(sqrt(n)) and
// prime selection enumerates the whole range, so neither is suitable for
// cryptographically sized numbers.
package numtheory
