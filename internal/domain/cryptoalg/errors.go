package cryptoalg

import "errors"

var (
	// ErrInvalidParameters is returned when key derivation inputs are unusable,
	// most notably when e and phi(n) are not coprime. Retry with new primes.
	ErrInvalidParameters = errors.New("invalid parameters")

	// ErrMessageTooLong is returned when a plaintext exceeds the OAEP capacity of the modulus.
	ErrMessageTooLong = errors.New("message too long for RSA modulus")

	// ErrCiphertextRange is returned when a ciphertext, signature or digest integer is not below n.
	ErrCiphertextRange = errors.New("integer representative out of range for modulus")

	// ErrOAEPIntegrity is returned for any OAEP decoding failure.
	// Label hash mismatch and a missing separator are deliberately indistinguishable.
	ErrOAEPIntegrity = errors.New("OAEP decoding error")
)
