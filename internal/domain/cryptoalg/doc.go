// Package cryptoalg defines the core interfaces and structures of the RSA engine:
// prime generation, key derivation, OAEP padding, raw RSA encryption and file signatures.
package cryptoalg
