package cryptoalg

// PublicExponent is the fixed RSA public exponent e.
const PublicExponent = 65537

// DefaultPrimeBits is the default bit length of each generated prime.
const DefaultPrimeBits = 1024

// DefaultRounds is the default number of Miller-Rabin rounds.
const DefaultRounds = 5

// Supported hash algorithm names
const (
	HashSHA3256 = "sha3-256"
	HashSHA3512 = "sha3-512"
	HashSHA256  = "sha256"
	HashSHA512  = "sha512"
)
