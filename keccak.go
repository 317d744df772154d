// Package keccak computes Keccak-256, the pre-standard SHA-3 used by Ethereum.
//
// Keccak-256 and FIPS 202 SHA3-256 share the Keccak-f[1600] permutation and the
// sponge construction; they differ only in the domain separation byte that is
// absorbed before the pad10*1 terminator (0x01 for Keccak, 0x06 for SHA-3).
// Go's crypto/sha3 only exposes the latter. Both are provided here on top of
// one portable permutation.
//
// All functions hash a complete input buffer in one call. They keep no state
// between calls and are safe for concurrent use.
package keccak

// Size is the length of a Keccak-256 or SHA3-256 digest in bytes.
const Size = 32

// Sum256 computes the Keccak-256 hash of data. Zero heap allocations.
func Sum256(data []byte) [Size]byte {
	return sum256(keccak256Params, data)
}

// SumSHA3_256 computes the FIPS 202 SHA3-256 hash of data.
func SumSHA3_256(data []byte) [Size]byte {
	return sum256(sha3_256Params, data)
}

// Sum hashes data with the sponge described by p and returns p.OutputLen
// bytes. It returns an error wrapping ErrInvalidParams if p is invalid.
func Sum(p Params, data []byte) ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	s := newSponge(p)
	return s.sum(data, p.OutputLen), nil
}

// MustSum is like Sum but panics if p is invalid.
func MustSum(p Params, data []byte) []byte {
	s := mustSponge(p)
	return s.sum(data, p.OutputLen)
}

func sum256(p Params, data []byte) (out [Size]byte) {
	s := mustSponge(p)
	s.absorb(data)
	s.squeeze(out[:])
	return out
}
