package keccak

import "crypto/subtle"

// sponge is the state of a single digest computation. It lives on the stack of
// the calling Sum function and is never shared.
type sponge struct {
	state  [stateLen]byte
	rate   int // in bytes
	suffix byte
}

// newSponge returns a zeroed sponge for p. p must already be valid.
func newSponge(p Params) sponge {
	return sponge{rate: p.ByteRate(), suffix: p.Suffix}
}

// mustSponge validates p and returns a zeroed sponge for it. It panics if p is
// invalid: a bad configuration is a wiring bug, and hashing with it would
// silently produce a wrong digest.
func mustSponge(p Params) sponge {
	if err := p.Validate(); err != nil {
		panic(err)
	}
	return newSponge(p)
}

// absorb XORs data into the state block by block, then pads and permutes the
// final block. A block that fills the rate is permuted as soon as it is
// absorbed, so input that is a multiple of the rate gets a padding block of
// its own.
func (s *sponge) absorb(data []byte) {
	blockSize := 0
	for len(data) > 0 {
		blockSize = min(s.rate, len(data))
		xorIn(&s.state, data[:blockSize])
		data = data[blockSize:]
		if blockSize == s.rate {
			keccakF1600(&s.state)
			blockSize = 0
		}
	}

	// pad10*1. Both bytes may be the same when blockSize == rate-1.
	s.state[blockSize] ^= s.suffix
	s.state[s.rate-1] ^= 0x80
	keccakF1600(&s.state)
}

// squeeze copies the first len(out) bytes of the state into out. len(out)
// never exceeds the rate, so no further permutation is needed.
func (s *sponge) squeeze(out []byte) {
	copy(out, s.state[:len(out)])
}

// sum absorbs data and returns the first outputLen bytes of the state.
func (s *sponge) sum(data []byte, outputLen int) []byte {
	s.absorb(data)
	out := make([]byte, outputLen)
	s.squeeze(out)
	return out
}

// xorIn XORs data into the beginning of state.
func xorIn(state *[stateLen]byte, data []byte) {
	subtle.XORBytes(state[:len(data)], state[:len(data)], data)
}
