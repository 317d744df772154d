package keccak

import (
	"encoding/binary"
	"math/bits"
)

const (
	// stateLen is the width of Keccak-f[1600] in bytes.
	stateLen = 200

	// numLanes is the number of 64-bit lanes in the state.
	numLanes = 25

	// numRounds is the round count of Keccak-f[1600].
	numRounds = 24
)

// rc stores the round constants for use in the iota step.
var rc = [numRounds]uint64{
	0x0000000000000001,
	0x0000000000008082,
	0x800000000000808A,
	0x8000000080008000,
	0x000000000000808B,
	0x0000000080000001,
	0x8000000080008081,
	0x8000000000008009,
	0x000000000000008A,
	0x0000000000000088,
	0x0000000080008009,
	0x000000008000000A,
	0x000000008000808B,
	0x800000000000008B,
	0x8000000000008089,
	0x8000000000008003,
	0x8000000000008002,
	0x8000000000000080,
	0x000000000000800A,
	0x800000008000000A,
	0x8000000080008081,
	0x8000000000008080,
	0x0000000080000001,
	0x8000000080008008,
}

// rotc holds the rho rotation of each lane visited by the rho/pi chain.
var rotc = [numLanes - 1]int{
	1, 3, 6, 10, 15, 21, 28, 36, 45, 55, 2, 14,
	27, 41, 56, 8, 25, 43, 62, 18, 39, 61, 20, 44,
}

// piln holds the pi destination of each step of the rho/pi chain.
var piln = [numLanes - 1]int{
	10, 7, 11, 17, 18, 3, 5, 16, 8, 21, 24, 4,
	15, 23, 19, 13, 12, 2, 20, 14, 22, 9, 6, 1,
}

// keccakF1600Lanes applies the 24-round Keccak-f[1600] permutation to a
// state of 25 lanes. Lane (x, y) is a[x+5*y].
func keccakF1600Lanes(a *[numLanes]uint64) {
	var bc [5]uint64
	for round := 0; round < numRounds; round++ {
		// θ
		for x := 0; x < 5; x++ {
			bc[x] = a[x] ^ a[x+5] ^ a[x+10] ^ a[x+15] ^ a[x+20]
		}
		for x := 0; x < 5; x++ {
			d := bc[(x+4)%5] ^ bits.RotateLeft64(bc[(x+1)%5], 1)
			for y := 0; y < numLanes; y += 5 {
				a[y+x] ^= d
			}
		}

		// ρ and π, walking the lane cycle with a single carried value.
		// The walk must start at lane 1; lane 0 is a fixed point of both.
		t := a[1]
		for i, j := range piln {
			saved := a[j]
			a[j] = bits.RotateLeft64(t, rotc[i])
			t = saved
		}

		// χ
		for y := 0; y < numLanes; y += 5 {
			copy(bc[:], a[y:y+5])
			for x := 0; x < 5; x++ {
				a[y+x] = bc[x] ^ (^bc[(x+1)%5] & bc[(x+2)%5])
			}
		}

		// ι
		a[0] ^= rc[round]
	}
}

// keccakF1600 applies the permutation to a byte-oriented state.
func keccakF1600(state *[stateLen]byte) {
	lanes := bytesToLanes(state)
	keccakF1600Lanes(&lanes)
	*state = lanesToBytes(&lanes)
}

// bytesToLanes reads the state as 25 little-endian lanes.
func bytesToLanes(b *[stateLen]byte) (lanes [numLanes]uint64) {
	for i := range lanes {
		lanes[i] = binary.LittleEndian.Uint64(b[8*i:])
	}
	return lanes
}

// lanesToBytes is the inverse of bytesToLanes.
func lanesToBytes(lanes *[numLanes]uint64) (b [stateLen]byte) {
	for i, lane := range lanes {
		binary.LittleEndian.PutUint64(b[8*i:], lane)
	}
	return b
}
