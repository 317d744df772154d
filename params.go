package keccak

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// ErrInvalidParams is wrapped by every error returned from Params.Validate.
var ErrInvalidParams = errors.New("keccak: invalid sponge parameters")

// Params configures the sponge. Rate and Capacity are in bits, OutputLen is
// in bytes.
type Params struct {
	Rate      int
	Capacity  int
	Suffix    byte
	OutputLen int
}

// Parameters of the fixed-function digests. Sum256 and SumSHA3_256 read these
// rather than the exported presets, which callers are free to modify.
var (
	keccak256Params = Params{Rate: 1088, Capacity: 512, Suffix: 0x01, OutputLen: Size}
	sha3_256Params  = Params{Rate: 1088, Capacity: 512, Suffix: 0x06, OutputLen: Size}
)

var (
	// Keccak256 is the pre-standard Keccak used by Ethereum.
	Keccak256 = keccak256Params

	// SHA3_256 is the FIPS 202 variant. It differs from Keccak256 only in the
	// domain separation suffix.
	SHA3_256 = sha3_256Params
)

// ByteRate returns the rate in bytes.
func (p Params) ByteRate() int { return p.Rate / 8 }

// Validate reports every invariant p violates. The returned error, if any, is a
// *multierror.Error whose entries each wrap ErrInvalidParams.
func (p Params) Validate() error {
	var errs *multierror.Error
	if p.Rate+p.Capacity != stateLen*8 {
		errs = multierror.Append(errs, fmt.Errorf("%w: rate %d + capacity %d != %d",
			ErrInvalidParams, p.Rate, p.Capacity, stateLen*8))
	}
	if p.Rate <= 0 {
		errs = multierror.Append(errs, fmt.Errorf("%w: rate %d must be positive", ErrInvalidParams, p.Rate))
	}
	if p.Capacity < 0 {
		errs = multierror.Append(errs, fmt.Errorf("%w: capacity %d is negative", ErrInvalidParams, p.Capacity))
	}
	if p.Rate%8 != 0 {
		errs = multierror.Append(errs, fmt.Errorf("%w: rate %d is not byte aligned", ErrInvalidParams, p.Rate))
	}
	// The suffix carries the first pad bit, so it can neither be empty nor
	// reach the terminating 0x80 it may share a byte with.
	if p.Suffix == 0 || p.Suffix >= 0x80 {
		errs = multierror.Append(errs, fmt.Errorf("%w: suffix %#02x out of range (0x00, 0x80)", ErrInvalidParams, p.Suffix))
	}
	if p.OutputLen <= 0 {
		errs = multierror.Append(errs, fmt.Errorf("%w: output length %d must be positive", ErrInvalidParams, p.OutputLen))
	}
	// The digest is read in a single squeeze.
	if p.Rate > 0 && p.OutputLen > p.ByteRate() {
		errs = multierror.Append(errs, fmt.Errorf("%w: output length %d exceeds rate of %d bytes",
			ErrInvalidParams, p.OutputLen, p.ByteRate()))
	}
	return errs.ErrorOrNil()
}
