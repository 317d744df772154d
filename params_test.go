package keccak

import (
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/require"
)

func TestParamsPresets(t *testing.T) {
	for _, p := range []Params{Keccak256, SHA3_256} {
		require.NoError(t, p.Validate())
		require.Equal(t, 136, p.ByteRate())
		require.Equal(t, 1600, p.Rate+p.Capacity)
	}
	require.Equal(t, byte(0x01), Keccak256.Suffix)
	require.Equal(t, byte(0x06), SHA3_256.Suffix)
}

func TestParamsValidate(t *testing.T) {
	tests := []struct {
		name   string
		params Params
		errs   int
	}{
		{"valid full rate", Params{Rate: 1600, Capacity: 0, Suffix: 0x01, OutputLen: 200}, 0},
		{"valid single byte rate", Params{Rate: 8, Capacity: 1592, Suffix: 0x1f, OutputLen: 1}, 0},
		{"sum mismatch", Params{Rate: 1088, Capacity: 256, Suffix: 0x01, OutputLen: 32}, 1},
		{"unaligned rate", Params{Rate: 1087, Capacity: 513, Suffix: 0x01, OutputLen: 32}, 1},
		{"zero suffix", Params{Rate: 1088, Capacity: 512, OutputLen: 32}, 1},
		{"largest suffix", Params{Rate: 1088, Capacity: 512, Suffix: 0x7f, OutputLen: 32}, 0},
		{"suffix overlaps pad bit", Params{Rate: 1088, Capacity: 512, Suffix: 0x80, OutputLen: 32}, 1},
		{"suffix all ones", Params{Rate: 1088, Capacity: 512, Suffix: 0xff, OutputLen: 32}, 1},
		{"zero output", Params{Rate: 1088, Capacity: 512, Suffix: 0x01}, 1},
		{"output exceeds rate", Params{Rate: 576, Capacity: 1024, Suffix: 0x01, OutputLen: 73}, 1},
		{"rate too wide", Params{Rate: 1608, Capacity: -8, Suffix: 0x01, OutputLen: 32}, 1},
		{"zero value", Params{}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if tt.errs == 0 {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalidParams)

			var merr *multierror.Error
			require.ErrorAs(t, err, &merr)
			require.Len(t, merr.Errors, tt.errs)
			for _, e := range merr.Errors {
				require.ErrorIs(t, e, ErrInvalidParams)
			}
		})
	}
}
