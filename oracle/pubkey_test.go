package oracle_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jayendramadaram/radpool-dlc/oracle"
)

// generatorX is the x coordinate of the secp256k1 generator (private key 1).
const generatorX = "79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"

func generatorKey(t *testing.T) oracle.PublicKey {
	t.Helper()
	secret := make([]byte, 32)
	secret[31] = 1
	_, pub := btcec.PrivKeyFromBytes(secret)

	return oracle.NewPublicKey(pub)
}

func TestNewPublicKeyFromPrivateKey(t *testing.T) {
	pk := generatorKey(t)
	require.Equal(t, generatorX, pk.String())

	back, err := pk.BTCEC()
	require.NoError(t, err)
	require.Equal(t, pk, oracle.NewPublicKey(back))
}

func TestParsePublicKey(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		err  error
	}{
		{"valid lower", generatorX, nil},
		{"valid upper", strings.ToUpper(generatorX), nil},
		{"not hex", "zz" + generatorX[2:], oracle.ErrInvalidKeyEncoding},
		{"short", generatorX[:62], oracle.ErrInvalidKeyLength},
		{"compressed form", "02" + generatorX, oracle.ErrInvalidKeyLength},
		{"above field prime", strings.Repeat("ff", 32), oracle.ErrNotOnCurve},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			pk, err := oracle.ParsePublicKey(tc.in)
			if tc.err != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tc.err), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, generatorX, pk.String())
		})
	}
}

func TestPublicKeyJSONText(t *testing.T) {
	pk := generatorKey(t)

	raw, err := json.Marshal([]oracle.PublicKey{pk})
	require.NoError(t, err)
	require.JSONEq(t, `["`+generatorX+`"]`, string(raw))

	var keys []oracle.PublicKey
	require.NoError(t, json.Unmarshal(raw, &keys))
	require.Equal(t, []oracle.PublicKey{pk}, keys)

	err = json.Unmarshal([]byte(`["`+strings.Repeat("ff", 32)+`"]`), &keys)
	require.ErrorIs(t, err, oracle.ErrNotOnCurve)
}

func TestNumericInfoMaxValue(t *testing.T) {
	t.Parallel()

	ni := oracle.NumericInfo{Base: 2, DigitCounts: []uint{20}}
	assert.Equal(t, uint64(1<<20-1), ni.MaxValue(ni.DigitCounts[0]))
	assert.Equal(t, uint64(999), oracle.NumericInfo{Base: 10}.MaxValue(3))
	assert.Equal(t, uint64(0), oracle.NumericInfo{Base: 1}.MaxValue(3))
	assert.Equal(t, uint64(0), oracle.NumericInfo{Base: 10}.MaxValue(0))
	assert.Equal(t, ^uint64(0), oracle.NumericInfo{Base: 10}.MaxValue(25))
}
