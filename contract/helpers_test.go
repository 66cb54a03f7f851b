package contract_test

import (
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/stretchr/testify/require"

	"github.com/jayendramadaram/radpool-dlc/contract"
	"github.com/jayendramadaram/radpool-dlc/oracle"
)

const testEventID = "btcusd1731397577"

// testPublicKey derives the x-only key of a fixed secret filled with b.
func testPublicKey(t *testing.T, b byte) oracle.PublicKey {
	t.Helper()
	secret := make([]byte, 32)
	for i := range secret {
		secret[i] = b
	}
	_, pub := btcec.PrivKeyFromBytes(secret)

	return oracle.NewPublicKey(pub)
}

// testNumericalDescriptor is a two-piece curve over base-10 digits.
func testNumericalDescriptor(t *testing.T) *contract.NumericalDescriptor {
	t.Helper()
	d, err := contract.NewNumericalDescriptorBuilder().
		AddPayoutPoint(1, 100, 200, 2).
		AddPayoutPoint(1, 200, 300, 2).
		AddPayoutPoint(2, 200, 300, 2).
		AddPayoutPoint(2, 300, 400, 2).
		AddRoundingInterval(0, 10).
		SetDifferenceParams(5, 3, true).
		SetOracleNumericInfo(10, []uint{2, 3}).
		Build()
	require.NoError(t, err)

	return d
}

func testEnumDescriptor(t *testing.T) *contract.EnumDescriptor {
	t.Helper()
	d, err := contract.NewEnumDescriptorBuilder().
		AddPayout("win", 300, 0).
		AddPayout("lose", 0, 300).
		Build()
	require.NoError(t, err)

	return d
}
