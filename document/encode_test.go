package document_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jayendramadaram/radpool-dlc/contract"
	"github.com/jayendramadaram/radpool-dlc/document"
	"github.com/jayendramadaram/radpool-dlc/oracle"
)

func buildNumericContract(t *testing.T) contract.ContractInput {
	t.Helper()
	key, err := oracle.ParsePublicKey(generatorX)
	require.NoError(t, err)

	desc, err := contract.NewNumericalDescriptorBuilder().
		AddPayoutPoint(1, 0, 0, 0).
		AddPayoutPoint(1, 100, 50, 0).
		AddPayoutPoint(2, 100, 50, 0).
		AddPayoutPoint(2, 150, 80, 7).
		AddPayoutPoint(2, 255, 100, 0).
		AddRoundingInterval(0, 5).
		AddRoundingInterval(100, 10).
		SetDifferenceParams(4, 2, false).
		SetOracleNumericInfo(2, []uint{8}).
		Build()
	require.NoError(t, err)
	info, err := contract.CreateContractInfo(desc, []oracle.PublicKey{key}, "temp-2026-10-14", 1)
	require.NoError(t, err)

	c, err := contract.NewContractBuilder().
		FeeRate(3).
		OfferCollateral(60).
		AcceptCollateral(40).
		WithContractInfo(info).
		Build()
	require.NoError(t, err)

	return c
}

func TestRoundTrip(t *testing.T) {
	for _, name := range []string{"numeric_outcome.json", "enum_outcome.json"} {
		t.Run(name, func(t *testing.T) {
			c, err := document.DecodeJSON(readTestdata(t, name))
			require.NoError(t, err)

			raw, err := document.MarshalJSON(c)
			require.NoError(t, err)
			again, err := document.DecodeJSON(raw)
			require.NoError(t, err)
			assert.Equal(t, c, again)
		})
	}

	c := buildNumericContract(t)
	raw, err := document.MarshalJSON(c, document.WithIndent("", "  "))
	require.NoError(t, err)
	again, err := document.DecodeJSON(raw)
	require.NoError(t, err)
	assert.Equal(t, c, again)
}

func TestMarshalJSON_Shape(t *testing.T) {
	raw, err := document.MarshalJSON(buildNumericContract(t))
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &doc))
	infos := doc["contract_infos"].([]interface{})
	require.Len(t, infos, 1)
	info := infos[0].(map[string]interface{})

	desc := info["contract_descriptor"].(map[string]interface{})
	require.Contains(t, desc, "Numerical")
	assert.NotContains(t, desc, "Enumerated")

	oracles := info["oracles"].(map[string]interface{})
	assert.Equal(t, []interface{}{generatorX}, oracles["public_keys"])

	assert.True(t, bytes.HasPrefix(raw, []byte(`{"fee_rate":3,`)), string(raw))
}

func TestEncode_Indent(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, document.Encode(&buf, buildNumericContract(t), document.WithIndent("", "\t")))

	out := buf.String()
	assert.True(t, strings.HasSuffix(out, "}\n"))
	assert.Contains(t, out, "\n\t\"fee_rate\": 3,")
}

func TestMarshalJSON_UnsupportedDescriptor(t *testing.T) {
	c := contract.ContractInput{ContractInfos: []contract.ContractInfo{{}}}
	_, err := document.MarshalJSON(c)
	require.ErrorIs(t, err, document.ErrMalformed)

	_, err = document.Digest(c)
	require.ErrorIs(t, err, document.ErrMalformed)
}

func TestDigest(t *testing.T) {
	c := buildNumericContract(t)
	d1, err := document.Digest(c)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(d1, "sha256:"))
	assert.Len(t, d1, len("sha256:")+64)

	// Same terms from an indented document hash the same.
	raw, err := document.MarshalJSON(c, document.WithIndent(">", "    "))
	require.NoError(t, err)
	again, err := document.DecodeJSON(bytes.ReplaceAll(raw, []byte("\n>"), []byte("\n")))
	require.NoError(t, err)
	d2, err := document.Digest(again)
	require.NoError(t, err)
	assert.Equal(t, d1, d2)

	// Any change to the terms changes the digest.
	c.FeeRate++
	d3, err := document.Digest(c)
	require.NoError(t, err)
	assert.NotEqual(t, d1, d3)
}

func TestDigest_YAMLAndJSONAgree(t *testing.T) {
	fromJSON, err := document.DecodeJSON(readTestdata(t, "numeric_outcome.json"))
	require.NoError(t, err)
	fromYAML, err := document.DecodeYAML(readTestdata(t, "numeric_outcome.yaml"))
	require.NoError(t, err)

	d1, err := document.Digest(fromJSON)
	require.NoError(t, err)
	d2, err := document.Digest(fromYAML)
	require.NoError(t, err)
	assert.Equal(t, d1, d2)
}
