package document_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jayendramadaram/radpool-dlc/contract"
	"github.com/jayendramadaram/radpool-dlc/document"
)

func TestValidateBatch(t *testing.T) {
	docs := [][]byte{
		readTestdata(t, "numeric_outcome.json"),
		[]byte(`{"fee_rate":1,"offer_collateral":1,"accept_collateral":1,"contract_infos":[]}`),
		readTestdata(t, "enum_outcome.json"),
		[]byte(`not json`),
	}

	results, err := document.ValidateBatch(context.Background(), docs, document.WithConcurrency(2))
	require.NoError(t, err)
	require.Len(t, results, len(docs))

	assert.NoError(t, results[0].Err)
	assert.Equal(t, contract.KindNumerical, results[0].Contract.ContractInfos[0].Descriptor.Kind())
	assert.NotEmpty(t, results[0].Digest)

	assert.ErrorIs(t, results[1].Err, contract.ErrMissingContractInfo)
	assert.Empty(t, results[1].Digest)

	assert.NoError(t, results[2].Err)
	assert.NotEqual(t, results[0].Digest, results[2].Digest)

	assert.ErrorIs(t, results[3].Err, document.ErrMalformed)
}

func TestValidateBatch_DigestMatchesDigest(t *testing.T) {
	raw := readTestdata(t, "enum_outcome.json")
	results, err := document.ValidateBatch(context.Background(), [][]byte{raw, raw, raw})
	require.NoError(t, err)

	c, err := document.DecodeJSON(raw)
	require.NoError(t, err)
	want, err := document.Digest(c)
	require.NoError(t, err)
	for i, r := range results {
		require.NoError(t, r.Err, "doc %d", i)
		assert.Equal(t, want, r.Digest, "doc %d", i)
	}
}

func TestValidateBatch_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	docs := [][]byte{readTestdata(t, "enum_outcome.json"), readTestdata(t, "enum_outcome.json")}
	results, err := document.ValidateBatch(ctx, docs, document.WithConcurrency(1))
	require.ErrorIs(t, err, context.Canceled)
	require.Len(t, results, len(docs))
	for _, r := range results {
		assert.ErrorIs(t, r.Err, context.Canceled)
	}
}

func TestValidateBatch_Empty(t *testing.T) {
	results, err := document.ValidateBatch(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestValidateFiles(t *testing.T) {
	paths := []string{
		filepath.Join("testdata", "numeric_outcome.json"),
		filepath.Join("testdata", "numeric_outcome.yaml"),
		filepath.Join("testdata", "enum_outcome.json"),
		filepath.Join("testdata", "terms.toml"),
	}
	results, err := document.ValidateFiles(context.Background(), paths)
	require.NoError(t, err)
	require.Len(t, results, len(paths))

	for i, r := range results {
		assert.Equal(t, paths[i], r.Name)
	}
	require.NoError(t, results[0].Err)
	require.NoError(t, results[1].Err)
	assert.Equal(t, results[0].Digest, results[1].Digest)
	require.NoError(t, results[2].Err)
	assert.ErrorIs(t, results[3].Err, document.ErrUnsupportedFormat)
}

func TestWithConcurrency_Panics(t *testing.T) {
	assert.Panics(t, func() { document.WithConcurrency(0) })
	assert.NotPanics(t, func() { document.WithConcurrency(1) })
}
