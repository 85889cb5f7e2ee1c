package iso_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rdfkit/graphiso/iso"
)

func TestParseOptionsJSONC(t *testing.T) {
	data := []byte(`{
		// trial-branching ceiling
		"max_branches": 42,
	}`)

	opts, err := iso.ParseOptionsJSONC(data)
	require.NoError(t, err)
	assert.Equal(t, 42, opts.MaxBranches)
}

func TestParseOptionsJSONC_Empty(t *testing.T) {
	opts, err := iso.ParseOptionsJSONC([]byte(`{}`))
	require.NoError(t, err)
	assert.Equal(t, 0, opts.MaxBranches)
}

func TestParseOptionsJSONC_Invalid(t *testing.T) {
	_, err := iso.ParseOptionsJSONC([]byte(`not json`))
	assert.Error(t, err)
}

func TestWithMaxBranches_AndWithLogger(t *testing.T) {
	var opts iso.Options
	for _, opt := range []iso.Option{iso.WithMaxBranches(7), iso.WithLogger(nil)} {
		opt(&opts)
	}
	assert.Equal(t, 7, opts.MaxBranches)
}
