package share_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/share"
)

func TestSelection_Duplicates(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		sel    share.Selection
		expect []share.StatusCode
	}{
		"nil": {
			sel:    nil,
			expect: nil,
		},
		"unique": {
			sel:    share.Selection{400, 401, 500},
			expect: nil,
		},
		"pair": {
			sel:    share.Selection{400, 400},
			expect: []share.StatusCode{400},
		},
		"reported once": {
			sel:    share.Selection{400, 400, 400},
			expect: []share.StatusCode{400},
		},
		"first repeat order": {
			sel:    share.Selection{500, 400, 400, 500, 400},
			expect: []share.StatusCode{400, 500},
		},
		"default": {
			sel:    share.Selection{share.StatusDefault, 404, share.StatusDefault},
			expect: []share.StatusCode{share.StatusDefault},
		},
		"unknown codes count too": {
			sel:    share.Selection{999, 999},
			expect: []share.StatusCode{999},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expect, tc.sel.Duplicates())
		})
	}
}

func TestSelection_Validate(t *testing.T) {
	t.Parallel()

	require.NoError(t, share.Selection{}.Validate())
	require.NoError(t, share.Selection{400, 500}.Validate())

	err := share.Selection{400, 500, 400, share.StatusDefault, share.StatusDefault}.Validate()
	require.ErrorIs(t, err, share.ErrDuplicateStatusCode)

	var selErr *share.SelectionError
	require.ErrorAs(t, err, &selErr)
	assert.Equal(t, []share.StatusCode{400, share.StatusDefault}, selErr.Duplicates)
	assert.EqualError(t, err, "invalid selection: duplicate status code: 400, default")
}
