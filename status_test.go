package share_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/share"
)

func TestStatusCodes(t *testing.T) {
	t.Parallel()

	codes := share.StatusCodes()
	require.Len(t, codes, 60)
	assert.Equal(t, share.StatusDefault, codes[0])
	assert.Equal(t, share.StatusNetworkAuthenticationRequired, codes[len(codes)-1])
	assert.IsIncreasing(t, codes)

	// Callers get their own copy.
	codes[0] = 999
	assert.Equal(t, share.StatusDefault, share.StatusCodes()[0])
}

func TestStatusCode_Valid(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		code   share.StatusCode
		expect bool
	}{
		"default":      {code: share.StatusDefault, expect: true},
		"100":          {code: share.StatusContinue, expect: true},
		"200":          {code: share.StatusOK, expect: true},
		"306":          {code: share.StatusSwitchProxy, expect: true},
		"418":          {code: share.StatusTeapot, expect: true},
		"511":          {code: share.StatusNetworkAuthenticationRequired, expect: true},
		"101 no body":  {code: 101, expect: false},
		"204 no body":  {code: 204, expect: false},
		"304 no body":  {code: 304, expect: false},
		"427 unused":   {code: 427, expect: false},
		"509 unused":   {code: 509, expect: false},
		"zero":         {code: 0, expect: false},
		"out of range": {code: 999, expect: false},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expect, tc.code.Valid())
		})
	}
}

func TestStatusCode_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "default", share.StatusDefault.String())
	assert.Equal(t, "404", share.StatusNotFound.String())
	assert.Equal(t, "Default", share.StatusDefault.Text())
	assert.Equal(t, "Not Found", share.StatusNotFound.Text())
	assert.Equal(t, "Switch Proxy", share.StatusSwitchProxy.Text())
}

func TestParseStatusCode(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		in     string
		expect share.StatusCode
		err    bool
	}{
		"default":      {in: "default", expect: share.StatusDefault},
		"bad request":  {in: "400", expect: share.StatusBadRequest},
		"server":       {in: "503", expect: share.StatusServiceUnavailable},
		"not in set":   {in: "204", err: true},
		"too large":    {in: "999", err: true},
		"minus one":    {in: "-1", expect: share.StatusDefault},
		"word":         {in: "abc", err: true},
		"empty":        {in: "", err: true},
		"upper":        {in: "DEFAULT", err: true},
		"leading zero": {in: "0400", err: true},
		"plus sign":    {in: "+400", err: true},
		"minus zero":   {in: "-01", err: true},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := share.ParseStatusCode(tc.in)
			if tc.err {
				require.ErrorIs(t, err, share.ErrInvalidStatusCode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expect, got)
		})
	}
}

func TestParseStatusCode_roundTrip(t *testing.T) {
	t.Parallel()

	for _, code := range share.StatusCodes() {
		got, err := share.ParseStatusCode(code.String())
		require.NoError(t, err, code)
		assert.Equal(t, code, got)
	}
}

func TestStatusCode_jsonMapKeys(t *testing.T) {
	t.Parallel()

	in := map[share.StatusCode]string{
		share.StatusDefault:    "fallback",
		share.StatusBadRequest: "bad",
	}

	b, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"default":"fallback","400":"bad"}`, string(b))

	var out map[share.StatusCode]string
	require.NoError(t, json.Unmarshal(b, &out))
	assert.Equal(t, in, out)

	err = json.Unmarshal([]byte(`{"999":"nope"}`), &out)
	require.ErrorIs(t, err, share.ErrInvalidStatusCode)
}
