// internal/nodeid/address_test.go
package nodeid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddress_String(t *testing.T) {
	testCases := []struct {
		name        string
		addr        *Address
		expectedStr string
	}{
		{
			name:        "simple address",
			addr:        &Address{Type: "restore", Name: "posts"},
			expectedStr: "restore.posts",
		},
		{
			name:        "nil address",
			addr:        nil,
			expectedStr: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expectedStr, tc.addr.String())
		})
	}
}

func TestAddress_RoundTrip(t *testing.T) {
	addr, err := New("strip_lines", "posts")
	require.NoError(t, err)

	parsed, err := Parse(addr.String())
	require.NoError(t, err)
	assert.True(t, addr.Equal(parsed))
}

func TestAddress_Equal(t *testing.T) {
	a := &Address{Type: "restore", Name: "a"}
	b := &Address{Type: "restore", Name: "b"}
	var nilAddr *Address

	assert.True(t, a.Equal(&Address{Type: "restore", Name: "a"}))
	assert.False(t, a.Equal(b))
	assert.False(t, a.Equal(nil))
	assert.True(t, nilAddr.Equal(nil))
}

func TestNew_Invalid(t *testing.T) {
	_, err := New("", "posts")
	assert.ErrorContains(t, err, "step type cannot be empty")

	_, err = New("restore", "a.b")
	assert.ErrorContains(t, err, "invalid step name")
}
