package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateUUIDIsUnique(t *testing.T) {
	a := GenerateUUID()
	b := GenerateUUID()
	assert.NotEqual(t, a, b)
	assert.Len(t, a, 36)
}

func TestGenerateRequestIDHasPrefix(t *testing.T) {
	id := GenerateRequestID()
	assert.Regexp(t, `^req_[0-9a-f-]{36}$`, id)
}

func TestGenerateRefreshTokenLength(t *testing.T) {
	tok, err := GenerateRefreshToken()
	require.NoError(t, err)
	assert.Len(t, tok, 64)
}

func TestGenerateSecureTokenLength(t *testing.T) {
	assert.Len(t, GenerateSecureToken(), 32)
}

func TestRandomIntRespectsBound(t *testing.T) {
	for i := 0; i < 20; i++ {
		n := RandomInt(10)
		assert.GreaterOrEqual(t, n, 0)
		assert.Less(t, n, 10)
	}
}

func TestSanitizeStringEscapesAngleBrackets(t *testing.T) {
	assert.Equal(t, "&lt;script&gt;", SanitizeString("  <script>  "))
}

func TestMinIntMaxInt(t *testing.T) {
	assert.Equal(t, 2, MinInt(2, 5))
	assert.Equal(t, 5, MinInt(5, 2))
	assert.Equal(t, 5, MaxInt(2, 5))
	assert.Equal(t, 5, MaxInt(5, 2))
}

func TestPointerHelpers(t *testing.T) {
	s := StringPtr("x")
	require.NotNil(t, s)
	assert.Equal(t, "x", *s)

	i := IntPtr(7)
	require.NotNil(t, i)
	assert.Equal(t, 7, *i)

	b := BoolPtr(true)
	require.NotNil(t, b)
	assert.True(t, *b)
}
