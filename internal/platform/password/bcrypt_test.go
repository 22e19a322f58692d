package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// TestNewHasher_Cost は範囲外のコストがデフォルト値に置き換えられることを検証します。
func TestNewHasher_Cost(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cost int
		want int
	}{
		{"min cost", bcrypt.MinCost, bcrypt.MinCost},
		{"default cost", bcrypt.DefaultCost, bcrypt.DefaultCost},
		{"too low", 1, bcrypt.DefaultCost},
		{"too high", bcrypt.MaxCost + 1, bcrypt.DefaultCost},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, NewHasher(tt.cost).cost)
		})
	}
}

// TestHasher_HashAndVerify はハッシュ化したパスワードが検証に成功することを検証します。
func TestHasher_HashAndVerify(t *testing.T) {
	t.Parallel()

	h := NewHasher(bcrypt.MinCost)

	digest, err := h.Hash("password123")
	require.NoError(t, err)

	assert.NotEqual(t, "password123", digest, "digest must not be the plaintext")
	assert.True(t, strings.HasPrefix(digest, "$2a$"), "expected a bcrypt digest")
	assert.True(t, h.Verify("password123", digest))
	assert.False(t, h.Verify("password124", digest))
	assert.False(t, h.Verify("", digest))
}

// TestHasher_Hash_SaltIsRandom は同じ平文でも毎回異なるダイジェストになることを検証します。
func TestHasher_Hash_SaltIsRandom(t *testing.T) {
	t.Parallel()

	h := NewHasher(bcrypt.MinCost)

	d1, err := h.Hash("password123")
	require.NoError(t, err)
	d2, err := h.Hash("password123")
	require.NoError(t, err)

	assert.NotEqual(t, d1, d2)
	assert.True(t, h.Verify("password123", d1))
	assert.True(t, h.Verify("password123", d2))
}

// TestHasher_Verify_MalformedDigest は不正なダイジェストでもパニックせずfalseを返すことを検証します。
func TestHasher_Verify_MalformedDigest(t *testing.T) {
	t.Parallel()

	h := &Hasher{}

	for _, digest := range []string{"", "not-a-hash", "$2a$10$short", "password123"} {
		assert.False(t, h.Verify("password123", digest), "digest %q", digest)
	}
}

// TestHasher_ZeroValue はゼロ値のHasherがデフォルトコストで動作することを検証します。
func TestHasher_ZeroValue(t *testing.T) {
	t.Parallel()

	var h Hasher
	digest, err := h.Hash("pw")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(digest))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
