package proto_test

import (
	"crypto/sha256"
	"testing"

	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/p2p-today/go-p2p/proto"
)

func TestDescriptor(t *testing.T) {
	t.Parallel()
	t.Helper()

	t.Run("Deterministic", func(t *testing.T) {
		t.Parallel()

		for _, tt := range []struct {
			name               string
			subnet, encryption string
		}{
			{name: "Mainnet", subnet: "mainnet", encryption: "aes-256-gcm"},
			{name: "EmptySubnet", encryption: "Plaintext"},
			{name: "EmptyEncryption", subnet: "testnet"},
			{name: "BothEmpty"},
			{name: "Binary", subnet: "\x00\x01\xff", encryption: "\xfe\x00"},
		} {
			t.Run(tt.name, func(t *testing.T) {
				a := proto.New(tt.subnet, tt.encryption)
				b := proto.New(tt.subnet, tt.encryption)

				assert.Equal(t, a.ID(), b.ID(),
					"identical fields should yield identical fingerprints")
				assert.Equal(t, a.ID(), a.ID(),
					"repeated derivation should be stable")
			})
		}
	})

	t.Run("BoundaryShift", func(t *testing.T) {
		t.Parallel()

		// ("ab","c") and ("a","bc") concatenate to the same bytes;
		// the length prefixes must keep them apart.
		a := proto.New("ab", "c")
		b := proto.New("a", "bc")
		assert.NotEqual(t, a.ID(), b.ID(),
			"field-boundary shift should change the fingerprint")
	})

	t.Run("Sensitivity", func(t *testing.T) {
		t.Parallel()

		base := proto.New("net", "aes")
		for _, other := range []proto.Descriptor{
			proto.New("net", "aeS"),
			proto.New("neT", "aes"),
			proto.New("net", "aes\x00"),
			proto.New("net ", "aes"),
		} {
			assert.NotEqual(t, base.ID(), other.ID(),
				"%s should not collide with %s", other, base)
		}
	})

	t.Run("Immutable", func(t *testing.T) {
		t.Parallel()

		d := proto.New("MySubnet", "rsa-pkcs1")
		for i := 0; i < 3; i++ {
			_ = d.ID()
			assert.Equal(t, "MySubnet", d.Subnet())
			assert.Equal(t, "rsa-pkcs1", d.Encryption())
		}
	})

	t.Run("FixedLength", func(t *testing.T) {
		t.Parallel()

		d := proto.New("", "")
		digest := d.Digest()
		require.Len(t, digest[:], sha256.Size)

		raw, err := base58.Decode(string(d.ID()))
		require.NoError(t, err)
		assert.Equal(t, digest[:], raw,
			"fingerprint should decode to the raw digest")
	})
}

func TestCompatible(t *testing.T) {
	t.Parallel()

	a := proto.New("mainnet", "aes-256-gcm")
	b := proto.New("mainnet", "aes-256-gcm")
	c := proto.New("testnet", "aes-256-gcm")

	assert.True(t, proto.Compatible(a, b),
		"peers with equal descriptors should be compatible")
	assert.False(t, proto.Compatible(a, c),
		"peers on different subnets should be refused")

	assert.Equal(t, a.ID(), b.ID())
	assert.NotEqual(t, a.ID(), c.ID())
	assert.Equal(t, "mainnet", a.Subnet())
	assert.Equal(t, "aes-256-gcm", a.Encryption())
}

func TestDefault(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", proto.Default.Subnet())
	assert.Equal(t, "Plaintext", proto.Default.Encryption())
	assert.True(t, proto.Compatible(proto.Default, proto.New("", "Plaintext")))
}

func TestDescriptor_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "mainnet:aes-256-gcm",
		proto.New("mainnet", "aes-256-gcm").String())
}
