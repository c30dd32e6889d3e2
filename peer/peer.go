// Package peer derives node identifiers for the mesh.  A node's ID
// binds its outward-facing address to the dialect it speaks, salted
// so that restarting a node yields a fresh identity.
package peer

import (
	"crypto/sha512"
	"encoding/binary"

	"github.com/google/uuid"
	"github.com/mr-tron/base58"

	"github.com/p2p-today/go-p2p/proto"
)

// An ID identifies one node: the base58-rendered SHA-384 digest of
// its address, protocol fingerprint, and a per-process salt.
type ID string

// New derives an identifier for a node reachable at addr and
// speaking d.  The derivation is salted with a random UUID, so each
// call yields a distinct ID: it identifies a process, not an
// address.
func New(addr string, d proto.Descriptor) ID {
	var (
		buf [binary.MaxVarintLen64]byte
		h   = sha512.New384()
	)

	for _, field := range []string{addr, string(d.ID()), uuid.NewString()} {
		n := binary.PutUvarint(buf[:], uint64(len(field)))
		h.Write(buf[:n])
		h.Write([]byte(field))
	}

	return ID(base58.Encode(h.Sum(nil)))
}

// Valid reports whether id decodes as base58 to a digest of the
// expected size.
func (id ID) Valid() bool {
	raw, err := base58.Decode(string(id))
	return err == nil && len(raw) == sha512.Size384
}

func (id ID) String() string { return string(id) }
