// Package proto models the identity of a mesh dialect.  A
// Descriptor binds a subnet to an encryption scheme and derives a
// stable fingerprint from both.  Peers exchange fingerprints during
// the handshake and compare them (never the raw fields) to decide
// whether a connection may proceed.
package proto

import (
	"crypto/sha256"
	"encoding/binary"

	"github.com/mr-tron/base58"

	"github.com/p2p-today/go-p2p"
)

// An ID is the base58-rendered fingerprint of a Descriptor.  Two
// peers speak the same dialect iff their IDs are byte-equal.
type ID string

// A Descriptor is an immutable record of one protocol configuration.
// Fields are stored verbatim: no normalization is applied, so
// "MySubnet" and "mysubnet" name distinct identities.
type Descriptor struct {
	subnet     string
	encryption string
}

// New returns the Descriptor for the supplied subnet and encryption
// label.  Either field may be empty.  Callers that restrict charset
// or length must validate before constructing; the descriptor itself
// accepts any bytes.
func New(subnet, encryption string) Descriptor {
	return Descriptor{
		subnet:     subnet,
		encryption: encryption,
	}
}

// Default is assumed when a node does not declare a descriptor.
var Default = New("", "Plaintext")

// Subnet returns the logical network namespace, exactly as supplied
// to New.
func (d Descriptor) Subnet() string { return d.subnet }

// Encryption returns the encryption scheme label, exactly as
// supplied to New.  It names a scheme; it does not implement one.
func (d Descriptor) Encryption() string { return d.encryption }

// Digest returns the descriptor's SHA-256 fingerprint.  The hash is
// taken over the uvarint length-prefixed concatenation of subnet,
// encryption and p2p.ProtocolVersion, in that order.  Length
// prefixes pin the field boundaries, so ("ab","c") and ("a","bc")
// hash differently.  The derivation is part of the wire contract:
// independently built peers must reproduce it bit-for-bit.
func (d Descriptor) Digest() [sha256.Size]byte {
	var (
		buf [binary.MaxVarintLen64]byte
		h   = sha256.New()
	)

	for _, field := range []string{d.subnet, d.encryption, p2p.ProtocolVersion} {
		n := binary.PutUvarint(buf[:], uint64(len(field)))
		h.Write(buf[:n])
		h.Write([]byte(field))
	}

	var digest [sha256.Size]byte
	h.Sum(digest[:0])
	return digest
}

// ID returns the fingerprint rendered as base58 (Bitcoin alphabet).
// It is recomputed on each call; the computation is pure, so
// concurrent callers need no coordination.
func (d Descriptor) ID() ID {
	digest := d.Digest()
	return ID(base58.Encode(digest[:]))
}

// String returns "subnet:encryption".  It is a human-readable symbol
// for logging; use ID for comparison.
func (d Descriptor) String() string {
	return d.subnet + ":" + d.encryption
}

// Compatible reports whether a and b describe the same dialect.  It
// compares fingerprints only.
func Compatible(a, b Descriptor) bool {
	return a.ID() == b.ID()
}
