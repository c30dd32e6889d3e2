// Package wire implements the message structures of the 0.5 mesh
// dialect: flag bytes, length-prefixed packet framing, compression
// negotiation, and the SHA-384 based message identifiers that peers
// use to deduplicate broadcasts.
//
// The package builds and parses messages; it does not move them.
// Sockets, handshake sequencing and routing belong to the layers
// above.
package wire

import "fmt"

// A Flag is a single reserved byte carried in the type or subtype
// slot of a message.  All values below 0x20 are reserved by the
// dialect and must not be used as application message types.
type Flag byte

// Reserved is the exclusive upper bound of the reserved flag range.
const Reserved Flag = 0x20

// Main flags, carried in the leading packet of every message.
const (
	Broadcast   Flag = 0x00
	Renegotiate Flag = 0x01
	Whisper     Flag = 0x02
	Ping        Flag = 0x03
	Pong        Flag = 0x04
)

// Sub-flags, carried in the first payload packet.  Broadcast,
// Whisper, Ping and Pong double as sub-flags with the same values.
const (
	Compression Flag = 0x01
	Handshake   Flag = 0x05
	Notify      Flag = 0x06
	Peers       Flag = 0x07
	Request     Flag = 0x08
	Resend      Flag = 0x09
	Response    Flag = 0x0A
	Store       Flag = 0x0B
	Retrieve    Flag = 0x0C
)

// Compression methods.  BZ2 and LZMA are reserved by the dialect but
// not implemented by this build; see Methods for what is.
const (
	BZ2  Flag = 0x10
	Gzip Flag = 0x11
	LZMA Flag = 0x12
	Zlib Flag = 0x13
)

// Bytes returns the flag as a one-byte packet.
func (f Flag) Bytes() []byte { return []byte{byte(f)} }

// String returns the dialect's name for the flag.  Sub-flags that
// share a value with a main flag render under the main flag's name.
func (f Flag) String() string {
	switch f {
	case Broadcast:
		return "broadcast"
	case Renegotiate:
		return "renegotiate"
	case Whisper:
		return "whisper"
	case Ping:
		return "ping"
	case Pong:
		return "pong"
	case Handshake:
		return "handshake"
	case Notify:
		return "notify"
	case Peers:
		return "peers"
	case Request:
		return "request"
	case Resend:
		return "resend"
	case Response:
		return "response"
	case Store:
		return "store"
	case Retrieve:
		return "retrieve"
	case BZ2:
		return "bz2"
	case Gzip:
		return "gzip"
	case LZMA:
		return "lzma"
	case Zlib:
		return "zlib"
	}

	return fmt.Sprintf("flag(%#02x)", byte(f))
}
