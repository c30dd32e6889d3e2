package wire

import (
	"bytes"
	"crypto/sha512"
	"encoding/binary"
	"errors"
	"math"
	"slices"
	"time"

	"github.com/mr-tron/base58"
)

var (
	// ErrSizeHeader is returned when the leading 4-byte header does
	// not match the body length.
	ErrSizeHeader = errors.New("wire: size header does not match body")

	// ErrTruncated is returned when a packet header points past the
	// end of the body.
	ErrTruncated = errors.New("wire: truncated packet")

	// ErrMalformed is returned when the body holds fewer packets
	// than the dialect's routing header requires.
	ErrMalformed = errors.New("wire: too few packets")

	// ErrChecksum is returned when the embedded message ID does not
	// match the ID recomputed from the payload.
	ErrChecksum = errors.New("wire: message ID failed verification")

	// ErrOversize is returned when a packet or body is too large
	// for its 4-byte length header.
	ErrOversize = errors.New("wire: length exceeds header range")
)

// headerLen is the size of every length header, in bytes.
const headerLen = 4

// maxLen is the largest value a length header can carry.
var maxLen uint64 = math.MaxUint32

// minPackets is the routing header: type, sender, ID, timestamp.
const minPackets = 4

// A Message is one protocol-defined unit: a type flag, the sender's
// node ID, and a list of payload packets, stamped with the UTC time
// of construction.  Its ID doubles as a checksum on the wire and as
// the deduplication key for broadcast flooding.
type Message struct {
	Type    []byte
	Sender  []byte
	Payload [][]byte

	// Time is the construction timestamp in UTC seconds.
	Time uint64

	// Compression lists the methods this message may be rendered
	// under, as negotiated with the receiving peer.  Empty means
	// plaintext.
	Compression []Flag
}

// New returns a message of the supplied type and payload, stamped
// with the current time.
func New(msgType, sender []byte, payload ...[]byte) Message {
	return Message{
		Type:    msgType,
		Sender:  sender,
		Payload: payload,
		Time:    uint64(time.Now().UTC().Unix()),
	}
}

// Time58 returns the timestamp in the dialect's base58 rendering.
func (m Message) Time58() []byte {
	return ToBase58(m.Time)
}

// ID returns the message identifier: the base58-rendered SHA-384
// digest of the joined payload followed by the base58 timestamp.
func (m Message) ID() []byte {
	h := sha512.New384()
	for _, packet := range m.Payload {
		h.Write(packet)
	}
	h.Write(m.Time58())

	return []byte(base58.Encode(h.Sum(nil)))
}

// Packets returns the full packet sequence, excluding length
// headers: [type, sender, ID, timestamp, payload...].
func (m Message) Packets() [][]byte {
	packets := make([][]byte, 0, minPackets+len(m.Payload))
	packets = append(packets, m.Type, m.Sender, m.ID(), m.Time58())
	return append(packets, m.Payload...)
}

// method returns the first implemented compression method the
// message is allowed to use.
func (m Message) method() (Flag, bool) {
	for _, method := range Methods {
		if slices.Contains(m.Compression, method) {
			return method, true
		}
	}

	return 0, false
}

// Marshal renders the message in wire form.  Each packet is prefixed
// with a 4-byte big-endian length; the packet sequence is compressed
// if a negotiated method is available; the result is prefixed with a
// 4-byte header carrying the body length.
func (m Message) Marshal() ([]byte, error) {
	var body bytes.Buffer
	var header [headerLen]byte

	for _, packet := range m.Packets() {
		if uint64(len(packet)) > maxLen {
			return nil, ErrOversize
		}

		binary.BigEndian.PutUint32(header[:], uint32(len(packet)))
		body.Write(header[:])
		body.Write(packet)
	}

	raw := body.Bytes()
	if method, ok := m.method(); ok {
		var err error
		if raw, err = Compress(raw, method); err != nil {
			return nil, err
		}
	}

	if uint64(len(raw)) > maxLen {
		return nil, ErrOversize
	}

	out := make([]byte, headerLen, headerLen+len(raw))
	binary.BigEndian.PutUint32(out, uint32(len(raw)))
	return append(out, raw...), nil
}

// Parse reconstructs a message from its wire form, validating the
// size header and the embedded message ID.  accept lists the
// compression methods the body may be under, per the handshake with
// the sending peer.
func Parse(b []byte, accept ...Flag) (Message, error) {
	if len(b) < headerLen {
		return Message{}, ErrSizeHeader
	}

	if binary.BigEndian.Uint32(b) != uint32(len(b)-headerLen) {
		return Message{}, ErrSizeHeader
	}

	return ParseSizeless(b[headerLen:], accept...)
}

// ParseSizeless is Parse for a body whose size header has already
// been consumed by the framing layer.
func ParseSizeless(b []byte, accept ...Flag) (Message, error) {
	b = expand(b, accept)

	packets, err := split(b)
	if err != nil {
		return Message{}, err
	}

	if len(packets) < minPackets {
		return Message{}, ErrMalformed
	}

	timestamp, err := FromBase58(packets[3])
	if err != nil {
		return Message{}, err
	}

	msg := Message{
		Type:        packets[0],
		Sender:      packets[1],
		Payload:     packets[minPackets:],
		Time:        timestamp,
		Compression: accept,
	}

	if !bytes.Equal(packets[2], msg.ID()) {
		return Message{}, ErrChecksum
	}

	return msg, nil
}

// expand tries the accepted compression methods in preference order,
// returning the first successful expansion.  A body that expands
// under no method is assumed to be plaintext.
func expand(b []byte, accept []Flag) []byte {
	for _, method := range Methods {
		if !slices.Contains(accept, method) {
			continue
		}

		if raw, err := Decompress(b, method); err == nil {
			return raw
		}
	}

	return b
}

// split cuts the body into its length-prefixed packets.
func split(b []byte) ([][]byte, error) {
	var packets [][]byte
	for len(b) > 0 {
		if len(b) < headerLen {
			return nil, ErrTruncated
		}

		n := int(binary.BigEndian.Uint32(b))
		b = b[headerLen:]
		if n > len(b) {
			return nil, ErrTruncated
		}

		packets = append(packets, b[:n])
		b = b[n:]
	}

	return packets, nil
}
