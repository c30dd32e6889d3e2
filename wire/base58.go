package wire

import (
	"errors"
	"math"
)

// The dialect renders integers (timestamps, mostly) as big-endian
// base58 with the Bitcoin alphabet.  This differs from base58 over a
// byte string: the value is treated as one unsigned integer, so
// leading zero bytes carry no digits.
const alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

var (
	// ErrBase58 is returned when decoding input containing a byte
	// outside the Bitcoin base58 alphabet.
	ErrBase58 = errors.New("wire: invalid base58 digit")

	// ErrBase58Range is returned when the decoded value does not
	// fit in a uint64.
	ErrBase58Range = errors.New("wire: base58 value overflows uint64")
)

// ToBase58 renders i as a base58 string.  Zero renders as "1", the
// alphabet's zero digit.
func ToBase58(i uint64) []byte {
	if i == 0 {
		return []byte{alphabet[0]}
	}

	var digits []byte
	for ; i > 0; i /= 58 {
		digits = append(digits, alphabet[i%58])
	}

	for l, r := 0, len(digits)-1; l < r; l, r = l+1, r-1 {
		digits[l], digits[r] = digits[r], digits[l]
	}

	return digits
}

// FromBase58 parses a base58-rendered unsigned integer.
func FromBase58(b []byte) (uint64, error) {
	var i uint64
	for _, c := range b {
		d := digit(c)
		if d < 0 {
			return 0, ErrBase58
		}

		if i > (math.MaxUint64-uint64(d))/58 {
			return 0, ErrBase58Range
		}

		i = i*58 + uint64(d)
	}

	return i, nil
}

func digit(c byte) int {
	for i := 0; i < len(alphabet); i++ {
		if alphabet[i] == c {
			return i
		}
	}

	return -1
}
