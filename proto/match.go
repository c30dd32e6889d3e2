package proto

import (
	"path"
	"strings"

	"github.com/coreos/go-semver/semver"
	"github.com/libp2p/go-libp2p/core/protocol"
)

// MatchFunc consumes the leading component(s) of a protocol path,
// returning the unconsumed tail and whether the head was accepted.
// Matchers compose with Then, allowing a stream path to be checked
// segment by segment.
type MatchFunc func(string) (string, bool)

// Match reports whether the full matcher chain accepts id.
func (f MatchFunc) Match(id protocol.ID) bool {
	_, ok := f(string(id))
	return ok
}

// Then returns a matcher that applies f, and, if it accepts, applies
// next to the remaining tail.
func (f MatchFunc) Then(next MatchFunc) MatchFunc {
	if f == nil {
		return next
	}

	return match(func(s string) (_ string, ok bool) {
		if s, ok = f(s); ok {
			s, ok = match(next)(s)
		}

		return s, ok
	})
}

// Match chains the supplied matchers in order.
func Match(ms ...MatchFunc) (f MatchFunc) {
	for _, next := range ms {
		f = f.Then(next)
	}

	return
}

// Exactly matches a path whose leading component equals id.
func Exactly[ID ~string](id ID) MatchFunc {
	id = clean(id)
	return match(func(proto string) (string, bool) {
		head, tail := pop(ID(proto))
		return string(tail), head == id
	})
}

// Prefix matches a path beginning with the supplied prefix.
func Prefix(prefix protocol.ID) MatchFunc {
	p := clean(string(prefix))
	return match(func(s string) (string, bool) {
		trimmed := strings.TrimPrefix(s, p)
		return trimmed, trimmed != s
	})
}

// Suffix matches a path ending with the supplied suffix.
func Suffix(suffix protocol.ID) MatchFunc {
	sx := clean(string(suffix))
	return match(func(s string) (string, bool) {
		trimmed := strings.TrimSuffix(s, sx)
		return trimmed, trimmed != s
	})
}

// SemVer returns a function that compares the leading path component
// with the supplied semantic version string.  It returns true iff
// the major version numbers are identical.
//
// SemVer is compliant with the Semantic Versioning 2.0.0 spec.
// https://semver.org/
func SemVer(version string) MatchFunc {
	v := semver.New(string(clean(version)))

	return match(func(s string) (string, bool) {
		head, tail := pop(s)

		sv, err := semver.NewVersion(head)
		if err != nil {
			return s, false
		}

		return tail, v.Major == sv.Major
	})
}

func clean[ID ~string](id ID) ID {
	return ID(strings.TrimLeft(path.Clean(string(id)), "/."))
}

func match(f func(string) (string, bool)) MatchFunc {
	return func(s string) (string, bool) {
		return f(clean(s))
	}
}

// pop splits off the leading path component.
func pop[ID ~string](id ID) (head, tail ID) {
	h, t, _ := strings.Cut(string(clean(id)), sep)
	return ID(h), ID(t)
}
