package proto

import (
	"github.com/libp2p/go-libp2p/core/protocol"

	"github.com/p2p-today/go-p2p"
)

// Root returns the stream path for the supplied descriptor:
// /p2p/<version>/<fingerprint>.
func Root(d Descriptor) protocol.ID {
	return Join("/p2p", protocol.ID(p2p.Version), protocol.ID(d.ID()))
}

// Namespace returns the subprotocol family for the supplied
// descriptor.  A node speaking d registers a stream handler for
// each member.
func Namespace(d Descriptor) []protocol.ID {
	root := Root(d)
	return []protocol.ID{
		root + "/packed",
		root,
	}
}

// NewMatcher returns a stream matcher for a protocol.ID that
// matches the pattern:  /p2p/<compatible version>/<fingerprint>
func NewMatcher(d Descriptor) MatchFunc {
	return Match(
		Exactly("p2p"), SemVer(p2p.Version), Exactly(string(d.ID())),
	)
}
