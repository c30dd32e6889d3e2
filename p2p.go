// Package p2p carries the version constants for the p2p.today mesh
// dialect.  The identity layer itself lives in the protocol, wire and
// peer subpackages.
package p2p

const (
	// ProtocolVersion is the revision of the wire dialect.  It is
	// folded into every protocol fingerprint, so bumping it fences
	// off peers that speak an older dialect.
	ProtocolVersion = "0.5"

	// NodeVersion tracks node policy: behavior a node may change
	// without breaking the wire dialect.
	NodeVersion = "551"

	// Version is the full version advertised in stream paths.
	Version = ProtocolVersion + "." + NodeVersion
)
