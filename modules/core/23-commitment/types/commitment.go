package types

// SubModuleName defines the commitment submodule name.
const SubModuleName = "commitment"

// defaultPrefix is the protocol-wide commitment prefix under which the
// counterparty chain stores its commitments. Both sides of a connection must
// agree on it byte for byte.
var defaultPrefix = []byte("ibc")

// DefaultPrefix returns a fresh copy of the protocol-wide commitment prefix.
// Callers receive their own slice so the prefix itself stays immutable for
// the lifetime of the process.
func DefaultPrefix() []byte {
	prefix := make([]byte, len(defaultPrefix))
	copy(prefix, defaultPrefix)
	return prefix
}
