package host

import (
	"github.com/ethereum/go-ethereum/common"
)

// HexIdentifier renders a 32-byte hash as the lowercase hex string used as
// the identifier form for clients and ports on the host chain. The rendering
// carries no 0x prefix so that identifiers stay within the allowed
// identifier character set.
func HexIdentifier(hash [32]byte) string {
	return common.Bytes2Hex(hash[:])
}

// DefaultHexIdentifier returns the canonical all-zero identifier, the
// rendering of 32 zero bytes. It populates client and port fields of
// well-known empty records before the handshake assigns real identifiers.
func DefaultHexIdentifier() string {
	return HexIdentifier([32]byte{})
}
