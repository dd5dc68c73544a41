package types

import (
	"math/big"

	errorsmod "cosmossdk.io/errors"
	"github.com/ethereum/go-ethereum/rlp"

	ibcerrors "github.com/synapseweb3/ibc-objects/modules/core/errors"
	"github.com/synapseweb3/ibc-objects/modules/core/exported"
)

var _ exported.Object = (*Proofs)(nil)

// ObjectProof is the opaque proof material produced by the proof-verification
// subsystem. It is carried verbatim as a single raw item inside a proof
// bundle; this module never interprets its contents.
type ObjectProof = rlp.RawValue

// emptyObjectProof is the canonical placeholder for a bundle without proof
// material: an empty list item.
var emptyObjectProof = ObjectProof{0xc0}

// Proofs groups the height at which a proof was generated with the raw proof
// material for the object and the client.
type Proofs struct {
	Height      *big.Int
	ObjectProof ObjectProof
	ClientProof []byte
}

// NewProofs constructs a proof bundle. A nil objectProof is replaced with the
// canonical empty placeholder so that the bundle always encodes to a
// well-formed item sequence.
func NewProofs(height *big.Int, objectProof ObjectProof, clientProof []byte) Proofs {
	if len(objectProof) == 0 {
		objectProof = emptyObjectProof
	}
	if height == nil {
		height = new(big.Int)
	}
	return Proofs{
		Height:      height,
		ObjectProof: objectProof,
		ClientProof: clientProof,
	}
}

// DefaultProofs returns the well-known empty proof bundle: height zero, the
// empty proof placeholder and no client proof.
func DefaultProofs() Proofs {
	return NewProofs(new(big.Int), nil, nil)
}

// Encode returns the canonical encoding of the proof bundle.
func (p Proofs) Encode() []byte {
	bz, err := rlp.EncodeToBytes(p)
	if err != nil {
		panic(err)
	}
	return bz
}

// DecodeProofs parses the canonical encoding produced by Encode. Malformed
// input is rejected with ErrSerde.
func DecodeProofs(bz []byte) (Proofs, error) {
	var proofs Proofs
	if err := rlp.DecodeBytes(bz, &proofs); err != nil {
		return Proofs{}, errorsmod.Wrap(ibcerrors.ErrSerde, err.Error())
	}
	return proofs, nil
}
