package types_test

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/stretchr/testify/require"

	"github.com/synapseweb3/ibc-objects/modules/core/23-commitment/types"
	ibcerrors "github.com/synapseweb3/ibc-objects/modules/core/errors"
)

func TestDefaultPrefix(t *testing.T) {
	require.Equal(t, []byte("ibc"), types.DefaultPrefix())

	// mutating the returned slice must not affect later callers
	prefix := types.DefaultPrefix()
	prefix[0] = 'x'
	require.Equal(t, []byte("ibc"), types.DefaultPrefix())
}

func TestProofsEncodeDecode(t *testing.T) {
	// the object proof is opaque raw material produced elsewhere
	objectProof, err := rlp.EncodeToBytes([][]byte{[]byte("node"), []byte("leaf")})
	require.NoError(t, err)

	proofs := types.NewProofs(big.NewInt(12345), types.ObjectProof(objectProof), []byte("client proof"))

	decoded, err := types.DecodeProofs(proofs.Encode())
	require.NoError(t, err)
	require.Equal(t, proofs, decoded)
}

func TestProofsLargeHeight(t *testing.T) {
	// heights are 256-bit values; well beyond uint64 must round-trip
	height, ok := new(big.Int).SetString("ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff", 16)
	require.True(t, ok)

	proofs := types.NewProofs(height, nil, []byte{1})

	decoded, err := types.DecodeProofs(proofs.Encode())
	require.NoError(t, err)
	require.Zero(t, height.Cmp(decoded.Height))
}

func TestDefaultProofs(t *testing.T) {
	proofs := types.DefaultProofs()
	require.Zero(t, proofs.Height.Sign())
	require.Equal(t, types.ObjectProof{0xc0}, proofs.ObjectProof)
	require.Empty(t, proofs.ClientProof)

	decoded, err := types.DecodeProofs(proofs.Encode())
	require.NoError(t, err)
	require.Zero(t, decoded.Height.Sign())
	require.Equal(t, proofs.ObjectProof, decoded.ObjectProof)
	require.Empty(t, decoded.ClientProof)
}

func TestDecodeProofsMalformed(t *testing.T) {
	bz := types.DefaultProofs().Encode()

	_, err := types.DecodeProofs(bz[:len(bz)-1])
	require.ErrorIs(t, err, ibcerrors.ErrSerde)

	_, err = types.DecodeProofs(nil)
	require.ErrorIs(t, err, ibcerrors.ErrSerde)

	corrupted := append([]byte{}, bz...)
	corrupted[0] = 0x80
	_, err = types.DecodeProofs(corrupted)
	require.ErrorIs(t, err, ibcerrors.ErrSerde)
}
