package errors

import (
	errorsmod "cosmossdk.io/errors"

	"github.com/synapseweb3/ibc-objects/modules/core/exported"
)

const codespace = exported.ModuleName

// Verification errors returned across the host boundary. The numeric code of
// each error is part of the cross-chain contract: host environments receive
// and persist the raw integer, so codes must never be renumbered or reused
// for a different meaning once assigned.
var (
	// ErrFoundNoMessage is used when no message matching the expected
	// envelope is present in the verified payload.
	ErrFoundNoMessage = errorsmod.Register(codespace, 100, "found no message")

	// ErrEventNotMatch is used when the decoded event does not match the
	// operation being verified.
	ErrEventNotMatch = errorsmod.Register(codespace, 101, "event does not match")

	// ErrInvalidReceiptProof is used when the receipt proof accompanying a
	// cross-chain claim fails verification.
	ErrInvalidReceiptProof = errorsmod.Register(codespace, 102, "invalid receipt proof")

	// ErrSerde is the single structural failure for malformed or truncated
	// object bytes. Decode failures deliberately collapse to this one code;
	// diagnosis of what exactly was malformed belongs to logging outside
	// this module.
	ErrSerde = errorsmod.Register(codespace, 103, "malformed object bytes")

	// ErrWrongClient is used when a client identifier does not match the
	// expected client.
	ErrWrongClient = errorsmod.Register(codespace, 104, "wrong client")

	// ErrWrongConnectionID is used when a connection identifier does not
	// match the expected connection.
	ErrWrongConnectionID = errorsmod.Register(codespace, 105, "wrong connection identifier")

	// ErrWrongConnectionNumber is used when a connection sequence number is
	// out of step with stored state.
	ErrWrongConnectionNumber = errorsmod.Register(codespace, 106, "wrong connection number")

	// ErrWrongPortID is used when a port identifier does not match the
	// expected port.
	ErrWrongPortID = errorsmod.Register(codespace, 107, "wrong port identifier")

	// ErrWrongCommonHexID is used when a hex-rendered identifier does not
	// match its expected 32-byte preimage.
	ErrWrongCommonHexID = errorsmod.Register(codespace, 108, "wrong hex identifier")

	// ErrWrongConnections is used when the stored connection set is
	// inconsistent with the operation being verified.
	ErrWrongConnections = errorsmod.Register(codespace, 109, "wrong connections")

	ErrWrongConnectionCount        = errorsmod.Register(codespace, 110, "wrong connection count")
	ErrWrongConnectionState        = errorsmod.Register(codespace, 111, "wrong connection state")
	ErrWrongConnectionCounterparty = errorsmod.Register(codespace, 112, "wrong connection counterparty")
	ErrWrongConnectionClient       = errorsmod.Register(codespace, 113, "wrong connection client")

	// ErrWrongConnectionNextChannelNumber is used when the next channel
	// number recorded on a connection does not match the channel being
	// opened.
	ErrWrongConnectionNextChannelNumber = errorsmod.Register(codespace, 114, "wrong connection next channel number")

	ErrWrongConnectionArgs = errorsmod.Register(codespace, 115, "wrong connection arguments")

	ErrWrongChannelState    = errorsmod.Register(codespace, 116, "wrong channel state")
	ErrWrongChannel         = errorsmod.Register(codespace, 117, "wrong channel")
	ErrWrongChannelArgs     = errorsmod.Register(codespace, 118, "wrong channel arguments")
	ErrWrongChannelSequence = errorsmod.Register(codespace, 119, "wrong channel sequence")

	// ErrWrongUnusedPacket is used when a packet slot expected to be unused
	// already carries a commitment.
	ErrWrongUnusedPacket = errorsmod.Register(codespace, 120, "wrong unused packet")

	ErrWrongPacketSequence = errorsmod.Register(codespace, 121, "wrong packet sequence")
	ErrWrongPacketStatus   = errorsmod.Register(codespace, 122, "wrong packet status")
	ErrWrongPacketContent  = errorsmod.Register(codespace, 123, "wrong packet content")
	ErrWrongPacketArgs     = errorsmod.Register(codespace, 124, "wrong packet arguments")
)

// Code returns the stable integer code carried by err, following wrapping.
// Host environments that cannot exchange rich error values receive this code
// as a raw signed byte.
func Code(err error) int8 {
	_, code, _ := errorsmod.ABCIInfo(err, false)
	return int8(code)
}
