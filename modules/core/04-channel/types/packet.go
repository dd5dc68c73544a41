package types

import (
	"bytes"

	errorsmod "cosmossdk.io/errors"
	"github.com/ethereum/go-ethereum/rlp"

	host "github.com/synapseweb3/ibc-objects/modules/core/24-host"
	ibcerrors "github.com/synapseweb3/ibc-objects/modules/core/errors"
	"github.com/synapseweb3/ibc-objects/modules/core/exported"
)

var (
	_ exported.Object = (*Packet)(nil)
	_ exported.Object = (*PacketAck)(nil)
)

// Packet is one unit of application data relayed between two channel
// endpoints, identified by a monotonically assigned sequence number. A
// timeout height and timestamp of zero both mean the packet never times out.
type Packet struct {
	Sequence           uint16
	SourcePort         string
	SourceChannel      string
	DestinationPort    string
	DestinationChannel string
	Data               []byte
	TimeoutHeight      uint64
	TimeoutTimestamp   uint64
}

// NewPacket returns a new packet.
func NewPacket(
	data []byte, sequence uint16,
	sourcePort, sourceChannel, destinationPort, destinationChannel string,
	timeoutHeight, timeoutTimestamp uint64,
) Packet {
	return Packet{
		Sequence:           sequence,
		SourcePort:         sourcePort,
		SourceChannel:      sourceChannel,
		DestinationPort:    destinationPort,
		DestinationChannel: destinationChannel,
		Data:               data,
		TimeoutHeight:      timeoutHeight,
		TimeoutTimestamp:   timeoutTimestamp,
	}
}

// DefaultPacket returns the well-known empty packet: sequence zero, the
// all-zero hex port identifiers, channel-0 on both sides, no data and no
// timeout.
func DefaultPacket() Packet {
	return Packet{
		SourcePort:         host.DefaultHexIdentifier(),
		SourceChannel:      FormatChannelIdentifier(0),
		DestinationPort:    host.DefaultHexIdentifier(),
		DestinationChannel: FormatChannelIdentifier(0),
	}
}

// GetSequence returns the packet sequence.
func (p Packet) GetSequence() uint16 { return p.Sequence }

// GetSourcePort returns the source port of the packet.
func (p Packet) GetSourcePort() string { return p.SourcePort }

// GetSourceChannel returns the source channel of the packet.
func (p Packet) GetSourceChannel() string { return p.SourceChannel }

// GetDestPort returns the destination port of the packet.
func (p Packet) GetDestPort() string { return p.DestinationPort }

// GetDestChannel returns the destination channel of the packet.
func (p Packet) GetDestChannel() string { return p.DestinationChannel }

// GetData returns the opaque application payload of the packet.
func (p Packet) GetData() []byte { return p.Data }

// GetTimeoutHeight returns the block height after which the packet times
// out. Zero means no height timeout.
func (p Packet) GetTimeoutHeight() uint64 { return p.TimeoutHeight }

// GetTimeoutTimestamp returns the timestamp after which the packet times
// out. Zero means no timestamp timeout.
func (p Packet) GetTimeoutTimestamp() uint64 { return p.TimeoutTimestamp }

// EqualUnlessSequence reports whether two packets describe the same logical
// packet while possibly differing in sequence number. Replay and duplicate
// detection use it to recognize another delivery attempt of a packet already
// seen under an earlier sequence.
func (p Packet) EqualUnlessSequence(other Packet) bool {
	return p.SourcePort == other.SourcePort &&
		p.SourceChannel == other.SourceChannel &&
		p.DestinationPort == other.DestinationPort &&
		p.DestinationChannel == other.DestinationChannel &&
		bytes.Equal(p.Data, other.Data) &&
		p.TimeoutHeight == other.TimeoutHeight &&
		p.TimeoutTimestamp == other.TimeoutTimestamp
}

// ValidateBasic performs stateless validation of the packet identifiers.
// Sequence assignment and timeout interpretation belong to the surrounding
// protocol logic, so a zero sequence and zero timeouts are both valid here.
func (p Packet) ValidateBasic() error {
	if err := host.PortIdentifierValidator(p.SourcePort); err != nil {
		return errorsmod.Wrapf(ibcerrors.ErrWrongPacketArgs, "invalid source port: %s", err)
	}
	if err := host.ChannelIdentifierValidator(p.SourceChannel); err != nil {
		return errorsmod.Wrapf(ibcerrors.ErrWrongPacketArgs, "invalid source channel: %s", err)
	}
	if err := host.PortIdentifierValidator(p.DestinationPort); err != nil {
		return errorsmod.Wrapf(ibcerrors.ErrWrongPacketArgs, "invalid destination port: %s", err)
	}
	if err := host.ChannelIdentifierValidator(p.DestinationChannel); err != nil {
		return errorsmod.Wrapf(ibcerrors.ErrWrongPacketArgs, "invalid destination channel: %s", err)
	}
	return nil
}

// Encode returns the canonical encoding of the packet.
func (p Packet) Encode() []byte {
	bz, err := rlp.EncodeToBytes(p)
	if err != nil {
		panic(err)
	}
	return bz
}

// DecodePacket parses the canonical encoding produced by Encode. Malformed
// input is rejected with ErrSerde.
func DecodePacket(bz []byte) (Packet, error) {
	var packet Packet
	if err := rlp.DecodeBytes(bz, &packet); err != nil {
		return Packet{}, errorsmod.Wrap(ibcerrors.ErrSerde, err.Error())
	}
	return packet, nil
}

// PacketAck pairs the acknowledgement written by the receiving application
// with the packet it acknowledges. The acknowledgement payload is opaque
// here; only its presence and byte value matter.
type PacketAck struct {
	Ack    []byte
	Packet Packet
}

// NewPacketAck returns a new packet acknowledgement.
func NewPacketAck(ack []byte, packet Packet) PacketAck {
	return PacketAck{
		Ack:    ack,
		Packet: packet,
	}
}

// Encode returns the canonical encoding of the acknowledgement.
func (a PacketAck) Encode() []byte {
	bz, err := rlp.EncodeToBytes(a)
	if err != nil {
		panic(err)
	}
	return bz
}

// DecodePacketAck parses the canonical encoding produced by Encode.
// Malformed input is rejected with ErrSerde.
func DecodePacketAck(bz []byte) (PacketAck, error) {
	var ack PacketAck
	if err := rlp.DecodeBytes(bz, &ack); err != nil {
		return PacketAck{}, errorsmod.Wrap(ibcerrors.ErrSerde, err.Error())
	}
	return ack, nil
}
