package types

import (
	"fmt"
	"io"

	errorsmod "cosmossdk.io/errors"
	"github.com/ethereum/go-ethereum/rlp"

	connectiontypes "github.com/synapseweb3/ibc-objects/modules/core/03-connection/types"
	host "github.com/synapseweb3/ibc-objects/modules/core/24-host"
	ibcerrors "github.com/synapseweb3/ibc-objects/modules/core/errors"
	"github.com/synapseweb3/ibc-objects/modules/core/exported"
)

var (
	_ exported.Object = (*Channel)(nil)
	_ exported.Object = (*Counterparty)(nil)

	_ rlp.Encoder = OrderUnknown
	_ rlp.Decoder = (*Order)(nil)
)

// Order is the packet delivery ordering of a channel. Like the handshake
// state, the numeric tag of every ordering is part of the wire contract and
// carries an explicit value.
type Order uint8

const (
	OrderUnknown   Order = 1
	OrderUnordered Order = 2
	OrderOrdered   Order = 3
)

// EncodeRLP writes the ordering as a single-element list holding its tag.
func (o Order) EncodeRLP(w io.Writer) error {
	return rlp.Encode(w, []uint64{uint64(o)})
}

// DecodeRLP reads an ordering tag and rejects every tag outside the closed
// set, including zero. There is no fallback to a default ordering.
func (o *Order) DecodeRLP(stream *rlp.Stream) error {
	var tags []uint64
	if err := stream.Decode(&tags); err != nil {
		return err
	}
	if len(tags) != 1 {
		return fmt.Errorf("channel ordering: expected a single-element list, got %d elements", len(tags))
	}
	switch tags[0] {
	case 1:
		*o = OrderUnknown
	case 2:
		*o = OrderUnordered
	case 3:
		*o = OrderOrdered
	default:
		return fmt.Errorf("channel ordering: invalid tag %d", tags[0])
	}
	return nil
}

// String implements the fmt.Stringer interface.
func (o Order) String() string {
	switch o {
	case OrderUnknown:
		return "UNKNOWN"
	case OrderUnordered:
		return "UNORDERED"
	case OrderOrdered:
		return "ORDERED"
	default:
		return fmt.Sprintf("ORDER(%d)", uint8(o))
	}
}

// Counterparty describes the other end of a channel: the port and channel
// identifiers on the counterparty chain. Both identifiers are required.
type Counterparty struct {
	PortID    string
	ChannelID string
}

// NewCounterparty returns a new channel counterparty.
func NewCounterparty(portID, channelID string) Counterparty {
	return Counterparty{
		PortID:    portID,
		ChannelID: channelID,
	}
}

// GetPortID returns the counterparty port identifier.
func (c Counterparty) GetPortID() string {
	return c.PortID
}

// GetChannelID returns the counterparty channel identifier.
func (c Counterparty) GetChannelID() string {
	return c.ChannelID
}

// ValidateBasic performs stateless validation of the counterparty.
func (c Counterparty) ValidateBasic() error {
	if err := host.PortIdentifierValidator(c.PortID); err != nil {
		return errorsmod.Wrap(ibcerrors.ErrWrongPortID, err.Error())
	}
	if err := host.ChannelIdentifierValidator(c.ChannelID); err != nil {
		return errorsmod.Wrap(ibcerrors.ErrWrongChannel, err.Error())
	}
	return nil
}

// Encode returns the canonical encoding of the counterparty.
func (c Counterparty) Encode() []byte {
	bz, err := rlp.EncodeToBytes(c)
	if err != nil {
		panic(err)
	}
	return bz
}

// DecodeCounterparty parses the canonical encoding produced by Encode.
// Malformed input is rejected with ErrSerde.
func DecodeCounterparty(bz []byte) (Counterparty, error) {
	var counterparty Counterparty
	if err := rlp.DecodeBytes(bz, &counterparty); err != nil {
		return Counterparty{}, errorsmod.Wrap(ibcerrors.ErrSerde, err.Error())
	}
	return counterparty, nil
}

// Channel describes this chain's end of a channel: the handshake state, the
// packet ordering, the remote counterparty and the ordered path of
// connection identifiers the channel traverses. The path has length one in
// the common single-hop case.
type Channel struct {
	State          connectiontypes.State
	Ordering       Order
	Remote         Counterparty
	ConnectionHops []string
}

// NewChannel returns a new channel end.
func NewChannel(state connectiontypes.State, ordering Order, remote Counterparty, connectionHops []string) Channel {
	return Channel{
		State:          state,
		Ordering:       ordering,
		Remote:         remote,
		ConnectionHops: connectionHops,
	}
}

// GetState returns the handshake state of the channel end.
func (ch Channel) GetState() connectiontypes.State {
	return ch.State
}

// GetOrdering returns the packet ordering of the channel end.
func (ch Channel) GetOrdering() Order {
	return ch.Ordering
}

// GetCounterparty returns the remote counterparty of the channel end.
func (ch Channel) GetCounterparty() Counterparty {
	return ch.Remote
}

// GetConnectionHops returns the ordered connection identifier path.
func (ch Channel) GetConnectionHops() []string {
	return ch.ConnectionHops
}

// ValidateBasic performs stateless validation of the channel end.
func (ch Channel) ValidateBasic() error {
	if ch.State == connectiontypes.StateUnknown {
		return errorsmod.Wrap(ibcerrors.ErrWrongChannelState, "channel state cannot be unknown")
	}
	if ch.Ordering != OrderUnordered && ch.Ordering != OrderOrdered {
		return errorsmod.Wrapf(ibcerrors.ErrWrongChannelArgs, "channel ordering must be ordered or unordered, got %s", ch.Ordering)
	}
	if len(ch.ConnectionHops) == 0 {
		return errorsmod.Wrap(ibcerrors.ErrWrongChannelArgs, "connection hops cannot be empty")
	}
	for _, hop := range ch.ConnectionHops {
		if err := host.ConnectionIdentifierValidator(hop); err != nil {
			return errorsmod.Wrap(ibcerrors.ErrWrongConnectionID, err.Error())
		}
	}
	return ch.Remote.ValidateBasic()
}

// Encode returns the canonical encoding of the channel end.
func (ch Channel) Encode() []byte {
	bz, err := rlp.EncodeToBytes(ch)
	if err != nil {
		panic(err)
	}
	return bz
}

// DecodeChannel parses the canonical encoding produced by Encode. Malformed
// input is rejected with ErrSerde.
func DecodeChannel(bz []byte) (Channel, error) {
	var channel Channel
	if err := rlp.DecodeBytes(bz, &channel); err != nil {
		return Channel{}, errorsmod.Wrap(ibcerrors.ErrSerde, err.Error())
	}
	return channel, nil
}
