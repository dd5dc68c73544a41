package types

import (
	"fmt"
	"io"

	errorsmod "cosmossdk.io/errors"
	"github.com/ethereum/go-ethereum/rlp"

	commitmenttypes "github.com/synapseweb3/ibc-objects/modules/core/23-commitment/types"
	host "github.com/synapseweb3/ibc-objects/modules/core/24-host"
	ibcerrors "github.com/synapseweb3/ibc-objects/modules/core/errors"
	"github.com/synapseweb3/ibc-objects/modules/core/exported"
)

var (
	_ exported.Object = (*ConnectionEnd)(nil)
	_ exported.Object = (*Counterparty)(nil)

	_ rlp.Encoder = Counterparty{}
	_ rlp.Decoder = (*Counterparty)(nil)
)

// Counterparty describes the other end of a connection as seen by this chain.
// ConnectionID stays nil until the counterparty's handshake step assigns an
// identifier; a nil identifier is distinct from an assigned empty one.
type Counterparty struct {
	ClientID         string
	ConnectionID     *string
	CommitmentPrefix []byte
}

// NewCounterparty returns a new connection counterparty.
func NewCounterparty(clientID string, connectionID *string, commitmentPrefix []byte) Counterparty {
	return Counterparty{
		ClientID:         clientID,
		ConnectionID:     connectionID,
		CommitmentPrefix: commitmentPrefix,
	}
}

// DefaultCounterparty returns a counterparty with no client, no assigned
// connection identifier and the protocol-wide commitment prefix.
func DefaultCounterparty() Counterparty {
	return NewCounterparty("", nil, commitmenttypes.DefaultPrefix())
}

// counterpartyEncoding is the wire layout of Counterparty. The optional
// connection identifier travels as a nested list: empty when unassigned,
// single-element when assigned. An assigned empty identifier therefore
// remains distinguishable from an unassigned one.
type counterpartyEncoding struct {
	ClientID         string
	ConnectionID     []string
	CommitmentPrefix []byte
}

// EncodeRLP implements the rlp.Encoder interface.
func (c Counterparty) EncodeRLP(w io.Writer) error {
	enc := counterpartyEncoding{
		ClientID:         c.ClientID,
		CommitmentPrefix: c.CommitmentPrefix,
	}
	if c.ConnectionID != nil {
		enc.ConnectionID = []string{*c.ConnectionID}
	}
	return rlp.Encode(w, enc)
}

// DecodeRLP implements the rlp.Decoder interface.
func (c *Counterparty) DecodeRLP(stream *rlp.Stream) error {
	var enc counterpartyEncoding
	if err := stream.Decode(&enc); err != nil {
		return err
	}
	if len(enc.ConnectionID) > 1 {
		return fmt.Errorf("counterparty: expected at most one connection identifier, got %d", len(enc.ConnectionID))
	}
	c.ClientID = enc.ClientID
	c.ConnectionID = nil
	if len(enc.ConnectionID) == 1 {
		connectionID := enc.ConnectionID[0]
		c.ConnectionID = &connectionID
	}
	c.CommitmentPrefix = enc.CommitmentPrefix
	return nil
}

// ValidateBasic performs stateless validation of the counterparty.
func (c Counterparty) ValidateBasic() error {
	if err := host.ClientIdentifierValidator(c.ClientID); err != nil {
		return errorsmod.Wrap(ibcerrors.ErrWrongClient, err.Error())
	}
	if c.ConnectionID != nil {
		if err := host.ConnectionIdentifierValidator(*c.ConnectionID); err != nil {
			return errorsmod.Wrap(ibcerrors.ErrWrongConnectionID, err.Error())
		}
	}
	if len(c.CommitmentPrefix) == 0 {
		return errorsmod.Wrap(ibcerrors.ErrWrongConnectionCounterparty, "counterparty commitment prefix cannot be empty")
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

// ConnectionEnd describes this chain's end of a connection: the handshake
// state, the local client the connection is bound to, the counterparty, the
// delay period enforced on packet relay and the negotiated versions.
type ConnectionEnd struct {
	State        State
	ClientID     string
	Counterparty Counterparty
	DelayPeriod  uint64
	Versions     []Version
}

// NewConnectionEnd returns a new connection end.
func NewConnectionEnd(state State, clientID string, counterparty Counterparty, delayPeriod uint64, versions []Version) ConnectionEnd {
	return ConnectionEnd{
		State:        state,
		ClientID:     clientID,
		Counterparty: counterparty,
		DelayPeriod:  delayPeriod,
		Versions:     versions,
	}
}

// DefaultConnectionEnd returns the well-known empty connection end: unknown
// state, the all-zero hex client identifier and the default counterparty.
func DefaultConnectionEnd() ConnectionEnd {
	return NewConnectionEnd(StateUnknown, host.DefaultHexIdentifier(), DefaultCounterparty(), 0, nil)
}

// GetState returns the handshake state of the connection end.
func (c ConnectionEnd) GetState() State {
	return c.State
}

// GetClientID returns the identifier of the local client.
func (c ConnectionEnd) GetClientID() string {
	return c.ClientID
}

// GetCounterparty returns the counterparty of the connection end.
func (c ConnectionEnd) GetCounterparty() Counterparty {
	return c.Counterparty
}

// GetDelayPeriod returns the delay period of the connection end.
func (c ConnectionEnd) GetDelayPeriod() uint64 {
	return c.DelayPeriod
}

// GetVersions returns the negotiated versions in preference order.
func (c ConnectionEnd) GetVersions() []Version {
	return c.Versions
}

// ValidateBasic performs stateless validation of the connection end.
func (c ConnectionEnd) ValidateBasic() error {
	if err := host.ClientIdentifierValidator(c.ClientID); err != nil {
		return errorsmod.Wrap(ibcerrors.ErrWrongConnectionClient, err.Error())
	}
	if len(c.Versions) == 0 {
		return errorsmod.Wrap(ibcerrors.ErrWrongConnectionArgs, "connection versions cannot be empty")
	}
	for _, version := range c.Versions {
		if err := ValidateVersion(version); err != nil {
			return err
		}
	}
	return c.Counterparty.ValidateBasic()
}

// Encode returns the canonical encoding of the connection end.
func (c ConnectionEnd) Encode() []byte {
	bz, err := rlp.EncodeToBytes(c)
	if err != nil {
		panic(err)
	}
	return bz
}

// DecodeConnectionEnd parses the canonical encoding produced by Encode.
// Malformed input is rejected with ErrSerde.
func DecodeConnectionEnd(bz []byte) (ConnectionEnd, error) {
	var connection ConnectionEnd
	if err := rlp.DecodeBytes(bz, &connection); err != nil {
		return ConnectionEnd{}, errorsmod.Wrap(ibcerrors.ErrSerde, err.Error())
	}
	return connection, nil
}
