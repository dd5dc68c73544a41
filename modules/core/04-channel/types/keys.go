package types

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"

	host "github.com/synapseweb3/ibc-objects/modules/core/24-host"
)

const (
	// SubModuleName defines the channel submodule name.
	SubModuleName = "channel"

	// ChannelPrefix is the prefix used when creating a channel identifier.
	ChannelPrefix = "channel-"
)

// FormatChannelIdentifier returns the channel identifier with the sequence
// appended. Both chains derive default channel identifiers through this
// format, so it is part of the protocol's canonical constants.
func FormatChannelIdentifier(sequence uint64) string {
	return fmt.Sprintf("%s%d", ChannelPrefix, sequence)
}

// IsValidChannelID reports whether the identifier is in the canonical
// channel identifier format.
func IsValidChannelID(channelID string) bool {
	_, err := ParseChannelSequence(channelID)
	return err == nil
}

// ParseChannelSequence parses the sequence from the channel identifier.
func ParseChannelSequence(channelID string) (uint64, error) {
	sequence, err := host.ParseIdentifier(channelID, ChannelPrefix)
	if err != nil {
		return 0, errorsmod.Wrap(err, "invalid channel identifier")
	}
	return sequence, nil
}
