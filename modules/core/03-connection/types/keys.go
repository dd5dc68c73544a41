package types

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"

	host "github.com/synapseweb3/ibc-objects/modules/core/24-host"
)

const (
	// SubModuleName defines the connection submodule name.
	SubModuleName = "connection"

	// ConnectionPrefix is the prefix used when creating a connection identifier.
	ConnectionPrefix = "connection-"
)

// FormatConnectionIdentifier returns the connection identifier with the
// sequence appended.
func FormatConnectionIdentifier(sequence uint64) string {
	return fmt.Sprintf("%s%d", ConnectionPrefix, sequence)
}

// IsValidConnectionID reports whether the identifier is in the canonical
// connection identifier format.
func IsValidConnectionID(connectionID string) bool {
	_, err := ParseConnectionSequence(connectionID)
	return err == nil
}

// ParseConnectionSequence parses the sequence from the connection identifier.
func ParseConnectionSequence(connectionID string) (uint64, error) {
	sequence, err := host.ParseIdentifier(connectionID, ConnectionPrefix)
	if err != nil {
		return 0, errorsmod.Wrap(err, "invalid connection identifier")
	}
	return sequence, nil
}
