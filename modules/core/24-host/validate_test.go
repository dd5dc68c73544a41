package host_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	host "github.com/synapseweb3/ibc-objects/modules/core/24-host"
)

func TestDefaultIdentifierValidators(t *testing.T) {
	testCases := []struct {
		name     string
		validate host.ValidateFn
		id       string
		expPass  bool
	}{
		{"valid client id", host.ClientIdentifierValidator, "clientidone", true},
		{"valid hex client id", host.ClientIdentifierValidator, strings.Repeat("0", 64), true},
		{"client id too short", host.ClientIdentifierValidator, "short", false},
		{"client id too long", host.ClientIdentifierValidator, strings.Repeat("a", 65), false},
		{"blank client id", host.ClientIdentifierValidator, "         ", false},
		{"client id with spaces", host.ClientIdentifierValidator, "client id one", false},
		{"valid connection id", host.ConnectionIdentifierValidator, "connection-0", true},
		{"connection id too short", host.ConnectionIdentifierValidator, "conn-0", false},
		{"connection id invalid chars", host.ConnectionIdentifierValidator, "(connection)", false},
		{"valid channel id", host.ChannelIdentifierValidator, "channel-0", true},
		{"channel id too short", host.ChannelIdentifierValidator, "chan-0", false},
		{"valid port id", host.PortIdentifierValidator, "transfer", true},
		{"valid hex port id", host.PortIdentifierValidator, strings.Repeat("0", 64), true},
		{"port id of one char", host.PortIdentifierValidator, "p", false},
		{"port id up to 128 chars", host.PortIdentifierValidator, strings.Repeat("p", 128), true},
		{"port id over 128 chars", host.PortIdentifierValidator, strings.Repeat("p", 129), false},
		{"id with special chars", host.ClientIdentifierValidator, "client.id_one+two#0", true},
	}

	for _, tc := range testCases {
		err := tc.validate(tc.id)
		if tc.expPass {
			require.NoError(t, err, tc.name)
		} else {
			require.ErrorIs(t, err, host.ErrInvalidID, tc.name)
		}
	}
}

func TestParseIdentifier(t *testing.T) {
	testCases := []struct {
		name       string
		identifier string
		prefix     string
		expSeq     uint64
		expPass    bool
	}{
		{"valid 0", "connection-0", "connection-", 0, true},
		{"valid 1", "channel-1", "channel-", 1, true},
		{"missing prefix", "0", "connection-", 0, false},
		{"wrong prefix", "channel-0", "connection-", 0, false},
		{"non-numeric sequence", "connection-abc", "connection-", 0, false},
		{"empty sequence", "connection-", "connection-", 0, false},
	}

	for _, tc := range testCases {
		seq, err := host.ParseIdentifier(tc.identifier, tc.prefix)
		require.Equal(t, tc.expSeq, seq, tc.name)
		if tc.expPass {
			require.NoError(t, err, tc.name)
		} else {
			require.Error(t, err, tc.name)
		}
	}
}

func TestHexIdentifier(t *testing.T) {
	require.Equal(t, strings.Repeat("0", 64), host.DefaultHexIdentifier())

	hash := [32]byte{0xde, 0xad, 0xbe, 0xef}
	id := host.HexIdentifier(hash)
	require.Len(t, id, 64)
	require.Equal(t, "deadbeef", id[:8])
	require.Equal(t, strings.Repeat("0", 56), id[8:])

	// rendered identifiers stay within the identifier charset
	require.NoError(t, host.ClientIdentifierValidator(id))
	require.NoError(t, host.PortIdentifierValidator(id))
}
