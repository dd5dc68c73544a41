package types

import (
	"strings"

	errorsmod "cosmossdk.io/errors"
	"github.com/ethereum/go-ethereum/rlp"

	ibcerrors "github.com/synapseweb3/ibc-objects/modules/core/errors"
	"github.com/synapseweb3/ibc-objects/modules/core/exported"
)

var _ exported.Object = (*Version)(nil)

// DefaultVersionIdentifier is the identifier of the current protocol version.
const DefaultVersionIdentifier = "1"

// Version defines a negotiated protocol version: an identifier together with
// an ordered feature set. Feature order is preserved on the wire and carries
// equality.
type Version struct {
	Identifier string
	Features   []string
}

// NewVersion returns a new version with the given identifier and features.
func NewVersion(identifier string, features []string) Version {
	return Version{
		Identifier: identifier,
		Features:   features,
	}
}

// DefaultVersion returns the protocol-sanctioned default version: identifier
// "1" supporting ordered and unordered channels, in that order.
func DefaultVersion() Version {
	return NewVersion(DefaultVersionIdentifier, []string{"ORDER_ORDERED", "ORDER_UNORDERED"})
}

// GetCompatibleVersions returns the versions this module supports, in
// descending preference order.
func GetCompatibleVersions() []Version {
	return []Version{DefaultVersion()}
}

// GetIdentifier returns the version identifier.
func (v Version) GetIdentifier() string {
	return v.Identifier
}

// GetFeatures returns the feature set in negotiation order.
func (v Version) GetFeatures() []string {
	return v.Features
}

// HasFeature reports whether the feature set contains the given feature.
func (v Version) HasFeature(feature string) bool {
	for _, f := range v.Features {
		if f == feature {
			return true
		}
	}
	return false
}

// ValidateVersion checks that the identifier is non-blank and that no feature
// is blank. An empty feature set is allowed.
func ValidateVersion(version Version) error {
	if strings.TrimSpace(version.Identifier) == "" {
		return errorsmod.Wrap(ibcerrors.ErrWrongConnectionArgs, "version identifier cannot be blank")
	}
	for i, feature := range version.Features {
		if strings.TrimSpace(feature) == "" {
			return errorsmod.Wrapf(ibcerrors.ErrWrongConnectionArgs, "feature at index %d cannot be blank", i)
		}
	}
	return nil
}

// VerifyProposedVersion verifies that the identifier of the proposed version
// matches this version and that its entire feature set is supported.
func (v Version) VerifyProposedVersion(proposed Version) error {
	if proposed.Identifier != v.Identifier {
		return errorsmod.Wrapf(
			ibcerrors.ErrWrongConnectionArgs,
			"proposed version identifier %s does not match supported version identifier %s", proposed.Identifier, v.Identifier,
		)
	}
	for _, feature := range proposed.Features {
		if !v.HasFeature(feature) {
			return errorsmod.Wrapf(ibcerrors.ErrWrongConnectionArgs, "proposed feature %s is unsupported", feature)
		}
	}
	return nil
}

// FindSupportedVersion returns the supported version with a matching
// identifier, if one exists. Feature sets are not compared.
func FindSupportedVersion(version Version, supportedVersions []Version) (Version, bool) {
	for _, supported := range supportedVersions {
		if version.Identifier == supported.Identifier {
			return supported, true
		}
	}
	return Version{}, false
}

// IsSupportedVersion reports whether the proposed version has a supported
// identifier and a fully supported feature set.
func IsSupportedVersion(supportedVersions []Version, proposed Version) bool {
	supported, found := FindSupportedVersion(proposed, supportedVersions)
	if !found {
		return false
	}
	return supported.VerifyProposedVersion(proposed) == nil
}

// Encode returns the canonical encoding of the version.
func (v Version) Encode() []byte {
	bz, err := rlp.EncodeToBytes(v)
	if err != nil {
		panic(err)
	}
	return bz
}

// DecodeVersion parses the canonical encoding produced by Encode. Malformed
// input is rejected with ErrSerde.
func DecodeVersion(bz []byte) (Version, error) {
	var version Version
	if err := rlp.DecodeBytes(bz, &version); err != nil {
		return Version{}, errorsmod.Wrap(ibcerrors.ErrSerde, err.Error())
	}
	return version, nil
}
