package host

import (
	errorsmod "cosmossdk.io/errors"
)

// SubModuleName defines the host semantics submodule name.
const SubModuleName = "host"

// ErrInvalidID is returned by the identifier validators. It is internal
// vocabulary: callers surfacing failures across the host boundary wrap it
// with one of the registered verification errors.
var ErrInvalidID = errorsmod.Register(SubModuleName, 2, "invalid identifier")
