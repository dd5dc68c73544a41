package exported

// ModuleName is the codespace for all errors raised by the core wire types.
const ModuleName = "ibc"

// Object is implemented by every record that crosses the chain boundary in
// canonical form: connection ends, channel ends, packets, acknowledgements,
// versions and proof bundles.
//
// Encode is total and deterministic: the same logical value always yields the
// same bytes, and two values that differ under the record's equality never
// share an encoding. The matching Decode function lives in the record's types
// package and rejects every byte sequence Encode could not have produced; the
// round trip Decode(x.Encode()) returns a value equal to x.
type Object interface {
	Encode() []byte
}
