package snowflake

// The id is defined as "a 64 bit unsigned integer" and callers own their
// wire format. When we serialize ids for propagation outside the
// subsystem we use the 8 byte big endian form so that byte-wise
// comparison preserves the id ordering. This file contains utilities for
// dealing safely with that.

import (
	"encoding/binary"
	"encoding/hex"
	"strings"
)

// Bytes returns the 8 byte big endian serialization of the id.
func (s Snowflake) Bytes() []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(s))
	return b
}

// FromBytes decodes an id from the first 8 bytes of b.
//
// Returns ErrShortBuffer if b holds fewer than 8 bytes. Like FromUint64
// this is a transparent decode, any 8 byte pattern is accepted.
func FromBytes(b []byte) (Snowflake, error) {
	if len(b) < 8 {
		return 0, ErrShortBuffer
	}
	return Snowflake(binary.BigEndian.Uint64(b)), nil
}

// Hex returns the 16 character hex encoding of the big endian form.
func (s Snowflake) Hex() string {
	return hex.EncodeToString(s.Bytes())
}

// ParseHex decodes an id from its hex encoding. A leading "0x" is
// tolerated.
func ParseHex(encoded string) (Snowflake, error) {
	encoded = strings.TrimPrefix(encoded, "0x")

	b, err := hex.DecodeString(encoded)
	if err != nil {
		return 0, err
	}
	return FromBytes(b)
}

// String implements fmt.Stringer as the hex encoding.
func (s Snowflake) String() string {
	return s.Hex()
}
