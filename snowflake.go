package snowflake

import "time"

// Snowflake is a 64 bit identifier combining a 41 bit millisecond
// timestamp with a 21 bit random field. See the package documentation for
// the exact layout. The zero value is a valid (epoch instant, zero
// random) id.
type Snowflake uint64

// FromUint64 wraps a raw integer verbatim. No validation, masking or
// layout enforcement is applied: this is the escape hatch for
// deserializing previously generated or externally sourced values, and
// the caller owns any layout guarantee it needs.
func FromUint64(v uint64) Snowflake {
	return Snowflake(v)
}

// Uint64 returns the underlying integer verbatim. FromUint64(v).Uint64()
// == v for every 64 bit pattern, including those with bit 63 or bit 21
// set.
func (s Snowflake) Uint64() uint64 {
	return uint64(s)
}

// Millis returns the 41 bit timestamp field: milliseconds elapsed since
// the custom epoch at the time the id was generated.
func (s Snowflake) Millis() uint64 {
	return (uint64(s) & TimeMask) >> TimeShift
}

// RandomField returns the low 21 bit random field, guaranteed < 2^21.
func (s Snowflake) RandomField() uint32 {
	return uint32(uint64(s) & RandomMask)
}

// Split splits the milliseconds from the random field in one call.
//
// Returns
//
//	milliseconds since the custom epoch
//	the random field, guaranteed to be < 2^21
//
// The sign guard (bit 63) and the separator (bit 21) are excluded by the
// field masks, so a generated id is fully recoverable from the split.
func (s Snowflake) Split() (uint64, uint32) {
	return s.Millis(), s.RandomField()
}

// Time reconstructs the UTC instant encoded in the timestamp field, at
// millisecond granularity.
func (s Snowflake) Time() time.Time {
	return time.UnixMilli(EpochMS + int64(s.Millis())).UTC()
}
