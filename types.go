package snowflake

import "errors"

const (
	// EpochMS is the custom epoch, 2019-01-01T00:00:00Z, expressed as
	// milliseconds since the unix epoch. All timestamp fields are measured
	// from this instant.
	EpochMS int64 = 1_546_300_800_000

	// TimeBits is the number of bits reserved for the millisecond
	// timestamp. This setting is not configurable: together with the sign
	// guard at bit 63 and the separator at bit 21 it defines the wire
	// compatible layout.
	TimeBits  = 41
	TimeShift = 22

	// RandomBits is the number of low order bits filled from the random
	// source on generation.
	RandomBits = 21

	// MaxMillis is the largest elapsed millisecond count the timestamp
	// field can hold. Reached in 2088.
	MaxMillis uint64 = (1 << TimeBits) - 1

	TimeMask   uint64 = MaxMillis << TimeShift
	RandomMask uint64 = (1 << RandomBits) - 1
)

var (
	ErrEpochOrdering     = errors.New("snowflake: clock reading precedes the 2019-01-01 epoch")
	ErrTimestampOverflow = errors.New("snowflake: elapsed milliseconds overflow the timestamp field")
	ErrShortBuffer       = errors.New("snowflake: not enough bytes to represent an id")
)
