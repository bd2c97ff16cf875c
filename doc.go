package snowflake

/*

# Random-field snowflake identifiers

This package generates compact, time-ordered 64-bit identifiers suitable
for distributed systems that need roughly sortable, collision-resistant
ids without central coordination.

It mirrors the `go-merklelog` style:

- small, composable functions
- explicit bit layouts
- a burden of knowledge on the caller for hot paths

## Layout

The 64 bits are partitioned most-significant bit first:

	+---+-------------------------------------------+---+---------------------+
	| 0 |     41 bit millisecond timestamp          | 0 |  21 bit random      |
	+---+-------------------------------------------+---+---------------------+
	 63  62                                       22  21  20                 0

- Bit 63 is a sign guard and is always 0 for generated values, so ids
  remain non-negative when handled as signed integers.
- Bits 62-22 hold milliseconds elapsed since 2019-01-01T00:00:00Z.
- Bit 21 is a reserved separator, always 0 on the generation path.
- Bits 20-0 hold a uniform random value in [0, 0x1FFFFF].

The following properties hold for generated ids:

  - Ids sort by creation time at millisecond granularity, with the random
    field breaking ties arbitrarily within a millisecond.
  - 2^21 random values per millisecond keep the collision probability low
    without any worker id coordination.
  - The 41 bit field covers ~69.7 years from the 2019 epoch, exhausting
    in 2088.

## Codec vs generator

The codec surface (FromUint64, Uint64, the field accessors and the
byte/hex helpers) is a transparent wrap over the integer and never
errors. It performs no validation: ids wrapped from arbitrary raw
integers carry no layout guarantee, deliberately, so previously
serialized or externally sourced values round-trip bit exactly.

Generation draws from a statistical (not cryptographic) random source.
The default generator is safe for concurrent use; see Generator for the
contract when injecting a custom source.

*/
