package dawg

import (
	"encoding/binary"
	"fmt"
)

// MaxNodes is the largest FlatArray size a 22-bit children offset can
// address.
const MaxNodes = 1 << 22

// Field masks for consumers decoding a single little-endian 32-bit
// record.
const (
	IndexMask = 0xFFFFFC00
	ValMask   = 0x000003FC
	EOLMask   = 0x00000002
	EOWMask   = 0x00000001
)

// Encode packs fa into the concatenation of little-endian 32-bit
// records:
//
//	bit 0      IsEnd
//	bit 1      EndOfList
//	bits 2-9   Val (raw ASCII byte, 0 for sentinels)
//	bits 10-31 Children (22-bit unsigned offset)
func Encode(fa *FlatArray) ([]byte, error) {
	if len(fa.Records) > MaxNodes {
		return nil, fmt.Errorf("%w: %d nodes exceeds limit of %d", ErrCapacityExceeded, len(fa.Records), MaxNodes)
	}

	out := make([]byte, len(fa.Records)*4)
	for i, rec := range fa.Records {
		var word uint32
		if rec.IsEnd {
			word |= 1
		}
		if rec.EndOfList {
			word |= 1 << 1
		}
		word |= uint32(rec.Val) << 2
		word |= uint32(rec.Children) << 10
		binary.LittleEndian.PutUint32(out[i*4:], word)
	}
	return out, nil
}
