package dawg

import (
	"encoding/binary"
	"testing"
)

func TestEncodeBitLayout(t *testing.T) {
	fa := &FlatArray{
		Records: []Record{
			{Val: 'A', IsEnd: true, EndOfList: true, Children: 5},
		},
		RootIndex: 0,
	}
	enc, err := Encode(fa)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if len(enc) != 4 {
		t.Fatalf("len(enc) = %d, want 4", len(enc))
	}
	word := binary.LittleEndian.Uint32(enc)

	if word&EOWMask == 0 {
		t.Error("IsEnd bit not set")
	}
	if word&EOLMask == 0 {
		t.Error("EndOfList bit not set")
	}
	if v := (word & ValMask) >> 2; v != 'A' {
		t.Errorf("Val field = %d, want %d", v, byte('A'))
	}
	if c := (word & IndexMask) >> 10; c != 5 {
		t.Errorf("Children field = %d, want 5", c)
	}
}

func TestEncodeClearBits(t *testing.T) {
	fa := &FlatArray{Records: []Record{{}}, RootIndex: 0}
	enc, err := Encode(fa)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if binary.LittleEndian.Uint32(enc) != 0 {
		t.Error("zero-value record should encode to all-zero bits")
	}
}

func TestEncodeCapacityExceeded(t *testing.T) {
	fa := &FlatArray{Records: make([]Record, MaxNodes+1)}
	if _, err := Encode(fa); err == nil {
		t.Error("Encode with more than MaxNodes records succeeded, want ErrCapacityExceeded")
	}
}
