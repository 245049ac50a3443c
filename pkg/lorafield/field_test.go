package lorafield

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestFieldStrings(t *testing.T) {
	t.Run("NetID", func(t *testing.T) {
		if got, want := HeliumNetIDType6.String(), "C00053"; got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	})

	t.Run("DevAddr", func(t *testing.T) {
		if got, want := DevAddr(0x22AB).String(), "000022AB"; got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	})

	t.Run("EUI", func(t *testing.T) {
		if got, want := EUI(0x0ABD68FDE91EE0DB).String(), "0ABD68FDE91EE0DB"; got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	})
}

func TestFieldJSON(t *testing.T) {
	t.Run("Marshal", func(t *testing.T) {
		b, err := json.Marshal(DevAddr(0x22AB))
		if err != nil {
			t.Fatalf("Marshal() error = %v", err)
		}
		if got, want := string(b), `"000022AB"`; got != want {
			t.Errorf("Marshal() = %s, want %s", got, want)
		}
	})

	t.Run("Unmarshal", func(t *testing.T) {
		var d DevAddr
		if err := json.Unmarshal([]byte(`"11223344"`), &d); err != nil {
			t.Fatalf("Unmarshal() error = %v", err)
		}
		if d != 0x11223344 {
			t.Errorf("Unmarshal() = %08X, want 11223344", uint32(d))
		}
	})

	t.Run("RoundTripEUI", func(t *testing.T) {
		var e EUI
		if err := json.Unmarshal([]byte(`"1122334411223344"`), &e); err != nil {
			t.Fatalf("Unmarshal() error = %v", err)
		}
		if e != 0x1122334411223344 {
			t.Errorf("Unmarshal() = %016X, want 1122334411223344", uint64(e))
		}
	})
}

func TestParseErrors(t *testing.T) {
	t.Run("WrongLength", func(t *testing.T) {
		if _, err := ParseDevAddr("1234"); !errors.Is(err, ErrFieldLength) {
			t.Errorf("ParseDevAddr(short) error = %v, want ErrFieldLength", err)
		}
		if _, err := ParseNetID("C000530"); !errors.Is(err, ErrFieldLength) {
			t.Errorf("ParseNetID(long) error = %v, want ErrFieldLength", err)
		}
	})

	t.Run("BadDigits", func(t *testing.T) {
		if _, err := ParseNetID("C000ZZ"); !errors.Is(err, ErrFieldDigits) {
			t.Errorf("ParseNetID(garbage) error = %v, want ErrFieldDigits", err)
		}
	})
}

func TestNetIDDerivation(t *testing.T) {
	tests := []struct {
		name     string
		netID    NetID
		wantType uint8
		start    DevAddr
		end      DevAddr
	}{
		{"Type6Helium", 0xC00053, 6, 0xFC014C00, 0xFC014FFF},
		{"Type0", 0x00001D, 0, 0x3A000000, 0x3BFFFFFF},
		{"Type3", 0x600020, 3, 0xE0400000, 0xE041FFFF},
		{"Type7", 0xE00040, 7, 0xFE002000, 0xFE00207F},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.netID.Type(); got != tt.wantType {
				t.Errorf("Type() = %d, want %d", got, tt.wantType)
			}
			if got := tt.netID.RangeStart(); got != tt.start {
				t.Errorf("RangeStart() = %s, want %s", got, tt.start)
			}
			if got := tt.netID.RangeEnd(); got != tt.end {
				t.Errorf("RangeEnd() = %s, want %s", got, tt.end)
			}
		})
	}
}

func TestNwkID(t *testing.T) {
	// Type 6 NwkID is the low 13 bits.
	if got := NetID(0xC00053).NwkID(); got != 0x53 {
		t.Errorf("NwkID() = %#x, want 0x53", got)
	}
	// Type 0 NwkID is the low 6 bits.
	if got := NetID(0x00001D).NwkID(); got != 0x1D {
		t.Errorf("NwkID() = %#x, want 0x1d", got)
	}
}
