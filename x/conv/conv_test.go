package conv

import "testing"

func TestFormatDeci(t *testing.T) {
	cases := map[int64]string{
		0:    "0.0",
		231:  "23.1",
		-5:   "-0.5",
		-231: "-23.1",
		1000: "100.0",
		7:    "0.7",
	}
	for in, want := range cases {
		if got := FormatDeci(in); got != want {
			t.Fatalf("FormatDeci(%d)=%q want %q", in, got, want)
		}
	}
}

func TestItoa_AppendUint(t *testing.T) {
	if Itoa(0) != "0" || Itoa(-42) != "-42" || Itoa(60) != "60" {
		t.Fatal("Itoa mismatch")
	}
	if got := string(AppendUint([]byte("n="), 18446744073709551615)); got != "n=18446744073709551615" {
		t.Fatalf("AppendUint max: %q", got)
	}
}

func TestHex2(t *testing.T) {
	if Hex2(0x3c) != "0x3c" || Hex2(0x20) != "0x20" || Hex2(0) != "0x00" {
		t.Fatal("Hex2 mismatch")
	}
}
