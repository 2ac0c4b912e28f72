package utils

import "testing"

func TestFormatRupiah(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "Rp. 0"},
		{500, "Rp. 500"},
		{8000, "Rp. 8.000"},
		{750000, "Rp. 750.000"},
		{8000000, "Rp. 8.000.000"},
		{1234567890, "Rp. 1.234.567.890"},
	}
	for _, c := range cases {
		if got := FormatRupiah(c.in); got != c.want {
			t.Errorf("FormatRupiah(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalizeRupiahAcceptsAnyInputForm(t *testing.T) {
	for _, in := range []string{"8000000", "8.000.000", "Rp. 8.000.000", "Rp 8,000,000"} {
		if got := NormalizeRupiah(in); got != "Rp. 8.000.000" {
			t.Errorf("NormalizeRupiah(%q) = %q", in, got)
		}
	}
}

func TestStripFormatRoundTrip(t *testing.T) {
	// de-format then re-format must reproduce the original display string
	for _, amount := range []int64{1, 42, 999, 1000, 350000, 3500000, 8000000} {
		formatted := FormatRupiah(amount)
		if got := NormalizeRupiah(StripRupiah(formatted)); got != formatted {
			t.Errorf("round trip broke: %q -> %q", formatted, got)
		}
	}
}

func TestTrimRupiahPrefixKeepsGrouping(t *testing.T) {
	if got := TrimRupiahPrefix("Rp. 8.000.000"); got != "8.000.000" {
		t.Fatalf("TrimRupiahPrefix = %q", got)
	}
	if got := TrimRupiahPrefix("8.000.000"); got != "8.000.000" {
		t.Fatalf("TrimRupiahPrefix without prefix = %q", got)
	}
}

func TestParseRupiahToInt(t *testing.T) {
	got, err := ParseRupiahToInt("Rp. 3.500.000")
	if err != nil || got != 3500000 {
		t.Fatalf("ParseRupiahToInt = %d, %v", got, err)
	}
	if _, err := ParseRupiahToInt("gratis"); err == nil {
		t.Fatalf("expected error for digit-free input")
	}
}
