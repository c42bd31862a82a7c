package utils

import "testing"

func TestParseNumberOrZero(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"11.80", 11.80},
		{"23.60", 23.60},
		{"0", 0},
		{"  42 ", 42},
		{"1,234.56", 1234.56},
		{"1,234,567", 1234567},
		{"12,34", 0},
		{"1,23.45", 0},
		{"", 0},
		{"N/A", 0},
		{"abc", 0},
		{"12abc", 0},
		{"-5", 0},
	}

	for _, c := range cases {
		if got := ParseNumberOrZero(c.in); got != c.want {
			t.Errorf("ParseNumberOrZero(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}
