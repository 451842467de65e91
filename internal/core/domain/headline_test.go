package domain

import "testing"

func TestNormalizeHeadline(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"  Foo   Bar ", "foo bar"},
		{"foo bar", "foo bar"},
		{"FOO\tBAR", "foo bar"},
		{"Stocks Rally As Inflation Eases", "stocks rally as inflation eases"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		if got := NormalizeHeadline(tt.input); got != tt.want {
			t.Errorf("NormalizeHeadline(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNormalizeHeadline_Idempotent(t *testing.T) {
	inputs := []string{"  Foo   Bar ", "ALREADY normalized", "a  b  c"}
	for _, input := range inputs {
		once := NormalizeHeadline(input)
		if twice := NormalizeHeadline(once); twice != once {
			t.Errorf("NormalizeHeadline not idempotent for %q: %q != %q", input, once, twice)
		}
	}
}

func TestValidCategory(t *testing.T) {
	for _, c := range Categories {
		if !ValidCategory(c) {
			t.Errorf("expected %q to be valid", c)
		}
	}
	for _, c := range []string{"", "politics", "General", "SCIENCE"} {
		if ValidCategory(c) {
			t.Errorf("expected %q to be invalid", c)
		}
	}
}
