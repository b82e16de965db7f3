package dates

import (
	"errors"
	"testing"
)

func TestValidate_AcceptsGrammar(t *testing.T) {
	cases := []string{
		"2024-05-01",
		"1995-06-16",
		"2024-02-30",
		"2022-13-40",
		"0000-00-00",
		"9999-99-99",
	}
	for _, in := range cases {
		t.Run(in, func(t *testing.T) {
			got, err := Validate(in)
			if err != nil {
				t.Fatalf("Validate(%q) returned error: %v", in, err)
			}
			if got.String() != in {
				t.Fatalf("Validate(%q) = %q, want %q", in, got.String(), in)
			}
			if got.IsToday() {
				t.Fatalf("Validate(%q).IsToday() = true, want false", in)
			}
		})
	}
}

func TestValidate_EmptyMeansToday(t *testing.T) {
	got, err := Validate("")
	if err != nil {
		t.Fatalf("Validate(\"\") returned error: %v", err)
	}
	if !got.IsToday() || got.String() != "" {
		t.Fatalf("Validate(\"\") = %#v, want today marker", got)
	}
}

func TestValidate_RejectsEverythingElse(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"slashes", "2024/05/01"},
		{"short year", "24-05-01"},
		{"single digit month", "2024-5-01"},
		{"trailing newline", "2024-05-01\n"},
		{"leading space", " 2024-05-01"},
		{"trailing space", "2024-05-01 "},
		{"whitespace only", "   "},
		{"letters", "abcd-ef-gh"},
		{"extra digit", "2024-05-011"},
		{"day first", "01-05-2024"},
		{"arabic-indic digits", "٢٠٢٤-٠٥-٠١"},
		{"fullwidth digits", "２０２４-０５-０１"},
		{"today word", "today"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Validate(tc.in)
			if err == nil {
				t.Fatalf("Validate(%q) returned nil error, want ErrBadFormat", tc.in)
			}
			if !errors.Is(err, ErrBadFormat) {
				t.Fatalf("Validate(%q) error = %v, want ErrBadFormat", tc.in, err)
			}
		})
	}
}

func TestValidate_IsPure(t *testing.T) {
	for i := 0; i < 3; i++ {
		got, err := Validate("2024-01-01")
		if err != nil || got.String() != "2024-01-01" {
			t.Fatalf("call %d: Validate = (%q, %v), want (2024-01-01, nil)", i, got.String(), err)
		}
	}
}
