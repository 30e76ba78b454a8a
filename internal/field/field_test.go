package field

import (
	"errors"
	"testing"
	"time"
)

func TestNewPhone_ValidatesTenDigits(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "ten digits", input: "1234567890", wantErr: false},
		{name: "all zeros", input: "0000000000", wantErr: false},
		{name: "nine digits", input: "123456789", wantErr: true},
		{name: "eleven digits", input: "12345678901", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "letter in middle", input: "12345x7890", wantErr: true},
		{name: "plus prefix", input: "+123456789", wantErr: true},
		{name: "with dashes", input: "123-456-78", wantErr: true},
		{name: "unicode digits", input: "١٢٣٤٥٦٧٨٩٠", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPhone(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("NewPhone(%q) error = nil, want ErrInvalid", tt.input)
				}
				if !errors.Is(err, ErrInvalid) {
					t.Errorf("NewPhone(%q) error = %v, want ErrInvalid", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewPhone(%q) error = %v", tt.input, err)
			}
			if p.Value() != tt.input {
				t.Errorf("Value() = %q, want %q", p.Value(), tt.input)
			}
		})
	}
}

func TestNewName_AcceptsAnything(t *testing.T) {
	for _, v := range []string{"Ann", "", "  spaces  ", "日本語"} {
		n := NewName(v)
		if n.Value() != v {
			t.Errorf("NewName(%q).Value() = %q", v, n.Value())
		}
	}
}

func TestNewBirthday_RejectsZeroTime(t *testing.T) {
	_, err := NewBirthday(time.Time{})
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("NewBirthday(zero) error = %v, want ErrInvalid", err)
	}
}

func TestParseBirthday_TriesFormatsInOrder(t *testing.T) {
	want := time.Date(1990, time.February, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input string
	}{
		{name: "dashes", input: "01-02-1990"},
		{name: "spaces", input: "01 02 1990"},
		{name: "slashes", input: "01/02/1990"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := ParseBirthday(tt.input)
			if err != nil {
				t.Fatalf("ParseBirthday(%q) error = %v", tt.input, err)
			}
			if !b.Value().Equal(want) {
				t.Errorf("Value() = %v, want %v", b.Value(), want)
			}
		})
	}
}

func TestParseBirthday_RejectsUnknownFormats(t *testing.T) {
	for _, input := range []string{"1990-02-01", "01.02.1990", "February 1 1990", "", "31-02-1990"} {
		if _, err := ParseBirthday(input); !errors.Is(err, ErrInvalid) {
			t.Errorf("ParseBirthday(%q) error = %v, want ErrInvalid", input, err)
		}
	}
}

func TestBirthday_StringRendersDashedLayout(t *testing.T) {
	b, err := ParseBirthday("01/02/1990")
	if err != nil {
		t.Fatal(err)
	}
	if got := b.String(); got != "01-02-1990" {
		t.Errorf("String() = %q, want %q", got, "01-02-1990")
	}
}
