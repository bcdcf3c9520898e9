package grading

import "testing"

func TestValidate_SingleChoice(t *testing.T) {
	tests := []struct {
		name      string
		submitted string
		correct   string
		want      bool
	}{
		{"exact match", "B", "B", true},
		{"case-insensitive", "b", "B", true},
		{"whitespace trimmed", "  c ", "C", true},
		{"wrong letter", "a", "B", false},
		{"empty submission", "", "B", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Validate(tt.submitted, tt.correct, FormatSingleChoice)
			if got != tt.want {
				t.Errorf("Validate(%q, %q) = %v, want %v", tt.submitted, tt.correct, got, tt.want)
			}
		})
	}
}

func TestValidate_MatrixMulti(t *testing.T) {
	tests := []struct {
		name      string
		submitted string
		correct   string
		want      bool
	}{
		{"same order", "1-A,2-B", "1-A,2-B", true},
		{"order-independent", "2-B,1-A", "1-A,2-B", true},
		{"whitespace around tokens", " 2-B , 1-A ", "1-A,2-B", true},
		{"case-insensitive tokens", "2-b,1-a", "1-A,2-B", true},
		{"missing selection", "1-A", "1-A,2-B", false},
		{"extra selection", "1-A,2-B,3-C", "1-A,2-B", false},
		{"duplicate not collapsed", "1-A,1-A", "1-A", false},
		{"wrong pairing", "1-B,2-A", "1-A,2-B", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Validate(tt.submitted, tt.correct, FormatMatrixMulti)
			if got != tt.want {
				t.Errorf("Validate(%q, %q) = %v, want %v", tt.submitted, tt.correct, got, tt.want)
			}
		})
	}
}

func TestValidate_FillIn(t *testing.T) {
	tests := []struct {
		name      string
		submitted string
		correct   string
		want      bool
	}{
		// 0.1% of 3.14 is 0.00314; |3.14159-3.14| ≈ 0.00159 is inside.
		{"within relative tolerance", "3.14159", "3.14", true},
		{"outside relative tolerance", "3.15", "3.14", false},
		{"exact numeric", "42", "42", true},
		{"trailing zeros", "3.50", "3.5", true},
		{"zero requires exact", "0.0001", "0", false},
		{"zero exact", "0", "0", true},
		{"text fallback case-insensitive", "Photosynthesis", "photosynthesis", true},
		{"text fallback mismatch", "osmosis", "photosynthesis", false},
		{"numeric vs text falls back to text", "3.14", "pi", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Validate(tt.submitted, tt.correct, FormatFillIn)
			if got != tt.want {
				t.Errorf("Validate(%q, %q) = %v, want %v", tt.submitted, tt.correct, got, tt.want)
			}
		})
	}
}

func TestValidate_UnknownFormatFailsClosed(t *testing.T) {
	if Validate("A", "A", "essay") {
		t.Error("unknown format should never validate as correct")
	}
	if Validate("", "", "") {
		t.Error("empty format should never validate as correct")
	}
}

// The correct answer always validates against itself for every supported
// format.
func TestValidate_SelfIdentity(t *testing.T) {
	cases := []struct {
		answer string
		format AnswerFormat
	}{
		{"C", FormatSingleChoice},
		{"1-A,2-B,3-C", FormatMatrixMulti},
		{"3.14", FormatFillIn},
		{"seven", FormatFillIn},
	}
	for _, c := range cases {
		if !Validate(c.answer, c.answer, c.format) {
			t.Errorf("Validate(%q, %q, %q) = false, want true", c.answer, c.answer, c.format)
		}
	}
}
