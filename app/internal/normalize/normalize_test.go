package normalize_test

import (
	"math"
	"testing"

	"github.com/voicedash/airtable-proxy/app/domain/entities"
	"github.com/voicedash/airtable-proxy/app/internal/normalize"
)

func TestParseMoney(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  float64
	}{
		{name: "plain number", input: float64(42), want: 42},
		{name: "int number", input: 7, want: 7},
		{name: "currency string with thousands separator", input: "$1,234.50", want: 1234.5},
		{name: "euro symbol", input: "€99.90", want: 99.9},
		{name: "whitespace around value", input: "  $3.14  ", want: 3.14},
		{name: "negative cost passes through", input: "-$2.50", want: -2.5},
		{name: "empty string", input: "", want: 0},
		{name: "absent value", input: nil, want: 0},
		{name: "garbage string", input: "abc", want: 0},
		{name: "boolean", input: true, want: 0},
		{name: "array", input: []any{"$1"}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalize.ParseMoney(tt.input); got != tt.want {
				t.Errorf("ParseMoney(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNumber(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  float64
	}{
		{name: "float", input: 12.5, want: 12.5},
		{name: "numeric string", input: "120", want: 120},
		{name: "garbage string", input: "n/a", want: 0},
		{name: "absent", input: nil, want: 0},
		{name: "infinity guarded", input: math.Inf(1), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalize.Number(tt.input); got != tt.want {
				t.Errorf("Number(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestToMinutes(t *testing.T) {
	if got := normalize.ToMinutes(120); got != 2 {
		t.Errorf("ToMinutes(120) = %v, want 2", got)
	}
	if got := normalize.ToMinutes(math.NaN()); got != 0 {
		t.Errorf("ToMinutes(NaN) = %v, want 0", got)
	}
	if got := normalize.ToMinutes(0); got != 0 {
		t.Errorf("ToMinutes(0) = %v, want 0", got)
	}
}

func TestSeconds_FallbackOrder(t *testing.T) {
	tests := []struct {
		name   string
		fields entities.FieldBag
		want   float64
	}{
		{
			name:   "explicit duration wins",
			fields: entities.FieldBag{"Duration (s)": float64(90), "Calculated Duration (s)": float64(30)},
			want:   90,
		},
		{
			name:   "zero explicit falls back to calculated",
			fields: entities.FieldBag{"Duration (s)": float64(0), "Calculated Duration (s)": float64(30)},
			want:   30,
		},
		{
			name:   "missing explicit falls back to calculated",
			fields: entities.FieldBag{"Calculated Duration (s)": "45"},
			want:   45,
		},
		{
			name:   "both missing",
			fields: entities.FieldBag{},
			want:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalize.Seconds(tt.fields); got != tt.want {
				t.Errorf("Seconds(%v) = %v, want %v", tt.fields, got, tt.want)
			}
		})
	}
}

func TestText(t *testing.T) {
	if got := normalize.Text("hello"); got != "hello" {
		t.Errorf("Text(\"hello\") = %q", got)
	}
	if got := normalize.Text(nil); got != "" {
		t.Errorf("Text(nil) = %q, want empty", got)
	}
	if got := normalize.TextOr(nil, "Unknown"); got != "Unknown" {
		t.Errorf("TextOr(nil, Unknown) = %q", got)
	}
	if got := normalize.TextOr("", "Unknown"); got != "Unknown" {
		t.Errorf("TextOr(\"\", Unknown) = %q", got)
	}
}
