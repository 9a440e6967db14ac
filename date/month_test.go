package date

import (
	"testing"
	"time"
)

func TestMonth_Contains(t *testing.T) {
	march := MustParseMonth("2024-03")

	testCases := []struct {
		name string
		date string
		want bool
	}{
		{name: "first day included", date: "2024-03-01", want: true},
		{name: "mid month included", date: "2024-03-15", want: true},
		{name: "last day included", date: "2024-03-31", want: true},
		{name: "next month first day excluded", date: "2024-04-01", want: false},
		{name: "previous month excluded", date: "2024-02-29", want: false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := march.Contains(MustParse(tc.date)); got != tc.want {
				t.Errorf("Contains(%s) = %v, want %v", tc.date, got, tc.want)
			}
		})
	}
}

func TestMonth_Next(t *testing.T) {
	if got := MustParseMonth("2024-12").Next(); got != NewMonth(2025, time.January) {
		t.Errorf("Next of 2024-12 = %v, want 2025-01", got)
	}
}

func TestParseMonth(t *testing.T) {
	if _, err := ParseMonth("2024-13"); err == nil {
		t.Error("expected error on month 13")
	}
	m, err := ParseMonth("2024-03")
	if err != nil {
		t.Fatal(err)
	}
	if m.String() != "2024-03" {
		t.Errorf("String() = %q, want %q", m.String(), "2024-03")
	}
}
