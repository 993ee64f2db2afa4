package registry

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
)

// Test_ageKey_Order tests that older birth dates get larger keys.
func Test_ageKey_Order(t *testing.T) {
	dates := []civil.Date{
		{Year: 2000, Month: time.July, Day: 25},
		{Year: 2000, Month: time.July, Day: 24},
		{Year: 2000, Month: time.June, Day: 30},
		{Year: 1999, Month: time.December, Day: 31},
		{Year: -50, Month: time.January, Day: 1},
	}
	for i := 1; i < len(dates); i++ {
		if ageKey(dates[i-1]) >= ageKey(dates[i]) {
			t.Errorf("ageKey(%s) = %d not < ageKey(%s) = %d",
				dates[i-1], ageKey(dates[i-1]), dates[i], ageKey(dates[i]))
		}
	}
}

// Test_ageBoundary tests boundary keys against Person.Age semantics.
func Test_ageBoundary(t *testing.T) {
	asOf := civil.Date{Year: 2025, Month: time.January, Day: 1}

	tests := []struct {
		name  string
		birth civil.Date
		age   int
		want  bool // whether ageKey(birth) >= ageBoundary(asOf, age)
	}{
		{"turns 25 today", civil.Date{Year: 2000, Month: time.January, Day: 1}, 25, true},
		{"turns 25 tomorrow", civil.Date{Year: 2000, Month: time.January, Day: 2}, 25, false},
		{"already 25", civil.Date{Year: 1999, Month: time.December, Day: 31}, 25, true},
		{"zero age", civil.Date{Year: 2025, Month: time.January, Day: 1}, 0, true},
		{"unborn", civil.Date{Year: 2025, Month: time.January, Day: 2}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ageKey(tt.birth) >= ageBoundary(asOf, tt.age)
			if got != tt.want {
				t.Errorf("ageKey(%s) >= ageBoundary(%s, %d) = %v; want %v",
					tt.birth, asOf, tt.age, got, tt.want)
			}
		})
	}
}

// Test_ageBoundary_LeapDay tests boundaries derived from 29 February.
func Test_ageBoundary_LeapDay(t *testing.T) {
	asOf := civil.Date{Year: 2024, Month: time.February, Day: 29}
	leap := civil.Date{Year: 2000, Month: time.February, Day: 29}
	march := civil.Date{Year: 2000, Month: time.March, Day: 1}

	if ageKey(leap) < ageBoundary(asOf, 24) {
		t.Errorf("born 2000-02-29 should be 24 on 2024-02-29")
	}
	if ageKey(march) >= ageBoundary(asOf, 24) {
		t.Errorf("born 2000-03-01 should not be 24 on 2024-02-29")
	}
}

// Test_foldName tests case folding of last names.
func Test_foldName(t *testing.T) {
	tests := []struct {
		a, b string
		same bool
	}{
		{"Johnson", "JOHNSON", true},
		{"johnson", "JoHnSoN", true},
		{"Müller", "MÜLLER", true},
		{"Müller", "Muller", false},
		{"Smith", "Smyth", false},
		{"", "", true},
	}
	for _, tt := range tests {
		if got := foldName(tt.a) == foldName(tt.b); got != tt.same {
			t.Errorf("foldName(%q) == foldName(%q) = %v; want %v", tt.a, tt.b, got, tt.same)
		}
	}
}

// Test_clampAge tests that query ages are bounded.
func Test_clampAge(t *testing.T) {
	if got := clampAge(1 << 40); got != maxAgeSpan {
		t.Errorf("clampAge(1<<40) = %d; want %d", got, maxAgeSpan)
	}
	if got := clampAge(-(1 << 40)); got != -maxAgeSpan {
		t.Errorf("clampAge(-(1<<40)) = %d; want %d", got, -maxAgeSpan)
	}
	if got := clampAge(42); got != 42 {
		t.Errorf("clampAge(42) = %d; want 42", got)
	}
}
