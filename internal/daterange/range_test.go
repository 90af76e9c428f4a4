package daterange

import (
	"errors"
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		start     time.Time
		end       time.Time
		precision Precision
	}{
		{"same month", "June 1-3, 2020", date(2020, 6, 1), date(2020, 6, 3), PrecisionDay},
		{"same month without comma", "June 1-3 2020", date(2020, 6, 1), date(2020, 6, 3), PrecisionDay},
		{"spaced dash", "June 1 - 3, 2020", date(2020, 6, 1), date(2020, 6, 3), PrecisionDay},
		{"en dash", "June 1–3, 2020", date(2020, 6, 1), date(2020, 6, 3), PrecisionDay},
		{"non-breaking hyphen entity", "June 1&#8209;3, 2020", date(2020, 6, 1), date(2020, 6, 3), PrecisionDay},
		{"abbreviated month", "Sept. 4-6, 2021", date(2021, 9, 4), date(2021, 9, 6), PrecisionDay},
		{"ordinal days", "June 1st-3rd, 2020", date(2020, 6, 1), date(2020, 6, 3), PrecisionDay},
		{"cross month", "June 30-July 2, 2020", date(2020, 6, 30), date(2020, 7, 2), PrecisionDay},
		{"cross year", "Dec 31, 2019-Jan 2, 2020", date(2019, 12, 31), date(2020, 1, 2), PrecisionDay},
		{"single day", "June 1, 2020", date(2020, 6, 1), date(2020, 6, 1), PrecisionDay},
		{"day first", "1-3 June 2020", date(2020, 6, 1), date(2020, 6, 3), PrecisionDay},
		{"day first cross month", "30 June-2 July 2020", date(2020, 6, 30), date(2020, 7, 2), PrecisionDay},
		{"day first single", "5 March 1999", date(1999, 3, 5), date(1999, 3, 5), PrecisionDay},
		{"month and year", "May 2021", date(2021, 5, 1), date(2021, 5, 31), PrecisionMonth},
		{"year only", "1939", date(1939, 1, 1), date(1939, 12, 31), PrecisionYear},
		{"iso date", "2020-06-01", date(2020, 6, 1), date(2020, 6, 1), PrecisionDay},
		{"trailing punctuation", " June 1-3, 2020, ", date(2020, 6, 1), date(2020, 6, 3), PrecisionDay},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.input, err)
			}
			if !r.Start.Equal(tt.start) {
				t.Errorf("start = %v, want %v", r.Start, tt.start)
			}
			if !r.End.Equal(tt.end) {
				t.Errorf("end = %v, want %v", r.End, tt.end)
			}
			if r.Precision != tt.precision {
				t.Errorf("precision = %d, want %d", r.Precision, tt.precision)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"empty", "", ErrEmpty},
		{"only punctuation", " , ", ErrEmpty},
		{"missing year", "June 1-3", ErrUnparseable},
		{"to be decided", "TBD", ErrUnparseable},
		{"impossible day", "February 30, 2021", ErrUnparseable},
		{"reversed range", "June 5-3, 2020", ErrUnparseable},
		{"unknown month", "Smarch 3, 2020", ErrUnparseable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse(tt.input)
			if !errors.Is(err, tt.want) {
				t.Errorf("Parse(%q) error = %v, want %v", tt.input, err, tt.want)
			}
		})
	}
}

func TestRangeString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"June 1-3, 2020", "June 1-3, 2020"},
		{"June 30-July 2, 2020", "June 30-July 2, 2020"},
		{"Dec 31, 2019-Jan 2, 2020", "December 31, 2019-January 2, 2020"},
		{"June 1, 2020", "June 1, 2020"},
		{"May 2021", "May 2021"},
		{"1939", "1939"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			r, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := r.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}

	t.Run("empty range renders as empty string", func(t *testing.T) {
		t.Parallel()
		if got := (Range{}).String(); got != "" {
			t.Errorf("expected empty string, got %q", got)
		}
	})
}

func TestRangeDays(t *testing.T) {
	t.Parallel()

	r, err := Parse("June 1-3, 2020")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Days() != 3 {
		t.Errorf("Days() = %d, want 3", r.Days())
	}
	if (Range{}).Days() != 0 {
		t.Error("expected empty range to cover 0 days")
	}
	if r.Year() != 2020 {
		t.Errorf("Year() = %d, want 2020", r.Year())
	}
}

func TestCompare(t *testing.T) {
	t.Parallel()

	early := Range{Start: date(2020, 6, 1), End: date(2020, 6, 3)}
	longer := Range{Start: date(2020, 6, 1), End: date(2020, 6, 5)}
	late := Range{Start: date(2021, 1, 1), End: date(2021, 1, 2)}

	t.Run("orders by start date", func(t *testing.T) {
		t.Parallel()
		if Compare(early, late) >= 0 {
			t.Error("expected early < late")
		}
		if Compare(late, early) <= 0 {
			t.Error("expected late > early")
		}
	})

	t.Run("breaks ties by end date", func(t *testing.T) {
		t.Parallel()
		if Compare(early, longer) >= 0 {
			t.Error("expected shorter range first when starts match")
		}
	})

	t.Run("equal ranges compare as zero", func(t *testing.T) {
		t.Parallel()
		if Compare(early, early) != 0 {
			t.Error("expected equal ranges to compare as 0")
		}
	})

	t.Run("cancelled flag does not affect ordering", func(t *testing.T) {
		t.Parallel()
		if Compare(early, early.WithCancelled(true)) != 0 {
			t.Error("expected cancelled copy to compare equal")
		}
	})
}
