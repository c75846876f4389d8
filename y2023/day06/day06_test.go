package day06

import (
	_ "embed"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

//go:embed testdata/example.txt
var example string

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestExample(t *testing.T) {
	assert.Equal(t, 288, Part1(example))
	assert.Equal(t, 71503, Part2(example))
}

func TestParse(t *testing.T) {
	want := []Race{{7, 9}, {15, 40}, {30, 200}}
	if diff := cmp.Diff(want, ParseRaces(example)); diff != "" {
		t.Errorf("ParseRaces mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, Race{Time: 71530, Record: 940200}, ParseKerned(example))
}

func TestWins(t *testing.T) {
	tests := []struct {
		r    Race
		want int
	}{
		{Race{7, 9}, 4},
		{Race{15, 40}, 8},
		{Race{30, 200}, 9},
		{Race{71530, 940200}, 71503},
		{Race{1, 0}, 0},
		{Race{0, 0}, 0},
		{Race{5, 100}, 0},
	}
	for _, tt := range tests {
		if got := tt.r.Wins(); got != tt.want {
			t.Errorf("%+v.Wins() = %v, want %v", tt.r, got, tt.want)
		}
		if got := tt.r.WinsClosedForm(); got != tt.want {
			t.Errorf("%+v.WinsClosedForm() = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestClosedFormAgrees(t *testing.T) {
	for tm := 0; tm <= 60; tm++ {
		for rec := -2; rec <= tm*tm/4+2; rec++ {
			r := Race{Time: tm, Record: rec}
			if got, want := r.WinsClosedForm(), r.Wins(); got != want {
				t.Fatalf("%+v.WinsClosedForm() = %v, want %v", r, got, want)
			}
		}
	}
}

func TestMissingLines(t *testing.T) {
	assert.Equal(t, 1, Part1(""))
	assert.Equal(t, 0, Part2(""))
	assert.Equal(t, 1, Part1("Time: 7 15\n"))
}
