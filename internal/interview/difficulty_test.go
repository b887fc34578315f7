package interview

import (
	"testing"

	"github.com/adixit/intervue/internal/bank"
)

func TestNextDifficulty(t *testing.T) {
	cases := []struct {
		current bank.Difficulty
		correct bool
		want    bank.Difficulty
	}{
		{bank.Easy, true, bank.Medium},
		{bank.Medium, true, bank.Hard},
		{bank.Hard, true, bank.Hard},
		{bank.Easy, false, bank.Easy},
		{bank.Medium, false, bank.Medium},
		{bank.Hard, false, bank.Hard},
	}

	for _, tc := range cases {
		got := NextDifficulty(tc.current, tc.correct)
		if got != tc.want {
			t.Errorf("NextDifficulty(%s, %v) = %s, want %s", tc.current, tc.correct, got, tc.want)
		}
	}
}

func TestNextDifficulty_HardIsFixedPoint(t *testing.T) {
	d := bank.Hard
	for i := 0; i < 5; i++ {
		d = NextDifficulty(d, true)
	}
	if d != bank.Hard {
		t.Errorf("difficulty escaped hard tier: %s", d)
	}
}
