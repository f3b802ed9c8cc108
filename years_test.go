package winepage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestYearWord(t *testing.T) {
	cases := []struct {
		n    int
		word string
	}{
		{0, "лет"},
		{1, "год"},
		{2, "года"},
		{4, "года"},
		{5, "лет"},
		{10, "лет"},
		{11, "лет"},
		{12, "лет"},
		{14, "лет"},
		{15, "лет"},
		{21, "год"},
		{22, "года"},
		{25, "лет"},
		{100, "лет"},
		{101, "год"},
		{103, "года"},
		{111, "лет"},
		{114, "лет"},
		{121, "год"},
		// Negative ages still agree grammatically.
		{-1, "лет"},
		{-8, "года"},
		{-9, "год"},
		{-11, "лет"},
		{-89, "лет"}, // -89 mod 100 normalizes to 11
	}

	for _, tc := range cases {
		assert.Equal(t, tc.word, YearWord(tc.n), "YearWord(%d)", tc.n)
	}
}

func TestAge(t *testing.T) {
	assert.Equal(t, 103, Age(1920, 2023))
	assert.Equal(t, 11, Age(2012, 2023))
	assert.Equal(t, 1, Age(2022, 2023))
	assert.Equal(t, 0, Age(2023, 2023))
	assert.Equal(t, -7, Age(2030, 2023))
}

func TestAgeWordScenarios(t *testing.T) {
	cases := []struct {
		foundation, current int
		word                string
	}{
		{1920, 2023, "года"},
		{2012, 2023, "лет"},
		{2022, 2023, "год"},
		{2023, 2023, "лет"},
		{2030, 2023, "года"}, // -7 mod 10 normalizes to 3
	}

	for _, tc := range cases {
		got := YearWord(Age(tc.foundation, tc.current))
		assert.Equal(t, tc.word, got, "foundation=%d current=%d", tc.foundation, tc.current)
	}
}
