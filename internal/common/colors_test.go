package common

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumberColors(t *testing.T) {
	seen := make(map[color.RGBA]int)
	for count := 1; count <= 8; count++ {
		c := NumberColor(count)
		assert.Equal(t, uint8(255), c.A, "count %d should be opaque", count)
		if prev, dup := seen[c]; dup {
			t.Errorf("counts %d and %d share a color", prev, count)
		}
		seen[c] = count
	}

	one := NumberColor(1)
	assert.True(t, one.B > one.R && one.B > one.G, "1 is blue")
	three := NumberColor(3)
	assert.True(t, three.R > three.G && three.R > three.B, "3 is red")
}

func TestNumberColorOutOfRange(t *testing.T) {
	black := color.RGBA{0, 0, 0, 255}
	assert.Equal(t, black, NumberColor(0))
	assert.Equal(t, black, NumberColor(9))
	assert.Equal(t, black, NumberColor(-3))
}

func TestRGB(t *testing.T) {
	tests := []struct {
		name     string
		in       [3]int
		expected color.RGBA
	}{
		{"plain", [3]int{10, 20, 30}, color.RGBA{10, 20, 30, 255}},
		{"black", [3]int{0, 0, 0}, color.RGBA{0, 0, 0, 255}},
		{"clamped", [3]int{-5, 300, 255}, color.RGBA{0, 255, 255, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RGB(tt.in))
		})
	}
}

func TestShiftColor(t *testing.T) {
	base := color.RGBA{100, 150, 250, 255}

	assert.Equal(t, color.RGBA{130, 180, 255, 255}, ShiftColor(base, 30))
	assert.Equal(t, color.RGBA{70, 120, 220, 255}, ShiftColor(base, -30))
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, ShiftColor(color.Black, -10))
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, ShiftColor(color.White, 10))
}

func TestWithAlpha(t *testing.T) {
	c := WithAlpha(color.RGBA{1, 2, 3, 255}, 64)
	assert.Equal(t, color.RGBA{1, 2, 3, 64}, c)
}
