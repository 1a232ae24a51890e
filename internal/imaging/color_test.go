package imaging

import (
	"errors"
	"testing"
)

func TestRGB_Inverted(t *testing.T) {
	tests := []struct {
		in, want RGB
	}{
		{RGB{0, 0, 0}, RGB{255, 255, 255}},
		{RGB{255, 255, 255}, RGB{0, 0, 0}},
		{RGB{10, 128, 200}, RGB{245, 127, 55}},
	}

	for _, tt := range tests {
		if got := tt.in.Inverted(); got != tt.want {
			t.Errorf("%+v.Inverted(): got %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestRGB_Gray(t *testing.T) {
	tests := []struct {
		in   RGB
		want uint8
	}{
		{RGB{10, 20, 30}, 20},
		{RGB{255, 255, 255}, 255},
		{RGB{0, 0, 0}, 0},
		{RGB{1, 1, 0}, 0},         // 2/3 truncates
		{RGB{255, 255, 254}, 254}, // 764/3 = 254.67 truncates
		{RGB{100, 0, 0}, 33},
	}

	for _, tt := range tests {
		got := tt.in.Gray()
		if got.R != tt.want || got.G != tt.want || got.B != tt.want {
			t.Errorf("%+v.Gray(): got %+v, want all %d", tt.in, got, tt.want)
		}
	}
}

func TestRGB_Hex(t *testing.T) {
	tests := []struct {
		in   RGB
		want string
	}{
		{RGB{255, 0, 0}, "#FF0000"},
		{RGB{0, 255, 0}, "#00FF00"},
		{RGB{18, 52, 171}, "#1234AB"},
		{RGB{0, 0, 0}, "#000000"},
	}

	for _, tt := range tests {
		if got := tt.in.Hex(); got != tt.want {
			t.Errorf("%+v.Hex(): got %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestRGB_HSL(t *testing.T) {
	tests := []struct {
		name string
		in   RGB
		want HSLColor
	}{
		{"red", RGB{255, 0, 0}, HSLColor{H: 0, S: 100, L: 50}},
		{"green", RGB{0, 255, 0}, HSLColor{H: 120, S: 100, L: 50}},
		{"blue", RGB{0, 0, 255}, HSLColor{H: 240, S: 100, L: 50}},
		{"white", RGB{255, 255, 255}, HSLColor{H: 0, S: 0, L: 100}},
		{"black", RGB{0, 0, 0}, HSLColor{H: 0, S: 0, L: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.HSL(); got != tt.want {
				t.Errorf("HSL: got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSample(t *testing.T) {
	g := gridFromRows(t, [][]RGB{
		{{255, 0, 0}, {0, 255, 0}},
		{{0, 0, 255}, {255, 255, 255}},
	})

	result, err := Sample(g, 1, 0)
	if err != nil {
		t.Fatalf("Sample failed: %v", err)
	}
	if result.Hex != "#00FF00" {
		t.Errorf("Hex: got %s, want #00FF00", result.Hex)
	}
	if result.RGB != (RGB{0, 255, 0}) {
		t.Errorf("RGB: got %+v, want {0 255 0}", result.RGB)
	}
	if result.HSL.H != 120 {
		t.Errorf("HSL.H: got %d, want 120", result.HSL.H)
	}
	if result.X != 1 || result.Y != 0 {
		t.Errorf("coordinates: got (%d,%d), want (1,0)", result.X, result.Y)
	}
}

func TestSample_OutOfBounds(t *testing.T) {
	g := uniformGrid(t, 2, 2, RGB{1, 2, 3})

	tests := []struct {
		name string
		x, y int
	}{
		{"x too large", 2, 0},
		{"y too large", 0, 2},
		{"negative", -1, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Sample(g, tt.x, tt.y); !errors.Is(err, ErrOutOfBounds) {
				t.Errorf("Sample(%d,%d): got %v, want ErrOutOfBounds", tt.x, tt.y, err)
			}
		})
	}
}
