package imaging

import (
	"errors"
	"image"
	"image/color"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// gridFromRows builds a grid from rows of samples; rows[y][x] is pixel (x,y).
func gridFromRows(t *testing.T, rows [][]RGB) *Grid {
	t.Helper()
	g, err := NewGrid(len(rows[0]), len(rows))
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	for y, row := range rows {
		for x, c := range row {
			if err := g.Set(x, y, c); err != nil {
				t.Fatalf("Set(%d,%d) failed: %v", x, y, err)
			}
		}
	}
	return g
}

// rowsOf returns the samples of g as rows, for cmp.Diff.
func rowsOf(g *Grid) [][]RGB {
	rows := make([][]RGB, g.Height())
	for y := range rows {
		rows[y] = make([]RGB, g.Width())
		for x := range rows[y] {
			rows[y][x] = g.at(x, y)
		}
	}
	return rows
}

// randomGrid fills a grid with pseudo-random samples from a fixed seed.
func randomGrid(t *testing.T, seed int64, width, height int) *Grid {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	g, err := NewGrid(width, height)
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	for i := range g.pix {
		g.pix[i] = RGB{R: uint8(rng.Intn(256)), G: uint8(rng.Intn(256)), B: uint8(rng.Intn(256))}
	}
	return g
}

// uniformGrid creates a grid filled with a single color.
func uniformGrid(t *testing.T, width, height int, c RGB) *Grid {
	t.Helper()
	g, err := NewGrid(width, height)
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	for i := range g.pix {
		g.pix[i] = c
	}
	return g
}

func assertSameGrid(t *testing.T, got, want *Grid) {
	t.Helper()
	if got.Width() != want.Width() || got.Height() != want.Height() {
		t.Fatalf("dimensions: got %dx%d, want %dx%d", got.Width(), got.Height(), want.Width(), want.Height())
	}
	if diff := cmp.Diff(rowsOf(want), rowsOf(got)); diff != "" {
		t.Errorf("grid mismatch (-want +got):\n%s", diff)
	}
}

func TestNewGrid(t *testing.T) {
	g, err := NewGrid(4, 3)
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	if g.Width() != 4 || g.Height() != 3 {
		t.Errorf("dimensions: got %dx%d, want 4x3", g.Width(), g.Height())
	}
	if len(g.pix) != 12 {
		t.Errorf("sample count: got %d, want 12", len(g.pix))
	}
	for i, c := range g.pix {
		if c != (RGB{}) {
			t.Fatalf("sample %d: got %+v, want zero", i, c)
		}
	}
}

func TestNewGrid_InvalidSize(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{"zero width", 0, 5},
		{"zero height", 5, 0},
		{"negative width", -1, 5},
		{"negative height", 5, -3},
		{"both zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGrid(tt.width, tt.height)
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("NewGrid(%d,%d): got %v, want ErrInvalidArgument", tt.width, tt.height, err)
			}
		})
	}
}

func TestGrid_GetSet(t *testing.T) {
	g, _ := NewGrid(3, 2)
	c := RGB{R: 10, G: 20, B: 30}

	if err := g.Set(2, 1, c); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	got, err := g.Get(2, 1)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != c {
		t.Errorf("Get(2,1): got %+v, want %+v", got, c)
	}

	// Row-major layout: (2,1) is index 1*3+2
	if g.pix[5] != c {
		t.Errorf("pix[5]: got %+v, want %+v", g.pix[5], c)
	}
}

func TestGrid_OutOfBounds(t *testing.T) {
	g, _ := NewGrid(3, 2)

	tests := []struct {
		name string
		x, y int
	}{
		{"x at width", 3, 0},
		{"y at height", 0, 2},
		{"x negative", -1, 0},
		{"y negative", 0, -1},
		{"far outside", 100, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := g.Get(tt.x, tt.y); !errors.Is(err, ErrOutOfBounds) {
				t.Errorf("Get: got %v, want ErrOutOfBounds", err)
			}
			if err := g.Set(tt.x, tt.y, RGB{R: 1}); !errors.Is(err, ErrOutOfBounds) {
				t.Errorf("Set: got %v, want ErrOutOfBounds", err)
			}
		})
	}
}

func TestGrid_Clone(t *testing.T) {
	g := randomGrid(t, 1, 5, 4)
	c := g.Clone()
	assertSameGrid(t, c, g)

	c.set(0, 0, RGB{R: 1, G: 2, B: 3})
	c.set(1, 0, RGB{R: 4, G: 5, B: 6})
	if g.Equal(c) {
		t.Error("modifying the clone changed the original")
	}
}

func TestGrid_Equal(t *testing.T) {
	a := randomGrid(t, 7, 4, 4)
	b := randomGrid(t, 7, 4, 4)
	if !a.Equal(b) {
		t.Error("grids from the same seed should be equal")
	}

	wide := randomGrid(t, 7, 8, 2)
	if a.Equal(wide) {
		t.Error("grids of different sizes should not be equal")
	}

	var nilGrid *Grid
	if a.Equal(nilGrid) {
		t.Error("grid should not equal nil")
	}
}

func TestFromImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{255, 0, 0, 255})
	img.Set(1, 0, color.RGBA{0, 255, 0, 255})
	img.Set(0, 1, color.RGBA{0, 0, 255, 255})
	img.Set(1, 1, color.RGBA{10, 20, 30, 255})

	g, err := FromImage(img)
	if err != nil {
		t.Fatalf("FromImage failed: %v", err)
	}

	want := [][]RGB{
		{{255, 0, 0}, {0, 255, 0}},
		{{0, 0, 255}, {10, 20, 30}},
	}
	if diff := cmp.Diff(want, rowsOf(g)); diff != "" {
		t.Errorf("FromImage mismatch (-want +got):\n%s", diff)
	}
}

func TestFromImage_OffsetBounds(t *testing.T) {
	img := image.NewRGBA(image.Rect(5, 5, 8, 7))
	img.Set(5, 5, color.RGBA{1, 2, 3, 255})
	img.Set(7, 6, color.RGBA{4, 5, 6, 255})

	g, err := FromImage(img)
	if err != nil {
		t.Fatalf("FromImage failed: %v", err)
	}
	if g.Width() != 3 || g.Height() != 2 {
		t.Fatalf("dimensions: got %dx%d, want 3x2", g.Width(), g.Height())
	}
	if got := g.at(0, 0); got != (RGB{1, 2, 3}) {
		t.Errorf("origin: got %+v, want {1 2 3}", got)
	}
	if got := g.at(2, 1); got != (RGB{4, 5, 6}) {
		t.Errorf("corner: got %+v, want {4 5 6}", got)
	}
}

func TestFromImage_TranslucentKeepsStraightColor(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{200, 100, 50, 128})
	img.SetNRGBA(1, 0, color.NRGBA{10, 20, 30, 0})

	g, err := FromImage(img)
	if err != nil {
		t.Fatalf("FromImage failed: %v", err)
	}
	want := [][]RGB{{{200, 100, 50}, {10, 20, 30}}}
	if diff := cmp.Diff(want, rowsOf(g)); diff != "" {
		t.Errorf("FromImage mismatch (-want +got):\n%s", diff)
	}
}

func TestFromImage_Gray(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 1, 1))
	img.SetGray(0, 0, color.Gray{Y: 77})

	g, err := FromImage(img)
	if err != nil {
		t.Fatalf("FromImage failed: %v", err)
	}
	if got := g.at(0, 0); got != (RGB{77, 77, 77}) {
		t.Errorf("gray sample: got %+v, want {77 77 77}", got)
	}
}

func TestFromImage_Empty(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 0, 0))
	if _, err := FromImage(img); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("FromImage on empty image: got %v, want ErrInvalidArgument", err)
	}
}

func TestGrid_ImageRoundTrip(t *testing.T) {
	g := randomGrid(t, 42, 7, 5)
	img := g.Image()

	if img.Bounds() != image.Rect(0, 0, 7, 5) {
		t.Errorf("bounds: got %v, want (0,0)-(7,5)", img.Bounds())
	}
	if a := img.NRGBAAt(3, 3).A; a != 255 {
		t.Errorf("alpha: got %d, want 255", a)
	}

	back, err := FromImage(img)
	if err != nil {
		t.Fatalf("FromImage failed: %v", err)
	}
	assertSameGrid(t, back, g)
}
