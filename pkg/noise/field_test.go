package noise

import (
	"math"
	"math/rand"
	"sync"
	"testing"

	vecmath "heightfield/internal/math"
)

func approx(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func TestField_EvaluateRange(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for _, mode := range []GradientMode{HashGradients, ReseedGradients} {
		for _, e := range []vecmath.Easing{vecmath.Cubic, vecmath.Quintic} {
			f := New(r.Int63n(1000)-500, WithGradients(mode), WithEasing(e))
			for i := 0; i < 5000; i++ {
				x := r.Float64()*2000 - 1000
				y := r.Float64()*2000 - 1000
				if n := f.Evaluate(x, y); n < 0 || n > 1 || math.IsNaN(n) {
					t.Fatalf("%s/%s Evaluate(%v, %v) = %v, want value in [0,1]", mode, e, x, y, n)
				}
			}
		}
	}
}

func TestField_EvaluateDeterministic(t *testing.T) {
	a := New(42)
	b := New(42)
	for i := 0; i < 200; i++ {
		x := float64(i)*0.37 - 20
		y := float64(i)*0.91 - 50
		n1 := a.Evaluate(x, y)
		n2 := a.Evaluate(x, y)
		n3 := b.Evaluate(x, y)
		if math.Float64bits(n1) != math.Float64bits(n2) || math.Float64bits(n1) != math.Float64bits(n3) {
			t.Fatalf("Evaluate(%v, %v) not reproducible: %v %v %v", x, y, n1, n2, n3)
		}
	}
}

func TestField_EvaluateConcurrent(t *testing.T) {
	f := New(3, WithGradients(ReseedGradients))
	want := make([]float64, 256)
	for i := range want {
		want[i] = f.Evaluate(float64(i)*0.13, float64(i)*-0.29)
	}

	var wg sync.WaitGroup
	errs := make(chan int, 8)
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range want {
				if f.Evaluate(float64(i)*0.13, float64(i)*-0.29) != want[i] {
					errs <- i
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for i := range errs {
		t.Errorf("concurrent Evaluate differs at sample %d", i)
	}
}

func TestField_GradientAtUnitAndStable(t *testing.T) {
	for _, mode := range []GradientMode{HashGradients, ReseedGradients} {
		f := New(1, WithGradients(mode))
		for ix := int64(-8); ix <= 8; ix++ {
			for iy := int64(-8); iy <= 8; iy++ {
				g := f.GradientAt(ix, iy)
				if !approx(g.Length(), 1, 1e-12) {
					t.Errorf("%s GradientAt(%d, %d) = %v has length %v", mode, ix, iy, g, g.Length())
				}
				if g2 := f.GradientAt(ix, iy); g2 != g {
					t.Errorf("%s GradientAt(%d, %d) changed between calls: %v vs %v", mode, ix, iy, g, g2)
				}
			}
		}
	}
}

func TestField_IntegerCoordinatesAreHalf(t *testing.T) {
	for _, mode := range []GradientMode{HashGradients, ReseedGradients} {
		f := New(9, WithGradients(mode))
		for x := -5; x <= 5; x++ {
			for y := -5; y <= 5; y++ {
				if n := f.Evaluate(float64(x), float64(y)); n != 0.5 {
					t.Errorf("%s Evaluate(%d, %d) = %v, want exactly 0.5", mode, x, y, n)
				}
			}
		}
	}
}

// Approaching a shared lattice point from each of the four cells around it
// must converge on the same value.
func TestField_LatticeContinuity(t *testing.T) {
	f := New(11)
	const eps = 1e-9
	for _, c := range [][2]float64{{3, 4}, {0, 0}, {-2, 7}, {-6, -6}} {
		vals := []float64{
			f.Evaluate(c[0]-eps, c[1]-eps),
			f.Evaluate(c[0]+eps, c[1]-eps),
			f.Evaluate(c[0]+eps, c[1]+eps),
			f.Evaluate(c[0]-eps, c[1]+eps),
		}
		for i, v := range vals {
			if !approx(v, 0.5, 1e-6) {
				t.Errorf("corner %v approach %d = %v, want ~0.5", c, i, v)
			}
		}
	}

	// Points along a shared edge, approached from either cell
	for i := 1; i < 20; i++ {
		y := 2 + float64(i)/20
		left := f.Evaluate(5-eps, y)
		right := f.Evaluate(5+eps, y)
		if !approx(left, right, 1e-6) {
			t.Errorf("edge x=5, y=%v: left %v right %v", y, left, right)
		}
	}
}

func TestField_Smooth(t *testing.T) {
	f := New(5)
	const step = 1e-4

	maxJump := func(eval func(x float64) float64) float64 {
		var worst float64
		prev := eval(1.9)
		for x := 1.9 + step; x <= 2.1; x += step {
			n := eval(x)
			worst = math.Max(worst, math.Abs(n-prev))
			prev = n
		}
		return worst
	}

	jump := maxJump(func(x float64) float64 { return f.Evaluate(x, 0.37) })
	if jump > 1e-3 {
		t.Errorf("largest step across x=2 is %v, want < 1e-3", jump)
	}

	// Slope on either side of the boundary should agree with the eased
	// blend, while a linear blend leaves a kink.
	slope := func(eval func(x float64) float64, x float64) float64 {
		return (eval(x+step) - eval(x)) / step
	}
	smooth := func(x float64) float64 { return f.Evaluate(x, 0.37) }
	if d := math.Abs(slope(smooth, 2-2*step) - slope(smooth, 2+step)); d > 1e-2 {
		t.Errorf("eased derivative jumps by %v across x=2", d)
	}

	linear := func(x float64) float64 { return linearEvaluate(f, x, 0.37) }
	if d := math.Abs(slope(linear, 2-2*step) - slope(linear, 2+step)); d < 1e-2 {
		t.Errorf("linear derivative jump %v unexpectedly small; test lost its contrast", d)
	}
}

// linearEvaluate is Evaluate with a plain linear blend
func linearEvaluate(f *Field, x, y float64) float64 {
	fx, fy := math.Floor(x), math.Floor(y)
	ix, iy := int64(fx), int64(fy)
	p := vecmath.Vec2(x, y)
	q := func(cx, cy int64) float64 {
		return vecmath.Dot(vecmath.Sub(p, vecmath.Vec2(float64(cx), float64(cy))), f.GradientAt(cx, cy))
	}
	sx, sy := x-fx, y-fy
	bottom := vecmath.Lerp(q(ix, iy), q(ix+1, iy), sx)
	top := vecmath.Lerp(q(ix, iy+1), q(ix+1, iy+1), sx)
	return vecmath.Lerp(bottom, top, sy)*0.5 + 0.5
}

func TestField_SeedIndependence(t *testing.T) {
	a := New(1)
	b := New(2)

	var same int
	const n = 32
	for py := 0; py < n; py++ {
		for px := 0; px < n; px++ {
			x := (float64(px) + 0.5) / 4
			y := (float64(py) + 0.5) / 4
			if approx(a.Evaluate(x, y), b.Evaluate(x, y), 1e-9) {
				same++
			}
		}
	}
	if same > n*n/10 {
		t.Errorf("%d of %d samples match between seeds 1 and 2", same, n*n)
	}
}

func TestField_NegativeCoordinatesUseFloor(t *testing.T) {
	f := New(1)
	// With floor, (-0.5, -0.5) lies in the cell anchored at (-1, -1), whose
	// corners differ from the cell anchored at (0, 0).
	neg := f.Evaluate(-0.5, -0.5)
	pos := f.Evaluate(0.5, 0.5)
	if neg == pos {
		t.Errorf("Evaluate(-0.5,-0.5) == Evaluate(0.5,0.5) = %v; cells around zero look mirrored", neg)
	}
	if !approx(neg, 0.1835500136097321, 1e-12) {
		t.Errorf("Evaluate(-0.5, -0.5) = %v, want 0.1835500136097321", neg)
	}
}

func TestField_Golden(t *testing.T) {
	f := New(1)
	if n := f.Evaluate(0, 0); n != 0.5 {
		t.Errorf("Evaluate(0, 0) = %v, want 0.5", n)
	}

	// 4x4 grid, zoom 16, offset (0, 0)
	golden := [4][4]float64{
		{0.5, 0.5324884649652817, 0.5670715664519643, 0.6006412975742895},
		{0.5039519562722838, 0.535889920561026, 0.5691060329589682, 0.6006401208150292},
		{0.5015708505533821, 0.532689521552355, 0.5641237307414272, 0.5931389753957551},
		{0.4946459689305425, 0.5247396410734726, 0.5541060771029116, 0.5802967201528167},
	}
	const zoom = 16
	for py := 0; py < 4; py++ {
		for px := 0; px < 4; px++ {
			n := f.Evaluate(float64(px)/zoom, float64(py)/zoom)
			if n < 0 || n > 1 {
				t.Errorf("pixel (%d, %d) = %v outside [0,1]", px, py, n)
			}
			if !approx(n, golden[py][px], 1e-12) {
				t.Errorf("pixel (%d, %d) = %v, want %v", px, py, n, golden[py][px])
			}
		}
	}

	tests := []struct {
		seed int64
		x, y float64
		want float64
	}{
		{1, 2.5, 3.25, 0.6474669360123188},
		{2, 2.5, 3.25, 0.5673655334280334},
	}
	for _, test := range tests {
		if n := New(test.seed).Evaluate(test.x, test.y); !approx(n, test.want, 1e-12) {
			t.Errorf("seed %d Evaluate(%v, %v) = %v, want %v", test.seed, test.x, test.y, n, test.want)
		}
	}
}

func TestParseGradientMode(t *testing.T) {
	tests := []struct {
		in   string
		want GradientMode
		err  bool
	}{
		{"", HashGradients, false},
		{"hash", HashGradients, false},
		{"Reseed", ReseedGradients, false},
		{"simplex", HashGradients, true},
	}
	for _, test := range tests {
		got, err := ParseGradientMode(test.in)
		if (err != nil) != test.err || got != test.want {
			t.Errorf("ParseGradientMode(%q) = %v, %v", test.in, got, err)
		}
	}
}

func BenchmarkField_Evaluate(b *testing.B) {
	f := New(1)
	var acc float64
	for i := 0; i < b.N; i++ {
		acc += f.Evaluate(float64(i&511)/16, float64((i>>9)&511)/16)
	}
	_ = acc
}

func BenchmarkField_EvaluateReseed(b *testing.B) {
	f := New(1, WithGradients(ReseedGradients))
	var acc float64
	for i := 0; i < b.N; i++ {
		acc += f.Evaluate(float64(i&511)/16, float64((i>>9)&511)/16)
	}
	_ = acc
}

func TestField_ExtremeInputs(t *testing.T) {
	f := New(1)
	for _, x := range []float64{1e15, -1e15, 1e19, -1e19, 1e300} {
		if n := f.Evaluate(x, 0.3); n < 0 || n > 1 {
			t.Errorf("Evaluate(%v, 0.3) = %v outside [0,1]", x, n)
		}
	}
	if n := f.Evaluate(math.NaN(), 0.3); !math.IsNaN(n) {
		t.Errorf("Evaluate(NaN, 0.3) = %v, want NaN", n)
	}
}
