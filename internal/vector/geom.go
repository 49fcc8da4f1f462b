package vector

type Point struct {
	X, Y float64
}

type Size struct {
	Width, Height float64
}

type Rect struct {
	X, Y, Width, Height float64
}

func Scalar(x float64) Vec1 {
	return Vec1{lanes: [1]float64{x}}
}

func ScalarOf(v Vec1) float64 {
	return v.lanes[0]
}

func (p Point) Vector() Vec2 {
	return Vec2{lanes: [2]float64{p.X, p.Y}}
}

func PointOf(v Vec2) Point {
	return Point{X: v.lanes[0], Y: v.lanes[1]}
}

func (s Size) Vector() Vec2 {
	return Vec2{lanes: [2]float64{s.Width, s.Height}}
}

func SizeOf(v Vec2) Size {
	return Size{Width: v.lanes[0], Height: v.lanes[1]}
}

func (r Rect) Vector() Vec4 {
	return Vec4{lanes: [4]float64{r.X, r.Y, r.Width, r.Height}}
}

func RectOf(v Vec4) Rect {
	return Rect{X: v.lanes[0], Y: v.lanes[1], Width: v.lanes[2], Height: v.lanes[3]}
}

func (r Rect) Origin() Point { return Point{X: r.X, Y: r.Y} }

func (r Rect) Size() Size { return Size{Width: r.Width, Height: r.Height} }
