// Package grid provides small fixed-arity point types for code that feeds
// coordinates into the noise engines. They are plain value types: copy
// them freely, compare them with ==.
package grid

// Indexable is the generic capability over any fixed-arity point: report
// the arity and read a component.
type Indexable interface {
	// Dim returns the number of components.
	Dim() int
	// Get returns component i. Out-of-range i panics, as slice indexing
	// would.
	Get(i int) float64
}

// Mutable extends Indexable with component writes.
type Mutable interface {
	Indexable
	// Set replaces component i.
	Set(i int, v float64)
}

// Coords appends the components of p to dst and returns the result. Pass
// a slice with spare capacity to avoid allocation:
//
//	buf := make([]float64, 0, 6)
//	v, err := gen.Noise(grid.Coords(pt, buf)...)
func Coords(p Indexable, dst []float64) []float64 {
	for i := 0; i < p.Dim(); i++ {
		dst = append(dst, p.Get(i))
	}
	return dst
}

// Point2 is a 2D point.
type Point2 struct{ X, Y float64 }

// Dim returns 2.
func (Point2) Dim() int { return 2 }

// Get returns component i.
func (p Point2) Get(i int) float64 { return [2]float64{p.X, p.Y}[i] }

// Set replaces component i.
func (p *Point2) Set(i int, v float64) {
	switch i {
	case 0:
		p.X = v
	case 1:
		p.Y = v
	default:
		panic("grid: Point2 index out of range")
	}
}

// Point3 is a 3D point.
type Point3 struct{ X, Y, Z float64 }

// Dim returns 3.
func (Point3) Dim() int { return 3 }

// Get returns component i.
func (p Point3) Get(i int) float64 { return [3]float64{p.X, p.Y, p.Z}[i] }

// Set replaces component i.
func (p *Point3) Set(i int, v float64) {
	switch i {
	case 0:
		p.X = v
	case 1:
		p.Y = v
	case 2:
		p.Z = v
	default:
		panic("grid: Point3 index out of range")
	}
}

// Point4 is a 4D point.
type Point4 struct{ X, Y, Z, W float64 }

// Dim returns 4.
func (Point4) Dim() int { return 4 }

// Get returns component i.
func (p Point4) Get(i int) float64 { return [4]float64{p.X, p.Y, p.Z, p.W}[i] }

// Set replaces component i.
func (p *Point4) Set(i int, v float64) {
	switch i {
	case 0:
		p.X = v
	case 1:
		p.Y = v
	case 2:
		p.Z = v
	case 3:
		p.W = v
	default:
		panic("grid: Point4 index out of range")
	}
}

// Point5 is a 5D point.
type Point5 struct{ X, Y, Z, W, U float64 }

// Dim returns 5.
func (Point5) Dim() int { return 5 }

// Get returns component i.
func (p Point5) Get(i int) float64 { return [5]float64{p.X, p.Y, p.Z, p.W, p.U}[i] }

// Set replaces component i.
func (p *Point5) Set(i int, v float64) {
	switch i {
	case 0:
		p.X = v
	case 1:
		p.Y = v
	case 2:
		p.Z = v
	case 3:
		p.W = v
	case 4:
		p.U = v
	default:
		panic("grid: Point5 index out of range")
	}
}

// Point6 is a 6D point.
type Point6 struct{ X, Y, Z, W, U, V float64 }

// Dim returns 6.
func (Point6) Dim() int { return 6 }

// Get returns component i.
func (p Point6) Get(i int) float64 { return [6]float64{p.X, p.Y, p.Z, p.W, p.U, p.V}[i] }

// Set replaces component i.
func (p *Point6) Set(i int, v float64) {
	switch i {
	case 0:
		p.X = v
	case 1:
		p.Y = v
	case 2:
		p.Z = v
	case 3:
		p.W = v
	case 4:
		p.U = v
	case 5:
		p.V = v
	default:
		panic("grid: Point6 index out of range")
	}
}
