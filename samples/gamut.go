package samples

// Chromaticity is a CIE 1931 xy coordinate.
type Chromaticity = Point

// Primaries of the two gamuts, red, green and blue, in CIE 1931 xy.
var (
	SRGBPrimaries    = [3]Chromaticity{{X: 0.64, Y: 0.33}, {X: 0.30, Y: 0.60}, {X: 0.15, Y: 0.06}}
	Rec2020Primaries = [3]Chromaticity{{X: 0.708, Y: 0.292}, {X: 0.170, Y: 0.797}, {X: 0.131, Y: 0.046}}
)

// WhitePointD65 is shared by both gamuts.
var WhitePointD65 = Chromaticity{X: 0.3127, Y: 0.3290}

// Gamut returns the sRGB and Rec.2020 triangles as closed outlines: four
// points each, the last repeating the red primary.
func Gamut() (srgb, rec2020 Series) {
	return triangle("sRGB", SRGBPrimaries), triangle("Rec.2020", Rec2020Primaries)
}

func triangle(name string, p [3]Chromaticity) Series {
	return Series{Name: name, Points: []Point{p[0], p[1], p[2], p[0]}}
}

// TriangleArea is the area of a closed triangle outline in xy space.
func TriangleArea(s Series) float64 {
	if len(s.Points) < 3 {
		return 0
	}
	a, b, c := s.Points[0], s.Points[1], s.Points[2]
	area := (a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y)) / 2
	if area < 0 {
		area = -area
	}
	return area
}

// Contains reports whether p lies inside or on the triangle outline s.
func Contains(s Series, p Point) bool {
	if len(s.Points) < 3 {
		return false
	}
	a, b, c := s.Points[0], s.Points[1], s.Points[2]
	d1 := cross(p, a, b)
	d2 := cross(p, b, c)
	d3 := cross(p, c, a)
	neg := d1 < 0 || d2 < 0 || d3 < 0
	pos := d1 > 0 || d2 > 0 || d3 > 0
	return !(neg && pos)
}

func cross(p, a, b Point) float64 {
	return (p.X-b.X)*(a.Y-b.Y) - (a.X-b.X)*(p.Y-b.Y)
}
