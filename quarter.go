package squircle

// QuarterRotate rotates v clockwise by n quarter turns, without any
// trigonometry. n may be any integer; it is taken modulo 4.
//
// Rotation is clockwise in this package's y-up frame: QuarterRotate(Vec(1, 0), 1)
// is Vec(0, -1).
func QuarterRotate(v Vec2, n int) Vec2 {
	n = ((n % 4) + 4) % 4
	signX, signY := 1.0, 1.0
	if n >= 2 {
		signX = -1
	}
	if (n+1)%4 >= 2 {
		signY = -1
	}
	if n%2 == 1 {
		v = v.Transpose()
	}
	return Vec2{signX * v.X, signY * v.Y}
}
