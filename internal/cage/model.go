// Package cage confines remote pointer moves to a screen rectangle.
package cage

// Rect describes a rectangle using top-left origin and size.
type Rect struct {
	X int `json:"x" yaml:"x" toml:"x"`
	Y int `json:"y" yaml:"y" toml:"y"`
	W int `json:"w" yaml:"w" toml:"w"`
	H int `json:"h" yaml:"h" toml:"h"`
}

// Normalize returns a rectangle with non-negative width/height.
func Normalize(r Rect) Rect {
	if r.W < 0 {
		r.X += r.W
		r.W = -r.W
	}
	if r.H < 0 {
		r.Y += r.H
		r.H = -r.H
	}
	return r
}

// Empty reports whether r covers no pixels once normalized.
func Empty(r Rect) bool {
	r = Normalize(r)
	return r.W <= 0 || r.H <= 0
}

// Contains reports whether a point is one of the pixels Clamp can return for r.
func Contains(r Rect, x, y int) bool {
	r = Normalize(r)
	if r.W <= 0 || r.H <= 0 {
		return false
	}
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Clamp clamps (x,y) to the last addressable pixel inside rect.
// An empty rect leaves the point unchanged.
func Clamp(rect Rect, x, y int) (int, int) {
	rect = Normalize(rect)
	if rect.W <= 0 || rect.H <= 0 {
		return x, y
	}
	x = min(max(x, rect.X), rect.X+rect.W-1)
	y = min(max(y, rect.Y), rect.Y+rect.H-1)
	return x, y
}

// Center returns the center point of rect.
func Center(rect Rect) (int, int) {
	rect = Normalize(rect)
	return rect.X + rect.W/2, rect.Y + rect.H/2
}
