package model

// Location представляет координаты в игровом мире.
// Value type, передаётся по значению (immutable).
type Location struct {
	Landblock uint16 // owning landblock id
	X         float32
	Y         float32
	Z         float32
	Heading   uint16 // 0-65535
}

// NewLocation создаёт Location с указанными координатами.
func NewLocation(landblock uint16, x, y, z float32, heading uint16) Location {
	return Location{Landblock: landblock, X: x, Y: y, Z: z, Heading: heading}
}

// WithHeading возвращает новый Location с обновлённым направлением (immutable pattern).
func (l Location) WithHeading(heading uint16) Location {
	l.Heading = heading
	return l
}

// DistanceSquared возвращает квадрат расстояния до другой точки (без sqrt для производительности).
// Landblocks are ignored: callers compare locations in the same landblock.
func (l Location) DistanceSquared(other Location) float64 {
	dx := float64(l.X - other.X)
	dy := float64(l.Y - other.Y)
	dz := float64(l.Z - other.Z)
	return dx*dx + dy*dy + dz*dz
}
