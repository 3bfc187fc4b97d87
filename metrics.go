package vector

import "unsafe"

// BytesLive returns the number of bytes occupied by live elements.
func (v *Vector[T]) BytesLive() int {
	return v.size * int(unsafe.Sizeof(*new(T)))
}

// BytesReserved returns the total number of bytes the backing buffer was
// sized for, live or not.
func (v *Vector[T]) BytesReserved() int {
	return v.buf.Cap() * int(unsafe.Sizeof(*new(T)))
}

// Utilization returns the ratio of live slots to capacity (0.0 to 1.0).
// Returns 0.0 for a vector with no storage.
func (v *Vector[T]) Utilization() float64 {
	if v.buf.Cap() == 0 {
		return 0
	}
	return float64(v.size) / float64(v.buf.Cap())
}

// Metrics returns a snapshot of vector statistics.
func (v *Vector[T]) Metrics() VectorMetrics {
	return VectorMetrics{
		Len:           v.size,
		Cap:           v.buf.Cap(),
		Spare:         v.buf.Cap() - v.size,
		BytesLive:     v.BytesLive(),
		BytesReserved: v.BytesReserved(),
		Utilization:   v.Utilization(),
	}
}

// VectorMetrics contains statistical information about a vector.
type VectorMetrics struct {
	Len           int     // Live elements
	Cap           int     // Total slot capacity
	Spare         int     // Dead slots available before the next growth
	BytesLive     int     // Bytes occupied by live elements
	BytesReserved int     // Bytes reserved by the backing buffer
	Utilization   float64 // Ratio of live slots to capacity (0.0-1.0)
}
