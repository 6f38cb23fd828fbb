package io

// FrameTicks rescales a duty from the on-board 2000-tick frame to a frame
// with the given resolution, truncating. Both frames span the same 20 ms,
// so the pulse width is preserved.
func FrameTicks(duty, resolution uint32) uint16 {
	return uint16(uint64(duty) * uint64(resolution) / FrameRange)
}
