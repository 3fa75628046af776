package colour

import (
	"fmt"
	"math/bits"
)

// Channel strides accepted by the sample adapter.
const (
	StrideRGB  = 3
	StrideRGBA = 4
)

// SamplesFromBuffer reads a packed RGB or RGBA buffer into colour samples.
// Alpha and any padding byte beyond the third channel are ignored.
func SamplesFromBuffer(buf []byte, stride int) ([]Color, error) {
	if stride != StrideRGB && stride != StrideRGBA {
		return nil, fmt.Errorf("%w: unsupported stride %d (expected 3 or 4)", ErrInvalidBufferLength, stride)
	}
	if len(buf) == 0 {
		return nil, fmt.Errorf("%w: %w: buffer is empty", ErrInvalidBufferLength, ErrEmptyInput)
	}
	if len(buf)%stride != 0 {
		return nil, fmt.Errorf("%w: length %d is not a multiple of %d", ErrInvalidBufferLength, len(buf), stride)
	}

	samples := make([]Color, len(buf)/stride)
	for i := range samples {
		px := buf[i*stride : i*stride+3]
		samples[i] = Color{R: px[0], G: px[1], B: px[2]}
	}
	return samples, nil
}

// SamplesFromImageData is SamplesFromBuffer with the buffer length
// cross-checked against width*height*stride.
func SamplesFromImageData(buf []byte, width, height, stride int) ([]Color, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: negative dimensions %dx%d", ErrDimensionMismatch, width, height)
	}
	hi, area := bits.Mul64(uint64(width), uint64(height))
	hi2, expected := bits.Mul64(area, uint64(max(stride, 0)))
	if hi != 0 || hi2 != 0 || expected != uint64(len(buf)) {
		return nil, fmt.Errorf("%w: buffer length %d does not match %dx%d with stride %d (expected %d)",
			ErrDimensionMismatch, len(buf), width, height, stride, expected)
	}
	return SamplesFromBuffer(buf, stride)
}
