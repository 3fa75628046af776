package colour

import (
	"errors"
	"slices"
	"testing"
)

func TestSamplesFromBuffer(t *testing.T) {
	tests := []struct {
		name    string
		buf     []byte
		stride  int
		want    []Color
		wantErr []error
	}{
		{
			name:   "rgba ignores alpha",
			buf:    []byte{255, 0, 0, 10, 0, 0, 255, 255},
			stride: StrideRGBA,
			want:   []Color{{R: 255}, {B: 255}},
		},
		{
			name:   "rgb",
			buf:    []byte{1, 2, 3, 4, 5, 6},
			stride: StrideRGB,
			want:   []Color{{R: 1, G: 2, B: 3}, {R: 4, G: 5, B: 6}},
		},
		{
			name:    "not a multiple of stride",
			buf:     []byte{1, 2, 3, 4, 5},
			stride:  StrideRGBA,
			wantErr: []error{ErrInvalidBufferLength},
		},
		{
			name:    "empty",
			buf:     nil,
			stride:  StrideRGBA,
			wantErr: []error{ErrInvalidBufferLength, ErrEmptyInput},
		},
		{
			name:    "unsupported stride",
			buf:     []byte{1, 2},
			stride:  2,
			wantErr: []error{ErrInvalidBufferLength},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SamplesFromBuffer(tt.buf, tt.stride)
			if len(tt.wantErr) > 0 {
				for _, want := range tt.wantErr {
					if !errors.Is(err, want) {
						t.Errorf("SamplesFromBuffer() error = %v, want %v", err, want)
					}
				}
				return
			}
			if err != nil {
				t.Fatalf("SamplesFromBuffer() unexpected error: %v", err)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("SamplesFromBuffer() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSamplesFromImageData(t *testing.T) {
	buf := make([]byte, 2*3*4)

	if got, err := SamplesFromImageData(buf, 2, 3, StrideRGBA); err != nil || len(got) != 6 {
		t.Fatalf("SamplesFromImageData() = %d samples, %v", len(got), err)
	}

	tests := []struct {
		name          string
		width, height int
		stride        int
	}{
		{name: "wrong width", width: 3, height: 3, stride: StrideRGBA},
		{name: "wrong stride", width: 2, height: 3, stride: StrideRGB},
		{name: "negative", width: -2, height: -3, stride: StrideRGBA},
		{name: "overflow", width: 1 << 62, height: 1 << 62, stride: StrideRGBA},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SamplesFromImageData(buf, tt.width, tt.height, tt.stride)
			if !errors.Is(err, ErrDimensionMismatch) {
				t.Errorf("SamplesFromImageData() error = %v, want %v", err, ErrDimensionMismatch)
			}
		})
	}
}
