// Package seed derives seeds for the k-means random number generator.
// A seeded extraction is reproducible; an unseeded one is not.
package seed

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"slices"
	"time"
)

// Mode determines how the clustering seed is chosen.
type Mode string

const (
	// ModeContent hashes the pixel buffer, so identical input yields identical palettes.
	ModeContent Mode = "content"
	// ModeManual uses a caller-provided value.
	ModeManual Mode = "manual"
	// ModeRandom draws from the platform entropy source (varies each run).
	ModeRandom Mode = "random"
)

// maxHashedPixels caps how many RGBA pixels ContentSeed hashes.
const maxHashedPixels = 10000

// Config holds seed selection settings.
type Config struct {
	Mode  Mode
	Value *int64 // Only used with ModeManual
}

// Calculate returns the seed for pixels according to config.
func Calculate(pixels []byte, config Config) (int64, error) {
	switch config.Mode {
	case ModeContent:
		return ContentSeed(pixels), nil
	case ModeManual:
		if config.Value == nil {
			return 0, fmt.Errorf("seed value is required for manual seed mode")
		}
		return *config.Value, nil
	case ModeRandom, "":
		return Random(), nil
	default:
		return 0, fmt.Errorf("unknown seed mode: %s", config.Mode)
	}
}

// ContentSeed hashes the buffer length and a grid sample of its 4-byte
// pixels. Large buffers are sampled rather than hashed in full.
func ContentSeed(pixels []byte) int64 {
	hasher := sha256.New()

	var lenBytes [8]byte
	binary.LittleEndian.PutUint64(lenBytes[:], uint64(len(pixels)))
	hasher.Write(lenBytes[:])

	count := len(pixels) / 4
	step := max(count/maxHashedPixels, 1)
	for i := 0; i < count; i += step {
		hasher.Write(pixels[i*4 : i*4+4])
	}
	// Trailing bytes that do not form a full pixel.
	hasher.Write(pixels[count*4:])

	hash := hasher.Sum(nil)
	return int64(binary.LittleEndian.Uint64(hash[:8])) // #nosec G115 -- hash conversion is safe
}

// Random returns a seed from crypto/rand, falling back to the clock if the
// entropy source fails.
func Random() int64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return time.Now().UnixNano()
	}
	return int64(binary.LittleEndian.Uint64(buf[:])) // #nosec G115 -- random bits
}

// ValidModes returns the accepted seed modes.
func ValidModes() []Mode {
	return []Mode{ModeContent, ModeManual, ModeRandom}
}

// ParseMode converts a string to a Mode.
func ParseMode(s string) (Mode, error) {
	mode := Mode(s)
	if slices.Contains(ValidModes(), mode) {
		return mode, nil
	}
	return "", fmt.Errorf("invalid seed mode: %s (valid: content, manual, random)", s)
}
