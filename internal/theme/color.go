package theme

import (
	"fmt"
	"math"
	"strings"
)

// lightThreshold is half of the 24-bit colour range. Backgrounds strictly
// above it count as light.
const lightThreshold = 0x7fffff

// parseHex reads the number after the first character of hex. Like a
// browser's parseInt with radix 16 it skips leading spaces, accepts a sign
// and an optional 0x prefix, and stops at the first character that is not a
// hex digit, so "#12345g" reads as 0x12345. Input without any digits yields
// 0, so a malformed colour behaves as black.
func parseHex(hex string) float64 {
	if hex == "" {
		return 0
	}
	s := strings.TrimLeft(hex[1:], " \t\n\r")

	sign := 1.0
	if s != "" && (s[0] == '-' || s[0] == '+') {
		if s[0] == '-' {
			sign = -1
		}
		s = s[1:]
	}
	if len(s) > 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}

	var v float64
	for i := 0; i < len(s); i++ {
		d, ok := hexDigit(s[i])
		if !ok {
			break
		}
		v = v*16 + float64(d)
	}
	return sign * v
}

func hexDigit(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10, true
	}
	return 0, false
}

// toInt32 converts v the way bitwise operators do: truncate, then wrap to
// 32 bits.
func toInt32(v float64) int32 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return int32(uint32(int64(math.Mod(math.Trunc(v), 1<<32))))
}

// AdjustBrightness shifts every channel of hex by round(255*percent) and
// clamps the result to [0,255]. The arithmetic is linear per channel with no
// gamma handling. The result is always "#" followed by 6 lowercase digits.
func AdjustBrightness(hex string, percent float64) string {
	num := toInt32(parseHex(hex))
	// half-up rounding, so -25.5 becomes -25
	delta := int(math.Floor(255*percent + 0.5))

	// The red channel is not masked: digits beyond six push it past 255
	// before clamping.
	r := clampChannel(int(num>>16) + delta)
	g := clampChannel(int(num>>8&0xff) + delta)
	b := clampChannel(int(num&0xff) + delta)

	return fmt.Sprintf("#%06x", r<<16|g<<8|b)
}

func clampChannel(v int) int {
	return max(0, min(255, v))
}

// IsLightBackground reports whether the integer value of hex is above half
// the 24-bit range. This is a coarse test, not perceptual luminance.
func IsLightBackground(hex string) bool {
	return parseHex(hex) > lightThreshold
}
