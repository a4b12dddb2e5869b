package color

import (
	"fmt"
	"math"
)

// WCAG contrast thresholds.
const (
	AANormalThreshold  = 4.5
	AALargeThreshold   = 3.0
	AAANormalThreshold = 7.0
	AAALargeThreshold  = 4.5
)

// Grade buckets a contrast result the way swatch cards display it.
type Grade string

const (
	GradePass Grade = "pass"
	GradeGood Grade = "good"
	GradePoor Grade = "poor"
	GradeFail Grade = "fail"
)

// ContrastInfo bundles a contrast ratio with the four WCAG verdicts.
type ContrastInfo struct {
	Ratio     float64 `json:"ratio"`
	AANormal  bool    `json:"aaNormal"`
	AALarge   bool    `json:"aaLarge"`
	AAANormal bool    `json:"aaaNormal"`
	AAALarge  bool    `json:"aaaLarge"`
}

// Luminance returns the WCAG relative luminance of v, from 0 to 1.
func Luminance(v Value) (float64, error) {
	rgba, err := ToRGBA(v)
	if err != nil {
		return 0, err
	}

	r := linearize(float64(rgba.r) / 255)
	g := linearize(float64(rgba.g) / 255)
	b := linearize(float64(rgba.b) / 255)

	return 0.2126*r + 0.7152*g + 0.0722*b, nil
}

func linearize(c float64) float64 {
	if c <= 0.03928 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// ContrastRatio returns (lighter+0.05)/(darker+0.05), between 1 and 21.
func ContrastRatio(a, b Value) (float64, error) {
	l1, err := Luminance(a)
	if err != nil {
		return 0, err
	}
	l2, err := Luminance(b)
	if err != nil {
		return 0, err
	}

	lighter := math.Max(l1, l2)
	darker := math.Min(l1, l2)

	return (lighter + 0.05) / (darker + 0.05), nil
}

// MeetsWCAGAA checks the AA threshold: 3.0 for large text, 4.5 otherwise.
func MeetsWCAGAA(a, b Value, largeText bool) (bool, error) {
	ratio, err := ContrastRatio(a, b)
	if err != nil {
		return false, err
	}
	return meetsAA(ratio, largeText), nil
}

// MeetsWCAGAAA checks the AAA threshold: 4.5 for large text, 7.0 otherwise.
func MeetsWCAGAAA(a, b Value, largeText bool) (bool, error) {
	ratio, err := ContrastRatio(a, b)
	if err != nil {
		return false, err
	}
	return meetsAAA(ratio, largeText), nil
}

func meetsAA(ratio float64, largeText bool) bool {
	if largeText {
		return ratio >= AALargeThreshold
	}
	return ratio >= AANormalThreshold
}

func meetsAAA(ratio float64, largeText bool) bool {
	if largeText {
		return ratio >= AAALargeThreshold
	}
	return ratio >= AAANormalThreshold
}

// PickBestContrast returns the candidate with the highest contrast against
// base. Ties keep the earliest candidate. The boolean is false when there
// are no candidates.
func PickBestContrast(base Value, candidates []Value) (Value, bool, error) {
	var best Value
	bestRatio := 0.0
	for _, candidate := range candidates {
		ratio, err := ContrastRatio(base, candidate)
		if err != nil {
			return nil, false, err
		}
		if ratio > bestRatio {
			bestRatio = ratio
			best = candidate
		}
	}
	return best, best != nil, nil
}

// Contrast computes the ratio and every WCAG verdict for a color pair.
func Contrast(a, b Value) (ContrastInfo, error) {
	ratio, err := ContrastRatio(a, b)
	if err != nil {
		return ContrastInfo{}, err
	}
	return ContrastInfo{
		Ratio:     ratio,
		AANormal:  meetsAA(ratio, false),
		AALarge:   meetsAA(ratio, true),
		AAANormal: meetsAAA(ratio, false),
		AAALarge:  meetsAAA(ratio, true),
	}, nil
}

// Grade classifies the result: pass when every check passes, good when
// both AA checks pass, poor when only AA normal passes, fail otherwise.
func (c ContrastInfo) Grade() Grade {
	switch {
	case c.AANormal && c.AALarge && c.AAANormal && c.AAALarge:
		return GradePass
	case c.AANormal && c.AALarge:
		return GradeGood
	case c.AANormal:
		return GradePoor
	default:
		return GradeFail
	}
}

// RatioLabel formats the ratio as "4.50:1".
func (c ContrastInfo) RatioLabel() string {
	return fmt.Sprintf("%.2f:1", c.Ratio)
}
