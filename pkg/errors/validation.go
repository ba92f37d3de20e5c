package errors

import (
	"regexp"
	"strings"
)

// validAlgorithmNames is the enumerated set accepted by §6.3's algorithm
// selection: L1P, L1S, L1S+, Blocks, S-Blocks.
var validAlgorithmNames = map[string]bool{
	"blocks":   true,
	"l1p":      true,
	"l1s":      true,
	"l1s+":     true,
	"sblocks":  true,
	"s-blocks": true,
}

// ValidateAlgorithmName checks that name is one of the algorithms the
// driver may select by name.
func ValidateAlgorithmName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidAlgorithm, "algorithm name cannot be empty")
	}
	if !validAlgorithmNames[strings.ToLower(name)] {
		return New(ErrCodeInvalidAlgorithm, "unknown algorithm %q", name)
	}
	return nil
}

// settingKindRegex matches the Kind strings a SettingField may declare
// ("bool", "float", "int").
var settingKindRegex = regexp.MustCompile(`^(bool|float|int)$`)

// ValidateSettingKind checks that kind is one of the recognized
// SettingField.Kind values.
func ValidateSettingKind(kind string) error {
	if !settingKindRegex.MatchString(kind) {
		return New(ErrCodeInvalidSettings, "unrecognized setting kind %q", kind)
	}
	return nil
}

// ValidateFrameWidth checks a configured frame width is positive and
// within a sane upper bound, rejecting configuration typos (e.g. a
// width of 0 or a value accidentally given in some larger unit).
func ValidateFrameWidth(width float64) error {
	if width <= 0 {
		return New(ErrCodeInvalidSettings, "frame width must be positive, got %v", width)
	}
	const maxReasonableWidth = 1_000_000
	if width > maxReasonableWidth {
		return New(ErrCodeInvalidSettings, "frame width %v exceeds the maximum of %v", width, maxReasonableWidth)
	}
	return nil
}
