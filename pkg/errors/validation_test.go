package errors

import "testing"

func TestValidateAlgorithmName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"blocks", "Blocks", false},
		{"l1p lowercase", "l1p", false},
		{"l1s", "L1S", false},
		{"l1s+", "l1s+", false},
		{"sblocks", "S-Blocks", false},

		{"empty", "", true},
		{"unknown", "quadtree", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAlgorithmName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateAlgorithmName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidAlgorithm) {
				t.Errorf("ValidateAlgorithmName(%q) returned wrong error code: %v", tt.input, err)
			}
		})
	}
}

func TestValidateSettingKind(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"bool", "bool", false},
		{"float", "float", false},
		{"int", "int", false},

		{"empty", "", true},
		{"string kind not supported", "string", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSettingKind(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSettingKind(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateFrameWidth(t *testing.T) {
	tests := []struct {
		name    string
		input   float64
		wantErr bool
	}{
		{"positive", 800, false},
		{"small positive", 0.5, false},

		{"zero", 0, true},
		{"negative", -100, true},
		{"absurdly large", 10_000_000, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFrameWidth(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFrameWidth(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidSettings) {
				t.Errorf("ValidateFrameWidth(%v) returned wrong error code: %v", tt.input, err)
			}
		})
	}
}

func TestErrorCodesAreUnique(t *testing.T) {
	codes := []Code{
		ErrCodeMalformedReassoc,
		ErrCodeNonAxisAligned,
		ErrCodeNonAdjacentRegions,
		ErrCodeInvalidAlgorithm,
		ErrCodeInvalidSettings,
		ErrCodeInvalidInput,
		ErrCodeNotFound,
		ErrCodeRenderUnavailable,
		ErrCodeInternal,
	}

	seen := make(map[Code]bool)
	for _, code := range codes {
		if seen[code] {
			t.Errorf("Duplicate error code: %s", code)
		}
		seen[code] = true
	}
}
