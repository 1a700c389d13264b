package validate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid name", "hero", false},
		{"valid with spaces", "hero shots", false},
		{"empty string", "", true},
		{"only spaces", "   ", true},
		{"only tabs", "\t\t", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Name(tt.input)
			assert.Equal(t, tt.wantErr, err != nil, "Name(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		})
	}
}

func TestRef(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"relative path", "gallery-01.png", false},
		{"nested path", "shots/a b.jpg", false},
		{"uri", "https://example.com/a.png", false},
		{"empty", "", true},
		{"blank", "  ", true},
		{"newline", "a\n.png", true},
		{"nul", "a\x00.png", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Ref(tt.input)
			assert.Equal(t, tt.wantErr, err != nil, "Ref(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		})
	}
}

func TestWeight(t *testing.T) {
	assert.NoError(t, Weight(0.5))
	assert.NoError(t, Weight(2))
	assert.Error(t, Weight(0))
	assert.Error(t, Weight(-1))
	assert.Error(t, Weight(math.NaN()))
	assert.Error(t, Weight(math.Inf(1)))
}

func TestNonNegative(t *testing.T) {
	assert.NoError(t, NonNegative(0))
	assert.NoError(t, NonNegative(0.15))
	assert.Error(t, NonNegative(-0.1))
	assert.Error(t, NonNegative(math.NaN()))
}
