package validation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidCPF(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"valid bare", "52998224725", true},
		{"valid formatted", "529.982.247-25", true},
		{"valid repeated-block pattern", "111.444.777-35", true},
		{"wrong first check digit", "52998224715", false},
		{"wrong second check digit", "52998224726", false},
		{"uniform digits", "11111111111", false},
		{"uniform digits formatted", "000.000.000-00", false},
		{"too short", "5299822472", false},
		{"too long", "529982247255", false},
		{"letters", "529a8224725", false},
		{"empty", "", false},
		{"only separators", "...-", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ValidCPF(tt.input))
		})
	}
}
