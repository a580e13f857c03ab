package subsonic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		input   string
		want    Version
		wantErr bool
	}{
		{input: "1.16.1", want: Version{1, 16, 1}},
		{input: "1.12", want: Version{1, 12, 0}},
		{input: "2", want: Version{2, 0, 0}},
		{input: " 1.8.0 ", want: Version{1, 8, 0}},
		{input: "1.16.1.2", wantErr: true},
		{input: "1.x.0", wantErr: true},
		{input: "1.-1.0", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			version, err := ParseVersion(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, version)
		})
	}
}

func TestVersion_String(t *testing.T) {
	assert.Equal(t, "1.16.0", Version{1, 16, 0}.String())
	assert.Equal(t, "0.0.0", Version{}.String())
}

func TestVersion_Compare(t *testing.T) {
	// numeric, not lexicographic: 1.9.0 predates 1.13.0
	assert.Equal(t, -1, Version{1, 9, 0}.Compare(Version{1, 13, 0}))
	assert.Equal(t, 1, Version{1, 13, 0}.Compare(Version{1, 9, 0}))
	assert.Equal(t, 0, Version{1, 16, 1}.Compare(Version{1, 16, 1}))
	assert.Equal(t, -1, Version{1, 16, 0}.Compare(Version{2, 0, 0}))

	assert.True(t, Version{1, 13, 0}.AtLeast(Version{1, 13, 0}))
	assert.True(t, Version{1, 13, 1}.AtLeast(Version{1, 13, 0}))
	assert.False(t, Version{1, 12, 9}.AtLeast(Version{1, 13, 0}))
}
