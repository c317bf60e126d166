package setupfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitHeader(t *testing.T) {
	d := Default()

	tests := []struct {
		name        string
		contents    string
		wantSection string
		wantSub     string
		wantOK      bool
	}{
		{"flat section", "General", "General", "", true},
		{"second flat section", "Shell", "Shell", "", true},
		{"bare umbrella", "UserLevel", "UserLevel", "", true},
		{"umbrella with subsection", "UserLevel.CoreTools", "UserLevel", "CoreTools", true},
		{"subsection keeps inner dots", "UserLevel.Languages.Python", "UserLevel", "Languages.Python", true},
		{"admin umbrella", "AdminLevel.CoreTools", "AdminLevel", "CoreTools", true},
		{"trailing dot is unrecognized", "UserLevel.", "", "", false},
		{"flat section takes no subsection", "General.Extra", "", "", false},
		{"unknown name", "Nonsense", "", "", false},
		{"unknown dotted name", "Nonsense.Sub", "", "", false},
		{"case sensitive", "userlevel.CoreTools", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			section, sub, ok := d.SplitHeader(tt.contents)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantSection, section)
			assert.Equal(t, tt.wantSub, sub)
		})
	}
}

func TestCustomDialect(t *testing.T) {
	d := NewDialect([]string{"Options"}, []string{"Apt", "Snap"})

	assert.True(t, d.IsFlat("Options"))
	assert.False(t, d.IsFlat("General"))
	assert.True(t, d.IsUmbrella("Apt"))

	section, sub, ok := d.SplitHeader("Snap.Classic")
	assert.True(t, ok)
	assert.Equal(t, "Snap", section)
	assert.Equal(t, "Classic", sub)
}
