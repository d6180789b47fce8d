package action

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  Action
		ok    bool
	}{
		{"add project", "openAddModal", Action{Kind: AddProject}, true},
		{"edit project", "openEditModal&id=42", Action{Kind: EditProject, ID: 42}, true},
		{"delete project", "openDeleteModal&id=7", Action{Kind: DeleteProject, ID: 7}, true},
		{"add experience", "openAddExpModal", Action{Kind: AddExperience}, true},
		{"edit experience", "openEditExpModal&id=42", Action{Kind: EditExperience, ID: 42}, true},
		{"delete experience", "openDeleteExpModal&id=7", Action{Kind: DeleteExperience, ID: 7}, true},
		{"no params", "", Action{}, false},
		{"unrelated params", "utm_source=x", Action{}, false},
		{"edit without id", "openEditModal", Action{}, false},
		{"edit with junk id", "openEditModal&id=abc", Action{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			require.NoError(t, err)

			got, ok := Parse(values)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_FirstMatchWins(t *testing.T) {
	values, err := url.ParseQuery("openAddModal&openDeleteExpModal&id=9")
	require.NoError(t, err)

	got, ok := Parse(values)
	require.True(t, ok)
	assert.Equal(t, AddProject, got.Kind)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	original := Action{Kind: DeleteExperience, ID: 1700000000123}

	raw, err := Encode(original)
	require.NoError(t, err)

	decoded, err := Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, original, decoded)
}
