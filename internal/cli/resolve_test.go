package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveEntryID(t *testing.T) {
	ids := []string{
		"9b2f6c1e-0a4d-4c1b-9a7e-1f2e3d4c5b6a",
		"9b2f77aa-1111-4c1b-9a7e-1f2e3d4c5b6a",
		"41d0a9b3-5e6f-4a1b-8c2d-3e4f5a6b7c8d",
	}

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr string
	}{
		{name: "full id", input: ids[1], want: ids[1]},
		{name: "row number", input: "3", want: ids[2]},
		{name: "hash row number", input: "#1", want: ids[0]},
		{name: "unique prefix", input: "41d0", want: ids[2]},
		{name: "longer unique prefix", input: "9b2f6c", want: ids[0]},
		{name: "ambiguous prefix", input: "9b2f", wantErr: "ambiguous"},
		{name: "short prefix passes through", input: "41d", want: "41d"},
		{name: "unknown passes through", input: "ffffffff", want: "ffffffff"},
		{name: "row zero", input: "0", wantErr: "row #0 does not exist"},
		{name: "row past end", input: "#4", wantErr: "row #4 does not exist (3 entries)"},
		{name: "bare row past end", input: "9", wantErr: "row #9 does not exist (3 entries)"},
		{name: "bad hash row", input: "#x", wantErr: "invalid row"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveEntryID(tt.input, ids)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveEntryID_ExactMatchBeatsRowNumber(t *testing.T) {
	// Counter IDs look like row numbers; the ID wins.
	ids := []string{"3", "2", "1"}

	got, err := resolveEntryID("1", ids)
	require.NoError(t, err)
	assert.Equal(t, "1", got)

	got, err = resolveEntryID("#1", ids)
	require.NoError(t, err)
	assert.Equal(t, "3", got)
}

func TestResolveEntryID_DigitPrefixBeyondRows(t *testing.T) {
	ids := []string{
		"9b2f6c1e-0a4d-4c1b-9a7e-1f2e3d4c5b6a",
		"12345678-5e6f-4a1b-8c2d-3e4f5a6b7c8d",
	}

	got, err := resolveEntryID("1234", ids)
	require.NoError(t, err)
	assert.Equal(t, ids[1], got)

	// within the list a bare number is still a row
	got, err = resolveEntryID("1", ids)
	require.NoError(t, err)
	assert.Equal(t, ids[0], got)

	// an explicit row marker never falls back to a prefix
	_, err = resolveEntryID("#1234", ids)
	assert.ErrorContains(t, err, "row #1234 does not exist")
}
