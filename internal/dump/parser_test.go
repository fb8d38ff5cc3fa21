package dump

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDump = `admin:500:aad3b435b51404eeaad3b435b51404ee:5f4dcc3b5aa765d61d8327deb882cf99:::
user1:1001:aad3b435b51404eeaad3b435b51404ee:202cb962ac59075b964b07152d234b70:::
user2:1002:aad3b435b51404eeaad3b435b51404ee:202cb962ac59075b964b07152d234b70:::
`

func TestParseWellFormed(t *testing.T) {
	records, stats, err := Parse(strings.NewReader(sampleDump))
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "admin", records[0].Username)
	assert.Equal(t, "500", records[0].RID)
	assert.Equal(t, "aad3b435b51404eeaad3b435b51404ee", records[0].LMHash)
	assert.Equal(t, "5f4dcc3b5aa765d61d8327deb882cf99", records[0].NTHash)
	assert.Equal(t, "user1", records[1].Username)
	assert.Equal(t, "user2", records[2].Username)

	assert.Equal(t, 3, stats.TotalLines)
	assert.Equal(t, 3, stats.ParsedRecords)
	assert.Equal(t, 0, stats.MalformedLines)
}

func TestParseMalformedLines(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"too few fields", "onlytwo:fields"},
		{"three fields", "user:500:lmhash"},
		{"empty username", ":500:aad3b435b51404eeaad3b435b51404ee:202cb962ac59075b964b07152d234b70:::"},
		{"whitespace username", "   :500:lm:nt:::"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			input := tc.line + "\nuser1:1001:lm:nt:::\n"
			records, stats, err := Parse(strings.NewReader(input))
			require.NoError(t, err)
			require.Len(t, records, 1, "parsing must continue past the bad line")
			assert.Equal(t, "user1", records[0].Username)
			assert.Equal(t, 1, stats.MalformedLines)
			assert.Equal(t, 1, stats.ParsedRecords)
		})
	}
}

func TestParseSkipsBlankLines(t *testing.T) {
	input := "\n\nuser1:1001:lm:nt:::\n   \nuser2:1002:lm:nt:::\n\n"
	records, stats, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, 2, stats.TotalLines)
	assert.Equal(t, 0, stats.MalformedLines)
}

func TestParseWithoutTrailingColons(t *testing.T) {
	// Exactly four fields is still well-formed; the trailing empty
	// fields are conventional, not required.
	records, _, err := Parse(strings.NewReader("user1:1001:lm:nt\n"))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "nt", records[0].NTHash)
}

func TestParsePreservesHashCase(t *testing.T) {
	input := "user1:1001:lm:ABCDEF:::\nuser2:1002:lm:abcdef:::\n"
	records, _, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "ABCDEF", records[0].NTHash)
	assert.Equal(t, "abcdef", records[1].NTHash)
}

func TestParseFileMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.txt")
	_, _, err := ParseFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hashes.txt")
	require.NoError(t, os.WriteFile(path, []byte(sampleDump), 0o644))
	records, stats, err := ParseFile(path)
	require.NoError(t, err)
	assert.Len(t, records, 3)
	assert.Equal(t, 3, stats.ParsedRecords)
}
