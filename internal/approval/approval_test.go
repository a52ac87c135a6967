package approval

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeMergersFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "MAINTAINERS.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestEvaluate(t *testing.T) {
	mergersFile := writeMergersFile(t, "bob\ncarol\n")

	tests := []struct {
		name       string
		candidates []string
		policy     Policy
		owner      string
		expected   []string
		wantErr    error
	}{
		{
			name:       "no rules returns candidates unchanged",
			candidates: []string{"carol", "alice", "bob"},
			policy:     Policy{},
			owner:      "alice",
			expected:   []string{"carol", "alice", "bob"},
		},
		{
			name:       "non owner drops owner",
			candidates: []string{"alice", "bob", "carol"},
			policy:     Policy{NonOwnerOnly: true},
			owner:      "alice",
			expected:   []string{"bob", "carol"},
		},
		{
			name:       "non owner with only owner fails",
			candidates: []string{"alice"},
			policy:     Policy{NonOwnerOnly: true},
			owner:      "alice",
			wantErr:    ErrOwnerCannotMergeOwnCode,
		},
		{
			name:       "non owner with repeated owner fails",
			candidates: []string{"alice", "alice"},
			policy:     Policy{NonOwnerOnly: true},
			owner:      "alice",
			wantErr:    ErrOwnerCannotMergeOwnCode,
		},
		{
			name:       "inline mergers disjoint fails",
			candidates: []string{"alice", "dave"},
			policy:     Policy{ApprovedMergers: []string{"bob", "carol"}},
			owner:      "erin",
			wantErr:    ErrNoApprovedMergersFound,
		},
		{
			name:       "inline mergers keeps intersection in candidate order",
			candidates: []string{"carol", "dave", "bob"},
			policy:     Policy{ApprovedMergers: []string{"bob", "carol"}},
			owner:      "erin",
			expected:   []string{"carol", "bob"},
		},
		{
			name:       "mergers file intersection",
			candidates: []string{"alice", "bob"},
			policy:     Policy{ApprovedMergersFile: mergersFile},
			owner:      "erin",
			expected:   []string{"bob"},
		},
		{
			name:       "mergers file disjoint fails",
			candidates: []string{"alice"},
			policy:     Policy{ApprovedMergersFile: mergersFile},
			owner:      "erin",
			wantErr:    ErrNoApprovedMergersFound,
		},
		{
			name:       "owner exclusion runs before allowlist",
			candidates: []string{"alice"},
			policy:     Policy{NonOwnerOnly: true, ApprovedMergers: []string{"alice"}},
			owner:      "alice",
			wantErr:    ErrOwnerCannotMergeOwnCode,
		},
		{
			name:       "all rules compose",
			candidates: []string{"alice", "bob", "carol"},
			policy: Policy{
				NonOwnerOnly:        true,
				ApprovedMergersFile: mergersFile,
				ApprovedMergers:     []string{"carol"},
			},
			owner:    "alice",
			expected: []string{"carol"},
		},
		{
			name:       "file narrows before inline list",
			candidates: []string{"alice", "dave"},
			policy: Policy{
				ApprovedMergersFile: mergersFile,
				ApprovedMergers:     []string{"dave"},
			},
			owner:   "erin",
			wantErr: ErrNoApprovedMergersFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Evaluate(tt.candidates, tt.policy, tt.owner)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, result)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestEvaluate_MissingMergersFile(t *testing.T) {
	policy := Policy{ApprovedMergersFile: filepath.Join(t.TempDir(), "missing")}

	_, err := Evaluate([]string{"bob"}, policy, "alice")
	require.ErrorIs(t, err, ErrFileAccess)
	assert.Equal(t, KindFileAccess, KindOf(err))
	assert.NotErrorIs(t, err, ErrNoApprovedMergersFound)
}

func TestEvaluate_ShortCircuitsBeforeFileRead(t *testing.T) {
	// The file does not exist, but the owner rule fails first so it is never opened
	policy := Policy{
		NonOwnerOnly:        true,
		ApprovedMergersFile: filepath.Join(t.TempDir(), "missing"),
	}

	_, err := Evaluate([]string{"alice"}, policy, "alice")
	require.ErrorIs(t, err, ErrOwnerCannotMergeOwnCode)
}

func TestPolicy_Enabled(t *testing.T) {
	assert.False(t, Policy{}.Enabled())
	assert.False(t, Policy{MergeComment: ":shipit:"}.Enabled())
	assert.True(t, Policy{NonOwnerOnly: true}.Enabled())
	assert.True(t, Policy{ApprovedMergers: []string{"bob"}}.Enabled())
	assert.True(t, Policy{ApprovedMergersFile: "MAINTAINERS"}.Enabled())
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNone, KindOf(nil))
	assert.Equal(t, KindNoApprovedMergers, KindOf(ErrNoApprovedMergersFound))
	assert.Equal(t, KindOwnerCannotMerge, KindOf(ErrOwnerCannotMergeOwnCode))
	assert.Equal(t, KindNoMergeComment, KindOf(ErrNoMergeCommentFound))
	assert.Equal(t, KindFileAccess, KindOf(ErrFileAccess))
	assert.Equal(t, KindUnknown, KindOf(assert.AnError))
}
