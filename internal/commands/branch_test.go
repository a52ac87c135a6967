package commands_test

import (
	"context"
	"errors"
	"testing"

	"github.com/alan/github-pr/cmd"
	"github.com/alan/github-pr/internal/commands"
	"github.com/alan/github-pr/internal/commands/commandstest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func branchPR(number int) cmd.PullRequest {
	return cmd.PullRequest{
		Number: number,
		State:  cmd.PRStateOpen,
		Title:  "feature",
		Base:   cmd.BranchRef{Ref: "master", RepoOwner: "dataxu"},
		Head:   cmd.BranchRef{Ref: "feature", RepoOwner: "dataxu"},
	}
}

func TestFindPRForBranch(t *testing.T) {
	tests := []struct {
		name          string
		prs           []cmd.PullRequest
		wantCount     int
		wantAmbiguous bool
	}{
		{name: "no match", wantCount: 0, wantAmbiguous: true},
		{name: "single match", prs: []cmd.PullRequest{branchPR(1)}, wantCount: 1},
		{name: "multiple matches", prs: []cmd.PullRequest{branchPR(1), branchPR(2)}, wantCount: 2, wantAmbiguous: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := commandstest.NewFakeService()
			fake.BranchPRs = tt.prs

			prs, err := commands.FindPRForBranch(context.Background(), fake, "feature", "master")
			require.NotNil(t, prs)
			assert.Len(t, prs, tt.wantCount)
			if !tt.wantAmbiguous {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, commands.ErrAmbiguousBranchMatch)
			assert.NotErrorIs(t, err, commands.ErrNoBranchMatch)
			var ambiguous *commands.AmbiguousBranchMatchError
			require.ErrorAs(t, err, &ambiguous)
			assert.Equal(t, commands.AmbiguousBranchMatchError{Head: "feature", Base: "master", Count: tt.wantCount}, *ambiguous)
		})
	}
}

func TestFindPRForBranch_ServiceError(t *testing.T) {
	fake := commandstest.NewFakeService()
	fake.Errors["ListPRsForBranch"] = errors.New("api down")

	_, err := commands.FindPRForBranch(context.Background(), fake, "feature", "master")
	assert.EqualError(t, err, "api down")
}

func TestAmbiguousBranchMatchError_Message(t *testing.T) {
	err := &commands.AmbiguousBranchMatchError{Head: "feature", Base: "master", Count: 3}
	assert.Equal(t, "probable error, found 3 pull(s) from feature -> master (expected 1)", err.Error())
}

func TestResolveBranchPR_AmbiguousTakesFirst(t *testing.T) {
	fake := commandstest.NewFakeService()
	fake.BranchPRs = []cmd.PullRequest{branchPR(7), branchPR(8)}
	c, out := newCobra()

	bc := &commands.BaseCommand{Globals: fake.Globals()}
	require.NoError(t, bc.Init(c))
	require.NoError(t, bc.Connect())

	pr, err := bc.ResolveBranchPR("feature", "master", bc.NewPrinter())
	require.NoError(t, err)
	assert.Equal(t, 7, pr.Number)
	assert.Contains(t, out.String(), "found 2 pull(s) from feature -> master")
	assert.Contains(t, out.String(), "#7 [open]")
	assert.Contains(t, out.String(), "#8 [open]")
}

func TestResolveBranchPR_NoMatch(t *testing.T) {
	fake := commandstest.NewFakeService()
	c, _ := newCobra()

	bc := &commands.BaseCommand{Globals: fake.Globals()}
	require.NoError(t, bc.Init(c))
	require.NoError(t, bc.Connect())

	_, err := bc.ResolveBranchPR("feature", "master", bc.NewPrinter())
	assert.ErrorIs(t, err, commands.ErrNoBranchMatch)
}
