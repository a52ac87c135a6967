package comment

import (
	"bytes"
	"testing"

	"github.com/alan/github-pr/internal/commands"
	"github.com/alan/github-pr/internal/commands/commandstest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCommentCmd(t *testing.T) {
	cobraCmd := NewCommentCmd(commandstest.NewFakeService().Globals())

	assert.Equal(t, "comment", cobraCmd.Use)
	assert.NotEmpty(t, cobraCmd.Short)
	assert.NotNil(t, cobraCmd.Flags().Lookup("number"))
	assert.NotNil(t, cobraCmd.Flags().Lookup("body"))
}

func TestCommentCmd(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
		want    []string
	}{
		{name: "posts", args: []string{"-n", "4", "--body", ":shipit:"}, want: []string{":shipit:"}},
		{name: "missing number", args: []string{"--body", "hi"}, wantErr: "number"},
		{name: "missing body", args: []string{"-n", "4"}, wantErr: "body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := commandstest.NewFakeService()
			out := &bytes.Buffer{}

			cobraCmd := NewCommentCmd(fake.Globals())
			cobraCmd.SetOut(out)
			cobraCmd.SetErr(&bytes.Buffer{})
			cobraCmd.SetArgs(tt.args)
			err := cobraCmd.Execute()

			if tt.wantErr != "" {
				require.ErrorIs(t, err, commands.ErrMissingRequiredField)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Empty(t, fake.PostedComments)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, fake.PostedComments[4])
			assert.Contains(t, out.String(), "Commented on PR #4")
		})
	}
}
