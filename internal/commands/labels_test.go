package commands_test

import (
	"testing"

	"github.com/alan/github-pr/cmd"
	"github.com/alan/github-pr/internal/commands"
	"github.com/alan/github-pr/internal/commands/commandstest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeLabels(t *testing.T) {
	tests := []struct {
		name      string
		requested []string
		existing  []string
		want      []string
	}{
		{name: "new first then existing", requested: []string{"ready"}, existing: []string{"bug", "wip"}, want: []string{"ready", "bug", "wip"}},
		{name: "duplicates dropped", requested: []string{"bug", "bug"}, existing: []string{"bug"}, want: []string{"bug"}},
		{name: "nothing", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, commands.MergeLabels(tt.requested, tt.existing))
		})
	}
}

func TestApplyLabels(t *testing.T) {
	tests := []struct {
		name    string
		replace bool
		want    []string
	}{
		{name: "add to existing", want: []string{"ready", "bug"}},
		{name: "replace", replace: true, want: []string{"ready"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := commandstest.NewFakeService()
			fake.AddPR(cmd.PullRequest{Number: 5}, "bug")
			c, _ := newCobra()

			bc := &commands.BaseCommand{Globals: fake.Globals()}
			require.NoError(t, bc.Init(c))
			require.NoError(t, bc.Connect())

			require.NoError(t, bc.ApplyLabels(5, []string{"ready"}, tt.replace))
			assert.Equal(t, tt.want, fake.Labels[5])
		})
	}
}
