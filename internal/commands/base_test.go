package commands_test

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/alan/github-pr/cmd"
	"github.com/alan/github-pr/internal/commands"
	"github.com/alan/github-pr/internal/commands/commandstest"
	"github.com/alan/github-pr/internal/github"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCobra() (*cobra.Command, *bytes.Buffer) {
	out := &bytes.Buffer{}
	c := &cobra.Command{}
	c.SetOut(out)
	return c, out
}

func TestBaseCommand_Init(t *testing.T) {
	fake := commandstest.NewFakeService()
	c, out := newCobra()

	bc := &commands.BaseCommand{Globals: fake.Globals()}
	require.NoError(t, bc.Init(c))

	assert.Equal(t, "test-org", bc.Org)
	assert.Equal(t, "test-repo", bc.Repo)
	assert.Equal(t, cmd.DefaultMergeComment, bc.Settings.MergeComment)
	assert.NotNil(t, bc.Context)
	assert.Same(t, out, bc.Out)
	assert.Nil(t, bc.Service)
}

func TestBaseCommand_Init_RepoFromSettings(t *testing.T) {
	fake := commandstest.NewFakeService()
	globals := fake.Globals()
	globals.Repo = ""
	globals.LoadSettings = func(string) (*cmd.Settings, error) {
		return &cmd.Settings{Repo: "dataxu/from-settings"}, nil
	}
	c, _ := newCobra()

	bc := &commands.BaseCommand{Globals: globals}
	require.NoError(t, bc.Init(c))
	assert.Equal(t, "dataxu", bc.Org)
	assert.Equal(t, "from-settings", bc.Repo)
}

func TestBaseCommand_Init_MissingRepo(t *testing.T) {
	fake := commandstest.NewFakeService()
	globals := fake.Globals()
	globals.Repo = ""
	c, _ := newCobra()

	bc := &commands.BaseCommand{Globals: globals}
	err := bc.Init(c)
	require.ErrorIs(t, err, commands.ErrMissingRequiredField)
	assert.Contains(t, err.Error(), "repo")
}

func TestBaseCommand_Init_SettingsError(t *testing.T) {
	fake := commandstest.NewFakeService()
	globals := fake.Globals()
	globals.LoadSettings = func(string) (*cmd.Settings, error) {
		return nil, errors.New("failed to parse settings file")
	}
	c, _ := newCobra()

	bc := &commands.BaseCommand{Globals: globals}
	assert.EqualError(t, bc.Init(c), "failed to parse settings file")
}

func TestBaseCommand_Connect(t *testing.T) {
	fake := commandstest.NewFakeService()
	globals := fake.Globals()
	globals.LoadSettings = func(string) (*cmd.Settings, error) {
		return &cmd.Settings{APIURL: "https://ghe.example.com/"}, nil
	}

	var gotToken, gotOrg, gotRepo, gotURL string
	globals.NewService = func(_ context.Context, token, org, repo, apiURL string) (commands.RepositoryService, error) {
		gotToken, gotOrg, gotRepo, gotURL = token, org, repo, apiURL
		return fake, nil
	}
	c, _ := newCobra()

	bc := &commands.BaseCommand{Globals: globals}
	require.NoError(t, bc.Init(c))
	require.NoError(t, bc.Connect())

	assert.Equal(t, "test-token", gotToken)
	assert.Equal(t, "test-org", gotOrg)
	assert.Equal(t, "test-repo", gotRepo)
	assert.Equal(t, "https://ghe.example.com/", gotURL)
	assert.Same(t, fake, bc.Service)
}

func TestBaseCommand_Connect_MissingToken(t *testing.T) {
	t.Setenv("GITHUB_API_TOKEN", "")
	t.Setenv("GITHUB_TOKEN", "")

	fake := commandstest.NewFakeService()
	globals := fake.Globals()
	globals.Token = ""
	globals.EnvFile = filepath.Join(t.TempDir(), "missing.env")
	called := false
	globals.NewService = func(context.Context, string, string, string, string) (commands.RepositoryService, error) {
		called = true
		return fake, nil
	}
	c, _ := newCobra()

	bc := &commands.BaseCommand{Globals: globals}
	require.NoError(t, bc.Init(c))
	err := bc.Connect()
	require.ErrorIs(t, err, commands.ErrMissingRequiredField)
	assert.Contains(t, err.Error(), "token")
	assert.False(t, called)
}

func TestBaseCommand_Connect_FactoryError(t *testing.T) {
	fake := commandstest.NewFakeService()
	globals := fake.Globals()
	globals.NewService = func(context.Context, string, string, string, string) (commands.RepositoryService, error) {
		return nil, errors.New("bad url")
	}
	c, _ := newCobra()

	bc := &commands.BaseCommand{Globals: globals}
	require.NoError(t, bc.Init(c))
	assert.EqualError(t, bc.Connect(), "failed to create GitHub client: bad url")
}

func TestBaseCommand_PrintRateLimit(t *testing.T) {
	tests := []struct {
		name        string
		noRateLimit bool
		err         error
		want        string
	}{
		{name: "printed", want: "Github Rate Limiting: 4999 remaining of max 5000\n"},
		{name: "disabled", noRateLimit: true, want: ""},
		{name: "lookup failure is ignored", err: errors.New("boom"), want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := commandstest.NewFakeService()
			fake.Errors["RateLimit"] = tt.err
			globals := fake.Globals()
			globals.NoRateLimit = tt.noRateLimit
			c, out := newCobra()

			bc := &commands.BaseCommand{Globals: globals}
			require.NoError(t, bc.Init(c))
			require.NoError(t, bc.Connect())

			bc.PrintRateLimit()
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestStringOr(t *testing.T) {
	assert.Equal(t, "a", commands.StringOr("a", "b"))
	assert.Equal(t, "b", commands.StringOr("", "b"))
}

func TestNewGitHubService(t *testing.T) {
	service, err := commands.NewGitHubService(context.Background(), "test-token", "dataxu", "app", "")
	require.NoError(t, err)

	client, ok := service.(*github.Client)
	require.True(t, ok)
	assert.Equal(t, "dataxu/app", client.Repository())
}

func TestNewGitHubService_BadURL(t *testing.T) {
	service, err := commands.NewGitHubService(context.Background(), "test-token", "dataxu", "app", "://bad")
	require.Error(t, err)
	assert.Nil(t, service)
}
