package cmd

// DefaultMergeComment is the marker searched for in approval comments
const DefaultMergeComment = ":shipit:"

// DefaultBaseBranch is the branch pull requests target when none is given
const DefaultBaseBranch = "master"

// DefaultMergersFile is the approved mergers file consulted when no path is given
const DefaultMergersFile = "./MAINTAINERS.txt"

// Settings represents the optional .github-pr.yaml (or .toml) defaults file
type Settings struct {
	Repo                    string `yaml:"repo,omitempty" toml:"repo"`
	Base                    string `yaml:"base,omitempty" toml:"base"`
	MergeComment            string `yaml:"merge_comment,omitempty" toml:"merge_comment"`
	ApprovedMergersFilePath string `yaml:"approved_mergers_file_path,omitempty" toml:"approved_mergers_file_path"`
	MergeMethod             string `yaml:"merge_method,omitempty" toml:"merge_method"`
	TableFormat             string `yaml:"table_format,omitempty" toml:"table_format"`
	APIURL                  string `yaml:"api_url,omitempty" toml:"api_url"`
}

// DefaultSettings returns the settings used when no file overrides them
func DefaultSettings() Settings {
	return Settings{
		Base:                    DefaultBaseBranch,
		MergeComment:            DefaultMergeComment,
		ApprovedMergersFilePath: DefaultMergersFile,
		MergeMethod:             "merge",
		TableFormat:             "simple",
	}
}
