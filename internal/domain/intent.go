// Package domain holds the core types of the natural-language shell: intents,
// their typed parameters, execution results and persisted context state.
package domain

// Intent names one recognized user operation. The zero value is not valid;
// unrecognized input maps to IntentUnknown or one of the suggestion intents.
type Intent string

// Operation intents, matched by the ordered pattern table.
const (
	IntentCreateProject   Intent = "create_project"
	IntentInstallPackage  Intent = "install_package"
	IntentSearchPackage   Intent = "search_package"
	IntentUpdateSystem    Intent = "update_system"
	IntentGitStatus       Intent = "git_status"
	IntentGitCommit       Intent = "git_commit"
	IntentGitPush         Intent = "git_push"
	IntentGitPull         Intent = "git_pull"
	IntentGitInit         Intent = "git_init"
	IntentRunTests        Intent = "run_tests"
	IntentBuildProject    Intent = "build_project"
	IntentStartDevServer  Intent = "start_dev_server"
	IntentCreateVenv      Intent = "create_venv"
	IntentActivateVenv    Intent = "activate_venv"
	IntentSystemInfo      Intent = "system_info"
	IntentDiskUsage       Intent = "disk_usage"
	IntentListProcesses   Intent = "list_processes"
	IntentChangeDirectory Intent = "change_directory"
	IntentListFiles       Intent = "list_files"
	IntentShowPwd         Intent = "show_pwd"
)

// Fallback intents produced by the keyword classifier when no pattern matched.
// They carry the raw input so a collaborator can take over.
const (
	IntentSuggestCreate  Intent = "suggest_create"
	IntentSuggestInstall Intent = "suggest_install"
	IntentSuggestGit     Intent = "suggest_git"
	IntentSuggestShow    Intent = "suggest_show"
	IntentUnknown        Intent = "unknown"
)

// IsSuggestion reports whether the intent came from the fallback classifier
// rather than a pattern match.
func (i Intent) IsSuggestion() bool {
	switch i {
	case IntentSuggestCreate, IntentSuggestInstall, IntentSuggestGit, IntentSuggestShow, IntentUnknown:
		return true
	}
	return false
}

// Params is the tagged union of per-intent parameters. Each variant is a
// value type; handlers type-switch on the concrete variant.
type Params interface {
	isParams()
}

// NoParams is attached to intents that take no arguments.
type NoParams struct{}

// CreateProjectParams names the project to scaffold.
type CreateProjectParams struct {
	Type string
	Name string
}

// InstallPackageParams lists the packages to install, already split on
// whitespace and commas.
type InstallPackageParams struct {
	Packages []string
}

// SearchPackageParams carries the repository search query.
type SearchPackageParams struct {
	Query string
}

// GitCommitParams carries the commit message, without surrounding quotes.
// An empty message means the handler picks a default.
type GitCommitParams struct {
	Message string
}

// ChangeDirectoryParams carries the target path, possibly ~-prefixed.
type ChangeDirectoryParams struct {
	Path string
}

// FreeTextParams preserves the raw input for fallback intents so it can be
// forwarded to the assistant verbatim.
type FreeTextParams struct {
	Text string
}

func (NoParams) isParams()              {}
func (CreateProjectParams) isParams()   {}
func (InstallPackageParams) isParams()  {}
func (SearchPackageParams) isParams()   {}
func (GitCommitParams) isParams()       {}
func (ChangeDirectoryParams) isParams() {}
func (FreeTextParams) isParams()        {}
