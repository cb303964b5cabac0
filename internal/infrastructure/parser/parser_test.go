package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vibeos/vibesh/internal/domain"
)

func TestParseCreateProject(t *testing.T) {
	p := New()
	intent, params := p.Parse("create a new python project called demo")
	if intent != domain.IntentCreateProject {
		t.Fatalf("intent = %s, want %s", intent, domain.IntentCreateProject)
	}
	want := domain.CreateProjectParams{Type: "python", Name: "demo"}
	if diff := cmp.Diff(want, params); diff != "" {
		t.Fatalf("params mismatch (-want +got):\n%s", diff)
	}
}

func TestParseInstallPackages(t *testing.T) {
	p := New()
	intent, params := p.Parse("install numpy pandas")
	if intent != domain.IntentInstallPackage {
		t.Fatalf("intent = %s, want %s", intent, domain.IntentInstallPackage)
	}
	want := domain.InstallPackageParams{Packages: []string{"numpy", "pandas"}}
	if diff := cmp.Diff(want, params); diff != "" {
		t.Fatalf("params mismatch (-want +got):\n%s", diff)
	}
}

func TestParseInstallCommaSeparated(t *testing.T) {
	p := New()
	_, params := p.Parse("install numpy, pandas")
	got, ok := params.(domain.InstallPackageParams)
	if !ok {
		t.Fatalf("params type = %T, want InstallPackageParams", params)
	}
	if diff := cmp.Diff([]string{"numpy", "pandas"}, got.Packages); diff != "" {
		t.Fatalf("packages mismatch (-want +got):\n%s", diff)
	}
}

func TestParseTableOrder(t *testing.T) {
	// "git status" matches the git_status table entry before any later one;
	// "search for ripgrep" must not be swallowed by install's broad patterns.
	p := New()
	cases := []struct {
		input string
		want  domain.Intent
	}{
		{"git status", domain.IntentGitStatus},
		{"what's changed", domain.IntentGitStatus},
		{"search for ripgrep", domain.IntentSearchPackage},
		{"commit changes with message 'fix bug'", domain.IntentGitCommit},
		{"push to remote", domain.IntentGitPush},
		{"pull from remote", domain.IntentGitPull},
		{"initialize git repository", domain.IntentGitInit},
		{"run tests", domain.IntentRunTests},
		{"build the project", domain.IntentBuildProject},
		{"start dev server", domain.IntentStartDevServer},
		{"show system info", domain.IntentSystemInfo},
		{"disk usage", domain.IntentDiskUsage},
		{"list processes", domain.IntentListProcesses},
		{"go to /tmp", domain.IntentChangeDirectory},
		{"list files", domain.IntentListFiles},
		{"where am i", domain.IntentShowPwd},
		{"create virtual environment", domain.IntentCreateVenv},
		{"activate virtual environment", domain.IntentActivateVenv},
		{"use venv", domain.IntentActivateVenv},
		{"update the system", domain.IntentUpdateSystem},
	}
	for _, tc := range cases {
		intent, _ := p.Parse(tc.input)
		if intent != tc.want {
			t.Errorf("Parse(%q) = %s, want %s", tc.input, intent, tc.want)
		}
	}
}

func TestParseFirstMatchWinsWithinIntent(t *testing.T) {
	// Both create_project patterns and create_venv patterns start with
	// "create"; table order puts create_project first.
	p := New()
	intent, _ := p.Parse("create a new rust project called rocket")
	if intent != domain.IntentCreateProject {
		t.Fatalf("intent = %s, want %s", intent, domain.IntentCreateProject)
	}
}

func TestParseGitCommitMessage(t *testing.T) {
	p := New()
	intent, params := p.Parse(`commit changes with message "initial commit"`)
	if intent != domain.IntentGitCommit {
		t.Fatalf("intent = %s, want %s", intent, domain.IntentGitCommit)
	}
	got, ok := params.(domain.GitCommitParams)
	if !ok {
		t.Fatalf("params type = %T, want GitCommitParams", params)
	}
	if got.Message != "initial commit" {
		t.Fatalf("message = %q, want %q", got.Message, "initial commit")
	}
}

func TestParseUnknownPreservesText(t *testing.T) {
	p := New()
	intent, params := p.Parse("gibberish zyx")
	if intent != domain.IntentUnknown {
		t.Fatalf("intent = %s, want %s", intent, domain.IntentUnknown)
	}
	got, ok := params.(domain.FreeTextParams)
	if !ok {
		t.Fatalf("params type = %T, want FreeTextParams", params)
	}
	if got.Text != "gibberish zyx" {
		t.Fatalf("text = %q, want original input preserved", got.Text)
	}
}

func TestFallbackPriority(t *testing.T) {
	p := New()
	cases := []struct {
		input string
		want  domain.Intent
	}{
		// The first input hits every keyword group; create outranks
		// install outranks git outranks show.
		{"create something installing git showings", domain.IntentSuggestCreate},
		{"installing git showings", domain.IntentSuggestInstall},
		{"git showings please", domain.IntentSuggestGit},
		{"showings please", domain.IntentSuggestShow},
	}
	for _, tc := range cases {
		intent, _ := p.Parse(tc.input)
		if intent != tc.want {
			t.Errorf("Parse(%q) = %s, want %s", tc.input, intent, tc.want)
		}
	}
}

func TestParseNormalizesCase(t *testing.T) {
	p := New()
	intent, _ := p.Parse("  GIT STATUS  ")
	if intent != domain.IntentGitStatus {
		t.Fatalf("intent = %s, want %s", intent, domain.IntentGitStatus)
	}
}

func TestSuggestions(t *testing.T) {
	p := New()
	got := p.Suggestions("create")
	if len(got) == 0 {
		t.Fatal("expected suggestions for 'create' prefix")
	}
	if len(got) > 5 {
		t.Fatalf("got %d suggestions, cap is 5", len(got))
	}
	if p.Suggestions("zzz") != nil {
		t.Fatal("expected no suggestions for unrecognized prefix")
	}
}
