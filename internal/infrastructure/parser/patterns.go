package parser

import (
	"regexp"

	"github.com/vibeos/vibesh/internal/domain"
)

// intentPatterns binds one intent to its ordered pattern list. Table order is
// load-bearing: the first matching (intent, pattern) pair wins, so broader
// patterns must come after narrower ones.
type intentPatterns struct {
	intent   domain.Intent
	patterns []*regexp.Regexp
}

func compileAll(exprs ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, 0, len(exprs))
	for _, expr := range exprs {
		// Anchored at the start only; trailing text is allowed.
		compiled = append(compiled, regexp.MustCompile(`^`+expr))
	}
	return compiled
}

// patternTable is the static intent table, evaluated in order.
var patternTable = []intentPatterns{
	{domain.IntentCreateProject, compileAll(
		`create\s+(?:a\s+)?new\s+(\w+)\s+project\s+(?:called\s+|named\s+)?([a-zA-Z0-9_-]+)`,
		`start\s+(?:a\s+)?new\s+(\w+)\s+project\s+([a-zA-Z0-9_-]+)`,
		`init\s+(\w+)\s+project\s+([a-zA-Z0-9_-]+)`,
	)},
	{domain.IntentInstallPackage, compileAll(
		`install\s+([\w\-\./]+(?:[\s,]+[\w\-\./]+)*)`,
		`add\s+([\w\-\./]+(?:[\s,]+[\w\-\./]+)*)`,
		`get\s+([\w\-\./]+(?:[\s,]+[\w\-\./]+)*)`,
	)},
	{domain.IntentSearchPackage, compileAll(
		`search\s+(?:for\s+)?([\w\-]+)`,
		`find\s+package\s+([\w\-]+)`,
		`look\s+for\s+([\w\-]+)`,
	)},
	{domain.IntentGitStatus, compileAll(
		`git\s+status`,
		`show\s+git\s+status`,
		`what'?s?\s+changed`,
		`show\s+changes`,
	)},
	{domain.IntentGitCommit, compileAll(
		`commit\s+(?:changes\s+)?(?:with\s+message\s+)?["'](.+)["']`,
		`git\s+commit\s+["'](.+)["']`,
		`save\s+changes\s+["'](.+)["']`,
	)},
	{domain.IntentGitPush, compileAll(
		`push\s+(?:to\s+)?(?:remote)?`,
		`git\s+push`,
		`upload\s+changes`,
	)},
	{domain.IntentGitPull, compileAll(
		`pull\s+(?:from\s+)?(?:remote)?`,
		`git\s+pull`,
		`update\s+from\s+remote`,
	)},
	{domain.IntentGitInit, compileAll(
		`init(?:ialize)?\s+git(?:\s+repo(?:sitory)?)?`,
		`create\s+git\s+repo(?:sitory)?`,
		`start\s+version\s+control`,
	)},
	{domain.IntentRunTests, compileAll(
		`run\s+tests?`,
		`test\s+(?:the\s+)?(?:project|code)`,
		`execute\s+tests?`,
	)},
	{domain.IntentBuildProject, compileAll(
		`build\s+(?:the\s+)?project`,
		`compile\s+(?:the\s+)?(?:project|code)`,
		`make\s+(?:the\s+)?project`,
	)},
	{domain.IntentStartDevServer, compileAll(
		`start\s+(?:dev(?:elopment)?\s+)?server`,
		`run\s+(?:dev(?:elopment)?\s+)?server`,
		`launch\s+(?:dev(?:elopment)?\s+)?server`,
	)},
	{domain.IntentSystemInfo, compileAll(
		`show\s+system\s+(?:info(?:rmation)?|status)`,
		`system\s+(?:info(?:rmation)?|status)`,
		`what'?s?\s+(?:the\s+)?system\s+status`,
	)},
	{domain.IntentDiskUsage, compileAll(
		`(?:show\s+)?disk\s+(?:usage|space)`,
		`how\s+much\s+(?:disk\s+)?space`,
		`check\s+storage`,
	)},
	{domain.IntentListProcesses, compileAll(
		`(?:show\s+|list\s+)?(?:running\s+)?processes`,
		`what'?s?\s+running`,
		`show\s+tasks`,
	)},
	{domain.IntentChangeDirectory, compileAll(
		`(?:go\s+to|cd\s+to?|change\s+to|navigate\s+to)\s+(.+)`,
		`enter\s+(.+)\s+(?:directory|folder)`,
	)},
	{domain.IntentListFiles, compileAll(
		`(?:list|show|ls)\s+(?:files?|directory|folder)?`,
		`what'?s?\s+(?:in\s+)?(?:here|this\s+(?:directory|folder))`,
	)},
	{domain.IntentShowPwd, compileAll(
		`(?:show\s+)?(?:current\s+)?(?:directory|folder|pwd|path)`,
		`where\s+am\s+i`,
	)},
	{domain.IntentCreateVenv, compileAll(
		`create\s+(?:a\s+)?(?:virtual\s+)?env(?:ironment)?`,
		`make\s+(?:a\s+)?venv`,
		`setup\s+(?:virtual\s+)?env(?:ironment)?`,
	)},
	{domain.IntentActivateVenv, compileAll(
		`activate\s+(?:virtual\s+)?env(?:ironment)?`,
		`enter\s+(?:virtual\s+)?env(?:ironment)?`,
		`use\s+venv`,
	)},
	{domain.IntentUpdateSystem, compileAll(
		`update\s+(?:the\s+)?system`,
		`upgrade\s+(?:system\s+)?packages`,
		`system\s+update`,
	)},
}
