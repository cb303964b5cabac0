package executor

import "os"

// Marker-file probes deciding which toolchain a handler invokes. Each handler
// re-evaluates the markers on every call; the decision is never cached.

func hasFile(name string) bool {
	info, err := os.Stat(name)
	return err == nil && !info.IsDir()
}

func hasPath(name string) bool {
	_, err := os.Stat(name)
	return err == nil
}

func isNodeProject() bool {
	return hasFile("package.json")
}

func isPythonProject() bool {
	return hasFile("requirements.txt") || hasFile("setup.py")
}
