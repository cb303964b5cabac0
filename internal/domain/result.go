package domain

// ExecutionResult is the outcome of one handled intent. Output carries text
// for the user on success; Error carries a one-line message on failure.
// Handler failures are data, not Go errors: the shell renders them and moves on.
type ExecutionResult struct {
	Success bool   `json:"success"`
	Output  string `json:"output,omitempty"`
	Error   string `json:"error,omitempty"`
}

// OK builds a successful result.
func OK(output string) ExecutionResult {
	return ExecutionResult{Success: true, Output: output}
}

// Fail builds a failed result.
func Fail(message string) ExecutionResult {
	return ExecutionResult{Success: false, Error: message}
}
