package unit

// DefaultRunner is where groups are registered through the package-level
// functions Add and Execute.
var DefaultRunner = NewRunner()

// Add registers a test group on the default runner, failing if the name has
// already been taken.
var Add = DefaultRunner.Add

// Execute runs every group registered on the default runner.
var Execute = DefaultRunner.Execute
