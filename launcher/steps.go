package launcher

import (
	"fmt"
	"io"
)

// StepResult represents the outcome of a step execution.
type StepResult struct {
	// Skip indicates the step was skipped (already done, not needed).
	// When Skip is true, the step is counted as successful.
	Skip bool

	// Info contains a success or informational message.
	// For skipped steps, this explains why it was skipped.
	Info string

	// Err contains the error if the step failed.
	Err error
}

// Success creates a successful StepResult with an optional info message.
func Success(info string) StepResult {
	return StepResult{Info: info}
}

// Skipped creates a StepResult indicating the step was skipped.
func Skipped(reason string) StepResult {
	return StepResult{Skip: true, Info: reason}
}

// Failed creates a StepResult with an error.
func Failed(err error) StepResult {
	return StepResult{Err: err}
}

// Step represents a named action executed during setup.
type Step struct {
	// Name is the display name for the step.
	Name string

	// Action executes the step and returns the result.
	Action func() StepResult
}

// SimpleStep creates a Step from a function that returns error, for the
// common case where a step doesn't need to report skip/info.
//
// Example:
//
//	launcher.SimpleStep("Configure", func() error {
//	    return writeConfig(targetDir)
//	})
func SimpleStep(name string, action func() error) Step {
	return Step{
		Name: name,
		Action: func() StepResult {
			if err := action(); err != nil {
				return Failed(err)
			}
			return Success("")
		},
	}
}

// RunSteps executes steps sequentially, echoing progress to w and
// recording details in log. Both w and log may be nil. Execution stops
// at the first failure, which is returned wrapped with the step name.
func RunSteps(w io.Writer, log *Logger, steps []Step) error {
	for i, step := range steps {
		if w != nil {
			fmt.Fprintf(w, "[%d/%d] %s\n", i+1, len(steps), step.Name)
		}
		log.Step("Starting: %s", step.Name)

		res := step.Action()

		if res.Err != nil {
			if w != nil {
				fmt.Fprintf(w, "      failed: %v\n", res.Err)
			}
			log.Error("Step '%s' failed: %v", step.Name, res.Err)
			return fmt.Errorf("%s: %w", step.Name, res.Err)
		}

		switch {
		case res.Skip:
			if w != nil && res.Info != "" {
				fmt.Fprintf(w, "      skipped: %s\n", res.Info)
			}
			log.Info("Step '%s' skipped: %s", step.Name, res.Info)
		case res.Info != "":
			if w != nil {
				fmt.Fprintf(w, "      %s\n", res.Info)
			}
			log.Info("Step '%s' completed: %s", step.Name, res.Info)
		default:
			log.Info("Step '%s' completed", step.Name)
		}
	}
	return nil
}
