// Package setup prepares a monitor installation: the logs directory the
// monitor writes into, its Python requirements, and a desktop shortcut
// to the launcher on Windows.
package setup

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/crafted-tech/monitorlaunch/launcher"
	"github.com/crafted-tech/monitorlaunch/platform"
)

const (
	// MonitorScript is the Python program the launcher supervises. The
	// setup tool refuses to run when it is not present, because every
	// other step prepares its surroundings.
	MonitorScript = "monitoramento.py"

	// RequirementsFile lists the monitor's Python dependencies.
	RequirementsFile = "requirements.txt"

	// ShortcutName is the desktop shortcut label on Windows.
	ShortcutName = "Network Monitor Professional"
)

// Requirements is the content written to RequirementsFile. The pins
// track what monitoramento.py imports beyond the standard library.
const Requirements = "psutil>=5.9\nmatplotlib>=3.7\n"

// launcherExeName returns the launcher binary name the shortcut points at.
func launcherExeName() string {
	if runtime.GOOS == "windows" {
		return "monitorlaunch.exe"
	}
	return "monitorlaunch"
}

// BuildSteps returns the setup steps for an installation rooted at dir,
// normally the directory containing the setup binary.
func BuildSteps(dir string) []launcher.Step {
	steps := []launcher.Step{
		launcher.SimpleStep("Verify monitor script", func() error {
			if _, err := os.Stat(filepath.Join(dir, MonitorScript)); err != nil {
				return fmt.Errorf("%s not found next to the setup tool", MonitorScript)
			}
			return nil
		}),
		launcher.StepEnsureDir(filepath.Join(dir, "logs")),
		launcher.StepWriteFile(filepath.Join(dir, RequirementsFile), []byte(Requirements)),
		stepInstallRequirements(dir),
	}
	if runtime.GOOS == "windows" {
		steps = append(steps, stepDesktopShortcut(dir))
	}
	return steps
}

// stepInstallRequirements runs pip against the written requirements.
// Skips with instructions when no interpreter is available, so setup can
// still finish on a machine where Python comes later.
func stepInstallRequirements(dir string) launcher.Step {
	return launcher.Step{
		Name: "Install Python dependencies",
		Action: func() launcher.StepResult {
			rt, err := launcher.DetectPython()
			if err != nil {
				return launcher.Skipped("python not found; run 'pip install -r requirements.txt' after installing it")
			}
			cmd := exec.Command(rt.Exe, "-m", "pip", "install", "-r", RequirementsFile)
			cmd.Dir = dir
			out, err := cmd.CombinedOutput()
			if err != nil {
				return launcher.Failed(fmt.Errorf("pip install: %w\n%s", err, out))
			}
			return launcher.Success("")
		},
	}
}

// stepDesktopShortcut links the user's desktop to the launcher.
// Skips when the launcher binary has not been placed next to the setup
// tool yet.
func stepDesktopShortcut(dir string) launcher.Step {
	return launcher.Step{
		Name: "Create desktop shortcut",
		Action: func() launcher.StepResult {
			target := filepath.Join(dir, launcherExeName())
			if _, err := os.Stat(target); err != nil {
				return launcher.Skipped(fmt.Sprintf("%s not found", launcherExeName()))
			}
			err := platform.CreateUserDesktopShortcut(ShortcutName, platform.Shortcut{
				Target:      target,
				WorkingDir:  dir,
				Description: "Launch the network monitor with administrator privileges",
			})
			if err != nil {
				return launcher.Failed(err)
			}
			return launcher.Success("")
		},
	}
}
