// Command monitorsetup prepares a monitor installation in the directory
// containing the setup binary: logs directory, Python requirements, and
// a desktop shortcut to the launcher on Windows. It takes no arguments.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/crafted-tech/monitorlaunch/launcher"
	"github.com/crafted-tech/monitorlaunch/platform"
	"github.com/crafted-tech/monitorlaunch/setup"
)

func main() {
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("NETWORK MONITOR PROFESSIONAL - SETUP")
	fmt.Println(strings.Repeat("=", 60))

	dir, err := platform.ExecutableDir()
	if err != nil {
		fmt.Printf("Cannot locate the setup directory: %v\n", err)
		platform.WaitForKey()
		os.Exit(1)
	}

	log, err := launcher.NewLogger("monitor-setup")
	if err != nil {
		// Setup still works without a log file; say so and continue.
		fmt.Printf("Warning: no log file for this run: %v\n", err)
	}
	defer log.Close()

	if platform.IsProcessRunning("monitorlaunch.exe") {
		fmt.Println("Warning: the monitor launcher is running; close it before updating.")
		log.Warn("monitorlaunch.exe running during setup")
	}

	if err := launcher.RunSteps(os.Stdout, log, setup.BuildSteps(dir)); err != nil {
		fmt.Printf("\nSetup failed: %v\n", err)
		if log.Path() != "" {
			fmt.Printf("Details: %s\n", log.Path())
		}
		fmt.Println("Press any key to continue...")
		platform.WaitForKey()
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("Setup complete. Start the monitor with monitorlaunch.")
	fmt.Println(strings.Repeat("=", 60))
}
