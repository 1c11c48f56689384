// Command monitorlaunch starts the network monitor with administrator
// privileges. It takes no arguments: double-click it (or run it from a
// shell) next to monitoramento.py.
package main

import (
	"os"

	"github.com/crafted-tech/monitorlaunch/launcher"
	"github.com/crafted-tech/monitorlaunch/platform"
)

const (
	appName    = "Network Monitor Professional"
	appVersion = "2.0"

	monitorScript = "monitoramento.py"

	// instanceName guards against a double-clicked second copy starting
	// a second monitor.
	instanceName = "CraftedTech.MonitorLaunch"
)

func main() {
	f := launcher.New(appName, appVersion, monitorScript)
	// The flow takes the lock only once elevated; holding it here would
	// make the elevated copy see this process as a duplicate.
	f.AcquireInstance = func() (func(), bool) {
		return platform.AcquireSingleInstance(instanceName)
	}
	os.Exit(f.Run())
}
