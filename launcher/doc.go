// Package launcher implements the elevated launch flow for the network
// monitor, plus the step and logging utilities shared with the setup
// tool.
//
// The flow is strictly linear: probe privileges, relaunch elevated once
// if needed, normalize the working directory to the executable's
// location, start the monitor in the inherited console, wait, and
// report failure without letting the console window vanish.
//
// # Basic Usage
//
//	f := launcher.New("Network Monitor Professional", "2.0", "monitoramento.py")
//	os.Exit(f.Run())
//
// Every stage of the flow is an injectable function on Flow, so tests
// replace the privilege probe, the relaunch, and the child process with
// fakes while exercising the real control flow.
package launcher
