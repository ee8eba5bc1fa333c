package main

import (
	"fmt"
	"os"
	"os/exec"
	"syscall"
	"time"

	"github.com/bitmark-inc/exitwithstatus"

	"github.com/getopt-go/getopt"
)

func main() {
	defer exitwithstatus.Handler()

	spec := getopt.Spec{
		{Name: "help", Kind: getopt.Flag, Short: 'h',
			Description: "print this message and exit"},
		{Name: "verbose", Kind: getopt.Flag, Short: 'v',
			Description: "report the command, elapsed time and exit status"},
		{Name: "chdir", Kind: getopt.Value, Short: 'C',
			Description: "run the command in *directory*"},
	}

	program, result, err := getopt.ParseOS(spec)
	if err != nil {
		exitwithstatus.Message("%s: %s", program, err)
	}

	if result.Flags["help"] || len(result.NonOptions) == 0 {
		fmt.Fprintf(os.Stderr, "usage: %s [options] command [argument...]\n", program)
		fmt.Fprintf(os.Stderr, "options:\n")
		getopt.PrintUsage(spec)
		exitwithstatus.Exit(1)
	}

	cmd := exec.Command(result.NonOptions[0], result.NonOptions[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if dir, ok := result.Values["chdir"]; ok {
		cmd.Dir = dir
	}

	start := time.Now()
	err = cmd.Run()
	elapsed := time.Since(start)

	// Conventional status: non-negative is the exit status, negative is
	// the magnitude of the terminating signal.
	status := 0
	if err != nil {
		exitErr, ok := err.(*exec.ExitError)
		if !ok {
			exitwithstatus.Message("%s: run error: %s", program, err)
		}
		if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
			status = -int(ws.Signal())
		} else {
			status = exitErr.ExitCode()
		}
	}

	if result.Flags["verbose"] {
		fmt.Fprintf(os.Stderr, "%s: %q finished in %s with status %d\n",
			program, result.NonOptions[0], elapsed, status)
	}

	if status < 0 {
		exitwithstatus.Exit(128 - status)
	}
	exitwithstatus.Exit(status)
}
