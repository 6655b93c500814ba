// This file is part of GopherPC.
//
// GopherPC is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherPC is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherPC.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/jetsetilly/gopherpc/hardware"
	"github.com/jetsetilly/gopherpc/logger"
	"github.com/jetsetilly/gopherpc/monitor"
	"github.com/jetsetilly/gopherpc/statsview"
	"github.com/jetsetilly/gopherpc/version"
)

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout, os.Stderr))
}

func launch(args []string, stdout io.Writer, stderr io.Writer) int {
	flgs := flag.NewFlagSet(version.ApplicationName, flag.ContinueOnError)
	flgs.SetOutput(stderr)

	showVersion := flgs.Bool("version", false, "print version and quit")
	echoLog := flgs.Bool("log", false, "echo log entries as they arrive")
	stats := flgs.Bool("stats", false, fmt.Sprintf("launch statsview (available: %v)", statsview.Available()))

	if err := flgs.Parse(args); err != nil {
		return 10
	}

	if *showVersion {
		v, rev, release := version.Version()
		fmt.Fprintf(stdout, "%s %s\n", version.ApplicationName, v)
		if !release {
			fmt.Fprintf(stdout, "%s\n", rev)
		}
		return 0
	}

	if *echoLog {
		logger.SetEcho(stderr, true)
	}

	if *stats {
		statsview.Launch(stdout)
	}

	pc, err := hardware.NewPC()
	if err != nil {
		fmt.Fprintf(stderr, "* %v\n", err)
		return 10
	}

	m := monitor.NewMonitor(pc)
	if err := m.Run(); err != nil {
		fmt.Fprintf(stderr, "* %v\n", err)
		return 10
	}

	return 0
}
