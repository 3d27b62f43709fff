// Package pprof adds profiling support to the calc program.
package pprof

import (
	"fmt"
	"os"
	"runtime/pprof"
	"runtime/trace"

	"src.calc.sh/pkg/prog"
)

// A kind of profile that can be written to a file named by a flag.
type profile struct {
	flag, desc string
	// Called before the rest of the program runs.
	start func(f *os.File) error
	// Called after the rest of the program finishes.
	stop func(f *os.File)
}

var profiles = []profile{
	{
		"cpuprofile", "CPU profile",
		func(f *os.File) error { return pprof.StartCPUProfile(f) },
		func(*os.File) { pprof.StopCPUProfile() },
	},
	{
		"allocsprofile", "memory allocation profile",
		func(*os.File) error { return nil },
		func(f *os.File) { pprof.Lookup("allocs").WriteTo(f, 0) },
	},
	{
		"trace", "execution trace",
		func(f *os.File) error { return trace.Start(f) },
		func(*os.File) { trace.Stop() },
	},
}

// Program adds support for the -cpuprofile, -allocsprofile and -trace flags.
// It always passes control to the next program, and finishes the profiles
// after that program has run.
type Program struct {
	paths []string
}

func (p *Program) RegisterFlags(f *prog.FlagSet) {
	p.paths = make([]string, len(profiles))
	for i, prof := range profiles {
		f.StringVar(&p.paths[i], prof.flag, "", "write "+prof.desc+" to file")
	}
}

func (p *Program) Run(fds [3]*os.File, _ []string) error {
	var cleanups []func([3]*os.File)
	for i, prof := range profiles {
		if p.paths[i] == "" {
			continue
		}
		f, err := os.Create(p.paths[i])
		if err == nil {
			err = prof.start(f)
			if err != nil {
				f.Close()
			}
		}
		if err != nil {
			fmt.Fprintf(fds[2], "Warning: cannot create %s: %v\n", prof.desc, err)
			fmt.Fprintf(fds[2], "Continuing without %s.\n", prof.desc)
			continue
		}
		stop := prof.stop
		cleanups = append(cleanups, func([3]*os.File) {
			stop(f)
			f.Close()
		})
	}
	return prog.NextProgram(cleanups...)
}
