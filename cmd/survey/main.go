// survey generates many random boards and prints statistics about their groups.
//
//	$ survey -config=size=19,empty=0.4 -num_boards=10000
package main

import (
	"context"
	"flag"
	"fmt"
	"github.com/janpfeifer/goGroups/internal/fill"
	"github.com/janpfeifer/goGroups/internal/profilers"
	"github.com/janpfeifer/goGroups/internal/survey"
	"github.com/janpfeifer/goGroups/internal/ui/spinning"
	"github.com/janpfeifer/must"
	"k8s.io/klog/v2"
	"os"
	"time"
)

var (
	flagConfig      = flag.String("config", "", "Random board configuration, e.g. \"size=9x11,seed=13,empty=0.33\".")
	flagNumBoards   = flag.Int("num_boards", 1000, "Number of boards to survey.")
	flagParallelism = flag.Int("parallelism", 0, "If > 0 ignore GOMAXPROCS and process "+
		"these many boards simultaneously.")
	flagQuiet   = flag.Bool("quiet", false, "Only print the final results.")
	flagSpinner = flag.String("spinner", "ascii", "Theme of the progress spinner: \"ascii\" or \"moon\" "+
		"(needs a terminal font with emojis).")
)

// globalCtx is cancelled when the program is interrupted (Ctrl+C).
var globalCtx = context.Background()

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	if *flagNumBoards <= 0 {
		klog.Fatalf("Invalid --num_boards=%d", *flagNumBoards)
	}

	// Capture Control+C
	var globalCancel func()
	globalCtx, globalCancel = context.WithCancel(context.Background())
	spinning.SafeInterrupt(globalCancel, 3*time.Second)
	defer globalCancel()

	// Profilers: HTTP profiler server and CPU profile.
	profilers.Setup(globalCtx)
	defer profilers.OnQuit()

	cfg := survey.Config{
		Fill:        must.M1(fill.NewConfig(*flagConfig)),
		NumBoards:   *flagNumBoards,
		Parallelism: *flagParallelism,
	}
	var s *spinning.Spinning
	if !*flagQuiet {
		lastPrint := time.Now()
		cfg.OnBoard = func(r *survey.Results) {
			if time.Since(lastPrint) < time.Second {
				return
			}
			lastPrint = time.Now()
			fmt.Printf("\r%s\x1b[0K ", r)
		}
		spinning.Theme = must.M1(spinning.ThemeByName(*flagSpinner))
		s = spinning.New(globalCtx, os.Stdout)
	}
	results, err := survey.Run(globalCtx, cfg)
	if s != nil {
		s.Done()
	}
	if err != nil {
		klog.Exitf("Survey failed: %+v", err)
	}
	fmt.Printf("\r%s\x1b[0K\n", results)
	if results.Interrupted {
		fmt.Printf("Interrupted: %s\n", globalCtx.Err())
	}
}
