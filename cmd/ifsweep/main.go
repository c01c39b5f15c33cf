// Command ifsweep searches for the spectrogram and ridge-extraction
// parameters that best recover the known instantaneous frequency of a
// reference signal, writing the full enumeration to a CSV log.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/anarkiwi/AviaNZ/logging"
	"github.com/anarkiwi/AviaNZ/sweep"
)

func main() {
	var (
		signalPath = flag.String("signal", "", "path to the pure reference WAV file")
		class      = flag.String("class", "", "signal class: pure_tone, exponential_downchirp, exponential_upchirp, linear_downchirp, linear_upchirp")
		metric     = flag.String("metric", "L2", "optimization metric: L2, Iatsenko or Geodesic")
		scale      = flag.String("scale", "Linear", "frequency scale: Linear or Mel")
		logPath    = flag.String("log", "find_optimal_parameters_log.csv", "path of the CSV enumeration log")
		verbose    = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		logging.SetLevel(logging.DebugLevel)
	}

	if *signalPath == "" || *class == "" {
		fmt.Fprintln(os.Stderr, "usage: ifsweep -signal <file.wav> -class <signal_class> [-metric L2] [-scale Linear] [-log out.csv]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	cfg := sweep.DefaultConfig(*signalPath, *class, *metric, *logPath)
	cfg.FreqScale = *scale

	session, err := sweep.NewSession(cfg)
	if err != nil {
		logging.Fatal(err, "invalid sweep configuration")
	}

	result, err := session.Run()
	if err != nil {
		logging.Fatal(err, "sweep failed")
	}

	fmt.Printf("optimal parameters: window_width=%d incr=%d window_type=%s alpha=%g beta=%g (measure=%g, %d evaluated, %d failed)\n",
		result.Best.WindowWidth, result.Best.Incr, result.Best.WindowType,
		result.Best.Alpha, result.Best.Beta, result.Measure,
		result.Evaluated, result.Failed)
}
