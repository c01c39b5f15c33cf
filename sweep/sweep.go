// Package sweep drives the exhaustive search for the spectrogram and ridge
// extraction parameters that minimize a discrepancy metric between the
// extracted instantaneous-frequency curve and its known ground truth.
package sweep

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/anarkiwi/AviaNZ/algorithms/spectral"
	"github.com/anarkiwi/AviaNZ/ifextract"
	"github.com/anarkiwi/AviaNZ/logging"
	"github.com/anarkiwi/AviaNZ/measure"
	"github.com/anarkiwi/AviaNZ/quality"
	"github.com/anarkiwi/AviaNZ/transcode"
)

// csvHeader is written once before the first grid point.
var csvHeader = []string{"window_width", "incr", "window_type", "alpha", "beta", "spec_dim", "measure"}

// Config describes one sweep invocation.
type Config struct {
	SignalPath  string // path to the pure reference WAV
	SignalClass string // one of the recognized signal-class identifiers
	Metric      string // optimization metric name
	FreqScale   string // "Linear" or "Mel"
	LogPath     string // CSV enumeration log, one row per grid point
	Grid        Grid
}

// DefaultConfig returns a config over the full default grid with a linear
// frequency axis.
func DefaultConfig(signalPath, signalClass, metric, logPath string) Config {
	return Config{
		SignalPath:  signalPath,
		SignalClass: signalClass,
		Metric:      metric,
		FreqScale:   string(spectral.ScaleLinear),
		LogPath:     logPath,
		Grid:        DefaultGrid(),
	}
}

// Result is the outcome of a completed sweep.
type Result struct {
	Best      Point   // parameter combination with the minimal measure
	Measure   float64 // the minimal measure value
	Evaluated int     // grid points that produced a usable measure
	Failed    int     // grid points recorded as NaN
}

// Session owns the state of one sweep: the decoded signal, the open log file
// and the running best record. Configuration errors surface from NewSession,
// before any file is touched.
type Session struct {
	cfg       Config
	class     ifextract.SignalClass
	evaluator *measure.Evaluator
	scale     spectral.FreqScale
	generator *spectral.Generator
	logger    logging.Logger
}

// NewSession validates the configuration and builds a sweep session.
// Unrecognized signal classes, metrics, frequency scales and malformed grids
// are fatal here; no log file is created on failure.
func NewSession(cfg Config) (*Session, error) {
	class, err := ifextract.ParseSignalClass(cfg.SignalClass)
	if err != nil {
		return nil, err
	}

	metric, err := measure.ParseMetric(cfg.Metric)
	if err != nil {
		return nil, err
	}

	scale, err := spectral.ParseFreqScale(cfg.FreqScale)
	if err != nil {
		return nil, err
	}

	if err := cfg.Grid.Validate(); err != nil {
		return nil, err
	}

	if cfg.LogPath == "" {
		return nil, fmt.Errorf("log path must be set")
	}

	return &Session{
		cfg:       cfg,
		class:     class,
		evaluator: measure.NewEvaluator(metric),
		scale:     scale,
		generator: spectral.NewGenerator(),
		logger: logging.WithFields(logging.Fields{
			"component": "sweep",
			"class":     cfg.SignalClass,
			"metric":    cfg.Metric,
		}),
	}, nil
}

// Run enumerates every grid point, logs one CSV row per point and returns the
// best-scoring parameter combination. A failing grid point is recorded as NaN
// and skipped in the minimum comparison; a missing signal file or unwritable
// log path aborts before any point is evaluated.
func (s *Session) Run() (*Result, error) {
	signal, err := transcode.ReadWAV(s.cfg.SignalPath)
	if err != nil {
		return nil, err
	}

	logFile, err := os.Create(s.cfg.LogPath)
	if err != nil {
		return nil, fmt.Errorf("create log %s: %w", s.cfg.LogPath, err)
	}
	defer logFile.Close()

	w := csv.NewWriter(logFile)
	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("write log header: %w", err)
	}

	s.logger.Info("sweep started", logging.Fields{
		"signal": s.cfg.SignalPath,
		"points": s.cfg.Grid.Size(),
	})

	result := &Result{Measure: math.Inf(1)}

	for _, windowWidth := range s.cfg.Grid.WindowWidths {
		for _, hop := range s.cfg.Grid.HopFractions {
			for _, windowType := range s.cfg.Grid.WindowTypes {
				for _, alpha := range s.cfg.Grid.Alphas {
					for _, beta := range s.cfg.Grid.Betas {
						point := Point{
							WindowWidth: windowWidth,
							Incr:        int(float64(windowWidth) * hop),
							WindowType:  windowType,
							Alpha:       alpha,
							Beta:        beta,
						}

						value, specDim, err := s.evaluate(signal, point)
						if err != nil || math.IsNaN(value) {
							if err != nil {
								s.logger.Warn("grid point failed", logging.Fields{
									"point": fmt.Sprintf("%+v", point),
									"error": fmt.Sprint(err),
								})
							}
							result.Failed++
							if werr := writeRow(w, point, specDim, math.NaN()); werr != nil {
								return nil, werr
							}
							continue
						}

						result.Evaluated++
						if werr := writeRow(w, point, specDim, value); werr != nil {
							return nil, werr
						}

						if value < result.Measure {
							result.Measure = value
							result.Best = point
							s.logger.Debug("best updated", logging.Fields{
								"measure": value,
								"point":   fmt.Sprintf("%+v", point),
							})
						}
					}
				}
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush log: %w", err)
	}

	if result.Evaluated == 0 {
		return nil, fmt.Errorf("no grid point produced a usable measure")
	}

	s.logBaseline(signal, result.Best)

	s.logger.Info("sweep finished", logging.Fields{
		"evaluated": result.Evaluated,
		"failed":    result.Failed,
		"best":      fmt.Sprintf("%+v", result.Best),
		"measure":   result.Measure,
	})

	return result, nil
}

// logBaseline records the Renyi entropy of the pure signal's spectrogram at
// the winning parameters, the baseline quality measure kept with each result
// set.
func (s *Session) logBaseline(signal *transcode.AudioData, best Point) {
	sp, err := s.generator.Compute(signal.PCM, signal.SampleRate, best.WindowWidth, best.Incr, best.WindowType, s.scale)
	if err != nil {
		return
	}

	entropy, err := quality.RenyiEntropy(sp.Magnitude, quality.DefaultRenyiOrder)
	if err != nil {
		return
	}

	s.logger.Info("baseline spectrogram entropy", logging.Fields{
		"renyi_order": quality.DefaultRenyiOrder,
		"entropy":     entropy,
	})
}

// evaluate runs one grid point end to end: spectrogram, ridge extraction,
// ground truth, metric. All buffers are scoped to this call.
func (s *Session) evaluate(signal *transcode.AudioData, p Point) (float64, int, error) {
	if p.Incr < 1 {
		return 0, 0, fmt.Errorf("hop of %d samples is too small", p.Incr)
	}

	sp, err := s.generator.Compute(signal.PCM, signal.SampleRate, p.WindowWidth, p.Incr, p.WindowType, s.scale)
	if err != nil {
		return 0, 0, err
	}

	extractor := ifextract.NewExtractor(p.Alpha, p.Beta)
	curve, err := extractor.Extract(sp)
	if err != nil {
		return 0, sp.Cells(), err
	}

	truth := ifextract.SampleIFLaw(s.class, sp.Duration, len(curve))

	value, err := s.evaluator.Compare(curve, truth, sp.Duration, sp.Cells())
	if err != nil {
		return 0, sp.Cells(), err
	}

	return value, sp.Cells(), nil
}

// writeRow appends one grid point record to the CSV log.
func writeRow(w *csv.Writer, p Point, specDim int, value float64) error {
	row := []string{
		strconv.Itoa(p.WindowWidth),
		strconv.Itoa(p.Incr),
		p.WindowType,
		strconv.FormatFloat(p.Alpha, 'g', -1, 64),
		strconv.FormatFloat(p.Beta, 'g', -1, 64),
		strconv.Itoa(specDim),
		strconv.FormatFloat(value, 'g', -1, 64),
	}

	if err := w.Write(row); err != nil {
		return fmt.Errorf("write log row: %w", err)
	}
	return nil
}
