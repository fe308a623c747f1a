// Command gosatcore reads a DIMACS CNF file and reports whether it is
// satisfiable, optionally printing solver statistics, pretty-printing the
// model, or listing every satisfying assignment.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/kr/pretty"

	"github.com/cdcl-go/satcore/dimacsio"
	"github.com/cdcl-go/satcore/sat"
)

var (
	flagGzip       = flag.Bool("gzip", false, "treat the instance file as gzip-compressed")
	flagVerbose    = flag.Bool("v", false, "print solver statistics")
	flagDebug      = flag.Bool("debug", false, "pretty-print the model after solving")
	flagAll        = flag.Bool("all", false, "enumerate every satisfying assignment instead of stopping at the first")
	flagHeuristic  = flag.String("heuristic", sat.DefaultOptions.Heuristic, `branching heuristic ("vsids")`)
	flagLearning   = flag.String("learning", sat.DefaultOptions.ClauseLearning, `clause learning policy ("none" or "simple")`)
	flagInterval   = flag.Int("interval", sat.DefaultOptions.Interval, "decisions between periodic maintenance passes")
	flagCPUProfile = flag.Bool("cpuprof", false, "save pprof CPU profile in cpuprof")
	flagMemProfile = flag.Bool("memprof", false, "save pprof memory profile in memprof")
)

type config struct {
	instanceFile string
	gzipped      bool
	verbose      bool
	debug        bool
	all          bool
	opts         sat.Options
	cpuProfile   bool
	memProfile   bool
}

func parseConfig() (*config, error) {
	flag.Parse()

	if flag.NArg() == 0 || flag.Arg(0) == "" {
		return nil, fmt.Errorf("missing instance file")
	}
	return &config{
		instanceFile: flag.Arg(0),
		gzipped:      *flagGzip,
		verbose:      *flagVerbose,
		debug:        *flagDebug,
		all:          *flagAll,
		opts: sat.Options{
			Heuristic:      *flagHeuristic,
			ClauseLearning: *flagLearning,
			Interval:       *flagInterval,
		},
		cpuProfile: *flagCPUProfile,
		memProfile: *flagMemProfile,
	}, nil
}

// solveAll re-solves the instance once per model found, forcing the
// previous model's negation as an additional clause each time; mirrors the
// teacher's yass_test.go solveAll helper.
func solveAll(inst *dimacsio.Instance, opts sat.Options) ([]map[int]bool, error) {
	clauses := append([][]sat.Literal(nil), inst.Clauses...)
	var models []map[int]bool

	for {
		s, err := sat.NewSolver(clauses, inst.NumVars, nil, opts)
		if err != nil {
			return nil, err
		}
		if s.FindModel() == sat.UNSAT {
			return models, nil
		}
		m := s.Model()
		models = append(models, m)

		blocking := make([]sat.Literal, 0, inst.NumVars)
		for v := 1; v <= inst.NumVars; v++ {
			if m[v] {
				blocking = append(blocking, sat.NegativeLiteral(v))
			} else {
				blocking = append(blocking, sat.PositiveLiteral(v))
			}
		}
		clauses = append(clauses, blocking)
	}
}

func run(cfg *config) error {
	inst, err := dimacsio.LoadFile(cfg.instanceFile, cfg.gzipped)
	if err != nil {
		return fmt.Errorf("could not parse instance: %w", err)
	}

	fmt.Printf("c variables:  %d\n", inst.NumVars)
	fmt.Printf("c clauses:    %d\n", len(inst.Clauses))

	if cfg.all {
		t := time.Now()
		models, err := solveAll(inst, cfg.opts)
		if err != nil {
			return err
		}
		elapsed := time.Since(t)
		fmt.Printf("c time (sec): %f\n", elapsed.Seconds())
		fmt.Printf("c models:     %d\n", len(models))
		w := bufio.NewWriter(os.Stdout)
		defer w.Flush()
		for _, m := range models {
			dimacsio.WriteModel(w, inst.NumVars, m)
		}
		return nil
	}

	s, err := sat.NewSolver(inst.Clauses, inst.NumVars, nil, cfg.opts)
	if err != nil {
		return fmt.Errorf("could not build solver: %w", err)
	}

	t := time.Now()
	result := s.FindModel()
	elapsed := time.Since(t)

	fmt.Printf("c time (sec): %f\n", elapsed.Seconds())
	fmt.Printf("c status:     %s\n", result)

	if cfg.verbose {
		fmt.Printf("c decisions:  %d\n", s.Stats.Decisions)
		fmt.Printf("c conflicts:  %d (%.2f /sec)\n", s.Stats.Conflicts, float64(s.Stats.Conflicts)/elapsed.Seconds())
		fmt.Printf("c flips:      %d\n", s.Stats.Flips)
		fmt.Printf("c learned:    %d\n", s.NumLearnedClauses())
		fmt.Printf("c avg depth:  %.2f\n", s.AverageConflictDepth())
	}

	if cfg.debug {
		pretty.Println(s.Model())
	}

	if result == sat.SAT {
		w := bufio.NewWriter(os.Stdout)
		defer w.Flush()
		return dimacsio.WriteModel(w, inst.NumVars, s.Model())
	}

	return nil
}

func main() {
	cfg, err := parseConfig()
	if err != nil {
		log.Fatal(err)
	}

	if cfg.cpuProfile {
		f, err := os.Create("cpuprof")
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	if err := run(cfg); err != nil {
		log.Fatal(err)
	}

	if cfg.memProfile {
		f, err := os.Create("memprof")
		if err != nil {
			log.Fatal(err)
		}
		pprof.WriteHeapProfile(f)
		f.Close()
	}
}
