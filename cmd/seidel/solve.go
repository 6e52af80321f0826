// SPDX-License-Identifier: MIT

package main

import (
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/seidel/config"
	"github.com/katalvlaran/seidel/linsys"
	"github.com/katalvlaran/seidel/matrixio"
	"github.com/katalvlaran/seidel/metrics"
	"github.com/katalvlaran/seidel/pivot"
	"github.com/katalvlaran/seidel/seidel"
)

type solveOptions struct {
	input inputOptions

	epsilon       float64
	maxIterations int
	interactive   bool
	history       bool
	metricsFile   string
}

func bindSolveFlags(fs *pflag.FlagSet, o *solveOptions) {
	bindInputFlags(fs, &o.input)
	fs.Float64Var(&o.epsilon, "epsilon", 0, "stop when every per-variable change is below this (overrides config)")
	fs.IntVar(&o.maxIterations, "max-iterations", 0, "sweep cap (overrides config)")
	fs.BoolVarP(&o.interactive, "interactive", "i", false, "read the system from the console instead of a file")
	fs.BoolVar(&o.history, "history", false, "print the largest change of every sweep")
	fs.StringVar(&o.metricsFile, "metrics-file", "", "write Prometheus textfile metrics here (overrides config)")
}

func newSolveCmd(a *app) *cobra.Command {
	o := solveOptions{}

	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Rearrange and solve a system",
		Long: `Read a system, rearrange it towards diagonal dominance and solve it.

Exit status is 0 when the tolerance was met, 2 when the sweep cap was
reached first and 1 for input or usage errors. With --interactive the
system and, unless --epsilon is given, the tolerance are asked for on the
console.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.solve(cmd.Flags(), o, args)
		},
	}
	bindSolveFlags(cmd.Flags(), &o)

	return cmd
}

func (a *app) solve(fs *pflag.FlagSet, o solveOptions, args []string) error {
	cfg := a.cfg
	if fs.Changed("epsilon") {
		cfg.Epsilon = o.epsilon
	}
	if fs.Changed("max-iterations") {
		cfg.MaxIterations = o.maxIterations
	}
	if fs.Changed("metrics-file") {
		cfg.MetricsFile = o.metricsFile
	}
	cfg.KeepHistory = cfg.KeepHistory || o.history
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "invalid settings")
	}

	var (
		sys    *linsys.System
		err    error
		prompt *matrixio.Prompter
	)
	switch {
	case len(args) == 1:
		if sys, err = a.readSystem(args[0], o.input); err != nil {
			return err
		}
	case o.interactive:
		prompt = matrixio.NewPrompter(a.in, a.out)
		if sys, err = prompt.ReadSystem(); err != nil {
			return errors.Wrap(err, "reading system from console")
		}
	default:
		return errors.New("a system file is required unless --interactive is set")
	}
	if err = matrixio.WriteSystem(a.out, sys); err != nil {
		return err
	}
	if prompt != nil && !fs.Changed("epsilon") {
		if cfg.Epsilon, err = prompt.Epsilon(); err != nil {
			return errors.Wrap(err, "reading epsilon from console")
		}
	}

	return a.run(sys, cfg)
}

// run rearranges and solves sys, then prints the report.
func (a *app) run(sys *linsys.System, cfg config.Config) error {
	log := a.log.WithFields(logrus.Fields{"size": sys.Size(), "epsilon": cfg.Epsilon, "maxIterations": cfg.MaxIterations})

	start := time.Now()
	rep, err := pivot.Rearrange(sys, pivot.WithLogger(a.log))
	if err != nil {
		return err
	}
	if err = matrixio.WriteRearrangement(a.out, rep); err != nil {
		return err
	}
	if !rep.Dominant {
		log.WithField("failedRow", rep.FailedRow).Warn("system is not diagonally dominant, convergence is not guaranteed")
	}
	if err = seidel.CheckPivots(sys, cfg.PivotTolerance); err != nil {
		log.WithError(err).Warn("solving anyway")
	}

	rec := metrics.NewRecorder()
	opts := []seidel.Option{seidel.WithLogger(a.log), seidel.WithObserver(rec.ObserveSweep)}
	if cfg.KeepHistory {
		opts = append(opts, seidel.WithHistory())
	}
	res, err := seidel.Solve(sys, cfg.Epsilon, cfg.MaxIterations, opts...)
	if err != nil {
		return err
	}
	took := time.Since(start)

	err = matrixio.WriteResult(a.out, matrixio.ResultView{
		InfNorm:       sys.InfinityNorm(),
		MaxIterations: cfg.MaxIterations,
		Result:        res,
	})
	if err != nil {
		return err
	}
	if cfg.KeepHistory {
		if err = matrixio.WriteHistory(a.out, res.History); err != nil {
			return err
		}
	}

	if cfg.MetricsFile != "" {
		if err = rec.Observe(sys, rep, res, took); err != nil {
			return err
		}
		if err = rec.WriteTextfile(cfg.MetricsFile); err != nil {
			return err
		}
		log.WithField("path", cfg.MetricsFile).Debug("metrics written")
	}

	if !res.Converged {
		return &exitError{code: 2, err: errors.Errorf("tolerance %g not reached within %d iterations", cfg.Epsilon, cfg.MaxIterations)}
	}

	return nil
}
