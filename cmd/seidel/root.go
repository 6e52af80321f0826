// SPDX-License-Identifier: MIT

package main

import (
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/seidel/config"
	"github.com/katalvlaran/seidel/linsys"
	"github.com/katalvlaran/seidel/matrixio"
)

// app is the state shared by every subcommand.
type app struct {
	in  io.Reader
	out io.Writer
	log *logrus.Logger
	cfg config.Config

	debug      bool
	configPath string
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	a := &app{in: in, out: out, log: logrus.New(), cfg: config.Default()}
	a.log.SetOutput(errOut)

	cmd := &cobra.Command{
		Use:   "seidel",
		Short: "Solve linear systems by Gauss-Seidel iteration",
		Long: `seidel reads a square linear system, rearranges rows and columns to
make it diagonally dominant where it can, and solves it by Gauss-Seidel
iteration.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}
	cmd.SetIn(in)
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	cmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "use debug log level")
	cmd.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a YAML settings file")

	cmd.AddCommand(newSolveCmd(a), newCheckCmd(a), newConfigCmd(a))

	return cmd
}

// setup loads settings and configures the logger.
func (a *app) setup() error {
	if a.configPath != "" {
		cfg, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}
	if a.debug || a.cfg.Debug {
		a.log.SetLevel(logrus.DebugLevel)
	}
	a.log.Debugf("log level %s", a.log.Level)

	return nil
}

// inputOptions select how a system is read from the command line.
type inputOptions struct {
	plain     bool
	constants string
}

func bindInputFlags(fs *pflag.FlagSet, o *inputOptions) {
	fs.BoolVar(&o.plain, "plain", false, "the file holds only coefficients (n, then n rows of n numbers); requires --constants")
	fs.StringVar(&o.constants, "constants", "", "file with the n constants, used with --plain")
}

// readSystem loads the system named by path in the format chosen by o.
func (a *app) readSystem(path string, o inputOptions) (*linsys.System, error) {
	var (
		sys *linsys.System
		err error
	)
	if o.plain {
		if o.constants == "" {
			return nil, errors.New("--plain requires --constants")
		}
		sys, err = matrixio.ReadPlainFiles(path, o.constants)
	} else {
		sys, err = matrixio.ReadFile(path)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	a.log.WithField("size", sys.Size()).Debugf("loaded %s", path)

	return sys, nil
}

func newConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective settings as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := a.cfg.YAML()
			if err != nil {
				return err
			}
			_, err = a.out.Write(out)
			return err
		},
	}
}
