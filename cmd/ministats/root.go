package main

import (
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/heistp/ministats"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// envPrefix is the prefix of environment variables overriding flags.
const envPrefix = "MINISTATS"

// app holds state shared by the commands.
type app struct {
	v   *viper.Viper
	log *zap.Logger
	in  io.Reader
	out io.Writer
	err io.Writer
}

// style returns the StyleFunc for output.
func (a *app) style() (ministats.StyleFunc, error) {
	return newStyle(a.out, a.v)
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	a := &app{
		v:   viper.New(),
		log: zap.NewNop(),
		in:  in,
		out: out,
		err: errOut,
	}

	cmd := &cobra.Command{
		Use:   "ministats",
		Short: "Status bar statistics formatting",
		Long: `ministats formats byte counts, transfer rates, usage levels and
colors for compact status displays, and samples host statistics.

Every flag may also be set in a YAML config file (--config), or with an
environment variable such as MINISTATS_LOG_LEVEL.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.log.Sync()
		},
	}
	cmd.SetIn(in)
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	f := cmd.PersistentFlags()
	f.String("config", "", "config file")
	f.Bool("color", true, "classify values into colored levels")
	f.String("log-level", "warn", "log level (debug, info, warn, error)")

	cmd.AddCommand(
		newSizeCmd(a),
		newRateCmd(a),
		newLevelCmd(a),
		newHexCmd(a),
		newArrowCmd(a),
		newCondenseCmd(a),
		newSnapshotCmd(a),
	)
	return cmd
}

// init loads configuration and sets up logging for cmd.
func (a *app) init(cmd *cobra.Command) (err error) {
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	a.v.AutomaticEnv()
	if err = bindFlags(a.v, cmd.Flags()); err != nil {
		return
	}
	if path := a.v.GetString("config"); path != "" {
		a.v.SetConfigFile(path)
		if err = a.v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "reading config %s", path)
		}
	}
	if a.log, err = newLogger(a.err, a.v.GetString("log-level")); err != nil {
		return
	}
	a.log.Debug("configured",
		zap.String("command", cmd.Name()),
		zap.String("config", a.v.ConfigFileUsed()))
	return
}

// bindFlags binds every flag in fs to v under its own name.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) (err error) {
	fs.VisitAll(func(f *pflag.Flag) {
		if err != nil {
			return
		}
		if e := v.BindPFlag(f.Name, f); e != nil {
			err = errors.Wrapf(e, "binding flag %s", f.Name)
		}
	})
	return
}
