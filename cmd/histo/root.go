package main

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Syrah0/swiftSet/core/config"
	"github.com/Syrah0/swiftSet/core/hist"
	"github.com/Syrah0/swiftSet/core/key"
	"github.com/Syrah0/swiftSet/core/utils"
)

// app holds the state shared by the subcommands of one invocation.
type app struct {
	configDir string
	debug     bool
	settings  config.Config

	cfg *config.Config
	src key.Source[any]
}

func newRootCmd() *cobra.Command {
	a := &app{settings: *config.Default()}
	cmd := &cobra.Command{
		Use:   "histo",
		Short: "Count values into histograms and compare them as sets",
		Long: `histo reads values from files and counts them into histograms.

A file ending in .json holds a JSON array, one ending in .yaml or .yml
a YAML sequence, and any other file one value per line.  An extra .gz
or .sz suffix means gzip or snappy compressed content.

Settings come from histo.yaml in the --config directory, HISTO_*
environment variables and flags, in increasing priority.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.String("key", "", `Key values by "default" or "field:<name>"`)
	flags.Bool("wrap", false, "Tell values of different types apart, e.g., 1 and \"1\"")
	flags.String("format", config.FormatText, "Output format: text or json")
	flags.StringVar(&a.configDir, "config", "", "Directory containing histo.yaml")
	flags.BoolVar(&a.debug, "debug", false, "Enable debug log output")
	a.settings.RegisterAsFlag(flags, "settings")
	flags.MarkHidden("settings")

	cmd.PersistentPreRunE = a.preRun
	cmd.AddCommand(
		newCountCmd(a),
		newSetOpCmd(a, "union", "Members of A or B",
			(*hist.Histogram[any]).Union),
		newSetOpCmd(a, "intersect", "Members of both A and B",
			(*hist.Histogram[any]).Intersection),
		newSetOpCmd(a, "diff", "Members of exactly one of A and B",
			(*hist.Histogram[any]).Difference),
		newSetOpCmd(a, "complement", "Members of B not in A",
			(*hist.Histogram[any]).Complement),
		newSetOpCmd(a, "minus", "Members of A not in B",
			(*hist.Histogram[any]).Minus),
		newEqualCmd(a),
		newMergeCmd(a),
	)
	return cmd
}

// preRun sets up logging and resolves the effective configuration.
// A JSON encoded --settings replaces all other sources.
func (a *app) preRun(cmd *cobra.Command, _ []string) error {
	log.SetOutput(cmd.ErrOrStderr())
	if a.debug {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}

	if cmd.Flags().Changed("settings") {
		if e := a.settings.Validate(); e != nil {
			return errors.Wrap(e, "--settings")
		}
		a.cfg = &a.settings
	} else {
		v := config.New(a.configDir)
		if e := v.BindPFlags(cmd.Flags()); e != nil {
			return errors.Wrap(e, "Cannot bind flags")
		}
		c, e := config.Load(v)
		if e != nil {
			return e
		}
		a.cfg = c
	}

	src, e := a.cfg.Source()
	if e != nil {
		return e
	}
	a.src = src
	if s, e := a.cfg.Encode(); e == nil {
		log.Debugf("Effective configuration: %s", s)
	}
	return nil
}

// source returns the key source of loaded histograms.  With Wrap set,
// keys carry the type of the keyed value.
func (a *app) source() key.Source[any] {
	src := a.src
	if !a.cfg.Wrap {
		return src
	}
	return key.Func(func(v any) string {
		if src.Kind() == key.KindField {
			if fv, ok := key.FieldValue(v, src.FieldName()); ok {
				return key.Wrap(fv).CanonicalKey()
			}
		}
		return key.Wrap(v).CanonicalKey()
	})
}

func (a *app) load(filename string) (*hist.Histogram[any], error) {
	vs, e := utils.LoadValues(filename)
	if e != nil {
		return nil, e
	}
	log.Debugf("Loaded %d values from %s", len(vs), filename)
	return hist.NewKeyed(a.source(), vs...), nil
}

// loadAll loads every file into a single histogram.
func (a *app) loadAll(filenames []string) (*hist.Histogram[any], error) {
	h := hist.NewKeyed(a.source())
	for _, f := range filenames {
		vs, e := utils.LoadValues(f)
		if e != nil {
			return nil, e
		}
		h.AddValues(vs)
	}
	return h, nil
}
