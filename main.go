package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	goyaml "gopkg.in/yaml.v3"

	"github.com/blagoySimandov/skillshape/internal/config"
	"github.com/blagoySimandov/skillshape/internal/logging"
	"github.com/blagoySimandov/skillshape/internal/profile"
	"github.com/blagoySimandov/skillshape/internal/student"
	"github.com/blagoySimandov/skillshape/internal/yaml"
)

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	logLevel string
	dump     bool

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr, logger: zap.NewNop()}

	root := &cobra.Command{
		Use:           "skillshape",
		Short:         "Reshape student rows and extend skill profiles",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				cfg.Logging.Level = a.logLevel
				if err := cfg.Validate(); err != nil {
					return fmt.Errorf("invalid --log-level: %w", err)
				}
			}
			a.cfg = cfg
			a.logger = logging.NewWithWriter(cfg.Logging.Level, a.stderr)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&a.dump, "dump", false, "dump decoded values to stderr")

	root.AddCommand(a.recordsCmd(), a.addCmd())
	return root
}

func (a *app) recordsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "records <file|->",
		Short: "Convert [name, skills, scores] rows into named records",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRecords(args[0])
		},
	}
}

func (a *app) addCmd() *cobra.Command {
	var (
		specs []string
		out   string
	)
	cmd := &cobra.Command{
		Use:   "add <file|->",
		Short: "Append skills to a person's profile without touching the rest of the file",
		Long: `Append skills to categories of a person's skill profile.

Each --add takes category=label for label-only categories, or
category=skill:level (level may be empty) for structured categories.
The last ':' in the value always starts the level, so a plain label
containing ':' cannot be added with --add.
The updated document keeps the input's layout, comments and key order.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runAdd(args[0], specs, out)
		},
	}
	cmd.Flags().StringArrayVar(&specs, "add", nil, "addition as category=skill[:level] (repeatable)")
	cmd.Flags().StringVarP(&out, "out", "o", "", `output file, "-" for stdout (default updated_<file>)`)
	return cmd
}

func (a *app) runRecords(file string) error {
	data, err := a.readInput(file)
	if err != nil {
		return err
	}

	var doc rosterDocument
	if err := goyaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse %s: %w", file, err)
	}
	a.dumpValue(doc)

	records, err := student.FromTuples(doc.Students)
	if err != nil {
		return fmt.Errorf("failed to reshape %s: %w", file, err)
	}
	a.logger.Info("Reshaped student rows", zap.String("file", file), zap.Int("records", len(records)))
	a.dumpValue(records)

	enc := goyaml.NewEncoder(a.stdout)
	if a.cfg.Output.Indent > 0 {
		enc.SetIndent(a.cfg.Output.Indent)
	}
	if err := enc.Encode(recordsDocument{Students: records}); err != nil {
		return fmt.Errorf("failed to encode records: %w", err)
	}
	return enc.Close()
}

func (a *app) runAdd(file string, specs []string, out string) error {
	additions, err := parseAdditions(specs)
	if err != nil {
		return err
	}

	data, err := a.readInput(file)
	if err != nil {
		return err
	}

	var person profile.Person
	if err := goyaml.Unmarshal(data, &person); err != nil {
		return fmt.Errorf("failed to parse %s: %w", file, err)
	}
	a.dumpValue(person)

	updated, err := person.WithSkills(additions...)
	if err != nil {
		return fmt.Errorf("failed to update %s: %w", file, err)
	}
	a.logger.Debug("Applied additions", zap.String("person", updated.Name), zap.Int("additions", len(additions)))

	var updatedYAML []byte
	if a.cfg.Output.Indent > 0 {
		updatedYAML, err = yaml.UpdateYAMLIndent(data, updated, a.cfg.Output.Indent)
	} else {
		updatedYAML, err = yaml.UpdateYAML(data, updated)
	}
	if err != nil {
		return fmt.Errorf("failed to update YAML: %w", err)
	}

	if out == "" {
		if file == "-" {
			out = "-"
		} else {
			out = filepath.Join(filepath.Dir(file), "updated_"+filepath.Base(file))
		}
	}
	if out == "-" {
		_, err := a.stdout.Write(updatedYAML)
		return err
	}
	if err := os.WriteFile(out, updatedYAML, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	a.logger.Info("Updated YAML written", zap.String("file", out), zap.Int("additions", len(additions)))
	return nil
}

func (a *app) readInput(file string) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if file == "-" {
		data, err = io.ReadAll(a.stdin)
	} else {
		data, err = os.ReadFile(file)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return data, nil
}

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

func (a *app) dumpValue(v any) {
	if a.dump {
		dumpConfig.Fdump(a.stderr, v)
	}
}
