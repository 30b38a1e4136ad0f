package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"fillable/hydrate"
	"fillable/profile"
)

var errCheckFailed = errors.New("profile check failed")

func (a *app) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE...",
		Short: "Validate profile files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			failed := false

			for _, path := range args {
				f, err := profile.LoadFile(path)
				if err != nil {
					fmt.Fprintf(out, "ERROR in %s: %v\n", path, err)
					failed = true

					continue
				}

				diags := profile.Validate(f)
				a.logger.Debug("validated profile file",
					zap.String("path", path),
					zap.Int("profiles", len(f.Profiles)),
					zap.Int("errors", len(diags.Errors)),
					zap.Int("warnings", len(diags.Warnings)))

				for _, d := range diags.All() {
					fmt.Fprintf(out, "%s: %s %s\n", path, d.Severity, d)
				}

				if diags.HasErrors() {
					failed = true
				} else {
					fmt.Fprintf(out, "OK: %s\n", path)
				}
			}

			if failed {
				return errCheckFailed
			}

			return nil
		},
	}
}

func (a *app) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show FILE NAME",
		Short: "Print one profile as YAML",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProfile(args[0], args[1])
			if err != nil {
				return err
			}

			data, err := profile.Marshal(&profile.File{
				Version:  profile.CurrentVersion,
				Profiles: []profile.Profile{*p},
			})
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(data)

			return err
		},
	}
}

// previewHost declares no fields, so every key of the input ends up in the
// overflow bucket or, with dynamic fields on, in the dynamic container.
type previewHost struct {
	hydrate.Fillable
}

func (a *app) previewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "preview FILE NAME INPUT",
		Short: "Push a JSON or YAML document through a profile",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProfile(args[0], args[1])
			if err != nil {
				return err
			}

			source, err := readSource(args[2])
			if err != nil {
				return err
			}

			opts := append(p.Options(), hydrate.WithLogger(a.logger))

			host, err := hydrate.For(&previewHost{}).Apply(p).FillBy(source, opts...)
			if err != nil {
				return err
			}

			data, err := landed(host, p.Bucket).MarshalJSON()
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", data)

			return nil
		},
	}
}

// landed reports both containers a push fill can leave keys in. Index keys
// always go to the overflow bucket, even with dynamic fields on.
func landed(host *previewHost, bucket string) *hydrate.Map {
	return hydrate.NewMap().
		Set("dynamic", orEmpty(host.Dynamic())).
		Set("overflow", orEmpty(host.Overflow(bucket)))
}

func orEmpty(m *hydrate.Map) *hydrate.Map {
	if m == nil {
		return hydrate.NewMap()
	}

	return m
}

func loadProfile(path, name string) (*profile.Profile, error) {
	f, err := profile.LoadFile(path)
	if err != nil {
		return nil, err
	}

	p, ok := f.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%s: profile %q not found", path, name)
	}

	return p, nil
}

func readSource(path string) (*hydrate.Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return hydrate.ParseYAML(data)
	default:
		return hydrate.ParseJSON(data)
	}
}
