// Package cli implements the cvgen command line surface.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"cvgen/internal/render"
	"cvgen/internal/schema"
	"cvgen/pkg/logging"
)

// NewRootCommand builds the cvgen command. The logging flags may also be set
// through the environment: CVGEN_LOG_LEVEL and CVGEN_SILENT. The path flags
// are per-invocation and have no environment form.
func NewRootCommand() *cobra.Command {
	var (
		dataPath string
		inputs   []string
		output   string
		force    bool
		logLevel string
		silent   bool
	)

	cmd := &cobra.Command{
		Use:   "cvgen",
		Short: "Render a CV from YAML data through LaTeX and HTML templates",
		Long: `cvgen validates a structured YAML CV record and renders it through one or
more text templates into LaTeX source or an HTML page. The target format is
detected from each template's file name (.tex/.latex vs .html).`,
		Example: `  cvgen -d cv_data.yaml -i templates/cv.tex.tmpl -o out/cv.tex
  cvgen -d cv_data.yaml -i templates/cv.tex.tmpl -i templates/cv.html.tmpl -o out/
  cvgen -d cv_data.yaml -i templates/cv.html.tmpl`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logging.Setup(viper.GetString("log-level"), viper.GetBool("silent"))
			return run(dataPath, inputs, output, force)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&dataPath, "data", "d", "", "YAML data file path")
	flags.StringSliceVarP(&inputs, "input", "i", nil, "template file path(s)")
	flags.StringVarP(&output, "output", "o", "", "output path; stdout if omitted")
	flags.BoolVarP(&force, "force", "f", false, "overwrite existing output files")
	flags.StringVarP(&logLevel, "log-level", "l", "info", "log level (debug, info, warn, error)")
	flags.BoolVarP(&silent, "silent", "s", false, "silent mode, no logging")

	cobra.CheckErr(cmd.MarkFlagRequired("data"))
	cobra.CheckErr(cmd.MarkFlagRequired("input"))

	viper.SetEnvPrefix("CVGEN")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	cobra.CheckErr(viper.BindPFlag("log-level", flags.Lookup("log-level")))
	cobra.CheckErr(viper.BindPFlag("silent", flags.Lookup("silent")))

	return cmd
}

func run(dataPath string, inputs []string, output string, force bool) error {
	log := slog.With("run_id", uuid.NewString())

	params, err := ResolveParams(dataPath, inputs, output, force)
	if err != nil {
		return err
	}

	log.Info("Loading data", "path", params.DataPath)
	cv, err := schema.Load(params.DataPath)
	if err != nil {
		return err
	}
	log.Debug("Record validated", "record", spew.Sdump(cv))

	engine := render.NewEngine()
	for _, job := range params.Jobs {
		name := filepath.Base(job.TemplatePath)
		log.Info("Rendering template", "template", name)

		if job.OutputPath == "" {
			out, _, err := engine.Render(job.TemplatePath, cv)
			if err != nil {
				return err
			}
			log.Info("Writing rendered content to stdout", "template", name)
			fmt.Fprint(os.Stdout, out)
			continue
		}

		log.Info("Writing rendered content", "path", job.OutputPath)
		if err := engine.RenderToFile(job.TemplatePath, job.OutputPath, cv, params.Force); err != nil {
			return err
		}
	}

	return nil
}
