package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cvgen/internal/render"
)

// TemplateJob pairs a template with its output destination. An empty
// OutputPath means stdout.
type TemplateJob struct {
	TemplatePath string
	OutputPath   string
}

// Params holds a validated invocation.
type Params struct {
	DataPath string
	Jobs     []TemplateJob
	Force    bool
}

// ResolveParams validates the invocation paths and pairs each template with
// its output. The contract:
//
//   - a single template may write to stdout (no output given), to a file, or
//     into an existing directory (output name = template name minus .tmpl);
//   - multiple templates require the output to be an existing directory;
//   - an output path must never be an input path or land inside a template's
//     directory, so a render cannot clobber its own sources;
//   - existing outputs are only allowed with force, and only if they are
//     regular files.
func ResolveParams(dataPath string, templates []string, output string, force bool) (*Params, error) {
	if dataPath == "" {
		return nil, fmt.Errorf("data file path is required")
	}
	if len(templates) == 0 {
		return nil, fmt.Errorf("at least one template file is required")
	}

	dataAbs, err := resolveInputFile(dataPath)
	if err != nil {
		return nil, err
	}

	inputs := map[string]bool{dataAbs: true}
	templateAbs := make([]string, 0, len(templates))
	for _, tp := range templates {
		abs, err := resolveInputFile(tp)
		if err != nil {
			return nil, err
		}
		if inputs[abs] {
			return nil, fmt.Errorf("same input file path %s is used multiple times", abs)
		}
		inputs[abs] = true
		templateAbs = append(templateAbs, abs)
	}

	jobs, err := pairOutputs(templateAbs, output)
	if err != nil {
		return nil, err
	}

	for _, job := range jobs {
		if job.OutputPath == "" {
			continue
		}
		if err := checkOutputPath(job.OutputPath, inputs, templateAbs, force); err != nil {
			return nil, err
		}
	}

	return &Params{DataPath: dataAbs, Jobs: jobs, Force: force}, nil
}

func resolveInputFile(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", path, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("file %s not found", abs)
	}
	if !info.Mode().IsRegular() {
		return "", fmt.Errorf("%s is not a regular file", abs)
	}
	return abs, nil
}

func pairOutputs(templates []string, output string) ([]TemplateJob, error) {
	if len(templates) == 1 {
		tp := templates[0]
		if output == "" {
			return []TemplateJob{{TemplatePath: tp}}, nil
		}
		out, err := filepath.Abs(output)
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", output, err)
		}
		if info, err := os.Stat(out); err == nil && info.IsDir() {
			out = filepath.Join(out, render.OutputName(tp))
		}
		return []TemplateJob{{TemplatePath: tp, OutputPath: out}}, nil
	}

	if output == "" {
		return nil, fmt.Errorf("for multiple template files, an output directory must be provided")
	}
	outDir, err := filepath.Abs(output)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", output, err)
	}
	info, err := os.Stat(outDir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("for multiple template files, the output path must be an existing directory")
	}

	jobs := make([]TemplateJob, 0, len(templates))
	for _, tp := range templates {
		jobs = append(jobs, TemplateJob{
			TemplatePath: tp,
			OutputPath:   filepath.Join(outDir, render.OutputName(tp)),
		})
	}
	return jobs, nil
}

// isWithinDir reports whether path is dir itself or anywhere below it. Both
// paths must be absolute and clean.
func isWithinDir(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

func checkOutputPath(out string, inputs map[string]bool, templates []string, force bool) error {
	if inputs[out] {
		return fmt.Errorf("output path %s is also used as an input file path, cannot overwrite an input", out)
	}
	for _, tp := range templates {
		if isWithinDir(filepath.Dir(tp), out) {
			return fmt.Errorf("cannot save output file %s into a template directory", out)
		}
	}

	if info, err := os.Stat(out); err == nil {
		if !info.Mode().IsRegular() {
			return fmt.Errorf("path %s already exists and is not a file, cannot overwrite", out)
		}
		if !force {
			return fmt.Errorf("path %s already exists, use --force to overwrite", out)
		}
		return nil
	}

	// The nearest existing ancestor must be a directory, otherwise the write
	// can only fail later with a more confusing error.
	for dir := filepath.Dir(out); ; dir = filepath.Dir(dir) {
		info, err := os.Stat(dir)
		if err == nil {
			if !info.IsDir() {
				return fmt.Errorf("cannot save output file to %s, %s is not a directory", out, dir)
			}
			return nil
		}
		if parent := filepath.Dir(dir); parent == dir {
			return nil
		}
	}
}
