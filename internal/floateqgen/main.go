package floateqgen

import (
	"context"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"golang.org/x/tools/go/packages"

	"github.com/bcliden/floateq/internal/floateqgen/parse"
	"github.com/bcliden/floateq/internal/typeinfo"
)

var Version string

// BuildTag excludes generated files while the generator loads packages.
// Files calling generated methods must be excluded with it too.
const BuildTag = "floateq"

// DefaultOutput is the name of the generated file in each package.
const DefaultOutput = "floateq_gen.go"

// Config configures a run of the generator.
type Config struct {
	// Dir is the working directory. Output paths are relative to it.
	Dir string `mapstructure:"dir"`

	// Env is the environment to load packages with.
	Env []string `mapstructure:"-"`

	// Tags are comma-separated build tags added to BuildTag.
	Tags string `mapstructure:"tags"`

	// Tests includes test files.
	Tests bool `mapstructure:"tests"`

	// Output is the name of the file to generate in each package.
	Output string `mapstructure:"output"`

	// Patterns are the package patterns to process.
	Patterns []string `mapstructure:"patterns"`

	Logger *zap.Logger `mapstructure:"-"`
}

// Main is the main entry point for floateq. It is used by the command-line tool
// directly.
//
// ctx is the context for loading packages. If the loading is too slow, ctx can
// cancel the operation.
//
// It returns a map of output file paths to their contents. If any error occurs,
// it returns a non-nil error and no output.
func Main(ctx context.Context, cfg Config) (map[string][]byte, error) {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.Output == "" {
		cfg.Output = DefaultOutput
	}

	pkgs, err := load(ctx, log, cfg)
	if err != nil {
		return nil, err
	}

	// Types derived anywhere in the run are known before any package is built,
	// so that fields may refer to types derived in other packages.
	derived := typeinfo.NewLookup[*parse.Derive]()
	gens := make([]*Generator, 0, len(pkgs))
	var errs []error

	for _, pkg := range pkgs {
		g, err := New(pkg, log)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		gens = append(gens, g)

		derives, err := g.Parse()
		if err != nil {
			errs = append(errs, err)
		}
		for _, d := range derives {
			derived.Put(typeinfo.TypeOf(d.Type()), d)
		}
	}
	log.Debug("parsed", zap.Int("types", derived.Len()))

	outs := make(map[string][]byte)
	for _, g := range gens {
		if err := g.Build(derived); err != nil {
			errs = append(errs, err)
			continue
		}

		code := g.Generate()
		if len(code) == 0 {
			continue
		}

		pkg := g.Pkg()
		outDir := filepath.Dir(pkg.GoFiles[0])
		if rel, err := filepath.Rel(cfg.Dir, outDir); err == nil {
			outDir = rel
		}
		out := filepath.Join(outDir, cfg.Output)
		outs[out] = code
		log.Debug("generated", zap.String("pkg", pkg.PkgPath), zap.String("file", out))
	}
	if len(errs) != 0 {
		// errs already contains comprehensive error messages. So we don't need
		// to attach another error message.
		return nil, reorderErrors(parse.JoinErrors(errs))
	}

	return outs, nil
}

// load loads packages with BuildTag set.
func load(ctx context.Context, log *zap.Logger, cfg Config) ([]*packages.Package, error) {
	pcfg := &packages.Config{
		Mode:       packages.NeedDeps | packages.NeedFiles | packages.NeedImports | packages.NeedName | packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo,
		Context:    ctx,
		Dir:        cfg.Dir,
		Env:        cfg.Env,
		BuildFlags: []string{"-tags=" + BuildTag},
		Tests:      cfg.Tests,
	}
	if cfg.Tags != "" {
		pcfg.BuildFlags[0] += "," + cfg.Tags
	}

	patterns := cfg.Patterns
	if len(patterns) == 0 {
		patterns = []string{"."}
	}

	// Load the packages based on the provided patterns.
	start := time.Now()
	pkgs, err := packages.Load(pcfg, patterns...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load packages")
	}
	if len(pkgs) == 0 {
		return nil, errors.Newf("no packages found: %v", patterns)
	}
	log.Debug("loaded packages", zap.Int("count", len(pkgs)), zap.Duration("took", time.Since(start)))

	// Check for errors in the loaded packages.
	var errs []error
	for _, pkg := range pkgs {
		for _, err := range pkg.Errors {
			if err.Pos == "" {
				errs = append(errs, errors.New(err.Msg))
				continue
			}

			path, rowcol, _ := strings.Cut(err.Pos, ":")
			if rel, relErr := filepath.Rel(cfg.Dir, path); relErr == nil {
				err.Pos = rel + ":" + rowcol
			}
			errs = append(errs, err)
		}
	}
	if len(errs) != 0 {
		return nil, parse.JoinErrors(errs)
	}

	return pkgs, nil
}

// reorderErrors flattens the joined errors and sorts them by message, which
// starts with the position.
func reorderErrors(errs error) error {
	if errs == nil {
		return nil
	}

	list := parse.Flatten(errs)
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Error() < list[j].Error()
	})
	return parse.JoinErrors(list)
}

// Describe renders every error joined in err on its own line, each followed
// by its hints.
func Describe(err error) string {
	var b strings.Builder
	for i, err := range parse.Flatten(err) {
		if i != 0 {
			b.WriteString("\n")
		}
		b.WriteString(err.Error())
		for _, hint := range errors.GetAllHints(err) {
			b.WriteString("\n\thelp: ")
			b.WriteString(hint)
		}
	}
	return b.String()
}
