package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/cvgen/internal/artifact"
	"github.com/jonathan/cvgen/internal/logging"
	"github.com/jonathan/cvgen/internal/rendering"
	"github.com/jonathan/cvgen/internal/types"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// defaultRenderParallel bounds concurrent page writes.
const defaultRenderParallel = 4

type renderOptions struct {
	jsonPath string
	outDir   string
	layout   string
	seed     uint64
	parallel int
}

func newRenderCmd() *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a CV batch as HTML pages",
		Long: `Renders every record of a batch file as a standalone HTML page, one file per record.

Layouts: sidebar-left, sidebar-right, header-top, or "random" to draw one per record.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRender(cmd.Context(), cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.jsonPath, "json", artifact.DefaultPath, "Path to the batch JSON file")
	flags.StringVarP(&opts.outDir, "out", "o", "", "Directory for the HTML pages (required)")
	flags.StringVar(&opts.layout, "layout", rendering.Layouts[0].Name, "Layout name, alias, or \"random\"")
	flags.Uint64Var(&opts.seed, "seed", 1, "Seed for random layout selection")
	flags.IntVar(&opts.parallel, "parallel", defaultRenderParallel, "Maximum pages rendered concurrently")

	if err := cmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	return cmd
}

// renderJob is one page to write.
type renderJob struct {
	record *types.CVRecord
	layout rendering.Layout
	path   string
}

func runRender(ctx context.Context, cmd *cobra.Command, opts *renderOptions) error {
	if opts.parallel < 1 {
		return fmt.Errorf("--parallel must be at least 1, got %d", opts.parallel)
	}
	records, err := artifact.Load(opts.jsonPath)
	if err != nil {
		return err
	}

	jobs, err := planRender(records, opts)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(opts.outDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	logger := logging.Ctx(ctx)
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(opts.parallel)

	// Each goroutine owns one slot.
	written := make([]string, len(jobs))

	for i, job := range jobs {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			html, err := rendering.RenderHTML(job.record, job.layout)
			if err != nil {
				return fmt.Errorf("failed to render %s: %w", job.record.ID, err)
			}
			if err := os.WriteFile(job.path, []byte(html), 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", job.path, err)
			}
			logger.Debug().Str("id", job.record.ID).Str("layout", job.layout.Name).Str("path", job.path).Msg("page rendered")

			written[i] = job.path
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i, path := range written {
		_, _ = fmt.Fprintf(out, "Rendered %s (%s) -> %s\n", jobs[i].record.Name, jobs[i].layout.Name, path)
	}
	_, _ = fmt.Fprintf(out, "\nRendered %d CVs to %s\n", len(written), opts.outDir)
	return nil
}

// planRender resolves a layout and a unique file path for every record.
// Layouts are drawn up front so the result does not depend on scheduling.
func planRender(records []types.CVRecord, opts *renderOptions) ([]renderJob, error) {
	var (
		fixed  rendering.Layout
		rng    *rand.Rand
		random = strings.EqualFold(strings.TrimSpace(opts.layout), rendering.LayoutRandom)
	)
	if random {
		rng = rand.New(rand.NewPCG(opts.seed, opts.seed^0x9e3779b97f4a7c15))
	} else {
		layout, err := rendering.LayoutByName(opts.layout)
		if err != nil {
			return nil, err
		}
		fixed = layout
	}

	used := make(map[string]struct{}, len(records))
	jobs := make([]renderJob, len(records))
	for i := range records {
		layout := fixed
		if random {
			layout = rendering.RandomLayout(rng)
		}

		// A suffixed name may collide with another record's own id,
		// so keep counting until the name is free.
		base := rendering.SafeFileName(records[i].ID)
		name := base
		for n := 1; ; n++ {
			if _, taken := used[name]; !taken {
				break
			}
			name = fmt.Sprintf("%s-%d", base, n)
		}
		used[name] = struct{}{}

		jobs[i] = renderJob{
			record: &records[i],
			layout: layout,
			path:   filepath.Join(opts.outDir, name+".html"),
		}
	}
	return jobs, nil
}
