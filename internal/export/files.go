package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Sebastian1234123/sistema-farmacia/internal/entity"
	"golang.org/x/sync/errgroup"
)

// FileName is the name a section of r is saved under.
func FileName(r *entity.SalesReport, s Section, sink Sink) string {
	return fmt.Sprintf("%s_%s.%s", s, r.Period, sink.Extension())
}

// WriteFiles renders each section of r into its own file under dir and
// returns the written paths in section order.
func WriteFiles(ctx context.Context, r *entity.SalesReport, sections []Section, sink Sink, dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	paths := make([]string, len(sections))
	g, ctx := errgroup.WithContext(ctx)
	for i, s := range sections {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			tbl, err := Build(r, s)
			if err != nil {
				return err
			}
			path := filepath.Join(dir, FileName(r, s, sink))
			if err := writeFile(path, sink, tbl); err != nil {
				return err
			}
			paths[i] = path
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}

func writeFile(path string, sink Sink, tbl Table) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	if err := sink.Write(f, tbl); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
