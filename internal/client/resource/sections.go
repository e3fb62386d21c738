package resource

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/sachink160/multitool-client/internal/logging"
)

// Section is one independently loaded part of a screen.
type Section struct {
	Name string
	Load func(ctx context.Context) error
}

// SectionErrors maps a failed section's name to its error.
type SectionErrors map[string]error

// Failed reports whether the named section failed.
func (e SectionErrors) Failed(name string) bool {
	_, ok := e[name]
	return ok
}

// LoadSections runs every section concurrently and returns once all have
// settled. A failing section neither cancels nor fails the others; its error
// is logged and reported in the result.
func LoadSections(ctx context.Context, logger logging.Logger, sections ...Section) SectionErrors {
	if logger == nil {
		logger = logging.NewNop()
	}

	var (
		mu   sync.Mutex
		errs = make(SectionErrors)
		g    errgroup.Group
	)
	for _, s := range sections {
		g.Go(func() error {
			if err := s.Load(ctx); err != nil {
				logger.Warn(ctx, "section load failed", "section", s.Name, "error", err)
				mu.Lock()
				errs[s.Name] = err
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()
	return errs
}
