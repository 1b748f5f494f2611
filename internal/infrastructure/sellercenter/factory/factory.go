// Package factory turns SellerCenter response documents into domain entities.
//
// Every factory validates the required elements of its model before reading
// any value. Collection factories are strict (the first failing item aborts
// the collection) except for product listings, which skip malformed items
// and report them to an Observer.
package factory

import (
	"fmt"

	"github.com/beevik/etree"
	"go.uber.org/zap"

	"github.com/erp/sellercenter/internal/domain/shared"
)

// ItemFailure records an item dropped by a tolerant collection factory
type ItemFailure struct {
	Factory string
	Index   int
	Err     error
}

// Error implements the error interface
func (f ItemFailure) Error() string {
	return fmt.Sprintf("%s item %d: %v", f.Factory, f.Index, f.Err)
}

// Unwrap returns the item error
func (f ItemFailure) Unwrap() error {
	return f.Err
}

// Observer is notified of every item a tolerant factory skips
type Observer interface {
	ItemSkipped(failure ItemFailure)
}

// ObserverFunc adapts a function to Observer
type ObserverFunc func(ItemFailure)

// ItemSkipped implements Observer
func (f ObserverFunc) ItemSkipped(failure ItemFailure) {
	f(failure)
}

type logObserver struct {
	logger *zap.Logger
}

func (o logObserver) ItemSkipped(failure ItemFailure) {
	o.logger.Warn("skipping malformed item",
		zap.String("factory", failure.Factory),
		zap.Int("index", failure.Index),
		zap.Error(failure.Err),
	)
}

// LogObserver returns an Observer that logs skipped items at Warn level
func LogObserver(logger *zap.Logger) Observer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return logObserver{logger: logger}
}

// Factory builds the entities whose collections tolerate malformed items
type Factory struct {
	observer Observer
}

// Option configures a Factory
type Option func(*Factory)

// WithObserver sets the observer of skipped items
func WithObserver(o Observer) Option {
	return func(f *Factory) {
		f.observer = o
	}
}

// WithLogger reports skipped items to logger
func WithLogger(logger *zap.Logger) Option {
	return WithObserver(LogObserver(logger))
}

// New creates a Factory. Without options skipped items are dropped silently.
func New(opts ...Option) *Factory {
	f := &Factory{}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Factory) report(failures []ItemFailure) {
	if f.observer == nil {
		return
	}
	for _, failure := range failures {
		f.observer.ItemSkipped(failure)
	}
}

// partition builds every element, separating successes from failures
func partition[T any](factory string, elements []*etree.Element, build func(*etree.Element) (T, error)) ([]T, []ItemFailure) {
	var (
		built    []T
		failures []ItemFailure
	)
	for i, e := range elements {
		item, err := build(e)
		if err != nil {
			failures = append(failures, ItemFailure{Factory: factory, Index: i, Err: err})
			continue
		}
		built = append(built, item)
	}
	return built, failures
}

// collect builds every element and stops at the first failure
func collect[T any](elements []*etree.Element, build func(*etree.Element) (T, error)) ([]T, error) {
	out := make([]T, 0, len(elements))
	for _, e := range elements {
		item, err := build(e)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

// ValidateStructure fails on the first of fields that is not a child of e
func ValidateStructure(e *etree.Element, model string, fields ...string) error {
	if e == nil {
		return shared.NewStructureError(model, model)
	}
	for _, field := range fields {
		if e.SelectElement(field) == nil {
			return shared.NewStructureError(model, field)
		}
	}
	return nil
}

// children returns the elements named tag under e; a nil e has none
func children(e *etree.Element, tag string) []*etree.Element {
	if e == nil {
		return nil
	}
	return e.SelectElements(tag)
}
