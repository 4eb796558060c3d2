package main

import (
	"fmt"

	coursepdf "github.com/alnah/go-coursepdf"
)

// libraryPool adapts coursepdf.ConverterPool to the Pool interface.
type libraryPool struct {
	*coursepdf.ConverterPool
}

// Compile-time check that libraryPool implements Pool.
var _ Pool = libraryPool{}

// newConverterPool creates a lazily filled pool of size Converters.
func newConverterPool(size int, opts ...coursepdf.Option) Pool {
	return libraryPool{coursepdf.NewConverterPool(size, opts...)}
}

// Acquire returns an idle converter, creating one if the pool has room.
func (p libraryPool) Acquire() (CLIConverter, error) {
	conv, err := p.ConverterPool.Acquire()
	if err != nil {
		return nil, err
	}
	return conv, nil
}

// Release hands a converter obtained from Acquire back to the pool.
func (p libraryPool) Release(c CLIConverter) {
	if conv, ok := c.(*coursepdf.Converter); ok {
		p.ConverterPool.Release(conv)
	}
}

// resolveWorkers picks the worker count: --workers when given (0 = auto),
// then config, then one worker.
func resolveWorkers(flagWorkers int, flagSet bool, cfgWorkers int) (int, error) {
	if flagSet {
		if flagWorkers < 0 || flagWorkers > coursepdf.MaxPoolSize {
			return 0, fmt.Errorf("%w: %d (must be 0-%d)", ErrInvalidWorkerCount, flagWorkers, coursepdf.MaxPoolSize)
		}
		return coursepdf.ResolvePoolSize(flagWorkers), nil
	}
	if cfgWorkers > 0 {
		return coursepdf.ResolvePoolSize(cfgWorkers), nil
	}
	return coursepdf.MinPoolSize, nil
}
