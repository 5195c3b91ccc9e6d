// Package idman provides Manager.
package idman

//spellchecker:words slog github idman ident
import (
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/FAU-CDI/idman/pkg/ident"
)

// Manager assigns stable, strictly increasing ids to values of type T and
// holds forward and reverse mappings between them.
//
// Both mappings observe a single stored value: the forward index holds a
// handle on the value owned by the manager, and the reverse index keys on its
// content. T is never deep-copied; anything it holds (string bytes, embedded
// pointers) is shared between both indexes.
//
// A Manager may be read concurrently; however any operations which change
// internal state are not safe to access concurrently.
//
// The zero manager is not ready for use; it should be initialized using a call to [Reset].
type Manager[T comparable] struct {
	forward HashMap[ident.ID, *T] // mapping from ids to handles on their values
	reverse HashMap[T, ident.ID]  // mapping from values back to their ids

	logger *slog.Logger // sink for warning diagnostics, see warn

	next ident.ID // next id to be issued
}

// Reset resets this Manager to be empty, closing any previously opened storages.
// The next id to be issued starts over from zero.
func (mgr *Manager[T]) Reset(engine Map[T]) error {
	if err := mgr.Close(); err != nil {
		return err
	}

	var err error
	var closers []io.Closer

	mgr.forward, err = engine.Forward()
	if err != nil {
		return err
	}
	closers = append(closers, mgr.forward)

	mgr.reverse, err = engine.Reverse()
	if err != nil {
		for _, closer := range closers {
			_ = closer.Close()
		}
		return err
	}

	mgr.next.Reset()
	return nil
}

// Insert takes ownership of value, issues a fresh id for it, and installs the
// association in both indexes. The fresh id is returned.
//
// When a value equal to value is already present, its previous association is
// removed from both indexes first; the previous id is retired and never
// handed out again.
//
// Ids are issued in strictly increasing order, starting at zero.
// When the id space is exhausted, Insert panics.
func (mgr *Manager[T]) Insert(value T) (ident.ID, error) {
	// displace any previous association, so that no id is left dangling
	// in either index.
	prev, ok, err := mgr.reverse.Get(value)
	if err != nil {
		return ident.ID{}, err
	}
	if ok {
		if err := mgr.forward.Delete(prev); err != nil {
			return ident.ID{}, err
		}
		if err := mgr.reverse.Delete(value); err != nil {
			return ident.ID{}, err
		}
	}

	id := mgr.next
	mgr.next.Inc()

	if err := mgr.forward.Set(id, &value); err != nil {
		return ident.ID{}, err
	}
	if err := mgr.reverse.Set(value, id); err != nil {
		return ident.ID{}, err
	}

	return id, nil
}

// LookupID returns the id associated with a value equal to the given one.
// When no such value is present, ok is false.
func (mgr *Manager[T]) LookupID(value T) (id ident.ID, ok bool, err error) {
	return mgr.reverse.Get(value)
}

// LookupValue returns a handle on the value associated with id.
//
// The handle refers to the stored value itself, not a copy; it remains valid
// even when the manager is mutated afterwards. When id was never issued, or
// its association has been removed, ok is false.
func (mgr *Manager[T]) LookupValue(id ident.ID) (value *T, ok bool, err error) {
	return mgr.forward.Get(id)
}

// Has reports if a value equal to the given one is present.
func (mgr *Manager[T]) Has(value T) (bool, error) {
	return mgr.reverse.Has(value)
}

// Remove removes the association for a value equal to the given one from both
// indexes and reports if such a value was present.
//
// When no such value is present, the manager is left unchanged, a single
// warning line is written to the warning output (see [Manager.SetWarnOutput])
// and false is returned.
//
// The id of a removed value is retired; it is never issued again.
func (mgr *Manager[T]) Remove(value T) (bool, error) {
	id, ok, err := mgr.reverse.Get(value)
	if err != nil {
		return false, err
	}
	if !ok {
		mgr.warn().Warn("removing value that is not present")
		return false, nil
	}

	if err := mgr.forward.Delete(id); err != nil {
		return false, err
	}
	if err := mgr.reverse.Delete(value); err != nil {
		return false, err
	}

	return true, nil
}

// Len returns the number of associations currently present.
func (mgr *Manager[T]) Len() (uint64, error) {
	return mgr.forward.Count()
}

// Iterate calls f once for every association currently present.
//
// When any f returns a non-nil error, that error is returned immediately to
// the caller and iteration stops.
//
// There is no guarantee on order.
func (mgr *Manager[T]) Iterate(f func(ident.ID, *T) error) error {
	return mgr.forward.Iterate(f)
}

// Grow hints to both indexes that they should expect to hold size associations.
func (mgr *Manager[T]) Grow(size uint64) error {
	if err := mgr.forward.Grow(size); err != nil {
		return err
	}
	return mgr.reverse.Grow(size)
}

// SetWarnOutput redirects warning diagnostics to w.
// Passing w = nil discards them entirely.
//
// When SetWarnOutput is never called, warnings go to standard error.
func (mgr *Manager[T]) SetWarnOutput(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	mgr.logger = slog.New(slog.NewTextHandler(w, nil))
}

// warn returns the logger used for diagnostics, setting up the default one if needed.
func (mgr *Manager[T]) warn() *slog.Logger {
	if mgr.logger == nil {
		mgr.logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
	}
	return mgr.logger
}

// Close closes any storages related to this Manager.
//
// Calling close multiple times results in err = nil.
func (mgr *Manager[T]) Close() error {
	var errs [2]error

	if mgr.forward != nil {
		errs[0] = mgr.forward.Close()
		mgr.forward = nil
	}
	if mgr.reverse != nil {
		errs[1] = mgr.reverse.Close()
		mgr.reverse = nil
	}

	return errors.Join(errs[0], errs[1])
}
