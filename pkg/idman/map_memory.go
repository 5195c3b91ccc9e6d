//spellchecker:words idman
package idman

//spellchecker:words errors github idman ident
import (
	"errors"

	"github.com/FAU-CDI/idman/pkg/ident"
)

// MemoryMap holds forward and reverse maps in memory.
// It implements Map.
type MemoryMap[T comparable] struct {
	FStorage Memory[ident.ID, *T]
	RStorage Memory[T, ident.ID]
}

var (
	_ Map[string] = (*MemoryMap[string])(nil)
)

func (me *MemoryMap[T]) Forward() (HashMap[ident.ID, *T], error) {
	if me.FStorage.IsNil() {
		me.FStorage = MakeMemory[ident.ID, *T](0)
	}
	return &me.FStorage, nil
}

func (me *MemoryMap[T]) Reverse() (HashMap[T, ident.ID], error) {
	if me.RStorage.IsNil() {
		me.RStorage = MakeMemory[T, ident.ID](0)
	}
	return &me.RStorage, nil
}

func (me *MemoryMap[T]) Close() error {
	return errors.Join(
		me.FStorage.Close(),
		me.RStorage.Close(),
	)
}
