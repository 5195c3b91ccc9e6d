//spellchecker:words idman
package idman

//spellchecker:words github dustin humanize
import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// Stats holds statistical information about the current state of a Manager.
type Stats struct {
	Forward uint64 // number of entries in the forward index
	Reverse uint64 // number of entries in the reverse index
	Issued  uint64 // number of ids issued so far
}

// Retired returns the number of ids that were issued, but are no longer present.
func (st Stats) Retired() uint64 {
	return st.Issued - st.Forward
}

// String formats these stats in a human readable way.
func (st Stats) String() string {
	return fmt.Sprintf(
		"%s associations (%s ids issued, %s retired)",
		humanize.Comma(int64(st.Forward)),
		humanize.Comma(int64(st.Issued)),
		humanize.Comma(int64(st.Retired())),
	)
}

// Stats counts the entries of both indexes.
func (mgr *Manager[T]) Stats() (st Stats, err error) {
	st.Forward, err = mgr.forward.Count()
	if err != nil {
		return st, err
	}

	st.Reverse, err = mgr.reverse.Count()
	if err != nil {
		return st, err
	}

	st.Issued = mgr.next.Uint64()
	return st, nil
}
