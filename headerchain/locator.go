package headerchain

import (
	"github.com/deckarep/golang-set"

	"github.com/spvkit/core/hash"
	"github.com/spvkit/core/params"
)

// MaxLocatorHashes caps the number of entries in a locator
const MaxLocatorHashes = 10

// LocatorHashes summarizes the tip for a getheaders request: the hashes of
// the most recent headers, tip first. An empty store answers with the
// canonical genesis hash of its network so peers start from the beginning.
func (s *HeaderStore) LocatorHashes() []hash.Hash {
	if len(s.headers) == 0 {
		return []hash.Hash{params.GenesisHash(s.network)}
	}
	n := MaxLocatorHashes
	if len(s.headers) < n {
		n = len(s.headers)
	}
	locator := make([]hash.Hash, 0, n)
	for i := len(s.headers) - 1; i >= len(s.headers)-n; i-- {
		locator = append(locator, s.headers[i].Hash())
	}
	return locator
}

// FindFork resolves a remote locator against the local chain. It returns
// the height of the most recent locally known entry, the point from which
// missing headers would be served.
func (s *HeaderStore) FindFork(locator []hash.Hash) (uint64, bool) {
	remote := mapset.NewSet()
	for _, h := range locator {
		remote.Add(h)
	}
	for i := len(s.headers) - 1; i >= 0; i-- {
		if remote.Contains(s.headers[i].Hash()) {
			return uint64(i + 1), true
		}
	}
	return 0, false
}
