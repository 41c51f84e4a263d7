package headerchain

import (
	log "github.com/sirupsen/logrus"

	"github.com/spvkit/core/header"
	"github.com/spvkit/core/params"
)

// ValidationFunc is the per-header acceptance requirement beyond connectivity
type ValidationFunc func(*header.Header) error

// HeaderStore owns a single validated chain of headers, mirrored between an
// in-memory sequence and an append-only Log. It assumes one logical owner;
// callers needing concurrent access must serialize externally.
type HeaderStore struct {
	log      Log
	headers  []header.Header
	network  params.Network
	validate ValidationFunc
}

// Open loads a file-backed store from path, creating an empty one when no
// file exists yet. Headers are checked against their own proof-of-work
// target on append.
func Open(path string, network params.Network) (*HeaderStore, error) {
	return New(&FileLog{Path: path}, network, header.CheckProofOfWork)
}

// New loads a store from an arbitrary Log backend with a caller-supplied
// validation function
func New(l Log, network params.Network, validate ValidationFunc) (*HeaderStore, error) {
	headers, err := l.Load()
	if err != nil {
		return nil, err
	}
	if len(headers) > 0 {
		log.WithFields(log.Fields{
			"network": network,
			"height":  len(headers),
		}).Info("Loaded persisted header chain")
	}
	return &HeaderStore{
		log:      l,
		headers:  headers,
		network:  network,
		validate: validate,
	}, nil
}

// Append validates and persists the candidate headers in order. Each header
// must reference the current tip (the very first header of an empty store
// is exempt) and pass the validation function.
//
// Headers are committed individually: when the k-th candidate is rejected,
// candidates 0..k-1 have already been durably written and remain part of
// the chain. Callers needing all-or-nothing batches must pre-validate.
func (s *HeaderStore) Append(headers []header.Header) error {
	for _, h := range headers {
		if tip := s.Tip(); tip != nil && h.PrevBlock != tip.Hash() {
			return ErrHeaderDoesNotConnect
		}
		if err := s.validate(&h); err != nil {
			return err
		}
		if err := s.log.Append(h); err != nil {
			return err
		}
		s.headers = append(s.headers, h)
	}
	return nil
}

// Height returns the count of stored headers
func (s *HeaderStore) Height() uint64 {
	return uint64(len(s.headers))
}

// Tip returns the most recently appended header, or nil for an empty store
func (s *HeaderStore) Tip() *header.Header {
	if len(s.headers) == 0 {
		return nil
	}
	return &s.headers[len(s.headers)-1]
}

// Network returns the chain identity the store was opened with
func (s *HeaderStore) Network() params.Network {
	return s.network
}

// Close releases the underlying log. The persisted chain survives.
func (s *HeaderStore) Close() {
	if err := s.log.Close(); err != nil {
		log.Error(err)
	}
}
