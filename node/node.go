package node

import (
	log "github.com/sirupsen/logrus"

	"github.com/spvkit/core/config"
	"github.com/spvkit/core/header"
	"github.com/spvkit/core/headerchain"
	"github.com/spvkit/core/params"
	"github.com/spvkit/core/util"
)

// Node owns the header store of a light client. It exists so embedders have
// a single handle built straight from the configuration.
type Node struct {
	Headers *headerchain.HeaderStore
	Network params.Network
}

// Status is used for reporting this nodes chain state to embedders
type Status struct {
	Network     string   `json:"network"`
	Height      uint64   `json:"height"`
	Tip         string   `json:"tip"`
	Fingerprint string   `json:"fingerprint"`
	Locator     []string `json:"locator"`
}

// New constructs a new node from the configuration. When a HeaderDB path is
// configured the boltdb backend is used, otherwise the flat header file.
func New(c config.Configuration) (*Node, error) {
	network, err := params.FromName(c.Network.Name)
	if err != nil {
		return nil, err
	}
	var store *headerchain.HeaderStore
	if c.Storage.HeaderDB != "" {
		l, err := headerchain.NewBoltLog(c.Storage.HeaderDB)
		if err != nil {
			return nil, err
		}
		store, err = headerchain.New(l, network, header.CheckProofOfWork)
		if err != nil {
			l.Close()
			return nil, err
		}
	} else {
		store, err = headerchain.Open(c.Storage.HeaderFile, network)
		if err != nil {
			return nil, err
		}
	}
	return &Node{Headers: store, Network: network}, nil
}

// Status returns the current chain state of the node
func (n *Node) Status() Status {
	s := Status{
		Network: n.Network.String(),
		Height:  n.Headers.Height(),
	}
	if tip := n.Headers.Tip(); tip != nil {
		s.Tip = tip.Hash().String()
		s.Fingerprint = util.Fingerprint(tip.Hash())
	}
	for _, h := range n.Headers.LocatorHashes() {
		s.Locator = append(s.Locator, h.String())
	}
	return s
}

// SubmitHeaders is called whenever new headers arrive from the network layer
func (n *Node) SubmitHeaders(headers []header.Header) error {
	if err := n.Headers.Append(headers); err != nil {
		log.WithField("network", n.Network).Error(err)
		return err
	}
	log.Infof("Accepted %d headers, height is now %d", len(headers), n.Headers.Height())
	return nil
}

// Close releases the header store. The persisted chain survives.
func (n *Node) Close() {
	n.Headers.Close()
}
