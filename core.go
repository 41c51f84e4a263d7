package core

import (
	"github.com/spvkit/core/config"
	"github.com/spvkit/core/node"
)

// Config keeps the global configuration
var Config = config.Configuration{}

// NewNode constructs a node from the global configuration
func NewNode() (*node.Node, error) {
	return node.New(Config)
}
