// SPDX-License-Identifier: MIT
// Package fsconfig registers the per-node memory split of a generated system
// with a simulated filesystem (or any other Registrar): node i owns CPU i
// and an equal share of the total memory.
package fsconfig

import (
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"
)

var (
	// ErrInvalidCount indicates a non-positive CPU count.
	ErrInvalidCount = errors.New("fsconfig: cpu count must be positive")

	// ErrDuplicateNode indicates a node id registered twice.
	ErrDuplicateNode = errors.New("fsconfig: node already registered")

	// ErrInvalidSize indicates a memory size string that cannot be parsed.
	ErrInvalidSize = errors.New("fsconfig: invalid size")
)

// Registrar receives one call per node.
type Registrar interface {
	RegisterNode(cpus []int, memBytes uint64, nodeID int) error
}

// RegisterTopology registers node i with CPU list [i] and memSize/numCPUs
// bytes, for every i in [0, numCPUs). Integer division drops any remainder.
func RegisterTopology(reg Registrar, numCPUs int, memSize uint64) error {
	if numCPUs <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidCount, numCPUs)
	}
	share := memSize / uint64(numCPUs)
	for i := 0; i < numCPUs; i++ {
		if err := reg.RegisterNode([]int{i}, share, i); err != nil {
			return fmt.Errorf("fsconfig: register node %d: %w", i, err)
		}
	}
	return nil
}

// ParseSize parses a human size such as "512MiB", "2GB" or "1048576".
func ParseSize(s string) (uint64, error) {
	n, err := humanize.ParseBytes(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidSize, s, err)
	}
	return n, nil
}

// FormatSize renders bytes with IEC units, e.g. "512 MiB".
func FormatSize(b uint64) string { return humanize.IBytes(b) }

// Node is one registered node.
type Node struct {
	ID       int    `json:"node_id" yaml:"node_id"`
	CPUs     []int  `json:"cpus" yaml:"cpus"`
	MemBytes uint64 `json:"mem_bytes" yaml:"mem_bytes"`
}

// Table is an in-memory Registrar preserving registration order.
type Table struct {
	Nodes []Node
	seen  map[int]struct{}
}

// RegisterNode implements Registrar.
func (t *Table) RegisterNode(cpus []int, memBytes uint64, nodeID int) error {
	if t.seen == nil {
		t.seen = make(map[int]struct{})
	}
	if _, ok := t.seen[nodeID]; ok {
		return fmt.Errorf("%w: %d", ErrDuplicateNode, nodeID)
	}
	t.seen[nodeID] = struct{}{}
	t.Nodes = append(t.Nodes, Node{ID: nodeID, CPUs: append([]int(nil), cpus...), MemBytes: memBytes})
	return nil
}

// Total returns the sum of registered memory.
func (t *Table) Total() uint64 {
	var sum uint64
	for _, n := range t.Nodes {
		sum += n.MemBytes
	}
	return sum
}
