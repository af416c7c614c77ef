// SPDX-License-Identifier: MIT
// Package: nocgen/topology
//
// counter.go - per-run link identifier allocation.

package topology

// LinkCounter hands out link IDs 0,1,2,... in creation order. One counter
// belongs to one generation run; it is never shared or reset mid-run.
// The zero value is ready to use. LinkCounter is not safe for concurrent use.
type LinkCounter struct {
	next int
}

// Next returns the next unused link ID and advances the counter by one.
func (c *LinkCounter) Next() int {
	id := c.next
	c.next++
	return id
}

// Issued returns how many IDs have been handed out so far.
func (c *LinkCounter) Issued() int { return c.next }
