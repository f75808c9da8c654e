package accounting

import (
	"sort"

	"github.com/SscSPs/freight_management_app/internal/core/domain"
)

// TreeRow is one rendered line of the chart of accounts.
type TreeRow struct {
	Account     domain.Account `json:"account"`
	Depth       int            `json:"depth"`  // Position in the rendered tree, roots = 0
	Indent      int            `json:"indent"` // Level - 1 as stored on the account
	HasChildren bool           `json:"hasChildren"`
	Expanded    bool           `json:"expanded"`
}

// ExpandedSet is an immutable set of expanded account IDs.
// Toggle returns a new set and leaves the receiver untouched.
type ExpandedSet struct {
	ids map[string]struct{}
}

// NewExpandedSet builds a set from the given IDs.
func NewExpandedSet(ids ...string) ExpandedSet {
	m := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if id != "" {
			m[id] = struct{}{}
		}
	}
	return ExpandedSet{ids: m}
}

// Contains reports whether id is expanded.
func (s ExpandedSet) Contains(id string) bool {
	_, ok := s.ids[id]
	return ok
}

// Len returns the number of expanded IDs.
func (s ExpandedSet) Len() int {
	return len(s.ids)
}

// Toggle returns a copy of s with id flipped.
func (s ExpandedSet) Toggle(id string) ExpandedSet {
	m := make(map[string]struct{}, len(s.ids)+1)
	for k := range s.ids {
		m[k] = struct{}{}
	}
	if _, ok := m[id]; ok {
		delete(m, id)
	} else {
		m[id] = struct{}{}
	}
	return ExpandedSet{ids: m}
}

// IDs returns the expanded IDs sorted.
func (s ExpandedSet) IDs() []string {
	ids := make([]string, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ChartIndex is the adjacency index of a chart of accounts, built once per load.
type ChartIndex struct {
	accounts map[string]domain.Account
	roots    []string
	children map[string][]string
}

// NewChartIndex indexes accounts by parent. Sibling order follows the input order.
// Accounts whose parent is missing from the list, or whose ancestry loops back on itself,
// are treated as roots so they stay visible.
func NewChartIndex(accounts []domain.Account) *ChartIndex {
	idx := &ChartIndex{
		accounts: make(map[string]domain.Account, len(accounts)),
		children: make(map[string][]string),
	}
	for _, a := range accounts {
		if _, dup := idx.accounts[a.AccountID]; dup {
			continue
		}
		idx.accounts[a.AccountID] = a
	}
	seen := make(map[string]bool, len(accounts))
	for _, a := range accounts {
		if seen[a.AccountID] {
			continue
		}
		seen[a.AccountID] = true
		if _, ok := idx.accounts[a.ParentAccountID]; a.IsRoot() || !ok || a.ParentAccountID == a.AccountID {
			idx.roots = append(idx.roots, a.AccountID)
			continue
		}
		idx.children[a.ParentAccountID] = append(idx.children[a.ParentAccountID], a.AccountID)
	}

	// Accounts caught in a parent cycle hang off no root; promote the first of each to a root.
	reached := make(map[string]bool, len(idx.accounts))
	var mark func(id string)
	mark = func(id string) {
		if reached[id] {
			return
		}
		reached[id] = true
		for _, child := range idx.children[id] {
			mark(child)
		}
	}
	for _, id := range idx.roots {
		mark(id)
	}
	for _, a := range accounts {
		if !reached[a.AccountID] {
			idx.roots = append(idx.roots, a.AccountID)
			mark(a.AccountID)
		}
	}
	return idx
}

// Roots returns the root accounts.
func (c *ChartIndex) Roots() []domain.Account {
	return c.lookup(c.roots)
}

// Children returns the direct children of accountID.
func (c *ChartIndex) Children(accountID string) []domain.Account {
	return c.lookup(c.children[accountID])
}

// HasChildren reports whether accountID is a parent.
func (c *ChartIndex) HasChildren(accountID string) bool {
	return len(c.children[accountID]) > 0
}

// IsLeaf reports whether accountID exists and has no children.
func (c *ChartIndex) IsLeaf(accountID string) bool {
	_, ok := c.accounts[accountID]
	return ok && !c.HasChildren(accountID)
}

// Account returns the indexed account with the given ID.
func (c *ChartIndex) Account(accountID string) (domain.Account, bool) {
	a, ok := c.accounts[accountID]
	return a, ok
}

func (c *ChartIndex) lookup(ids []string) []domain.Account {
	out := make([]domain.Account, 0, len(ids))
	for _, id := range ids {
		out = append(out, c.accounts[id])
	}
	return out
}

// DefaultExpanded returns the initial expansion: every level-1 account.
func (c *ChartIndex) DefaultExpanded() ExpandedSet {
	var ids []string
	for id, a := range c.accounts {
		if a.Level == 1 {
			ids = append(ids, id)
		}
	}
	return NewExpandedSet(ids...)
}

// AllExpanded returns a set holding every account that has children.
func (c *ChartIndex) AllExpanded() ExpandedSet {
	var ids []string
	for id := range c.children {
		ids = append(ids, id)
	}
	return NewExpandedSet(ids...)
}

// Render walks the tree depth first, descending only into expanded accounts.
// A node is never visited twice, so cyclic parent data cannot loop.
func (c *ChartIndex) Render(expanded ExpandedSet) []TreeRow {
	rows := make([]TreeRow, 0, len(c.accounts))
	visited := make(map[string]bool, len(c.accounts))

	var walk func(ids []string, depth int)
	walk = func(ids []string, depth int) {
		for _, id := range ids {
			if visited[id] {
				continue
			}
			visited[id] = true
			a := c.accounts[id]
			indent := a.Level - 1
			if indent < 0 {
				indent = 0
			}
			open := expanded.Contains(id)
			rows = append(rows, TreeRow{
				Account:     a,
				Depth:       depth,
				Indent:      indent,
				HasChildren: c.HasChildren(id),
				Expanded:    open,
			})
			if open {
				walk(c.children[id], depth+1)
			}
		}
	}
	walk(c.roots, 0)
	return rows
}
