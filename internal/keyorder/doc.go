// Package keyorder implements the key-ordering analysis: group
// segmentation, sortedness detection, and conflict-free reordering
// fixes for object literals.
//
// The pass is a pure function over one parsed object: entries are
// split into independently sortable groups (bounded by spreads,
// optionally by blank lines and dynamic computed keys), each group is
// checked against the resolved comparison mode, and for a violating
// group a fix plan of pairwise disjoint text swaps is produced. At most
// one diagnostic is emitted per violating group. Nothing here performs
// I/O or holds state between calls; applying the plans belongs to
// internal/fix.
package keyorder
