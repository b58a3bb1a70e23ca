// Package visualize is a write-only JSON snapshot sink: it renders a
// decoder's current state (defect vertices, edge tightness/slack, dual
// nodes) into a serializable document for an external viewer. The core
// decode loop never reads a snapshot back.
package visualize
