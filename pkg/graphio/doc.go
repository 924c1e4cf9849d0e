// Package graphio reads and writes the external representations of a contact
// network: the whitespace-separated edge-list input format and the JSON layout
// document consumed by render sinks and the HTTP viewer.
//
// Edge lists are sequences of integer pairs with 1-based node IDs; the graph
// size is the maximum ID seen anywhere in the input. All input validation
// lives here - by the time a graph reaches the netgraph package, IDs are known
// to be in range.
package graphio
