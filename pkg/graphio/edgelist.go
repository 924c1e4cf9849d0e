package graphio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/cszach/Network-Inoculator/pkg/netgraph"
)

// Sentinel errors for edge-list parsing.
var (
	// ErrEmptyEdgeList is returned when the input contains no tokens.
	ErrEmptyEdgeList = errors.New("edge list is empty")

	// ErrDanglingNode is returned when the input ends mid-pair.
	ErrDanglingNode = errors.New("edge list ends with an unpaired node ID")
)

// ReadEdgeList parses a whitespace-separated sequence of integer pairs into a
// graph. Node IDs are 1-based and the graph size is the maximum ID seen across
// the entire input.
func ReadEdgeList(r io.Reader) (*netgraph.Graph, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	var ids []int
	for scanner.Scan() {
		token := scanner.Text()
		id, err := strconv.Atoi(token)
		if err != nil {
			return nil, fmt.Errorf("token %d: %q is not an integer", len(ids)+1, token)
		}
		if id < 1 {
			return nil, fmt.Errorf("token %d: node ID %d out of range, IDs start at 1", len(ids)+1, id)
		}
		ids = append(ids, id)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read edge list: %w", err)
	}

	if len(ids) == 0 {
		return nil, ErrEmptyEdgeList
	}
	if len(ids)%2 != 0 {
		return nil, ErrDanglingNode
	}

	n := 0
	for _, id := range ids {
		if id > n {
			n = id
		}
	}

	g := netgraph.New(n)
	for i := 0; i < len(ids); i += 2 {
		g.Connect(ids[i], ids[i+1])
	}
	return g, nil
}

// ReadEdgeListFile reads an edge list from a file.
func ReadEdgeListFile(path string) (*netgraph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	g, err := ReadEdgeList(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return g, nil
}

// WriteEdgeList writes every edge once as "a b" lines with a < b, ordered by
// ascending a then b, so round-trips are deterministic.
func WriteEdgeList(g *netgraph.Graph, w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, edge := range g.Edges() {
		if _, err := fmt.Fprintf(bw, "%d %d\n", edge[0], edge[1]); err != nil {
			return err
		}
	}
	return bw.Flush()
}
