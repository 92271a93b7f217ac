package domain

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Graph is an in-memory directed multigraph of travel legs.
// Parallel legs and cycles are allowed; outgoing legs keep their insertion order.
// A Graph is read-only after construction and safe for concurrent use.
type Graph struct {
	adjacency   map[string][]Leg
	hosts       []string
	legCount    int
	fingerprint uint64
}

// NewGraph builds a graph from legs in the order given.
func NewGraph(legs []Leg) *Graph {
	g := &Graph{adjacency: make(map[string][]Leg)}

	nodes := make(map[string]struct{})
	digest := xxhash.New()
	var buf []byte

	for _, leg := range legs {
		if leg.Mode == "" {
			leg.Mode = DefaultMode
		}
		g.adjacency[leg.Origin] = append(g.adjacency[leg.Origin], leg)
		nodes[leg.Origin] = struct{}{}
		nodes[leg.Destination] = struct{}{}
		g.legCount++

		buf = buf[:0]
		buf = append(buf, leg.Origin...)
		buf = append(buf, 0)
		buf = append(buf, leg.Destination...)
		buf = append(buf, 0)
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(leg.DurationHours))
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(leg.CO2Kg))
		buf = append(buf, leg.Mode...)
		buf = append(buf, 0)
		_, _ = digest.Write(buf)
	}

	g.hosts = make([]string, 0, len(nodes))
	for n := range nodes {
		g.hosts = append(g.hosts, n)
	}
	slices.Sort(g.hosts)
	g.fingerprint = digest.Sum64()

	return g
}

// Return the outgoing legs of origin. The slice must not be modified.
func (g *Graph) Neighbors(origin string) []Leg {
	return g.adjacency[origin]
}

// Return every location that appears as a leg endpoint, sorted by name.
func (g *Graph) CandidateHosts() []string {
	return slices.Clone(g.hosts)
}

// Report whether name appears as an endpoint of any leg.
func (g *Graph) HasNode(name string) bool {
	_, found := slices.BinarySearch(g.hosts, name)
	return found
}

func (g *Graph) LegCount() int { return g.legCount }

// Return a content hash of the legs; two graphs built from the same legs
// in the same order share a fingerprint.
func (g *Graph) Fingerprint() uint64 { return g.fingerprint }

// ValidateLeg checks the structural invariants of a single leg record.
func ValidateLeg(leg Leg) error {
	if strings.TrimSpace(leg.Origin) == "" || strings.TrimSpace(leg.Destination) == "" {
		return errors.New("validate leg: origin and destination must be non-empty")
	}
	if math.IsNaN(leg.DurationHours) || leg.DurationHours < 0 {
		return fmt.Errorf("validate leg %s->%s: duration_hours must be >= 0, got %v", leg.Origin, leg.Destination, leg.DurationHours)
	}
	if math.IsNaN(leg.CO2Kg) || leg.CO2Kg < 0 {
		return fmt.Errorf("validate leg %s->%s: co2_kg must be >= 0, got %v", leg.Origin, leg.Destination, leg.CO2Kg)
	}
	return nil
}
