package builder

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/abelikov/searchlab/core"
)

// graphDoc is the YAML schema for user-supplied graphs:
//
//	directed: false
//	weighted: true
//	vertices: [A, B, C]        # optional; lists isolated or pre-ordered vertices
//	edges:
//	  - {from: A, to: B, weight: 1}
//	  - {from: B, to: C, weight: 1}
//
// Edge order in the document is adjacency order in the graph, so a file
// fully determines the traversal trace it produces.
type graphDoc struct {
	Directed bool      `yaml:"directed"`
	Weighted bool      `yaml:"weighted"`
	Vertices []string  `yaml:"vertices"`
	Edges    []edgeDoc `yaml:"edges"`
}

type edgeDoc struct {
	From   string `yaml:"from"`
	To     string `yaml:"to"`
	Weight int64  `yaml:"weight"`
}

// FromYAML returns a Constructor that declares the vertices and edges of
// the YAML document read from r, in document order. The document's
// directed/weighted flags are ignored here because graph flags belong to
// Build; use LoadYAML when the document should decide them.
func FromYAML(r io.Reader) Constructor {
	return func(g *core.Graph) error {
		doc, err := decodeDoc(r)
		if err != nil {
			return err
		}

		return applyDoc(g, doc)
	}
}

// LoadYAML reads a complete graph document from r and builds the graph it
// describes, honoring the document's directed and weighted flags.
func LoadYAML(r io.Reader) (*core.Graph, error) {
	doc, err := decodeDoc(r)
	if err != nil {
		return nil, err
	}

	var gopts []core.GraphOption
	if doc.Directed {
		gopts = append(gopts, core.WithDirected(true))
	}
	if doc.Weighted {
		gopts = append(gopts, core.WithWeighted())
	}

	return Build(gopts, func(g *core.Graph) error { return applyDoc(g, doc) })
}

// decodeDoc parses and validates a graph document.
func decodeDoc(r io.Reader) (*graphDoc, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("FromYAML: read: %w", err)
	}

	var doc graphDoc
	if err = yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("FromYAML: %v: %w", err, ErrBadDocument)
	}
	if len(doc.Vertices) == 0 && len(doc.Edges) == 0 {
		return nil, fmt.Errorf("FromYAML: document declares no vertices or edges: %w", ErrBadDocument)
	}
	for i, e := range doc.Edges {
		if e.From == "" || e.To == "" {
			return nil, fmt.Errorf("FromYAML: edge %d is missing an endpoint: %w", i, ErrBadDocument)
		}
	}

	return &doc, nil
}

// applyDoc declares the document's vertices then edges, in order.
func applyDoc(g *core.Graph, doc *graphDoc) error {
	for _, id := range doc.Vertices {
		if err := g.AddVertex(id); err != nil {
			return fmt.Errorf("FromYAML: vertex %q: %w", id, err)
		}
	}
	for i, e := range doc.Edges {
		if err := addEdgeOnce(g, e.From, e.To, e.Weight); err != nil {
			return fmt.Errorf("FromYAML: edge %d (%s-%s): %w", i, e.From, e.To, err)
		}
	}

	return nil
}
