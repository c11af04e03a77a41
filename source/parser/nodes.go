package parser

import (
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hamhec/FLOCI/ontology"
)

// lookup returns the value for key in a mapping node, or nil.
func lookup(n *yaml.Node, key string) *yaml.Node {
	if n.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == key {
			return n.Content[i+1]
		}
	}
	return nil
}

// single unpacks a mapping with exactly one key.
func single(n *yaml.Node) (string, *yaml.Node, error) {
	if n.Kind != yaml.MappingNode || len(n.Content) != 2 {
		return "", nil, errorf(n, "expected a mapping with a single key")
	}
	return n.Content[0].Value, n.Content[1], nil
}

func sequence(n *yaml.Node) ([]*yaml.Node, error) {
	if n.Kind != yaml.SequenceNode {
		return nil, errorf(n, "expected a list")
	}
	return n.Content, nil
}

func scalar(n *yaml.Node) (string, error) {
	if n.Kind != yaml.ScalarNode {
		return "", errorf(n, "expected a scalar value")
	}
	return n.Value, nil
}

// fields checks that n is a mapping whose keys are drawn from keys. Keys with
// a "?" suffix are optional, all others must be present.
func (d *decoder) fields(n *yaml.Node, keys ...string) (map[string]*yaml.Node, error) {
	if n.Kind != yaml.MappingNode {
		return nil, errorf(n, "expected a mapping with keys %s", strings.Join(keys, ", "))
	}

	allowed := make(map[string]bool, len(keys))
	for _, k := range keys {
		allowed[strings.TrimSuffix(k, "?")] = true
	}

	out := make(map[string]*yaml.Node, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key := n.Content[i]
		if !allowed[key.Value] {
			return nil, errorf(key, "unexpected key %q", key.Value)
		}
		out[key.Value] = n.Content[i+1]
	}

	for _, k := range keys {
		if strings.HasSuffix(k, "?") {
			continue
		}
		if _, ok := out[k]; !ok {
			return nil, errorf(n, "missing key %q", k)
		}
	}
	return out, nil
}

// decodeStrict decodes a mapping holding exactly the given keys into out.
func decodeStrict(n *yaml.Node, out any, keys ...string) error {
	if n.Kind != yaml.MappingNode {
		return errorf(n, "expected a mapping with keys %s", strings.Join(keys, ", "))
	}
	seen := make(map[string]bool, len(keys))
	for i := 0; i+1 < len(n.Content); i += 2 {
		key := n.Content[i]
		found := false
		for _, k := range keys {
			if key.Value == k {
				found = true
				break
			}
		}
		if !found {
			return errorf(key, "unexpected key %q", key.Value)
		}
		seen[key.Value] = true
	}
	for _, k := range keys {
		if !seen[k] {
			return errorf(n, "missing key %q", k)
		}
	}
	if err := n.Decode(out); err != nil {
		return errorf(n, "%v", err)
	}
	return nil
}

// degree decodes an optional membership degree, defaulting to 1.
func degree(n *yaml.Node) (float64, error) {
	if n == nil {
		return 1, nil
	}
	var d float64
	if err := n.Decode(&d); err != nil {
		return 0, errorf(n, "degree must be a number")
	}
	if d < 0 || d > 1 {
		return 0, errorf(n, "degree %v outside [0, 1]", d)
	}
	return d, nil
}

func cardinality(n *yaml.Node) (int, error) {
	var c int
	if err := n.Decode(&c); err != nil || c < 0 {
		return 0, errorf(n, "cardinality must be a non-negative integer")
	}
	return c, nil
}

// expand resolves a prefixed name against the document's prefixes. Names
// with an unknown prefix are returned unchanged.
func (d *decoder) expand(name string) string {
	i := strings.Index(name, ":")
	if i <= 0 {
		return name
	}
	if ns, ok := d.prefixes[name[:i]]; ok {
		return ns + name[i+1:]
	}
	return name
}

func (d *decoder) name(n *yaml.Node) (string, error) {
	s, err := scalar(n)
	if err != nil {
		return "", err
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return "", errorf(n, "empty name")
	}
	return d.expand(s), nil
}

func (d *decoder) entity(n *yaml.Node) (ontology.Entity, error) {
	s, err := d.name(n)
	if err != nil {
		return ontology.Entity{}, err
	}
	return ontology.NewEntity(s), nil
}

func (d *decoder) entities(n *yaml.Node) ([]ontology.Entity, error) {
	items, err := sequence(n)
	if err != nil {
		return nil, err
	}
	out := make([]ontology.Entity, 0, len(items))
	for _, item := range items {
		e, err := d.entity(item)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

// individual decodes a named individual, or an anonymous one when the name
// is a blank node label such as "_:b0".
func (d *decoder) individual(n *yaml.Node) (ontology.Individual, error) {
	s, err := scalar(n)
	if err != nil {
		return ontology.Individual{}, err
	}
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "_:") {
		return ontology.AnonymousIndividual(s), nil
	}
	name, err := d.name(n)
	if err != nil {
		return ontology.Individual{}, err
	}
	return ontology.NamedIndividual(name), nil
}

func (d *decoder) individuals(n *yaml.Node) ([]ontology.Individual, error) {
	items, err := sequence(n)
	if err != nil {
		return nil, err
	}
	out := make([]ontology.Individual, 0, len(items))
	for _, item := range items {
		i, err := d.individual(item)
		if err != nil {
			return nil, err
		}
		out = append(out, i)
	}
	return out, nil
}
