// Package description provides an in-memory schema description that records
// what the veggies declarators expand into.
//
// An Entity implements veggies.Target: each declaration is stored as
// metadata (columns, relationships, unique constraints) in the order it was
// made. A Registry maps fully-qualified type names to entities, verifies
// that every relationship's related-type name resolves, and can dump the
// whole description as YAML for inspection.
package description

import (
	"fmt"
	"io"
	"reflect"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/zoffixznet/veggies"
)

// RelationshipKind discriminates the two relationship directions.
type RelationshipKind string

const (
	// HasMany is a one-to-many relationship: the related table carries the
	// foreign key.
	HasMany RelationshipKind = "has_many"

	// BelongsTo is a many-to-one relationship: the declaring table carries
	// the foreign key.
	BelongsTo RelationshipKind = "belongs_to"
)

// Column describes one declared column. Its YAML form is produced by
// MarshalYAML, which renders the option mapping with sorted keys.
type Column struct {
	Name    string
	Primary bool
	Options veggies.Config
}

// Relationship describes one declared relationship.
type Relationship struct {
	Kind        RelationshipKind `yaml:"kind"`
	Accessor    string           `yaml:"accessor"`
	RelatedType string           `yaml:"related_type"`
	ForeignKey  string           `yaml:"foreign_key"`
}

// UniqueConstraint describes one registered unique constraint.
type UniqueConstraint struct {
	Name    string   `yaml:"name"`
	Columns []string `yaml:"columns"`
}

// Entity is the recorded schema description of a single entity. It
// implements veggies.Target; declarations are stored in the order they were
// made, and redeclaring a column or relationship name overwrites the
// previous entry in place (last declaration wins).
type Entity struct {
	Name          string              `yaml:"-"`
	Options       veggies.Config      `yaml:"options,omitempty"`
	Columns       []*Column           `yaml:"columns,omitempty"`
	Relationships []*Relationship     `yaml:"relationships,omitempty"`
	Constraints   []*UniqueConstraint `yaml:"unique_constraints,omitempty"`
}

var _ veggies.Target = (*Entity)(nil)

// NewEntity returns an empty entity description for the given
// fully-qualified type name.
func NewEntity(name string) *Entity {
	return &Entity{Name: name}
}

// Activate records the entity-level activation options.
func (e *Entity) Activate(cfg veggies.Config) {
	e.Options = cfg
}

// DeclarePrimaryColumn records the primary-key column.
func (e *Entity) DeclarePrimaryColumn(name string, cfg veggies.Config) {
	e.putColumn(&Column{Name: name, Primary: true, Options: cfg})
}

// DeclareColumn records a non-primary column.
func (e *Entity) DeclareColumn(name string, cfg veggies.Config) {
	e.putColumn(&Column{Name: name, Options: cfg})
}

func (e *Entity) putColumn(c *Column) {
	for i, prev := range e.Columns {
		if prev.Name == c.Name {
			e.Columns[i] = c
			return
		}
	}
	e.Columns = append(e.Columns, c)
}

// DeclareOneToMany records a one-to-many relationship.
func (e *Entity) DeclareOneToMany(accessor, relatedType, foreignKey string) {
	e.putRelationship(&Relationship{
		Kind:        HasMany,
		Accessor:    accessor,
		RelatedType: relatedType,
		ForeignKey:  foreignKey,
	})
}

// DeclareManyToOne records a many-to-one relationship.
func (e *Entity) DeclareManyToOne(accessor, relatedType, foreignKey string) {
	e.putRelationship(&Relationship{
		Kind:        BelongsTo,
		Accessor:    accessor,
		RelatedType: relatedType,
		ForeignKey:  foreignKey,
	})
}

func (e *Entity) putRelationship(r *Relationship) {
	for i, prev := range e.Relationships {
		if prev.Accessor == r.Accessor {
			e.Relationships[i] = r
			return
		}
	}
	e.Relationships = append(e.Relationships, r)
}

// AddUniqueConstraint records a named unique constraint.
func (e *Entity) AddUniqueConstraint(name string, columns []string) {
	e.Constraints = append(e.Constraints, &UniqueConstraint{Name: name, Columns: columns})
}

// Column returns the declared column with the given name, or nil.
func (e *Entity) Column(name string) *Column {
	for _, c := range e.Columns {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Relationship returns the declared relationship with the given accessor,
// or nil.
func (e *Entity) Relationship(accessor string) *Relationship {
	for _, r := range e.Relationships {
		if r.Accessor == accessor {
			return r
		}
	}
	return nil
}

// PrimaryColumn returns the declared primary column, or nil.
func (e *Entity) PrimaryColumn() *Column {
	for _, c := range e.Columns {
		if c.Primary {
			return c
		}
	}
	return nil
}

// Registry maps fully-qualified type names to entity descriptions. It is the
// lookup table the naming layer's derived type names resolve against.
//
// The map is guarded by a mutex since entity definitions commonly run from
// package init functions; individual entities are not safe for concurrent
// declaration and do not need to be.
type Registry struct {
	mu       sync.Mutex
	entities map[string]*Entity
	order    []string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entities: make(map[string]*Entity)}
}

// Entity returns the description registered under the given name, creating
// an empty one on first use.
func (r *Registry) Entity(qualifiedName string) *Entity {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.entities[qualifiedName]; ok {
		return e
	}
	e := NewEntity(qualifiedName)
	r.entities[qualifiedName] = e
	r.order = append(r.order, qualifiedName)
	return e
}

// Lookup returns the description registered under the given name. Unknown
// names are a configuration error, not a silent nil.
func (r *Registry) Lookup(qualifiedName string) (*Entity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entities[qualifiedName]
	if !ok {
		return nil, veggies.NewUnknownTypeError(qualifiedName)
	}
	return e, nil
}

// Names returns the registered type names in registration order.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Define runs an entity definition against the description registered under
// the given name, creating it on first use.
func (r *Registry) Define(qualifiedName string, entity veggies.Entity, cfg ...veggies.Config) error {
	return veggies.Define(r.Entity(qualifiedName), qualifiedName, entity, cfg...)
}

// Resolve verifies that every relationship's related-type name is registered.
// It reports each unresolved name once, with the entities referencing it.
func (r *Registry) Resolve() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	referrers := make(map[string][]string)
	var missing []string
	for _, name := range r.order {
		for _, rel := range r.entities[name].Relationships {
			if _, ok := r.entities[rel.RelatedType]; ok {
				continue
			}
			if _, seen := referrers[rel.RelatedType]; !seen {
				missing = append(missing, rel.RelatedType)
			}
			referrers[rel.RelatedType] = append(referrers[rel.RelatedType], name)
		}
	}
	var errs []error
	for _, name := range missing {
		errs = append(errs, veggies.NewUnknownTypeError(name, referrers[name]...))
	}
	return veggies.NewAggregateError(errs...)
}

// MarshalYAML renders the registry as a mapping from type name to entity
// description, in registration order.
func (r *Registry) MarshalYAML() (any, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, name := range r.order {
		key := &yaml.Node{Kind: yaml.ScalarNode, Value: name}
		val := &yaml.Node{}
		if err := val.Encode(r.entities[name]); err != nil {
			return nil, err
		}
		root.Content = append(root.Content, key, val)
	}
	return root, nil
}

// Dump writes the YAML rendering of the registry to w.
func (r *Registry) Dump(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return err
	}
	return enc.Close()
}

// MarshalYAML renders option values in a stable, scalar-friendly form:
// function values (generated defaults) are rendered by kind rather than
// address, and keys are sorted.
func (c Column) MarshalYAML() (any, error) {
	type plain struct {
		Name    string     `yaml:"name"`
		Primary bool       `yaml:"primary,omitempty"`
		Options *yaml.Node `yaml:"options,omitempty"`
	}
	return plain{Name: c.Name, Primary: c.Primary, Options: yamlOptions(c.Options)}, nil
}

// yamlOptions converts a config mapping into an encodable form. yaml.v3
// sorts plain map keys itself, but an explicit node keeps the contract
// independent of the encoder version.
func yamlOptions(cfg veggies.Config) *yaml.Node {
	if len(cfg) == 0 {
		return nil
	}
	keys := make([]string, 0, len(cfg))
	for k := range cfg {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, k := range keys {
		key := &yaml.Node{Kind: yaml.ScalarNode, Value: k}
		val := &yaml.Node{}
		v := cfg[k]
		if v != nil && reflect.TypeOf(v).Kind() == reflect.Func {
			v = fmt.Sprintf("generated (%s)", funcName(v))
		}
		if err := val.Encode(v); err != nil {
			val = &yaml.Node{Kind: yaml.ScalarNode, Value: fmt.Sprint(v)}
		}
		node.Content = append(node.Content, key, val)
	}
	return node
}

func funcName(v any) string {
	return reflect.TypeOf(v).String()
}
