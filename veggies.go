package veggies

import "github.com/google/uuid"

// Config is an option mapping forwarded to the schema target. Declarators
// merge caller-supplied configs over their defaults; caller values win on
// key collision.
type Config map[string]any

// merged returns defaults with every caller config applied on top, in order.
// The arguments are never mutated.
func merged(defaults Config, cfgs []Config) Config {
	out := make(Config, len(defaults))
	for k, v := range defaults {
		out[k] = v
	}
	for _, c := range cfgs {
		for k, v := range c {
			out[k] = v
		}
	}
	return out
}

// Target is the set of schema-declaration primitives the declarators expand
// into. Implementations record metadata only; nothing here touches a live
// data store. The description package provides the in-memory implementation.
type Target interface {
	// Activate receives the entity-level options exactly once, before any
	// declarator runs. Options are forwarded uninterpreted; recognized keys
	// include the auto-table-naming mode and an experimental-features list.
	Activate(cfg Config)

	// DeclarePrimaryColumn declares the primary-key column.
	DeclarePrimaryColumn(name string, cfg Config)

	// DeclareColumn declares a non-primary column.
	DeclareColumn(name string, cfg Config)

	// DeclareOneToMany declares a one-to-many relationship reached through
	// the given accessor, pointing at relatedType via foreignKey on the
	// related table.
	DeclareOneToMany(accessor, relatedType, foreignKey string)

	// DeclareManyToOne declares a many-to-one relationship reached through
	// the given accessor, pointing at relatedType via foreignKey on the
	// declaring table.
	DeclareManyToOne(accessor, relatedType, foreignKey string)

	// AddUniqueConstraint registers a named unique constraint over columns.
	AddUniqueConstraint(name string, columns []string)
}

// Entity is implemented by schema-entity definitions. Declare is invoked
// once per definition, at load time, with a Declarator bound to the entity's
// qualified name and target.
type Entity interface {
	Declare(d *Declarator)
}

// Schema is the default embeddable base for entity definitions.
//
//	type Artist struct{ veggies.Schema }
type Schema struct{}

// Options returns the entity-level activation options.
// Override this method to customize them.
func (Schema) Options() Config { return nil }

// optioner is the optional interface entities implement to supply
// activation options without passing them at the Define call site.
type optioner interface {
	Options() Config
}

// Define runs an entity definition against a target: it builds a Declarator
// for the qualified name, activates the target, invokes the entity's Declare
// method, and returns any deferred declaration errors.
//
// Explicit cfg arguments win over the entity's own Options.
func Define(target Target, qualifiedName string, entity Entity, cfg ...Config) error {
	if o, ok := entity.(optioner); ok {
		if opts := o.Options(); opts != nil {
			cfg = append([]Config{opts}, cfg...)
		}
	}
	d := New(target, qualifiedName, cfg...)
	entity.Declare(d)
	return d.Err()
}

// GeneratedUUID returns a random UUID string. It is the generated default
// installed by UUIDPCol; the value lands in the column config as a function
// so that the consuming framework calls it once per row, not once per schema.
func GeneratedUUID() string {
	return uuid.NewString()
}
