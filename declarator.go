package veggies

import (
	"log/slog"
	"strings"

	"github.com/zoffixznet/veggies/naming"
)

// TableNamingKey is the activation option selecting the auto-table-naming
// mode of the consuming framework. When the caller does not set it, New
// injects TableNamingSingular.
const (
	TableNamingKey      = "table_naming"
	TableNamingSingular = "singular"
)

// Declarator is the declaration surface bound to a single entity definition.
// Its methods expand shorthand declarations into calls on the underlying
// Target, deriving names via the naming package where the caller did not
// supply them.
//
// A Declarator is used from a single goroutine during entity definition;
// declarations take effect in the textual order they are written. Methods do
// not return errors: misuse is recorded and surfaced by Err.
type Declarator struct {
	target Target
	qual   string
	logger *slog.Logger
	seen   map[string]string // declared name -> declarator that wrote it
	errs   []error
}

// New returns a Declarator for the entity with the given fully-qualified
// name and immediately activates the target, forwarding the caller options
// unchanged except for injecting the default auto-table-naming mode when
// the caller did not set one.
func New(target Target, qualifiedName string, cfg ...Config) *Declarator {
	d := &Declarator{
		target: target,
		qual:   qualifiedName,
		logger: slog.Default(),
		seen:   make(map[string]string),
	}
	if !d.ready("activate") {
		return d
	}
	d.target.Activate(merged(Config{TableNamingKey: TableNamingSingular}, cfg))
	return d
}

// WithLogger sets the logger used for name-collision warnings and returns d.
func (d *Declarator) WithLogger(logger *slog.Logger) *Declarator {
	if logger != nil {
		d.logger = logger
	}
	return d
}

// Err returns the declaration errors recorded so far, in order, or nil.
func (d *Declarator) Err() error {
	return NewAggregateError(d.errs...)
}

// ready reports whether the underlying target is usable, recording a
// targetless-declarator error otherwise.
func (d *Declarator) ready(declarator string) bool {
	if d.target != nil {
		return true
	}
	d.errs = append(d.errs, &DeclarationError{
		entity:     d.qual,
		declarator: declarator,
		reason:     "no schema target",
		wrap:       ErrNilTarget,
	})
	return false
}

// note records a declared name. Redeclaring a name is not an error (the last
// declaration wins, plain namespace-assignment semantics), but it is almost
// always a mistake, so it is logged.
func (d *Declarator) note(declarator, name string) {
	if prev, ok := d.seen[name]; ok {
		d.logger.Warn("veggies: name declared twice, last declaration wins",
			slog.String("entity", d.qual),
			slog.String("name", name),
			slog.String("previous", prev),
			slog.String("current", declarator),
		)
	}
	d.seen[name] = declarator
}

// column declares a typed column with the given defaults.
func (d *Declarator) column(declarator, name, typeTag string, cfg []Config) {
	if !d.ready(declarator) {
		return
	}
	d.note(declarator, name)
	d.target.DeclareColumn(name, merged(Config{"type": typeTag}, cfg))
}

// PCol declares an integer auto-increment primary column. Caller config
// keys win over the defaults.
func (d *Declarator) PCol(name string, cfg ...Config) {
	if !d.ready("pcol") {
		return
	}
	d.note("pcol", name)
	d.target.DeclarePrimaryColumn(name, merged(Config{
		"type":           "integer",
		"auto_increment": true,
	}, cfg))
}

// UUIDPCol declares a uuid primary column whose default is generated per
// row. Caller config keys win over the defaults.
func (d *Declarator) UUIDPCol(name string, cfg ...Config) {
	if !d.ready("uuidpcol") {
		return
	}
	d.note("uuidpcol", name)
	d.target.DeclarePrimaryColumn(name, merged(Config{
		"type":    "uuid",
		"default": GeneratedUUID,
	}, cfg))
}

// Col declares a generic text column.
func (d *Declarator) Col(name string, cfg ...Config) {
	d.column("col", name, "text", cfg)
}

// TCol declares a text column.
func (d *Declarator) TCol(name string, cfg ...Config) {
	d.column("tcol", name, "text", cfg)
}

// ICol declares an integer column.
func (d *Declarator) ICol(name string, cfg ...Config) {
	d.column("icol", name, "integer", cfg)
}

// UCol declares an unsigned integer column.
func (d *Declarator) UCol(name string, cfg ...Config) {
	d.column("ucol", name, "int unsigned", cfg)
}

// VCol declares a variable-length string column.
func (d *Declarator) VCol(name string, cfg ...Config) {
	d.column("vcol", name, "varchar", cfg)
}

// OwnedBy declares a many-to-one relationship.
//
// With only the accessor name, the foreign-key column and related-type name
// are inferred: a plain integer foreign-key column is declared first, then
// the relationship. With two extra arguments (related type, foreign-key
// column), everything passes through to the target verbatim and no column
// is declared.
func (d *Declarator) OwnedBy(accessor string, rest ...string) {
	if !d.ready("owned_by") {
		return
	}
	switch len(rest) {
	case 0:
		prefix, err := naming.BasePrefix(d.qual)
		if err != nil {
			d.errs = append(d.errs, err)
			return
		}
		fk := naming.ForeignKeyColumn(accessor)
		d.note("owned_by", fk)
		d.target.DeclareColumn(fk, Config{"type": "integer"})
		d.note("owned_by", accessor)
		d.target.DeclareManyToOne(accessor, naming.RelatedTypeName(prefix, accessor), fk)
	case 2:
		d.note("owned_by", accessor)
		d.target.DeclareManyToOne(accessor, rest[0], rest[1])
	default:
		d.errs = append(d.errs, NewDeclarationError(d.qual, "owned_by",
			"wants an accessor name alone, or accessor, related type and foreign-key column"))
	}
}

// Owns declares a one-to-many relationship.
//
// With only the accessor name (conventionally plural), the related-type name
// is inferred from the accessor's singular form and the foreign-key column
// from the declaring entity's local name. With two extra arguments (related
// type, foreign-key column), everything passes through verbatim.
func (d *Declarator) Owns(accessor string, rest ...string) {
	if !d.ready("owns") {
		return
	}
	switch len(rest) {
	case 0:
		prefix, err := naming.BasePrefix(d.qual)
		if err != nil {
			d.errs = append(d.errs, err)
			return
		}
		related := naming.RelatedTypeName(prefix, naming.Singularize(accessor))
		fk := naming.ForeignKeyColumn(strings.ToLower(naming.LocalName(d.qual)))
		d.note("owns", accessor)
		d.target.DeclareOneToMany(accessor, related, fk)
	case 2:
		d.note("owns", accessor)
		d.target.DeclareOneToMany(accessor, rest[0], rest[1])
	default:
		d.errs = append(d.errs, NewDeclarationError(d.qual, "owns",
			"wants an accessor name alone, or accessor, related type and foreign-key column"))
	}
}

// Uniquely registers a named unique constraint over the given columns. The
// arguments pass through to the target unchanged.
func (d *Declarator) Uniquely(name string, columns ...string) {
	if !d.ready("uniquely") {
		return
	}
	d.target.AddUniqueConstraint(name, columns)
}
