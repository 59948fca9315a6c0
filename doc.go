// Package veggies provides shorthand declarators for defining entity schemas
// on top of a declarative schema builder.
//
// The package does not model data and does not talk to a database. It is a
// thin naming and delegation layer: each declarator merges caller options
// over a type-specific default and forwards the result to an underlying
// schema target, inferring foreign-key column names and related-type names
// from the accessor name where the caller did not spell them out.
//
// # Quick Start
//
// Define an entity by embedding veggies.Schema and implementing Declare:
//
//	type Artist struct{ veggies.Schema }
//
//	func (Artist) Declare(d *veggies.Declarator) {
//	    d.PCol("artist_id")
//	    d.VCol("stage_name", veggies.Config{"size": 25, "nullable": true})
//	    d.Owns("albums")
//	}
//
//	type Album struct{ veggies.Schema }
//
//	func (Album) Declare(d *veggies.Declarator) {
//	    d.PCol("album_id")
//	    d.Col("title")
//	    d.OwnedBy("artist")
//	}
//
// then bind the definitions to a schema description:
//
//	reg := description.NewRegistry()
//	reg.Define("App::Result::Artist", Artist{})
//	reg.Define("App::Result::Album", Album{})
//	if err := reg.Resolve(); err != nil { ... }
//
// # Column Declarators
//
//	d.PCol("artist_id")   // integer auto-increment primary column
//	d.Col("notes")        // generic text column
//	d.TCol("bio")         // text column
//	d.ICol("position")    // integer column
//	d.UCol("plays")       // unsigned integer column
//	d.VCol("name")        // varchar column
//	d.UUIDPCol("id")      // uuid primary column with generated default
//
// Every declarator accepts an optional trailing Config whose keys win over
// the declarator's defaults:
//
//	d.PCol("prod_id", veggies.Config{"type": "int unsigned", "auto_increment": false})
//
// # Relationship Declarators
//
// Owns declares a one-to-many relationship, OwnedBy a many-to-one. With a
// single argument, both infer the related-type name and foreign-key column
// from the accessor name and the declaring entity's qualified name:
//
//	// On App::Result::Artist this is equivalent to the explicit form
//	// d.Owns("albums", "App::Result::Album", "artist_id").
//	d.Owns("albums")
//
//	// On App::Result::Product this declares an integer order_id column and a
//	// relationship equivalent to d.OwnedBy("order", "App::Result::Order", "order_id").
//	d.OwnedBy("order")
//
// The explicit three-argument form passes through to the target verbatim.
//
// # Errors
//
// Declarators do not return errors; misuse is recorded on the Declarator and
// surfaced by Err (or by Define), in the order it occurred. All failures are
// definition-time failures: the package has no runtime execution path.
package veggies
