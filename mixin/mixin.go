// Package mixin provides reusable declaration groups for veggies entities.
//
// A mixin is an Entity whose Declare method contributes a common set of
// columns. Mixins are OPTIONAL and provided as convenient starting points;
// invoke them from an entity's own Declare method:
//
//	func (Album) Declare(d *veggies.Declarator) {
//	    d.PCol("album_id")
//	    d.Col("title")
//	    mixin.Time{}.Declare(d)
//	}
package mixin

import "github.com/zoffixznet/veggies"

// CreateTime adds a created_at datetime column.
type CreateTime struct{ veggies.Schema }

// Declare contributes the created_at column.
func (CreateTime) Declare(d *veggies.Declarator) {
	d.Col("created_at", veggies.Config{"type": "datetime", "set_on_create": true})
}

// create time mixin must implement `Entity` interface.
var _ veggies.Entity = (*CreateTime)(nil)

// UpdateTime adds an updated_at datetime column.
type UpdateTime struct{ veggies.Schema }

// Declare contributes the updated_at column.
func (UpdateTime) Declare(d *veggies.Declarator) {
	d.Col("updated_at", veggies.Config{"type": "datetime", "set_on_create": true, "set_on_update": true})
}

var _ veggies.Entity = (*UpdateTime)(nil)

// Time combines CreateTime and UpdateTime.
type Time struct{ veggies.Schema }

// Declare contributes both timestamp columns.
func (Time) Declare(d *veggies.Declarator) {
	CreateTime{}.Declare(d)
	UpdateTime{}.Declare(d)
}

var _ veggies.Entity = (*Time)(nil)

// UUIDID adds a uuid primary column named id with a generated default.
type UUIDID struct{ veggies.Schema }

// Declare contributes the id column.
func (UUIDID) Declare(d *veggies.Declarator) {
	d.UUIDPCol("id")
}

var _ veggies.Entity = (*UUIDID)(nil)
