package description_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zoffixznet/veggies"
	"github.com/zoffixznet/veggies/description"
)

type artist struct{ veggies.Schema }

func (artist) Declare(d *veggies.Declarator) {
	d.PCol("artist_id")
	d.VCol("stage_name", veggies.Config{"size": 25, "nullable": true})
	d.Owns("albums")
	d.Uniquely("stage_name_unique", "stage_name")
}

type album struct{ veggies.Schema }

func (album) Declare(d *veggies.Declarator) {
	d.PCol("album_id")
	d.Col("title")
	d.OwnedBy("artist")
}

func TestEntityRecordsDeclarations(t *testing.T) {
	t.Parallel()

	reg := description.NewRegistry()
	require.NoError(t, reg.Define("App::Result::Artist", artist{}))

	e, err := reg.Lookup("App::Result::Artist")
	require.NoError(t, err)

	pk := e.PrimaryColumn()
	require.NotNil(t, pk)
	assert.Equal(t, "artist_id", pk.Name)
	assert.Equal(t, "integer", pk.Options["type"])
	assert.Equal(t, true, pk.Options["auto_increment"])

	col := e.Column("stage_name")
	require.NotNil(t, col)
	assert.False(t, col.Primary)
	assert.Equal(t, veggies.Config{"type": "varchar", "size": 25, "nullable": true}, col.Options)

	rel := e.Relationship("albums")
	require.NotNil(t, rel)
	assert.Equal(t, description.HasMany, rel.Kind)
	assert.Equal(t, "App::Result::Album", rel.RelatedType)
	assert.Equal(t, "artist_id", rel.ForeignKey)

	require.Len(t, e.Constraints, 1)
	assert.Equal(t, "stage_name_unique", e.Constraints[0].Name)
	assert.Equal(t, []string{"stage_name"}, e.Constraints[0].Columns)

	assert.Equal(t, veggies.TableNamingSingular, e.Options[veggies.TableNamingKey])
}

func TestEntityBelongsTo(t *testing.T) {
	t.Parallel()

	reg := description.NewRegistry()
	require.NoError(t, reg.Define("App::Result::Album", album{}))

	e, err := reg.Lookup("App::Result::Album")
	require.NoError(t, err)

	// The inferred foreign-key column is declared on the entity itself.
	fk := e.Column("artist_id")
	require.NotNil(t, fk)
	assert.Equal(t, veggies.Config{"type": "integer"}, fk.Options)

	rel := e.Relationship("artist")
	require.NotNil(t, rel)
	assert.Equal(t, description.BelongsTo, rel.Kind)
	assert.Equal(t, "App::Result::Artist", rel.RelatedType)
	assert.Equal(t, "artist_id", rel.ForeignKey)
}

func TestLastDeclarationWins(t *testing.T) {
	t.Parallel()

	e := description.NewEntity("App::Result::Artist")
	e.DeclareColumn("name", veggies.Config{"type": "text"})
	e.DeclareColumn("bio", veggies.Config{"type": "text"})
	e.DeclareColumn("name", veggies.Config{"type": "varchar", "size": 100})

	// The redeclared column keeps its original position.
	require.Len(t, e.Columns, 2)
	assert.Equal(t, "name", e.Columns[0].Name)
	assert.Equal(t, veggies.Config{"type": "varchar", "size": 100}, e.Columns[0].Options)

	e.DeclareOneToMany("albums", "App::Result::Album", "artist_id")
	e.DeclareManyToOne("albums", "App::Result::Album", "album_id")
	require.Len(t, e.Relationships, 1)
	assert.Equal(t, description.BelongsTo, e.Relationships[0].Kind)
}

func TestRegistryLookupUnknown(t *testing.T) {
	t.Parallel()

	reg := description.NewRegistry()
	_, err := reg.Lookup("App::Result::Missing")
	require.Error(t, err)
	assert.True(t, veggies.IsUnknownType(err))
	assert.Contains(t, err.Error(), "App::Result::Missing")
}

func TestRegistryResolve(t *testing.T) {
	t.Parallel()

	t.Run("all_types_known", func(t *testing.T) {
		t.Parallel()
		reg := description.NewRegistry()
		require.NoError(t, reg.Define("App::Result::Artist", artist{}))
		require.NoError(t, reg.Define("App::Result::Album", album{}))
		assert.NoError(t, reg.Resolve())
	})

	t.Run("unresolved_related_type", func(t *testing.T) {
		t.Parallel()
		reg := description.NewRegistry()
		require.NoError(t, reg.Define("App::Result::Artist", artist{}))

		err := reg.Resolve()
		require.Error(t, err)
		assert.True(t, veggies.IsUnknownType(err))

		var ute *veggies.UnknownTypeError
		require.ErrorAs(t, err, &ute)
		assert.Equal(t, "App::Result::Album", ute.Name())
		assert.Equal(t, []string{"App::Result::Artist"}, ute.ReferredBy())
	})

	t.Run("each_missing_type_reported_once", func(t *testing.T) {
		t.Parallel()
		reg := description.NewRegistry()
		a := reg.Entity("App::Result::A")
		a.DeclareOneToMany("things", "App::Result::Thing", "a_id")
		b := reg.Entity("App::Result::B")
		b.DeclareManyToOne("thing", "App::Result::Thing", "thing_id")

		err := reg.Resolve()
		require.Error(t, err)

		var ute *veggies.UnknownTypeError
		require.ErrorAs(t, err, &ute)
		assert.Equal(t, []string{"App::Result::A", "App::Result::B"}, ute.ReferredBy())
	})
}

func TestRegistryNames(t *testing.T) {
	t.Parallel()

	reg := description.NewRegistry()
	require.NoError(t, reg.Define("App::Result::Artist", artist{}))
	require.NoError(t, reg.Define("App::Result::Album", album{}))
	assert.Equal(t, []string{"App::Result::Artist", "App::Result::Album"}, reg.Names())
}

type session struct{ veggies.Schema }

func (session) Declare(d *veggies.Declarator) {
	d.UUIDPCol("session_id")
}

func TestDump(t *testing.T) {
	t.Parallel()

	reg := description.NewRegistry()
	require.NoError(t, reg.Define("App::Result::Artist", artist{}))
	require.NoError(t, reg.Define("App::Result::Album", album{}))
	require.NoError(t, reg.Define("App::Result::Session", session{}))

	var buf bytes.Buffer
	require.NoError(t, reg.Dump(&buf))
	out := buf.String()

	// Entities appear in registration order.
	artistAt := bytes.Index(buf.Bytes(), []byte("App::Result::Artist"))
	albumAt := bytes.Index(buf.Bytes(), []byte("App::Result::Album"))
	require.GreaterOrEqual(t, artistAt, 0)
	assert.Greater(t, albumAt, artistAt)

	assert.Contains(t, out, "name: artist_id")
	assert.Contains(t, out, "primary: true")
	assert.Contains(t, out, "type: varchar")
	assert.Contains(t, out, "kind: has_many")
	assert.Contains(t, out, "kind: belongs_to")
	assert.Contains(t, out, "related_type: App::Result::Album")
	assert.Contains(t, out, "foreign_key: artist_id")
	assert.Contains(t, out, "stage_name_unique")

	// Generated defaults render as a marker, not a function address.
	assert.Contains(t, out, "default: generated (func() string)")
	assert.NotContains(t, out, "0x")
}

func TestDumpStable(t *testing.T) {
	t.Parallel()

	reg := description.NewRegistry()
	require.NoError(t, reg.Define("App::Result::Artist", artist{}))

	var a, b bytes.Buffer
	require.NoError(t, reg.Dump(&a))
	require.NoError(t, reg.Dump(&b))
	assert.Equal(t, a.String(), b.String())
}
