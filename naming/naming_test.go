package naming_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zoffixznet/veggies/naming"
)

func TestForeignKeyColumn(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain_accessor", in: "order", want: "order_id"},
		{name: "multi_word", in: "parent_category", want: "parent_category_id"},
		{name: "already_suffixed", in: "artist_id", want: "artist_id"},
		{name: "suffix_only", in: "_id", want: "_id"},
		{name: "empty", in: "", want: "_id"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := naming.ForeignKeyColumn(tt.in)
			assert.Equal(t, tt.want, got)

			// Applying the derivation twice must equal applying it once.
			assert.Equal(t, got, naming.ForeignKeyColumn(got))
		})
	}
}

func TestCamelize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "single_word", in: "album", want: "Album"},
		{name: "two_words", in: "stage_name", want: "StageName"},
		{name: "three_words", in: "order_line_item", want: "OrderLineItem"},
		{name: "already_capitalized", in: "Artist", want: "Artist"},
		{name: "trailing_underscore", in: "name_", want: "Name_"},
		{name: "double_underscore", in: "a__b", want: "A_b"},
		{name: "empty", in: "", want: ""},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, naming.Camelize(tt.in))
		})
	}
}

func TestRelatedTypeName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "App::Result::StageName", naming.RelatedTypeName("App::Result::", "stage_name"))
	assert.Equal(t, "App::Result::Album", naming.RelatedTypeName("App::Result::", "album"))
	assert.Equal(t, "Music::DB::Result::Order", naming.RelatedTypeName("Music::DB::Result::", "order"))
}

func TestSingularize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "albums", want: "album"},
		{in: "categories", want: "category"},
		{in: "addresses", want: "address"},
		{in: "people", want: "person"},
		{in: "order", want: "order"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, naming.Singularize(tt.in), "Singularize(%q)", tt.in)
	}
}

func TestBasePrefix(t *testing.T) {
	t.Parallel()

	t.Run("standard_name", func(t *testing.T) {
		t.Parallel()
		prefix, err := naming.BasePrefix("App::Result::Artist")
		require.NoError(t, err)
		assert.Equal(t, "App::Result::", prefix)
	})

	t.Run("deep_namespace", func(t *testing.T) {
		t.Parallel()
		prefix, err := naming.BasePrefix("My::Music::DB::Result::Album")
		require.NoError(t, err)
		assert.Equal(t, "My::Music::DB::Result::", prefix)
	})

	t.Run("missing_marker", func(t *testing.T) {
		t.Parallel()
		_, err := naming.BasePrefix("App::Model::Artist")
		require.Error(t, err)
		assert.ErrorIs(t, err, naming.ErrNoBasePrefix)
		assert.Contains(t, err.Error(), "App::Model::Artist")
	})

	t.Run("marker_is_final_segment", func(t *testing.T) {
		t.Parallel()
		// A trailing marker has no type name after it, so there is no prefix.
		_, err := naming.BasePrefix("App::Result")
		assert.ErrorIs(t, err, naming.ErrNoBasePrefix)
	})
}

func TestLocalName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Artist", naming.LocalName("App::Result::Artist"))
	assert.Equal(t, "Order", naming.LocalName("My::Shop::Result::Order"))
	assert.Equal(t, "Artist", naming.LocalName("Artist"))
}
