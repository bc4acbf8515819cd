package request

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quarm-tools/craftbot/internal/domain"
)

// fakeCatalog lets each test pin the catalog behavior with plain funcs.
type fakeCatalog struct {
	searchByName func(ctx context.Context, name string) (*domain.ItemRef, bool)
	getByID      func(ctx context.Context, itemID string) (*domain.ItemRef, bool)
	getRecipe    func(ctx context.Context, itemID string) (*domain.Recipe, error)
}

func (f *fakeCatalog) SearchByName(ctx context.Context, name string) (*domain.ItemRef, bool) {
	return f.searchByName(ctx, name)
}

func (f *fakeCatalog) GetByID(ctx context.Context, itemID string) (*domain.ItemRef, bool) {
	return f.getByID(ctx, itemID)
}

func (f *fakeCatalog) GetRecipe(ctx context.Context, itemID string) (*domain.Recipe, error) {
	return f.getRecipe(ctx, itemID)
}

func refWithID(id string) *domain.ItemRef {
	ref := &domain.ItemRef{Name: "Test Item"}
	ref.ID = domain.FlexID(id)
	return ref
}

func TestResolveByName(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path", func(t *testing.T) {
		want := &domain.Recipe{Name: "Fine Plate Vambraces"}
		p := NewPipeline(&fakeCatalog{
			searchByName: func(_ context.Context, name string) (*domain.ItemRef, bool) {
				assert.Equal(t, "fine plate vambraces", name)
				return refWithID("1287"), true
			},
			getRecipe: func(_ context.Context, itemID string) (*domain.Recipe, error) {
				assert.Equal(t, "1287", itemID)
				return want, nil
			},
		})

		recipe, err := p.ResolveByName(ctx, "fine plate vambraces")
		require.NoError(t, err)
		assert.Equal(t, want, recipe)
	})

	t.Run("item not found", func(t *testing.T) {
		p := NewPipeline(&fakeCatalog{
			searchByName: func(context.Context, string) (*domain.ItemRef, bool) {
				return nil, false
			},
		})

		_, err := p.ResolveByName(ctx, "no such thing")
		assert.ErrorIs(t, err, domain.ErrItemNotFound)
		assert.Equal(t, StageParsed, FailureStage(err))
	})

	t.Run("search hit without usable id", func(t *testing.T) {
		p := NewPipeline(&fakeCatalog{
			searchByName: func(context.Context, string) (*domain.ItemRef, bool) {
				return &domain.ItemRef{Name: "Ghost Item"}, true
			},
			getRecipe: func(context.Context, string) (*domain.Recipe, error) {
				t.Fatal("recipe fetch must not run without an id")
				return nil, nil
			},
		})

		_, err := p.ResolveByName(ctx, "ghost item")
		assert.ErrorIs(t, err, domain.ErrItemIDMissing)
	})

	t.Run("recipe not found", func(t *testing.T) {
		p := NewPipeline(&fakeCatalog{
			searchByName: func(context.Context, string) (*domain.ItemRef, bool) {
				return refWithID("42"), true
			},
			getRecipe: func(context.Context, string) (*domain.Recipe, error) {
				return nil, domain.ErrRecipeNotFound
			},
		})

		_, err := p.ResolveByName(ctx, "uncraftable")
		assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
		assert.Equal(t, StageItemResolved, FailureStage(err))
	})

	t.Run("parse fault degrades to sentinel recipe", func(t *testing.T) {
		p := NewPipeline(&fakeCatalog{
			searchByName: func(context.Context, string) (*domain.ItemRef, bool) {
				return refWithID("42"), true
			},
			getRecipe: func(context.Context, string) (*domain.Recipe, error) {
				return nil, domain.ErrRecipeParse
			},
		})

		recipe, err := p.ResolveByName(ctx, "weird payload")
		require.NoError(t, err)
		assert.Equal(t, domain.SentinelRecipeName, recipe.Name)
		assert.Equal(t, domain.UnknownProfession, recipe.Profession)
	})
}

func TestResolveByID(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects non-numeric id without touching the catalog", func(t *testing.T) {
		p := NewPipeline(&fakeCatalog{
			getRecipe: func(context.Context, string) (*domain.Recipe, error) {
				t.Fatal("catalog must not be called for an invalid id")
				return nil, nil
			},
		})

		for _, id := range []string{"", "abc", "12a", "-5", "12.0", " 12"} {
			_, err := p.ResolveByID(ctx, id)
			assert.ErrorIs(t, err, domain.ErrInvalidItemID, "id %q", id)
			assert.Equal(t, StageReceived, FailureStage(err))
		}
	})

	t.Run("numeric id goes straight to recipe fetch", func(t *testing.T) {
		want := &domain.Recipe{Name: "Ceramic Lined Pouch"}
		p := NewPipeline(&fakeCatalog{
			getRecipe: func(_ context.Context, itemID string) (*domain.Recipe, error) {
				assert.Equal(t, "17310", itemID)
				return want, nil
			},
		})

		recipe, err := p.ResolveByID(ctx, "17310")
		require.NoError(t, err)
		assert.Equal(t, want, recipe)
	})
}

func TestIsNumericID(t *testing.T) {
	assert.True(t, IsNumericID("0"))
	assert.True(t, IsNumericID("123456"))
	assert.False(t, IsNumericID(""))
	assert.False(t, IsNumericID("12 34"))
	assert.False(t, IsNumericID("１２３")) // full-width digits
}

func TestStageString(t *testing.T) {
	assert.Equal(t, "received", StageReceived.String())
	assert.Equal(t, "recipe_fetched", StageRecipeFetched.String())
	assert.Equal(t, "unknown", Stage(99).String())
}
