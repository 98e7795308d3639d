package service

import (
	"math/rand"
	"testing"

	"github.com/everbuy/internal/constants"
	"github.com/everbuy/internal/models"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func productIDs(products []models.Product) []uint {
	ids := make([]uint, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestFilterAndSortDefaultReturnsCatalogOrder(t *testing.T) {
	got := FilterAndSort(models.CatalogProducts(), ListingQuery{})
	want := []uint{1, 2, 3, 4, 5, 6, 7, 8, 9}
	if diff := cmp.Diff(want, productIDs(got)); diff != "" {
		t.Fatalf("default listing mismatch (-want +got):\n%s", diff)
	}
}

func TestFilterAndSortSearchIsCaseInsensitive(t *testing.T) {
	got := FilterAndSort(models.CatalogProducts(), ListingQuery{Search: "watch"})
	require.Len(t, got, 1)
	assert.Equal(t, "Smart Watch", got[0].Name)

	got = FilterAndSort(models.CatalogProducts(), ListingQuery{Search: "WIRELESS"})
	assert.Equal(t, []uint{1, 6}, productIDs(got))
}

func TestFilterAndSortSearchKeepsWhitespace(t *testing.T) {
	got := FilterAndSort(models.CatalogProducts(), ListingQuery{Search: "phone "})
	assert.Equal(t, []uint{9}, productIDs(got))

	got = FilterAndSort(models.CatalogProducts(), ListingQuery{Search: "phone"})
	assert.Equal(t, []uint{1, 9}, productIDs(got))

	got = FilterAndSort(models.CatalogProducts(), ListingQuery{Search: " wireless"})
	assert.Empty(t, got)
}

func TestFilterAndSortCategoryExactMatch(t *testing.T) {
	got := FilterAndSort(models.CatalogProducts(), ListingQuery{Category: "Computing"})
	assert.Equal(t, []uint{5, 6, 7}, productIDs(got))

	got = FilterAndSort(models.CatalogProducts(), ListingQuery{Category: "computing"})
	assert.Empty(t, got)
}

func TestFilterAndSortNoResults(t *testing.T) {
	got := FilterAndSort(models.CatalogProducts(), ListingQuery{Search: "zzz"})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFilterAndSortOrders(t *testing.T) {
	catalog := models.CatalogProducts()
	cases := []struct {
		sort string
		want []uint
	}{
		{constants.SortPriceLow, []uint{9, 6, 4, 8, 3, 5, 7, 1, 2}},
		{constants.SortPriceHigh, []uint{2, 1, 7, 5, 3, 8, 4, 6, 9}},
		{constants.SortRating, []uint{2, 7, 4, 1, 5, 3, 9, 6, 8}},
		{constants.SortName, []uint{3, 7, 4, 9, 2, 5, 8, 1, 6}},
		{"bogus", []uint{1, 2, 3, 4, 5, 6, 7, 8, 9}},
	}
	for _, tc := range cases {
		got := productIDs(FilterAndSort(catalog, ListingQuery{Sort: tc.sort}))
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Fatalf("sort %q mismatch (-want +got):\n%s", tc.sort, diff)
		}
	}
}

func TestFilterAndSortNameIgnoresCase(t *testing.T) {
	products := []models.Product{
		{ID: 1, Name: "cherry"},
		{ID: 2, Name: "Banana"},
		{ID: 3, Name: "apple"},
		{ID: 4, Name: "banana"},
	}
	got := FilterAndSort(products, ListingQuery{Sort: constants.SortName})
	assert.Equal(t, "apple", got[0].Name)
	assert.ElementsMatch(t, []uint{2, 4}, productIDs(got[1:3]))
	assert.Equal(t, "cherry", got[3].Name)
}

func TestFilterAndSortRatingTiesKeepCatalogOrder(t *testing.T) {
	// 3 and 9 share rating 4.3
	got := productIDs(FilterAndSort(models.CatalogProducts(), ListingQuery{Sort: constants.SortRating}))
	idx3, idx9 := -1, -1
	for i, id := range got {
		switch id {
		case 3:
			idx3 = i
		case 9:
			idx9 = i
		}
	}
	assert.Less(t, idx3, idx9)
}

func TestFilterAndSortFiltersCommute(t *testing.T) {
	catalog := models.CatalogProducts()
	searches := []string{"", "a", "e", "wireless", "hub", "case"}
	categories := []string{"all", "Audio", "Computing", "Accessories", "Electronics"}

	for _, search := range searches {
		for _, category := range categories {
			combined := FilterAndSort(catalog, ListingQuery{Search: search, Category: category})
			searchFirst := FilterAndSort(FilterAndSort(catalog, ListingQuery{Search: search}), ListingQuery{Category: category})
			categoryFirst := FilterAndSort(FilterAndSort(catalog, ListingQuery{Category: category}), ListingQuery{Search: search})
			if diff := cmp.Diff(productIDs(searchFirst), productIDs(categoryFirst)); diff != "" {
				t.Fatalf("filters do not commute for %q/%q:\n%s", search, category, diff)
			}
			if diff := cmp.Diff(productIDs(combined), productIDs(searchFirst)); diff != "" {
				t.Fatalf("combined filter differs for %q/%q:\n%s", search, category, diff)
			}
		}
	}
}

func TestFilterAndSortIsStableOnShuffledInput(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for round := 0; round < 20; round++ {
		catalog := models.CatalogProducts()
		rng.Shuffle(len(catalog), func(i, j int) { catalog[i], catalog[j] = catalog[j], catalog[i] })
		position := make(map[uint]int, len(catalog))
		for i, p := range catalog {
			position[p.ID] = i
		}

		got := FilterAndSort(catalog, ListingQuery{Sort: constants.SortRating})
		for i := 1; i < len(got); i++ {
			prev, cur := got[i-1], got[i]
			require.GreaterOrEqual(t, prev.Rating, cur.Rating)
			if prev.Rating == cur.Rating {
				require.Less(t, position[prev.ID], position[cur.ID], "round %d tie order broken", round)
			}
		}
	}
}

func TestFilterAndSortDoesNotMutateInput(t *testing.T) {
	catalog := models.CatalogProducts()
	before := productIDs(catalog)

	FilterAndSort(catalog, ListingQuery{Sort: constants.SortPriceHigh})
	FilterAndSort(catalog, ListingQuery{Sort: constants.SortName, Search: "a"})

	assert.Equal(t, before, productIDs(catalog))
}

func TestListingQueryNormalizeAndReset(t *testing.T) {
	q := ListingQuery{Search: "  mouse ", Category: " ", Sort: "PRICE-LOW"}.Normalize()
	assert.Equal(t, ListingQuery{Search: "  mouse ", Category: "all", Sort: "price-low"}, q)
	assert.NotEqual(t, ListingQuery{Search: "phone "}.CacheKey(), ListingQuery{Search: "phone"}.CacheKey())

	reset := ListingQuery{Search: "mouse", Category: "Computing", Sort: "rating"}.Reset()
	assert.Equal(t, ListingQuery{Search: "", Category: "all", Sort: "rating"}, reset)
	assert.False(t, reset.IsDefault())
	assert.True(t, ListingQuery{}.IsDefault())
}
