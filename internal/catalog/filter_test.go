package catalog

import (
	"reflect"
	"sort"
	"testing"

	"farmmarket/internal/domain"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func genFilter() gopter.Gen {
	return gopter.CombineGens(
		gen.OneConstOf(domain.CategoryAll, domain.CategoryOrganic, "Grains", "Vegetables", "Fruits", "Dairy", "Unknown"),
		gen.OneConstOf(domain.LocationAll, "Punjab", "Karnataka", "Maharashtra", "Nowhere"),
		gen.OneConstOf("", "organic", "RICE", "fresh", "zzz"),
		gen.Float64Range(0, 200),
		gen.Float64Range(200, 1000),
		gen.OneConstOf(SortPopular, SortPriceLow, SortPriceHigh, SortRating),
	).Map(func(values []interface{}) Filter {
		return Filter{
			Category:   values[0].(string),
			Location:   values[1].(string),
			Search:     values[2].(string),
			PriceRange: PriceRange{Min: values[3].(float64), Max: values[4].(float64)},
			SortBy:     values[5].(SortKey),
		}
	})
}

// Feature: farmer-marketplace, Property 3: Filtering is pure and selective
// Validates: Requirements 2.1, 2.4
func TestProperty_ApplyIsPureAndSelective(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("every result satisfies the criteria and the input is untouched", prop.ForAll(
		func(f Filter) bool {
			products := seedProducts()
			before := seedProducts()

			out := Apply(products, f)

			if !reflect.DeepEqual(products, before) {
				t.Log("FAIL: Apply mutated its input")
				return false
			}

			for _, p := range out {
				if !matches(p, f) {
					t.Logf("FAIL: Product %d does not satisfy filter %+v", p.ID, f)
					return false
				}
			}

			// Nothing that satisfies the criteria may be dropped.
			want := 0
			for _, p := range products {
				if matches(p, f) {
					want++
				}
			}
			if len(out) != want {
				t.Logf("FAIL: Expected %d results, got %d", want, len(out))
				return false
			}

			return true
		},
		genFilter(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

// Feature: farmer-marketplace, Property 4: Sorting is ordered and stable
// Validates: Requirements 2.2, 2.3
func TestProperty_SortOrdersResults(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("price-low ascends, price-high descends, rating descends", prop.ForAll(
		func(f Filter) bool {
			out := Apply(seedProducts(), f)

			switch f.SortBy {
			case SortPriceLow:
				if !sort.SliceIsSorted(out, func(i, j int) bool { return out[i].Price < out[j].Price }) {
					t.Log("FAIL: price-low result is not ascending")
					return false
				}
			case SortPriceHigh:
				if !sort.SliceIsSorted(out, func(i, j int) bool { return out[i].Price > out[j].Price }) {
					t.Log("FAIL: price-high result is not descending")
					return false
				}
			case SortRating:
				if !sort.SliceIsSorted(out, func(i, j int) bool { return out[i].Rating > out[j].Rating }) {
					t.Log("FAIL: rating result is not descending")
					return false
				}
			}
			return true
		},
		genFilter(),
	))

	properties.Property("applying the same filter twice gives the same result", prop.ForAll(
		func(f Filter) bool {
			first := Apply(seedProducts(), f)
			second := Apply(first, f)
			return reflect.DeepEqual(first, second)
		},
		genFilter(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestApply_DefaultFilterKeepsCatalogOrder(t *testing.T) {
	products := seedProducts()

	out := Apply(products, DefaultFilter())

	if !reflect.DeepEqual(out, products) {
		t.Fatal("default filter changed the catalog listing")
	}
}

func TestApply_OrganicCategorySelectsByFlag(t *testing.T) {
	f := DefaultFilter()
	f.Category = domain.CategoryOrganic

	out := Apply(seedProducts(), f)

	if len(out) == 0 {
		t.Fatal("expected organic products in the seed catalog")
	}
	for _, p := range out {
		if !p.Organic {
			t.Errorf("product %d (%s) is not organic", p.ID, p.Name)
		}
	}
}

func TestApply_SearchIsCaseInsensitiveSubstring(t *testing.T) {
	f := DefaultFilter()
	f.Search = "RICE"

	out := Apply(seedProducts(), f)

	if len(out) != 2 {
		t.Fatalf("expected 2 rice products, got %d", len(out))
	}
}

func TestApply_EmptyResultIsValid(t *testing.T) {
	f := DefaultFilter()
	f.Search = "no such product"

	out := Apply(seedProducts(), f)

	if out == nil || len(out) != 0 {
		t.Fatalf("expected empty non-nil result, got %v", out)
	}
}

func TestStore_FindByID(t *testing.T) {
	store := NewDefaultStore()

	p, ok := store.FindByID(1)
	if !ok || p.Name != "Organic Wheat" {
		t.Fatalf("expected Organic Wheat for id 1, got %+v (ok=%v)", p, ok)
	}

	if _, ok := store.FindByID(999); ok {
		t.Fatal("expected lookup miss for unknown id")
	}
}

func TestStore_CategoriesIncludeSyntheticEntries(t *testing.T) {
	store := NewDefaultStore()

	categories := store.Categories()

	if categories[0] != domain.CategoryAll {
		t.Errorf("first category = %q, want %q", categories[0], domain.CategoryAll)
	}
	if categories[len(categories)-1] != domain.CategoryOrganic {
		t.Errorf("last category = %q, want %q", categories[len(categories)-1], domain.CategoryOrganic)
	}
}
