package pattern

import (
	"strings"
	"testing"

	"github.com/ppiankov/sotd/internal/cache"
)

func TestResolver_TierPrecedence(t *testing.T) {
	first := MustTable("first", []Rule{{Canonical: "DG B2", Pattern: "B2"}})
	second := MustTable("second", []Rule{{Canonical: "Long Maker", Pattern: "maker.*b2.*badger"}})

	r := NewResolver("brush", []Tier{Static(first), Static(second)})

	got, ok := r.Resolve("maker b2 badger")
	if !ok || got != "DG B2" {
		t.Errorf("Expected first tier to win despite shorter pattern, got %q", got)
	}

	got, ok = r.Resolve("maker x badger")
	if ok {
		t.Errorf("Expected no match, got %q", got)
	}
}

func TestResolver_FallsThroughToLaterTier(t *testing.T) {
	first := MustTable("first", []Rule{{Canonical: "A", Pattern: "aaa"}})
	second := MustTable("second", []Rule{{Canonical: "B", Pattern: "bbb"}})

	r := NewResolver("test", []Tier{Static(first), Static(second)})

	if got, ok := r.Resolve("xx bbb"); !ok || got != "B" {
		t.Errorf("Expected B, got %q (ok=%v)", got, ok)
	}
}

func TestResolver_LazyTierBuiltOnlyWhenNeeded(t *testing.T) {
	builds := 0
	lazy := Lazy(func() *Table {
		builds++
		return MustTable("lazy", []Rule{{Canonical: "Late", Pattern: "late"}})
	})
	first := MustTable("first", []Rule{{Canonical: "Early", Pattern: "early"}})

	r := NewResolver("test", []Tier{Static(first), lazy}, WithMemo(nil))

	if got, _ := r.Resolve("early bird"); got != "Early" {
		t.Errorf("Expected Early, got %q", got)
	}
	if lazy.Built() {
		t.Error("Expected lazy tier not to be built while the first tier matches")
	}

	r.Resolve("late")
	r.Resolve("later")
	if builds != 1 {
		t.Errorf("Expected lazy tier to be built once, got %d", builds)
	}
}

func TestResolver_ShortcutBeatsTiers(t *testing.T) {
	table := MustTable("t", []Rule{{Canonical: "Omega Boar (model not specified)", Pattern: "omega"}})
	shortcut := func(text string) (string, bool) {
		if strings.Contains(text, "10049") {
			return "Omega 10049", true
		}
		return "", false
	}

	r := NewResolver("brush", []Tier{Static(table)}, WithShortcut(shortcut))

	if got, _ := r.Resolve("omega 10049"); got != "Omega 10049" {
		t.Errorf("Expected shortcut result, got %q", got)
	}
	if got, _ := r.Resolve("omega"); got != "Omega Boar (model not specified)" {
		t.Errorf("Expected table result, got %q", got)
	}
}

func TestResolver_NormalizerRunsFirst(t *testing.T) {
	table := MustTable("t", []Rule{{Canonical: "Semogue", Pattern: "semogue"}})
	r := NewResolver("brush", []Tier{Static(table)}, WithNormalizer(func(s string) string {
		return strings.ReplaceAll(strings.ToLower(s), "semouge", "semogue")
	}))

	if got, ok := r.Resolve("Semouge 1305"); !ok || got != "Semogue" {
		t.Errorf("Expected Semogue, got %q (ok=%v)", got, ok)
	}
}

func TestResolver_MemoizesResultsAndAbsence(t *testing.T) {
	memo := cache.NewMemo()
	table := MustTable("t", []Rule{{Canonical: "X", Pattern: "x"}})
	r := NewResolver("memo", []Tier{Static(table)}, WithMemo(memo))

	for i := 0; i < 3; i++ {
		if got, ok := r.Resolve("x"); !ok || got != "X" {
			t.Errorf("Expected X on call %d, got %q", i, got)
		}
		if _, ok := r.Resolve("nothing here"); ok {
			t.Errorf("Expected absence on call %d", i)
		}
	}

	if memo.Len() != 2 {
		t.Errorf("Expected 2 memoized entries, got %d", memo.Len())
	}
}

func TestResolver_Deterministic(t *testing.T) {
	rules := []Rule{
		{Canonical: "A", Pattern: "ab"},
		{Canonical: "B", Pattern: "ba"},
		{Canonical: "C", Pattern: "b"},
	}

	var first string
	for i := 0; i < 20; i++ {
		r := NewResolver("det", []Tier{Static(MustTable("t", rules))}, WithMemo(nil))
		got, _ := r.Resolve("bab")
		if i == 0 {
			first = got
		} else if got != first {
			t.Fatalf("Expected deterministic result %q, got %q", first, got)
		}
	}
	if first != "A" {
		t.Errorf("Expected A, got %q", first)
	}
}
