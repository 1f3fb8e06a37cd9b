package catalog

import (
	"regexp"
	"sort"
	"strings"

	"github.com/ppiankov/sotd/internal/cache"
	"github.com/ppiankov/sotd/internal/pattern"
)

// Material is the knot material of a brush
type Material string

const (
	Badger    Material = "Badger"
	Boar      Material = "Boar"
	Synthetic Material = "Synthetic"
	Horse     Material = "Horse"
)

// MakerProfile identifies a brush maker and the knot it sells by default
type MakerProfile struct {
	Name     string
	Patterns []string
	Default  Material
}

// MaterialFixup turns a maker match into a maker+material canonical name.
// Template holds {maker} and {material} placeholders. An empty Detect
// matches any text and names the maker's default material.
type MaterialFixup struct {
	Template string
	Material Material
	Detect   string
}

const (
	badgerKeywords    = `(hmw|high.*mo|(2|3)band|shd|badger|silvertip|gelo|bulb|fan|finest|best|two\s*band)`
	boarKeywords      = `(boar)`
	horseKeywords     = `(horse)`
	syntheticKeywords = `(timber|tux|mew|silk|synt|synbad|2bed|captain|cashmere|faux.*horse|black.*(mag|wolf)|g4|boss)`
)

// StandardFixups is the material split applied to every standard maker
var StandardFixups = []MaterialFixup{
	{Template: "{maker} {material}", Material: Badger, Detect: badgerKeywords},
	{Template: "{maker} {material}", Material: Boar, Detect: boarKeywords},
	{Template: "{maker} {material}", Material: Synthetic, Detect: syntheticKeywords},
	{Template: "{maker} {material}", Material: Horse, Detect: horseKeywords},
	{Template: "{maker} {material}"},
}

// SynthesizeMakers builds one compound rule per maker pattern and fixup:
// the maker pattern, then ".*", then the material keywords. A material
// named before the maker in the text is therefore not detected.
func SynthesizeMakers(makers []MakerProfile, fixups []MaterialFixup) []pattern.Rule {
	var rules []pattern.Rule
	for _, m := range makers {
		for _, p := range m.Patterns {
			for _, f := range fixups {
				material := f.Material
				if f.Detect == "" {
					material = m.Default
				}
				canonical := strings.NewReplacer("{maker}", m.Name, "{material}", string(material)).Replace(f.Template)
				rules = append(rules, pattern.Rule{
					Canonical: canonical,
					Pattern:   p + ".*" + f.Detect,
				})
			}
		}
	}
	return rules
}

// BrushApplyFirstTable compiles the overrides tried before any maker
func BrushApplyFirstTable() *pattern.Table {
	return pattern.MustTable("brush-apply-first", pattern.Flatten(brushApplyFirst))
}

// BrushMakerTable compiles the synthesized maker x material table
func BrushMakerTable() *pattern.Table {
	return pattern.MustTable("brush-makers", SynthesizeMakers(brushMakers, StandardFixups))
}

// NewBrushResolver creates the two-tier brush resolver. The maker tier is
// synthesized on first use. A nil memo disables memoization.
func NewBrushResolver(memo cache.Cache) *pattern.Resolver {
	return pattern.NewResolver("brush",
		[]pattern.Tier{
			pattern.Static(BrushApplyFirstTable()),
			pattern.Lazy(BrushMakerTable),
		},
		pattern.WithNormalizer(normalizeBrush),
		pattern.WithShortcut(modelNumberShortcut),
		pattern.WithMemo(memo),
	)
}

// BrushNames lists every canonical brush name reachable through the tables.
// Omega and Semogue model numbers are open ended and not listed.
func BrushNames() []string {
	seen := make(map[string]bool)
	var names []string
	for _, t := range []*pattern.Table{BrushApplyFirstTable(), BrushMakerTable()} {
		for _, n := range t.Canonicals() {
			if !seen[n] {
				seen[n] = true
				names = append(names, n)
			}
		}
	}
	sort.Strings(names)
	return names
}

func normalizeBrush(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), "semouge", "semogue")
}

var (
	bulkBrandRe = regexp.MustCompile(`(?i)(omega|semogue)`)
	modelNumRe  = regexp.MustCompile(`[A-Za-z]*\d{3,}`)
)

// modelNumberShortcut names Omega and Semogue brushes by model number,
// which are too many to list as patterns
func modelNumberShortcut(name string) (string, bool) {
	brand := bulkBrandRe.FindStringSubmatch(name)
	model := modelNumRe.FindString(name)
	if brand == nil || model == "" {
		return "", false
	}
	return titleCase(brand[1]) + " " + model, true
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

// brushApplyFirst holds short, specific names that would otherwise lose to
// longer maker patterns (Declaration batches and the like).
var brushApplyFirst = []pattern.Alias{
	{Canonical: "DG B1", Patterns: []string{`B1(\s|$)`}},
	{Canonical: "DG B2", Patterns: []string{`B2`}},
	{Canonical: "DG B3", Patterns: []string{`B3`}},
	{Canonical: "DG B4", Patterns: []string{`B4`}},
	{Canonical: "DG B5", Patterns: []string{`B5`}},
	{Canonical: "DG B6", Patterns: []string{`B6`}},
	{Canonical: "DG B7", Patterns: []string{`B7`}},
	{Canonical: "DG B8", Patterns: []string{`B8`}},
	{Canonical: "DG B9A+", Patterns: []string{`B9A\+`, `b9.*alpha.*plus`}},
	{Canonical: "DG B9A", Patterns: []string{`B9A`, `b9.*alpha`}},
	{Canonical: "DG B9B", Patterns: []string{`B9B`, `b9.*bravo`}},
	{Canonical: "DG B10", Patterns: []string{`b10`}},
	{Canonical: "Stirling Synthetic", Patterns: []string{`stirl.*kong`}},
	{Canonical: "r/wetshaving Semogue Brushbutt Boar", Patterns: []string{`brushbutt`}},
	{Canonical: "Omega Boar (model not specified)", Patterns: []string{`^omega\s*boar$`}},
	{Canonical: "Semogue Boar (model not specified)", Patterns: []string{`^semogue\s*boar$`}},
	{Canonical: "Hand Lather", Patterns: []string{`^\s*hands*\s*$`, `hand.*lather`}},
}

// brushMakers is hand maintained.
//
// The Holy Black and The Golden Nib share their identification patterns.
// The Holy Black is authored first so it wins; the Golden Nib copies are
// reported by Table.Duplicates.
var brushMakers = []MakerProfile{
	{Name: "Alpha", Patterns: []string{`alpha`}, Default: Synthetic},
	{Name: "Anbbas", Patterns: []string{`anbbas`}, Default: Synthetic},
	{Name: "AP Shave Co", Patterns: []string{`AP\s*shav`}, Default: Synthetic},
	{Name: "Art of Shaving", Patterns: []string{`^\s*aos`, `art.*of.*sha`}, Default: Badger},
	{Name: "B&M", Patterns: []string{`b\s*(&|a)\s*m`, `barrister`}, Default: Synthetic},
	{Name: "Beaumont", Patterns: []string{`bea.{1,3}mont`}, Default: Badger},
	{Name: "Black Anvil", Patterns: []string{`black.*anv`}, Default: Badger},
	{Name: "Brad Sears", Patterns: []string{`brad.*sears`}, Default: Badger},
	{Name: "Bristle Brushwerks", Patterns: []string{`huck`, `bristle.*brush`}, Default: Badger},
	{Name: "Brushcraft", Patterns: []string{`brushcraft`}, Default: Synthetic},
	{Name: "Carnavis & Richardson", Patterns: []string{`carn.*rich`}, Default: Synthetic},
	{Name: "Catalin", Patterns: []string{`catalin`}, Default: Badger},
	{Name: "CaYuen", Patterns: []string{`cayuen`}, Default: Synthetic},
	{Name: "Craving Shaving", Patterns: []string{`crav.*shav`}, Default: Synthetic},
	{Name: "Cremo", Patterns: []string{`cremo`}, Default: Horse},
	{Name: "Crescent City Craftsman", Patterns: []string{`cres.*city`}, Default: Synthetic},
	{Name: "Declaration (Batch not Specified)", Patterns: []string{`declaration`}, Default: Badger},
	{Name: "DSCosmetics", Patterns: []string{`DS\s*Cosmetic`, `DSC`}, Default: Synthetic},
	{Name: "Dogwood", Patterns: []string{`dogw`, `dogc*l`, `^voa`}, Default: Badger},
	{Name: "Doug Korn", Patterns: []string{`doug\s*korn`}, Default: Badger},
	{Name: "Dubl Duck", Patterns: []string{`dubl.*duck`}, Default: Boar},
	{Name: "Edwin Jagger", Patterns: []string{`edwin.*jag`}, Default: Badger},
	{Name: "El Druida", Patterns: []string{`druida`}, Default: Badger},
	{Name: "Elite", Patterns: []string{`elite`}, Default: Badger},
	{Name: "Erskine", Patterns: []string{`erskine`}, Default: Boar},
	{Name: "Ever Ready", Patterns: []string{`ever.*read`}, Default: Badger},
	{Name: "Executive Shaving", Patterns: []string{`execut.*shav`}, Default: Synthetic},
	{Name: "Fine", Patterns: []string{`fine\s`}, Default: Synthetic},
	{Name: "Firehouse Potter", Patterns: []string{`fireh.*pott`}, Default: Synthetic},
	{Name: "Fendrihan", Patterns: []string{`fendri`}, Default: Badger},
	{Name: "Frank Shaving", Patterns: []string{`frank.*sha`}, Default: Synthetic},
	{Name: "Geo F. Trumper", Patterns: []string{`geo.*trumper`}, Default: Badger},
	{Name: "Grizzly Bay", Patterns: []string{`griz.*bay`}, Default: Badger},
	{Name: "Haircut & Shave Co", Patterns: []string{`haircut.*shave`}, Default: Badger},
	{Name: "Heritage Collection", Patterns: []string{`heritage`}, Default: Badger},
	{Name: "L'Occitane en Provence", Patterns: []string{`oc*citane`}, Default: Synthetic},
	{Name: "Lancaster Brushworks", Patterns: []string{`lancaster`}, Default: Synthetic},
	{Name: "Leonidam", Patterns: []string{`leonidam`, `leo.*nem`}, Default: Badger},
	{Name: "Liojuny Shaving", Patterns: []string{`liojuny`}, Default: Synthetic},
	{Name: "Lutin Brushworks", Patterns: []string{`lutin`}, Default: Synthetic},
	{Name: "Maggard", Patterns: []string{`maggard`}, Default: Synthetic},
	{Name: "Maseto", Patterns: []string{`maseto`}, Default: Badger},
	{Name: "Mojo", Patterns: []string{`mojo`}, Default: Badger},
	{Name: "Mondial", Patterns: []string{`mondial`}, Default: Boar},
	{Name: "Morris & Forndran", Patterns: []string{`morris`, `m\s*&\s*f`}, Default: Badger},
	{Name: "Mozingo", Patterns: []string{`mozingo`}, Default: Badger},
	{Name: "Muhle", Patterns: []string{`muhle`}, Default: Badger},
	{Name: "Mutiny", Patterns: []string{`mutiny`}, Default: Synthetic},
	{Name: "Noble Otter", Patterns: []string{`noble`, `no\s*\d{2}mm`}, Default: Badger},
	{Name: "NY Shave Co", Patterns: []string{`ny\s.*shave.*co`}, Default: Badger},
	{Name: "Omega EVO", Patterns: []string{`omega.*evo`, `evo.*omega`}, Default: Synthetic},
	{Name: "Oumo", Patterns: []string{`oumo`}, Default: Badger},
	{Name: "Oz Shaving", Patterns: []string{`oz.*sha`}, Default: Synthetic},
	{Name: "PAA", Patterns: []string{`paa`}, Default: Synthetic},
	{Name: "Paladin", Patterns: []string{`paladin`}, Default: Badger},
	{Name: "Parker", Patterns: []string{`parker`}, Default: Badger},
	{Name: "Plisson", Patterns: []string{`plisson`}, Default: Badger},
	{Name: "Prometheus Handcrafts", Patterns: []string{`promethe`}, Default: Synthetic},
	{Name: "Razorock", Patterns: []string{`Razorr*ock`, `(^|\s)rr\s`, `plissoft`, `razor rock`}, Default: Synthetic},
	{Name: "Rubberset", Patterns: []string{`rubberset`}, Default: Badger},
	{Name: "Rudy Vey", Patterns: []string{`rudy.*vey`}, Default: Badger},
	{Name: "Rick Montalvo", Patterns: []string{`montalv`}, Default: Synthetic},
	{Name: "Sawdust Creation Studios", Patterns: []string{`sawdust`}, Default: Synthetic},
	{Name: "Semogue Owners Club", Patterns: []string{`SOC`, `sem.*owner.*club`}, Default: Boar},
	{Name: "Shavemac", Patterns: []string{`shavemac`}, Default: Badger},
	{Name: "Shore Shaving", Patterns: []string{`shore.*shav`}, Default: Synthetic},
	{Name: "Simpson", Patterns: []string{`simpson`, `duke`, `chubby.*2`}, Default: Badger},
	{Name: "Some Making Required", Patterns: []string{`some.*maki`}, Default: Synthetic},
	{Name: "Spiffo", Patterns: []string{`spiffo`}, Default: Badger},
	{Name: "Stirling", Patterns: []string{`stirl`}, Default: Badger},
	{Name: "Strike Gold Shave", Patterns: []string{`strike.*gold`}, Default: Synthetic},
	{Name: "Supply", Patterns: []string{`supply`}, Default: Synthetic},
	{Name: "Teton Shaves", Patterns: []string{`teton`}, Default: Badger},
	{Name: "The Bluebeard's Revenge", Patterns: []string{`bluebeard.*rev`}, Default: Synthetic},
	{Name: "The Holy Black", Patterns: []string{`tgn`, `golden.*nib`}, Default: Synthetic},
	{Name: "The Golden Nib", Patterns: []string{`tgn`, `golden.*nib`}, Default: Boar},
	{Name: "The Varlet", Patterns: []string{`varlet`}, Default: Badger},
	{Name: "Tony Forsyth", Patterns: []string{`tony.*fors`}, Default: Badger},
	{Name: "That Darn Rob", Patterns: []string{`darn.*rob`, `tdr`}, Default: Badger},
	{Name: "Thater", Patterns: []string{`thater`}, Default: Badger},
	{Name: "TOBS", Patterns: []string{`tobs`, `taylor.*bond`}, Default: Badger},
	{Name: "Turn-N-Shave", Patterns: []string{`turn.{1,5}shave`, `tns`}, Default: Badger},
	{Name: "Vie Long", Patterns: []string{`vie.*long`}, Default: Horse},
	{Name: "Viking", Patterns: []string{`viking`}, Default: Badger},
	{Name: "Vintage Blades", Patterns: []string{`vintage.*blades`}, Default: Badger},
	{Name: "Virginia Cheng", Patterns: []string{`virginia.*cheng`}, Default: Badger},
	{Name: "WCS", Patterns: []string{`wcs`, `west.*coast`}, Default: Synthetic},
	{Name: "Whipped Dog", Patterns: []string{`whipped.*dog`}, Default: Badger},
	{Name: "Wolf Whiskers", Patterns: []string{`wolf.*whis`}, Default: Badger},
	{Name: "Wild West Brushworks", Patterns: []string{`wild.*west`, `wwb`, `ww.*brushw`}, Default: Synthetic},
	{Name: "Yaqi", Patterns: []string{`yaqu*i`}, Default: Synthetic},
	{Name: "Zenith", Patterns: []string{`zenith`}, Default: Boar},
}
