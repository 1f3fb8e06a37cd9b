package catalog

import (
	"github.com/ppiankov/sotd/internal/cache"
	"github.com/ppiankov/sotd/internal/pattern"
)

// KarveCB is the canonical razor whose plates can be extracted
const KarveCB = "Karve CB"

// NewRazorResolver creates the single-tier razor resolver.
// A nil memo disables memoization.
func NewRazorResolver(memo cache.Cache) *pattern.Resolver {
	return pattern.NewResolver("razor", []pattern.Tier{pattern.Static(RazorTable())}, pattern.WithMemo(memo))
}

// RazorTable compiles the razor aliases
func RazorTable() *pattern.Table {
	return pattern.MustTable("razor", pattern.Flatten(razorAliases))
}

// RazorNames lists every canonical razor name
func RazorNames() []string {
	return RazorTable().Canonicals()
}

// razorAliases is hand maintained. Add new razors and misspellings here.
// Remember that longer fragments are tried first: a generic fragment
// such as `gil.*new` must stay shorter than the specific ones it would shadow.
var razorAliases = []pattern.Alias{
	{Canonical: "Asylum Evolution", Patterns: []string{`asylum.*evo`}},
	{Canonical: "ATT H1", Patterns: []string{
		`ATT.*h-*1*`,
		`tie.*h-*1*`,
		`(atlas|bamboo|calypso|colossus|kronos).*h1*`,
	}},
	{Canonical: "ATT H2", Patterns: []string{
		`ATT.*h-*2`,
		`tie.*h-*2`,
		`(atlas|bamboo|calypso|colossus|kronos).*h2`,
	}},
	{Canonical: "ATT M1", Patterns: []string{
		`ATT.*m-*1*`,
		`tie.*m-*1*`,
		`(atlas|bamboo|calypso|colossus|kronos).*m1*`,
	}},
	{Canonical: "ATT M2", Patterns: []string{
		`ATT.*m-*2`,
		`tie.*m-*2`,
		`(atlas|bamboo|calypso|colossus|kronos).*m2`,
	}},
	{Canonical: "ATT R1", Patterns: []string{
		`ATT.*r-*1*`,
		`tie.*r-*1*`,
		`(atlas|bamboo|calypso|colossus|kronos).*r1*`,
	}},
	{Canonical: "ATT R2", Patterns: []string{
		`ATT.*r-*2`,
		`tie.*r-*2`,
		`(atlas|bamboo|calypso|colossus|kronos).*r2`,
	}},
	{Canonical: "ATT S1", Patterns: []string{
		`ATT.*s-*1*`,
		`tie.*s-*1*`,
		`(atlas|bamboo|calypso|colossus|kronos).*s1*`,
	}},
	{Canonical: "ATT S2", Patterns: []string{
		`ATT.*s-*2`,
		`tie.*s-*2`,
		`(atlas|bamboo|calypso|colossus|kronos).*s2`,
	}},
	{Canonical: "ATT SE1", Patterns: []string{
		`ATT.*se-*1*`,
		`tie.*se-*1*`,
		`(atlas|bamboo|calypso|colossus|kronos).*se1*`,
	}},
	{Canonical: "Baili BR1xx", Patterns: []string{`(baili|BR).*(1|2)\d{2}`}},
	{Canonical: "Bevel Razor", Patterns: []string{`bevel`}},
	{Canonical: "Blackland Blackbird", Patterns: []string{`black\s*bird`, `bb\s*(sb|oc)`, `brassbird`}},
	{Canonical: "Blackland Dart", Patterns: []string{`(^|\s)dart`}},
	{Canonical: "Blackland Sabre", Patterns: []string{`sabre`}},
	{Canonical: "Blackland Vector", Patterns: []string{`vector`}},
	{Canonical: "Boker Straight", Patterns: []string{`Boker`}},
	{Canonical: "Broman Razor", Patterns: []string{`broman`}},
	{Canonical: "Carbon Cx", Patterns: []string{`carbon.*cx`}},
	{Canonical: "Charcoal Goods Lvl 1", Patterns: []string{`char.*l.*(1|one)`, `cg.*l.*1`}},
	{Canonical: "Charcoal Goods Lvl 2", Patterns: []string{`char.*l.*(2|two)`, `cg.*l.*2`}},
	{Canonical: "Charcoal Goods Lvl 3", Patterns: []string{`char.*l.*(3|three)`, `cg.*l.*(3|three)`}},
	{Canonical: "Charcoal Goods Lithe Head", Patterns: []string{`lithe`}},
	{Canonical: "Cobra", Patterns: []string{`cobra.*(clas|razor)`, `classic.*cobra`, `^cobra$`}},
	{Canonical: "Colonial General", Patterns: []string{`col.*gener`, `general`, `colonial.*ac`}},
	{Canonical: "Colonial Silversmith", Patterns: []string{`silversmith`}},
	{Canonical: "Crescent City Closed Comb 79", Patterns: []string{`cres.*city.*79`}},
	{Canonical: "Dorco ST-301", Patterns: []string{`ST-*301`}},
	{Canonical: "Dorco PL-602", Patterns: []string{`pl-*602`}},
	{Canonical: "Dovo Straight", Patterns: []string{`dovo`}},
	{Canonical: "Edwin Jagger DE89", Patterns: []string{`DE\s*89`, `kelvin`, `edwi`, `(de|ej)\s*8\d`}},
	{Canonical: "Edwin Jagger 3one6", Patterns: []string{`3.*one.*6`}},
	{Canonical: "Ever Ready", Patterns: []string{`ever.*ready`, `er\s*19`, `er.*streamline`, `^streamline$`}},
	{Canonical: "Fatip Grande", Patterns: []string{`fa.*grande`}},
	{Canonical: "Fatip Gentile", Patterns: []string{`fa.*gentile`, `test.*genti.*`}},
	{Canonical: "Fatip Picollo", Patterns: []string{`fa.*picc*oll*o`}},
	{Canonical: "Feather AS-D2", Patterns: []string{`Feather.*as.*2`, `as-*d2`}},
	{Canonical: "Feather Popular", Patterns: []string{`Feather.*popular`}},
	{Canonical: "Feather DX", Patterns: []string{`Feather.*dx`, `feather.*artist.*club`}},
	{Canonical: "Feather SS", Patterns: []string{`feather.*ss`}},
	{Canonical: "Fine Marvel", Patterns: []string{`fine.*marvel`}},
	{Canonical: "Fine Superlight Slant", Patterns: []string{`superlight.*slant`, `fine.*slant`}},
	{Canonical: "Filarmonica Straight", Patterns: []string{`Filar*monica`}},
	{Canonical: "Futur Clone", Patterns: []string{`futur.*clone`, `Ming.*Shi.*(2000|adj)`, `qshave`}},
	{Canonical: "GEM", Patterns: []string{`GEM`}},
	{Canonical: "Gillette Aristocrat", Patterns: []string{`Aristocrat`, `Artisocrat`}},
	{Canonical: "Gillette Diplomat", Patterns: []string{`Diplomat`}},
	{Canonical: "Gillette Fatboy", Patterns: []string{`Fatboy`, `fat\s*boy`}},
	{Canonical: "Gillette Goodwill", Patterns: []string{`Gil.*et.*goodwill`}},
	{Canonical: "Gillette Guard", Patterns: []string{`Gil.*et.*guard`}},
	{Canonical: "Gillette Heritage", Patterns: []string{`Gil.*et.*heritage`}},
	{Canonical: "Gillette Knack", Patterns: []string{`Gil.*et.*knack`}},
	{Canonical: "Gillette Milord", Patterns: []string{`milord`}},
	// gil.*new is kept shorter than new.*improved so the latter is tried first
	{Canonical: "Gillette NEW", Patterns: []string{
		`gil.*new`,
		`bostonian`,
		`new.*(s|l)c`,
		`new.*(short|long).*comb`,
		`(british|english).*new`,
		`tuckaway`,
		`new.*luxe`,
		`rfb.*new`,
		`new.*rfb`,
		`gil.*et.*rfb`,
		`bottom.*new`,
		`big boy`,
	}},
	{Canonical: "Gillette New Improved", Patterns: []string{`new.*improved`}},
	{Canonical: "Gillette Old Type", Patterns: []string{
		`old.*type`,
		`pocket.*ed`,
		`(single|double).*ring`,
		`big.*fellow`,
		`gil.*et.*bulldog`,
	}},
	{Canonical: "Gillette President", Patterns: []string{`President`}},
	{Canonical: "Gillette Senator", Patterns: []string{`senator`}},
	{Canonical: "Gillette Sheraton", Patterns: []string{`sheraton`}},
	{Canonical: "Gillette Slim", Patterns: []string{
		`Gil.*Slim`,
		`slim.*adjust`,
		`\d\d.*slim`,
		`slim.*\d`,
		`^slim$`,
	}},
	{Canonical: "Gillette Super Adjustable", Patterns: []string{
		`Black.*Beauty`,
		`Super.*adjust`,
		`gil.*et.*bb`,
		`super.*109`,
	}},
	{Canonical: "Gillette Superspeed", Patterns: []string{
		`Super.*speed`,
		`(red|black|blue|flare).*tip`,
		`gillette.*tto(\W|$)`,
		`gil.*ss`,
		`\d\ds*\s*ss`,
		`TV special`,
		`gil.*rocket`,
		`rocket.*hd`,
	}},
	{Canonical: "Gillette Toggle", Patterns: []string{`Toggle`}},
	{Canonical: "Gillette Tech", Patterns: []string{`Tech`}},
	{Canonical: "Handlebar Shaving Company Dali", Patterns: []string{`handlebar.*dali`}},
	{Canonical: "Homelike START", Patterns: []string{`Homelike.*start`}},
	{Canonical: "iKon 101", Patterns: []string{`ikon.*101`}},
	{Canonical: "iKon 102", Patterns: []string{`ikon.*102`}},
	{Canonical: "iKon 103", Patterns: []string{`ikon.*103`}},
	{Canonical: "iKon B1", Patterns: []string{`ikon.*b1`}},
	{Canonical: "iKon SBS", Patterns: []string{`ikon.*sbs`}},
	{Canonical: "iKon X3", Patterns: []string{`ikon.*x3`}},
	{Canonical: "Karve CB", Patterns: []string{`Karve`, `christopher.*brad`}},
	{Canonical: "Kai Captain Kamisori", Patterns: []string{`Kai.*captain.*kami`}},
	{Canonical: "Koraat Straight", Patterns: []string{`Koraat`}},
	{Canonical: "Lady Gillette", Patterns: []string{`lady.*gil.*et`, `gil.*et.*lady`}},
	{Canonical: "LASSCo BBS-1", Patterns: []string{`BBS-*1`}},
	{Canonical: "Lord L6", Patterns: []string{`lord.*l6`}},
	{Canonical: "Maggard Slant", Patterns: []string{`mag.*ard.*slant`, `mr.*slant`}},
	{Canonical: "Maggard V2", Patterns: []string{`maggard.*V2`, `maggard.*(oc|open)`, `mr.*v2`}},
	{Canonical: "Maggard V3M", Patterns: []string{`maggard.*V3M`, `V3M`}},
	{Canonical: "Maggard V3A", Patterns: []string{`Maggard.*V3A`, `V3A`}},
	// a bare MRxx order is assumed to be a V3
	{Canonical: "Maggard V3", Patterns: []string{`Maggard.*V3`, `Maggard.*M3`, `V3`, `MR\d{1,2}`}},
	{Canonical: "Merkur 15C", Patterns: []string{`15c`}},
	{Canonical: "Merkur 23C", Patterns: []string{`23c`}},
	{Canonical: "Merkur 24C", Patterns: []string{`24c`}},
	{Canonical: "Merkur 33C", Patterns: []string{`33c`}},
	{Canonical: "Merkur 34C", Patterns: []string{`34c`}},
	{Canonical: "Merkur 37C", Patterns: []string{`37c`}},
	{Canonical: "Merkur 38C", Patterns: []string{`38c`}},
	{Canonical: "Merkur 39C", Patterns: []string{`39c`}},
	{Canonical: "Merkur 41C", Patterns: []string{`41c`}},
	{Canonical: "Merkur 43C", Patterns: []string{`43c`}},
	{Canonical: "Merkur 45", Patterns: []string{`merkur.*45`}},
	{Canonical: "Merkur Futur", Patterns: []string{`futur`}},
	{Canonical: "Merkur Mergress", Patterns: []string{`mergress`, `digress`}},
	{Canonical: "Merkur Progress", Patterns: []string{`progress`}},
	{Canonical: "Merkur Vision", Patterns: []string{`vision`}},
	{Canonical: "Mongoose", Patterns: []string{`goose`}},
	{Canonical: "Muhle R41", Patterns: []string{`R41`}},
	{Canonical: "Muhle R89", Patterns: []string{`R10\d`, `R89`, `muhle.*89`}},
	{Canonical: "Muhle Rocca", Patterns: []string{`rocca`}},
	{Canonical: "Noble Otter DE", Patterns: []string{`NOC(1|2)`, `NO(1|2)C`}},
	{Canonical: "Oberon Safety Razor", Patterns: []string{`Oberon`}},
	{Canonical: "Occams Razor Enoch", Patterns: []string{`enoch`}},
	{Canonical: "OneBlade Core", Patterns: []string{`oneblade.*core`}},
	{Canonical: "OneBlade Genesis", Patterns: []string{`oneblade.*genesis`}},
	{Canonical: "OneBlade Hybrid", Patterns: []string{`oneblade.*hybrid`}},
	{Canonical: "Other Shavette", Patterns: []string{`shavette`}},
	{Canonical: "Other Straight Razor", Patterns: []string{
		`hollow`,
		`\d\/\d`,
		`frameback`,
		`kamisori`,
		`straig`,
		`joseph\s*(elliot|allen)`,
		`fred.*Reynolds`,
		`gold.*dollar`,
		`wedge`,
		`french.*point`,
		`dubl.*duck`,
		`&\s+son`,
		`engels`,
		`Wostenholm`,
		`suzumasa`,
		`wester.*brothers`,
		`green.*lizard`,
		`Cattaraugus`,
		`Heljstrand`,
		`friedr.*herd`,
		`friodur`,
		`Henckels`,
		`henkels`,
		`torrey`,
		`tornblom`,
		`Issard`,
	}},
	{Canonical: "PAA Alpha Ecliptic", Patterns: []string{`alpha.*ecli`}},
	{Canonical: "PAA Bakelite Slant", Patterns: []string{`(phoenix|paa).*bake.*slant`}},
	{Canonical: "PAA DOC", Patterns: []string{`(phoenix|paa).*doc`, `(phoenix|paa).*double.*comb`}},
	{Canonical: "Paradigm 17-4", Patterns: []string{`parad.*17`}},
	{Canonical: "Paradigm SE", Patterns: []string{`parad.*se`}},
	{Canonical: "Paradigm Ti", Patterns: []string{`parad.*ti`}},
	{Canonical: "Paradigm Ti II", Patterns: []string{`parad.*ii`}},
	{Canonical: "Parker 24C", Patterns: []string{`parker.*24C`}},
	{Canonical: "Parker 29L", Patterns: []string{`29L`}},
	{Canonical: "Parker 60R", Patterns: []string{`60R`}},
	{Canonical: "Parker 66R", Patterns: []string{`66R`}},
	{Canonical: "Parker 87R", Patterns: []string{`87R`}},
	{Canonical: "Parker 90R", Patterns: []string{`90R`}},
	{Canonical: "Parker 96R", Patterns: []string{`96R`}},
	{Canonical: "Parker 98R", Patterns: []string{`98R`}},
	{Canonical: "Parker 99R", Patterns: []string{`99R`}},
	{Canonical: "Parker 111W", Patterns: []string{`111W`}},
	{Canonical: "Parker SRX", Patterns: []string{`parker.*srx`}},
	{Canonical: "Parker Variant", Patterns: []string{`variant`}},
	{Canonical: "Pearl L-55", Patterns: []string{`Pearl L-55`}},
	{Canonical: "PILS", Patterns: []string{`pils.*10`, `^pils$`}},
	{Canonical: "Portland Razor Co. Straight", Patterns: []string{`portland.*razor`}},
	{Canonical: "QShave Parthenon", Patterns: []string{`parthenon`}},
	{Canonical: "Ralf Aust Straight", Patterns: []string{`ralf.*aust`}},
	{Canonical: "Raw Shaving RS-10", Patterns: []string{`rs-*10`}},
	{Canonical: "Razorine", Patterns: []string{`razorine`}},
	{Canonical: "Razorock Baby Smooth", Patterns: []string{`ba*by.*smooth`}},
	{Canonical: "Razorock Game Changer .84", Patterns: []string{`game.*changer.*84`, `gc.*84`, `game.*changer`}},
	{Canonical: "Razorock Game Changer .68", Patterns: []string{`game.*changer.*68`, `gc.*68`}},
	{Canonical: "Razorock German 37 Slant", Patterns: []string{
		`r.*r.*german.*37`,
		`r.*r.*slant.*37`,
		`r.*r.*37.*slant`,
	}},
	{Canonical: "Razorock Hawk (v1 or v2)", Patterns: []string{`hawk`, `hawk*.*v`}},
	{Canonical: "Razorock Lupo", Patterns: []string{`Lupp*o`}},
	{Canonical: "Razorock Mamba", Patterns: []string{`mamba`}},
	{Canonical: "Razorock MJ-90", Patterns: []string{`mj-*90`}},
	{Canonical: "Razorock SLOC", Patterns: []string{`r*.r*.*sloc`}},
	{Canonical: "Razorock Stealth Slant", Patterns: []string{`r*.r*.*stealth.*slant`}},
	{Canonical: "Razorock Teck II", Patterns: []string{`r.*r.*teck`}},
	{Canonical: "Razorock Wunderbar Slant", Patterns: []string{`wunderbar`}},
	{Canonical: "Rex Ambassador", Patterns: []string{`rex.*ambassador`, `ambassador.*rex`, `rex.*\d`}},
	{Canonical: "Rex Envoy", Patterns: []string{`envoy`}},
	{Canonical: "Rockwell 2C", Patterns: []string{`Rockwell.*2C`, `2C`}},
	{Canonical: "Rockwell 6C", Patterns: []string{`Rockwell.*6C`, `Rockwell`, `6c`}},
	{Canonical: "Rockwell 6S", Patterns: []string{`Rockwell.*6S`, `6s`}},
	{Canonical: "Rocnel Elite 2019", Patterns: []string{`Roc.*elite.*2019`, `2019.*Roc.*elite`}},
	{Canonical: "Rolls Razor", Patterns: []string{`rolls.*razor`}},
	{Canonical: "Schick Hydromagic", Patterns: []string{`hydro[\-\s]*magic`}},
	{Canonical: "Schick Injector", Patterns: []string{
		`Schick.*Injector`,
		`schick.*type`,
		`golden.*500`,
		`schick.*grip`,
		`schick.*\w\d`,
	}},
	{Canonical: "Schick Krona", Patterns: []string{`krona`}},
	{Canonical: "Standard Razor", Patterns: []string{
		`standard.*razor`,
		`^standard$`,
		`standard.*(black|raw)`,
		`(raw|black).*standard`,
	}},
	{Canonical: "Stirling Slant", Patterns: []string{`stirling.*slant`}},
	{Canonical: "Stirling DE3P7S", Patterns: []string{`DE3P7S`}},
	{Canonical: "Supply SE", Patterns: []string{`sup.*ly.*inject`, `sup.*ly.*2`, `supply.*se`}},
	{Canonical: "Tatara Nodachi", Patterns: []string{`nodachi`}},
	// matusumi is a common misspelling
	{Canonical: "Tatara Masamune", Patterns: []string{`masamune`, `Matusumi`, `tatara`}},
	{Canonical: "Timeless (Unspecified)", Patterns: []string{`Timeless`}},
	{Canonical: "Timeless .68", Patterns: []string{`Timeless.*68`, `t(i|l).*68`}},
	{Canonical: "Timeless .95", Patterns: []string{`Timeless.*95`, `95.*timeless`}},
	{Canonical: "Timeless Bronze", Patterns: []string{`Timeless.*bronze`}},
	{Canonical: "The Holy Black SR-71", Patterns: []string{`sr-*71`}},
	{Canonical: "Tradere", Patterns: []string{`tradere`}},
	{Canonical: "Van Der Hagen Razor", Patterns: []string{`Van Der Haa*gen`, `vdh`}},
	{Canonical: "Wade & Butcher Straight", Patterns: []string{`wade.*butcher`, `w&b`}},
	{Canonical: "Weck Sextoblade", Patterns: []string{`Sextoblade`}},
	{Canonical: "WCS 77", Patterns: []string{`77-*S`, `WCS.*77`}},
	{Canonical: "WCS 78", Patterns: []string{`78-*BL`, `78M`, `WCS.*78`}},
	{Canonical: "WCS 84", Patterns: []string{`84-*R*B`, `WCS.*84`}},
	{Canonical: "WCS 88", Patterns: []string{`88-*S`, `WCS.*88`}},
	{Canonical: "WCS/Charcoal Goods - El Capitan", Patterns: []string{`el\s*capitan`}},
	{Canonical: "WCS/Charcoal Goods - Hyperion", Patterns: []string{`hyperion`}},
	{Canonical: "WCS/Charcoal Goods - Hollywood Palm", Patterns: []string{`hollywood.*palm`}},
	{Canonical: "Weber ARC", Patterns: []string{`weber.*arc`}},
	{Canonical: "Weber DLC", Patterns: []string{`weber.*dlc`}},
	{Canonical: "Weber PH", Patterns: []string{`weber.*ph`}},
	{Canonical: "Wilkinson Sword Classic", Patterns: []string{`wilk.*sword.*clas`}},
	{Canonical: "Wolfman Guerilla", Patterns: []string{
		`guerr*ill*a`,
		`wolf.*uag`,
		`^uag$`,
		`^uag`,
		`uag$`,
		`uag\s*razor`,
	}},
	// plain "Wolfman" is assumed to be a WR1
	{Canonical: "Wolfman WR1", Patterns: []string{`Wolfman.*WR-*1`, `Wolfman`, `WR-*1`}},
	{Canonical: "Wolfman WR2", Patterns: []string{`Wolfman.*WR-*2`, `WR-*2`}},
	{Canonical: "Yates 921", Patterns: []string{`921-*\w`, `yates.*921`}},
	{Canonical: "Yaqi Slant", Patterns: []string{`yaqi.*slant`}},
}

