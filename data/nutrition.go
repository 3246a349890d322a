// Package data ships the static nutrition index: a build-time, read-only
// mapping from normalized food names to per-portion nutrition values.
// Nothing here is fetched at runtime; the resolver receives the index as
// an injected asset so it stays testable against fixture tables.
package data

// IndexVersion identifies the revision of the bundled table.
const IndexVersion = "2024-06"

// Nutrition holds per-unit values for one index entry.
type Nutrition struct {
	Calories float64 // kcal per unit
	Sugar    float64 // grams per unit
	PerUnit  string  // display unit the values refer to
}

// Index maps a normalized (lower-case, trimmed) food name to its
// nutrition values.
type Index map[string]Nutrition

// DefaultIndex returns the bundled table. Callers must treat it as
// read-only.
func DefaultIndex() Index { return defaultIndex }

// Values are typical Turkish home portions; calories kcal, sugar grams.
var defaultIndex = Index{
	"pilav":              {Calories: 210, Sugar: 0.2, PerUnit: "tabak"},
	"bulgur pilavı":      {Calories: 180, Sugar: 0.3, PerUnit: "tabak"},
	"makarna":            {Calories: 310, Sugar: 1.5, PerUnit: "tabak"},
	"mercimek":           {Calories: 230, Sugar: 1.8, PerUnit: "tabak"},
	"mercimek çorbası":   {Calories: 140, Sugar: 1.2, PerUnit: "kase"},
	"kuru fasulye":       {Calories: 260, Sugar: 2.5, PerUnit: "tabak"},
	"nohut":              {Calories: 250, Sugar: 2.8, PerUnit: "tabak"},
	"ekmek":              {Calories: 80, Sugar: 0.5, PerUnit: "dilim"},
	"tavuk":              {Calories: 190, Sugar: 0, PerUnit: "porsiyon"},
	"köfte":              {Calories: 280, Sugar: 0.4, PerUnit: "porsiyon"},
	"balık":              {Calories: 200, Sugar: 0, PerUnit: "porsiyon"},
	"et":                 {Calories: 250, Sugar: 0, PerUnit: "porsiyon"},
	"döner":              {Calories: 350, Sugar: 1, PerUnit: "porsiyon"},
	"lahmacun":           {Calories: 240, Sugar: 2, PerUnit: "adet"},
	"pide":               {Calories: 420, Sugar: 2.5, PerUnit: "adet"},
	"mantı":              {Calories: 380, Sugar: 2, PerUnit: "tabak"},
	"sarma":              {Calories: 220, Sugar: 1.5, PerUnit: "porsiyon"},
	"dolma":              {Calories: 230, Sugar: 2, PerUnit: "porsiyon"},
	"menemen":            {Calories: 210, Sugar: 3.5, PerUnit: "porsiyon"},
	"omlet":              {Calories: 180, Sugar: 0.8, PerUnit: "porsiyon"},
	"yumurta":            {Calories: 75, Sugar: 0.2, PerUnit: "adet"},
	"peynir":             {Calories: 90, Sugar: 0.3, PerUnit: "dilim"},
	"yoğurt":             {Calories: 110, Sugar: 6, PerUnit: "kase"},
	"ayran":              {Calories: 70, Sugar: 4, PerUnit: "bardak"},
	"süt":                {Calories: 120, Sugar: 9, PerUnit: "bardak"},
	"cacık":              {Calories: 85, Sugar: 3, PerUnit: "kase"},
	"salata":             {Calories: 60, Sugar: 3, PerUnit: "porsiyon"},
	"domates":            {Calories: 25, Sugar: 3.5, PerUnit: "adet"},
	"salatalık":          {Calories: 15, Sugar: 1.8, PerUnit: "adet"},
	"patates":            {Calories: 160, Sugar: 1.5, PerUnit: "porsiyon"},
	"patates kızartması": {Calories: 340, Sugar: 0.8, PerUnit: "porsiyon"},
	"börek":              {Calories: 300, Sugar: 1.5, PerUnit: "dilim"},
	"poğaça":             {Calories: 260, Sugar: 2, PerUnit: "adet"},
	"simit":              {Calories: 290, Sugar: 3, PerUnit: "adet"},
	"tost":               {Calories: 320, Sugar: 3, PerUnit: "adet"},
	"elma":               {Calories: 80, Sugar: 16, PerUnit: "adet"},
	"muz":                {Calories: 105, Sugar: 14, PerUnit: "adet"},
	"portakal":           {Calories: 65, Sugar: 12, PerUnit: "adet"},
	"üzüm":               {Calories: 110, Sugar: 23, PerUnit: "kase"},
	"karpuz":             {Calories: 85, Sugar: 17, PerUnit: "dilim"},
	"çilek":              {Calories: 50, Sugar: 7, PerUnit: "kase"},
	"baklava":            {Calories: 330, Sugar: 24, PerUnit: "dilim"},
	"sütlaç":             {Calories: 220, Sugar: 25, PerUnit: "kase"},
	"dondurma":           {Calories: 200, Sugar: 21, PerUnit: "porsiyon"},
	"çikolata":           {Calories: 240, Sugar: 22, PerUnit: "porsiyon"},
	"kek":                {Calories: 280, Sugar: 26, PerUnit: "dilim"},
	"kurabiye":           {Calories: 130, Sugar: 9, PerUnit: "adet"},
	"bal":                {Calories: 64, Sugar: 17, PerUnit: "porsiyon"},
	"reçel":              {Calories: 56, Sugar: 14, PerUnit: "porsiyon"},
	"çay":                {Calories: 2, Sugar: 0, PerUnit: "bardak"},
	"kahve":              {Calories: 5, Sugar: 0, PerUnit: "bardak"},
	"kola":               {Calories: 140, Sugar: 35, PerUnit: "bardak"},
	"meyve suyu":         {Calories: 110, Sugar: 24, PerUnit: "bardak"},
	"zeytin":             {Calories: 45, Sugar: 0.2, PerUnit: "porsiyon"},
	"fındık":             {Calories: 180, Sugar: 1.2, PerUnit: "porsiyon"},
	"ceviz":              {Calories: 190, Sugar: 0.8, PerUnit: "porsiyon"},
}
