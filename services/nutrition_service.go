package services

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/oguzhnsglm/diyet-sub000/data"
	"github.com/oguzhnsglm/diyet-sub000/utils"
)

// NutritionEstimate is the resolver's answer for a free-text food
// description. Confidence is 0-100; Source says which matching stage
// produced the numbers: exact, combined, partial, default or none.
type NutritionEstimate struct {
	Calories   float64 `json:"calories"`
	Sugar      float64 `json:"sugar"`
	PlateCount float64 `json:"plateCount"`
	Confidence int     `json:"confidence"`
	Source     string  `json:"source"`
	Message    string  `json:"message"`
}

// NutritionService resolves free-text food descriptions against a static
// nutrition index.
type NutritionService struct {
	index data.Index
}

func NewNutritionService(index data.Index) *NutritionService {
	return &NutritionService{index: index}
}

// Generic estimate used when nothing in the index matches; the UI still
// gets a number, prominently marked low-confidence.
const (
	defaultCalories = 250.0
	defaultSugar    = 10.0
)

// Matching thresholds for normalized-edit-distance similarity.
const (
	tokenSimilarityMin    = 0.7
	fallbackSimilarityMin = 0.5
)

var numericPortionRe = regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s+(` + unitWordAlternatives + `)($|[^\p{L}])`)

const unitWordAlternatives = `tabak|porsiyon|kase|dilim|adet|bardak|plate|plates|portion|portions|serving|servings|bowl|bowls|slice|slices`

var quantityPhrases = []struct {
	phrase string
	mult   float64
}{
	{"bir buçuk", 1.5},
	{"one and a half", 1.5},
	{"yarım", 0.5},
	{"half", 0.5},
	{"çeyrek", 0.25},
	{"quarter", 0.25},
}

// Turkish possessive/partitive endings, longest first so "ları" wins
// over "ı".
var tokenSuffixes = []string{"ları", "leri", "lı", "li", "lu", "lü", "sı", "si", "su", "sü", "ı", "i", "u", "ü"}

// Estimate resolves text into a calorie/sugar estimate.
//
// Pipeline: portion-multiplier extraction → normalization → exact index
// match → per-token compositional match → whole-text fuzzy fallback →
// generic default. Every stage returns a structured result; there is no
// failure path.
func (s *NutritionService) Estimate(text string) NutritionEstimate {
	normalized := strings.ToLower(strings.TrimSpace(text))
	if normalized == "" {
		return NutritionEstimate{
			PlateCount: 0,
			Confidence: 0,
			Source:     "none",
			Message:    "Enter a food description to get an estimate.",
		}
	}

	mult, rest := extractMultiplier(normalized)
	rest = strings.Join(strings.Fields(rest), " ")

	// Exact match.
	if n, ok := s.index[rest]; ok {
		return NutritionEstimate{
			Calories:   n.Calories * mult,
			Sugar:      n.Sugar * mult,
			PlateCount: mult,
			Confidence: 100,
			Source:     "exact",
			Message:    fmt.Sprintf("Exact match for %q (%s).", rest, n.PerUnit),
		}
	}

	// Compositional match over tokens.
	if keys := s.resolveTokens(rest); len(keys) > 0 {
		var cal, sugar float64
		for _, k := range keys {
			cal += s.index[k].Calories
			sugar += s.index[k].Sugar
		}
		if len(keys) >= 2 {
			return NutritionEstimate{
				Calories:   cal * mult,
				Sugar:      sugar * mult,
				PlateCount: mult,
				Confidence: 90,
				Source:     "combined",
				Message:    fmt.Sprintf("Combined %d ingredients: %s.", len(keys), strings.Join(keys, ", ")),
			}
		}
		return NutritionEstimate{
			Calories:   cal * mult,
			Sugar:      sugar * mult,
			PlateCount: mult,
			Confidence: 85,
			Source:     "partial",
			Message:    fmt.Sprintf("Closest match: %q.", keys[0]),
		}
	}

	// Whole-text fuzzy fallback.
	if key, sim := s.bestFuzzyKey(rest, fallbackSimilarityMin); key != "" {
		n := s.index[key]
		return NutritionEstimate{
			Calories:   n.Calories * mult,
			Sugar:      n.Sugar * mult,
			PlateCount: mult,
			Confidence: int(math.Round(sim * 100)),
			Source:     "partial",
			Message:    fmt.Sprintf("Closest match: %q.", key),
		}
	}

	return NutritionEstimate{
		Calories:   defaultCalories * mult,
		Sugar:      defaultSugar * mult,
		PlateCount: mult,
		Confidence: 30,
		Source:     "default",
		Message:    "No close match found; showing a generic estimate.",
	}
}

// extractMultiplier finds an explicit portion multiplier in text (a
// number immediately before a unit word, or a natural-language quantity),
// strips the phrase and returns the remainder. Default multiplier is 1.
func extractMultiplier(text string) (float64, string) {
	if m := numericPortionRe.FindStringSubmatchIndex(text); m != nil {
		numStr := strings.ReplaceAll(text[m[2]:m[3]], ",", ".")
		if v, err := strconv.ParseFloat(numStr, 64); err == nil && v > 0 {
			rest := text[:m[0]] + " " + text[m[5]:]
			return v, rest
		}
	}

	for _, q := range quantityPhrases {
		idx := phraseIndex(text, q.phrase)
		if idx < 0 {
			continue
		}
		rest := text[:idx] + text[idx+len(q.phrase):]
		rest = stripLeadingUnitWord(rest)
		return q.mult, rest
	}

	return 1, text
}

// phraseIndex finds phrase in text on word boundaries only, so "half"
// never matches inside "halfmoon".
func phraseIndex(text, phrase string) int {
	start := 0
	for {
		idx := strings.Index(text[start:], phrase)
		if idx < 0 {
			return -1
		}
		idx += start
		before := idx == 0 || !isWordRune(decodeLastRune(text[:idx]))
		afterIdx := idx + len(phrase)
		after := afterIdx >= len(text) || !isWordRune(decodeFirstRune(text[afterIdx:]))
		if before && after {
			return idx
		}
		start = idx + len(phrase)
	}
}

// stripLeadingUnitWord drops a unit word left behind after removing a
// word quantity ("yarım tabak mercimek" → "mercimek").
func stripLeadingUnitWord(text string) string {
	fields := strings.Fields(text)
	if len(fields) > 0 && isUnitWord(fields[0]) {
		fields = fields[1:]
	}
	return strings.Join(fields, " ")
}

func isUnitWord(w string) bool {
	for _, u := range strings.Split(unitWordAlternatives, "|") {
		if w == u {
			return true
		}
	}
	return false
}

func isWordRune(r rune) bool { return unicode.IsLetter(r) || unicode.IsNumber(r) }

func decodeFirstRune(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	return r
}

func decodeLastRune(s string) rune {
	r, _ := utf8.DecodeLastRuneInString(s)
	return r
}

// resolveTokens maps each token of length > 2 to an index key, trying the
// raw token, suffix-stripped variants, and finally a fuzzy containment
// search. Distinct keys only, in first-resolution order.
func (s *NutritionService) resolveTokens(text string) []string {
	tokens := strings.FieldsFunc(text, func(r rune) bool { return !isWordRune(r) })

	seen := map[string]bool{}
	var keys []string
	for _, tok := range tokens {
		if utf8.RuneCountInString(tok) <= 2 {
			continue
		}
		key, ok := s.resolveToken(tok)
		if ok && !seen[key] {
			seen[key] = true
			keys = append(keys, key)
		}
	}
	return keys
}

func (s *NutritionService) resolveToken(tok string) (string, bool) {
	if _, ok := s.index[tok]; ok {
		return tok, true
	}

	for _, suf := range tokenSuffixes {
		if !strings.HasSuffix(tok, suf) {
			continue
		}
		base := strings.TrimSuffix(tok, suf)
		if utf8.RuneCountInString(base) <= 2 {
			continue
		}
		if _, ok := s.index[base]; ok {
			return base, true
		}
	}

	if key, _ := s.bestFuzzyKey(tok, tokenSimilarityMin); key != "" {
		return key, true
	}
	return "", false
}

// bestFuzzyKey scans the index for keys containing, or contained in,
// the candidate text and returns the best one by normalized-edit-distance
// similarity, provided it exceeds minSim.
func (s *NutritionService) bestFuzzyKey(text string, minSim float64) (string, float64) {
	var bestKey string
	var bestSim float64
	for key := range s.index {
		if !strings.Contains(key, text) && !strings.Contains(text, key) {
			continue
		}
		sim := utils.Similarity(text, key)
		// Lexicographic tie-break keeps results deterministic across
		// map iteration orders.
		if sim > bestSim || (sim == bestSim && bestKey != "" && key < bestKey) {
			bestSim = sim
			bestKey = key
		}
	}
	if bestSim > minSim {
		return bestKey, bestSim
	}
	return "", 0
}
