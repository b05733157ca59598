package resolver

import "strings"

// Scorer rates the similarity of two normalized strings in [0,1].
// It is pluggable so weights and thresholds can be tuned and tested
// independently of the resolver.
type Scorer interface {
	Score(a, b string) float64
}

// Default blend weights. Token-level Jaccard carries most of the signal;
// character bigrams catch inflections and typos; the containment bonus
// rewards one label embedding the other ("tarte citron" in
// "tarte au citron maison").
const (
	DefaultJaccardWeight    = 0.6
	DefaultDiceWeight       = 0.4
	DefaultContainmentBonus = 0.1
)

// BlendedScorer combines token-set Jaccard and character-bigram Dice
// similarity, with a containment bonus, capped at 1.0.
type BlendedScorer struct {
	JaccardWeight    float64
	DiceWeight       float64
	ContainmentBonus float64
}

// NewBlendedScorer returns a scorer with the default weights.
func NewBlendedScorer() *BlendedScorer {
	return &BlendedScorer{
		JaccardWeight:    DefaultJaccardWeight,
		DiceWeight:       DefaultDiceWeight,
		ContainmentBonus: DefaultContainmentBonus,
	}
}

// Score rates two normalized strings. Empty input scores zero.
func (s *BlendedScorer) Score(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 1
	}

	score := s.JaccardWeight*jaccardTokens(a, b) + s.DiceWeight*diceBigrams(a, b)

	if strings.Contains(a, b) || strings.Contains(b, a) {
		score += s.ContainmentBonus
	}

	if score > 1 {
		score = 1
	}
	return score
}

// jaccardTokens computes |A∩B| / |A∪B| over whitespace-separated tokens.
func jaccardTokens(a, b string) float64 {
	setA := tokenSet(a)
	setB := tokenSet(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}

	inter := 0
	for tok := range setA {
		if setB[tok] {
			inter++
		}
	}
	union := len(setA) + len(setB) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

// diceBigrams computes the Sørensen-Dice coefficient over the sets of
// character bigrams of each string.
func diceBigrams(a, b string) float64 {
	setA := bigramSet(a)
	setB := bigramSet(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}

	inter := 0
	for bg := range setA {
		if setB[bg] {
			inter++
		}
	}
	return 2 * float64(inter) / float64(len(setA)+len(setB))
}

func tokenSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, tok := range strings.Fields(s) {
		set[tok] = true
	}
	return set
}

func bigramSet(s string) map[string]bool {
	runes := []rune(s)
	set := make(map[string]bool, len(runes))
	for i := 0; i+1 < len(runes); i++ {
		set[string(runes[i:i+2])] = true
	}
	return set
}
