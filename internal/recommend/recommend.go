// Package recommend maps analysis results to writing advice.
package recommend

// VocabularyTier is derived from the complexity score.
type VocabularyTier string

const (
	VocabularyBasic        VocabularyTier = "basic"
	VocabularyIntermediate VocabularyTier = "intermediate"
	VocabularyAdvanced     VocabularyTier = "advanced"
)

// StructuralTier is derived from the raw passage length.
type StructuralTier string

const (
	StructureExpand   StructuralTier = "expand"
	StructureMaintain StructuralTier = "maintain"
	StructureCondense StructuralTier = "condense"
)

// Score bounds of the vocabulary tiers.
const (
	IntermediateScore = 3.0
	AdvancedScore     = 6.0
)

// Passage lengths (in characters) outside of which the structure advice
// changes from maintain to expand or condense.
const (
	MinPassageLength = 200
	MaxPassageLength = 500
)

// Vocabulary is the score-based half of a Recommendation.
type Vocabulary struct {
	Tier       VocabularyTier `json:"tier"`
	Assessment string         `json:"assessment"`
	Primary    string         `json:"primary"`
	Strategy   string         `json:"strategy"`
	Example    string         `json:"example"`
}

// Structure is the length-based half of a Recommendation.
type Structure struct {
	Tier   StructuralTier `json:"tier"`
	Advice []string       `json:"advice"`
}

// Recommendation combines two independent classifications. They are
// never merged into a single value.
type Recommendation struct {
	Vocabulary Vocabulary `json:"vocabulary"`
	Structure  Structure  `json:"structure"`
}

var vocabularyAdvice = map[VocabularyTier]Vocabulary{
	VocabularyBasic: {
		Tier:       VocabularyBasic,
		Assessment: "Basic writing proficiency detected in passage",
		Primary:    "Incorporate more sophisticated vocabulary",
		Strategy:   "Replace simple words with professional alternatives",
		Example:    "'use' → 'utilize', 'help' → 'facilitate'",
	},
	VocabularyIntermediate: {
		Tier:       VocabularyIntermediate,
		Assessment: "Intermediate writing proficiency demonstrated",
		Primary:    "Enhance sentence structure complexity",
		Strategy:   "Combine shorter sentences using advanced conjunctions",
		Example:    "Add transitional phrases and subordinate clauses",
	},
	VocabularyAdvanced: {
		Tier:       VocabularyAdvanced,
		Assessment: "Advanced writing proficiency achieved",
		Primary:    "Maintain sophisticated language patterns",
		Strategy:   "Focus on precision and contextual appropriateness",
		Example:    "Refine word choice for maximum impact",
	},
}

var structureAdvice = map[StructuralTier][]string{
	StructureExpand: {
		"Expand passage length for comprehensive topic coverage",
		"Add supporting details and explanatory content",
	},
	StructureCondense: {
		"Consider paragraph breaks for improved readability",
		"Ensure concise expression without redundancy",
	},
	StructureMaintain: {
		"Maintain current passage length for optimal readability",
		"Focus on content quality and coherence",
	},
}

// Recommend classifies score and passageLength independently and returns
// one piece of advice for each.
func Recommend(score float64, passageLength int) Recommendation {
	st := ClassifyStructure(passageLength)
	return Recommendation{
		Vocabulary: vocabularyAdvice[ClassifyVocabulary(score)],
		Structure: Structure{
			Tier:   st,
			Advice: append([]string(nil), structureAdvice[st]...),
		},
	}
}

// ClassifyVocabulary returns the vocabulary tier for a complexity score.
func ClassifyVocabulary(score float64) VocabularyTier {
	switch {
	case score < IntermediateScore:
		return VocabularyBasic
	case score < AdvancedScore:
		return VocabularyIntermediate
	default:
		return VocabularyAdvanced
	}
}

// ClassifyStructure returns the structural tier for a passage length.
func ClassifyStructure(passageLength int) StructuralTier {
	switch {
	case passageLength < MinPassageLength:
		return StructureExpand
	case passageLength > MaxPassageLength:
		return StructureCondense
	default:
		return StructureMaintain
	}
}
