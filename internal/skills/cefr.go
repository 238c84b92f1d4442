package skills

// CEFRLevels lists the CEFR bands lowest to highest.
var CEFRLevels = []string{"A1", "A2", "B1", "B2", "C1", "C2"}

// cefrExpectations gives the typical per-axis level at each CEFR band.
var cefrExpectations = map[string]Dimensions{
	"A1": {
		AxisVocabularyRecognition: LevelRecognition,
		AxisVocabularyProduction:  LevelExposure,
		AxisPronunciation:         LevelExposure,
		AxisGrammarReceptive:      LevelExposure,
		AxisGrammarProductive:     LevelNone,
		AxisConversationalFlow:    LevelNone,
		AxisCulturalPragmatics:    LevelNone,
		AxisNarration:             LevelNone,
		AxisConditionals:          LevelNone,
	},
	"A2": {
		AxisVocabularyRecognition: LevelProduction,
		AxisVocabularyProduction:  LevelRecognition,
		AxisPronunciation:         LevelRecognition,
		AxisGrammarReceptive:      LevelRecognition,
		AxisGrammarProductive:     LevelExposure,
		AxisConversationalFlow:    LevelExposure,
		AxisCulturalPragmatics:    LevelExposure,
		AxisNarration:             LevelExposure,
		AxisConditionals:          LevelExposure,
	},
	"B1": {
		AxisVocabularyRecognition: LevelFluent,
		AxisVocabularyProduction:  LevelProduction,
		AxisPronunciation:         LevelProduction,
		AxisGrammarReceptive:      LevelProduction,
		AxisGrammarProductive:     LevelRecognition,
		AxisConversationalFlow:    LevelRecognition,
		AxisCulturalPragmatics:    LevelRecognition,
		AxisNarration:             LevelProduction,
		AxisConditionals:          LevelProduction,
	},
	"B2": {
		AxisVocabularyRecognition: LevelFluent,
		AxisVocabularyProduction:  LevelFluent,
		AxisPronunciation:         LevelFluent,
		AxisGrammarReceptive:      LevelFluent,
		AxisGrammarProductive:     LevelProduction,
		AxisConversationalFlow:    LevelProduction,
		AxisCulturalPragmatics:    LevelProduction,
		AxisNarration:             LevelFluent,
		AxisConditionals:          LevelFluent,
	},
	"C1": {
		AxisVocabularyRecognition: LevelFluent,
		AxisVocabularyProduction:  LevelFluent,
		AxisPronunciation:         LevelFluent,
		AxisGrammarReceptive:      LevelFluent,
		AxisGrammarProductive:     LevelFluent,
		AxisConversationalFlow:    LevelFluent,
		AxisCulturalPragmatics:    LevelFluent,
		AxisNarration:             LevelFluent,
		AxisConditionals:          LevelFluent,
	},
	"C2": {
		AxisVocabularyRecognition: LevelFluent,
		AxisVocabularyProduction:  LevelFluent,
		AxisPronunciation:         LevelFluent,
		AxisGrammarReceptive:      LevelFluent,
		AxisGrammarProductive:     LevelFluent,
		AxisConversationalFlow:    LevelFluent,
		AxisCulturalPragmatics:    LevelFluent,
		AxisNarration:             LevelFluent,
		AxisConditionals:          LevelFluent,
	},
}

// EstimateCEFR returns the highest CEFR band where the learner meets at
// least 70% of the typical per-axis expectations. Falls back to A1.
func EstimateCEFR(d Dimensions) string {
	for i := len(CEFRLevels) - 1; i >= 0; i-- {
		band := CEFRLevels[i]
		expected := cefrExpectations[band]
		matches, total := 0, 0
		for axis, want := range expected {
			total++
			if d.Level(axis).Rank() >= want.Rank() {
				matches++
			}
		}
		if total > 0 && float64(matches)/float64(total) >= 0.7 {
			return band
		}
	}
	return "A1"
}
