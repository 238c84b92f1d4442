package catalog

import "github.com/calasan/habla/internal/skills"

// Seed returns the built-in starter catalog: Mexican Spanish survival
// content across the A1-B1 topics, enough to run without an external
// catalog file.
func Seed() (*Catalog, error) {
	return New(seedItems())
}

func seedItems() []Item {
	allForms := []Form{FormRecognition, FormCuedProduction, FormFreeProduction, FormApplication}
	recogProd := []Form{FormRecognition, FormCuedProduction, FormFreeProduction}

	return []Item{
		// Greetings - entry level, no requirements.
		{
			ID: "greeting-hola", ContentType: ContentPhrase,
			Spanish: "hola", English: "hello",
			Example: "¡Hola! ¿Cómo estás?",
			Topic:   "greetings", Difficulty: 1, CEFR: "A1",
			Contributes: map[skills.Axis]skills.Level{
				skills.AxisVocabularyProduction: skills.LevelRecognition,
			},
			Forms: allForms,
		},
		{
			ID: "greeting-que-onda", ContentType: ContentPhrase,
			Spanish: "¿qué onda?", English: "what's up?",
			Example: "¿Qué onda, güey? ¿Todo bien?",
			Notes:   "Very Mexican, casual register only",
			Topic:   "greetings", Difficulty: 1, CEFR: "A1",
			Requires: map[skills.Axis]skills.Level{
				skills.AxisVocabularyRecognition: skills.LevelExposure,
			},
			Contributes: map[skills.Axis]skills.Level{
				skills.AxisVocabularyProduction: skills.LevelRecognition,
				skills.AxisCulturalPragmatics:   skills.LevelExposure,
			},
			Forms: allForms,
		},
		{
			ID: "greeting-buenos-dias", ContentType: ContentPhrase,
			Spanish: "buenos días", English: "good morning",
			Example: "Buenos días, ¿cómo amaneció?",
			Topic:   "greetings", Difficulty: 1, CEFR: "A1",
			Contributes: map[skills.Axis]skills.Level{
				skills.AxisVocabularyProduction: skills.LevelRecognition,
				skills.AxisCulturalPragmatics:   skills.LevelExposure,
			},
			Forms: recogProd,
		},

		// Numbers.
		{
			ID: "numbers-1-10", ContentType: ContentVocabulary,
			Spanish: "uno a diez", English: "one to ten",
			Example: "Quiero dos tacos, por favor.",
			Topic:   "numbers", Difficulty: 1, CEFR: "A1",
			Contributes: map[skills.Axis]skills.Level{
				skills.AxisVocabularyRecognition: skills.LevelRecognition,
				skills.AxisVocabularyProduction:  skills.LevelRecognition,
			},
			Forms: recogProd,
		},
		{
			ID: "numbers-prices", ContentType: ContentVocabulary,
			Spanish: "¿cuánto cuesta?", English: "how much does it cost?",
			Example: "¿Cuánto cuesta el kilo de tortillas?",
			Topic:   "money", Difficulty: 2, CEFR: "A2",
			Requires: map[skills.Axis]skills.Level{
				skills.AxisVocabularyRecognition: skills.LevelRecognition,
			},
			Contributes: map[skills.Axis]skills.Level{
				skills.AxisVocabularyProduction: skills.LevelProduction,
			},
			Forms: allForms,
		},

		// Courtesy.
		{
			ID: "courtesy-por-favor", ContentType: ContentPhrase,
			Spanish: "por favor / gracias", English: "please / thank you",
			Example: "Un café, por favor. ¡Gracias!",
			Topic:   "basic_courtesy", Difficulty: 1, CEFR: "A1",
			Contributes: map[skills.Axis]skills.Level{
				skills.AxisVocabularyProduction: skills.LevelRecognition,
				skills.AxisCulturalPragmatics:   skills.LevelExposure,
			},
			Forms: recogProd,
		},
		{
			ID: "courtesy-con-permiso", ContentType: ContentPhrase,
			Spanish: "con permiso", English: "excuse me (passing by)",
			Example: "Con permiso, voy a pasar.",
			Notes:   "Register matters: 'con permiso' to pass, 'perdón' to apologize",
			Topic:   "basic_courtesy", Difficulty: 2, CEFR: "A1",
			Requires: map[skills.Axis]skills.Level{
				skills.AxisCulturalPragmatics: skills.LevelExposure,
			},
			Contributes: map[skills.Axis]skills.Level{
				skills.AxisCulturalPragmatics: skills.LevelRecognition,
			},
			Forms: allForms,
		},

		// Self introduction.
		{
			ID: "intro-me-llamo", ContentType: ContentPhrase,
			Spanish: "me llamo...", English: "my name is...",
			Example: "Me llamo Ana, mucho gusto.",
			Topic:   "self_introduction", Difficulty: 1, CEFR: "A1",
			Contributes: map[skills.Axis]skills.Level{
				skills.AxisVocabularyProduction: skills.LevelRecognition,
				skills.AxisConversationalFlow:   skills.LevelExposure,
			},
			Forms: recogProd,
		},
		{
			ID: "intro-de-donde", ContentType: ContentPhrase,
			Spanish: "¿de dónde eres?", English: "where are you from?",
			Example: "¿De dónde eres? — Soy de Irlanda.",
			Topic:   "self_introduction", Difficulty: 1, CEFR: "A1",
			Requires: map[skills.Axis]skills.Level{
				skills.AxisVocabularyRecognition: skills.LevelExposure,
			},
			Contributes: map[skills.Axis]skills.Level{
				skills.AxisConversationalFlow: skills.LevelRecognition,
			},
			Forms: allForms,
		},

		// Expressions.
		{
			ID: "expr-no-manches", ContentType: ContentPhrase,
			Spanish: "¡no manches!", English: "no way! / you're kidding!",
			Example: "¿Ganaste la lotería? ¡No manches!",
			Notes:   "Casual; the stronger variant is vulgar",
			Topic:   "expressions", Difficulty: 2, CEFR: "A2",
			Requires: map[skills.Axis]skills.Level{
				skills.AxisVocabularyRecognition: skills.LevelRecognition,
				skills.AxisCulturalPragmatics:    skills.LevelExposure,
			},
			Contributes: map[skills.Axis]skills.Level{
				skills.AxisCulturalPragmatics:  skills.LevelRecognition,
				skills.AxisConversationalFlow:  skills.LevelRecognition,
			},
			Forms: allForms,
		},
		{
			ID: "expr-ahorita", ContentType: ContentVocabulary,
			Spanish: "ahorita", English: "right now (or eventually...)",
			Example: "Ahorita voy. (could mean in 5 minutes or never)",
			Notes:   "Famously elastic in Mexican usage",
			Topic:   "expressions", Difficulty: 2, CEFR: "A2",
			Requires: map[skills.Axis]skills.Level{
				skills.AxisVocabularyRecognition: skills.LevelRecognition,
			},
			Contributes: map[skills.Axis]skills.Level{
				skills.AxisCulturalPragmatics: skills.LevelRecognition,
			},
			Forms: recogProd,
		},

		// Fillers.
		{
			ID: "filler-este", ContentType: ContentVocabulary,
			Spanish: "este...", English: "um... / uh...",
			Example: "Este... no sé, déjame pensar.",
			Topic:   "fillers", Difficulty: 2, CEFR: "A2",
			Requires: map[skills.Axis]skills.Level{
				skills.AxisConversationalFlow: skills.LevelExposure,
			},
			Contributes: map[skills.Axis]skills.Level{
				skills.AxisConversationalFlow: skills.LevelRecognition,
			},
			Forms: []Form{FormRecognition, FormFreeProduction},
		},

		// Texting.
		{
			ID: "texting-xq", ContentType: ContentTexting,
			Spanish: "xq / pq", English: "because / why (texting)",
			Example: "xq no vienes?",
			Topic:   "texting", Difficulty: 2, CEFR: "A2",
			Requires: map[skills.Axis]skills.Level{
				skills.AxisVocabularyRecognition: skills.LevelRecognition,
			},
			Contributes: map[skills.Axis]skills.Level{
				skills.AxisVocabularyRecognition: skills.LevelProduction,
			},
			Forms: []Form{FormRecognition},
		},

		// Food.
		{
			ID: "food-ordering", ContentType: ContentPhrase,
			Spanish: "me das... / me trae...", English: "can I get... (ordering)",
			Example: "¿Me das dos tacos de pastor?",
			Topic:   "food", Difficulty: 2, CEFR: "A2",
			Requires: map[skills.Axis]skills.Level{
				skills.AxisVocabularyProduction: skills.LevelRecognition,
			},
			Contributes: map[skills.Axis]skills.Level{
				skills.AxisVocabularyProduction: skills.LevelProduction,
				skills.AxisCulturalPragmatics:   skills.LevelRecognition,
			},
			Forms: allForms,
		},
		{
			ID: "food-antojitos", ContentType: ContentVocabulary,
			Spanish: "antojitos", English: "street food / little cravings",
			Example: "Vamos por unos antojitos al mercado.",
			Topic:   "food", Difficulty: 2, CEFR: "A2",
			Requires: map[skills.Axis]skills.Level{
				skills.AxisVocabularyRecognition: skills.LevelRecognition,
			},
			Contributes: map[skills.Axis]skills.Level{
				skills.AxisVocabularyRecognition: skills.LevelProduction,
			},
			Forms: recogProd,
		},

		// Transport.
		{
			ID: "transport-directions", ContentType: ContentPhrase,
			Spanish: "¿dónde está...? / derecho, izquierda", English: "where is...? / straight, left",
			Example: "¿Dónde está la parada del camión? — Todo derecho.",
			Notes:   "'camión' is the bus in Mexico, not a truck",
			Topic:   "transport", Difficulty: 2, CEFR: "A2",
			Requires: map[skills.Axis]skills.Level{
				skills.AxisVocabularyRecognition: skills.LevelRecognition,
				skills.AxisGrammarReceptive:      skills.LevelExposure,
			},
			Contributes: map[skills.Axis]skills.Level{
				skills.AxisVocabularyProduction: skills.LevelProduction,
			},
			Forms: allForms,
		},

		// Grammar.
		{
			ID: "grammar-ser-estar", ContentType: ContentGrammar,
			Spanish: "ser vs estar", English: "to be (permanent vs temporary)",
			Example: "Soy irlandés. Estoy cansado.",
			Topic:   "grammar_basics", Difficulty: 2, CEFR: "A1",
			Requires: map[skills.Axis]skills.Level{
				skills.AxisVocabularyRecognition: skills.LevelExposure,
			},
			Contributes: map[skills.Axis]skills.Level{
				skills.AxisGrammarReceptive:  skills.LevelRecognition,
				skills.AxisGrammarProductive: skills.LevelExposure,
			},
			Forms: recogProd,
		},
		{
			ID: "grammar-preterite-regular", ContentType: ContentGrammar,
			Spanish: "pretérito regular", English: "simple past, regular verbs",
			Example: "Ayer comí tacos y caminé al centro.",
			Topic:   "storytelling", Difficulty: 3, CEFR: "A2",
			Requires: map[skills.Axis]skills.Level{
				skills.AxisGrammarReceptive:  skills.LevelRecognition,
				skills.AxisGrammarProductive: skills.LevelExposure,
			},
			Contributes: map[skills.Axis]skills.Level{
				skills.AxisGrammarProductive: skills.LevelRecognition,
				skills.AxisNarration:         skills.LevelExposure,
			},
			Forms: allForms,
		},
		{
			ID: "story-time-markers", ContentType: ContentGrammar,
			Spanish: "primero, luego, después, al final", English: "first, then, after, finally",
			Example: "Primero fui al mercado, luego comí, y al final regresé a casa.",
			Topic:   "storytelling", Difficulty: 3, CEFR: "B1",
			Requires: map[skills.Axis]skills.Level{
				skills.AxisNarration:         skills.LevelExposure,
				skills.AxisGrammarProductive: skills.LevelRecognition,
			},
			Contributes: map[skills.Axis]skills.Level{
				skills.AxisNarration: skills.LevelProduction,
			},
			Forms: allForms,
		},

		// Opinions.
		{
			ID: "opinions-creo-que", ContentType: ContentPhrase,
			Spanish: "creo que... / me parece que...", English: "I think that... / it seems to me...",
			Example: "Creo que la comida de aquí es la mejor.",
			Topic:   "opinions", Difficulty: 3, CEFR: "B1",
			Requires: map[skills.Axis]skills.Level{
				skills.AxisVocabularyProduction: skills.LevelRecognition,
				skills.AxisGrammarProductive:    skills.LevelRecognition,
			},
			Contributes: map[skills.Axis]skills.Level{
				skills.AxisConversationalFlow: skills.LevelProduction,
			},
			Forms: allForms,
		},

		// Hypotheticals.
		{
			ID: "cond-me-gustaria", ContentType: ContentGrammar,
			Spanish: "me gustaría...", English: "I would like...",
			Example: "Me gustaría viajar a Oaxaca.",
			Topic:   "hypotheticals", Difficulty: 3, CEFR: "B1",
			Requires: map[skills.Axis]skills.Level{
				skills.AxisGrammarProductive: skills.LevelRecognition,
				skills.AxisConditionals:      skills.LevelExposure,
			},
			Contributes: map[skills.Axis]skills.Level{
				skills.AxisConditionals: skills.LevelRecognition,
			},
			Forms: allForms,
		},
		{
			ID: "cond-si-fuera", ContentType: ContentGrammar,
			Spanish: "si yo fuera...", English: "if I were...",
			Example: "Si yo fuera rico, compraría una casa en la playa.",
			Topic:   "hypotheticals", Difficulty: 4, CEFR: "B1",
			Requires: map[skills.Axis]skills.Level{
				skills.AxisConditionals:      skills.LevelRecognition,
				skills.AxisGrammarProductive: skills.LevelRecognition,
			},
			Contributes: map[skills.Axis]skills.Level{
				skills.AxisConditionals: skills.LevelProduction,
			},
			Forms: []Form{FormCuedProduction, FormFreeProduction, FormApplication},
		},

		// Pronunciation.
		{
			ID: "pron-rr", ContentType: ContentVocabulary,
			Spanish: "rr (perro, carro)", English: "rolled r",
			Example: "El perro corre por el cerro.",
			Topic:   "pronunciation_drills", Difficulty: 3, CEFR: "A2",
			Requires: map[skills.Axis]skills.Level{
				skills.AxisPronunciation: skills.LevelExposure,
			},
			Contributes: map[skills.Axis]skills.Level{
				skills.AxisPronunciation: skills.LevelRecognition,
			},
			Forms: []Form{FormRecognition, FormFreeProduction},
		},
	}
}
