package gemini

// modeInstructions maps each completion mode to its fixed system instruction.
// Persona-style calls carry their own instruction and are not listed here.
var modeInstructions = map[Mode]string{
	ModeDefault: "Ты полезный ассистент. Отвечай на вопросы развернуто и точно. " +
		"Переводи текст ТОЛЬКО если явно указано это в запросе.",
	ModeTranslate: "Ты профессиональный переводчик.",
	ModeFact:      "Ты энциклопедия интересных фактов.",
}

// ExplanationInstruction is the system instruction used when generating the
// follow-up explanation for a quiz answer.
const ExplanationInstruction = "Ты эксперт по квизам, объясняешь ответы понятно и интересно."

// FactPrompt is the user prompt for the random fact flow.
const FactPrompt = "Расскажи интересный научный факт (1-2 предложения)"

// QuestionPrompt is the user prompt paired with a topic's system instruction
// to generate one quiz question.
const QuestionPrompt = "Создай вопрос для квиза"
