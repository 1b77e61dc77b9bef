package handlers

// Callback payloads form a closed set: every button the bot ever renders
// carries one of these values or a listed prefix plus a catalog key. The
// registry maps each prefix to exactly one handler.
const (
	cbMenuMain      = "menu_main"
	cbMenuQuiz      = "menu_quiz"
	cbMenuTalk      = "menu_talk"
	cbMenuTranslate = "menu_translate"
	cbMenuRecommend = "menu_recommend"
	cbMenuAssistant = "menu_gpt"
	cbMenuFact      = "menu_fact"

	cbQuizTopicPrefix = "quiz_topic_"
	cbQuizContinue    = "quiz_continue"
	cbQuizChangeTopic = "quiz_change_topic"
	cbQuizFinish      = "quiz_finish"

	cbPersonaPickPrefix = "persona_pick_"
	cbPersonaContinue   = "persona_continue"
	cbPersonaChange     = "persona_change"
	cbPersonaFinish     = "persona_finish"

	cbLangPrefix   = "lang_"
	cbTrNewText    = "tr_new_text"
	cbTrChangeLang = "tr_change_lang"
	cbTrCancel     = "tr_cancel"

	cbRecCatPrefix   = "rec_cat_"
	cbRecGenrePrefix = "rec_genre_"
	cbRecAgain       = "rec_again"
	cbRecGenres      = "rec_genres"
	cbRecBack        = "rec_back"
	cbRecCancel      = "rec_cancel"

	cbFactMore   = "fact_more"
	cbFactFinish = "fact_finish"

	cbAssistantNew = "gpt_new"
)
