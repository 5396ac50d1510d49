package locales

import "fmt"

// Supported returns the language codes the bot ships texts for.
func Supported() []string {
	return []string{"ru", "en"}
}

// Text resolves key in the requested language, formatting args in.
// Unknown languages fall back to Russian; unknown keys come back as
// the key itself so a missing translation is visible in the chat.
func Text(lang, key string, args ...interface{}) string {
	text, ok := Texts(lang)[key]
	if !ok {
		return key
	}
	if len(args) == 0 {
		return text
	}
	return fmt.Sprintf(text, args...)
}

// Texts returns the whole language map, used to resolve button keys
// when building keyboards.
func Texts(lang string) map[string]string {
	if texts, ok := languages[lang]; ok {
		return texts
	}
	return languages["ru"]
}

var languages = map[string]map[string]string{
	"ru": {
		"welcome_text": "Добро пожаловать, %s! 🔮\n\nЯ помогу заглянуть за завесу: расклады Таро, нумерология, гороскоп, руна и метафора дня.\n\nВыберите раздел в меню.",
		"welcome_bonus_text": "Вам начислен приветственный бонус: %d доп. запрос(ов). ✨",
		"referral_applied":   "По вашей ссылке пришёл новый пользователь! Начислено бонусов: %d. 🎁",
		"main_menu_text":     "Главное меню. Что будем смотреть?",
		"help_text":          "Доступные команды:\n/start — начать заново\n/menu — главное меню\n/profile — профиль\n/tarot — расклады Таро\n/numerology — нумерология\n/astro — гороскоп\n/rune — руна дня\n/metaphor — метафора дня\n/random — случайное предсказание\n/help — эта справка",
		"unknown_command":    "Не понимаю эту команду. Вернёмся в меню.",
		"state_reset":        "Хорошо, вернёмся в главное меню.",
		"smth_went_wrong":    "Что-то пошло не так. Попробуйте ещё раз чуть позже.",

		"limit_reached": "На сегодня бесплатные запросы закончились (лимит %d в день). 😔\n\nПриглашайте друзей по реферальной ссылке и получайте дополнительные запросы!",
		"limit_info":    "Осталось бесплатных запросов сегодня: %d.\nБонусных запросов: %d.",
		"bonus_spent":   "Дневной лимит исчерпан, списан 1 бонусный запрос. Осталось бонусов: %d.",

		"profile_text":     "<b>Ваш профиль</b>\n\nИмя: %s\nДата рождения: %s\nПол: %s\nЯзык: %s\n\nБонусных запросов: %d\nПриглашено друзей: %d\n\nВаша реферальная ссылка:\n%s",
		"profile_not_set":  "не указано",
		"gender_male":      "мужской",
		"gender_female":    "женский",
		"ask_name":         "Как вас зовут? Напишите имя одним сообщением.",
		"name_saved":       "Имя сохранено: %s.",
		"ask_birthdate":    "Введите дату рождения в формате ДД.ММ.ГГГГ, например 21.03.1990.",
		"bad_date":         "Не получилось разобрать дату. Попробуйте формат ДД.ММ.ГГГГ, например 21.03.1990.",
		"birthdate_saved":  "Дата рождения сохранена: %s.",
		"ask_gender":       "Укажите пол: м / ж.",
		"gender_saved":     "Пол сохранён.",
		"ask_language":     "Выберите язык / Choose a language:",
		"language_saved":   "Язык сохранён: русский.",
		"delete_confirm":   "Удалить профиль и всю историю запросов? Это действие необратимо. Напишите «да» для подтверждения.",
		"delete_done":      "Профиль удалён. Напишите /start, чтобы начать заново.",
		"delete_cancelled": "Удаление отменено.",

		"tarot_menu_text": "Выберите расклад:",

		"numerology_menu_text":  "Что посчитаем?",
		"ask_birthdate_num":     "Введите дату рождения в формате ДД.ММ.ГГГГ.",
		"ask_name_num":          "Введите имя для расчёта числа имени.",
		"ask_second_birthdate":  "Теперь введите дату рождения второго человека (ДД.ММ.ГГГГ).",
		"destiny_result":        "<b>Число судьбы: %d</b>\n\n%s",
		"name_number_result":    "<b>Число имени: %d</b>\n\n%s",
		"life_cycle_result":     "<b>Число жизненного цикла: %d</b>\n\n%s",
		"compat_result":         "<b>Совместимость: %d из 10</b>\n\n%s",
		"compat_detail":         "Числа судьбы пары: %d и %d.",
		"personality_result":    "<b>Карта личности</b>\n\nЧисло судьбы: %d — %s\n\nЧисло имени: %d — %s\n\nЧисло жизненного цикла: %d — %s",
		"no_description":        "Описание для этого числа пока не добавлено.",
		"fallback_destiny":      "Путь развития и ключевые качества.",
		"fallback_name":         "Число имени отражает самовыражение и стиль общения.",
		"fallback_life_cycle":   "Подсказывает задачи периода и ключевые уроки.",

		"ask_birthdate_astro": "Введите дату рождения (ДД.ММ.ГГГГ), чтобы определить знак зодиака.",
		"astro_result":        "<b>Ваш знак: %s</b> (%s — %s)\n\n%s",
		"astro_not_found":     "Не удалось определить знак по этой дате.",

		"rune_result":     "<b>Руна дня: %s</b>\n\n%s",
		"metaphor_result": "<b>Метафора дня</b>\n\n%s",

		"admin_denied":        "Эта команда доступна только администраторам.",
		"admin_panel_text":    "Админ-панель. Выберите действие:",
		"broadcast_ask":       "Отправьте текст рассылки одним сообщением. Напишите «отмена», чтобы выйти.",
		"broadcast_done":      "Рассылка завершена. Доставлено: %d, ошибок: %d.",
		"broadcast_cancelled": "Рассылка отменена.",
		"delay_usage":         "Использование: /set_delay <секунды>",
		"delay_set":           "Задержка ответа установлена: %d сек.",
		"ref_bonus_ask":       "Введите новый бонус пригласившему (целое число запросов).",
		"ref_bonus_set":       "Бонус пригласившему: %d.",
		"ref_welcome_ask":     "Введите приветственный бонус приглашённому (целое число).",
		"ref_welcome_set":     "Приветственный бонус: %d.",
		"ref_enabled":         "Реферальная система включена.",
		"ref_disabled":        "Реферальная система выключена.",
		"bad_number":          "Нужно целое неотрицательное число. Попробуйте ещё раз.",

		"main_tarot":      "🃏 Таро",
		"main_numerology": "🔢 Нумерология",
		"main_astro":      "♈ Гороскоп",
		"main_rune":       "ᚱ Руна дня",
		"main_metaphor":   "🌊 Метафора дня",
		"main_random":     "🎲 Случайное",
		"main_profile":    "👤 Профиль",
		"main_help":       "ℹ️ Помощь",

		"num_destiny":     "Число судьбы",
		"num_name":        "Число имени",
		"num_life_cycle":  "Жизненный цикл",
		"num_personality": "Карта личности",
		"num_compat":      "Совместимость",

		"back_button":    "⬅️ Назад",
		"another_button": "Ещё раз 🔁",
		"share_button":   "Поделиться ботом",

		"profile_change_name":      "Изменить имя",
		"profile_change_birthdate": "Изменить дату рождения",
		"profile_change_gender":    "Изменить пол",
		"profile_change_language":  "Сменить язык",
		"profile_delete":           "Удалить профиль",

		"admin_broadcast_button":   "📣 Рассылка",
		"admin_stats_button":       "📊 Статистика",
		"admin_ref_button":         "🎁 Реферальные настройки",
		"admin_ref_bonus_button":   "Бонус пригласившему",
		"admin_ref_welcome_button": "Приветственный бонус",
		"admin_ref_toggle_button":  "Вкл/выкл рефералку",
	},
	"en": {
		"welcome_text": "Welcome, %s! 🔮\n\nI can peek behind the veil: tarot spreads, numerology, horoscope, rune and metaphor of the day.\n\nPick a section in the menu.",
		"welcome_bonus_text": "You received a welcome bonus: %d extra request(s). ✨",
		"referral_applied":   "A new user joined via your link! Bonus credited: %d. 🎁",
		"main_menu_text":     "Main menu. What shall we look at?",
		"help_text":          "Available commands:\n/start — start over\n/menu — main menu\n/profile — profile\n/tarot — tarot spreads\n/numerology — numerology\n/astro — horoscope\n/rune — rune of the day\n/metaphor — metaphor of the day\n/random — random reading\n/help — this help",
		"unknown_command":    "I don't understand that. Back to the menu.",
		"state_reset":        "Okay, back to the main menu.",
		"smth_went_wrong":    "Something went wrong. Please try again a bit later.",

		"limit_reached": "You are out of free requests for today (limit %d per day). 😔\n\nInvite friends with your referral link to earn extra requests!",
		"limit_info":    "Free requests left today: %d.\nBonus requests: %d.",
		"bonus_spent":   "Daily limit reached, 1 bonus request spent. Bonuses left: %d.",

		"profile_text":     "<b>Your profile</b>\n\nName: %s\nBirth date: %s\nGender: %s\nLanguage: %s\n\nBonus requests: %d\nFriends invited: %d\n\nYour referral link:\n%s",
		"profile_not_set":  "not set",
		"gender_male":      "male",
		"gender_female":    "female",
		"ask_name":         "What is your name? Send it in one message.",
		"name_saved":       "Name saved: %s.",
		"ask_birthdate":    "Enter your birth date as DD.MM.YYYY, e.g. 21.03.1990.",
		"bad_date":         "Could not parse that date. Try DD.MM.YYYY, e.g. 21.03.1990.",
		"birthdate_saved":  "Birth date saved: %s.",
		"ask_gender":       "Specify gender: m / f.",
		"gender_saved":     "Gender saved.",
		"ask_language":     "Выберите язык / Choose a language:",
		"language_saved":   "Language saved: English.",
		"delete_confirm":   "Delete your profile and all request history? This cannot be undone. Reply \"yes\" to confirm.",
		"delete_done":      "Profile deleted. Send /start to begin again.",
		"delete_cancelled": "Deletion cancelled.",

		"tarot_menu_text": "Choose a spread:",

		"numerology_menu_text":  "What shall we calculate?",
		"ask_birthdate_num":     "Enter the birth date as DD.MM.YYYY.",
		"ask_name_num":          "Enter a name to calculate its number.",
		"ask_second_birthdate":  "Now enter the second person's birth date (DD.MM.YYYY).",
		"destiny_result":        "<b>Destiny number: %d</b>\n\n%s",
		"name_number_result":    "<b>Name number: %d</b>\n\n%s",
		"life_cycle_result":     "<b>Life cycle number: %d</b>\n\n%s",
		"compat_result":         "<b>Compatibility: %d out of 10</b>\n\n%s",
		"compat_detail":         "Destiny numbers of the pair: %d and %d.",
		"personality_result":    "<b>Personality card</b>\n\nDestiny number: %d — %s\n\nName number: %d — %s\n\nLife cycle number: %d — %s",
		"no_description":        "No description for this number yet.",
		"fallback_destiny":      "The path of growth and your key qualities.",
		"fallback_name":         "The name number reflects self-expression and communication style.",
		"fallback_life_cycle":   "Hints at the tasks and key lessons of the period.",

		"ask_birthdate_astro": "Enter a birth date (DD.MM.YYYY) to determine the zodiac sign.",
		"astro_result":        "<b>Your sign: %s</b> (%s — %s)\n\n%s",
		"astro_not_found":     "Could not determine a sign for that date.",

		"rune_result":     "<b>Rune of the day: %s</b>\n\n%s",
		"metaphor_result": "<b>Metaphor of the day</b>\n\n%s",

		"admin_denied":        "This command is for administrators only.",
		"admin_panel_text":    "Admin panel. Choose an action:",
		"broadcast_ask":       "Send the broadcast text in one message. Write \"cancel\" to exit.",
		"broadcast_done":      "Broadcast finished. Delivered: %d, failed: %d.",
		"broadcast_cancelled": "Broadcast cancelled.",
		"delay_usage":         "Usage: /set_delay <seconds>",
		"delay_set":           "Response delay set: %d sec.",
		"ref_bonus_ask":       "Enter the new inviter bonus (whole number of requests).",
		"ref_bonus_set":       "Inviter bonus: %d.",
		"ref_welcome_ask":     "Enter the welcome bonus for the invited user (whole number).",
		"ref_welcome_set":     "Welcome bonus: %d.",
		"ref_enabled":         "Referral system enabled.",
		"ref_disabled":        "Referral system disabled.",
		"bad_number":          "A whole non-negative number is required. Try again.",

		"main_tarot":      "🃏 Tarot",
		"main_numerology": "🔢 Numerology",
		"main_astro":      "♈ Horoscope",
		"main_rune":       "ᚱ Rune of the day",
		"main_metaphor":   "🌊 Metaphor of the day",
		"main_random":     "🎲 Random",
		"main_profile":    "👤 Profile",
		"main_help":       "ℹ️ Help",

		"num_destiny":     "Destiny number",
		"num_name":        "Name number",
		"num_life_cycle":  "Life cycle",
		"num_personality": "Personality card",
		"num_compat":      "Compatibility",

		"back_button":    "⬅️ Back",
		"another_button": "One more 🔁",
		"share_button":   "Share the bot",

		"profile_change_name":      "Change name",
		"profile_change_birthdate": "Change birth date",
		"profile_change_gender":    "Change gender",
		"profile_change_language":  "Change language",
		"profile_delete":           "Delete profile",

		"admin_broadcast_button":   "📣 Broadcast",
		"admin_stats_button":       "📊 Stats",
		"admin_ref_button":         "🎁 Referral settings",
		"admin_ref_bonus_button":   "Inviter bonus",
		"admin_ref_welcome_button": "Welcome bonus",
		"admin_ref_toggle_button":  "Toggle referrals",
	},
}
