package repository

import (
	"fmt"

	"github.com/mystic-bots/gadalka-bot/internal/model"
)

func tarotSeed() []model.TarotCard {
	majors := []model.TarotCard{
		{Name: "Шут", ArcanaType: model.ArcanaMajor, UprightMeaning: "Новый этап, свобода, любопытство", ReversedMeaning: "Импульсивность, наивность, неопределённость"},
		{Name: "Маг", ArcanaType: model.ArcanaMajor, UprightMeaning: "Инициатива, мастерство, контроль ситуации", ReversedMeaning: "Манипуляции, сомнения, неуверенность"},
		{Name: "Верховная Жрица", ArcanaType: model.ArcanaMajor, UprightMeaning: "Интуиция, тайна, мудрость", ReversedMeaning: "Секреты, отсутствие ясности, поверхностность"},
		{Name: "Императрица", ArcanaType: model.ArcanaMajor, UprightMeaning: "Изобилие, забота, созидание", ReversedMeaning: "Застой, зависимость, чрезмерная опека"},
		{Name: "Император", ArcanaType: model.ArcanaMajor, UprightMeaning: "Структура, власть, ответственность", ReversedMeaning: "Жёсткость, контроль, страх изменений"},
		{Name: "Иерофант", ArcanaType: model.ArcanaMajor, UprightMeaning: "Традиции, наставничество, духовный путь", ReversedMeaning: "Догматизм, консерватизм, упрямство"},
		{Name: "Влюблённые", ArcanaType: model.ArcanaMajor, UprightMeaning: "Выбор сердцем, союз, ценности", ReversedMeaning: "Сомнения, несогласие, разбалансировка"},
		{Name: "Колесница", ArcanaType: model.ArcanaMajor, UprightMeaning: "Прорыв, движение вперёд, воля", ReversedMeaning: "Растерянность, расфокус, конфликт целей"},
		{Name: "Сила", ArcanaType: model.ArcanaMajor, UprightMeaning: "Мужество, внутренний ресурс, сострадание", ReversedMeaning: "Неуверенность, подавление, нехватка энергии"},
		{Name: "Отшельник", ArcanaType: model.ArcanaMajor, UprightMeaning: "Поиск истины, мудрость, пауза", ReversedMeaning: "Изоляция, избегание, уход от ответственности"},
		{Name: "Колесо Фортуны", ArcanaType: model.ArcanaMajor, UprightMeaning: "Перемены, поворот событий, удача", ReversedMeaning: "Застой, повтор, упущенные возможности"},
		{Name: "Справедливость", ArcanaType: model.ArcanaMajor, UprightMeaning: "Баланс, честность, последствия", ReversedMeaning: "Несправедливость, дисбаланс, субъективность"},
		{Name: "Повешенный", ArcanaType: model.ArcanaMajor, UprightMeaning: "Новый взгляд, жертва ради смысла", ReversedMeaning: "Застрялость, нежелание менять перспективу"},
		{Name: "Смерть", ArcanaType: model.ArcanaMajor, UprightMeaning: "Завершение, трансформация, очищение", ReversedMeaning: "Сопротивление переменам, затяжные циклы"},
		{Name: "Умеренность", ArcanaType: model.ArcanaMajor, UprightMeaning: "Гармония, умеренность, интеграция", ReversedMeaning: "Крайности, нетерпение, дисбаланс"},
		{Name: "Дьявол", ArcanaType: model.ArcanaMajor, UprightMeaning: "Зависимости, искушение, сила желаний", ReversedMeaning: "Освобождение, осознание ограничений"},
		{Name: "Башня", ArcanaType: model.ArcanaMajor, UprightMeaning: "Внезапные перемены, освобождение", ReversedMeaning: "Страх перемен, удержание старого"},
		{Name: "Звезда", ArcanaType: model.ArcanaMajor, UprightMeaning: "Надежда, вдохновение, восстановление", ReversedMeaning: "Сомнения, потеря ориентира, усталость"},
		{Name: "Луна", ArcanaType: model.ArcanaMajor, UprightMeaning: "Интуиция, сны, скрытые процессы", ReversedMeaning: "Иллюзии, тревога, туманность"},
		{Name: "Солнце", ArcanaType: model.ArcanaMajor, UprightMeaning: "Оптимизм, успех, ясность", ReversedMeaning: "Отсутствие радости, временные трудности"},
		{Name: "Суд", ArcanaType: model.ArcanaMajor, UprightMeaning: "Пробуждение, ответственность, итог", ReversedMeaning: "Откладывание решений, самокритика"},
		{Name: "Мир", ArcanaType: model.ArcanaMajor, UprightMeaning: "Завершение, целостность, достижение", ReversedMeaning: "Незавершённость, незакрытые вопросы"},
	}

	ranks := []string{
		"Туз", "Двойка", "Тройка", "Четвёрка", "Пятёрка",
		"Шестёрка", "Семёрка", "Восьмёрка", "Девятка", "Десятка",
		"Паж", "Рыцарь", "Королева", "Король",
	}
	suits := []struct {
		name  string
		theme string
	}{
		{"Жезлов", "энергия и действие"},
		{"Кубков", "эмоции и отношения"},
		{"Мечей", "мысли и решения"},
		{"Пентаклей", "материя и ресурсы"},
	}

	deck := majors
	for _, suit := range suits {
		for _, rank := range ranks {
			deck = append(deck, model.TarotCard{
				Name:            rank + " " + suit.name,
				ArcanaType:      model.ArcanaMinor,
				Suit:            suit.name,
				UprightMeaning:  fmt.Sprintf("%s %s: %s в прямом положении.", rank, suit.name, suit.theme),
				ReversedMeaning: fmt.Sprintf("%s %s: теневая сторона темы — сохраняйте баланс.", rank, suit.name),
			})
		}
	}

	return deck
}

func numerologySeed() []model.NumerologyText {
	descriptions := []string{
		1: "Лидерство, сила воли, инициативность.",
		2: "Дипломатия, гармония, поиск баланса.",
		3: "Коммуникация, творчество, лёгкость.",
		4: "Структура, стабильность, работа на результат.",
		5: "Свобода, перемены, гибкость.",
		6: "Забота, ответственность, семейные ценности.",
		7: "Глубина, анализ, духовный поиск.",
		8: "Материальный успех, амбиции, управление.",
		9: "Гуманизм, завершение циклов, служение обществу.",
	}

	var texts []model.NumerologyText
	for number := 1; number <= 9; number++ {
		for _, calcType := range []string{model.CalcDestiny, model.CalcName, model.CalcLifeCycle} {
			texts = append(texts, model.NumerologyText{
				Number:      number,
				Type:        calcType,
				Description: descriptions[number],
			})
		}
	}

	return texts
}

func zodiacSeed() []model.ZodiacSign {
	return []model.ZodiacSign{
		{Name: "Козерог", DateStart: "12-22", DateEnd: "01-19", Description: "Стратег, дисциплина, надёжность."},
		{Name: "Водолей", DateStart: "01-20", DateEnd: "02-18", Description: "Идеи, инновации, независимость."},
		{Name: "Рыбы", DateStart: "02-19", DateEnd: "03-20", Description: "Интуиция, эмпатия, мечтательность."},
		{Name: "Овен", DateStart: "03-21", DateEnd: "04-19", Description: "Энергия, решительность, действие."},
		{Name: "Телец", DateStart: "04-20", DateEnd: "05-20", Description: "Практичность, устойчивость, чувственность."},
		{Name: "Близнецы", DateStart: "05-21", DateEnd: "06-20", Description: "Коммуникация, адаптивность, любопытство."},
		{Name: "Рак", DateStart: "06-21", DateEnd: "07-22", Description: "Забота, глубина, дом и семья."},
		{Name: "Лев", DateStart: "07-23", DateEnd: "08-22", Description: "Лидерство, яркость, креативность."},
		{Name: "Дева", DateStart: "08-23", DateEnd: "09-22", Description: "Аналитика, порядок, полезность."},
		{Name: "Весы", DateStart: "09-23", DateEnd: "10-22", Description: "Баланс, красота, дипломатия."},
		{Name: "Скорпион", DateStart: "10-23", DateEnd: "11-21", Description: "Страсть, трансформация, глубина."},
		{Name: "Стрелец", DateStart: "11-22", DateEnd: "12-21", Description: "Свобода, смысл, исследования."},
	}
}
