package extra

import "math/rand"

// Rune is a futhark rune with its divination meaning.
type Rune struct {
	Name    string
	Meaning string
}

// Service hands out a random rune or metaphor per request.
type Service struct {
	rnd *rand.Rand
}

func NewService(rnd *rand.Rand) *Service {
	return &Service{rnd: rnd}
}

func (s *Service) RuneOfTheDay() Rune {
	return runes[s.rnd.Intn(len(runes))]
}

func (s *Service) MetaphorOfTheDay() string {
	return metaphors[s.rnd.Intn(len(metaphors))]
}

// The 24 runes of the elder futhark.
var runes = []Rune{
	{"Феху (ᚠ)", "Достаток и приток ресурсов. Хорошее время, чтобы закрепить результат."},
	{"Уруз (ᚢ)", "Первобытная сила и здоровье. Действуйте напором, но без разрушения."},
	{"Турисаз (ᚦ)", "Врата испытания. Остановитесь и подумайте, прежде чем шагнуть."},
	{"Ансуз (ᚨ)", "Слово и знание. Прислушайтесь к совету, который уже прозвучал."},
	{"Райдо (ᚱ)", "Дорога и движение. Путь важнее точки назначения."},
	{"Кеназ (ᚲ)", "Факел в темноте. Скрытое становится явным, используйте это."},
	{"Гебо (ᚷ)", "Дар и партнёрство. Равновесие между «давать» и «брать»."},
	{"Вуньо (ᚹ)", "Радость и гармония. Разрешите себе довольство без оговорок."},
	{"Хагалаз (ᚺ)", "Град разрушает старое. Не держитесь за то, что рушится само."},
	{"Наутиз (ᚾ)", "Нужда и ограничение. Терпение сейчас ценнее усилия."},
	{"Иса (ᛁ)", "Лёд и пауза. Заморозьте ситуацию и не форсируйте."},
	{"Йера (ᛃ)", "Урожай по сроку. Плоды придут, когда цикл завершится."},
	{"Эйваз (ᛇ)", "Тис, ось миров. Опора найдётся в ваших корнях."},
	{"Перт (ᛈ)", "Чаша жребия. Случай на вашей стороне, но не испытывайте его дважды."},
	{"Альгиз (ᛉ)", "Защита и интуиция. Чутьё сейчас надёжнее расчёта."},
	{"Соулу (ᛊ)", "Солнце и победа. Энергия на подъёме, цельтесь выше."},
	{"Тейваз (ᛏ)", "Воин и справедливость. Честный путь оказывается короче."},
	{"Беркана (ᛒ)", "Берёза и рост. Новое начинание требует бережности."},
	{"Эваз (ᛖ)", "Конь и доверие. Продвижение через союз, а не в одиночку."},
	{"Манназ (ᛗ)", "Человек среди людей. Ответ ищите в сообществе."},
	{"Лагуз (ᛚ)", "Вода и поток. Отпустите контроль и следуйте течению."},
	{"Ингуз (ᛜ)", "Семя и потенциал. Завершите этап, чтобы началось новое."},
	{"Дагаз (ᛞ)", "Рассвет и прорыв. Перелом к лучшему ближе, чем кажется."},
	{"Одал (ᛟ)", "Наследие и дом. Ценность уже у вас, оглянитесь."},
}

var metaphors = []string{
	"Вы — река, встретившая камень: не спорьте с ним, обойдите и станьте шире.",
	"Сегодняшний день — чистый холст: первое же смелое пятно задаст всю композицию.",
	"Ваша ситуация — зимний сад: под снегом корни живы и ждут своего срока.",
	"Вы — маяк в тумане: светите ровно, и нужные корабли найдут вас сами.",
	"Нынешний этап — подъём по лестнице в темноте: нащупывайте по одной ступени.",
	"Ваш вопрос — запутанный клубок: тяните за ту нить, что поддаётся легче.",
	"Вы — дерево в ветреный день: гнуться не значит сломаться.",
	"Этот период — пересадка в пути: вы не потерялись, вы меняете поезд.",
	"Ваша цель — горизонт: он не приближается, но ведёт в верную сторону.",
	"Сегодня вы — кузнец у остывающего металла: куйте, пока форма ещё податлива.",
	"Ситуация — прилив и отлив: то, что ушло, освободило берег для нового.",
	"Вы — семя под асфальтом: настойчивость находит трещины.",
}
