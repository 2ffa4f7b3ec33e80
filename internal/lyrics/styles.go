package lyrics

import "strings"

// styleSet — один вариант шаблонов песни для жанра.
// Шаблоны — text/template строки; доступные поля и функции
// описаны в engine.go.
type styleSet struct {
	verse1 string
	verse2 string
	chorus string
	bridge string
}

// hipHopStyles — варианты для hip hop.
var hipHopStyles = []styleSet{
	{
		verse1: "[Verse 1]\nListen up, let me tell you 'bout {{ .Topic }}\nKnowledge flowing, can't nobody stop it\nBreaking it down so your mind can process\nLearning new things, that's how we progress",
		verse2: "[Verse 2]\nDon't just memorize, make sure you understand\nThis knowledge right here will help you expand\n{{ if .Facts }}{{ .Facts }}\n{{ end }}With {{ .Topic }} skills, there's no limit to where you can ascend",
		chorus: "[Chorus]\n{{ title .Topic }}, yeah, that's what we're learning today\n{{ title .Topic }}, understand it in a whole new way\n{{ title .Topic }}, knowledge is the power we seek\n{{ title .Topic }}, now you're at the learning peak",
		bridge: "[Bridge]\nBreak it down now\n{{ title .Topic }} is essential, listen to me\nThis ain't just a lesson, it's a recipe\nTake these words, make them yours, make them shine",
	},
	{
		verse1: "[Verse 1]\nYo, listen up, I'm about to drop some knowledge\nAll about {{ .Topic }}, let me take you to college\nThis ain't just a song, it's education with flow\nBy the time I'm done, you'll know all you need to know",
		verse2: "[Verse 2]\nNow that you got the basics, let's go deeper\nThe facts about {{ .Topic }} couldn't be neater\n{{ if .Facts }}{{ .Facts }}\n{{ end }}This knowledge is power, no time for delaying",
		chorus: "[Chorus]\n{{ title .Topic }}, yeah, that's what I'm talking about\n{{ title .Topic }}, let me break it down, no doubt\nLearn it, know it, show it, grow it\n{{ title .Topic }}, that's what this song's about",
		bridge: "[Bridge]\n{{ title .Topic }} is essential, listen to me\nThis ain't just a lesson, it's a recipe\nFor success, for progress, for knowledge divine\nTake these words, make them yours, make them shine",
	},
}

// countryStyles — варианты для country.
var countryStyles = []styleSet{
	{
		verse1: "[Verse 1]\nSitting here thinking 'bout {{ .Topic }}\nLike a sunrise over fields of grain\nThe lessons learned are never forgotten\nKnowledge like rain after a summer drought",
		verse2: "[Verse 2]\nTake my hand, let's walk this road together\nUnderstanding grows like wildflowers in spring\n{{ if .Facts }}{{ .Facts }}\n{{ end }}These are the lessons worth remembering",
		chorus: "[Chorus]\nOh, {{ .Topic }}\nTeaching us about this world we're in\nOh, {{ .Topic }}\nWhere learning and living begin",
	},
	{
		verse1: "[Verse 1]\nSitting on my porch just thinking 'bout {{ .Topic }}\nIt ain't always easy but it's worth understanding\nLet me tell you a story about what I've learned\nTake it from someone who's been there and returned",
		verse2: "[Verse 2]\nThe second thing to know about {{ .Topic }}\nIs it takes some time, and a bit of logic\n{{ if .Facts }}{{ .Facts }}\n{{ end }}Understanding comes through a little joy and pain",
		chorus: "[Chorus]\nOh, {{ .Topic }}, it's like a country road\nSometimes rough, sometimes smooth as you go\nBut keep on driving, keep on learning\n{{ .Topic }}, it's worth knowing, that's for sure",
	},
}

// genericStyles — варианты для остальных жанров.
var genericStyles = []styleSet{
	{
		verse1: "[Verse 1]\nLet me tell you about {{ .Topic }}\nIt's something worth learning, worth knowing\nOpen your mind to the knowledge I'm showing\nBy the end of this song, you'll be growing",
		verse2: "[Verse 2]\nThere's more to learn about {{ .Topic }}\nThe deeper you go, the more you'll see\n{{ if .Facts }}{{ .Facts }}\n{{ end }}Make these lessons yours, get connected",
		chorus: "[Chorus]\n{{ title .Topic }}, oh {{ .Topic }}\nThe more you learn, the more you'll know\n{{ title .Topic }}, it's worth understanding\nThis knowledge will help you, help you grow",
		bridge: "[Bridge]\nAnd now you know, now you see\nWhat {{ .Topic }} truly means to me\nCarry this knowledge wherever you go\nLet it guide you, help you grow",
	},
	{
		verse1: "[Verse 1]\nA fascinating subject to explore: {{ .Topic }}\nThe more you learn, the more you grow\nLine by line and piece by piece\nUnderstanding what it's all for",
		verse2: "[Verse 2]\nEvery question opens up a door\n{{ if .Facts }}{{ .Facts }}\n{{ end }}It connects to life in ways unexpected\nThat's what {{ .Topic }} is for",
		chorus: "[Chorus]\n{{ title .Topic }}, {{ title .Topic }}\nKnowledge to help you on your way\n{{ title .Topic }}, {{ title .Topic }}\nLearning something new today",
		bridge: "[Bridge]\nAnd now you know, now you see\nWhat {{ .Topic }} truly means to me\nCarry this knowledge wherever you go\nLet it guide you, help you grow",
	},
}

// stylesFor возвращает варианты стиля для жанра.
func stylesFor(genre string) []styleSet {
	switch normalizeGenre(genre) {
	case "hip hop":
		return hipHopStyles
	case "country":
		return countryStyles
	default:
		return genericStyles
	}
}

// bridgeGenres — жанры, в которых песня получает бридж.
var bridgeGenres = map[string]bool{
	"hip hop": true,
	"pop":     true,
	"rock":    true,
}

// hasBridge возвращает true, если жанру положен бридж.
func hasBridge(genre string) bool {
	return bridgeGenres[normalizeGenre(genre)]
}

// normalizeGenre приводит жанр к каноническому виду:
// нижний регистр, подчёркивания и дефисы заменены пробелами.
func normalizeGenre(genre string) string {
	genre = strings.ToLower(genre)
	genre = strings.ReplaceAll(genre, "_", " ")
	genre = strings.ReplaceAll(genre, "-", " ")
	return strings.TrimSpace(genre)
}
