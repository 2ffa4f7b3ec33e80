package lyrics

import (
	"strings"
	"unicode"
)

// factCatalog — канонические факты по школьным темам.
// Ключи нормализованы (см. NormalizeTopic).
var factCatalog = map[string]string{
	"photosynthesis": "Plants turn sunlight, water and carbon dioxide into glucose and oxygen. " +
		"The process happens in chloroplasts, powered by the green pigment chlorophyll.",

	"water cycle": "Water evaporates from oceans and lakes, condenses into clouds and falls back as rain or snow. " +
		"The same water has been cycling around the planet for billions of years.",

	"gravity": "Gravity is the force that attracts objects with mass toward each other. " +
		"On Earth it accelerates falling objects at about 9.8 meters per second squared.",

	"fractions": "A fraction shows parts of a whole, with a numerator on top and a denominator below. " +
		"To add fractions you first need a common denominator.",

	"multiplication": "Multiplication is repeated addition: three times four means three groups of four. " +
		"The order of factors never changes the product.",

	"solar system": "Eight planets orbit the Sun, from rocky Mercury to icy Neptune. " +
		"Jupiter is the largest planet and could fit more than a thousand Earths inside.",

	"dna": "DNA stores genetic instructions in a double helix of paired bases. " +
		"Adenine pairs with thymine and guanine pairs with cytosine.",

	"periodic table": "The periodic table arranges elements by atomic number into rows and columns. " +
		"Elements in the same column share similar chemical properties.",

	"american revolution": "The thirteen colonies declared independence from Britain in 1776. " +
		"The war ended with the Treaty of Paris in 1783.",

	"pythagorean theorem": "In a right triangle the square of the hypotenuse equals the sum of the squares of the other two sides. " +
		"Written as a formula: a squared plus b squared equals c squared.",

	"shakespeare": "William Shakespeare wrote 39 plays and 154 sonnets in Elizabethan England. " +
		"Hamlet, Macbeth and Romeo and Juliet are among the most performed plays in the world.",

	"states of matter": "Matter commonly exists as solid, liquid or gas, depending on temperature and pressure. " +
		"Adding energy melts solids and evaporates liquids.",
}

// NormalizeTopic приводит тему к каноническому виду:
// нижний регистр, только буквы, цифры и пробелы.
func NormalizeTopic(topic string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(topic) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// LookupFacts ищет факты по нормализованной теме.
//
// Порядок: точное совпадение, затем вхождение ключа в тему,
// затем вхождение темы в ключ. При нескольких совпадениях
// побеждает самый длинный ключ — порядок обхода map не влияет
// на результат.
func LookupFacts(topic string) (string, bool) {
	norm := NormalizeTopic(topic)
	if norm == "" {
		return "", false
	}

	if facts, ok := factCatalog[norm]; ok {
		return facts, true
	}

	if key := longestMatch(func(key string) bool { return strings.Contains(norm, key) }); key != "" {
		return factCatalog[key], true
	}

	if key := longestMatch(func(key string) bool { return strings.Contains(key, norm) }); key != "" {
		return factCatalog[key], true
	}

	return "", false
}

// longestMatch возвращает самый длинный ключ каталога,
// удовлетворяющий предикату, или "".
func longestMatch(match func(key string) bool) string {
	best := ""
	for key := range factCatalog {
		if !match(key) {
			continue
		}
		if len(key) > len(best) || (len(key) == len(best) && key < best) {
			best = key
		}
	}
	return best
}

// factBudget — бюджет длины фактов в рунах.
// Больше не влезает в куплет без потери ритма.
const factBudget = 240

// TruncateFacts усекает факты до бюджета.
// Режет по границе предложения, если она есть в пределах бюджета,
// иначе по границе руны с многоточием.
func TruncateFacts(facts string, budget int) string {
	facts = strings.TrimSpace(facts)
	runes := []rune(facts)
	if len(runes) <= budget {
		return facts
	}

	head := string(runes[:budget])
	if idx := strings.LastIndex(head, ". "); idx > 0 {
		return head[:idx+1]
	}

	return strings.TrimSpace(head) + "..."
}
