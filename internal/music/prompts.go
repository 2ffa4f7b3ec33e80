package music

import (
	"fmt"
	"hash/fnv"
	"strings"
)

// Пулы промптов композиции по жанрам. Жанры без пула получают
// дефолтный промпт вида "Default prompt for <genre>".
var genrePrompts = map[string][]string{
	"hip_hop": {
		"West Coast heatwave with booming 808s, funky synth bass, and distorted vocal chops. Mood: Swagger, Dominance.",
		"Dark, cinematic trap beat layered with haunting strings, glitchy hi-hats, and bass drops that shake your bones. Mood: Gritty, Powerful.",
		"Old-school NYC boom bap with a modern twist, crunchy snares, jazzy horns, and lyrical storytelling energy. Mood: Hustle, Confidence.",
		"High-energy club banger with Afrobeat-influenced percussion, pitched-up vocal samples, and a beat drop that hits like a freight train. Mood: Party, Unstoppable.",
		"Futuristic drill beat with icy synths, rapid hi-hat rolls, and cinematic FX. Mood: Cold, Intense.",
	},
	"country": {
		"Southern backroad anthem with stomping drums, dirty slide guitar, and an outlaw vibe. Mood: Rowdy, Rebel.",
		"Modern country-pop hit with upbeat acoustic strums, catchy hooks, and arena-sized choruses. Mood: Free, Wild.",
		"Banjo-driven country rock with a pounding kick, electric guitar solos, and whiskey-fueled energy. Mood: Bold, Celebratory.",
		"High-octane bluegrass fusion with double-time fiddle riffs, foot-stomping rhythm, and explosive breakdowns. Mood: Fast, Fiery.",
		"Dark country trap with ominous Dobro slides, moody pads, and deep bass. Mood: Mysterious, Menacing.",
	},
}

// pickPrompt выбирает промпт композиции.
//
// Свой промпт клиента побеждает; без него выбор из пула жанра
// детерминирован по теме, чтобы одна тема звучала стабильно.
func pickPrompt(custom, genre, topic string) string {
	if custom != "" {
		return custom
	}

	pool, ok := genrePrompts[strings.ToLower(genre)]
	if !ok || len(pool) == 0 {
		return fmt.Sprintf("Default prompt for %s", genre)
	}

	h := fnv.New32a()
	h.Write([]byte(strings.ToLower(topic)))
	return pool[h.Sum32()%uint32(len(pool))]
}
