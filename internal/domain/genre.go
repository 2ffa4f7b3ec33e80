package domain

import "strings"

// Genre — дескриптор музыкального жанра для /api/music/genres.
type Genre struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Genres возвращает каталог поддерживаемых жанров.
func Genres() []Genre {
	return []Genre{
		{ID: "pop", Name: "Pop", Description: "Popular music with catchy melodies"},
		{ID: "rock", Name: "Rock", Description: "Guitar-driven energetic music"},
		{ID: "jazz", Name: "Jazz", Description: "Improvisational complex harmonies"},
		{ID: "classical", Name: "Classical", Description: "Traditional orchestral music"},
		{ID: "electronic", Name: "Electronic", Description: "Digital synthesized music"},
		{ID: "hip_hop", Name: "Hip Hop", Description: "Rhythmic beats with spoken lyrics"},
		{ID: "country", Name: "Country", Description: "Folk-influenced American music"},
		{ID: "folk", Name: "Folk", Description: "Traditional acoustic cultural music"},
	}
}

// providerGenres — маппинг наших жанров на жанры провайдера.
var providerGenres = map[string]string{
	"hip_hop":    "hip-hop",
	"country":    "country",
	"pop":        "pop",
	"rock":       "rock",
	"jazz":       "jazz",
	"classical":  "classical",
	"electronic": "electronic",
	"folk":       "acoustic",
}

// ProviderGenre возвращает жанр в написании провайдера.
// Неизвестные жанры передаются как есть.
func ProviderGenre(genre string) string {
	if mapped, ok := providerGenres[strings.ToLower(genre)]; ok {
		return mapped
	}
	return genre
}

// KnownGenre проверяет, есть ли жанр в каталоге.
func KnownGenre(id string) bool {
	_, ok := providerGenres[strings.ToLower(id)]
	return ok
}
