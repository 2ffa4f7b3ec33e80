package beatoven

import (
	"fmt"
	"strings"
	"time"

	"github.com/shaiso/Mnemo/internal/domain"
)

// Заглушки для TEST_MODE и деградации при обрыве сети.
// URL ведут на общедоступные MP3-сэмплы, чтобы фронтенд
// мог проиграть "трек" без живого провайдера.
const (
	SampleTrackURL = "https://filesamples.com/samples/audio/mp3/sample3.mp3"

	MockCreatedAt = "2023-05-08T10:00:00Z"
	MockUpdatedAt = "2023-05-08T10:01:00Z"
)

// SampleStems возвращает заглушечные stems для mock task.
func SampleStems() map[string]string {
	return map[string]string{
		"bass":       "https://filesamples.com/samples/audio/mp3/sample1.mp3",
		"chords":     "https://filesamples.com/samples/audio/mp3/sample2.mp3",
		"melody":     "https://filesamples.com/samples/audio/mp3/sample3.mp3",
		"percussion": "https://filesamples.com/samples/audio/mp3/sample4.mp3",
	}
}

// MockTrack — ответ на создание трека в TEST_MODE.
func MockTrack(genre, name string, duration int) *Track {
	now := time.Now().Unix()
	return &Track{
		ID:         fmt.Sprintf("test-track-%s-%d", genre, now),
		TaskID:     fmt.Sprintf("test-task-%s-%d", genre, now),
		Name:       name,
		Duration:   duration,
		Genre:      genre,
		Status:     domain.ProviderStatusComposing,
		Version:    1,
		PreviewURL: SampleTrackURL,
	}
}

// FallbackTrack — ответ при обрыве соединения с провайдером.
// Отличается от MockTrack только префиксом идентификаторов.
func FallbackTrack(genre, name string, duration int) *Track {
	track := MockTrack(genre, name, duration)
	track.ID = strings.Replace(track.ID, "test-", "fallback-", 1)
	track.TaskID = strings.Replace(track.TaskID, "test-", "fallback-", 1)
	return track
}

// MockTask — статус task для синтетических идентификаторов.
func MockTask(taskID string) *Task {
	now := time.Now().Unix()
	return &Task{
		TaskID:    taskID,
		Status:    domain.ProviderStatusComposed,
		TrackURL:  SampleTrackURL,
		Stems:     SampleStems(),
		ProjectID: fmt.Sprintf("mock-project-%d", now),
		TrackID:   fmt.Sprintf("mock-track-%d", now),
	}
}

// FallbackTask — статус task при обрыве соединения с провайдером.
func FallbackTask(taskID string) *Task {
	task := MockTask(taskID)
	task.ProjectID = strings.Replace(task.ProjectID, "mock-", "fallback-", 1)
	task.TrackID = strings.Replace(task.TrackID, "mock-", "fallback-", 1)
	return task
}

// MockTrackStatus — статус трека для синтетических идентификаторов.
func MockTrackStatus(trackID, name, genre string) *Track {
	return &Track{
		ID:         trackID,
		Name:       name,
		Duration:   60,
		Genre:      genre,
		Status:     domain.ProviderStatusCompleted,
		PreviewURL: SampleTrackURL,
		CreatedAt:  MockCreatedAt,
		UpdatedAt:  MockUpdatedAt,
	}
}

// syntheticPrefixes — префиксы идентификаторов, которые сервис
// сгенерировал сам и которые нельзя спрашивать у провайдера.
var syntheticPrefixes = []string{
	"test-track-", "test-task-",
	"fallback-track-", "fallback-task-",
	"mock-track-", "mock-task-",
}

// IsSynthetic возвращает true для локально сгенерированных идентификаторов.
func IsSynthetic(id string) bool {
	for _, prefix := range syntheticPrefixes {
		if strings.HasPrefix(id, prefix) {
			return true
		}
	}
	return false
}

// GenreFromSyntheticID извлекает жанр из синтетического идентификатора
// вида test-track-<genre>-<unix>.
func GenreFromSyntheticID(id string) string {
	parts := strings.Split(id, "-")
	if len(parts) > 2 {
		return parts[2]
	}
	return "unknown"
}
