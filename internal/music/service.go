package music

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shaiso/Mnemo/internal/beatoven"
	"github.com/shaiso/Mnemo/internal/domain"
	"github.com/shaiso/Mnemo/internal/store"
	"github.com/shaiso/Mnemo/internal/telemetry"
)

// Provider — клиент провайдера композиции (см. internal/beatoven).
type Provider interface {
	CreateTrack(ctx context.Context, req *beatoven.CreateTrackRequest) (*beatoven.Track, error)
	GetTrack(ctx context.Context, trackID string) (*beatoven.Track, error)
	GetTask(ctx context.Context, taskID string) (*beatoven.Task, error)
	PollTrack(ctx context.Context, trackID string) (*beatoven.Track, error)
	Configured() bool
	TestMode() bool
}

// Lyricist — движок сборки текстов (см. internal/lyrics).
type Lyricist interface {
	Generate(ctx context.Context, topic, genre string) (string, error)
}

// Service — оркестратор генерации учебных треков.
type Service struct {
	provider Provider
	lyrics   Lyricist
	registry *store.Registry
	logger   *slog.Logger
}

// NewService создаёт сервис.
func NewService(provider Provider, lyricist Lyricist, registry *store.Registry, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		provider: provider,
		lyrics:   lyricist,
		registry: registry,
		logger:   logger,
	}
}

// GenerateRequest — заявка на генерацию трека.
type GenerateRequest struct {
	Genre        string
	Duration     int
	Topic        string
	CustomPrompt string
	TestMode     bool

	// Poll — дождаться готовности трека перед ответом.
	Poll bool
}

// Result — результат генерации.
type Result struct {
	OutputURL      string
	Genre          string
	PromptUsed     string
	TrackID        string
	TaskID         string
	Status         domain.GenerationStatus
	Version        int
	ProviderStatus string
	Title          string
	Lyrics         string
}

// TrackResult — статус трека с регенерированным текстом песни.
type TrackResult struct {
	TrackID    string
	Status     string
	PreviewURL string
	CreatedAt  string
	UpdatedAt  string
	Title      string
	Lyrics     string
	IsReady    bool
}

// defaultDuration — длительность трека по умолчанию, секунды.
const defaultDuration = 60

// trackPageURL — страница трека, когда прямой MP3 ещё не готов.
func trackPageURL(trackID string) string {
	return "https://app.beatoven.ai/track/" + trackID
}

// Generate создаёт учебный трек.
//
// Сбои провайдера не ошибка: обрыв соединения деградирует в
// fallback-трек с сэмплом, остальные сбои — в placeholder-результат.
// Ошибка возвращается только при ненастроенном API-ключе.
func (s *Service) Generate(ctx context.Context, req *GenerateRequest) (*Result, error) {
	if !s.provider.Configured() {
		return nil, beatoven.ErrMissingAPIKey
	}

	if req.Duration <= 0 {
		req.Duration = defaultDuration
	}

	prompt := pickPrompt(req.CustomPrompt, req.Genre, req.Topic)
	title := domain.TrackTitle(req.Topic)
	testMode := req.TestMode || s.provider.TestMode()

	logger := telemetry.WithTopic(s.logger, req.Topic)
	logger.Info("generating track",
		slog.String("genre", req.Genre),
		slog.Bool("test_mode", testMode))

	// Незнакомый жанр не ошибка: провайдер принимает произвольные
	// значения, а тексты соберутся из generic-шаблонов.
	if !domain.KnownGenre(req.Genre) {
		logger.Warn("genre not in catalog, passing through", slog.String("genre", req.Genre))
	}

	var track *beatoven.Track
	if testMode {
		track = beatoven.MockTrack(req.Genre, title, req.Duration)
	} else {
		created, err := s.provider.CreateTrack(ctx, &beatoven.CreateTrackRequest{
			Name:         title,
			Duration:     req.Duration,
			Genre:        domain.ProviderGenre(req.Genre),
			CustomPrompt: prompt,
		})
		switch {
		case errors.Is(err, beatoven.ErrConnection):
			logger.Warn("provider unreachable, degrading to fallback track",
				slog.String("error", err.Error()))
			track = beatoven.FallbackTrack(req.Genre, title, req.Duration)
			testMode = true
		case err != nil:
			logger.Error("track creation failed", slog.String("error", err.Error()))
			return s.placeholderResult(req, prompt), nil
		default:
			track = created
		}
	}

	if req.Poll && !testMode && track.ID != "" {
		polled, err := s.provider.PollTrack(ctx, track.ID)
		if err != nil && !errors.Is(err, beatoven.ErrGenerationFailed) {
			logger.Warn("polling failed, returning last known state",
				slog.String("error", err.Error()))
		}
		if polled != nil {
			track.Status = polled.Status
			track.PreviewURL = polled.PreviewURL
		}
	}

	outputURL := track.PreviewURL
	if outputURL == "" {
		outputURL = trackPageURL(track.ID)
	}

	status := domain.StatusProcessing
	if strings.HasSuffix(outputURL, ".mp3") {
		status = domain.StatusCompleted
	}

	gen := &domain.Generation{
		TrackID:   track.ID,
		TaskID:    track.TaskID,
		Topic:     req.Topic,
		Genre:     req.Genre,
		Prompt:    prompt,
		OutputURL: outputURL,
		Status:    status,
		TestMode:  testMode,
		CreatedAt: time.Now(),
	}
	s.registry.Put(gen)

	version := track.Version
	if version == 0 {
		version = 1
	}
	providerStatus := track.Status
	if providerStatus == "" {
		providerStatus = domain.ProviderStatusComposing
	}

	return &Result{
		OutputURL:      outputURL,
		Genre:          req.Genre,
		PromptUsed:     prompt,
		TrackID:        track.ID,
		TaskID:         track.TaskID,
		Status:         status,
		Version:        version,
		ProviderStatus: providerStatus,
		Title:          title,
		Lyrics:         s.lyricsFor(ctx, req.Topic, req.Genre),
	}, nil
}

// TaskStatus возвращает статус composition task.
//
// Синтетические идентификаторы отвечаются локально; обрыв соединения
// деградирует в fallback task; ошибки API провайдера пробрасываются
// как типизированные (*beatoven.Error).
func (s *Service) TaskStatus(ctx context.Context, taskID string) (*beatoven.Task, error) {
	if !s.provider.Configured() {
		return nil, beatoven.ErrMissingAPIKey
	}

	if beatoven.IsSynthetic(taskID) {
		return beatoven.MockTask(taskID), nil
	}

	task, err := s.provider.GetTask(ctx, taskID)
	if errors.Is(err, beatoven.ErrConnection) {
		telemetry.WithTaskID(s.logger, taskID).Warn("provider unreachable, returning fallback task")
		return beatoven.FallbackTask(taskID), nil
	}
	if err != nil {
		return nil, err
	}

	return task, nil
}

// TrackStatus возвращает статус трека с регенерированным текстом.
func (s *Service) TrackStatus(ctx context.Context, trackID string) (*TrackResult, error) {
	if !s.provider.Configured() {
		return nil, beatoven.ErrMissingAPIKey
	}

	if beatoven.IsSynthetic(trackID) {
		return s.syntheticTrackStatus(ctx, trackID), nil
	}

	track, err := s.provider.GetTrack(ctx, trackID)
	if errors.Is(err, beatoven.ErrConnection) {
		telemetry.WithTrackID(s.logger, trackID).Warn("provider unreachable, returning fallback track status")
		return &TrackResult{
			TrackID:    trackID,
			Status:     domain.ProviderStatusCompleted,
			PreviewURL: beatoven.SampleTrackURL,
			CreatedAt:  beatoven.MockCreatedAt,
			UpdatedAt:  beatoven.MockUpdatedAt,
			Title:      "Learning Track (DNS Error Fallback)",
			Lyrics:     s.lyricsFor(ctx, "general learning", "pop"),
			IsReady:    true,
		}, nil
	}
	if err != nil {
		return nil, err
	}

	topic, genre := s.recoverTopic(trackID, track.Name, track.Genre)

	return &TrackResult{
		TrackID:    trackID,
		Status:     track.Status,
		PreviewURL: track.PreviewURL,
		CreatedAt:  track.CreatedAt,
		UpdatedAt:  track.UpdatedAt,
		Title:      track.Name,
		Lyrics:     s.lyricsFor(ctx, topic, genre),
		IsReady:    track.Ready(),
	}, nil
}

// syntheticTrackStatus отвечает на test-/fallback-идентификаторы
// без обращения к провайдеру.
func (s *Service) syntheticTrackStatus(ctx context.Context, trackID string) *TrackResult {
	topic := "test topic"
	genre := beatoven.GenreFromSyntheticID(trackID)
	if gen, err := s.registry.GetByTrack(trackID); err == nil {
		topic = gen.Topic
		genre = gen.Genre
	}

	track := beatoven.MockTrackStatus(trackID, domain.TrackTitle(topic), genre)

	return &TrackResult{
		TrackID:    trackID,
		Status:     track.Status,
		PreviewURL: track.PreviewURL,
		CreatedAt:  track.CreatedAt,
		UpdatedAt:  track.UpdatedAt,
		Title:      track.Name,
		Lyrics:     s.lyricsFor(ctx, topic, genre),
		IsReady:    true,
	}
}

// recoverTopic восстанавливает тему и жанр заявки: сначала реестр,
// затем разбор названия трека.
func (s *Service) recoverTopic(trackID, title, trackGenre string) (topic, genre string) {
	if gen, err := s.registry.GetByTrack(trackID); err == nil {
		return gen.Topic, gen.Genre
	}
	genre = trackGenre
	if genre == "" {
		genre = "pop"
	}
	return domain.TopicFromTitle(title), genre
}

// placeholderResult — результат при невосстановимом сбое провайдера.
func (s *Service) placeholderResult(req *GenerateRequest, prompt string) *Result {
	return &Result{
		OutputURL:      placeholderURL(req.Genre, req.Topic),
		Genre:          req.Genre,
		PromptUsed:     prompt,
		Status:         domain.StatusError,
		ProviderStatus: domain.ProviderStatusError,
		Title:          domain.TrackTitle(req.Topic),
		Lyrics:         fmt.Sprintf("Lyrics about %s in %s style would appear here.", req.Topic, req.Genre),
	}
}

// placeholderURL строит placeholder-картинку вместо аудио.
func placeholderURL(genre, topic string) string {
	text := strings.ReplaceAll(fmt.Sprintf("AI Music %s about %s", genre, topic), " ", "+")
	return "https://placehold.co/400x100.mp3?text=" + text
}

// lyricsFor собирает текст песни; сбой движка деградирует
// в canned-строку, а не в ошибку ответа.
func (s *Service) lyricsFor(ctx context.Context, topic, genre string) string {
	text, err := s.lyrics.Generate(ctx, topic, genre)
	if err != nil {
		telemetry.WithTopic(s.logger, topic).Error("lyric generation failed",
			slog.String("error", err.Error()))
		return fmt.Sprintf("Lyrics about %s in %s style would appear here.", topic, genre)
	}
	return text
}
