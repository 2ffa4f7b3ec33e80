package beatoven

import (
	"context"
	"fmt"
	"time"
)

// Параметры poll-цикла по умолчанию.
const (
	pollMaxAttempts   = 10
	pollInitialDelay  = 3 * time.Second
	pollMaxDelay      = 15 * time.Second
	pollBackoffFactor = 1.5
)

// PollTrack опрашивает статус трека до готовности.
//
// Делает до pollMaxAttempts запросов с нарастающей задержкой
// (initialDelay * 1.5^n, не больше maxDelay). Возвращает:
//   - готовый трек, как только статус COMPLETED и preview — MP3
//   - трек + ErrGenerationFailed при статусе FAILED/ERROR
//   - последний известный трек и nil, если попытки исчерпаны
//     (трек ещё компонуется — это не ошибка)
//
// Ошибки отдельных запросов логируются и не прерывают цикл.
func (c *Client) PollTrack(ctx context.Context, trackID string) (*Track, error) {
	delay := c.pollInitialDelay
	var last *Track

	for attempt := 1; attempt <= c.pollMaxAttempts; attempt++ {
		select {
		case <-ctx.Done():
			return last, ctx.Err()
		case <-time.After(delay):
		}

		delay = nextDelay(delay, c.pollMaxDelay)

		track, err := c.GetTrack(ctx, trackID)
		if err != nil {
			c.logger.Warn("track poll failed",
				"track_id", trackID,
				"attempt", attempt,
				"error", err,
			)
			continue
		}

		last = track

		c.logger.Debug("track poll",
			"track_id", trackID,
			"attempt", attempt,
			"status", track.Status,
			"preview_url", track.PreviewURL,
		)

		if track.Ready() {
			return track, nil
		}
		if track.Failed() {
			return track, fmt.Errorf("%w: status %s", ErrGenerationFailed, track.Status)
		}
	}

	return last, nil
}

// nextDelay вычисляет следующую задержку poll-цикла.
func nextDelay(current, limit time.Duration) time.Duration {
	next := time.Duration(float64(current) * pollBackoffFactor)
	if next > limit {
		return limit
	}
	return next
}
