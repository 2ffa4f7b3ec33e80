package mcp

import (
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/shaiso/Mnemo/internal/domain"
)

// ModelAuto — псевдо-модель, включающая автоматический выбор.
const ModelAuto = "auto"

// longInputThreshold — длина текста (в рунах), начиная с которой
// auto-выбор предпочитает большую текстовую модель.
const longInputThreshold = 100

// Router — реестр моделей и эвристика выбора.
// Потокобезопасен.
type Router struct {
	mu     sync.RWMutex
	models map[string]domain.Model
}

// NewRouter создаёт Router со всеми моделями из каталога.
func NewRouter() *Router {
	r := &Router{models: make(map[string]domain.Model)}
	for _, m := range domain.Models() {
		r.Register(m)
	}
	return r
}

// Register регистрирует модель. Существующая модель перезаписывается.
func (r *Router) Register(m domain.Model) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.models[m.ID] = m
}

// Get возвращает модель по ID.
func (r *Router) Get(id string) (domain.Model, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.models[id]
	if !ok {
		return domain.Model{}, fmt.Errorf("%w: %s", ErrUnknownModel, id)
	}
	return m, nil
}

// Has проверяет, зарегистрирована ли модель.
func (r *Router) Has(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.models[id]
	return ok
}

// Resolve выбирает модель для входного текста.
//
// Явно запрошенная модель (не "auto") возвращается как есть,
// если зарегистрирована. Для "auto" работает эвристика
// по ключевым словам:
//
//	picture, image      → image-модель
//	video, animation    → video-модель
//	song, music, melody → music-модель
//	длинный текст       → большая текстовая модель
//	иначе               → текстовая модель по умолчанию
func (r *Router) Resolve(input, requested string) (domain.Model, error) {
	if requested != "" && requested != ModelAuto {
		return r.Get(requested)
	}

	lower := strings.ToLower(input)

	switch {
	case containsAny(lower, "picture", "image"):
		return r.Get(domain.ModelImage)
	case containsAny(lower, "video", "animation"):
		return r.Get(domain.ModelVideo)
	case containsAny(lower, "song", "music", "melody"):
		return r.Get(domain.ModelMusic)
	case utf8.RuneCountInString(input) > longInputThreshold:
		return r.Get(domain.ModelTextLarge)
	default:
		return r.Get(domain.ModelTextSmall)
	}
}

// containsAny проверяет вхождение любого из ключевых слов.
func containsAny(s string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
