package lyrics

import (
	"context"
	"fmt"
	"hash/fnv"
	"log/slog"
	"strings"
	"text/template"
	"time"
)

// Fetcher — источник фактов для тем, которых нет в каталоге.
type Fetcher interface {
	Summary(ctx context.Context, topic string) (string, error)
}

// Engine собирает текст песни по теме и жанру.
type Engine struct {
	wiki   Fetcher
	now    func() time.Time
	logger *slog.Logger
}

// Option настраивает Engine.
type Option func(*Engine)

// WithFetcher задаёт источник фактов вне каталога (nil отключает его).
func WithFetcher(f Fetcher) Option {
	return func(e *Engine) { e.wiki = f }
}

// WithClock задаёт источник времени для выбора стиля.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithLogger задаёт логгер.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// NewEngine создаёт движок сборки текстов.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		now:    time.Now,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// templateData — данные, доступные шаблонам стиля.
type templateData struct {
	Topic string
	Genre string
	Facts string
}

// templateFuncs — функции, доступные шаблонам стиля.
var templateFuncs = template.FuncMap{
	"title": titleCase,
	"lower": strings.ToLower,
	"upper": strings.ToUpper,
	"trim":  strings.TrimSpace,
}

// Generate собирает текст песни.
//
// Факты берутся из статического каталога; если темы там нет —
// из энциклопедии. Отсутствие фактов не ошибка: шаблоны собираются
// и без них. Ошибка возможна только при сломанном шаблоне.
func (e *Engine) Generate(ctx context.Context, topic, genre string) (string, error) {
	facts := e.facts(ctx, topic)

	style := e.pickStyle(topic, genre)

	data := templateData{
		Topic: NormalizeTopic(topic),
		Genre: genre,
		Facts: facts,
	}
	if data.Topic == "" {
		data.Topic = "learning"
	}

	// Форма песни: V1, C, V2, C [, Bridge], финальный C.
	sections := []string{style.verse1, style.chorus, style.verse2, style.chorus}
	if hasBridge(genre) {
		sections = append(sections, style.bridge)
	}
	sections = append(sections, style.chorus)

	parts := make([]string, 0, len(sections))
	for i, section := range sections {
		rendered, err := renderSection(fmt.Sprintf("section-%d", i), section, data)
		if err != nil {
			return "", err
		}
		parts = append(parts, rendered)
	}

	return strings.Join(parts, "\n\n"), nil
}

// facts возвращает усечённые факты по теме или пустую строку.
func (e *Engine) facts(ctx context.Context, topic string) string {
	if facts, ok := LookupFacts(topic); ok {
		return TruncateFacts(facts, factBudget)
	}

	if e.wiki == nil {
		return ""
	}

	summary, err := e.wiki.Summary(ctx, topic)
	if err != nil {
		e.logger.Debug("encyclopedia lookup failed",
			slog.String("topic", topic),
			slog.String("error", err.Error()))
		return ""
	}

	return TruncateFacts(summary, factBudget)
}

// pickStyle выбирает стиль детерминированно по теме и текущему часу:
// одна тема звучит одинаково в пределах часа, но меняется со временем.
func (e *Engine) pickStyle(topic, genre string) styleSet {
	styles := stylesFor(genre)

	h := fnv.New32a()
	h.Write([]byte(NormalizeTopic(topic)))
	h.Write([]byte(e.now().Format("2006010215")))

	return styles[h.Sum32()%uint32(len(styles))]
}

// renderSection рендерит одну секцию песни.
func renderSection(name, text string, data templateData) (string, error) {
	tmpl, err := template.New(name).Funcs(templateFuncs).Parse(text)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplateParse, err)
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}

	return strings.TrimSpace(b.String()), nil
}

// titleCase поднимает первую букву каждого слова.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		runes := []rune(word)
		if len(runes) > 0 {
			runes[0] = []rune(strings.ToUpper(string(runes[0])))[0]
		}
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
