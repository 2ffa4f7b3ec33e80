package lyrics

import "errors"

// Ошибки сборки текстов.
var (
	// ErrTemplateParse — ошибка парсинга шаблона стиля.
	ErrTemplateParse = errors.New("lyric template parse failed")

	// ErrTemplateRender — ошибка рендеринга шаблона стиля.
	ErrTemplateRender = errors.New("lyric template render failed")
)

// Ошибки энциклопедии.
var (
	// ErrNoResults — поиск не нашёл ни одной статьи.
	ErrNoResults = errors.New("encyclopedia search returned no results")

	// ErrWikiRequest — запрос к энциклопедии не удался.
	ErrWikiRequest = errors.New("encyclopedia request failed")
)
