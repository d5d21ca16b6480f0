package assetpath

import (
	"regexp"
	"strings"
)

var absoluteURL = regexp.MustCompile(`^(?:https?:)?//`)

// Resolver добавляет базовый путь сайта к локальным путям медиа.
// Внешние URL (http, https и //host) возвращаются без изменений.
type Resolver struct {
	basePath string
}

func NewResolver(basePath string) Resolver {
	return Resolver{basePath: strings.TrimRight(basePath, "/")}
}

// IsExternal сообщает, указывает ли путь на внешний ресурс
func IsExternal(input string) bool {
	return absoluteURL.MatchString(input)
}

func (r Resolver) BasePath() string {
	return r.basePath
}

// Resolve идемпотентен: повторный вызов на результате ничего не меняет
func (r Resolver) Resolve(input string) string {
	if input == "" {
		return input
	}
	if IsExternal(input) {
		return input
	}

	normalized := input
	if !strings.HasPrefix(normalized, "/") {
		normalized = "/" + normalized
	}

	if r.basePath == "" {
		return normalized
	}
	if strings.HasPrefix(normalized, r.basePath+"/") {
		return normalized
	}

	return r.basePath + normalized
}
