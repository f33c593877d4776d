// Package i18n holds the message catalogs used for reminder texts.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"sync"
)

const (
	LangEN = "en"
	LangRU = "ru"
)

//go:embed locales/*.json
var builtinLocales embed.FS

// catalog maps message keys to format strings for one language.
type catalog map[string]string

type Manager struct {
	defaultLanguage string
	locales         map[string]catalog
}

var builtin = sync.OnceValues(func() (*Manager, error) {
	return NewManager(LangEN, builtinLocales, "locales")
})

// Default returns the manager over the built-in locales. A broken embedded
// catalog is a build defect, so it panics.
func Default() *Manager {
	manager, err := builtin()
	if err != nil {
		panic(fmt.Sprintf("i18n: built-in locales: %v", err))
	}
	return manager
}

// NewManager loads every <lang>.json file in dir. An English catalog is
// mandatory; an unknown defaultLanguage resolves to English.
func NewManager(defaultLanguage string, fsys fs.FS, dir string) (*Manager, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read locales dir: %w", err)
	}

	locales := make(map[string]catalog, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || path.Ext(name) != ".json" {
			continue
		}
		language := strings.ToLower(strings.TrimSuffix(name, path.Ext(name)))
		messages, err := readCatalog(fsys, path.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("locale %s: %w", language, err)
		}
		locales[language] = messages
	}
	if _, ok := locales[LangEN]; !ok {
		return nil, fmt.Errorf("required locale %q missing from %s", LangEN, dir)
	}

	manager := &Manager{defaultLanguage: LangEN, locales: locales}
	manager.defaultLanguage = manager.NormalizeLanguage(defaultLanguage)
	return manager, nil
}

func readCatalog(fsys fs.FS, name string) (catalog, error) {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, err
	}
	var messages catalog
	if err := json.Unmarshal(raw, &messages); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if len(messages) == 0 {
		return nil, fmt.Errorf("no messages")
	}
	return messages, nil
}

func (manager *Manager) DefaultLanguage() string {
	return manager.defaultLanguage
}

// NormalizeLanguage reduces tags like "ru-RU" or "en_US" to their primary
// subtag and returns it when a catalog exists, else the default language.
func (manager *Manager) NormalizeLanguage(raw string) string {
	tag := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(raw)), "_", "-")
	primary, _, _ := strings.Cut(tag, "-")
	if _, ok := manager.locales[primary]; ok && primary != "" {
		return primary
	}
	return manager.defaultLanguage
}

// Translate tries language, the default language and English in turn.
// A key with no message anywhere is returned unchanged.
func (manager *Manager) Translate(language string, key string) string {
	for _, candidate := range [...]string{manager.NormalizeLanguage(language), manager.defaultLanguage, LangEN} {
		if message := manager.locales[candidate][key]; strings.TrimSpace(message) != "" {
			return message
		}
	}
	return key
}

func (manager *Manager) Translatef(language string, key string, args ...any) string {
	return fmt.Sprintf(manager.Translate(language, key), args...)
}
