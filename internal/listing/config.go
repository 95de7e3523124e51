package listing

import (
	"errors"
	"fmt"

	"golang.org/x/text/language"

	"github.com/rshade/listctl/internal/pagination"
)

// DefaultLocale is used for collation and number formatting when none is set.
const DefaultLocale = "en"

// ErrInvalidLocale is returned for a locale that is not a BCP 47 tag.
var ErrInvalidLocale = errors.New("invalid locale")

// Config controls a Controller.
type Config struct {
	// PageSize is the initial page size.
	PageSize pagination.PageSize

	// PageSizeOptions are the sizes a renderer offers for selection.
	PageSizeOptions []pagination.PageSize

	// Searchable enables Filter intents and the search input.
	Searchable bool

	// Sortable enables Sort intents and click-to-sort headers.
	Sortable bool

	// Locale selects collation and number formatting, e.g. "en" or "de-CH".
	Locale string
}

// DefaultConfig returns page size 10, options 5/10/50/100/All, searchable
// and sortable, English locale.
func DefaultConfig() Config {
	return Config{
		PageSize:        pagination.Size(pagination.DefaultPageSize),
		PageSizeOptions: pagination.DefaultPageSizeOptions(),
		Searchable:      true,
		Sortable:        true,
		Locale:          DefaultLocale,
	}
}

// Validate reports the first unusable setting.
func (c Config) Validate() error {
	if !c.PageSize.Valid() {
		return fmt.Errorf("page size: %w", pagination.ErrInvalidPageSize)
	}
	if err := pagination.ValidateOptions(c.PageSizeOptions); err != nil {
		return fmt.Errorf("page size options: %w", err)
	}
	if _, err := c.LanguageTag(); err != nil {
		return err
	}
	return nil
}

// LanguageTag parses Locale, treating "" as DefaultLocale.
func (c Config) LanguageTag() (language.Tag, error) {
	locale := c.Locale
	if locale == "" {
		locale = DefaultLocale
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return language.English, fmt.Errorf("%w %q: %w", ErrInvalidLocale, locale, err)
	}
	return tag, nil
}

// normalized replaces unusable settings with defaults and lists what it replaced.
func (c Config) normalized() (Config, []string) {
	def := DefaultConfig()
	var replaced []string
	if !c.PageSize.Valid() {
		c.PageSize = def.PageSize
		replaced = append(replaced, "page_size")
	}
	if pagination.ValidateOptions(c.PageSizeOptions) != nil {
		c.PageSizeOptions = def.PageSizeOptions
		replaced = append(replaced, "page_size_options")
	}
	if _, err := c.LanguageTag(); err != nil {
		c.Locale = def.Locale
		replaced = append(replaced, "locale")
	}
	return c, replaced
}
