package domain

import "path"

// FallbackBaseURL is the public archive hosting each package as a zip file.
const FallbackBaseURL = "https://raw.githubusercontent.com/nltk/nltk_data/gh-pages/packages"

// Category is the top-level data directory a package is installed under.
type Category string

// Known package categories.
const (
	// CategoryTokenizers holds sentence and word tokenizer models.
	CategoryTokenizers Category = "tokenizers"

	// CategoryCorpora holds stopword lists and lexical databases.
	CategoryCorpora Category = "corpora"

	// CategoryTaggers holds part-of-speech tagger models.
	CategoryTaggers Category = "taggers"
)

// Categories returns the fixed set of categories in creation order.
func Categories() []Category {
	return []Category{CategoryTokenizers, CategoryCorpora, CategoryTaggers}
}

// IsValid returns true if the category is recognised.
func (c Category) IsValid() bool {
	switch c {
	case CategoryTokenizers, CategoryCorpora, CategoryTaggers:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (c Category) String() string {
	return string(c)
}

// Package identifies one downloadable NLTK data resource.
type Package struct {
	// Category is the directory the package is installed under.
	Category Category

	// Name is the package identifier in the remote index, e.g. "punkt".
	Name string
}

// ResourcePath returns the conventional lookup path "<category>/<name>".
func (p Package) ResourcePath() string {
	return path.Join(string(p.Category), p.Name)
}

// FallbackURL returns the direct-download URL of the package archive.
func (p Package) FallbackURL() string {
	return FallbackBaseURL + "/" + p.ResourcePath() + ".zip"
}

// String returns "name (category)".
func (p Package) String() string {
	return p.Name + " (" + string(p.Category) + ")"
}

// RequiredPackages returns the packages a downstream toolchain expects.
// The order only affects output ordering. A new slice is returned on
// every call so callers cannot mutate the set.
func RequiredPackages() []Package {
	return []Package{
		{Category: CategoryTokenizers, Name: "punkt"},
		{Category: CategoryTokenizers, Name: "punkt_tab"},
		{Category: CategoryCorpora, Name: "stopwords"},
		{Category: CategoryCorpora, Name: "wordnet"},
		{Category: CategoryTaggers, Name: "averaged_perceptron_tagger"},
		{Category: CategoryTaggers, Name: "averaged_perceptron_tagger_eng"},
	}
}
