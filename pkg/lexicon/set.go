package lexicon

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Set bundles the taxonomies used by one classifier instance
type Set struct {
	Emotion Lexicon
	Tone    Lexicon
	Intent  Lexicon
	Mood    Lexicon
}

// Taxonomy looks a lexicon up by name
func (s Set) Taxonomy(name Taxonomy) (Lexicon, bool) {
	switch name {
	case TaxonomyEmotion:
		return s.Emotion, true
	case TaxonomyTone:
		return s.Tone, true
	case TaxonomyIntent:
		return s.Intent, true
	case TaxonomyMood:
		return s.Mood, true
	default:
		return Lexicon{}, false
	}
}

// TriggersFor returns the triggers declared for category in taxonomy.
// Asking for a taxonomy that does not exist is a programming error and panics.
func (s Set) TriggersFor(taxonomy Taxonomy, category string) []string {
	lex, ok := s.Taxonomy(taxonomy)
	if !ok {
		panic(fmt.Sprintf("lexicon: unknown taxonomy %q", taxonomy))
	}
	return lex.Triggers(category)
}

// file is the on-disk YAML shape
type file struct {
	Emotion []Entry `yaml:"emotion"`
	Tone    []Entry `yaml:"tone"`
	Intent  []Entry `yaml:"intent"`
	Mood    []Entry `yaml:"mood"`
}

// Load reads a lexicon set from a YAML file. Taxonomies missing from the file keep their
// built-in defaults, so a file may override only the lexicons it cares about.
func Load(path string) (Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Set{}, fmt.Errorf("failed to read lexicon file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a YAML lexicon document, see Load
func Parse(data []byte) (Set, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Set{}, fmt.Errorf("failed to parse lexicon yaml: %w", err)
	}

	set := Default()
	overrides := []struct {
		name    Taxonomy
		entries []Entry
		target  *Lexicon
	}{
		{TaxonomyEmotion, f.Emotion, &set.Emotion},
		{TaxonomyTone, f.Tone, &set.Tone},
		{TaxonomyIntent, f.Intent, &set.Intent},
		{TaxonomyMood, f.Mood, &set.Mood},
	}
	for _, o := range overrides {
		if o.entries == nil {
			continue
		}
		lex, err := New(o.entries)
		if err != nil {
			return Set{}, fmt.Errorf("invalid %s lexicon: %w", o.name, err)
		}
		*o.target = lex
	}

	return set, nil
}

// Marshal renders the set in the same YAML shape Load accepts
func (s Set) Marshal() ([]byte, error) {
	return yaml.Marshal(file{
		Emotion: s.Emotion.Entries(),
		Tone:    s.Tone.Entries(),
		Intent:  s.Intent.Entries(),
		Mood:    s.Mood.Entries(),
	})
}
