// Package language guesses the language of uploaded text.
package language

import (
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/pemistahl/lingua-go"
)

// supported is the set of languages the detector chooses from. Loading every
// lingua model is slow, so the set is kept small.
var supported = []lingua.Language{
	lingua.English,
	lingua.French,
	lingua.German,
	lingua.Spanish,
	lingua.Italian,
	lingua.Portuguese,
	lingua.Dutch,
	lingua.Polish,
	lingua.Lithuanian,
	lingua.Russian,
	lingua.Chinese,
	lingua.Japanese,
	lingua.Korean,
	lingua.Thai,
}

// unsegmented holds ISO 639-1 codes of languages written without spaces
// between words. The tokenizer cannot split these.
var unsegmented = map[string]struct{}{
	"zh": {},
	"ja": {},
	"th": {},
}

// sampleLimit caps how much text is fed to the detector.
const sampleLimit = 4096

// Detector wraps a lazily built lingua detector.
type Detector struct {
	once     sync.Once
	detector lingua.LanguageDetector
}

// NewDetector returns a Detector. Models load on first use.
func NewDetector() *Detector {
	return &Detector{}
}

func (d *Detector) build() {
	d.detector = lingua.NewLanguageDetectorBuilder().
		FromLanguages(supported...).
		Build()
}

// Detect returns the lowercase ISO 639-1 code of the text's language.
func (d *Detector) Detect(text string) (string, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", false
	}
	if len(text) > sampleLimit {
		cut := sampleLimit
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
		text = text[:cut]
	}

	d.once.Do(d.build)
	lang, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return "", false
	}
	return strings.ToLower(lang.IsoCode639_1().String()), true
}

// NeedsSegmentation reports whether text in the language cannot be split on
// whitespace and punctuation alone.
func NeedsSegmentation(iso string) bool {
	_, ok := unsegmented[strings.ToLower(iso)]
	return ok
}
