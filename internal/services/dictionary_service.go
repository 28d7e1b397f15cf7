package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/yukikurage/notes-api/internal/cache"
	"github.com/yukikurage/notes-api/internal/constants"
	"golang.org/x/time/rate"
)

var (
	ErrWordRequired    = errors.New("word is required")
	ErrWordNotFound    = errors.New("no definitions found")
	ErrUpstreamFailure = errors.New("dictionary service unavailable")
)

// Definition is the trimmed view of a dictionary entry.
type Definition struct {
	Word     string    `json:"word"`
	Phonetic string    `json:"phonetic"`
	Audio    string    `json:"audio,omitempty"`
	Meanings []Meaning `json:"meanings"`
}

type Meaning struct {
	PartOfSpeech string        `json:"part_of_speech"`
	Definitions  []WordMeaning `json:"definitions"`
}

type WordMeaning struct {
	Definition string   `json:"definition"`
	Example    string   `json:"example,omitempty"`
	Synonyms   []string `json:"synonyms"`
	Antonyms   []string `json:"antonyms"`
}

// upstream response shapes
type apiEntry struct {
	Word      string        `json:"word"`
	Phonetic  string        `json:"phonetic"`
	Phonetics []apiPhonetic `json:"phonetics"`
	Meanings  []apiMeaning  `json:"meanings"`
}

type apiPhonetic struct {
	Text  string `json:"text"`
	Audio string `json:"audio"`
}

type apiMeaning struct {
	PartOfSpeech string          `json:"partOfSpeech"`
	Definitions  []apiDefinition `json:"definitions"`
}

type apiDefinition struct {
	Definition string   `json:"definition"`
	Example    string   `json:"example"`
	Synonyms   []string `json:"synonyms"`
	Antonyms   []string `json:"antonyms"`
}

// DictionaryConfig configures the dictionary lookup client.
type DictionaryConfig struct {
	BaseURL    string
	CacheTTL   time.Duration
	RatePerSec float64
	HTTPClient *http.Client
}

// DictionaryService looks up word definitions from the public dictionary API.
type DictionaryService struct {
	baseURL string
	client  *http.Client
	cache   cache.DefinitionCache
	ttl     time.Duration
	limiter *rate.Limiter
}

// NewDictionaryService creates a DictionaryService. defCache may be nil.
func NewDictionaryService(cfg DictionaryConfig, defCache cache.DefinitionCache) *DictionaryService {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = constants.DefaultDictionaryBaseURL
	}
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	limit := rate.Inf
	if cfg.RatePerSec > 0 {
		limit = rate.Limit(cfg.RatePerSec)
	}

	return &DictionaryService{
		baseURL: baseURL,
		client:  client,
		cache:   defCache,
		ttl:     cfg.CacheTTL,
		limiter: rate.NewLimiter(limit, 1),
	}
}

// Lookup returns the definition of word. Cache failures are logged and the
// upstream is queried instead.
func (s *DictionaryService) Lookup(ctx context.Context, word string) (*Definition, error) {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return nil, ErrWordRequired
	}

	if def, ok := s.fromCache(ctx, word); ok {
		return def, nil
	}

	def, err := s.fetch(ctx, word)
	if err != nil {
		return nil, err
	}

	s.store(ctx, word, def)
	return def, nil
}

func (s *DictionaryService) fromCache(ctx context.Context, word string) (*Definition, bool) {
	if s.cache == nil {
		return nil, false
	}

	data, ok, err := s.cache.GetDefinition(ctx, word)
	if err != nil {
		logrus.WithError(err).WithField("word", word).Warn("Dictionary cache read failed")
		return nil, false
	}
	if !ok {
		return nil, false
	}

	var def Definition
	if err := json.Unmarshal(data, &def); err != nil {
		logrus.WithError(err).WithField("word", word).Warn("Discarding invalid cached definition")
		return nil, false
	}
	return &def, true
}

func (s *DictionaryService) store(ctx context.Context, word string, def *Definition) {
	if s.cache == nil {
		return
	}

	data, err := json.Marshal(def)
	if err != nil {
		return
	}
	if err := s.cache.SetDefinition(ctx, word, data, s.ttl); err != nil {
		logrus.WithError(err).WithField("word", word).Warn("Dictionary cache write failed")
	}
}

func (s *DictionaryService) fetch(ctx context.Context, word string) (*Definition, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamFailure, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/"+url.PathEscape(word), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamFailure, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrWordNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrUpstreamFailure, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamFailure, err)
	}

	var entries []apiEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("%w: malformed response: %v", ErrUpstreamFailure, err)
	}
	if len(entries) == 0 {
		return nil, ErrWordNotFound
	}

	return trimEntry(entries[0]), nil
}

// trimEntry keeps the first phonetic that carries audio and at most
// MaxDefinitionsPerMeaning definitions per meaning.
func trimEntry(entry apiEntry) *Definition {
	def := &Definition{
		Word:     entry.Word,
		Phonetic: entry.Phonetic,
		Meanings: make([]Meaning, 0, len(entry.Meanings)),
	}

	for _, p := range entry.Phonetics {
		if p.Audio != "" {
			def.Audio = p.Audio
			break
		}
	}

	for _, m := range entry.Meanings {
		n := min(len(m.Definitions), constants.MaxDefinitionsPerMeaning)
		meaning := Meaning{
			PartOfSpeech: m.PartOfSpeech,
			Definitions:  make([]WordMeaning, 0, n),
		}
		for _, d := range m.Definitions[:n] {
			meaning.Definitions = append(meaning.Definitions, WordMeaning{
				Definition: d.Definition,
				Example:    d.Example,
				Synonyms:   nonNil(d.Synonyms),
				Antonyms:   nonNil(d.Antonyms),
			})
		}
		def.Meanings = append(def.Meanings, meaning)
	}

	return def
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
