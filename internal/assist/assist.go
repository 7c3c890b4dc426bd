// Package assist drafts outreach messages and answers live questions about
// resources using Gemini.
//
// [Assistant] implements core.DraftingService and core.GroundingSearchService.
// Every call is throttled by a shared token bucket and answers are cached
// by prompt, so repeated clicks on the same resource cost one upstream call.
package assist

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
	"google.golang.org/genai"

	"github.com/JonMunkholm/CommunityDirectory/internal/core"
	"github.com/JonMunkholm/CommunityDirectory/internal/logging"
)

// DefaultModel is used when Options.Model is empty.
const DefaultModel = "gemini-2.5-flash"

const draftSystemPrompt = "You are a helpful assistant for social service professionals. Create short, friendly outreach messages."

// ErrEmptyResponse is returned when the model answers with no text.
var ErrEmptyResponse = errors.New("assistant returned no text")

// Generator is the slice of the genai client the assistant needs.
// *genai.Models satisfies it.
type Generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Options tune an Assistant. Zero values get defaults.
type Options struct {
	Model             string
	Timeout           time.Duration // per upstream call (default: 30s)
	CacheTTL          time.Duration // default: 10m; negative disables caching
	RequestsPerMinute int           // default: 30
	Temperature       float64       // sent only when positive
	MaxConcurrent     int           // upstream calls in flight (default: 4)
}

func (o Options) withDefaults() Options {
	if o.Model == "" {
		o.Model = DefaultModel
	}
	if o.Timeout <= 0 {
		o.Timeout = 30 * time.Second
	}
	if o.CacheTTL == 0 {
		o.CacheTTL = 10 * time.Minute
	}
	if o.RequestsPerMinute <= 0 {
		o.RequestsPerMinute = 30
	}
	if o.MaxConcurrent <= 0 {
		o.MaxConcurrent = 4
	}
	return o
}

var (
	_ core.DraftingService        = (*Assistant)(nil)
	_ core.GroundingSearchService = (*Assistant)(nil)
)

// Assistant is safe for concurrent use.
type Assistant struct {
	gen     Generator
	model   string
	timeout time.Duration
	ttl     time.Duration
	temp    float64
	cache   *gocache.Cache
	limiter *rate.Limiter
	gate    *gate
}

// New connects to the Gemini API. An empty apiKey returns
// core.ErrAssistUnavailable so callers can run without the feature.
func New(ctx context.Context, apiKey string, opts Options) (*Assistant, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, core.ErrAssistUnavailable
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return NewWithGenerator(client.Models, opts), nil
}

// NewWithGenerator builds an Assistant around any Generator.
func NewWithGenerator(gen Generator, opts Options) *Assistant {
	opts = opts.withDefaults()

	perSecond := rate.Limit(float64(opts.RequestsPerMinute) / 60)
	burst := max(1, opts.RequestsPerMinute/10)

	return &Assistant{
		gen:     gen,
		model:   opts.Model,
		timeout: opts.Timeout,
		ttl:     opts.CacheTTL,
		temp:    opts.Temperature,
		cache:   gocache.New(opts.CacheTTL, 2*opts.CacheTTL),
		limiter: rate.NewLimiter(perSecond, burst),
		gate:    newGate(opts.MaxConcurrent, opts.Timeout),
	}
}

// Model returns the model name requests are sent to.
func (a *Assistant) Model() string {
	return a.model
}

// InFlight is the number of upstream calls currently running.
func (a *Assistant) InFlight() int {
	return int(a.gate.active.Load())
}

// Drain waits for in-flight upstream calls to finish, for graceful
// shutdown.
func (a *Assistant) Drain(ctx context.Context) error {
	return a.gate.drain(ctx)
}

// DefaultDraftInstructions is the prompt offered before the user edits it.
func DefaultDraftInstructions(r core.Resource) string {
	services := r.Services
	if len(services) > 2 {
		services = services[:2]
	}
	return fmt.Sprintf("Draft a text message for a client named %q introducing %s. Mention they offer %s.",
		"Jane", r.Name, strings.Join(services, " and "))
}

// DefaultVerifyQuery is the live-search question offered for a resource.
func DefaultVerifyQuery(r core.Resource) string {
	return fmt.Sprintf("What are the current opening hours for %s?", r.Name)
}

// Draft writes an outreach message about r. Empty instructions use
// DefaultDraftInstructions.
func (a *Assistant) Draft(ctx context.Context, r core.Resource, instructions string) (string, error) {
	instructions = strings.TrimSpace(instructions)
	if instructions == "" {
		instructions = DefaultDraftInstructions(r)
	}

	payload, err := json.Marshal(r)
	if err != nil {
		return "", fmt.Errorf("encode resource: %w", err)
	}
	prompt := instructions + "\n\nResource: " + string(payload)

	key := a.cacheKey("draft", prompt)
	if v, ok := a.cache.Get(key); ok {
		logging.FromContext(ctx).Debug("draft cache hit", "resource_id", r.ID)
		return v.(string), nil
	}

	resp, err := a.generate(ctx, prompt, &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(draftSystemPrompt, genai.RoleUser),
	})
	if err != nil {
		return "", fmt.Errorf("draft %s: %w", r.ID, err)
	}

	text := responseText(resp)
	if text == "" {
		return "", fmt.Errorf("draft %s: %w", r.ID, ErrEmptyResponse)
	}

	a.store(key, text)
	return text, nil
}

// Search answers query with Google Search grounding enabled.
func (a *Assistant) Search(ctx context.Context, query string) (core.GroundedAnswer, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return core.GroundedAnswer{}, fmt.Errorf("search: %w: empty query", core.ErrBadRequest)
	}

	key := a.cacheKey("search", query)
	if v, ok := a.cache.Get(key); ok {
		logging.FromContext(ctx).Debug("search cache hit")
		return v.(core.GroundedAnswer), nil
	}

	resp, err := a.generate(ctx, query, &genai.GenerateContentConfig{
		Tools: []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}},
	})
	if err != nil {
		return core.GroundedAnswer{}, fmt.Errorf("search: %w", err)
	}

	answer := core.GroundedAnswer{
		Text:    responseText(resp),
		Sources: groundingSources(resp),
	}
	if answer.Text == "" {
		return core.GroundedAnswer{}, fmt.Errorf("search: %w", ErrEmptyResponse)
	}

	a.store(key, answer)
	return answer, nil
}

func (a *Assistant) generate(ctx context.Context, prompt string, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	// A cancelled or expired caller context is reported as such; only the
	// limiter's and gate's own refusals count as rate limiting.
	if err := a.limiter.Wait(ctx); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: %v", core.ErrRateLimited, err)
	}
	if err := a.gate.acquire(ctx); err != nil {
		if !errors.Is(err, ErrBusy) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", core.ErrRateLimited, err)
	}
	defer a.gate.release()

	if a.temp > 0 {
		cfg.Temperature = genai.Ptr(float32(a.temp))
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	start := time.Now()
	resp, err := a.gen.GenerateContent(ctx, a.model,
		[]*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)},
		cfg,
	)
	logging.FromContext(ctx).Info("assistant call",
		"model", a.model,
		"duration_ms", time.Since(start).Milliseconds(),
		"ok", err == nil,
	)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (a *Assistant) store(key string, v any) {
	if a.ttl < 0 {
		return
	}
	a.cache.Set(key, v, gocache.DefaultExpiration)
}

// cacheKey hashes kind, model and prompt so keys stay short.
func (a *Assistant) cacheKey(kind, prompt string) string {
	sum := sha256.Sum256([]byte(kind + "\x00" + a.model + "\x00" + prompt))
	return hex.EncodeToString(sum[:])
}

// responseText joins the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	c := resp.Candidates[0]
	if c == nil || c.Content == nil {
		return ""
	}
	var b strings.Builder
	for _, p := range c.Content.Parts {
		if p != nil && !p.Thought {
			b.WriteString(p.Text)
		}
	}
	return strings.TrimSpace(b.String())
}

// groundingSources lists the web chunks of the first candidate, skipping
// non-web chunks.
func groundingSources(resp *genai.GenerateContentResponse) []core.Source {
	sources := make([]core.Source, 0)
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		return sources
	}
	meta := resp.Candidates[0].GroundingMetadata
	if meta == nil {
		return sources
	}
	for _, chunk := range meta.GroundingChunks {
		if chunk == nil || chunk.Web == nil {
			continue
		}
		sources = append(sources, core.Source{Title: chunk.Web.Title, URI: chunk.Web.URI})
	}
	return sources
}
