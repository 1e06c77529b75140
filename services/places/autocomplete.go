package places

import (
	"context"
	"errors"
	"strings"
	"sync"

	"cabadmin/models"
	"cabadmin/utils"
)

// MinInput is the minimum number of characters before a lookup is issued.
const MinInput = 2

// ErrSuperseded reports that a newer query for the same field arrived while
// this one was in flight. The stale result must not be rendered.
var ErrSuperseded = errors.New("autocomplete query superseded")

// Source issues a single autocomplete request.
type Source interface {
	PlaceAutocomplete(ctx context.Context, input, sessionToken string) ([]models.PlaceSuggestion, error)
}

type pending struct {
	cancel context.CancelFunc
	seq    uint64
}

// Autocompleter serializes address suggestion lookups per session field so
// that only the latest keystroke's result survives. Earlier in-flight
// requests for the same field are cancelled when a newer one starts.
type Autocompleter struct {
	Source Source

	mu       sync.Mutex
	inFlight map[string]*pending
	nextSeq  uint64
}

func NewAutocompleter(source Source) *Autocompleter {
	return &Autocompleter{
		Source:   source,
		inFlight: make(map[string]*pending),
	}
}

func fieldKey(sessionID, field string) string {
	return sessionID + "|" + field
}

// Query runs an autocomplete lookup for one address field of one wizard
// session. Inputs shorter than MinInput resolve to an empty list without a
// request. A lookup failure degrades to an empty list; the admin keeps
// typing a free-form address either way.
func (a *Autocompleter) Query(ctx context.Context, sessionID, field, input, sessionToken string) ([]models.PlaceSuggestion, error) {
	trimmed := strings.TrimSpace(input)
	if len(trimmed) < MinInput {
		a.cancelField(sessionID, field)
		return []models.PlaceSuggestion{}, nil
	}

	key := fieldKey(sessionID, field)
	reqCtx, cancel := context.WithCancel(ctx)

	a.mu.Lock()
	if prev, ok := a.inFlight[key]; ok {
		prev.cancel()
	}
	a.nextSeq++
	seq := a.nextSeq
	a.inFlight[key] = &pending{cancel: cancel, seq: seq}
	a.mu.Unlock()

	suggestions, err := a.Source.PlaceAutocomplete(reqCtx, trimmed, sessionToken)

	a.mu.Lock()
	current, ok := a.inFlight[key]
	superseded := !ok || current.seq != seq
	if !superseded {
		delete(a.inFlight, key)
	}
	a.mu.Unlock()
	cancel()

	if superseded {
		return nil, ErrSuperseded
	}
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, ErrSuperseded
		}
		utils.GetLogger().Sugar().Warnf("places: autocomplete failed for %q: %v", trimmed, err)
		return []models.PlaceSuggestion{}, nil
	}
	if suggestions == nil {
		suggestions = []models.PlaceSuggestion{}
	}
	return suggestions, nil
}

// cancelField aborts any in-flight lookup for the field. Used when the input
// drops below the minimum length or the session goes away.
func (a *Autocompleter) cancelField(sessionID, field string) {
	key := fieldKey(sessionID, field)
	a.mu.Lock()
	if prev, ok := a.inFlight[key]; ok {
		prev.cancel()
		delete(a.inFlight, key)
	}
	a.mu.Unlock()
}
