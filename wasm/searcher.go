//go:build wasm

package main

import (
	"encoding/json"
	"sync"
	"syscall/js"

	"github.com/praetorian-inc/minigrep"
	"github.com/praetorian-inc/minigrep/pkg/config"
)

var (
	searchers   = make(map[int]*minigrep.Searcher)
	searchersMu sync.RWMutex
	nextID      int
)

type matchJSON struct {
	Offset int `json:"offset"`
	End    int `json:"end"`
	Line   int `json:"line"`
	Column int `json:"column"`
}

type resultJSON struct {
	Query   string      `json:"query"`
	Offsets []int       `json:"offsets"`
	Matches []matchJSON `json:"matches"`
}

func errorResult(msg string) map[string]interface{} {
	return map[string]interface{}{"error": msg}
}

// searcherOptions turns a flag string such as "iw" into searcher options.
func searcherOptions(flags string) ([]minigrep.Option, error) {
	opts, err := config.ParseOptions(flags)
	if err != nil {
		return nil, err
	}
	return []minigrep.Option{minigrep.WithOptions(opts)}, nil
}

func marshalResult(set *minigrep.MatchSet) interface{} {
	result := resultJSON{
		Query:   set.Query,
		Offsets: set.Offsets(),
		Matches: make([]matchJSON, 0, set.Len()),
	}
	for _, m := range set.Matches {
		result.Matches = append(result.Matches, matchJSON{
			Offset: m.Location.Offset.Start,
			End:    m.Location.Offset.End,
			Line:   m.Location.Source.Start.Line,
			Column: m.Location.Source.Start.Column,
		})
	}

	jsonBytes, err := json.Marshal(result)
	if err != nil {
		return errorResult("failed to marshal results: " + err.Error())
	}
	return string(jsonBytes)
}

// newSearcher compiles a query.
// JS: MinigrepNewSearcher(query, flags) -> {handle} or {error}
func newSearcher(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return errorResult("query argument required")
	}

	flags := ""
	if len(args) > 1 {
		flags = args[1].String()
	}
	opts, err := searcherOptions(flags)
	if err != nil {
		return errorResult(err.Error())
	}

	s, err := minigrep.NewSearcher(args[0].String(), opts...)
	if err != nil {
		return errorResult("failed to create searcher: " + err.Error())
	}

	searchersMu.Lock()
	id := nextID
	nextID++
	searchers[id] = s
	searchersMu.Unlock()

	return map[string]interface{}{"handle": id}
}

// search runs a compiled query over content.
// JS: MinigrepSearch(handle, content) -> JSON results or {error}
func search(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return errorResult("handle and content arguments required")
	}

	searchersMu.RLock()
	s, ok := searchers[args[0].Int()]
	searchersMu.RUnlock()
	if !ok {
		return errorResult("invalid searcher handle")
	}

	set, err := s.SearchString(args[1].String())
	if err != nil {
		return errorResult("search failed: " + err.Error())
	}
	return marshalResult(set)
}

// find is a one-shot search.
// JS: MinigrepFind(content, query, flags) -> JSON results or {error}
func find(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return errorResult("content and query arguments required")
	}

	flags := ""
	if len(args) > 2 {
		flags = args[2].String()
	}
	opts, err := searcherOptions(flags)
	if err != nil {
		return errorResult(err.Error())
	}

	s, err := minigrep.NewSearcher(args[1].String(), opts...)
	if err != nil {
		return errorResult("failed to create searcher: " + err.Error())
	}
	set, err := s.SearchString(args[0].String())
	if err != nil {
		return errorResult("search failed: " + err.Error())
	}
	return marshalResult(set)
}

// closeSearcher releases a searcher handle.
// JS: MinigrepCloseSearcher(handle)
func closeSearcher(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return nil
	}

	searchersMu.Lock()
	delete(searchers, args[0].Int())
	searchersMu.Unlock()

	return nil
}
