// Package command provides prefix completion over the registry.
package command

import (
	"sort"
	"strings"
)

// Completion is one suggested continuation of a partial input.
type Completion struct {
	Text        string
	Description string
}

// Complete suggests command names starting with the partial input. An
// input that already contains a space belongs to argument territory,
// which handlers own, so nothing is suggested.
func (r *Registry) Complete(partial string) []Completion {
	partial = strings.TrimLeft(partial, " \t")
	if strings.ContainsAny(partial, " \t") {
		return nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Completion
	for name, handler := range r.handlers {
		if strings.HasPrefix(name, partial) {
			out = append(out, Completion{Text: name, Description: handler.Description()})
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Text < out[j].Text })
	return out
}
