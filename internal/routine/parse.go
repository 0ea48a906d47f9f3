package routine

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownStretch is returned when an item refers to a stretch that is not
// in the catalog.
var ErrUnknownStretch = errors.New("unknown stretch")

// ParseItems turns command-line item specs of the form "stretch-id" or
// "stretch-id:seconds" into routine items, checking every id against the
// catalog. Items without seconds resolve as in NewItem.
func ParseItems(stretches StretchLookup, specs []string, fallback int) ([]Item, error) {
	items := make([]Item, 0, len(specs))
	for _, spec := range specs {
		id, seconds, err := parseItemSpec(spec)
		if err != nil {
			return nil, err
		}
		if _, ok := stretches.StretchByID(id); !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownStretch, id)
		}
		items = append(items, NewItem(stretches, id, seconds, fallback))
	}
	return items, nil
}

func parseItemSpec(spec string) (string, *int, error) {
	spec = strings.TrimSpace(spec)
	id, raw, hasSeconds := strings.Cut(spec, ":")
	id = strings.TrimSpace(id)
	if id == "" {
		return "", nil, fmt.Errorf("invalid item %q: missing stretch id", spec)
	}
	if !hasSeconds {
		return id, nil, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return "", nil, fmt.Errorf("invalid item %q: seconds must be a non-negative integer", spec)
	}
	return id, &n, nil
}
