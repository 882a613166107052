package share

// Selection is an ordered list of shared status codes to attach to a route.
// A status code may appear at most once.
type Selection []StatusCode

// Duplicates returns every status code that occurs more than once, each
// reported once, in the order its first repeat is seen. It returns nil when
// the selection is unique.
func (s Selection) Duplicates() []StatusCode {
	var (
		seen = make(map[StatusCode]struct{}, len(s))
		dups []StatusCode
		hit  map[StatusCode]struct{}
	)
	for _, c := range s {
		if _, ok := seen[c]; !ok {
			seen[c] = struct{}{}
			continue
		}
		if _, ok := hit[c]; ok {
			continue
		}
		if hit == nil {
			hit = make(map[StatusCode]struct{})
		}
		hit[c] = struct{}{}
		dups = append(dups, c)
	}
	return dups
}

// Validate returns a *SelectionError if the selection contains duplicates.
func (s Selection) Validate() error {
	if dups := s.Duplicates(); len(dups) > 0 {
		return &SelectionError{Duplicates: dups}
	}
	return nil
}
