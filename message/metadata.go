package message

// PropertyMetadata describes one configuration key a plugin accepts.
type PropertyMetadata struct {
	Key      string
	Required bool
	Secure   bool // value must be masked in the UI and encrypted at rest
}

// PropertyMetadataSet is the profile schema returned by a plugin, ordered by
// first appearance of each key.
type PropertyMetadataSet struct {
	items []PropertyMetadata
	index map[string]int
}

// NewPropertyMetadataSet builds a set from items. A repeated key overwrites
// the earlier entry but keeps its position.
func NewPropertyMetadataSet(items ...PropertyMetadata) *PropertyMetadataSet {
	s := &PropertyMetadataSet{index: make(map[string]int, len(items))}
	for _, m := range items {
		if i, ok := s.index[m.Key]; ok {
			s.items[i] = m
			continue
		}
		s.index[m.Key] = len(s.items)
		s.items = append(s.items, m)
	}
	return s
}

func (s *PropertyMetadataSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// Get returns the metadata for key.
func (s *PropertyMetadataSet) Get(key string) (PropertyMetadata, bool) {
	if s == nil {
		return PropertyMetadata{}, false
	}
	i, ok := s.index[key]
	if !ok {
		return PropertyMetadata{}, false
	}
	return s.items[i], true
}

// Items returns a copy of the metadata in order.
func (s *PropertyMetadataSet) Items() []PropertyMetadata {
	if s == nil {
		return nil
	}
	out := make([]PropertyMetadata, len(s.items))
	copy(out, s.items)
	return out
}

// ValidationError is a problem the plugin found with one configuration key.
type ValidationError struct {
	Key     string
	Message string
}

// ValidationResult is the outcome of a plugin validating a profile.
type ValidationResult struct {
	errs []ValidationError
}

// NewValidationResult returns a result holding errs in order.
func NewValidationResult(errs ...ValidationError) *ValidationResult {
	r := &ValidationResult{errs: make([]ValidationError, len(errs))}
	copy(r.errs, errs)
	return r
}

// IsSuccessful reports whether the plugin found no errors.
func (r *ValidationResult) IsSuccessful() bool {
	return r == nil || len(r.errs) == 0
}

// Errors returns a copy of the validation errors in the order the plugin
// reported them.
func (r *ValidationResult) Errors() []ValidationError {
	if r == nil {
		return nil
	}
	out := make([]ValidationError, len(r.errs))
	copy(out, r.errs)
	return out
}

// Messages groups the error messages by key, keeping their order per key.
func (r *ValidationResult) Messages() map[string][]string {
	out := make(map[string][]string)
	for _, e := range r.Errors() {
		out[e.Key] = append(out[e.Key], e.Message)
	}
	return out
}
