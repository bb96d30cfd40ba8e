package message

import "sort"

// Property is a single configuration entry. A nil Value stands for an
// explicit null, which plugins see as a key without a value.
type Property struct {
	Key   string
	Value *string
}

// IsNull reports whether the property carries an explicit null.
func (p Property) IsNull() bool {
	return p.Value == nil
}

// Configuration is an ordered set of properties passed opaquely to a plugin.
// Keys keep the position they were first added at; adding a key again
// replaces its value in place.
type Configuration struct {
	props []Property
	index map[string]int
}

// NewConfiguration builds a configuration from props in the given order.
func NewConfiguration(props ...Property) *Configuration {
	c := &Configuration{index: make(map[string]int, len(props))}
	for _, p := range props {
		c.put(p)
	}
	return c
}

// ConfigurationFromMap builds a configuration from m with keys sorted, so
// that the wire output is deterministic.
func ConfigurationFromMap(m map[string]string) *Configuration {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	props := make([]Property, 0, len(keys))
	for _, k := range keys {
		props = append(props, StringProperty(k, m[k]))
	}
	return NewConfiguration(props...)
}

// StringProperty returns a property holding value.
func StringProperty(key, value string) Property {
	return Property{Key: key, Value: &value}
}

// NullProperty returns a property holding an explicit null.
func NullProperty(key string) Property {
	return Property{Key: key}
}

func (c *Configuration) put(p Property) {
	if p.Value != nil {
		v := *p.Value
		p.Value = &v
	}
	if i, ok := c.index[p.Key]; ok {
		c.props[i] = p
		return
	}
	c.index[p.Key] = len(c.props)
	c.props = append(c.props, p)
}

// Len returns the number of properties.
func (c *Configuration) Len() int {
	if c == nil {
		return 0
	}
	return len(c.props)
}

// Get returns the property stored under key.
func (c *Configuration) Get(key string) (Property, bool) {
	if c == nil {
		return Property{}, false
	}
	i, ok := c.index[key]
	if !ok {
		return Property{}, false
	}
	return c.props[i], true
}

// Properties returns a copy of the properties in order.
func (c *Configuration) Properties() []Property {
	if c == nil {
		return nil
	}
	out := make([]Property, len(c.props))
	copy(out, c.props)
	return out
}

// Equal reports whether both configurations hold the same keys in the same
// order with the same values, nulls included.
func (c *Configuration) Equal(other *Configuration) bool {
	if c.Len() != other.Len() {
		return false
	}
	for i, p := range c.Properties() {
		q := other.props[i]
		if p.Key != q.Key || p.IsNull() != q.IsNull() {
			return false
		}
		if !p.IsNull() && *p.Value != *q.Value {
			return false
		}
	}
	return true
}
