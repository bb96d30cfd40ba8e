package codec

import (
	"bytes"
	"encoding/json"
	"fmt"

	"elastic-agent-access/message"
	"elastic-agent-access/protocol"

	"github.com/juju/errors"
)

// encodeBody renders v as a compact JSON body.
func encodeBody(request protocol.RequestName, v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", errors.Annotatef(err, "encoding %s body", request)
	}
	return string(data), nil
}

// decodeBody parses body into v. Any failure, syntax or shape, is reported as
// not valid.
func decodeBody(request protocol.RequestName, body string, v any) error {
	if err := json.Unmarshal([]byte(body), v); err != nil {
		return errors.NewNotValid(err, fmt.Sprintf("%s body", request))
	}
	return nil
}

// configurationJSON is a Configuration rendered as a flat JSON object. Key
// order follows the configuration and null values stay null.
type configurationJSON struct {
	cfg *message.Configuration
}

func (c configurationJSON) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, p := range c.cfg.Properties() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(p.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		if p.IsNull() {
			buf.WriteString("null")
			continue
		}
		value, err := json.Marshal(*p.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (c *configurationJSON) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		c.cfg = message.NewConfiguration()
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return errors.NotValidf("configuration %v", tok)
	}

	var props []message.Property
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := tok.(string)
		var value *string
		if err := dec.Decode(&value); err != nil {
			return errors.Annotatef(err, "property %q", key)
		}
		props = append(props, message.Property{Key: key, Value: value})
	}
	// closing brace
	if _, err := dec.Token(); err != nil {
		return err
	}
	c.cfg = message.NewConfiguration(props...)
	return nil
}
