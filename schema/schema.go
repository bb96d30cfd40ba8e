// Package schema validates elastic agent message bodies against the JSON
// Schema documents of their protocol version.
//
// Documents are embedded per version under v<major>/ and named after the last
// segment of the request name, e.g. create-agent.request.json.
package schema

import (
	"embed"
	"fmt"
	"path"
	"strings"
	"sync"

	"elastic-agent-access/protocol"

	"github.com/juju/errors"
	"github.com/xeipuuv/gojsonschema"
)

//go:embed v1/*.json
var documents embed.FS

// Kind tells whether a body travels with the request or the response.
type Kind string

const (
	Request  Kind = "request"
	Response Kind = "response"
)

type compiled struct {
	once   sync.Once
	schema *gojsonschema.Schema
	err    error
}

var (
	mu    sync.Mutex
	cache = make(map[string]*compiled)
)

var versionDirs = map[protocol.Version]string{
	protocol.V1: "v1",
}

// documentPath returns the embedded file holding the schema for the body.
func documentPath(v protocol.Version, request protocol.RequestName, kind Kind) (string, error) {
	dir, ok := versionDirs[v]
	if !ok {
		return "", errors.NotSupportedf("schemas for elastic agent protocol version %q", v)
	}
	name := string(request)
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return path.Join(dir, fmt.Sprintf("%s.%s.json", name, kind)), nil
}

func load(file string) (*gojsonschema.Schema, error) {
	mu.Lock()
	c, ok := cache[file]
	if !ok {
		c = &compiled{}
		cache[file] = c
	}
	mu.Unlock()

	c.once.Do(func() {
		data, err := documents.ReadFile(file)
		if err != nil {
			c.err = errors.NotFoundf("schema %s", file)
			return
		}
		c.schema, c.err = gojsonschema.NewSchema(gojsonschema.NewBytesLoader(data))
		if c.err != nil {
			c.err = errors.Annotatef(c.err, "compiling schema %s", file)
		}
	})
	return c.schema, c.err
}

// Has reports whether a schema exists for the body.
func Has(v protocol.Version, request protocol.RequestName, kind Kind) bool {
	file, err := documentPath(v, request, kind)
	if err != nil {
		return false
	}
	_, err = documents.ReadFile(file)
	return err == nil
}

// Validate checks body against the schema for the request body of the given
// kind. It returns one description per violation, or nil when the body
// conforms. The error is non-nil only when no schema applies or the body is
// not JSON.
func Validate(v protocol.Version, request protocol.RequestName, kind Kind, body string) ([]string, error) {
	file, err := documentPath(v, request, kind)
	if err != nil {
		return nil, err
	}
	s, err := load(file)
	if err != nil {
		return nil, err
	}

	result, err := s.Validate(gojsonschema.NewStringLoader(body))
	if err != nil {
		return nil, errors.NewNotValid(err, fmt.Sprintf("%s %s body", request, kind))
	}
	if result.Valid() {
		return nil, nil
	}

	violations := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		violations = append(violations, e.String())
	}
	return violations, nil
}
