package middleware

import (
	"strings"

	"elastic-agent-access/codec"
	"elastic-agent-access/message"
	"elastic-agent-access/protocol"
	"elastic-agent-access/schema"

	"github.com/juju/errors"
)

// SchemaCheck validates every body the server produces against the schema of
// the converter's version. A body that does not conform is replaced by a
// not-valid error. Decoded bodies are left alone: plugins may omit optional
// structure.
func SchemaCheck() Middleware {
	return func(next codec.Converter) codec.Converter {
		return &schemaConverter{Converter: next}
	}
}

type schemaConverter struct {
	codec.Converter
}

func (s *schemaConverter) check(request protocol.RequestName, kind schema.Kind, body string, err error) (string, error) {
	if err != nil {
		return "", err
	}
	violations, err := schema.Validate(s.Version(), request, kind, body)
	if err != nil {
		return "", errors.Trace(err)
	}
	if len(violations) > 0 {
		return "", errors.NotValidf("%s %s body (%s)", request, kind, strings.Join(violations, "; "))
	}
	return body, nil
}

func (s *schemaConverter) CreateAgentRequestBody(autoRegisterKey, environment string, cfg *message.Configuration) (string, error) {
	body, err := s.Converter.CreateAgentRequestBody(autoRegisterKey, environment, cfg)
	return s.check(protocol.RequestCreateAgent, schema.Request, body, err)
}

func (s *schemaConverter) ShouldAssignWorkRequestBody(agent message.AgentMetadata, environment string, cfg *message.Configuration) (string, error) {
	body, err := s.Converter.ShouldAssignWorkRequestBody(agent, environment, cfg)
	return s.check(protocol.RequestShouldAssignWork, schema.Request, body, err)
}

func (s *schemaConverter) ListAgentsResponseBody(agents []message.AgentMetadata) (string, error) {
	body, err := s.Converter.ListAgentsResponseBody(agents)
	return s.check(protocol.ProcessorListAgents, schema.Response, body, err)
}

func (s *schemaConverter) ValidateRequestBody(cfg *message.Configuration) (string, error) {
	body, err := s.Converter.ValidateRequestBody(cfg)
	return s.check(protocol.RequestValidateProfile, schema.Request, body, err)
}
