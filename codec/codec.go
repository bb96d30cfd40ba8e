// Package codec converts elastic agent domain values to and from the JSON
// bodies of one protocol version.
//
// Each protocol version has its own Converter. Callers pick one with
// GetConverter using the version the plugin declared; the transport that
// carries the bodies lives outside this package.
package codec

import (
	"elastic-agent-access/message"
	"elastic-agent-access/protocol"

	"github.com/juju/errors"
)

// Converter maps domain values to and from the request and response bodies
// of a single protocol version. Implementations hold no state and are safe
// for concurrent use.
//
// Decoders return a not-valid error (errors.NotValid) when the body is not
// JSON at all. Well-formed bodies that omit optional structure decode to
// defaults instead.
type Converter interface {
	Version() protocol.Version

	// CanHandlePluginResponseFromBody decodes the reply to the legacy
	// can-handle-plugin request: a bare JSON boolean.
	CanHandlePluginResponseFromBody(body string) (bool, error)
	ShouldAssignWorkResponseFromBody(body string) (bool, error)

	CreateAgentRequestBody(autoRegisterKey, environment string, cfg *message.Configuration) (string, error)
	ShouldAssignWorkRequestBody(agent message.AgentMetadata, environment string, cfg *message.Configuration) (string, error)

	// ListAgentsResponseBody encodes the agents the server knows about for a
	// plugin's list-agents callback.
	ListAgentsResponseBody(agents []message.AgentMetadata) (string, error)
	// AgentMetadataListFromBody decodes the agents a plugin asks the server
	// to disable or delete.
	AgentMetadataListFromBody(body string) ([]message.AgentMetadata, error)

	ProfileMetadataResponseFromBody(body string) (*message.PropertyMetadataSet, error)
	ProfileViewResponseFromBody(body string) (string, error)

	ValidateRequestBody(cfg *message.Configuration) (string, error)
	ConfigurationFromBody(body string) (*message.Configuration, error)
	ValidationResultResponseFromBody(body string) (*message.ValidationResult, error)

	// ImageResponseFromBody returns nil without an error when the body lacks
	// the content type or the data.
	ImageResponseFromBody(body string) (*message.Image, error)
}

// converters is the version dispatch table.
var converters = map[protocol.Version]Converter{
	protocol.V1: ConverterV1{},
}

// GetConverter returns the converter for version v.
func GetConverter(v protocol.Version) (Converter, error) {
	c, ok := converters[v]
	if !ok {
		return nil, errors.NotSupportedf("converter for elastic agent protocol version %q", v)
	}
	return c, nil
}

// ConverterFor parses tag and returns its converter.
func ConverterFor(tag string) (Converter, error) {
	v, err := protocol.ParseVersion(tag)
	if err != nil {
		return nil, errors.Trace(err)
	}
	return GetConverter(v)
}
