package schema

import (
	"strings"
	"testing"

	"elastic-agent-access/codec"
	"elastic-agent-access/message"
	"elastic-agent-access/protocol"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodedRequestsConform(t *testing.T) {
	c := codec.ConverterV1{}
	cfg := message.NewConfiguration(message.StringProperty("image", "alpine"), message.NullProperty("memory"))
	agent := message.NewAgentMetadata("42", "Idle", "Idle", "Enabled")

	create, err := c.CreateAgentRequestBody("secret-key", "prod", cfg)
	require.NoError(t, err)
	assign, err := c.ShouldAssignWorkRequestBody(agent, "prod", cfg)
	require.NoError(t, err)
	validate, err := c.ValidateRequestBody(cfg)
	require.NoError(t, err)
	list, err := c.ListAgentsResponseBody([]message.AgentMetadata{agent, agent})
	require.NoError(t, err)

	for _, tc := range []struct {
		request protocol.RequestName
		kind    Kind
		body    string
	}{
		{protocol.RequestCreateAgent, Request, create},
		{protocol.RequestShouldAssignWork, Request, assign},
		{protocol.RequestValidateProfile, Request, validate},
		{protocol.ProcessorListAgents, Response, list},
	} {
		violations, err := Validate(protocol.V1, tc.request, tc.kind, tc.body)
		require.NoError(t, err, "%s", tc.request)
		assert.Empty(t, violations, "%s: %s", tc.request, tc.body)
	}
}

func TestValidateReportsViolations(t *testing.T) {
	violations, err := Validate(protocol.V1, protocol.RequestCreateAgent, Request, `{"auto_register_key":"k","properties":{"a":1}}`)
	require.NoError(t, err)
	require.NotEmpty(t, violations)
	assert.Contains(t, strings.Join(violations, "\n"), "environment")
}

func TestValidateResponses(t *testing.T) {
	for _, tc := range []struct {
		request protocol.RequestName
		body    string
		valid   bool
	}{
		{protocol.RequestShouldAssignWork, "true", true},
		{protocol.RequestShouldAssignWork, `"true"`, false},
		{protocol.RequestGetProfileMetadata, `[{"key":"foo","metadata":{"secure":true}},{"key":"bar"}]`, true},
		{protocol.RequestGetProfileMetadata, `[{"metadata":{}}]`, false},
		{protocol.RequestValidateProfile, `[]`, true},
		{protocol.RequestValidateProfile, `[{"key":"k"}]`, false},
		{protocol.RequestGetProfileView, `{"template":"<div/>"}`, true},
		{protocol.RequestGetIcon, `{"content-type":"image/png","data":"AA=="}`, true},
		{protocol.RequestGetIcon, `{"data":"AA=="}`, false},
	} {
		violations, err := Validate(protocol.V1, tc.request, Response, tc.body)
		require.NoError(t, err, "%s %s", tc.request, tc.body)
		assert.Equal(t, tc.valid, len(violations) == 0, "%s %s: %v", tc.request, tc.body, violations)
	}
}

func TestValidatePluginCallbacks(t *testing.T) {
	body := `[{"agent_id":"42","agent_state":"Idle","build_state":"Idle","config_state":"Disabled"}]`
	for _, request := range []protocol.RequestName{protocol.ProcessorDisableAgents, protocol.ProcessorDeleteAgents} {
		violations, err := Validate(protocol.V1, request, Request, body)
		require.NoError(t, err, "%s", request)
		assert.Empty(t, violations, "%s", request)
	}
}

func TestValidateWithoutSchema(t *testing.T) {
	assert.False(t, Has(protocol.V1, protocol.RequestServerPing, Request))
	_, err := Validate(protocol.V1, protocol.RequestServerPing, Request, "{}")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.NotFound), "%v", err)

	_, err = Validate(protocol.Version("9.9"), protocol.RequestCreateAgent, Request, "{}")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.NotSupported), "%v", err)
}

func TestValidateMalformedBody(t *testing.T) {
	assert.True(t, Has(protocol.V1, protocol.RequestCreateAgent, Request))
	_, err := Validate(protocol.V1, protocol.RequestCreateAgent, Request, `{"auto_register_key":`)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.NotValid), "%v", err)
}
