package protocol

import (
	"testing"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVersion(t *testing.T) {
	v, err := ParseVersion("1.0")
	require.NoError(t, err)
	assert.Equal(t, V1, v)
	assert.Equal(t, "1.0", v.String())
}

func TestParseVersionUnsupported(t *testing.T) {
	for _, tag := range []string{"", "2.0", "1", "v1.0"} {
		_, err := ParseVersion(tag)
		if assert.Error(t, err, "tag %q", tag) {
			assert.True(t, errors.Is(err, errors.NotSupported), "tag %q: %v", tag, err)
		}
	}
}

func TestSupportedVersions(t *testing.T) {
	assert.Equal(t, []Version{V1}, SupportedVersions())
}

func TestRequestNames(t *testing.T) {
	assert.True(t, RequestCreateAgent.Known())
	assert.True(t, ProcessorDeleteAgents.Known())
	assert.False(t, RequestName("cd.go.authorization.get-icon").Known())

	assert.True(t, ProcessorListAgents.Processor())
	assert.False(t, RequestGetIcon.Processor())
	assert.Equal(t, "cd.go.elastic-agent.get-icon", RequestGetIcon.String())
}

func TestLookupRequest(t *testing.T) {
	r, ok := LookupRequest("create-agent")
	require.True(t, ok)
	assert.Equal(t, RequestCreateAgent, r)

	r, ok = LookupRequest("go.processor.elastic-agents.disable-agents")
	require.True(t, ok)
	assert.Equal(t, ProcessorDisableAgents, r)

	_, ok = LookupRequest("elastic-agent.create-agent-now")
	assert.False(t, ok)
	_, ok = LookupRequest("")
	assert.False(t, ok)
}
