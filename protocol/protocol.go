// Package protocol names the elastic agent extension on the wire: which
// protocol versions exist and which requests travel between the server and
// an elastic agent plugin.
//
// The server calls the plugin with the cd.go.elastic-agent.* requests. The
// plugin calls back into the server with the go.processor.elastic-agents.*
// requests. Every request carries a JSON body whose shape is fixed per
// version; the codec package owns those shapes.
package protocol

import (
	"sort"
	"strings"

	"github.com/juju/errors"
)

// ExtensionName identifies the elastic agent extension to the plugin
// infrastructure.
const ExtensionName = "elastic-agent"

// Version is the protocol version tag a plugin declares support for.
type Version string

const (
	V1 Version = "1.0"
)

// supported lists every version a converter exists for.
var supported = map[Version]bool{
	V1: true,
}

// ParseVersion returns the Version for tag, or a not-supported error when no
// converter exists for it.
func ParseVersion(tag string) (Version, error) {
	v := Version(tag)
	if !supported[v] {
		return "", errors.NotSupportedf("elastic agent protocol version %q", tag)
	}
	return v, nil
}

// SupportedVersions returns the known version tags in ascending order.
func SupportedVersions() []Version {
	out := make([]Version, 0, len(supported))
	for v := range supported {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (v Version) String() string {
	return string(v)
}

// RequestName is the name of a single request/response exchange.
type RequestName string

// Requests sent by the server to the plugin.
const (
	RequestCreateAgent        RequestName = "cd.go.elastic-agent.create-agent"
	RequestServerPing         RequestName = "cd.go.elastic-agent.server-ping"
	RequestShouldAssignWork   RequestName = "cd.go.elastic-agent.should-assign-work"
	RequestGetProfileMetadata RequestName = "cd.go.elastic-agent.get-profile-metadata"
	RequestGetProfileView     RequestName = "cd.go.elastic-agent.get-profile-view"
	RequestValidateProfile    RequestName = "cd.go.elastic-agent.validate-profile"
	RequestGetIcon            RequestName = "cd.go.elastic-agent.get-icon"
)

// Requests sent by the plugin back to the server.
const (
	ProcessorListAgents    RequestName = "go.processor.elastic-agents.list-agents"
	ProcessorDisableAgents RequestName = "go.processor.elastic-agents.disable-agents"
	ProcessorDeleteAgents  RequestName = "go.processor.elastic-agents.delete-agents"
)

var known = map[RequestName]bool{
	RequestCreateAgent:        true,
	RequestServerPing:         true,
	RequestShouldAssignWork:   true,
	RequestGetProfileMetadata: true,
	RequestGetProfileView:     true,
	RequestValidateProfile:    true,
	RequestGetIcon:            true,
	ProcessorListAgents:       true,
	ProcessorDisableAgents:    true,
	ProcessorDeleteAgents:     true,
}

// Known reports whether r belongs to the elastic agent extension.
func (r RequestName) Known() bool {
	return known[r]
}

// Processor reports whether r is a plugin → server callback.
func (r RequestName) Processor() bool {
	switch r {
	case ProcessorListAgents, ProcessorDisableAgents, ProcessorDeleteAgents:
		return true
	}
	return false
}

// LookupRequest resolves a full request name, or its last segment such as
// "create-agent", to a known request.
func LookupRequest(name string) (RequestName, bool) {
	if r := RequestName(name); r.Known() {
		return r, true
	}
	for r := range known {
		if strings.HasSuffix(string(r), "."+name) {
			return r, true
		}
	}
	return "", false
}

func (r RequestName) String() string {
	return string(r)
}
