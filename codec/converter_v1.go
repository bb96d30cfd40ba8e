package codec

import (
	"encoding/json"
	"strings"

	"elastic-agent-access/message"
	"elastic-agent-access/protocol"

	"github.com/juju/errors"
)

// ConverterV1 speaks version 1.0 of the elastic agent protocol.
type ConverterV1 struct{}

// Labels for bodies that are not tied to a single request name.
const (
	canHandlePluginBody protocol.RequestName = "can-handle-plugin"
	agentListBody       protocol.RequestName = "agent list"
)

var _ Converter = ConverterV1{}

type agentV1 struct {
	AgentID     string `json:"agent_id"`
	AgentState  string `json:"agent_state"`
	BuildState  string `json:"build_state"`
	ConfigState string `json:"config_state"`
}

// agentFieldsV1 is the decoding side of agentV1; every field is required.
type agentFieldsV1 struct {
	AgentID     *string `json:"agent_id"`
	AgentState  *string `json:"agent_state"`
	BuildState  *string `json:"build_state"`
	ConfigState *string `json:"config_state"`
}

type createAgentRequestV1 struct {
	AutoRegisterKey string            `json:"auto_register_key"`
	Properties      configurationJSON `json:"properties"`
	Environment     string            `json:"environment"`
}

type shouldAssignWorkRequestV1 struct {
	Agent       agentV1           `json:"agent"`
	Environment string            `json:"environment"`
	Properties  configurationJSON `json:"properties"`
}

type profileMetadataV1 struct {
	Key      *string `json:"key"`
	Metadata struct {
		Required bool `json:"required"`
		Secure   bool `json:"secure"`
	} `json:"metadata"`
}

type validationErrorV1 struct {
	Key     string `json:"key"`
	Message string `json:"message"`
}

type profileViewV1 struct {
	Template string `json:"template"`
}

type imageV1 struct {
	ContentType *string `json:"content-type"`
	Data        *string `json:"data"`
}

func toAgentV1(a message.AgentMetadata) agentV1 {
	return agentV1{
		AgentID:     a.ID,
		AgentState:  a.AgentState,
		BuildState:  a.BuildState,
		ConfigState: a.ConfigState,
	}
}

func (ConverterV1) Version() protocol.Version {
	return protocol.V1
}

func (ConverterV1) CanHandlePluginResponseFromBody(body string) (bool, error) {
	return decodeBoolV1(canHandlePluginBody, body)
}

func (ConverterV1) ShouldAssignWorkResponseFromBody(body string) (bool, error) {
	return decodeBoolV1(protocol.RequestShouldAssignWork, body)
}

func decodeBoolV1(request protocol.RequestName, body string) (bool, error) {
	var b *bool
	if err := decodeBody(request, body, &b); err != nil {
		return false, err
	}
	if b == nil {
		return false, errors.NotValidf("%s body %q", request, body)
	}
	return *b, nil
}

func (ConverterV1) CreateAgentRequestBody(autoRegisterKey, environment string, cfg *message.Configuration) (string, error) {
	return encodeBody(protocol.RequestCreateAgent, createAgentRequestV1{
		AutoRegisterKey: autoRegisterKey,
		Properties:      configurationJSON{cfg},
		Environment:     environment,
	})
}

func (ConverterV1) ShouldAssignWorkRequestBody(agent message.AgentMetadata, environment string, cfg *message.Configuration) (string, error) {
	return encodeBody(protocol.RequestShouldAssignWork, shouldAssignWorkRequestV1{
		Agent:       toAgentV1(agent),
		Environment: environment,
		Properties:  configurationJSON{cfg},
	})
}

func (ConverterV1) ListAgentsResponseBody(agents []message.AgentMetadata) (string, error) {
	out := make([]agentV1, 0, len(agents))
	for _, a := range agents {
		out = append(out, toAgentV1(a))
	}
	return encodeBody(protocol.ProcessorListAgents, out)
}

func (ConverterV1) AgentMetadataListFromBody(body string) ([]message.AgentMetadata, error) {
	if strings.TrimSpace(body) == "" {
		return []message.AgentMetadata{}, nil
	}
	var in []agentFieldsV1
	if err := decodeBody(agentListBody, body, &in); err != nil {
		return nil, err
	}

	agents := make([]message.AgentMetadata, 0, len(in))
	for i, a := range in {
		fields := []struct {
			name  string
			value *string
		}{
			{"agent_id", a.AgentID},
			{"agent_state", a.AgentState},
			{"build_state", a.BuildState},
			{"config_state", a.ConfigState},
		}
		for _, f := range fields {
			if f.value == nil {
				return nil, errors.NotValidf("agent %d without %q", i, f.name)
			}
		}
		agents = append(agents, message.NewAgentMetadata(*a.AgentID, *a.AgentState, *a.BuildState, *a.ConfigState))
	}
	return agents, nil
}

func (ConverterV1) ProfileMetadataResponseFromBody(body string) (*message.PropertyMetadataSet, error) {
	var in []profileMetadataV1
	if err := decodeBody(protocol.RequestGetProfileMetadata, body, &in); err != nil {
		return nil, err
	}

	items := make([]message.PropertyMetadata, 0, len(in))
	for i, m := range in {
		if m.Key == nil {
			return nil, errors.NotValidf("profile metadata entry %d without key", i)
		}
		items = append(items, message.PropertyMetadata{
			Key:      *m.Key,
			Required: m.Metadata.Required,
			Secure:   m.Metadata.Secure,
		})
	}
	return message.NewPropertyMetadataSet(items...), nil
}

func (ConverterV1) ProfileViewResponseFromBody(body string) (string, error) {
	var view profileViewV1
	if err := decodeBody(protocol.RequestGetProfileView, body, &view); err != nil {
		return "", err
	}
	return view.Template, nil
}

func (ConverterV1) ValidateRequestBody(cfg *message.Configuration) (string, error) {
	return encodeBody(protocol.RequestValidateProfile, configurationJSON{cfg})
}

func (ConverterV1) ConfigurationFromBody(body string) (*message.Configuration, error) {
	var c configurationJSON
	if err := decodeBody(protocol.RequestValidateProfile, body, &c); err != nil {
		return nil, err
	}
	return c.cfg, nil
}

func (ConverterV1) ValidationResultResponseFromBody(body string) (*message.ValidationResult, error) {
	var in []validationErrorV1
	if err := decodeBody(protocol.RequestValidateProfile, body, &in); err != nil {
		return nil, err
	}

	errs := make([]message.ValidationError, 0, len(in))
	for _, e := range in {
		errs = append(errs, message.ValidationError{Key: e.Key, Message: e.Message})
	}
	return message.NewValidationResult(errs...), nil
}

func (ConverterV1) ImageResponseFromBody(body string) (*message.Image, error) {
	if strings.TrimSpace(body) == "" {
		return nil, nil
	}

	var img *imageV1
	if err := json.Unmarshal([]byte(body), &img); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			// Valid JSON of the wrong shape carries no image.
			return nil, nil
		}
		return nil, errors.NewNotValid(err, protocol.RequestGetIcon.String()+" body")
	}
	if img == nil || img.ContentType == nil || img.Data == nil {
		return nil, nil
	}
	return &message.Image{ContentType: *img.ContentType, Data: *img.Data}, nil
}
