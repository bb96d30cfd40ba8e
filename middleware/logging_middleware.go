package middleware

import (
	"sync"
	"time"

	"elastic-agent-access/codec"
	"elastic-agent-access/message"
	"elastic-agent-access/protocol"

	"github.com/juju/loggo/v2"
	"golang.org/x/time/rate"
)

// Warnings about one body kind are logged for the first warnFirst failures,
// then at most once per warnInterval.
const (
	warnFirst    = 5
	warnInterval = 30 * time.Second
)

// Labels for bodies that are not tied to a single request name.
const (
	canHandlePlugin protocol.RequestName = "can-handle-plugin"
	agentList       protocol.RequestName = "agent list"
)

// Logging logs failed conversions at WARNING and successful ones at TRACE.
// Warnings are throttled per body kind so that a misbehaving plugin cannot
// flood the log.
func Logging(logger loggo.Logger) Middleware {
	return func(next codec.Converter) codec.Converter {
		return &loggingConverter{
			Converter: next,
			logger:    logger,
			throttles: make(map[protocol.RequestName]*rate.Sometimes),
		}
	}
}

type loggingConverter struct {
	codec.Converter
	logger loggo.Logger

	mu        sync.Mutex
	throttles map[protocol.RequestName]*rate.Sometimes
}

func (l *loggingConverter) throttle(request protocol.RequestName) *rate.Sometimes {
	l.mu.Lock()
	defer l.mu.Unlock()
	s, ok := l.throttles[request]
	if !ok {
		s = &rate.Sometimes{First: warnFirst, Interval: warnInterval}
		l.throttles[request] = s
	}
	return s
}

func (l *loggingConverter) observe(request protocol.RequestName, start time.Time, err error) {
	if err == nil {
		l.logger.Tracef("v%s %s converted in %s", l.Version(), request, time.Since(start))
		return
	}
	l.throttle(request).Do(func() {
		l.logger.Warningf("v%s %s: %v", l.Version(), request, err)
	})
}

func (l *loggingConverter) CanHandlePluginResponseFromBody(body string) (bool, error) {
	start := time.Now()
	ok, err := l.Converter.CanHandlePluginResponseFromBody(body)
	l.observe(canHandlePlugin, start, err)
	return ok, err
}

func (l *loggingConverter) ShouldAssignWorkResponseFromBody(body string) (bool, error) {
	start := time.Now()
	ok, err := l.Converter.ShouldAssignWorkResponseFromBody(body)
	l.observe(protocol.RequestShouldAssignWork, start, err)
	return ok, err
}

func (l *loggingConverter) CreateAgentRequestBody(autoRegisterKey, environment string, cfg *message.Configuration) (string, error) {
	start := time.Now()
	body, err := l.Converter.CreateAgentRequestBody(autoRegisterKey, environment, cfg)
	l.observe(protocol.RequestCreateAgent, start, err)
	return body, err
}

func (l *loggingConverter) ShouldAssignWorkRequestBody(agent message.AgentMetadata, environment string, cfg *message.Configuration) (string, error) {
	start := time.Now()
	body, err := l.Converter.ShouldAssignWorkRequestBody(agent, environment, cfg)
	l.observe(protocol.RequestShouldAssignWork, start, err)
	return body, err
}

func (l *loggingConverter) ListAgentsResponseBody(agents []message.AgentMetadata) (string, error) {
	start := time.Now()
	body, err := l.Converter.ListAgentsResponseBody(agents)
	l.observe(protocol.ProcessorListAgents, start, err)
	return body, err
}

func (l *loggingConverter) AgentMetadataListFromBody(body string) ([]message.AgentMetadata, error) {
	start := time.Now()
	agents, err := l.Converter.AgentMetadataListFromBody(body)
	l.observe(agentList, start, err)
	return agents, err
}

func (l *loggingConverter) ProfileMetadataResponseFromBody(body string) (*message.PropertyMetadataSet, error) {
	start := time.Now()
	set, err := l.Converter.ProfileMetadataResponseFromBody(body)
	l.observe(protocol.RequestGetProfileMetadata, start, err)
	return set, err
}

func (l *loggingConverter) ProfileViewResponseFromBody(body string) (string, error) {
	start := time.Now()
	template, err := l.Converter.ProfileViewResponseFromBody(body)
	l.observe(protocol.RequestGetProfileView, start, err)
	return template, err
}

func (l *loggingConverter) ValidateRequestBody(cfg *message.Configuration) (string, error) {
	start := time.Now()
	body, err := l.Converter.ValidateRequestBody(cfg)
	l.observe(protocol.RequestValidateProfile, start, err)
	return body, err
}

func (l *loggingConverter) ConfigurationFromBody(body string) (*message.Configuration, error) {
	start := time.Now()
	cfg, err := l.Converter.ConfigurationFromBody(body)
	l.observe(protocol.RequestValidateProfile, start, err)
	return cfg, err
}

func (l *loggingConverter) ValidationResultResponseFromBody(body string) (*message.ValidationResult, error) {
	start := time.Now()
	result, err := l.Converter.ValidationResultResponseFromBody(body)
	l.observe(protocol.RequestValidateProfile, start, err)
	return result, err
}

func (l *loggingConverter) ImageResponseFromBody(body string) (*message.Image, error) {
	start := time.Now()
	img, err := l.Converter.ImageResponseFromBody(body)
	l.observe(protocol.RequestGetIcon, start, err)
	if err == nil && img == nil {
		l.logger.Debugf("v%s %s: plugin sent no usable icon", l.Version(), protocol.RequestGetIcon)
	}
	return img, err
}
