package soap

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"rebill/internal/metrics"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Options tunes session construction
type Options struct {
	Timeout     time.Duration
	WSDLRetries uint64 // extra WSDL fetch attempts; remote operations are never retried
	Transport   *Transport
}

// Session is a configured connection to one SOAP service. It is immutable
// after NewSession returns and safe for concurrent use.
type Session struct {
	transport *Transport
	def       *Definition
	header    Header
}

// NewSession fetches and parses the WSDL at wsdlURL and binds header to
// every subsequent call.
func NewSession(ctx context.Context, wsdlURL string, header Header, opts Options) (*Session, error) {
	transport := opts.Transport
	if transport == nil {
		transport = NewTransport("eway", opts.Timeout)
	}

	var def *Definition
	fetch := func() error {
		resp, err := transport.Get(ctx, wsdlURL)
		if err != nil {
			return err
		}
		if !resp.IsSuccess() {
			statusErr := &StatusError{StatusCode: resp.StatusCode, Body: resp.String()}
			if resp.StatusCode < 500 {
				return backoff.Permanent(statusErr)
			}
			return statusErr
		}
		parsed, err := ParseWSDL(resp.Body, wsdlURL)
		if err != nil {
			return backoff.Permanent(err)
		}
		def = parsed
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), opts.WSDLRetries), ctx)
	err := backoff.RetryNotify(fetch, policy, func(err error, wait time.Duration) {
		log.Warn().Err(err).Str("wsdl_url", wsdlURL).Dur("retry_in", wait).Msg("WSDL fetch failed, retrying")
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("endpoint", def.Location).
		Str("namespace", def.TargetNamespace).
		Int("operations", len(def.Operations)).
		Msg("SOAP session established")

	return NewSessionFromDefinition(def, header, transport), nil
}

// NewSessionFromDefinition builds a session without fetching a WSDL
func NewSessionFromDefinition(def *Definition, header Header, transport *Transport) *Session {
	if transport == nil {
		transport = NewTransport("eway", 0)
	}
	return &Session{transport: transport, def: def, header: header}
}

// Endpoint returns the service address calls are posted to
func (s *Session) Endpoint() string { return s.def.Location }

// Namespace returns the service target namespace
func (s *Session) Namespace() string { return s.def.TargetNamespace }

// Operations returns the operation names declared by the service
func (s *Session) Operations() []string {
	ops := make([]string, len(s.def.Operations))
	copy(ops, s.def.Operations)
	return ops
}

// Call invokes operation with params and blocks until the service answers
// or the transport fails. Errors are *Fault, *StatusError or transport errors.
func (s *Session) Call(ctx context.Context, operation string, params *Params) (*Response, error) {
	if !s.def.HasOperation(operation) {
		return nil, fmt.Errorf("soap: operation %q not declared by service", operation)
	}

	body, err := encodeEnvelope(s.def.TargetNamespace, s.header, operation, params)
	if err != nil {
		return nil, err
	}

	callID := uuid.NewString()
	start := time.Now()
	resp, err := s.transport.PostXML(ctx, s.def.Location, soapAction(s.def.TargetNamespace, operation), body)
	if err == nil {
		var out *Response
		out, err = decodeEnvelope(operation, resp)
		if err == nil {
			observe(operation, "ok", start)
			log.Debug().Str("call_id", callID).Str("operation", operation).Dur("duration", time.Since(start)).Msg("SOAP call completed")
			return out, nil
		}
	}

	outcome := "error"
	var fault *Fault
	if errors.As(err, &fault) {
		outcome = "fault"
	}
	observe(operation, outcome, start)
	log.Error().
		Err(err).
		Str("call_id", callID).
		Str("operation", operation).
		Dur("duration", time.Since(start)).
		Msg("SOAP call failed")
	return nil, err
}

func soapAction(namespace, operation string) string {
	return strings.TrimSuffix(namespace, "/") + "/" + operation
}

func observe(operation, outcome string, start time.Time) {
	metrics.RemoteCallsTotal.WithLabelValues(operation, outcome).Inc()
	metrics.RemoteCallSeconds.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}
