// Package responses writes response envelopes to an http.ResponseWriter.
package responses

import (
	"context"
	"log"
	"net/http"

	"github.com/goccy/go-json"

	pkgerrors "github.com/angelmondragon/typed-api-response/pkg/errors"
	"github.com/angelmondragon/typed-api-response/pkg/logger"
	"github.com/angelmondragon/typed-api-response/pkg/metrics"
	"github.com/angelmondragon/typed-api-response/pkg/response"
)

// Writer carries the logger and metrics shared by every write. A nil Writer,
// or one with nil fields, still writes envelopes.
type Writer struct {
	logg    *logger.Logger
	metrics *metrics.EnvelopeMetrics
}

func NewWriter(logg *logger.Logger, m *metrics.EnvelopeMetrics) *Writer {
	return &Writer{logg: logg, metrics: m}
}

// Write sends resp with Meta.Status as the HTTP status. Statuses net/http
// cannot send are written as 500 while the body keeps the original value.
func (wr *Writer) Write(ctx context.Context, w http.ResponseWriter, resp response.Response) {
	if resp == nil {
		wr.contractViolation(ctx, w, pkgerrors.Wrap(pkgerrors.CodeContractViolation, response.ErrMissingInput, "write response"))
		return
	}

	status := resp.Meta().Status
	variant := response.VariantSuccess
	if !resp.Succeeded() {
		variant = response.VariantError
	}
	if wr != nil {
		wr.metrics.IncWritten(variant.String(), status)
	}

	httpStatus := status
	if httpStatus < 100 || httpStatus > 599 {
		httpStatus = http.StatusInternalServerError
	}
	writeJSON(w, httpStatus, resp)
}

// WriteError turns err into an error envelope. Typed errors take their HTTP
// status and public message from their code; anything else is reported as an
// internal error without leaking its text.
func (wr *Writer) WriteError(ctx context.Context, w http.ResponseWriter, err error) {
	if err == nil {
		wr.contractViolation(ctx, w, pkgerrors.Wrap(pkgerrors.CodeContractViolation, response.ErrMissingInput, "write error"))
		return
	}
	if pkgerrors.IsContractViolation(err) {
		wr.contractViolation(ctx, w, err)
		return
	}

	typed := pkgerrors.As(err)
	if typed == nil {
		typed = pkgerrors.Wrap(pkgerrors.CodeInternal, err, "unexpected error")
	}
	meta := pkgerrors.MetadataFor(typed.Code())

	if wr != nil && wr.logg != nil {
		fields := pkgerrors.Dump(err).Fields()
		if d := typed.Details(); d != nil {
			fields["details"] = d
		}
		logCtx := wr.logg.WithFields(ctx, fields)
		if meta.HTTPStatus >= http.StatusInternalServerError {
			wr.logg.Error(logCtx, "request.error", err)
		} else {
			wr.logg.Warn(logCtx, "request.rejected")
		}
	}

	public := publicError{kind: string(typed.Code()), msg: pkgerrors.PublicMessage(typed)}
	resp, buildErr := response.Failure(public, meta.HTTPStatus, metaOptions(ctx)...)
	if buildErr != nil {
		wr.contractViolation(ctx, w, buildErr)
		return
	}
	wr.Write(ctx, w, resp)
}

// WriteEnvelope writes whichever variant env holds. The zero Envelope is a
// contract violation.
func WriteEnvelope[T any](ctx context.Context, wr *Writer, w http.ResponseWriter, env response.Envelope[T]) {
	wr.Write(ctx, w, env.Response())
}

// WriteData builds a success envelope for data and writes it.
func WriteData[T any](ctx context.Context, wr *Writer, w http.ResponseWriter, status int, data T) {
	resp, err := response.Success(data, status, metaOptions(ctx)...)
	if err != nil {
		wr.contractViolation(ctx, w, err)
		return
	}
	wr.Write(ctx, w, resp)
}

func (wr *Writer) contractViolation(ctx context.Context, w http.ResponseWriter, err error) {
	if wr != nil {
		wr.metrics.IncContractViolation()
		if wr.logg != nil {
			logCtx := wr.logg.WithFields(ctx, pkgerrors.Dump(err).Fields())
			wr.logg.Error(logCtx, "response.contract_violation", err)
		}
	}

	meta := pkgerrors.MetadataFor(pkgerrors.CodeContractViolation)
	public := publicError{kind: string(pkgerrors.CodeContractViolation), msg: meta.PublicMessage}
	resp, err := buildFailure(public, meta.HTTPStatus, metaOptions(ctx)...)
	if err != nil {
		if wr != nil && wr.logg != nil {
			wr.logg.Error(ctx, "response.contract_violation.envelope_failed", err)
		}
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if wr != nil {
		wr.metrics.IncWritten(response.VariantError.String(), meta.HTTPStatus)
	}
	writeJSON(w, meta.HTTPStatus, resp)
}

// buildFailure builds the contract violation envelope; tests swap it out.
var buildFailure = response.Failure

func metaOptions(ctx context.Context) []response.Option {
	if id := RequestIDFromContext(ctx); id != "" {
		return []response.Option{response.WithRequestID(id)}
	}
	return nil
}

// publicError is the client-safe face of an error: its code and public
// message, without the internal cause.
type publicError struct {
	kind string
	msg  string
}

func (e publicError) Error() string { return e.msg }
func (e publicError) Kind() string  { return e.kind }

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf(`{"level":"error","msg":"failed to encode response","err":"%v"}`, err)
	}
}
