// Package telemetry forwards each reading to the remote logging endpoint as a
// single templated GET.
package telemetry

import (
	"context"
	"io"
	"net/http"
	"net/url"

	"envnode-go/errcode"
	"envnode-go/types"
	"envnode-go/x/conv"
	"envnode-go/x/logx"
	"envnode-go/x/strx"
)

// Template placeholders.
const (
	KeyAPIKey      = "api_key"
	KeyTemperature = "temperature"
	KeyHumidity    = "humidity"
)

// Doer is satisfied by *http.Client.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

type Webhook struct {
	tmpl   string
	apiKey string
	client Doer
}

// New returns a Webhook for tmpl. A nil client uses http.DefaultClient.
func New(tmpl, apiKey string, client Doer) *Webhook {
	if client == nil {
		client = http.DefaultClient
	}
	return &Webhook{tmpl: tmpl, apiKey: apiKey, client: client}
}

// URL expands the template for m. Values are query-escaped.
func (w *Webhook) URL(m types.Measurement) string {
	return strx.Expand(w.tmpl, func(name string) (string, bool) {
		switch name {
		case KeyAPIKey:
			return url.QueryEscape(w.apiKey), true
		case KeyTemperature:
			return conv.FormatDeci(int64(m.DeciTemp)), true
		case KeyHumidity:
			return conv.FormatDeci(int64(m.DeciRH)), true
		}
		return "", false
	})
}

// Submit sends m. Any transport error or a status of 400 or above fails.
func (w *Webhook) Submit(ctx context.Context, m types.Measurement) error {
	const op = "webhook"
	logx.Line("webhook", "Invoking log webhook")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, w.URL(m), nil)
	if err != nil {
		return errcode.Wrap(errcode.SubmitFailed, op, err)
	}
	resp, err := w.client.Do(req)
	if err != nil {
		logx.Line("webhook", "Webhook failed:", err.Error())
		return errcode.Wrap(errcode.MapDriverErr(err, errcode.SubmitFailed), op, err)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()

	if resp.StatusCode >= 400 {
		logx.Line("webhook", "Webhook failed", conv.Itoa(resp.StatusCode))
		return errcode.New(errcode.SubmitFailed, op, "status "+conv.Itoa(resp.StatusCode))
	}
	logx.Line("webhook", "Webhook invoked")
	return nil
}
