package telemetry

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"envnode-go/errcode"
	"envnode-go/services/config"
	"envnode-go/types"
)

func TestURL_ExpandsTemplate(t *testing.T) {
	w := New(config.DefaultWebhookURL, "AB C", nil)
	got := w.URL(types.Measurement{DeciTemp: 231, DeciRH: 405})
	want := "https://api.thingspeak.com/update?api_key=AB+C&field1=23.1&field2=40.5"
	if got != want {
		t.Fatalf("URL=%q\nwant %q", got, want)
	}
}

func TestSubmit_SuccessBelow400(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("method=%s", r.Method)
		}
		gotQuery = r.URL.RawQuery
		rw.WriteHeader(http.StatusAccepted)
		_, _ = rw.Write([]byte("17"))
	}))
	defer srv.Close()

	w := New(srv.URL+"/update?api_key={api_key}&field1={temperature}&field2={humidity}", "K", srv.Client())
	if err := w.Submit(context.Background(), types.Measurement{DeciTemp: -15, DeciRH: 990}); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if gotQuery != "api_key=K&field1=-1.5&field2=99.0" {
		t.Fatalf("query=%q", gotQuery)
	}
}

func TestSubmit_StatusFailures(t *testing.T) {
	for _, code := range []int{400, 404, 500, 503} {
		srv := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
			rw.WriteHeader(code)
		}))
		w := New(srv.URL+"/?k={api_key}", "K", srv.Client())
		err := w.Submit(context.Background(), types.Measurement{})
		srv.Close()
		if errcode.Of(err) != errcode.SubmitFailed {
			t.Fatalf("status %d: err=%v", code, err)
		}
	}
}

func TestSubmit_RedirectIsSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		rw.WriteHeader(http.StatusNotModified)
	}))
	defer srv.Close()
	if err := New(srv.URL, "", srv.Client()).Submit(context.Background(), types.Measurement{}); err != nil {
		t.Fatalf("304 should count as success: %v", err)
	}
}

type doerFunc func(*http.Request) (*http.Response, error)

func (f doerFunc) Do(r *http.Request) (*http.Response, error) { return f(r) }

func TestSubmit_TransportError(t *testing.T) {
	w := New(config.DefaultWebhookURL, "K", doerFunc(func(*http.Request) (*http.Response, error) {
		return nil, errors.New("dns")
	}))
	if err := w.Submit(context.Background(), types.Measurement{}); errcode.Of(err) != errcode.SubmitFailed {
		t.Fatalf("err=%v", err)
	}
}

func TestSubmit_Deadline(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}))
	defer srv.Close()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	err := New(srv.URL, "", srv.Client()).Submit(ctx, types.Measurement{})
	if errcode.Of(err) != errcode.Timeout {
		t.Fatalf("err=%v", err)
	}
}
