package facts

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// roundTripFunc lets tests fail requests before they reach the network.
type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func serve(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestNewClient_DefaultURL(t *testing.T) {
	c := NewClient("")
	assert.Equal(t, DefaultURL, c.URL())

	c = NewClient("http://example.test/facts")
	assert.Equal(t, "http://example.test/facts", c.URL())
}

func TestFetch_Success(t *testing.T) {
	srv := serve(t, http.StatusOK, `{"data":[{"id":1,"category":"science","fact":"Water boils at 100C"}]}`)

	resp, err := NewClient(srv.URL).Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, Fact{ID: 1, Category: "science", Fact: "Water boils at 100C"}, resp.Data[0])
}

func TestFetch_EnvelopeMetadata(t *testing.T) {
	srv := serve(t, http.StatusOK, `{"success":true,"count":2,"message":"Facts retrieved successfully","data":[{"id":1,"category":"a","fact":"x"},{"id":2,"category":"b","fact":"y"}]}`)

	resp, err := NewClient(srv.URL).Fetch(context.Background())
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, 2, resp.Count)
	assert.Equal(t, "Facts retrieved successfully", resp.Message)
	assert.Equal(t, []int{1, 2}, []int{resp.Data[0].ID, resp.Data[1].ID})
}

func TestFetch_MistypedMetadataStillLoads(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "string success and count", body: `{"success":"true","count":"1","data":[{"id":1,"category":"science","fact":"Water boils at 100C"}]}`},
		{name: "object message", body: `{"message":{"text":"hi"},"data":[{"id":1,"category":"science","fact":"Water boils at 100C"}]}`},
		{name: "null metadata", body: `{"success":null,"count":null,"message":null,"data":[{"id":1,"category":"science","fact":"Water boils at 100C"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := serve(t, http.StatusOK, tt.body)
			resp, err := NewClient(srv.URL).Fetch(context.Background())
			require.NoError(t, err)
			require.Len(t, resp.Data, 1)
			assert.Equal(t, Fact{ID: 1, Category: "science", Fact: "Water boils at 100C"}, resp.Data[0])
			assert.False(t, resp.Success)
			assert.Zero(t, resp.Count)
			assert.Empty(t, resp.Message)
		})
	}
}

func TestFetch_EmptyData(t *testing.T) {
	srv := serve(t, http.StatusOK, `{"data":[]}`)

	resp, err := NewClient(srv.URL).Fetch(context.Background())
	require.NoError(t, err)
	assert.Empty(t, resp.Data)
}

func TestFetch_TargetsConfiguredURL(t *testing.T) {
	var gotPath, gotMethod, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`{"data":[]}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL + "/api/facts/").Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, http.MethodGet, gotMethod)
	assert.Equal(t, "/api/facts/", gotPath)
	assert.Empty(t, gotQuery)
}

func TestFetch_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{name: "server error", status: http.StatusInternalServerError, body: `{"data":[]}`, wantMsg: "HTTP error! Status: 500"},
		{name: "not found", status: http.StatusNotFound, body: `not json`, wantMsg: "HTTP error! Status: 404"},
		{name: "invalid json", status: http.StatusOK, body: `<html>oops</html>`},
		{name: "missing data", status: http.StatusOK, body: `{"success":true}`, wantMsg: `response missing "data" field`},
		{name: "null data", status: http.StatusOK, body: `{"data":null}`, wantMsg: `response missing "data" field`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := serve(t, tt.status, tt.body)
			resp, err := NewClient(srv.URL).Fetch(context.Background())
			require.Error(t, err)
			assert.Nil(t, resp)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, err.Error())
			}
		})
	}
}

func TestFetch_StatusErrorType(t *testing.T) {
	srv := serve(t, http.StatusBadGateway, ``)

	_, err := NewClient(srv.URL).Fetch(context.Background())
	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusBadGateway, se.Code)
}

func TestFetch_NetworkFailureMessage(t *testing.T) {
	hc := &http.Client{Transport: roundTripFunc(func(*http.Request) (*http.Response, error) {
		return nil, errors.New("Failed to fetch")
	})}

	_, err := NewClient("http://facts.invalid/api/facts/", WithHTTPClient(hc)).Fetch(context.Background())
	require.Error(t, err)
	assert.Equal(t, "Failed to fetch", err.Error())
}

func TestFetch_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewClient(url).Fetch(context.Background())
	require.Error(t, err)
	var se *StatusError
	assert.False(t, errors.As(err, &se))
}

func TestFetch_RecordsSpan(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	srv := serve(t, http.StatusOK, `{"data":[{"id":1,"category":"a","fact":"x"},{"id":2,"category":"b","fact":"y"}]}`)

	_, err := NewClient(srv.URL, WithTracerProvider(tp)).Fetch(context.Background())
	require.NoError(t, err)

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "facts.fetch", spans[0].Name())
	attrs := map[attribute.Key]attribute.Value{}
	for _, kv := range spans[0].Attributes() {
		attrs[kv.Key] = kv.Value
	}
	assert.Equal(t, srv.URL, attrs["http.url"].AsString())
	assert.Equal(t, int64(200), attrs["http.status_code"].AsInt64())
	assert.Equal(t, int64(2), attrs["facts.count"].AsInt64())
	assert.Equal(t, codes.Unset, spans[0].Status().Code)
}

func TestFetch_RecordsSpanError(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	srv := serve(t, http.StatusInternalServerError, ``)

	_, err := NewClient(srv.URL, WithTracerProvider(tp)).Fetch(context.Background())
	require.Error(t, err)

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "HTTP error! Status: 500", spans[0].Status().Description)
}
