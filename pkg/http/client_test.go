package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cityResponse struct {
	Name    string `json:"name"`
	Country string `json:"country"`
}

type apiError struct {
	Cod     any    `json:"cod"`
	Message string `json:"message"`
}

func TestExecuteEncodesQueryAndDecodesJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/geo/1.0/direct", r.URL.Path)
		assert.Equal(t, "London, GB", r.URL.Query().Get("q"))
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		assert.Equal(t, "go-weather-test", r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_, _ = w.Write([]byte(`{"name":"London","country":"GB"}`))
	}))
	defer srv.Close()

	client := NewHttpClient(srv.URL+"/", ClientOptions{DefaultHeaders: map[string]string{"User-Agent": "go-weather-test"}})

	successResp, errResp, status, err := client.Request().
		WithContext(context.Background()).
		WithPath("geo/1.0/direct").
		WithQueryParam("q", "London, GB").
		WithQueryParam("limit", "5").
		WithSuccessResp(&cityResponse{}).
		Execute()

	require.NoError(t, err)
	assert.Nil(t, errResp)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, &cityResponse{Name: "London", Country: "GB"}, successResp)
}

func TestExecuteReturnsStatusErrorAndErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"cod":"404","message":"city not found"}`))
	}))
	defer srv.Close()

	successResp, errResp, status, err := NewHttpClient(srv.URL, ClientOptions{}).Request().
		WithPath("/data/2.5/weather").
		WithQueryParams(url.Values{"q": {"Zzzz"}}).
		WithSuccessResp(&cityResponse{}).
		WithErrorResp(&apiError{}).
		Execute()

	require.Error(t, err)
	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Nil(t, successResp)
	assert.Equal(t, "city not found", errResp.(*apiError).Message)
}

func TestExecuteKeepsStatusErrorWhenErrorBodyIsNotJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream down"))
	}))
	defer srv.Close()

	_, _, status, err := NewHttpClient(srv.URL, ClientOptions{}).Request().WithErrorResp(&apiError{}).Execute()

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusBadGateway, status)
	assert.Equal(t, "upstream down", statusErr.Body)
}

func TestExecuteNeverReturnsEmptySuccessWithoutError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	successResp, _, status, err := NewHttpClient(srv.URL, ClientOptions{}).Request().
		WithPath("/missing").
		WithSuccessResp(&cityResponse{}).
		Execute()

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Nil(t, successResp)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestExecuteDecodeFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name":`))
	}))
	defer srv.Close()

	_, _, status, err := NewHttpClient(srv.URL, ClientOptions{}).Request().WithSuccessResp(&cityResponse{}).Execute()

	require.Error(t, err)
	assert.Equal(t, http.StatusOK, status)
	var statusErr *StatusError
	assert.False(t, errors.As(err, &statusErr))
}

func TestExecuteConvertsDeclaredCharsetToUTF8(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=ISO-8859-1")
		// Latin-1 encoded a-tilde (0xE3)
		_, _ = w.Write([]byte("{\"name\":\"S\xe3o Paulo\",\"country\":\"BR\"}"))
	}))
	defer srv.Close()

	resp, _, _, err := NewHttpClient(srv.URL, ClientOptions{}).Request().WithSuccessResp(&cityResponse{}).Execute()

	require.NoError(t, err)
	assert.Equal(t, &cityResponse{Name: "São Paulo", Country: "BR"}, resp)
}

func TestExecuteKeepsUTF8Bodies(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name":"Łódź","country":"PL"}`))
	}))
	defer srv.Close()

	resp, _, _, err := NewHttpClient(srv.URL, ClientOptions{}).Request().WithSuccessResp(&cityResponse{}).Execute()

	require.NoError(t, err)
	assert.Equal(t, "Łódź", resp.(*cityResponse).Name)
}

func TestExecuteRejectsUnknownCharset(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=x-made-up")
		_, _ = w.Write([]byte(`{"name":"London"}`))
	}))
	defer srv.Close()

	_, _, status, err := NewHttpClient(srv.URL, ClientOptions{}).Request().WithSuccessResp(&cityResponse{}).Execute()

	require.Error(t, err)
	assert.Equal(t, http.StatusOK, status)
}

func TestExecuteHonoursContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, status, err := NewHttpClient(srv.URL, ClientOptions{}).Request().WithContext(ctx).Execute()

	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Zero(t, status)
}

func TestExecuteValidatesRequest(t *testing.T) {
	_, _, _, err := (&Request{}).Execute()
	assert.EqualError(t, err, "client is required")

	_, _, _, err = NewHttpClient("http://localhost", ClientOptions{}).Request().WithPath("").Execute()
	assert.EqualError(t, err, "path is required")
}

func TestZapLoggerMasksRedactedParams(t *testing.T) {
	logger := NewZapLogger("appid")
	masked := logger.mask("https://api.openweathermap.org/data/2.5/weather?appid=secret&q=London")

	assert.NotContains(t, masked, "secret")
	assert.Contains(t, masked, "q=London")
	assert.Contains(t, masked, "appid=%2A%2A%2A")
}
