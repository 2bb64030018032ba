// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(baseURL string) *Client {
	return NewClientWithConfig(&ClientConfig{BaseURL: baseURL, Timeout: 5 * time.Second})
}

func TestChatSuccess(t *testing.T) {
	var got ChatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/chat", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		json.NewEncoder(w).Encode(Reply{
			Answer:     "12 active sites",
			Confidence: "high",
			Reasoning:  "counted distinct site ids",
		})
	}))
	defer srv.Close()

	c := newTestClient(srv.URL + "/api/v1")
	reply, err := c.Chat(context.Background(), "How many active sites?", "user-42")
	require.NoError(t, err)

	assert.Equal(t, "How many active sites?", got.Message)
	assert.Equal(t, "user-42", got.UserID)
	assert.Equal(t, "12 active sites", reply.Answer)
	assert.Equal(t, "high", reply.Confidence)
	assert.Empty(t, reply.GraphJSON)
}

func TestChatCarriesChartFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(Reply{
			Answer:    "Here is the breakdown.",
			GraphJSON: `{"data":[],"layout":{}}`,
		})
	}))
	defer srv.Close()

	c := newTestClient(srv.URL + "/api/v1")
	reply, err := c.Chat(context.Background(), "chart it", "u")
	require.NoError(t, err)
	assert.JSONEq(t, `{"data":[],"layout":{}}`, reply.GraphJSON)
}

func TestChatBackendDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"detail": "query engine unavailable"})
	}))
	defer srv.Close()

	c := newTestClient(srv.URL + "/api/v1")
	_, err := c.Chat(context.Background(), "q", "u")
	require.Error(t, err)

	assert.True(t, IsBackendError(err))
	assert.Contains(t, err.Error(), "query engine unavailable")
}

func TestChatBackendStatusOnly(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL + "/api/v1")
	_, err := c.Chat(context.Background(), "q", "u")
	require.Error(t, err)

	assert.True(t, IsBackendError(err))
	assert.Contains(t, err.Error(), "502")
}

func TestChatUnreachable(t *testing.T) {
	// Reserve a port, then close it so nothing is listening.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := newTestClient(url + "/api/v1")
	_, err := c.Chat(context.Background(), "q", "u")
	require.Error(t, err)
	assert.True(t, IsUnreachable(err))
}

func TestChatContextCancel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := newTestClient(srv.URL + "/api/v1")
	_, err := c.Chat(ctx, "q", "u")
	require.Error(t, err)
	assert.True(t, IsTimeout(err))
}

func TestChatMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL + "/api/v1")
	_, err := c.Chat(context.Background(), "q", "u")
	require.Error(t, err)

	var clientErr *ClientError
	require.ErrorAs(t, err, &clientErr)
	assert.Equal(t, ErrTypeInvalidResponse, clientErr.Type)
}

func TestConfigDefaults(t *testing.T) {
	c := NewClientWithConfig(&ClientConfig{})
	assert.Equal(t, "http://127.0.0.1:8000/api/v1", c.GetConfig().BaseURL)
	assert.Equal(t, 60*time.Second, c.GetConfig().Timeout)

	c = NewClientWithConfig(nil)
	assert.Equal(t, "http://127.0.0.1:8000/api/v1", c.GetConfig().BaseURL)
}
