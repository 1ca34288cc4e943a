package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func scoringServer(t *testing.T, reply string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "POST", r.Method)
		assert.Contains(t, r.Header.Get("Authorization"), "Bearer ")

		var req chatCompletionRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-4o", req.Model)
		assert.Len(t, req.Messages, 2)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"content": reply}},
			},
		})
	}))
}

func TestScoreParsesBareInteger(t *testing.T) {
	srv := scoringServer(t, "4")
	defer srv.Close()

	client := NewClient("test-key", srv.URL)

	score, err := client.Score(context.Background(), "I need this now")
	assert.NoError(t, err)
	assert.Equal(t, 4, score)
}

func TestScoreTakesFirstIntegerAndClamps(t *testing.T) {
	srv := scoringServer(t, "I'd rate this 9 out of 10")
	defer srv.Close()

	client := NewClient("test-key", srv.URL)

	score, err := client.Score(context.Background(), "take my money")
	assert.NoError(t, err)
	assert.Equal(t, 5, score)
}

func TestScoreNonNumericReplyFallsBackToMinimum(t *testing.T) {
	srv := scoringServer(t, "high intent!")
	defer srv.Close()

	client := NewClient("test-key", srv.URL)

	score, err := client.Score(context.Background(), "hello")
	assert.NoError(t, err)
	assert.Equal(t, 1, score)
}

func TestScoreEmptyChoicesFallsBackToMinimum(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	client := NewClient("test-key", srv.URL)

	score, err := client.Score(context.Background(), "hello")
	assert.NoError(t, err)
	assert.Equal(t, 1, score)
}

func TestScoreTransportErrorSurfaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient("test-key", srv.URL)

	_, err := client.Score(context.Background(), "hello")
	assert.Error(t, err)
}

func TestParseScore(t *testing.T) {
	cases := map[string]int{
		"1":            1,
		"5":            5,
		" 3 ":          3,
		"Score: 4":     4,
		"0":            1,
		"12":           5,
		"":             1,
		"no idea":      1,
		"maybe 2, ok?": 2,
	}

	for reply, want := range cases {
		assert.Equal(t, want, parseScore(reply), "reply %q", reply)
	}
}
