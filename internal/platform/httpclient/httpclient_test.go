package httpclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestDoJSON_DecodesSuccessAndErrorBodies(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/ok":
			var in map[string]string
			_ = json.NewDecoder(r.Body).Decode(&in)
			_ = json.NewEncoder(w).Encode(map[string]string{"echo": in["name"], "ua": r.UserAgent()})
		default:
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"validation failed","fields":{"age":"must be greater than 0"}}`))
		}
	}))
	defer ts.Close()

	c, err := New(ts.URL+"/", 0)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	var out map[string]string
	if err := c.Post(context.Background(), "ok", map[string]string{"name": "Rex"}, &out); err != nil {
		t.Fatalf("post: %v", err)
	}
	if out["echo"] != "Rex" || out["ua"] != "shelterctl" {
		t.Fatalf("unexpected response %v", out)
	}

	err = c.Get(context.Background(), "/bad", nil)
	if !IsStatus(err, http.StatusBadRequest) {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
	he := err.(*HTTPError)
	if he.Message != "validation failed" || he.Fields["age"] == "" {
		t.Fatalf("expected decoded error body, got %+v", he)
	}
}

func TestNew_RejectsInvalidBaseURL(t *testing.T) {
	if _, err := New("localhost:8080", 0); err == nil {
		t.Fatalf("expected error for url without scheme")
	}
}
