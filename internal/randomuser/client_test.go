package randomuser

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/five82/roster/internal/directory"
)

const samplePayload = `{
  "results": [
    {
      "name": {"title": "Ms", "first": "Joan", "last": "Meyer"},
      "location": {
        "street": {"number": 4821, "name": "Oak Lawn Ave"},
        "city": "Fresno",
        "state": "California",
        "country": "United States",
        "postcode": 93706
      },
      "email": "joan.meyer@example.com",
      "dob": {"date": "1975-07-04T23:30:00.123Z", "age": 50},
      "phone": "(555) 010-0001",
      "cell": "(555) 020-0001",
      "picture": {"large": "https://randomuser.me/api/portraits/women/1.jpg"}
    },
    {
      "name": {"title": "Mr", "first": "Ryan", "last": "Kim"},
      "location": {
        "street": {"number": "12B", "name": "Elm St"},
        "city": "Austin",
        "state": "Texas",
        "postcode": "73301"
      },
      "email": "ryan.kim@example.com",
      "dob": {"date": "1990-01-02T00:00:00Z", "age": 35},
      "phone": "(555) 010-0002",
      "cell": "(555) 020-0002",
      "picture": {"large": "https://randomuser.me/api/portraits/men/2.jpg"}
    }
  ],
  "info": {"seed": "abc", "results": 2, "page": 1, "version": "1.4"}
}`

func TestBuildEndpoint_DefaultsAndNormalizes(t *testing.T) {
	u, err := buildEndpoint(Options{})
	if err != nil {
		t.Fatalf("buildEndpoint returned error: %v", err)
	}
	if u.Scheme != "https" || u.Host != "randomuser.me" || u.Path != "/api/" {
		t.Fatalf("endpoint = %q, want https://randomuser.me/api/", u.String())
	}
	q := u.Query()
	if q.Get("results") != "12" || q.Get("nat") != "us" || q.Get("inc") != includedFields {
		t.Fatalf("query = %v, want defaults", q)
	}
	if q.Has("seed") {
		t.Fatalf("seed should be omitted when empty")
	}

	u, err = buildEndpoint(Options{BaseURL: "example.com/api/#frag", Results: 3, Nationality: " gb ", Seed: "s1"})
	if err != nil {
		t.Fatalf("buildEndpoint returned error: %v", err)
	}
	q = u.Query()
	if u.Scheme != "https" || u.Fragment != "" {
		t.Fatalf("endpoint not normalized: %q", u.String())
	}
	if q.Get("results") != "3" || q.Get("nat") != "gb" || q.Get("seed") != "s1" {
		t.Fatalf("query = %v, want overrides encoded", q)
	}
}

func TestBuildEndpoint_RejectsMissingHost(t *testing.T) {
	if _, err := buildEndpoint(Options{BaseURL: "http://"}); err == nil {
		t.Fatalf("buildEndpoint returned nil error, want missing host")
	}
}

func TestClient_FetchRecordsMapsPayload(t *testing.T) {
	t.Parallel()

	var gotQuery, gotUserAgent, gotAccept string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		gotUserAgent = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(samplePayload))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(Options{BaseURL: server.URL + "/api/", Results: 2, Seed: "abc"})
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	records, err := c.FetchRecords(ctx)
	if err != nil {
		t.Fatalf("FetchRecords returned error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("FetchRecords returned %d records, want 2", len(records))
	}

	joan := records[0]
	if joan.FullName() != "Joan Meyer" || joan.Email != "joan.meyer@example.com" {
		t.Fatalf("first record = %#v, want Joan Meyer", joan)
	}
	if joan.PostalCode != "93706" || joan.StreetNumber != "4821" {
		t.Fatalf("numeric fields = %q/%q, want 93706/4821", joan.PostalCode, joan.StreetNumber)
	}
	if joan.Region != "California" || joan.Mobile != "(555) 020-0001" || joan.Phone != "(555) 010-0001" {
		t.Fatalf("location/phone mapping wrong: %#v", joan)
	}
	if joan.Birthday() != "07/04/1975" {
		t.Fatalf("Birthday = %q, want 07/04/1975", joan.Birthday())
	}
	if !strings.HasSuffix(joan.PictureURL, "women/1.jpg") {
		t.Fatalf("PictureURL = %q", joan.PictureURL)
	}

	ryan := records[1]
	if ryan.PostalCode != "73301" || ryan.StreetNumber != "12B" {
		t.Fatalf("string fields = %q/%q, want 73301/12B", ryan.PostalCode, ryan.StreetNumber)
	}

	if !strings.Contains(gotQuery, "results=2") || !strings.Contains(gotQuery, "seed=abc") {
		t.Fatalf("query = %q, want results and seed", gotQuery)
	}
	if !strings.HasPrefix(gotUserAgent, "roster/") {
		t.Fatalf("User-Agent = %q, want roster/*", gotUserAgent)
	}
	if gotAccept != "application/json" {
		t.Fatalf("Accept = %q, want application/json", gotAccept)
	}
}

func TestClient_FailuresAreNetworkErrors(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/bad-json/":
			_, _ = w.Write([]byte("{not-json"))
		case "/status/":
			http.Error(w, "nope", http.StatusServiceUnavailable)
		case "/api-error/":
			_, _ = w.Write([]byte(`{"error": "Uh oh, something has gone wrong."}`))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	cases := []struct {
		path string
		want string
	}{
		{"/bad-json/", "decode response"},
		{"/status/", "returned status 503"},
		{"/api-error/", "something has gone wrong"},
	}
	for _, tc := range cases {
		c, err := NewClient(Options{BaseURL: server.URL + tc.path})
		if err != nil {
			t.Fatalf("NewClient returned error: %v", err)
		}
		_, err = c.FetchRecords(context.Background())
		var netErr *directory.NetworkError
		if !errors.As(err, &netErr) {
			t.Fatalf("%s: error = %v, want *directory.NetworkError", tc.path, err)
		}
		if !strings.Contains(err.Error(), tc.want) {
			t.Fatalf("%s: error = %q, want it to mention %q", tc.path, err.Error(), tc.want)
		}
	}
}

func TestClient_UnreachableIsNetworkError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	c, err := NewClient(Options{BaseURL: url, Timeout: time.Second})
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	_, err = c.FetchRecords(context.Background())
	var netErr *directory.NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("error = %v, want *directory.NetworkError", err)
	}
}

func TestClient_CancelledContext(t *testing.T) {
	c, err := NewClient(Options{BaseURL: "http://127.0.0.1:1"})
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = c.FetchRecords(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled in chain", err)
	}
}
