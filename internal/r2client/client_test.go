package r2client

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aws/smithy-go"
)

type payload struct {
	Name  string   `json:"name"`
	Items []string `json:"items"`
}

func TestEncodeDecodeJSON(t *testing.T) {
	t.Parallel()

	in := payload{Name: strings.Repeat("directory ", 200), Items: []string{"a", "b"}}
	data, err := EncodeJSON(in)
	if err != nil {
		t.Fatalf("EncodeJSON failed: %v", err)
	}
	if len(data) >= len(in.Name) {
		t.Errorf("compressed size %d should be smaller than input %d", len(data), len(in.Name))
	}

	var out payload
	if err := DecodeJSON(bytes.NewReader(data), &out); err != nil {
		t.Fatalf("DecodeJSON failed: %v", err)
	}
	if out.Name != in.Name || len(out.Items) != 2 {
		t.Errorf("round trip mismatch: got %+v", out)
	}
}

func TestDecodeJSON_Errors(t *testing.T) {
	t.Parallel()

	var out payload
	if err := DecodeJSON(strings.NewReader("not zstd"), &out); err == nil {
		t.Error("expected error for non-zstd input")
	}

	data, err := EncodeJSON("just a string")
	if err != nil {
		t.Fatalf("EncodeJSON failed: %v", err)
	}
	if err := DecodeJSON(bytes.NewReader(data), &out); err == nil {
		t.Error("expected error decoding a string into a struct")
	}
}

func TestNewDecompressReader(t *testing.T) {
	t.Parallel()

	data, err := EncodeJSON(map[string]int{"n": 1})
	if err != nil {
		t.Fatalf("EncodeJSON failed: %v", err)
	}
	rc, err := NewDecompressReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("NewDecompressReader failed: %v", err)
	}
	defer func() { _ = rc.Close() }()

	raw, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if got := strings.TrimSpace(string(raw)); got != `{"n":1}` {
		t.Errorf("decompressed = %q", got)
	}
}

func TestConfig_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"complete", Config{Endpoint: "https://x.r2.cloudflarestorage.com", AccessKeyID: "k", SecretKey: "s", BucketName: "b"}, false},
		{"missing endpoint", Config{AccessKeyID: "k", SecretKey: "s", BucketName: "b"}, true},
		{"missing bucket", Config{Endpoint: "https://x", AccessKeyID: "k", SecretKey: "s"}, true},
		{"empty", Config{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := New(context.Background(), tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestEndpointForAccount(t *testing.T) {
	t.Parallel()
	if got := EndpointForAccount("abc123"); got != "https://abc123.r2.cloudflarestorage.com" {
		t.Errorf("EndpointForAccount() = %q", got)
	}
}

type statusError struct{ code int }

func (e statusError) Error() string       { return "status" }
func (e statusError) HTTPStatusCode() int { return e.code }

func TestErrorClassification(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		err             error
		wantNotFound    bool
		wantNotModified bool
	}{
		{"api not found", &smithy.GenericAPIError{Code: "NoSuchKey"}, true, false},
		{"api not modified", &smithy.GenericAPIError{Code: "NotModified"}, false, true},
		{"status 404", statusError{http.StatusNotFound}, true, false},
		{"wrapped status 304", errors.Join(errors.New("op"), statusError{http.StatusNotModified}), false, true},
		{"other", errors.New("boom"), false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := isNotFound(tt.err); got != tt.wantNotFound {
				t.Errorf("isNotFound() = %v, want %v", got, tt.wantNotFound)
			}
			if got := isNotModified(tt.err); got != tt.wantNotModified {
				t.Errorf("isNotModified() = %v, want %v", got, tt.wantNotModified)
			}
		})
	}
}

// fakeR2 serves a single object with a fixed ETag, honoring If-None-Match.
func fakeR2(t *testing.T, key, etag string, body []byte) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/bucket/"+key {
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, `<?xml version="1.0" encoding="UTF-8"?><Error><Code>NoSuchKey</Code><Message>missing</Message></Error>`)
			return
		}
		if r.Header.Get("If-None-Match") == `"`+etag+`"` {
			w.Header().Set("ETag", `"`+etag+`"`)
			w.WriteHeader(http.StatusNotModified)
			return
		}
		w.Header().Set("ETag", `"`+etag+`"`)
		w.Header().Set("Content-Type", ContentTypeZstdJSON)
		_, _ = w.Write(body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestDownloadIfChanged(t *testing.T) {
	t.Parallel()

	data, err := EncodeJSON(payload{Name: "snapshot"})
	if err != nil {
		t.Fatalf("EncodeJSON failed: %v", err)
	}
	srv := fakeR2(t, "snap.json.zst", "v1", data)

	ctx := context.Background()
	client, err := New(ctx, Config{Endpoint: srv.URL, AccessKeyID: "k", SecretKey: "s", BucketName: "bucket"})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	body, etag, err := client.DownloadIfChanged(ctx, "snap.json.zst", "")
	if err != nil {
		t.Fatalf("first download failed: %v", err)
	}
	var out payload
	err = DecodeJSON(body, &out)
	_ = body.Close()
	if err != nil {
		t.Fatalf("DecodeJSON failed: %v", err)
	}
	if etag != "v1" || out.Name != "snapshot" {
		t.Errorf("got etag %q payload %+v", etag, out)
	}

	if _, _, err := client.DownloadIfChanged(ctx, "snap.json.zst", "v1"); !errors.Is(err, ErrNotModified) {
		t.Errorf("second download error = %v, want ErrNotModified", err)
	}

	if _, _, err := client.Download(ctx, "missing.json.zst"); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing download error = %v, want ErrNotFound", err)
	}
}
