package remote

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shloksachdev/PaperLens/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitDocumentSendsMultipartFile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/upload", r.URL.Path)

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		data, err := io.ReadAll(file)
		require.NoError(t, err)

		assert.Equal(t, "paper.pdf", header.Filename)
		assert.Equal(t, "application/pdf", header.Header.Get("Content-Type"))
		assert.Equal(t, "%PDF-1.7 body", string(data))

		writeJSON(t, w, http.StatusOK, map[string]string{
			"filename": "paper.pdf",
			"doc_id":   "doc-42",
			"message":  "File uploaded successfully",
		})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	handle, err := client.SubmitDocument(context.Background(), domain.Document{
		Name:     "paper.pdf",
		Data:     []byte("%PDF-1.7 body"),
		MimeType: "application/pdf",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.DocumentHandle("doc-42"), handle)
}

func TestSubmitDocumentFailures(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantStatus int
		wantDetail string
	}{
		{name: "server error with detail", status: http.StatusInternalServerError, body: `{"detail":"Failed to process document"}`, wantStatus: 500, wantDetail: "Failed to process document"},
		{name: "validation error list", status: http.StatusUnprocessableEntity, body: `{"detail":[{"loc":["body","file"],"msg":"field required"}]}`, wantStatus: 422, wantDetail: `[{"loc":["body","file"],"msg":"field required"}]`},
		{name: "plain text body", status: http.StatusBadGateway, body: "bad gateway\n", wantStatus: 502, wantDetail: "bad gateway"},
		{name: "empty body", status: http.StatusServiceUnavailable, wantStatus: 503},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			}))
			defer server.Close()

			_, err := newTestClient(t, server.URL).SubmitDocument(context.Background(), domain.Document{Name: "a.pdf", Data: []byte("x")})
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrTransport)

			var statusErr *StatusError
			require.ErrorAs(t, err, &statusErr)
			assert.Equal(t, tt.wantStatus, statusErr.StatusCode)
			assert.Equal(t, tt.wantDetail, statusErr.Detail)
		})
	}
}

func TestSubmitDocumentRejectsMissingDocumentID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]string{"filename": "a.pdf"})
	}))
	defer server.Close()

	_, err := newTestClient(t, server.URL).SubmitDocument(context.Background(), domain.Document{Name: "a.pdf", Data: []byte("x")})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTransport)
	assert.ErrorIs(t, err, errMissingDocumentID)
}

func TestSubmitDocumentConnectionFailureIsTransportError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	_, err := newTestClient(t, url).SubmitDocument(context.Background(), domain.Document{Name: "a.pdf", Data: []byte("x")})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTransport)
	assert.Contains(t, err.Error(), "submit document")
}

func TestRequestAnalysisKeepsSectionOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/analyze/doc-42", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"Summary":"s","Methodology":"m","Findings":"f","Abstract":"a"}`)
	}))
	defer server.Close()

	result, err := newTestClient(t, server.URL).RequestAnalysis(context.Background(), "doc-42")
	require.NoError(t, err)
	assert.Equal(t, []string{"Summary", "Methodology", "Findings", "Abstract"}, result.Names())

	body, ok := result.Get("Findings")
	assert.True(t, ok)
	assert.Equal(t, "f", body)
}

func TestRequestAnalysisFailureIsTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusNotFound, map[string]string{"detail": "Document not found"})
	}))
	defer server.Close()

	_, err := newTestClient(t, server.URL).RequestAnalysis(context.Background(), "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTransport)
	assert.Contains(t, err.Error(), "Document not found")
}

func TestAskQuestionEscapesQuery(t *testing.T) {
	question := "What's the p-value & effect size? 50%/n=12#"

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/ask/doc 7", r.URL.Path)
		assert.Equal(t, question, r.URL.Query().Get("query"))

		writeJSON(t, w, http.StatusOK, map[string]string{"answer": "p < 0.05"})
	}))
	defer server.Close()

	answer, err := newTestClient(t, server.URL).AskQuestion(context.Background(), "doc 7", question)
	require.NoError(t, err)
	assert.Equal(t, "p < 0.05", answer)
}

func TestAskQuestionMalformedBodyIsTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "not json")
	}))
	defer server.Close()

	_, err := newTestClient(t, server.URL).AskQuestion(context.Background(), "doc-42", "why?")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTransport)
}

func TestPing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/", r.URL.Path)
		writeJSON(t, w, http.StatusOK, map[string]string{"message": "Research paper assistant is running"})
	}))
	defer server.Close()

	message, err := newTestClient(t, server.URL).Ping(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Research paper assistant is running", message)
}

func TestClientHonoursBasePath(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/ask/doc-42", r.URL.Path)
		writeJSON(t, w, http.StatusOK, map[string]string{"answer": "ok"})
	}))
	defer server.Close()

	answer, err := newTestClient(t, server.URL+"/api").AskQuestion(context.Background(), "doc-42", "q")
	require.NoError(t, err)
	assert.Equal(t, "ok", answer)
}

func TestNewClientValidatesBaseURL(t *testing.T) {
	for _, baseURL := range []string{"", "ftp://example.com", "http://", "://bad"} {
		_, err := NewClient(baseURL, nil)
		assert.Error(t, err, baseURL)
	}
}

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()

	client, err := NewClient(baseURL, http.DefaultClient)
	require.NoError(t, err)
	return client
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, payload any) {
	t.Helper()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(payload))
}
