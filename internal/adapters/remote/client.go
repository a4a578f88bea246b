package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"

	"github.com/shloksachdev/PaperLens/internal/domain"
	"github.com/shloksachdev/PaperLens/internal/ports"
)

const (
	uploadPath  = "upload"
	analyzePath = "analyze/"
	askPath     = "ask/"
	uploadField = "file"
	queryParam  = "query"

	maxResponseBytes = 8 << 20
	maxErrorBytes    = 64 << 10
)

const (
	opSubmit  = "submit document"
	opAnalyze = "request analysis"
	opAsk     = "ask question"
	opPing    = "ping"
)

var errMissingDocumentID = errors.New("upload response missing doc_id")

var quoteEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// StatusError is a non-2xx response from the document service.
type StatusError struct {
	StatusCode int
	Detail     string
}

func (e *StatusError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("status %d", e.StatusCode)
	}
	return fmt.Sprintf("status %d: %s", e.StatusCode, e.Detail)
}

// Client talks to the document service over HTTP. It neither retries nor
// applies its own timeouts; every failure is reported as a transport error.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ ports.RemoteService = (*Client)(nil)

type uploadResponse struct {
	Filename string `json:"filename"`
	DocID    string `json:"doc_id"`
	Message  string `json:"message"`
}

type askResponse struct {
	Answer string `json:"answer"`
}

type healthResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Detail json.RawMessage `json:"detail"`
}

func NewClient(baseURL string, httpClient *http.Client) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("service base url is required")
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse service base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, errors.New("service base url must use http or https")
	}
	if parsed.Host == "" {
		return nil, errors.New("service base url host is required")
	}
	if !strings.HasSuffix(parsed.Path, "/") {
		parsed.Path += "/"
	}

	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{baseURL: parsed.String(), httpClient: httpClient}, nil
}

func (c *Client) SubmitDocument(ctx context.Context, doc domain.Document) (domain.DocumentHandle, error) {
	body, contentType, err := encodeUpload(doc)
	if err != nil {
		return "", domain.TransportError(opSubmit, err)
	}

	var payload uploadResponse
	if err := c.do(ctx, http.MethodPost, c.endpoint(uploadPath, nil), body, contentType, &payload); err != nil {
		return "", domain.TransportError(opSubmit, err)
	}
	if payload.DocID == "" {
		return "", domain.TransportError(opSubmit, errMissingDocumentID)
	}

	return domain.DocumentHandle(payload.DocID), nil
}

func (c *Client) RequestAnalysis(ctx context.Context, handle domain.DocumentHandle) (domain.AnalysisResult, error) {
	var result domain.AnalysisResult
	endpoint := c.endpoint(analyzePath+url.PathEscape(string(handle)), nil)
	if err := c.do(ctx, http.MethodPost, endpoint, nil, "", &result); err != nil {
		return domain.AnalysisResult{}, domain.TransportError(opAnalyze, err)
	}

	return result, nil
}

func (c *Client) AskQuestion(ctx context.Context, handle domain.DocumentHandle, question string) (string, error) {
	var payload askResponse
	endpoint := c.endpoint(askPath+url.PathEscape(string(handle)), url.Values{queryParam: {question}})
	if err := c.do(ctx, http.MethodPost, endpoint, nil, "", &payload); err != nil {
		return "", domain.TransportError(opAsk, err)
	}

	return payload.Answer, nil
}

// Ping checks that the service answers on its root endpoint and returns the
// greeting it sends back.
func (c *Client) Ping(ctx context.Context) (string, error) {
	var payload healthResponse
	if err := c.do(ctx, http.MethodGet, c.endpoint("", nil), nil, "", &payload); err != nil {
		return "", domain.TransportError(opPing, err)
	}

	return payload.Message, nil
}

func (c *Client) endpoint(path string, query url.Values) string {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	return endpoint
}

func (c *Client) do(ctx context.Context, method, endpoint string, body io.Reader, contentType string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return decodeStatusError(resp)
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

func encodeUpload(doc domain.Document) (io.Reader, string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="%s"; filename="%s"`, uploadField, quoteEscaper.Replace(doc.Name)))
	contentType := doc.MimeType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, "", fmt.Errorf("create upload part: %w", err)
	}
	if _, err := part.Write(doc.Data); err != nil {
		return nil, "", fmt.Errorf("write upload part: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("close upload body: %w", err)
	}

	return body, writer.FormDataContentType(), nil
}

// decodeStatusError reads the service's {"detail": ...} error body. Detail
// is usually a string but validation failures send a list.
func decodeStatusError(resp *http.Response) error {
	statusErr := &StatusError{StatusCode: resp.StatusCode}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBytes))
	if err != nil || len(raw) == 0 {
		return statusErr
	}

	var payload errorResponse
	if err := json.Unmarshal(raw, &payload); err != nil || len(payload.Detail) == 0 {
		statusErr.Detail = strings.TrimSpace(string(raw))
		return statusErr
	}

	var detail string
	if err := json.Unmarshal(payload.Detail, &detail); err == nil {
		statusErr.Detail = detail
		return statusErr
	}

	statusErr.Detail = string(payload.Detail)
	return statusErr
}
