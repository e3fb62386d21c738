package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/sachink160/multitool-client/internal/common"
)

// Request describes one backend call. Path is relative to the base URL and
// already escaped. At most one of JSON, Form and Multipart is set; with none
// set the request has no body.
type Request struct {
	Method    string
	Path      string
	Query     url.Values
	JSON      any
	Form      url.Values
	Multipart *Multipart
	Accept    string

	// Anonymous requests carry no Authorization header and are not retried
	// after a refresh. Used for the credential exchange itself.
	Anonymous bool
}

// Multipart is a multipart/form-data body. Fields are written in order,
// before files.
type Multipart struct {
	Fields []Field
	Files  []FilePart
}

type Field struct {
	Name  string
	Value string
}

// FilePart is one uploaded file held in memory.
type FilePart struct {
	Field       string
	Filename    string
	ContentType string
	Data        []byte
}

// ReadFilePart loads the file at path as form field field.
func ReadFilePart(field, path string) (FilePart, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FilePart{}, fmt.Errorf("read %s: %w", path, err)
	}
	return FilePart{Field: field, Filename: filepath.Base(path), Data: data}, nil
}

// encodedBody is a request body materialised once and replayable.
type encodedBody struct {
	data        []byte
	contentType string
}

func (b *encodedBody) reader() io.Reader {
	if b == nil || b.data == nil {
		return nil
	}
	return bytes.NewReader(b.data)
}

func (r Request) encode() (*encodedBody, error) {
	switch {
	case r.Multipart != nil:
		return r.Multipart.encode()
	case r.Form != nil:
		return &encodedBody{data: []byte(r.Form.Encode()), contentType: common.ContentTypeForm}, nil
	case r.JSON != nil:
		data, err := json.Marshal(r.JSON)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		return &encodedBody{data: data, contentType: common.ContentTypeJSON}, nil
	default:
		return &encodedBody{contentType: common.ContentTypeJSON}, nil
	}
}

func (m *Multipart) encode() (*encodedBody, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, f := range m.Fields {
		if err := w.WriteField(f.Name, f.Value); err != nil {
			return nil, fmt.Errorf("write field %s: %w", f.Name, err)
		}
	}

	for _, f := range m.Files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, f.Field, f.Filename))
		ct := f.ContentType
		if ct == "" {
			ct = "application/octet-stream"
		}
		h.Set(common.ContentTypeHeaderName, ct)

		part, err := w.CreatePart(h)
		if err != nil {
			return nil, fmt.Errorf("create part %s: %w", f.Field, err)
		}
		if _, err := part.Write(f.Data); err != nil {
			return nil, fmt.Errorf("write part %s: %w", f.Field, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("close multipart: %w", err)
	}
	return &encodedBody{data: buf.Bytes(), contentType: w.FormDataContentType()}, nil
}

// buildURL joins path onto the base URL. path is already escaped: callers
// escape each variable segment with url.PathEscape.
func (c *HTTPClient) buildURL(path string, query url.Values) string {
	u := *c.baseURL
	raw := strings.TrimRight(c.baseURL.EscapedPath(), "/") + "/" + strings.TrimLeft(path, "/")
	if p, err := url.PathUnescape(raw); err == nil {
		u.Path = p
		u.RawPath = raw
	} else {
		u.Path = raw
		u.RawPath = ""
	}
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

// Do executes req and decodes a JSON response into out, which may be nil.
func (c *HTTPClient) Do(ctx context.Context, req Request, out any) error {
	resp, err := c.execute(ctx, req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if err == io.EOF {
			return nil
		}
		return fmt.Errorf("decode %s %s response: %w", req.Method, req.Path, err)
	}
	return nil
}

// execute sends req, refreshing and retrying once on a 401. The returned
// response always has a 2xx status and an open body.
func (c *HTTPClient) execute(ctx context.Context, req Request) (*http.Response, error) {
	if req.Method == "" {
		req.Method = http.MethodGet
	}

	body, err := req.encode()
	if err != nil {
		return nil, err
	}

	var access string
	if !req.Anonymous {
		pair, ok, err := c.store.Read(ctx)
		if err != nil {
			return nil, err
		}
		if ok {
			access = pair.AccessToken
		}
	}

	resp, err := c.send(ctx, req, body, access)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized && !req.Anonymous {
		drain(resp)

		fresh, err := c.refreshAfter(ctx, access)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			c.logger.Warn(ctx, "token refresh failed", "path", req.Path, "error", err)
			c.authFailed(ctx)
			return nil, fmt.Errorf("%w: %w", ErrUnauthorized, err)
		}

		resp, err = c.send(ctx, req, body, fresh)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode == http.StatusUnauthorized {
			apiErr := parseAPIError(resp)
			drain(resp)
			c.authFailed(ctx)
			return nil, apiErr
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := parseAPIError(resp)
		drain(resp)
		c.logger.Debug(ctx, "request failed", "method", req.Method, "path", req.Path, "status", resp.StatusCode, "message", apiErr.Message)
		return nil, apiErr
	}
	return resp, nil
}

func (c *HTTPClient) send(ctx context.Context, req Request, body *encodedBody, access string) (*http.Response, error) {
	httpReq, err := http.NewRequestWithContext(ctx, req.Method, c.buildURL(req.Path, req.Query), body.reader())
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	requestID := c.newRequestID()
	httpReq.Header.Set(common.RequestIDHeaderName, requestID)
	if body.contentType != "" {
		httpReq.Header.Set(common.ContentTypeHeaderName, body.contentType)
	}
	accept := req.Accept
	if accept == "" {
		accept = common.ContentTypeJSON
	}
	httpReq.Header.Set("Accept", accept)
	if access != "" {
		httpReq.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+access)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		c.logger.Warn(ctx, "request failed", "method", req.Method, "path", req.Path, "request_id", requestID, "error", err)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	c.logger.Debug(ctx, "request sent", "method", req.Method, "path", req.Path, "status", resp.StatusCode, "request_id", requestID)
	return resp, nil
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))
	_ = resp.Body.Close()
}
