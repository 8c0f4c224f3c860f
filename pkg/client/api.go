// Copyright 2026, The heroku-go Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package client

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/google/go-querystring/query"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"

	"github.com/heroku-go/heroku/pkg/apitype"
	"github.com/heroku-go/heroku/pkg/util/contract"
	"github.com/heroku-go/heroku/pkg/util/logging"
	"github.com/heroku-go/heroku/pkg/util/tracing"
)

const (
	apiRequestLogLevel       = 10 // log level for logging API requests and responses
	apiRequestDetailLogLevel = 11 // log level for logging extra details about API requests and responses
)

const (
	// acceptHeader selects version 3 of the Platform API.
	acceptHeader = "application/vnd.heroku+json; version=3"
	// tracingHeader carries an opaque tracing token to the API when one is configured.
	tracingHeader = "X-Heroku-Tracing"
)

// httpClient is an HTTP client abstraction, used by Client.
type httpClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// newRequest builds the HTTP request for d against apiURL. Typed and raw calls both go through it.
func newRequest(ctx context.Context, requestSpan opentracing.Span, apiURL, token, userAgent string,
	d Descriptor) (*http.Request, error) {

	// Normalize URL components
	apiURL = strings.TrimSuffix(apiURL, "/")
	path, err := requestPath(d.Path())
	if err != nil {
		return nil, err
	}

	// Compute query string from query object
	querystring := ""
	if queryObj := d.Query(); queryObj != nil {
		queryValues, err := query.Values(queryObj)
		if err != nil {
			return nil, fmt.Errorf("encoding query object: %w", err)
		}
		if q := queryValues.Encode(); len(q) > 0 {
			querystring = "?" + q
		}
	}

	url := apiURL + path + querystring
	req, err := http.NewRequestWithContext(ctx, d.Method(), url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating new HTTP request: %w", err)
	}

	var body io.WriterTo
	if reqObj := d.Body(); reqObj != nil {
		if body, err = newBodyWriter(reqObj); err != nil {
			return nil, err
		}
		if err := setupBody(req, body); err != nil {
			return nil, fmt.Errorf("setting up body for the new HTTP request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
	}

	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Request-Id", uuid.NewString())

	// Apply credentials if provided.
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	tracingOptions := tracing.OptionsFromContext(ctx)
	if tracingOptions.PropagateSpans {
		carrier := opentracing.HTTPHeadersCarrier(req.Header)
		if err = requestSpan.Tracer().Inject(requestSpan.Context(), opentracing.HTTPHeaders, carrier); err != nil {
			logging.Errorf("injecting tracing headers: %v", err)
		}
	}
	if tracingOptions.TracingHeader != "" {
		req.Header.Set(tracingHeader, tracingOptions.TracingHeader)
	}

	// Opt-in to accepting gzip-encoded responses from the service.
	req.Header.Set("Accept-Encoding", "gzip")

	logging.V(apiRequestLogLevel).Infof("Making Heroku API call: %s %s", d.Method(), url)
	if logging.V(apiRequestDetailLogLevel) {
		var buf bytes.Buffer
		if body != nil {
			_, err := body.WriteTo(&buf)
			contract.IgnoreError(err)
		}
		logging.V(apiRequestDetailLogLevel).Infof(
			"Heroku API call details (%s): headers=%v; body=%v", url, req.Header, buf.String())
	}

	return req, nil
}

// requestPath roots p at "/" without normalizing it. A path with an empty, "." or ".." segment is rejected: a URL
// resolver would collapse it into some other resource.
func requestPath(p string) (string, error) {
	for _, seg := range strings.Split(strings.TrimPrefix(p, "/"), "/") {
		if seg == "" || seg == "." || seg == ".." {
			return "", fmt.Errorf("invalid API path %q: empty or dot segment", p)
		}
	}
	return rootPath(p), nil
}

// startSpan starts the span covering a single API call.
func startSpan(ctx context.Context, apiURL string, d Descriptor) (opentracing.Span, context.Context) {
	return opentracing.StartSpanFromContext(ctx, EndpointName(d.Method(), d.Path()),
		opentracing.Tag{Key: "method", Value: d.Method()},
		opentracing.Tag{Key: "path", Value: d.Path()},
		opentracing.Tag{Key: "api", Value: apiURL})
}

// send performs the round trip for d. Any failure to get a response back is reported as a *TransportError; the
// status code is not inspected.
func (c *Client) send(ctx context.Context, requestSpan opentracing.Span, d Descriptor) (*http.Response, error) {
	req, err := newRequest(ctx, requestSpan, c.apiURL, c.apiToken, c.userAgent, d)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		requestSpan.SetTag("error", true)
		return nil, &TransportError{Method: req.Method, URL: req.URL.String(), Err: err}
	}
	logging.V(apiRequestLogLevel).Infof("Heroku API call response code (%s): %v", req.URL, resp.Status)
	requestSpan.SetTag("responseCode", resp.Status)
	return resp, nil
}

// checkStatus classifies a response whose body has already been read. Non-2xx responses become an
// *apitype.ErrorResponse carrying the raw body.
func (c *Client) checkStatus(resp *http.Response, respBody []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode <= 299 {
		return nil
	}

	// Error responses should be of type ErrorResponse. See if we can unmarshal as that type, and if not just return
	// the raw response text.
	var errResp apitype.ErrorResponse
	if err := jsonIterConfig.Unmarshal(respBody, &errResp); err != nil || errResp.Message == "" {
		errResp.Message = strings.TrimSpace(string(respBody))
	}
	errResp.Code = resp.StatusCode
	errResp.Body = respBody

	// Provide a better error if using an authenticated call without having a token.
	if resp.StatusCode == http.StatusUnauthorized && c.apiToken == "" {
		return fmt.Errorf("this operation requires an API token; set HEROKU_API_KEY or pass one to NewClient: %w",
			&errResp)
	}
	return &errResp
}

func setupBody(req *http.Request, body io.WriterTo) error {
	// Bodies that fit in 1mb are serialized once and kept in memory. Larger ones are measured first and then
	// serialized again behind a pipe, so ContentLength is always exact and GetBody can replay the body.
	oneMB := 1024 * 1024
	w := &limitWriter{maxBytes: oneMB}
	_, err := body.WriteTo(w)
	if err != nil {
		return err
	}
	if w.Overflow() {
		req.GetBody = func() (io.ReadCloser, error) {
			return pipedBody(body), nil
		}
	} else {
		data := w.buf.Bytes()
		req.GetBody = func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(data)), nil
		}
	}
	req.Body, err = req.GetBody()
	if err != nil {
		return err
	}
	req.ContentLength = w.written
	return nil
}

func pipedBody(body io.WriterTo) io.ReadCloser {
	pipeBufferSize := 1024 * 1024
	bodyReader, bodyWriter := io.Pipe()

	go func() {
		bufWriter := bufio.NewWriterSize(bodyWriter, pipeBufferSize)
		_, err := body.WriteTo(bufWriter)

		flushErr := bufWriter.Flush()
		if err == nil {
			err = flushErr
		}

		if err != nil && !errors.Is(err, io.ErrClosedPipe) {
			bodyWriter.CloseWithError(err)
		} else {
			contract.IgnoreClose(bodyWriter)
		}
	}()

	type readcloser struct {
		io.Reader
		io.Closer
	}
	return readcloser{
		Reader: bufio.NewReaderSize(bodyReader, pipeBufferSize),
		Closer: bodyReader,
	}
}

// readBody reads the contents of an http.Response into a byte array, returning an error if one occurred while in the
// process of doing so. readBody uses the Content-Encoding of the response to pick the correct reader to use.
func readBody(resp *http.Response) ([]byte, error) {
	contentEncoding, ok := resp.Header["Content-Encoding"]
	defer contract.IgnoreClose(resp.Body)
	if !ok {
		// No header implies that there's no additional encoding on this response.
		return io.ReadAll(resp.Body)
	}

	if len(contentEncoding) > 1 {
		// We only know how to deal with gzip. We can't handle additional encodings layered on top of it.
		return nil, fmt.Errorf("can't handle content encodings %v", contentEncoding)
	}

	switch contentEncoding[0] {
	case "x-gzip":
		// RFC 7230 recommends we treat x-gzip as an alias of gzip.
		fallthrough
	case "gzip":
		logging.V(apiRequestDetailLogLevel).Infoln("decompressing gzipped response from service")
		reader, err := gzip.NewReader(resp.Body)
		if reader != nil {
			defer contract.IgnoreClose(reader)
		}
		if err != nil {
			return nil, fmt.Errorf("reading gzip-compressed body: %w", err)
		}

		return io.ReadAll(reader)
	default:
		return nil, fmt.Errorf("unrecognized encoding %s", contentEncoding[0])
	}
}

func logResponseBody(url string, respBody []byte) {
	if logging.V(apiRequestDetailLogLevel) {
		logging.V(apiRequestDetailLogLevel).Infof("Heroku API call response body (%s, %s): %v",
			url, humanize.Bytes(uint64(len(respBody))), string(respBody))
	}
}
