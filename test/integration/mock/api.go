package mock

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
)

// ReceivedRequest is a request captured by the ApiMock.
type ReceivedRequest struct {
	Headers map[string]string
	Queries map[string]string
	Body    map[string]any
	RawBody string
}

type cannedResponse struct {
	status int
	body   any
}

type route struct {
	received  []ReceivedRequest
	responses map[int]cannedResponse
	fallback  *cannedResponse
}

// ApiMock is an HTTP server that replays canned responses per method and path.
// A path segment "*" matches any segment. String bodies are written as is and
// everything else is encoded as JSON.
type ApiMock struct {
	mu      sync.Mutex
	routes  map[string]*route
	server  *httptest.Server
	mockUrl string
}

func NewApiServer() *ApiMock {
	return &ApiMock{routes: map[string]*route{}}
}

func (a *ApiMock) Start() {
	a.server = httptest.NewServer(http.HandlerFunc(a.serve))
	a.mockUrl = a.server.URL
}

func (a *ApiMock) Close() {
	if a.server != nil {
		a.server.Close()
	}
}

func (a *ApiMock) GetUrl() string {
	return a.mockUrl
}

func (a *ApiMock) serve(w http.ResponseWriter, r *http.Request) {
	raw, _ := io.ReadAll(r.Body)

	received := ReceivedRequest{
		Headers: map[string]string{},
		Queries: map[string]string{},
		RawBody: string(raw),
	}
	_ = json.Unmarshal(raw, &received.Body)
	if received.Body == nil {
		received.Body = map[string]any{}
	}
	for key, value := range r.Header {
		received.Headers[key] = value[0]
	}
	for key, value := range r.URL.Query() {
		received.Queries[key] = value[0]
	}

	a.mu.Lock()
	exact := a.routeFor(r.Method + r.URL.Path)
	index := len(exact.received)
	exact.received = append(exact.received, received)
	canned := a.responseFor(r.Method, r.URL.Path, index)
	a.mu.Unlock()

	switch body := canned.body.(type) {
	case string:
		w.Header().Set("Content-Type", contentTypeFor(body))
		w.WriteHeader(canned.status)
		_, _ = w.Write([]byte(body))
	default:
		payload, _ := json.Marshal(body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(canned.status)
		_, _ = w.Write(payload)
	}
}

// SetResponse registers the response for the index-th call to method and path.
// Index -1 sets the response used when no indexed one exists.
func (a *ApiMock) SetResponse(index int, method, path string, status int, response any) {
	a.mu.Lock()
	defer a.mu.Unlock()

	rt := a.routeFor(method + path)
	canned := cannedResponse{status: status, body: response}
	if index == -1 {
		rt.fallback = &canned
		return
	}
	rt.responses[index] = canned
}

// Requests returns the requests received for method and path in arrival order.
func (a *ApiMock) Requests(method, path string) []ReceivedRequest {
	a.mu.Lock()
	defer a.mu.Unlock()

	rt, ok := a.routes[method+path]
	if !ok {
		return nil
	}
	return append([]ReceivedRequest(nil), rt.received...)
}

func (a *ApiMock) RequestCount(method, path string) int {
	return len(a.Requests(method, path))
}

func (a *ApiMock) GetRequestBody(method, path string, index int) map[string]any {
	requests := a.Requests(method, path)
	if index < 0 || index >= len(requests) {
		return nil
	}
	return requests[index].Body
}

func (a *ApiMock) GetRequestHeaders(method, path string, index int) map[string]string {
	requests := a.Requests(method, path)
	if index < 0 || index >= len(requests) {
		return nil
	}
	return requests[index].Headers
}

// Reset drops every canned response and captured request.
func (a *ApiMock) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.routes = map[string]*route{}
}

func (a *ApiMock) routeFor(key string) *route {
	rt, ok := a.routes[key]
	if !ok {
		rt = &route{responses: map[int]cannedResponse{}}
		a.routes[key] = rt
	}
	return rt
}

func (a *ApiMock) responseFor(method, path string, index int) cannedResponse {
	for _, strict := range []bool{true, false} {
		for key, rt := range a.routes {
			if !a.matches(key, method, path, strict) {
				continue
			}
			if canned, ok := rt.responses[index]; ok {
				return canned
			}
			if rt.fallback != nil {
				return *rt.fallback
			}
		}
	}
	return cannedResponse{status: http.StatusOK, body: map[string]any{}}
}

func (a *ApiMock) matches(key, method, path string, strict bool) bool {
	if strict {
		return key == method+path
	}
	if !strings.HasPrefix(key, method) {
		return false
	}
	return matchPath(strings.TrimPrefix(key, method), path)
}

func matchPath(pattern, path string) bool {
	patternParts := strings.Split(pattern, "/")
	pathParts := strings.Split(path, "/")
	if len(patternParts) != len(pathParts) {
		return false
	}
	for i := range patternParts {
		if patternParts[i] != "*" && patternParts[i] != pathParts[i] {
			return false
		}
	}
	return true
}

func contentTypeFor(body string) string {
	trimmed := strings.TrimSpace(body)
	switch {
	case strings.HasPrefix(trimmed, "<"):
		return "application/xml"
	case strings.HasPrefix(trimmed, "{"), strings.HasPrefix(trimmed, "["):
		return "application/json"
	default:
		return "text/plain; charset=utf-8"
	}
}
