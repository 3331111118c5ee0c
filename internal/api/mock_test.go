package api

import (
	"io"

	fhttp "github.com/bogdanfinn/fhttp"
)

// MockResponseBody is a ReadCloser that simulates reading response data
type MockResponseBody struct {
	data []byte
	pos  int
}

// NewMockResponseBody creates a new MockResponseBody with the given data
func NewMockResponseBody(data []byte) *MockResponseBody {
	return &MockResponseBody{data: data, pos: 0}
}

// Read implements the io.Reader interface
func (m *MockResponseBody) Read(p []byte) (n int, err error) {
	if m.pos >= len(m.data) {
		return 0, io.EOF
	}
	n = copy(p, m.data[m.pos:])
	m.pos += n
	return n, nil
}

// Close implements the io.Closer interface
func (m *MockResponseBody) Close() error {
	return nil
}

// mockHTTPClient records the last request and replays a canned response
type mockHTTPClient struct {
	status  int
	body    string
	err     error
	lastReq *fhttp.Request
	reqBody []byte
	calls   int
}

func (m *mockHTTPClient) Do(req *fhttp.Request) (*fhttp.Response, error) {
	m.calls++
	m.lastReq = req
	if req.Body != nil {
		m.reqBody, _ = io.ReadAll(req.Body)
	}
	if m.err != nil {
		return nil, m.err
	}
	status := m.status
	if status == 0 {
		status = 200
	}
	return &fhttp.Response{
		StatusCode: status,
		Header:     make(fhttp.Header),
		Body:       NewMockResponseBody([]byte(m.body)),
	}, nil
}
