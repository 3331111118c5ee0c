package api

import (
	"context"
	"io"
	"sync"

	"github.com/diogo/askweb/internal/models"
)

// MockChatClient is a mock implementation of ChatClientInterface for testing
type MockChatClient struct {
	// Mock return values
	AskVal     *models.AskResponse
	AskErr     error
	SummaryVal *models.SummaryResponse
	SummaryErr error

	// Call recorders
	mu           sync.Mutex
	AskCalls     int
	LastQuestion string
	PDFCalls     int
	LastFileName string
	LastFileData []byte
	CloseCalled  bool
}

// Ensure MockChatClient implements ChatClientInterface
var _ ChatClientInterface = (*MockChatClient)(nil)

// Ensure ChatClient implements ChatClientInterface
var _ ChatClientInterface = (*ChatClient)(nil)

func (m *MockChatClient) Ask(ctx context.Context, question string) (*models.AskResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AskCalls++
	m.LastQuestion = question
	return m.AskVal, m.AskErr
}

func (m *MockChatClient) SummarizePDF(ctx context.Context, fileName string, r io.Reader) (*models.SummaryResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PDFCalls++
	m.LastFileName = fileName
	if r != nil {
		m.LastFileData, _ = io.ReadAll(r)
	}
	return m.SummaryVal, m.SummaryErr
}

func (m *MockChatClient) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CloseCalled = true
}
