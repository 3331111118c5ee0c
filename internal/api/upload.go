package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	apierrors "github.com/diogo/askweb/internal/errors"
	"github.com/diogo/askweb/internal/models"
)

// SummarizePDF uploads a document to the summarization endpoint.
// No size or type validation happens here; the service decides.
func (c *ChatClient) SummarizePDF(ctx context.Context, fileName string, r io.Reader) (*models.SummaryResponse, error) {
	if r == nil {
		return nil, apierrors.ErrNoFile
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile(models.PDFFieldName, fileName)
	if err != nil {
		return nil, fmt.Errorf("failed to create form file: %w", err)
	}

	if _, err := io.Copy(part, r); err != nil {
		return nil, fmt.Errorf("failed to write file data: %w", err)
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finish multipart body: %w", err)
	}

	req, err := c.newRequest(ctx, models.EndpointPDF, writer.FormDataContentType(), &body)
	if err != nil {
		return nil, err
	}

	status, respBody, err := c.do(req, models.EndpointPDF)
	if err != nil {
		return nil, err
	}

	summary, err := extractField(respBody, PathSummary, models.EndpointPDF, status)
	if err != nil {
		return nil, err
	}

	return &models.SummaryResponse{Summary: summary, StatusCode: status}, nil
}

// SummarizePDFFile opens filePath and uploads it through client under its base name
func SummarizePDFFile(ctx context.Context, client ChatClientInterface, filePath string) (*models.SummaryResponse, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return client.SummarizePDF(ctx, filepath.Base(filePath), file)
}
