package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/a-h/jsonapi"
	"github.com/a-h/meetingsummarizer/models"
)

// DefaultBaseURL is the address of a locally running summarizer server.
const DefaultBaseURL = "http://localhost:8000"

func New(baseURL, apiKey string) Client {
	return Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
	}
}

type Client struct {
	baseURL string
	apiKey  string
}

// UploadFile reads the file at path and uploads it under its base name.
func (c Client) UploadFile(ctx context.Context, path string) (resp models.Summary, err error) {
	f, err := os.Open(path)
	if err != nil {
		return resp, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()
	return c.Upload(ctx, filepath.Base(path), f)
}

// Upload sends the file as the "file" field of a multipart form.
func (c Client) Upload(ctx context.Context, filename string, r io.Reader) (resp models.Summary, err error) {
	url, err := jsonapi.URL(c.baseURL).Path("upload").String()
	if err != nil {
		return resp, err
	}
	body := new(bytes.Buffer)
	mw := multipart.NewWriter(body)
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return resp, fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err = io.Copy(fw, r); err != nil {
		return resp, fmt.Errorf("failed to write form file: %w", err)
	}
	if err = mw.Close(); err != nil {
		return resp, fmt.Errorf("failed to close multipart writer: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return resp, fmt.Errorf("failed to create request: %w", err)
	}
	return c.do(req, jsonapi.WithContentType(mw.FormDataContentType()))
}

// Analyze asks the server to summarize a previously uploaded item.
func (c Client) Analyze(ctx context.Context, id int64) (resp models.Summary, err error) {
	url, err := jsonapi.URL(c.baseURL).Path("analyze").Query(map[string]string{
		"id": strconv.FormatInt(id, 10),
	}).String()
	if err != nil {
		return resp, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return resp, fmt.Errorf("failed to create request: %w", err)
	}
	return c.do(req)
}

// Results gets the current state of an item.
func (c Client) Results(ctx context.Context, id int64) (resp models.Summary, err error) {
	url, err := jsonapi.URL(c.baseURL).Path("results", strconv.FormatInt(id, 10)).String()
	if err != nil {
		return resp, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return resp, fmt.Errorf("failed to create request: %w", err)
	}
	return c.do(req)
}

func (c Client) do(req *http.Request, opts ...jsonapi.Opt) (resp models.Summary, err error) {
	if c.apiKey != "" {
		opts = append(opts, jsonapi.WithRequestHeader("Authorization", c.apiKey))
	}
	res, err := jsonapi.Raw(req, opts...)
	if err != nil {
		return resp, err
	}
	defer res.Body.Close()
	if res.StatusCode < 200 || res.StatusCode > 299 {
		body, _ := io.ReadAll(res.Body)
		return resp, jsonapi.InvalidStatusError{
			Status: res.StatusCode,
			Body:   string(body),
		}
	}
	if err = json.NewDecoder(res.Body).Decode(&resp); err != nil {
		return resp, fmt.Errorf("failed to decode response: %w", err)
	}
	return resp, nil
}

// Detail returns the server supplied error message carried by err, if any.
func Detail(err error) (detail string, ok bool) {
	var ise jsonapi.InvalidStatusError
	if !errors.As(err, &ise) {
		return "", false
	}
	var er models.ErrorResponse
	if json.Unmarshal([]byte(ise.Body), &er) != nil || er.Detail == "" {
		return "", false
	}
	return er.Detail, true
}
