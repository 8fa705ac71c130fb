package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/vpstudios/backlot/internal/domain/submission"
)

// apiClient is a thin HTTP client over the server's admin API. Flag values are
// referenced by pointer so cobra can bind them before the first request.
type apiClient struct {
	base  *string
	token *string
	http  http.Client
}

func (c *apiClient) do(method, path string, query url.Values, body any) (*http.Response, error) {
	u := strings.TrimRight(*c.base, "/") + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, u, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if *c.token != "" {
		req.Header.Set("Authorization", "Bearer "+*c.token)
	}

	c.http.Timeout = 30 * time.Second
	return c.http.Do(req)
}

func (c *apiClient) getJSON(path string, query url.Values, out any) error {
	resp, err := c.do(http.MethodGet, path, query, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return apiError(resp)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *apiClient) listSubmissions(status, pkg, date string) ([]submission.Submission, error) {
	query := url.Values{}
	if status != "" {
		query.Set("status", status)
	}
	if pkg != "" {
		query.Set("package", pkg)
	}
	if date != "" {
		query.Set("date", date)
	}

	var subs []submission.Submission
	if err := c.getJSON("/api/submissions", query, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}

func (c *apiClient) getSubmission(id string) (*submission.Submission, error) {
	var sub submission.Submission
	if err := c.getJSON("/api/submissions/"+url.PathEscape(id), nil, &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

func (c *apiClient) setStatus(id, status string) (*submission.Submission, error) {
	resp, err := c.do(http.MethodPatch, "/api/submissions/"+url.PathEscape(id)+"/status", nil,
		map[string]string{"status": status})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var sub submission.Submission
	if err := json.NewDecoder(resp.Body).Decode(&sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

func (c *apiClient) exportCSV(status, pkg, date string) (string, error) {
	query := url.Values{}
	if status != "" {
		query.Set("status", status)
	}
	if pkg != "" {
		query.Set("package", pkg)
	}
	if date != "" {
		query.Set("date", date)
	}

	resp, err := c.do(http.MethodGet, "/api/submissions/export/csv", query, nil)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", apiError(resp)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func apiError(resp *http.Response) error {
	var body struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Message != "" {
		return fmt.Errorf("server returned %d: %s", resp.StatusCode, body.Message)
	}
	return fmt.Errorf("server returned %d", resp.StatusCode)
}
