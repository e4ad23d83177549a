// Package jira provides functionality for interacting with the Jira API.
package jira

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	jira "github.com/andygrunwald/go-jira"

	"github.com/jiraffe/jiraffe/internal/config"
	"github.com/jiraffe/jiraffe/internal/logging"
	"github.com/jiraffe/jiraffe/pkg/models"
)

// ErrBadRequest marks a fetch failure the server classified as a malformed
// request (HTTP 400), typically a broken JQL string. Callers treat it as an
// expected condition and skip diagnostics logging.
var ErrBadRequest = errors.New("bad request")

// searchPageSize bounds one JQL search response.
const searchPageSize = 1000

// Client encapsulates the Jira API client.
type Client struct {
	client *jira.Client
}

// ServerInfo describes the Jira server, used to verify the configured base
// URL is reachable.
type ServerInfo struct {
	BaseURL     string `json:"baseUrl"`
	Version     string `json:"version"`
	ServerTitle string `json:"serverTitle"`
}

// NewClient creates a new Jira API client using configuration from
// environment variables. It validates the credentials are present but does
// not contact the server; the first API call surfaces connectivity problems.
func NewClient() (*Client, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := config.ValidateJiraConfig(cfg); err != nil {
		return nil, err
	}

	logging.Debug("jira configuration",
		"url", cfg.Jira.URL,
		"username", cfg.Jira.Username,
		"token", logging.MaskSensitive(cfg.Jira.Token))

	tp := jira.BasicAuthTransport{
		Username: cfg.Jira.Username,
		Password: cfg.Jira.Token,
	}

	client, err := jira.NewClient(tp.Client(), cfg.Jira.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to create jira client: %w", err)
	}

	return &Client{client: client}, nil
}

// SearchIssues runs a JQL query and returns the matching issues normalized
// into the application model. When timeField is non-empty, the named custom
// field is requested and parsed into Issue.Time; otherwise Time stays zero.
// A 400 response wraps ErrBadRequest.
func (c *Client) SearchIssues(ctx context.Context, jql, timeField string) ([]models.Issue, error) {
	fields := []string{"key", "summary", "status", "assignee", "reporter"}
	if timeField != "" {
		fields = append(fields, timeField)
	}

	opts := &jira.SearchOptions{
		Fields:     fields,
		MaxResults: searchPageSize,
	}

	raw, resp, err := c.client.Issue.SearchWithContext(ctx, jql, opts)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusBadRequest {
			return nil, fmt.Errorf("jql search rejected: %w", ErrBadRequest)
		}
		return nil, fmt.Errorf("failed to search jira issues: %v", err)
	}

	issues := make([]models.Issue, 0, len(raw))
	for _, r := range raw {
		issues = append(issues, normalizeIssue(r, timeField))
	}
	return issues, nil
}

// normalizeIssue converts a raw Jira issue into the application model.
// Missing optional fields default to the empty string or zero time.
func normalizeIssue(raw jira.Issue, timeField string) models.Issue {
	issue := models.Issue{Key: raw.Key}

	if raw.Fields == nil {
		return issue
	}

	issue.Summary = raw.Fields.Summary
	if raw.Fields.Status != nil {
		issue.Status = raw.Fields.Status.Name
	}
	if raw.Fields.Assignee != nil {
		issue.Assignee = raw.Fields.Assignee.Name
	}
	if raw.Fields.Reporter != nil {
		issue.Reporter = raw.Fields.Reporter.DisplayName
	}

	if timeField != "" {
		if value, ok := raw.Fields.Unknowns[timeField].(string); ok {
			millis, err := models.ParseJiraTime(value)
			if err != nil {
				logging.Warn("unparseable time field",
					"issue", raw.Key,
					"field", timeField,
					"value", value)
			}
			issue.Time = millis
		}
	}

	return issue
}

// UpdateSchedule rewrites an issue's scheduled time and, when assignee is
// non-empty, the assignee. A zero timeMillis clears the time field.
func (c *Client) UpdateSchedule(ctx context.Context, key, assignee, timeField string, timeMillis int64) error {
	fields := make(map[string]interface{})

	if timeMillis > 0 {
		fields[timeField] = models.FormatJiraTime(timeMillis, time.Local)
	} else {
		fields[timeField] = nil
	}
	if assignee != "" {
		fields["assignee"] = map[string]interface{}{"name": assignee}
	}

	payload := map[string]interface{}{"fields": fields}

	resp, err := c.client.Issue.UpdateIssueWithContext(ctx, key, payload)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusBadRequest {
			return fmt.Errorf("issue update rejected: %w", ErrBadRequest)
		}
		return fmt.Errorf("failed to update issue %s: %v", key, err)
	}
	return nil
}

// GetServerInfo fetches the Jira server description.
func (c *Client) GetServerInfo(ctx context.Context) (*ServerInfo, error) {
	req, err := c.client.NewRequestWithContext(ctx, "GET", "rest/api/2/serverInfo", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build server info request: %w", err)
	}

	info := new(ServerInfo)
	if _, err := c.client.Do(req, info); err != nil {
		return nil, fmt.Errorf("failed to fetch server info: %v", err)
	}
	return info, nil
}

// GetCurrentUser fetches the authenticated user.
func (c *Client) GetCurrentUser(ctx context.Context) (models.User, error) {
	u, _, err := c.client.User.GetSelfWithContext(ctx)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to fetch current user: %v", err)
	}
	return models.User{Login: u.Name, Name: u.DisplayName}, nil
}
