// Package departments calls the external department service to confirm that
// a referenced department id exists.
package departments

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/employee-management-api/internal/apperrors"
	"github.com/oksasatya/employee-management-api/internal/domain/service"
)

// Client checks department existence over HTTP. "Not found" and "service
// unavailable" are reported as different error kinds so callers can tell
// them apart.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *logrus.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *logrus.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

func (c *Client) ValidateDepartmentExists(ctx context.Context, departmentID string) error {
	endpoint := fmt.Sprintf("%s/api/department/exists/%s", c.baseURL, url.PathEscape(departmentID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return apperrors.NewDependencyError("departments", err)
	}

	res, err := c.http.Do(req)
	if err != nil {
		c.logger.WithError(err).WithField("department_id", departmentID).Warn("department service unreachable")
		return apperrors.NewDependencyError("departments", err)
	}
	defer func() { _ = res.Body.Close() }()

	switch {
	case res.StatusCode >= 200 && res.StatusCode < 300:
		return nil
	case res.StatusCode == http.StatusNotFound:
		return service.ErrDepartmentNotFound
	default:
		return apperrors.NewDependencyError("departments",
			fmt.Errorf("unexpected status %d from %s", res.StatusCode, endpoint))
	}
}

var _ service.DepartmentChecker = (*Client)(nil)
