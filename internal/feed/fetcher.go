package feed

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"resty.dev/v3"
)

// Remote is the backend collaborator the feed aggregates over: four read
// endpoints per branch and two write endpoints. Client implements it over
// HTTP; tests substitute their own.
type Remote interface {
	Notifications(ctx context.Context, branchID int64) ([]Candidate, error)
	LowStock(ctx context.Context, branchID int64) ([]Candidate, error)
	PendingRequests(ctx context.Context, branchID int64) ([]Candidate, error)
	RequestHistory(ctx context.Context, branchID int64) ([]Candidate, error)
	MarkRead(ctx context.Context, branchID int64) error
	ResolveRequest(ctx context.Context, requestID int64, actedBy string, status RequestStatus) error
}

// notificationRecord is the wire shape of a fetched notification. All fields
// are optional; absent ones default rather than failing the batch.
type notificationRecord struct {
	ID          int64  `json:"id"`
	Type        string `json:"type"`
	Title       string `json:"title"`
	Message     string `json:"message"`
	IsRead      bool   `json:"is_read"`
	CreatedAt   string `json:"created_at"`
	RequestID   *int64 `json:"request_id"`
	ReferenceID *int64 `json:"reference_id"`
	Status      string `json:"request_status"`
}

func (r notificationRecord) toCandidate() Candidate {
	c := Candidate{
		ID:      strconv.FormatInt(r.ID, 10),
		Type:    EntryType(r.Type),
		Title:   r.Title,
		Message: r.Message,
		IsRead:  r.IsRead,
	}
	if c.Type == "" {
		c.Type = TypeInfo
	}
	if r.RequestID != nil {
		c.RequestID = *r.RequestID
	}
	if r.ReferenceID != nil {
		c.ReferenceID = *r.ReferenceID
	}
	switch RequestStatus(r.Status) {
	case StatusPending, StatusApproved, StatusRejected:
		c.Status = RequestStatus(r.Status)
	}

	if t, err := time.Parse(time.RFC3339, r.CreatedAt); err == nil {
		c.CreatedAt = t
	} else {
		c.RawCreatedAt = r.CreatedAt
	}

	return c
}

// branchRequestRecord is the wire shape of a branch stock request. It projects
// into a display candidate; it is never persisted as a notification.
type branchRequestRecord struct {
	ID                int64  `json:"branch_request_id"`
	FromBranchID      int64  `json:"from_branch_id"`
	ToBranchID        int64  `json:"to_branch_id"`
	MedicineID        int64  `json:"medicine_id"`
	MedicineName      string `json:"medicine_name"`
	QuantityRequested int32  `json:"quantity_requested"`
	Status            string `json:"status"`
	CreatedAt         string `json:"created_at"`
	UpdatedAt         string `json:"updated_at"`
}

func (r branchRequestRecord) toCandidate() Candidate {
	medicine := r.MedicineName
	if medicine == "" {
		medicine = fmt.Sprintf("medicine %d", r.MedicineID)
	}

	c := Candidate{
		ID:        "request-" + strconv.FormatInt(r.ID, 10),
		Type:      TypeRequest,
		Title:     "Stock request",
		Message:   fmt.Sprintf("Branch %d requested %d units of %s [req: %d]", r.FromBranchID, r.QuantityRequested, medicine, r.ID),
		RequestID: r.ID,
	}
	switch RequestStatus(r.Status) {
	case StatusPending, StatusApproved, StatusRejected:
		c.Status = RequestStatus(r.Status)
	}

	// Resolved requests sort by their decision time, not creation time.
	raw := r.CreatedAt
	if c.Definitive() && r.UpdatedAt != "" {
		raw = r.UpdatedAt
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		c.CreatedAt = t
	} else {
		c.RawCreatedAt = raw
	}

	return c
}

type resolveResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Client fetches feed sources from the clinic backend over HTTP.
type Client struct {
	http *resty.Client
}

func NewClient(baseURL string) *Client {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10 * time.Second)

	return &Client{http: client}
}

func (c *Client) getNotifications(ctx context.Context, path string, branchID int64) ([]Candidate, error) {
	var records []notificationRecord

	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("branchID", strconv.FormatInt(branchID, 10)).
		SetResult(&records).
		Get(path)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", path, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("failed to fetch %s: status %d", path, resp.StatusCode())
	}

	candidates := make([]Candidate, 0, len(records))
	for _, record := range records {
		candidates = append(candidates, record.toCandidate())
	}
	return candidates, nil
}

func (c *Client) Notifications(ctx context.Context, branchID int64) ([]Candidate, error) {
	return c.getNotifications(ctx, "/v1/branches/{branchID}/notifications", branchID)
}

func (c *Client) LowStock(ctx context.Context, branchID int64) ([]Candidate, error) {
	return c.getNotifications(ctx, "/v1/branches/{branchID}/notifications/low-stock", branchID)
}

func (c *Client) getRequests(ctx context.Context, path string, branchID int64) ([]Candidate, error) {
	var records []branchRequestRecord

	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("branchID", strconv.FormatInt(branchID, 10)).
		SetResult(&records).
		Get(path)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", path, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("failed to fetch %s: status %d", path, resp.StatusCode())
	}

	candidates := make([]Candidate, 0, len(records))
	for _, record := range records {
		candidates = append(candidates, record.toCandidate())
	}
	return candidates, nil
}

func (c *Client) PendingRequests(ctx context.Context, branchID int64) ([]Candidate, error) {
	return c.getRequests(ctx, "/v1/branches/{branchID}/requests/pending", branchID)
}

func (c *Client) RequestHistory(ctx context.Context, branchID int64) ([]Candidate, error) {
	return c.getRequests(ctx, "/v1/branches/{branchID}/requests/history", branchID)
}

func (c *Client) MarkRead(ctx context.Context, branchID int64) error {
	var result resolveResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("branchID", strconv.FormatInt(branchID, 10)).
		SetResult(&result).
		Post("/v1/branches/{branchID}/notifications/mark-read")
	if err != nil {
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("failed to mark notifications read: status %d", resp.StatusCode())
	}
	if !result.Success {
		return fmt.Errorf("mark read rejected by server: %s", result.Message)
	}

	return nil
}

func (c *Client) ResolveRequest(ctx context.Context, requestID int64, actedBy string, status RequestStatus) error {
	action := "approve"
	if status == StatusRejected {
		action = "reject"
	}

	var result resolveResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("requestID", strconv.FormatInt(requestID, 10)).
		SetBody(map[string]string{"acted_by": actedBy}).
		SetResult(&result).
		SetError(&result).
		Patch("/v1/branch-requests/{requestID}/" + action)
	if err != nil {
		return fmt.Errorf("failed to %s request %d: %w", action, requestID, err)
	}
	if resp.IsError() || !result.Success {
		message := result.Message
		if message == "" {
			message = fmt.Sprintf("server returned status %d", resp.StatusCode())
		}
		return fmt.Errorf("failed to %s request %d: %s", action, requestID, message)
	}

	return nil
}

var _ Remote = (*Client)(nil)
