package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// recordingServer captures the last request for assertions and replies
// with the given status and body.
func recordingServer(
	t *testing.T,
	status int,
	respBody string,
) (*Client, *http.Request, *[]byte) {
	t.Helper()
	var lastReq http.Request
	var lastBody []byte
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			lastReq = *r
			lastBody, _ = io.ReadAll(r.Body)
			w.WriteHeader(status)
			io.WriteString(w, respBody)
		},
	))
	t.Cleanup(srv.Close)
	return NewClient(srv.URL), &lastReq, &lastBody
}

func TestCreateActivitySendsUTCDeadline(t *testing.T) {
	c, req, body := recordingServer(t, http.StatusOK, `{"id":1}`)

	// A local wall-clock deadline, entered in a fixed zone.
	zone := time.FixedZone("UTC+3", 3*60*60)
	local := time.Date(2025, 1, 1, 9, 0, 0, 0, zone)

	_, err := c.CreateActivity(context.Background(), ActivityCreate{
		Title:               "Pay rent",
		Deadline:            local.UTC(),
		Priority:            "high",
		Category:            "finance",
		NotificationMinutes: 30,
	})
	if err != nil {
		t.Fatal(err)
	}

	if req.Method != http.MethodPost || req.URL.Path != "/activities" {
		t.Fatalf("got %s %s, want POST /activities", req.Method, req.URL.Path)
	}

	var sent map[string]interface{}
	if err := json.Unmarshal(*body, &sent); err != nil {
		t.Fatal(err)
	}
	if sent["title"] != "Pay rent" {
		t.Errorf("title = %v", sent["title"])
	}
	if sent["priority"] != "high" {
		t.Errorf("priority = %v", sent["priority"])
	}

	// 09:00 at UTC+3 is 06:00Z; the wire carries the UTC instant.
	deadline, err := time.Parse(time.RFC3339, sent["deadline"].(string))
	if err != nil {
		t.Fatalf("deadline not RFC3339: %v", sent["deadline"])
	}
	want := time.Date(2025, 1, 1, 6, 0, 0, 0, time.UTC)
	if !deadline.Equal(want) {
		t.Errorf("deadline = %v, want %v", deadline, want)
	}
}

func TestDeadlineRoundTripPreservesWallClock(t *testing.T) {
	zone := time.FixedZone("UTC-5", -5*60*60)
	local := time.Date(2025, 6, 15, 18, 30, 0, 0, zone)

	// Send as UTC, re-parse off the wire, view in the original zone.
	wire, _ := json.Marshal(local.UTC())
	var parsed time.Time
	if err := json.Unmarshal(wire, &parsed); err != nil {
		t.Fatal(err)
	}

	back := parsed.In(zone)
	if back.Hour() != 18 || back.Minute() != 30 {
		t.Errorf("round-trip wall clock = %02d:%02d, want 18:30",
			back.Hour(), back.Minute())
	}
}

func TestSnoozeSendsMinutesQueryParam(t *testing.T) {
	c, req, _ := recordingServer(t, http.StatusOK, `{}`)

	if err := c.SnoozeActivity(context.Background(), 7, 45); err != nil {
		t.Fatal(err)
	}
	if req.URL.Path != "/activities/7/snooze" {
		t.Errorf("path = %s", req.URL.Path)
	}
	if got := req.URL.Query().Get("minutes"); got != "45" {
		t.Errorf("minutes = %q, want 45", got)
	}
}

func TestListActivitiesEncodesQuery(t *testing.T) {
	c, req, _ := recordingServer(t, http.StatusOK, `[]`)

	_, err := c.ListActivities(context.Background(), ActivityQuery{
		Status: "pending",
		Page:   2,
	})
	if err != nil {
		t.Fatal(err)
	}

	q := req.URL.Query()
	if q.Get("status") != "pending" || q.Get("page") != "2" {
		t.Errorf("query = %v", q)
	}
	if q.Has("search") {
		t.Error("empty search must be omitted")
	}
}

func TestBatchCompleteSendsBareIDArray(t *testing.T) {
	c, req, body := recordingServer(t, http.StatusOK, `{"message":"2 completed"}`)

	result, err := c.BatchComplete(context.Background(), []int64{3, 9})
	if err != nil {
		t.Fatal(err)
	}
	if req.URL.Path != "/activities/batch/complete" {
		t.Errorf("path = %s", req.URL.Path)
	}

	var ids []int64
	if err := json.Unmarshal(*body, &ids); err != nil {
		t.Fatalf("body is not a bare id array: %s", *body)
	}
	if len(ids) != 2 || ids[0] != 3 || ids[1] != 9 {
		t.Errorf("ids = %v", ids)
	}
	if result.Message != "2 completed" {
		t.Errorf("message = %q", result.Message)
	}
}

func TestBatchUpdateCategoryBody(t *testing.T) {
	c, _, body := recordingServer(t, http.StatusOK, `{"message":"ok"}`)

	_, err := c.BatchUpdateCategory(context.Background(), []int64{5}, "work")
	if err != nil {
		t.Fatal(err)
	}

	var sent struct {
		ActivityIDs []int64 `json:"activity_ids"`
		Category    string  `json:"category"`
	}
	if err := json.Unmarshal(*body, &sent); err != nil {
		t.Fatal(err)
	}
	if len(sent.ActivityIDs) != 1 || sent.ActivityIDs[0] != 5 {
		t.Errorf("activity_ids = %v", sent.ActivityIDs)
	}
	if sent.Category != "work" {
		t.Errorf("category = %q", sent.Category)
	}
}
