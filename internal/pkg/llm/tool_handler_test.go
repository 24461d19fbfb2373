package llm

import (
	"Instalens/internal/api/dto"
	"context"
	"strings"
	"testing"
	"time"
)

func TestFetchEngagementData_SerializesRows(t *testing.T) {
	query := &fakeQueryService{
		rows: []*dto.PostRowDTO{
			{
				InstagramID:    "ig-1",
				Caption:        "sunset",
				Likes:          10,
				Comments:       5,
				MediaType:      "IMAGE",
				Timestamp:      time.Date(2025, 8, 12, 9, 30, 0, 0, time.UTC),
				Engagement:     20,
				TotalFollowers: 1500,
			},
		},
	}
	h := NewToolHandler(query)

	content, err := h.FetchEngagementData(context.Background(), "{}")
	if err != nil {
		t.Fatalf("FetchEngagementData: %v", err)
	}

	for _, field := range []string{`"instagram_id":"ig-1"`, `"engagement":20`, `"total_followers":1500`} {
		if !strings.Contains(content, field) {
			t.Errorf("serialized content missing %s: %s", field, content)
		}
	}
}

func TestFetchEngagementData_EmptyStore(t *testing.T) {
	h := NewToolHandler(&fakeQueryService{rows: []*dto.PostRowDTO{}})

	content, err := h.FetchEngagementData(context.Background(), "{}")
	if err != nil {
		t.Fatalf("FetchEngagementData: %v", err)
	}
	if content != NoEngagementData {
		t.Errorf("expected %q, got %q", NoEngagementData, content)
	}
}

func TestGetHandleFunction_UnknownTool(t *testing.T) {
	h := NewToolHandler(&fakeQueryService{})

	if h.GetHandleFunction("web_search") != nil {
		t.Error("expected nil handler for undeclared tool")
	}
	if h.GetHandleFunction(FetchEngagementToolName) == nil {
		t.Error("expected handler for declared tool")
	}
}
