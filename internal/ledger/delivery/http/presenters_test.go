package http

import (
	"encoding/json"
	"regexp"
	"testing"
	"time"

	"finbook/internal/model"
)

func TestRecordRespDateWireFormat(t *testing.T) {
	rec := model.Record{
		ID:        "rec-1",
		AccountID: "acc-1",
		Type:      model.TaskTypeExpense,
		Amount:    12.5,
		Date:      time.Date(2026, 3, 10, 18, 30, 0, 0, time.UTC),
	}

	b, err := json.Marshal(newRecordResp(rec))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	if !regexp.MustCompile(`"date":"\d{4}-\d{2}-\d{2}"`).Match(b) {
		t.Errorf("record date not in date format: %s", b)
	}
}
