package bitrix24

import (
	"context"
	"net/http"
	"testing"
)

func TestAddLeadForcesAssignee(t *testing.T) {
	var gotFields map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		payload := decodeBody(t, r)
		gotFields, _ = payload["fields"].(map[string]any)
		writeResult(w, "42")
	})

	fields := Fields{"TITLE": "x", "NAME": "y", "ASSIGNED_BY_ID": "999"}
	id, err := c.AddLead(context.Background(), fields, nil)
	if err != nil {
		t.Fatalf("AddLead: %v", err)
	}
	if id != 42 {
		t.Fatalf("expected id 42, got %d", id)
	}
	if got := gotFields["ASSIGNED_BY_ID"]; got != testUserID {
		t.Fatalf("expected ASSIGNED_BY_ID %q, got %v", testUserID, got)
	}
	if gotFields["TITLE"] != "x" || gotFields["NAME"] != "y" {
		t.Fatalf("caller fields not forwarded: %v", gotFields)
	}
	// The caller's map must stay untouched.
	if fields["ASSIGNED_BY_ID"] != "999" {
		t.Fatalf("caller map was mutated: %v", fields)
	}
}

func TestAddLeadSendsParams(t *testing.T) {
	var gotParams map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		payload := decodeBody(t, r)
		gotParams, _ = payload["params"].(map[string]any)
		writeResult(w, "7")
	})

	_, err := c.AddLead(context.Background(), Fields{"TITLE": "x"}, Fields{"REGISTER_SONET_EVENT": "Y"})
	if err != nil {
		t.Fatalf("AddLead: %v", err)
	}
	if gotParams["REGISTER_SONET_EVENT"] != "Y" {
		t.Fatalf("params not forwarded: %v", gotParams)
	}
}

func TestSetLeadProductRows(t *testing.T) {
	var gotPayload map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPayload = decodeBody(t, r)
		writeResult(w, "true")
	})

	rows := []Fields{
		{"PRODUCT_ID": 5, "PRICE": 100.0, "QUANTITY": 2},
		{"PRODUCT_ID": 6, "PRICE": 50.0, "QUANTITY": 1},
	}
	ok, err := c.SetLeadProductRows(context.Background(), 42, rows)
	if err != nil {
		t.Fatalf("SetLeadProductRows: %v", err)
	}
	if !ok {
		t.Fatalf("expected success flag")
	}
	if got, _ := gotPayload["id"].(float64); got != 42 {
		t.Fatalf("expected id 42, got %v", gotPayload["id"])
	}
	sent, _ := gotPayload["rows"].([]any)
	if len(sent) != 2 {
		t.Fatalf("expected 2 rows, got %v", gotPayload["rows"])
	}
	first, _ := sent[0].(map[string]any)
	if first["PRODUCT_ID"] != float64(5) {
		t.Fatalf("row order not preserved: %v", sent)
	}
}
