package bitrix24

import (
	"context"
	"errors"
	"net/http"
	"testing"
)

func TestFindProductByName(t *testing.T) {
	var gotFilter map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		payload := decodeBody(t, r)
		gotFilter, _ = payload["filter"].(map[string]any)
		// List endpoints quote ids.
		writeResult(w, `[{"ID":"77","NAME":"Widget"},{"ID":"78","NAME":"Widget"}]`)
	})

	id, err := c.FindProductByName(context.Background(), "Widget")
	if err != nil {
		t.Fatalf("FindProductByName: %v", err)
	}
	if id != 77 {
		t.Fatalf("expected first match 77, got %d", id)
	}
	if gotFilter["NAME"] != "Widget" {
		t.Fatalf("expected exact NAME filter, got %v", gotFilter)
	}
}

func TestFindProductByNameNotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		writeResult(w, "[]")
	})

	_, err := c.FindProductByName(context.Background(), "Widget")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAddProduct(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		payload := decodeBody(t, r)
		fields, _ := payload["fields"].(map[string]any)
		if fields["NAME"] != "Widget" {
			t.Errorf("fields not forwarded: %v", fields)
		}
		writeResult(w, "501")
	})

	id, err := c.AddProduct(context.Background(), Fields{"NAME": "Widget", "PRICE": 99.9})
	if err != nil {
		t.Fatalf("AddProduct: %v", err)
	}
	if id != 501 {
		t.Fatalf("expected id 501, got %d", id)
	}
}
