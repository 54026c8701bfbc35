package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHTMX_RequestDetection(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/view/dashboard", nil)
	r.Header.Set("Hx-Request", "true")
	if !IsHTMX(r) {
		t.Fatal("expected IsHTMX true")
	}

	r2 := httptest.NewRequest(http.MethodGet, "/view/dashboard", nil)
	if IsHTMX(r2) || IsHistoryRestore(r2) {
		t.Fatal("expected defaults to false")
	}
}

func TestHTMX_HistoryRestore_WantsFullPage(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/view/budget", nil)
	r.Header.Set("Hx-Request", "true")
	if !WantsPartial(r) {
		t.Fatal("htmx request should want partial")
	}
	r.Header.Set("Hx-History-Restore-Request", "true")
	if WantsPartial(r) {
		t.Fatal("history restore must render the full page")
	}
}

func TestHTMX_ResponseHeaders_Setters(t *testing.T) {
	rr := httptest.NewRecorder()
	SetHXRedirect(rr, "/login")
	SetHXPushURL(rr, "/view/add-income")
	SetHXRetarget(rr, "#view-content")
	SetHXReswap(rr, "innerHTML")
	SetHXTrigger(rr, "expensesChanged", nil)
	res := rr.Result()
	t.Cleanup(func() { _ = res.Body.Close() })
	if got := res.Header.Get("Hx-Redirect"); got != "/login" {
		t.Fatalf("HX-Redirect: %q", got)
	}
	if got := res.Header.Get("Hx-Push-Url"); got != "/view/add-income" {
		t.Fatalf("HX-Push-Url: %q", got)
	}
	if got := res.Header.Get("Hx-Retarget"); got != "#view-content" {
		t.Fatalf("HX-Retarget: %q", got)
	}
	if got := res.Header.Get("Hx-Reswap"); got != "innerHTML" {
		t.Fatalf("HX-Reswap: %q", got)
	}
	var payload map[string]any
	if err := json.Unmarshal([]byte(res.Header.Get("Hx-Trigger")), &payload); err != nil {
		t.Fatalf("unmarshal trigger: %v", err)
	}
	if payload["expensesChanged"] != true {
		t.Fatalf("expected expensesChanged=true in HX-Trigger: %v", payload)
	}
}

func TestSetHXTriggers_EmptyLeavesHeaderUnset(t *testing.T) {
	rr := httptest.NewRecorder()
	SetHXTriggers(rr, nil)
	if got := rr.Header().Get("Hx-Trigger"); got != "" {
		t.Fatalf("expected no HX-Trigger, got %q", got)
	}
}

func TestSetHXTriggers_UnencodablePayloadFallsBackToTrue(t *testing.T) {
	rr := httptest.NewRecorder()
	SetHXTriggers(rr, map[string]any{"broken": make(chan int)})
	if got := rr.Header().Get("Hx-Trigger"); got != `{"broken":true}` {
		t.Fatalf("HX-Trigger: %q", got)
	}
}
