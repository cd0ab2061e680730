package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"househunt/internal/booking"
	"househunt/internal/listing"
)

func TestListProperties(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/properties" {
			t.Errorf("path = %q, want /properties", r.URL.Path)
		}
		if r.URL.RawQuery != "" {
			t.Errorf("query = %q, want none", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode([]listing.Property{
			{ID: "p1", Creator: listing.CreatorRef{ID: "u1"}, City: "Goa", Price: 150},
		}); err != nil {
			t.Fatalf("encode: %v", err)
		}
	}))
	defer srv.Close()

	c := New(srv.URL, "")
	props, err := c.ListProperties(context.Background(), listing.CategoryAll)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(props) != 1 {
		t.Fatalf("got %d props, want 1", len(props))
	}
	if props[0].ID != "p1" || props[0].Price != 150 {
		t.Errorf("property = %+v", props[0])
	}
}

func TestListPropertiesWithCategory(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("category"); got != "Beach" {
			t.Errorf("category = %q, want Beach", got)
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode([]listing.Property{}); err != nil {
			t.Fatalf("encode: %v", err)
		}
	}))
	defer srv.Close()

	c := New(srv.URL, "")
	if _, err := c.ListProperties(context.Background(), "Beach"); err != nil {
		t.Fatalf("list: %v", err)
	}
}

func TestSearchProperties(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.EscapedPath() != "/properties/search/lake%20house" {
			t.Errorf("path = %q", r.URL.EscapedPath())
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode([]listing.Property{}); err != nil {
			t.Fatalf("encode: %v", err)
		}
	}))
	defer srv.Close()

	c := New(srv.URL, "")
	props, err := c.SearchProperties(context.Background(), "lake house")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(props) != 0 {
		t.Errorf("got %d props, want 0", len(props))
	}
}

func TestGetPropertyPopulatedCreator(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/properties/p42" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		// creator arrives populated on the detail endpoint.
		if _, err := w.Write([]byte(`{"_id":"p42","creator":{"_id":"u7","firstName":"Asha"},"city":"Pune","price":200}`)); err != nil {
			t.Fatalf("write: %v", err)
		}
	}))
	defer srv.Close()

	c := New(srv.URL, "")
	p, err := c.GetProperty(context.Background(), "p42")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p.Creator.ID != "u7" || p.Creator.FirstName != "Asha" {
		t.Errorf("creator = %+v", p.Creator)
	}
}

func TestGetPropertyBareCreator(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write([]byte(`{"_id":"p42","creator":"u7","price":200}`)); err != nil {
			t.Fatalf("write: %v", err)
		}
	}))
	defer srv.Close()

	c := New(srv.URL, "")
	p, err := c.GetProperty(context.Background(), "p42")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p.Creator.ID != "u7" {
		t.Errorf("creator id = %q, want u7", p.Creator.ID)
	}
}

func TestUserBookings(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/bookings/user" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer tok123" {
			t.Error("expected Bearer tok123")
		}
		w.Header().Set("Content-Type", "application/json")
		// listingId arrives populated on this endpoint.
		if _, err := w.Write([]byte(`[
			{"_id":"b1","listingId":{"_id":"p1","title":"Cabin"},"customerId":"u1","startDate":"2024-06-01","endDate":"2024-06-04","totalPrice":300},
			{"_id":"b2","listingId":{"_id":"p2"},"customerId":"u1","startDate":"2024-07-01","endDate":"2024-07-02","totalPrice":90}
		]`)); err != nil {
			t.Fatalf("write: %v", err)
		}
	}))
	defer srv.Close()

	c := New(srv.URL, "tok123")
	bookings, err := c.UserBookings(context.Background())
	if err != nil {
		t.Fatalf("bookings: %v", err)
	}
	if len(bookings) != 2 {
		t.Fatalf("got %d bookings, want 2", len(bookings))
	}
	if bookings[0].Listing.ID != "p1" || bookings[0].Listing.Title != "Cabin" {
		t.Errorf("listing ref = %+v", bookings[0].Listing)
	}

	matched, err := c.UserBookingsForProperty(context.Background(), "p2")
	if err != nil {
		t.Fatalf("filtered bookings: %v", err)
	}
	if len(matched) != 1 || matched[0].ID != "b2" {
		t.Errorf("matched = %+v", matched)
	}
}

func TestCreateBooking(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/bookings" {
			t.Errorf("%s %s", r.Method, r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer tok123" {
			t.Error("expected Bearer tok123")
		}
		if r.Header.Get("X-Request-Id") == "" {
			t.Error("expected X-Request-Id")
		}
		var req booking.SubmitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if req.ListingID != "p1" || req.TotalPrice != 300 {
			t.Errorf("request = %+v", req)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if _, err := w.Write([]byte(`{"_id":"b9","listingId":"p1","startDate":"2024-06-01","endDate":"2024-06-04","totalPrice":300}`)); err != nil {
			t.Fatalf("write: %v", err)
		}
	}))
	defer srv.Close()

	c := New(srv.URL, "tok123")
	created, err := c.CreateBooking(context.Background(), booking.SubmitRequest{
		ListingID:  "p1",
		StartDate:  "2024-06-01",
		EndDate:    "2024-06-04",
		TotalPrice: 300,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID != "b9" {
		t.Errorf("id = %q", created.ID)
	}
}

func TestDeleteProperty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/properties/p1" {
			t.Errorf("%s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write([]byte(`{"message":"deleted"}`)); err != nil {
			t.Fatalf("write: %v", err)
		}
	}))
	defer srv.Close()

	c := New(srv.URL, "tok123")
	if err := c.DeleteProperty(context.Background(), "p1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
}

func TestLogin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/auth/login" {
			t.Errorf("%s %s", r.Method, r.URL.Path)
		}
		var req struct{ Email, Password string }
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if req.Email != "a@b.c" {
			t.Errorf("email = %q", req.Email)
		}
		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write([]byte(`{"token":"tok123","user":{"_id":"u1","firstName":"Asha","lastName":"K"}}`)); err != nil {
			t.Fatalf("write: %v", err)
		}
	}))
	defer srv.Close()

	c := New(srv.URL, "")
	s, err := c.Login(context.Background(), "a@b.c", "secret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if s.Token != "tok123" || s.User.ID != "u1" {
		t.Errorf("session = %+v", s)
	}
}

func TestRemoteErrorMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		if err := json.NewEncoder(w).Encode(map[string]string{"error": "You already have a booking for this property"}); err != nil {
			t.Fatalf("encode: %v", err)
		}
	}))
	defer srv.Close()

	c := New(srv.URL, "tok123")
	_, err := c.CreateBooking(context.Background(), booking.SubmitRequest{ListingID: "p1"})
	if err == nil {
		t.Fatal("expected error")
	}

	var remote *RemoteError
	if !errors.As(err, &remote) {
		t.Fatalf("error = %T, want *RemoteError", err)
	}
	if remote.StatusCode != http.StatusConflict {
		t.Errorf("status = %d", remote.StatusCode)
	}
	if err.Error() != "You already have a booking for this property" {
		t.Errorf("message = %q", err.Error())
	}
}

func TestRemoteErrorWithoutBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := New(srv.URL, "badtoken")
	_, err := c.UserBookings(context.Background())

	var remote *RemoteError
	if !errors.As(err, &remote) {
		t.Fatalf("error = %T, want *RemoteError", err)
	}
	if remote.StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d", remote.StatusCode)
	}
}

func TestParseError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write([]byte(`{"not":"an array"`)); err != nil {
			t.Fatalf("write: %v", err)
		}
	}))
	defer srv.Close()

	c := New(srv.URL, "")
	_, err := c.ListProperties(context.Background(), "")
	if !errors.Is(err, ErrParse) {
		t.Errorf("error = %v, want ErrParse", err)
	}
}

func TestParseErrorOnInvalidListing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		// Listing with no id and a non-positive price.
		if _, err := w.Write([]byte(`[{"city":"Goa","price":0}]`)); err != nil {
			t.Fatalf("write: %v", err)
		}
	}))
	defer srv.Close()

	c := New(srv.URL, "")
	_, err := c.ListProperties(context.Background(), "")
	if !errors.Is(err, ErrParse) {
		t.Errorf("error = %v, want ErrParse", err)
	}
}

func TestTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	c := New(srv.URL, "")
	_, err := c.ListProperties(context.Background(), "")
	if !errors.Is(err, ErrTransport) {
		t.Errorf("error = %v, want ErrTransport", err)
	}
}
