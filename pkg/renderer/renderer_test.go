package renderer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dinesync/pos-api/internal/domain/entity"
	"github.com/dinesync/pos-api/pkg/money"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBill() *entity.Bill {
	return &entity.Bill{
		ID:         uuid.New(),
		OrderID:    uuid.New(),
		SubTotal:   money.MustFromString("100"),
		GrandTotal: money.MustFromString("107.35"),
	}
}

func TestGenerateDocument(t *testing.T) {
	bill := testBill()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/render/bill", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var got entity.Bill
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, bill.ID, got.ID)

		json.NewEncoder(w).Encode(map[string]string{
			"document_url": "https://docs.example.com/bills/" + got.ID.String() + ".pdf",
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 2*time.Second, 100)
	url, err := c.GenerateDocument(context.Background(), bill)

	require.NoError(t, err)
	assert.Equal(t, "https://docs.example.com/bills/"+bill.ID.String()+".pdf", url)
}

func TestGenerateDocumentNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 2*time.Second, 100)
	_, err := c.GenerateDocument(context.Background(), testBill())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 502")
}

func TestGenerateDocumentEmptyURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 2*time.Second, 100)
	_, err := c.GenerateDocument(context.Background(), testBill())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty document url")
}

func TestGenerateDocumentHonorsContextWhileThrottled(t *testing.T) {
	// A limiter with no burst capacity left must give up when the context
	// expires instead of blocking the caller.
	c := NewClient("http://unreachable.invalid", time.Second, 0.001)
	require.NoError(t, c.limiter.Wait(context.Background())) // consume the burst

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := c.GenerateDocument(ctx, testBill())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limit")
}

func TestNullRenderer(t *testing.T) {
	bill := testBill()
	url, err := NullRenderer{}.GenerateDocument(context.Background(), bill)

	require.NoError(t, err)
	assert.Equal(t, "memory://bills/"+bill.ID.String()+".pdf", url)
}
