package referral

import (
	"context"
	"log"
	"net/http"
	"sync"
	"time"

	"storefront/internal/domain"
)

// Dispatcher is the one-shot side-effecting half of the referral
// integration: it fires the post-purchase tag for an order and tears it
// down when the confirmation view is dismissed. Payload construction
// stays in BuildPayload so it remains pure and testable on its own.
type Dispatcher interface {
	Fire(ctx context.Context, order domain.Order) error
	Teardown(orderNumber string)
	Close()
}

// TagDispatcher issues a fire-and-forget GET to the external tag
// endpoint with the payload serialized as query parameters.
type TagDispatcher struct {
	baseURL    string
	httpClient *http.Client

	mu     sync.Mutex
	active map[string]context.CancelFunc
}

func NewTagDispatcher(baseURL string, timeout time.Duration) *TagDispatcher {
	return &TagDispatcher{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		active:     map[string]context.CancelFunc{},
	}
}

// Fire builds the payload and requests the tag asynchronously. At most
// one shot is kept per order number; firing again for the same order
// replaces the previous one.
func (d *TagDispatcher) Fire(ctx context.Context, order domain.Order) error {
	payload, err := BuildPayload(order)
	if err != nil {
		return err
	}

	tagURL := d.baseURL + "?" + payload.Encode()

	shotCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	d.mu.Lock()
	if prev, ok := d.active[order.OrderNumber]; ok {
		prev()
	}
	d.active[order.OrderNumber] = cancel
	d.mu.Unlock()

	go func() {
		req, err := http.NewRequestWithContext(shotCtx, http.MethodGet, tagURL, nil)
		if err != nil {
			log.Printf("referral tag request for %s: %v", order.OrderNumber, err)
			return
		}
		resp, err := d.httpClient.Do(req)
		if err != nil {
			log.Printf("referral tag fire for %s: %v", order.OrderNumber, err)
			return
		}
		resp.Body.Close()
	}()

	return nil
}

// Teardown cancels and forgets the shot recorded for the order, if any.
func (d *TagDispatcher) Teardown(orderNumber string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if cancel, ok := d.active[orderNumber]; ok {
		cancel()
		delete(d.active, orderNumber)
	}
}

// Close tears down every outstanding shot.
func (d *TagDispatcher) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	for orderNumber, cancel := range d.active {
		cancel()
		delete(d.active, orderNumber)
	}
}

var _ Dispatcher = (*TagDispatcher)(nil)
