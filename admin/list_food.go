package admin

import (
	"context"
	"fmt"
	"log"
	"sync"

	"foodhub/models"
)

const (
	MsgReadFailed   = "Error while reading the foods."
	MsgFoodRemoved  = "Food removed."
	MsgRemoveFailed = "Error occurred while removing the food."
)

type FoodManager interface {
	GetFoodList(ctx context.Context) ([]models.Food, error)
	DeleteFood(ctx context.Context, id string) (bool, error)
}

type ViewState int

const (
	ViewLoading ViewState = iota
	ViewEmpty
	ViewItems
)

type DeleteState int

const (
	DeleteIdle DeleteState = iota
	DeletePending
)

// ListFoodPage holds the admin food table and the delete confirmation.
type ListFoodPage struct {
	service FoodManager
	notify  Notifier

	mu       sync.Mutex
	list     []models.Food
	inflight int
	seq      int
	closed   bool
	state    DeleteState
	target   string
}

func NewListFoodPage(service FoodManager, notify Notifier) *ListFoodPage {
	return &ListFoodPage{service: service, notify: notify, list: []models.Food{}}
}

// FetchList reloads the table. A failed fetch keeps the previous rows; a
// fetch superseded by a newer one, or finishing after Close, is ignored.
func (p *ListFoodPage) FetchList(ctx context.Context) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return context.Canceled
	}
	p.inflight++
	p.seq++
	seq := p.seq
	p.mu.Unlock()

	foods, err := p.service.GetFoodList(ctx)

	p.mu.Lock()
	p.inflight--
	if p.closed {
		p.mu.Unlock()
		return context.Canceled
	}
	if seq != p.seq {
		p.mu.Unlock()
		return nil
	}
	if err == nil {
		p.list = append([]models.Food{}, foods...)
	}
	p.mu.Unlock()

	if err != nil {
		log.Printf("get food list: %v", err)
		p.notify.Error(MsgReadFailed)
		return err
	}
	return nil
}

func (p *ListFoodPage) Items() []models.Food {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]models.Food{}, p.list...)
}

func (p *ListFoodPage) Loading() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.inflight > 0
}

// View picks the single branch the table shows; loading takes precedence.
func (p *ListFoodPage) View() ViewState {
	p.mu.Lock()
	defer p.mu.Unlock()
	switch {
	case p.inflight > 0:
		return ViewLoading
	case len(p.list) == 0:
		return ViewEmpty
	default:
		return ViewItems
	}
}

func (p *ListFoodPage) CountLabel() string {
	p.mu.Lock()
	n := len(p.list)
	p.mu.Unlock()
	if n == 1 {
		return "1 item"
	}
	return fmt.Sprintf("%d items", n)
}

func (p *ListFoodPage) RequestDelete(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state = DeletePending
	p.target = id
}

func (p *ListFoodPage) CancelDelete() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state = DeleteIdle
	p.target = ""
}

func (p *ListFoodPage) DeleteState() (DeleteState, string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state, p.target
}

// ConfirmDelete issues exactly one delete for the pending target and
// refetches the table only when the delete succeeded. The dialog returns to
// idle as soon as the target is taken, so a second confirmation finds
// nothing pending. Without a pending target it does nothing.
func (p *ListFoodPage) ConfirmDelete(ctx context.Context) bool {
	p.mu.Lock()
	if p.state != DeletePending || p.target == "" {
		p.mu.Unlock()
		return false
	}
	id := p.target
	p.state = DeleteIdle
	p.target = ""
	p.mu.Unlock()

	ok, err := p.service.DeleteFood(ctx, id)
	if err != nil {
		log.Printf("delete food %s: %v", id, err)
	}
	if err != nil || !ok {
		p.notify.Error(MsgRemoveFailed)
		return false
	}

	p.notify.Success(MsgFoodRemoved)
	_ = p.FetchList(ctx)
	return true
}

// Close marks the page as gone; later fetch results are discarded.
func (p *ListFoodPage) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
}
