package admin

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodhub/foodclient"
	"foodhub/models"
)

type fakeAPI struct {
	addCalls    int
	addErr      error
	lastReq     models.FoodRequest
	lastImage   string
	foods       []models.Food
	listErr     error
	listCalls   int
	deleteCalls []string
	deleteOK    bool
	deleteErr   error
}

func (f *fakeAPI) AddFood(_ context.Context, req models.FoodRequest, image foodclient.Image) error {
	f.addCalls++
	f.lastReq = req
	data, _ := io.ReadAll(image.Content)
	f.lastImage = image.Filename + ":" + string(data)
	return f.addErr
}

func (f *fakeAPI) GetFoodList(context.Context) ([]models.Food, error) {
	f.listCalls++
	return f.foods, f.listErr
}

func (f *fakeAPI) DeleteFood(_ context.Context, id string) (bool, error) {
	f.deleteCalls = append(f.deleteCalls, id)
	return f.deleteOK, f.deleteErr
}

func fillPizza(t *testing.T, p *AddFoodPage) {
	t.Helper()
	require.NoError(t, p.UpdateField(FieldName, "Pizza"))
	require.NoError(t, p.UpdateField(FieldDescription, "Cheesy"))
	require.NoError(t, p.UpdateField(FieldCategory, "Pizza"))
	require.NoError(t, p.UpdateField(FieldPrice, "250"))
}

func TestNewFoodFormDefaults(t *testing.T) {
	f := NewFoodForm()
	assert.Equal(t, models.DefaultCategory, f.Category)
	assert.Empty(t, f.Name)

	field, err := ParseField("Price")
	require.NoError(t, err)
	require.NoError(t, f.UpdateField(field, "10"))
	assert.Equal(t, "10", f.Price)

	_, err = ParseField("image")
	assert.Error(t, err)

	f.Reset()
	assert.Equal(t, NewFoodForm(), f)
}

func TestSubmitWithoutImage(t *testing.T) {
	api := &fakeAPI{}
	rec := &Recorder{}
	p := NewAddFoodPage(api, rec)
	fillPizza(t, p)

	err := p.Submit(context.Background())
	assert.True(t, models.IsValidationError(err))
	assert.Zero(t, api.addCalls)

	last, ok := rec.Last()
	require.True(t, ok)
	assert.Equal(t, Notification{Kind: KindError, Message: MsgSelectImage}, last)
	assert.Equal(t, "Pizza", p.Form().Name)
}

func TestSubmitMissingFields(t *testing.T) {
	tests := []struct {
		name  string
		field Field
		value string
		msg   string
	}{
		{"name", FieldName, " ", "Please enter the food name."},
		{"description", FieldDescription, "", "Please enter the food description."},
		{"price empty", FieldPrice, "", "Please enter the food price."},
		{"price text", FieldPrice, "abc", "Please enter a valid price."},
		{"price negative", FieldPrice, "-1", "Please enter a valid price."},
		{"category", FieldCategory, "Sushi", `Unknown category "Sushi".`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &fakeAPI{}
			rec := &Recorder{}
			p := NewAddFoodPage(api, rec)
			fillPizza(t, p)
			p.SetImage(ImageFile{Filename: "pizza.png", Data: []byte("img")})
			require.NoError(t, p.UpdateField(tt.field, tt.value))

			err := p.Submit(context.Background())
			assert.True(t, models.IsValidationError(err))
			assert.Zero(t, api.addCalls)
			last, _ := rec.Last()
			assert.Equal(t, KindError, last.Kind)
			assert.Equal(t, tt.msg, last.Message)
		})
	}
}

func TestSubmitSuccessResetsForm(t *testing.T) {
	api := &fakeAPI{}
	rec := &Recorder{}
	p := NewAddFoodPage(api, rec)
	fillPizza(t, p)
	p.SetImage(ImageFile{Filename: "pizza.png", Data: []byte("img")})

	require.NoError(t, p.Submit(context.Background()))
	assert.Equal(t, 1, api.addCalls)
	assert.Equal(t, models.FoodRequest{Name: "Pizza", Description: "Cheesy", Category: "Pizza", Price: 250}, api.lastReq)
	assert.Equal(t, "pizza.png:img", api.lastImage)

	assert.Equal(t, NewFoodForm(), p.Form())
	_, hasImage := p.Image()
	assert.False(t, hasImage)
	last, _ := rec.Last()
	assert.Equal(t, Notification{Kind: KindSuccess, Message: MsgFoodAdded}, last)
}

func TestSubmitFailureKeepsFormAndAllowsRetry(t *testing.T) {
	api := &fakeAPI{addErr: &models.ServiceError{Op: "addFood", Status: 500}}
	rec := &Recorder{}
	p := NewAddFoodPage(api, rec)
	fillPizza(t, p)
	p.SetImage(ImageFile{Filename: "pizza.png", Data: []byte("img")})
	before := p.Form()

	err := p.Submit(context.Background())
	assert.True(t, models.IsServiceError(err))
	assert.Equal(t, before, p.Form())
	_, hasImage := p.Image()
	assert.True(t, hasImage)
	last, _ := rec.Last()
	assert.Equal(t, Notification{Kind: KindError, Message: MsgAddFailed}, last)

	api.addErr = nil
	require.NoError(t, p.Submit(context.Background()))
	assert.Equal(t, "pizza.png:img", api.lastImage)
}

func TestFetchListStates(t *testing.T) {
	api := &fakeAPI{}
	rec := &Recorder{}
	p := NewListFoodPage(api, rec)

	assert.Equal(t, ViewEmpty, p.View())
	require.NoError(t, p.FetchList(context.Background()))
	assert.Equal(t, ViewEmpty, p.View())
	assert.Equal(t, "0 items", p.CountLabel())

	api.foods = []models.Food{{ID: "1", Name: "Pizza", Category: "Pizza", Price: 250}}
	require.NoError(t, p.FetchList(context.Background()))
	assert.Equal(t, ViewItems, p.View())
	assert.Equal(t, "1 item", p.CountLabel())
	assert.False(t, p.Loading())

	api.listErr = errors.New("down")
	assert.Error(t, p.FetchList(context.Background()))
	assert.Len(t, p.Items(), 1)
	last, _ := rec.Last()
	assert.Equal(t, Notification{Kind: KindError, Message: MsgReadFailed}, last)
}

type blockingLister struct {
	fakeAPI
	started chan struct{}
	release chan struct{}
}

func (b *blockingLister) GetFoodList(ctx context.Context) ([]models.Food, error) {
	close(b.started)
	<-b.release
	return []models.Food{{ID: "9"}}, nil
}

func TestFetchListLoadingAndClose(t *testing.T) {
	api := &blockingLister{started: make(chan struct{}), release: make(chan struct{})}
	p := NewListFoodPage(api, &Recorder{})

	done := make(chan error)
	go func() { done <- p.FetchList(context.Background()) }()

	<-api.started
	assert.Equal(t, ViewLoading, p.View())
	p.Close()
	close(api.release)

	assert.ErrorIs(t, <-done, context.Canceled)
	assert.Empty(t, p.Items())
}

func TestCancelDeleteNeverCallsService(t *testing.T) {
	api := &fakeAPI{deleteOK: true}
	p := NewListFoodPage(api, &Recorder{})

	p.RequestDelete("1")
	state, target := p.DeleteState()
	assert.Equal(t, DeletePending, state)
	assert.Equal(t, "1", target)

	p.CancelDelete()
	state, target = p.DeleteState()
	assert.Equal(t, DeleteIdle, state)
	assert.Empty(t, target)
	assert.Empty(t, api.deleteCalls)

	// confirm with nothing pending is a no-op
	assert.False(t, p.ConfirmDelete(context.Background()))
	assert.Empty(t, api.deleteCalls)
}

func TestConfirmDeleteSuccessRefetches(t *testing.T) {
	api := &fakeAPI{deleteOK: true}
	rec := &Recorder{}
	p := NewListFoodPage(api, rec)

	p.RequestDelete("1")
	assert.True(t, p.ConfirmDelete(context.Background()))
	assert.Equal(t, []string{"1"}, api.deleteCalls)
	assert.Equal(t, 1, api.listCalls)

	state, _ := p.DeleteState()
	assert.Equal(t, DeleteIdle, state)
	assert.Equal(t, []Notification{{Kind: KindSuccess, Message: MsgFoodRemoved}}, rec.All())
}

func TestConfirmDeleteFalseDoesNotRefetch(t *testing.T) {
	api := &fakeAPI{deleteOK: false}
	rec := &Recorder{}
	p := NewListFoodPage(api, rec)

	p.RequestDelete("1")
	assert.False(t, p.ConfirmDelete(context.Background()))
	assert.Equal(t, []string{"1"}, api.deleteCalls)
	assert.Zero(t, api.listCalls)

	state, _ := p.DeleteState()
	assert.Equal(t, DeleteIdle, state)
	last, _ := rec.Last()
	assert.Equal(t, Notification{Kind: KindError, Message: MsgRemoveFailed}, last)
}

func TestConfirmDeleteErrorReturnsToIdle(t *testing.T) {
	api := &fakeAPI{deleteErr: &models.ServiceError{Op: "deleteFood"}}
	rec := &Recorder{}
	p := NewListFoodPage(api, rec)

	p.RequestDelete("1")
	assert.False(t, p.ConfirmDelete(context.Background()))
	assert.Zero(t, api.listCalls)
	state, _ := p.DeleteState()
	assert.Equal(t, DeleteIdle, state)

	// a second confirm without a new request does nothing
	assert.False(t, p.ConfirmDelete(context.Background()))
	assert.Len(t, api.deleteCalls, 1)
}

type slowDeleter struct {
	fakeAPI
	mu      sync.Mutex
	calls   []string
	started chan struct{}
	release chan struct{}
}

func newSlowDeleter() *slowDeleter {
	return &slowDeleter{started: make(chan struct{}, 2), release: make(chan struct{})}
}

func (s *slowDeleter) DeleteFood(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	s.calls = append(s.calls, id)
	s.mu.Unlock()
	s.started <- struct{}{}
	<-s.release
	return true, nil
}

func (s *slowDeleter) deleted() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.calls...)
}

func TestConcurrentConfirmDeletesOnce(t *testing.T) {
	api := newSlowDeleter()
	p := NewListFoodPage(api, &Recorder{})
	p.RequestDelete("1")

	results := make(chan bool, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- p.ConfirmDelete(context.Background())
		}()
	}

	<-api.started
	close(api.release)
	wg.Wait()
	close(results)

	succeeded := 0
	for ok := range results {
		if ok {
			succeeded++
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, []string{"1"}, api.deleted())
}

func TestRequestDuringConfirmIsKept(t *testing.T) {
	api := newSlowDeleter()
	p := NewListFoodPage(api, &Recorder{})
	p.RequestDelete("1")

	done := make(chan bool)
	go func() { done <- p.ConfirmDelete(context.Background()) }()

	<-api.started
	p.RequestDelete("2")
	close(api.release)
	assert.True(t, <-done)

	state, target := p.DeleteState()
	assert.Equal(t, DeletePending, state)
	assert.Equal(t, "2", target)
	assert.Equal(t, []string{"1"}, api.deleted())
}

type sequencedLister struct {
	fakeAPI
	mu      sync.Mutex
	calls   int
	started chan struct{}
	release chan struct{}
}

func (s *sequencedLister) GetFoodList(context.Context) ([]models.Food, error) {
	s.mu.Lock()
	s.calls++
	n := s.calls
	s.mu.Unlock()
	if n == 1 {
		close(s.started)
		<-s.release
		return nil, errors.New("timeout")
	}
	return []models.Food{{ID: "new"}}, nil
}

func TestSupersededFetchFailureIsSilent(t *testing.T) {
	api := &sequencedLister{started: make(chan struct{}), release: make(chan struct{})}
	rec := &Recorder{}
	p := NewListFoodPage(api, rec)

	first := make(chan error)
	go func() { first <- p.FetchList(context.Background()) }()
	<-api.started

	require.NoError(t, p.FetchList(context.Background()))
	close(api.release)
	assert.NoError(t, <-first)

	assert.Equal(t, []models.Food{{ID: "new"}}, p.Items())
	assert.Empty(t, rec.All())
}
