// Package admin implements the admin panel flows: adding food items and
// listing or deleting them, independent of how they are rendered.
package admin

import (
	"bytes"
	"context"
	"errors"
	"log"
	"sync"

	"github.com/go-playground/validator/v10"

	"foodhub/foodclient"
	"foodhub/models"
	"foodhub/utils"
)

const (
	MsgSelectImage = "Please select an image."
	MsgFoodAdded   = "Food added successfully."
	MsgAddFailed   = "Error adding food."
)

type FoodCreator interface {
	AddFood(ctx context.Context, req models.FoodRequest, image foodclient.Image) error
}

// ImageFile is a picked image held in memory so a failed submission can be
// retried with the same file.
type ImageFile struct {
	Filename string
	Data     []byte
}

type AddFoodPage struct {
	service  FoodCreator
	notify   Notifier
	validate *validator.Validate

	mu    sync.Mutex
	form  FoodForm
	image *ImageFile
}

func NewAddFoodPage(service FoodCreator, notify Notifier) *AddFoodPage {
	return &AddFoodPage{
		service:  service,
		notify:   notify,
		validate: utils.NewValidator(),
		form:     NewFoodForm(),
	}
}

func (p *AddFoodPage) Form() FoodForm {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.form
}

func (p *AddFoodPage) UpdateField(field Field, value string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.form.UpdateField(field, value)
}

func (p *AddFoodPage) SetImage(img ImageFile) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.image = &img
}

func (p *AddFoodPage) ClearImage() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.image = nil
}

func (p *AddFoodPage) Image() (ImageFile, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.image == nil {
		return ImageFile{}, false
	}
	return *p.image, true
}

// Submit validates locally and sends the item. The form is cleared only on
// success; on any failure it is left exactly as it was.
func (p *AddFoodPage) Submit(ctx context.Context) error {
	p.mu.Lock()
	form := p.form
	image := p.image
	p.mu.Unlock()

	if image == nil {
		p.notify.Error(MsgSelectImage)
		return &models.ValidationError{Field: "image", Message: MsgSelectImage}
	}

	req, err := form.Request(p.validate)
	if err != nil {
		var verr *models.ValidationError
		if errors.As(err, &verr) {
			p.notify.Error(verr.Message)
		} else {
			p.notify.Error(err.Error())
		}
		return err
	}

	err = p.service.AddFood(ctx, req, foodclient.Image{
		Filename: image.Filename,
		Content:  bytes.NewReader(image.Data),
	})
	if err != nil {
		log.Printf("add food: %v", err)
		p.notify.Error(MsgAddFailed)
		return err
	}

	p.notify.Success(MsgFoodAdded)
	p.mu.Lock()
	p.form.Reset()
	p.image = nil
	p.mu.Unlock()
	return nil
}
