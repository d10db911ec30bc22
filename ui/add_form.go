package ui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"foodhub/admin"
	"foodhub/models"
)

const (
	rowName = iota
	rowDescription
	rowCategory
	rowPrice
	rowImage
	rowCount
)

var rowLabels = [rowCount]string{"Name", "Description", "Category", "Price", "Image"}

type addDoneMsg struct{ err error }

// addForm is the terminal version of the add-food page. Category is picked
// from the fixed list; the other rows are text inputs.
type addForm struct {
	inputs     [rowCount]textinput.Model
	category   int
	focus      int
	submitting bool
}

func newAddForm() addForm {
	var f addForm
	placeholders := [rowCount]string{"Chicken Biryani", "Fragrant rice with spices", "", "250", "path/to/image.png"}
	for i := range f.inputs {
		in := textinput.New()
		in.Placeholder = placeholders[i]
		in.CharLimit = 200
		f.inputs[i] = in
	}
	f.inputs[rowPrice].CharLimit = 12
	f.reset()
	return f
}

func (f *addForm) reset() {
	for i := range f.inputs {
		f.inputs[i].Reset()
	}
	f.category = categoryIndex(models.DefaultCategory)
	f.setFocus(rowName)
}

func categoryIndex(name string) int {
	for i, c := range models.Categories {
		if c == name {
			return i
		}
	}
	return 0
}

func (f *addForm) setFocus(row int) tea.Cmd {
	f.focus = row
	var cmd tea.Cmd
	for i := range f.inputs {
		if i == row {
			cmd = f.inputs[i].Focus()
		} else {
			f.inputs[i].Blur()
		}
	}
	return cmd
}

func (f *addForm) move(delta int) tea.Cmd {
	return f.setFocus((f.focus + delta + rowCount) % rowCount)
}

func (f *addForm) cycleCategory(delta int) {
	n := len(models.Categories)
	f.category = (f.category + delta + n) % n
}

func (f addForm) value(row int) string {
	return f.inputs[row].Value()
}

// update feeds a key press to the focused text row.
func (f *addForm) update(msg tea.KeyMsg) tea.Cmd {
	if f.focus == rowCategory {
		switch msg.String() {
		case "left", "h":
			f.cycleCategory(-1)
		case "right", "l", " ":
			f.cycleCategory(1)
		}
		return nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

// submitCmd copies the rows into page, loads the image file and submits.
// page reports the outcome through its notifier.
func (f addForm) submitCmd(page *admin.AddFoodPage, notes *admin.Recorder) tea.Cmd {
	fields := map[admin.Field]string{
		admin.FieldName:        f.value(rowName),
		admin.FieldDescription: f.value(rowDescription),
		admin.FieldCategory:    models.Categories[f.category],
		admin.FieldPrice:       f.value(rowPrice),
	}
	path := strings.TrimSpace(f.value(rowImage))

	return func() tea.Msg {
		for field, value := range fields {
			if err := page.UpdateField(field, value); err != nil {
				return addDoneMsg{err: err}
			}
		}
		if path == "" {
			page.ClearImage()
		} else {
			data, err := os.ReadFile(path)
			if err != nil {
				if notes != nil {
					notes.Error(fmt.Sprintf("Could not read %s.", filepath.Base(path)))
				}
				return addDoneMsg{err: err}
			}
			page.SetImage(admin.ImageFile{Filename: filepath.Base(path), Data: data})
		}
		return addDoneMsg{err: page.Submit(context.Background())}
	}
}

func (f addForm) view() string {
	var b strings.Builder
	b.WriteString("Add Food\n\n")
	for row := 0; row < rowCount; row++ {
		label := fmt.Sprintf("%-12s", rowLabels[row])
		if row == f.focus {
			label = selectedStyle.Render(label)
		}
		var field string
		if row == rowCategory {
			field = "‹ " + models.Categories[f.category] + " ›"
		} else {
			field = f.inputs[row].View()
		}
		fmt.Fprintf(&b, "%s %s\n", label, field)
	}
	b.WriteString("\n")
	if f.submitting {
		b.WriteString(mutedStyle.Render("Saving...") + "\n")
	} else {
		b.WriteString(mutedStyle.Render("[enter] Save   [esc] Back to list") + "\n")
	}
	return b.String()
}
